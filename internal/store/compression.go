// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects how Save encodes the table.
type Compression string

const (
	CompressionNone Compression = "none"
	CompressionZstd Compression = "zstd"
	CompressionLZ4  Compression = "lz4"
)

// Valid reports whether c is a known compression.
func (c Compression) Valid() bool {
	switch c {
	case CompressionNone, CompressionZstd, CompressionLZ4, "":
		return true
	}
	return false
}

var (
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4Magic  = []byte{0x04, 0x22, 0x4D, 0x18}
)

// DefaultMaxTableSize bounds the decompressed size of a table when
// Config.MaxTableSize is zero.
const DefaultMaxTableSize int64 = 256 << 20

// ErrTableTooLarge is returned when a compressed table expands past the limit.
var ErrTableTooLarge = errors.New("room table exceeds size limit")

// EncodeAll is safe for concurrent use, so one encoder serves the whole
// process. Decoders are per call so each carries its own memory limit.
var (
	zstdOnce    sync.Once
	zstdEncoder *zstd.Encoder
	zstdErr     error
)

func zstdEncoderShared() (*zstd.Encoder, error) {
	zstdOnce.Do(func() {
		zstdEncoder, zstdErr = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	})
	return zstdEncoder, zstdErr
}

func compress(c Compression, data []byte) ([]byte, error) {
	switch c {
	case CompressionNone, "":
		return data, nil
	case CompressionZstd:
		enc, err := zstdEncoderShared()
		if err != nil {
			return nil, fmt.Errorf("zstd init: %w", err)
		}
		return enc.EncodeAll(data, make([]byte, 0, len(data)/2)), nil
	case CompressionLZ4:
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown compression %q", c)
	}
}

// decompress detects the encoding from the magic bytes. Anything else is
// returned unchanged as plain CSV. Decoded output larger than limit bytes
// fails with ErrTableTooLarge.
func decompress(data []byte, limit int64) ([]byte, Compression, error) {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		dec, err := zstd.NewReader(bytes.NewReader(data),
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderMaxMemory(uint64(limit)))
		if err != nil {
			return nil, CompressionZstd, fmt.Errorf("zstd init: %w", limitError(err, limit))
		}
		defer dec.Close()
		out, err := readLimited(dec, limit)
		if err != nil {
			return nil, CompressionZstd, fmt.Errorf("zstd decompress: %w", err)
		}
		return out, CompressionZstd, nil
	case bytes.HasPrefix(data, lz4Magic):
		out, err := readLimited(lz4.NewReader(bytes.NewReader(data)), limit)
		if err != nil {
			return nil, CompressionLZ4, fmt.Errorf("lz4 decompress: %w", err)
		}
		return out, CompressionLZ4, nil
	default:
		return data, CompressionNone, nil
	}
}

func readLimited(r io.Reader, limit int64) ([]byte, error) {
	out, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, limitError(err, limit)
	}
	if int64(len(out)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTableTooLarge, limit)
	}
	return out, nil
}

// limitError maps the zstd decoder's own memory limit errors onto
// ErrTableTooLarge.
func limitError(err error, limit int64) error {
	if errors.Is(err, zstd.ErrDecoderSizeExceeded) || errors.Is(err, zstd.ErrWindowSizeExceeded) {
		return fmt.Errorf("%w: more than %d bytes", ErrTableTooLarge, limit)
	}
	return err
}
