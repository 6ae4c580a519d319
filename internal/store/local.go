// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalBackend stores tables as files in a directory.
//
// Put writes a temp file in the same directory, fsyncs it and renames it over
// the target, so readers see either the old or the new table. Writers in
// other processes are serialized by an advisory lock on "<name>.lock".
type LocalBackend struct {
	dir string
}

// NewLocalBackend creates dir if needed.
func NewLocalBackend(dir string) (*LocalBackend, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create table directory: %w", err)
	}
	return &LocalBackend{dir: dir}, nil
}

func (b *LocalBackend) path(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid table name %q", name)
	}
	return filepath.Join(b.dir, name), nil
}

func (b *LocalBackend) Get(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := b.path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p) //nolint:gosec // path is confined to the table directory
	if err != nil {
		return nil, err // os.ErrNotExist is ErrNotFound
	}
	return data, nil
}

func (b *LocalBackend) Put(ctx context.Context, name string, data []byte) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := b.path(name)
	if err != nil {
		return err
	}

	unlock, err := lockFile(p + ".lock")
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, unlock())
	}()

	tmp, err := os.CreateTemp(b.dir, "."+name+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Chmod(tmpName, 0o640); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = os.Rename(tmpName, p); err != nil {
		return fmt.Errorf("rename table: %w", err)
	}

	syncDir(b.dir)
	return nil
}

func (b *LocalBackend) Name() string { return KindLocal }

func (b *LocalBackend) Close() error { return nil }

// syncDir makes the rename durable. Failures are ignored; not every platform
// supports fsync on directories.
func syncDir(dir string) {
	d, err := os.Open(dir) //nolint:gosec // configured directory
	if err != nil {
		return
	}
	_ = d.Sync()
	_ = d.Close()
}
