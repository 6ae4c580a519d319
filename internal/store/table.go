// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package store

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tomtom215/roomrec/internal/models"
)

// Table column names, in the order they are written.
const (
	ColID               = "ID"
	ColName             = "Name"
	ColCreatorID        = "Creator ID"
	ColDescription      = "Description"
	ColSkills           = "Skills"
	ColPosition         = "Position"
	ColTracks           = "Tracks"
	ColCombinedFeatures = "Combined_Features"
	ColCreatedAt        = "CreatedAt"
	ColMembers          = "Members"
	ColCoverPicture     = "CoverPicture"
)

// Columns is the table header.
var Columns = []string{
	ColID, ColName, ColCreatorID, ColDescription, ColSkills, ColPosition,
	ColTracks, ColCombinedFeatures, ColCreatedAt, ColMembers, ColCoverPicture,
}

// ErrMalformedTable is returned when a table cannot be decoded.
var ErrMalformedTable = errors.New("malformed room table")

const utf8BOM = "\ufeff"

// EncodeTable writes rooms as a CSV document with the Columns header.
func EncodeTable(rooms []models.Room) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Columns); err != nil {
		return nil, err
	}
	for i := range rooms {
		r := &rooms[i]
		record := []string{
			r.ID,
			r.Name,
			r.CreatorID,
			r.Description,
			r.Skills,
			r.Position,
			r.Tracks,
			models.Compose(r.Skills, r.Position, r.Tracks),
			r.CreatedAt,
			strconv.Itoa(r.Members),
			r.CoverPicture,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write room %q: %w", r.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeTable parses a CSV room table.
//
// Columns are matched by header name, so their order does not matter and
// unknown columns are ignored; only ID is required. A missing or empty
// Members cell reads as 0. Combined_Features is recomputed rather than read.
// Rows are returned in file order without de-duplication. CRLF inside a
// quoted cell reads back as LF; see models.Room.NormalizeLineEndings.
func DecodeTable(data []byte) ([]models.Room, error) {
	data = bytes.TrimPrefix(data, []byte(utf8BOM))
	if len(bytes.TrimSpace(data)) == 0 {
		return []models.Room{}, nil
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %w", ErrMalformedTable, err)
	}

	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[strings.TrimSpace(name)] = i
	}
	if _, ok := pos[ColID]; !ok {
		return nil, fmt.Errorf("%w: missing %q column", ErrMalformedTable, ColID)
	}

	cell := func(record []string, col string) string {
		i, ok := pos[col]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	rooms := make([]models.Room, 0, 64)
	for line := 2; ; line++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedTable, line, err)
		}

		members, err := parseMembers(cell(record, ColMembers))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedTable, line, err)
		}

		room := models.Room{
			ID:           strings.TrimSpace(cell(record, ColID)),
			Name:         cell(record, ColName),
			CreatorID:    cell(record, ColCreatorID),
			Description:  cell(record, ColDescription),
			Skills:       cell(record, ColSkills),
			Position:     cell(record, ColPosition),
			Tracks:       cell(record, ColTracks),
			CreatedAt:    cell(record, ColCreatedAt),
			Members:      members,
			CoverPicture: cell(record, ColCoverPicture),
		}
		room.Recompose()
		rooms = append(rooms, room)
	}

	return rooms, nil
}

// parseMembers accepts integers and integral floats ("3.0"), which some
// spreadsheet exports write for count columns. NaN reads as 0. Values that
// do not fit an int are rejected.
func parseMembers(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	switch {
	case err != nil, math.IsInf(f, 0), f != math.Trunc(f) && !math.IsNaN(f),
		f >= float64(math.MaxInt), f < float64(math.MinInt):
		return 0, fmt.Errorf("invalid %s value %q", ColMembers, s)
	case math.IsNaN(f):
		return 0, nil
	}
	return int(f), nil
}
