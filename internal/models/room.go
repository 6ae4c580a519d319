// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package models

import "strings"

// Room is a recommendable community room.
//
// Only Skills, Position and Tracks take part in similarity. JSON keys follow
// the column names of the room table, which is also what API clients have
// always received.
type Room struct {
	ID           string `json:"ID"`
	Name         string `json:"Name"`
	CreatorID    string `json:"-"`
	Description  string `json:"Description"`
	Skills       string `json:"Skills"`
	Position     string `json:"Position"`
	Tracks       string `json:"Tracks"`
	CreatedAt    string `json:"CreatedAt"`
	Members      int    `json:"Members"`
	CoverPicture string `json:"CoverPicture"`

	// CombinedFeatures is derived from Skills, Position and Tracks and is
	// never set directly. See Compose.
	CombinedFeatures string `json:"-"`
}

// Recompose sets CombinedFeatures from the room's current attributes.
func (r *Room) Recompose() {
	r.CombinedFeatures = Compose(r.Skills, r.Position, r.Tracks)
}

// NormalizeLineEndings rewrites CRLF as LF in every text field. The room
// table's CSV reader does the same to quoted cells, so a room normalised
// before it is stored reads back unchanged.
func (r *Room) NormalizeLineEndings() {
	for _, f := range []*string{
		&r.ID, &r.Name, &r.CreatorID, &r.Description, &r.Skills,
		&r.Position, &r.Tracks, &r.CreatedAt, &r.CoverPicture,
	} {
		*f = strings.ReplaceAll(*f, "\r\n", "\n")
	}
}

// Compose returns the searchable document of a room: skills, position and
// tracks joined by single spaces in that order. Missing values are empty
// strings, so the separators are always present.
func Compose(skills, position, tracks string) string {
	return strings.Join([]string{skills, position, tracks}, " ")
}

// QueryDocument returns the document of a user profile. Tracks are not part
// of a profile.
func QueryDocument(skills, position string) string {
	return skills + " " + position
}
