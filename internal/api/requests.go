// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package api

import "github.com/tomtom215/roomrec/internal/models"

// RecommendRequest is the body of POST /recommend/.
//
// Skills and position must be present but may be empty strings.
type RecommendRequest struct {
	Skills   *string `json:"skills" validate:"required,max=4096"`
	Position *string `json:"position" validate:"required,max=1024"`

	// TopN is optional; 0 selects the configured default.
	TopN int `json:"top_n" validate:"gte=0,lte=1000"`
}

// AddRoomRequest is the body of POST /add_room/. Every attribute of a room
// is required; creator_id is optional.
type AddRoomRequest struct {
	RoomID       *string `json:"room_id" validate:"required,roomid,max=128"`
	Name         *string `json:"name" validate:"required,max=256"`
	Skills       *string `json:"skills" validate:"required,max=4096"`
	Position     *string `json:"position" validate:"required,max=1024"`
	Tracks       *string `json:"tracks" validate:"required,max=4096"`
	CreatedAt    *string `json:"createdAt" validate:"required,max=64"`
	Members      *int    `json:"members" validate:"required,gte=0"`
	CoverPicture *string `json:"coverPicture" validate:"required,max=2048"`
	Description  *string `json:"desc" validate:"required,max=8192"`
	CreatorID    string  `json:"creator_id" validate:"max=128"`
}

// Room converts a validated request into a room.
func (req *AddRoomRequest) Room() models.Room {
	return models.Room{
		ID:           *req.RoomID,
		Name:         *req.Name,
		CreatorID:    req.CreatorID,
		Description:  *req.Description,
		Skills:       *req.Skills,
		Position:     *req.Position,
		Tracks:       *req.Tracks,
		CreatedAt:    *req.CreatedAt,
		Members:      *req.Members,
		CoverPicture: *req.CoverPicture,
	}
}

// RecommendResponse is the body returned by POST /recommend/.
type RecommendResponse struct {
	RecommendedRooms []models.Room `json:"recommended_rooms"`
}

// MessageResponse is returned by the mutation routes.
type MessageResponse struct {
	Message string `json:"message"`
}
