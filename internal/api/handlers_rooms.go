// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/roomrec/internal/logging"
	"github.com/tomtom215/roomrec/internal/recommend"
)

// Recommend handles POST /recommend/.
//
// The response body is {"recommended_rooms": [...]}, best match first. An
// empty collection or a profile sharing no term with any room yields an
// empty list, not an error.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.config.RequestTimeout)
	defer cancel()

	rooms, err := h.rooms.Recommend(ctx, *req.Skills, *req.Position, req.TopN)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, RecommendResponse{RecommendedRooms: rooms})
}

// AddRoom handles POST /add_room/.
func (h *Handler) AddRoom(w http.ResponseWriter, r *http.Request) {
	var req AddRoomRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	room := req.Room()
	if err := h.rooms.AddRoom(r.Context(), room); err != nil {
		respondEngineError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("room_id", sanitizeLogValue(room.ID)).
		Msg("Room added via API")

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Room '%s' added successfully!", room.Name),
	})
}

// DeleteRoom handles DELETE /delete_room/{room_id}.
//
// Deleting an unknown ID is not an error: the response is 200 with a
// "not found" message, which is what existing clients expect.
func (h *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "room_id")

	outcome, err := h.rooms.DeleteRoom(r.Context(), id)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	if outcome == recommend.OutcomeNotFound {
		writeJSON(w, http.StatusOK, MessageResponse{
			Message: fmt.Sprintf("Room with ID %s not found.", id),
		})
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("room_id", sanitizeLogValue(id)).
		Msg("Room deleted via API")

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Room with ID %s deleted successfully!", id),
	})
}
