package handler

import (
	"encoding/json"
	"net/http"

	"github.com/osse101/InkGacha_Go/internal/logger"
	"github.com/osse101/InkGacha_Go/internal/session"
)

// RenameRequest updates the display name.
type RenameRequest struct {
	Username string `json:"username"`
}

// SelectCardRequest toggles a card in the focus selection.
type SelectCardRequest struct {
	CardID string `json:"card_id"`
}

// HandleRename updates the session display name.
func HandleRename(svc session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RenameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode rename request", "error", err)
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		snapshot, err := svc.RenameUser(r.Context(), req.Username)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, snapshot)
	}
}

// HandleSelectCard toggles an owned card in the focus selection set.
func HandleSelectCard(svc session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SelectCardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode select request", "error", err)
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.CardID == "" {
			respondError(w, http.StatusBadRequest, "card_id is required")
			return
		}

		snapshot, err := svc.ToggleCardSelection(r.Context(), req.CardID)
		if err != nil {
			log.Warn("Selection refused", "card_id", req.CardID, "error", err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, snapshot)
	}
}
