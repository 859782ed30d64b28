package handler

import (
	"encoding/json"
	"net/http"

	"github.com/osse101/InkGacha_Go/internal/logger"
	"github.com/osse101/InkGacha_Go/internal/session"
	"github.com/osse101/InkGacha_Go/internal/writing"
)

// MinWritingMinutes is the minimum elapsed writing time the UI must
// report before the writing reward can be claimed.
const MinWritingMinutes = 3

// WritingRewardRequest carries the submission the UI collected.
type WritingRewardRequest struct {
	Content        string `json:"content"`
	ElapsedMinutes int    `json:"elapsed_minutes"`
}

// HandleClaimSynopsis credits the synopsis reward if the daily quota holds.
func HandleClaimSynopsis(svc session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		snapshot, err := svc.ClaimSynopsisReward(r.Context())
		if err != nil {
			log.Warn("Synopsis reward refused", "error", err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, snapshot)
	}
}

// HandleClaimWriting validates the submission content and elapsed
// time, then credits the daily writing reward. The quota gate itself
// lives in the session service.
func HandleClaimWriting(svc session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req WritingRewardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode writing reward request", "error", err)
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if result := writing.Validate(writing.Normalize(req.Content)); !result.Valid {
			log.Warn("Writing submission rejected", "reason", result.Reason)
			respondError(w, http.StatusBadRequest, result.Reason)
			return
		}
		if req.ElapsedMinutes < MinWritingMinutes {
			log.Warn("Writing submission too fast", "elapsed_minutes", req.ElapsedMinutes)
			respondError(w, http.StatusBadRequest, "writing time under 3 minutes")
			return
		}

		snapshot, err := svc.ClaimWritingReward(r.Context())
		if err != nil {
			log.Warn("Writing reward refused", "error", err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, snapshot)
	}
}
