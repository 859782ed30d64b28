package handler

import (
	"context"
	"net/http"

	"github.com/osse101/InkGacha_Go/internal/logger"
	"github.com/osse101/InkGacha_Go/internal/session"
)

// HandleDrawSingle runs a single paid draw.
func HandleDrawSingle(svc session.Service) http.HandlerFunc {
	return drawHandler(svc.DrawSingle)
}

// HandleDrawTen runs a ten-draw batch transaction.
func HandleDrawTen(svc session.Service) http.HandlerFunc {
	return drawHandler(svc.DrawTen)
}

// HandleDrawFree runs the daily free draw.
func HandleDrawFree(svc session.Service) http.HandlerFunc {
	return drawHandler(svc.DrawFree)
}

func drawHandler(draw func(ctx context.Context) (*session.DrawOutcome, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		outcome, err := draw(r.Context())
		if err != nil {
			log.Warn("Draw refused", "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, outcome)
	}
}
