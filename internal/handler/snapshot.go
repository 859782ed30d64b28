package handler

import (
	"io"
	"net/http"

	"github.com/osse101/InkGacha_Go/internal/domain"
	"github.com/osse101/InkGacha_Go/internal/ledger"
	"github.com/osse101/InkGacha_Go/internal/logger"
	"github.com/osse101/InkGacha_Go/internal/session"
)

// maxImportSize caps import bodies; a full backup is a few megabytes
// at most.
const maxImportSize = 16 << 20

// HandleExport returns the full snapshot bundle and stamps the
// last-export time.
func HandleExport(svc session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		bundle, err := svc.ExportSnapshot(r.Context())
		if err != nil {
			log.Error("Export failed", "error", err)
			respondServiceError(w, err)
			return
		}
		w.Header().Set("Content-Disposition", `attachment; filename="inkgacha-backup.json"`)
		respondJSON(w, http.StatusOK, bundle)
	}
}

// HandleImport validates and imports a snapshot bundle, overwriting
// every stored aggregate on success.
func HandleImport(svc session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		raw, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
		if err != nil {
			respondError(w, http.StatusBadRequest, "failed to read request body")
			return
		}

		if err := svc.ImportSnapshot(r.Context(), raw); err != nil {
			log.Warn("Import rejected", "error", err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "snapshot imported"})
	}
}

// HandlePointsCSV streams the resource-movement log projection.
func HandlePointsCSV(svc session.Service) http.HandlerFunc {
	return csvHandler(svc, "points.csv", ledger.PointsCSV)
}

// HandleGachaCSV streams the draw-outcome log projection.
func HandleGachaCSV(svc session.Service) http.HandlerFunc {
	return csvHandler(svc, "draws.csv", ledger.GachaCSV)
}

func csvHandler(svc session.Service, filename string, render func(domain.History) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := render(svc.History(r.Context()))
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(body)); err != nil {
			logger.FromContext(r.Context()).Error("Failed to write CSV response", "error", err)
		}
	}
}
