package handler

import (
	"net/http"
	"time"

	"github.com/osse101/InkGacha_Go/internal/catalog"
	"github.com/osse101/InkGacha_Go/internal/quote"
	"github.com/osse101/InkGacha_Go/internal/session"
)

// HandleGetState returns the current session snapshot.
func HandleGetState(svc session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Snapshot(r.Context()))
	}
}

// HandleGetHistory returns both logs, newest-first.
func HandleGetHistory(svc session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.History(r.Context()))
	}
}

// HandleGetCatalog returns the full card pool for the collection view.
func HandleGetCatalog(pool *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, pool.Cards())
	}
}

// QuoteResponse carries the daily writing quote.
type QuoteResponse struct {
	Quote string `json:"quote"`
}

// HandleGetQuote returns the deterministic quote for today.
func HandleGetQuote(now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, QuoteResponse{Quote: quote.ForDate(now())})
	}
}
