package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/stockpulse/stockpulse/internal/analytics"
	"github.com/stockpulse/stockpulse/internal/service"
)

// tickerHint is appended to upstream error messages on market endpoints; the
// dashboard shows it verbatim so users re-check the ticker spelling.
const tickerHint = " or check the stock name"

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondMarketError maps analytics failures onto the API error taxonomy.
// Upstream-reported errors keep their message; transport failures get a
// generic one. Both carry the ticker hint.
func respondMarketError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrTickerRequired) {
		respondError(w, http.StatusBadRequest, "Ticker is required.")
		return
	}

	var upstream *analytics.UpstreamError
	if errors.As(err, &upstream) {
		respondError(w, http.StatusBadGateway, upstream.Message+tickerHint)
		return
	}

	slog.Error("analytics request failed", "error", err)
	respondError(w, http.StatusBadGateway, "Analytics service unavailable"+tickerHint)
}
