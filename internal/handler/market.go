package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/stockpulse/stockpulse/internal/analytics"
	"github.com/stockpulse/stockpulse/internal/config"
	"github.com/stockpulse/stockpulse/internal/quotes"
	"github.com/stockpulse/stockpulse/internal/service"
)

type marketHandler struct {
	marketService *service.MarketService
	quotesService *quotes.Service
	watchlist     *config.Watchlist
}

func NewMarketHandler(marketService *service.MarketService, quotesService *quotes.Service, watchlist *config.Watchlist) *marketHandler {
	return &marketHandler{
		marketService: marketService,
		quotesService: quotesService,
		watchlist:     watchlist,
	}
}

// Predict forwards a forecast request upstream and returns the chart-ready
// series.
func (h *marketHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var req analytics.ForecastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	result, err := h.marketService.Forecast(r.Context(), req)
	if err != nil {
		respondMarketError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// StockPrices serves the watchlist snapshot from the refreshed cache.
func (h *marketHandler) StockPrices(w http.ResponseWriter, r *http.Request) {
	stocks, err := h.quotesService.Snapshot(r.Context())
	if err != nil {
		slog.Error("stock prices unavailable", "error", err)
		respondMarketError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"stocks": stocks})
}

// Watchlist serves the configured name-to-ticker list the dashboard search
// resolves against.
func (h *marketHandler) Watchlist(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"stocks": h.watchlist.Stocks})
}
