package handler

import (
	"encoding/json"
	"net/http"

	"github.com/stockpulse/stockpulse/internal/analytics"
	"github.com/stockpulse/stockpulse/internal/service"
)

type indicatorHandler struct {
	indicatorService *service.IndicatorService
}

func NewIndicatorHandler(indicatorService *service.IndicatorService) *indicatorHandler {
	return &indicatorHandler{indicatorService: indicatorService}
}

func (h *indicatorHandler) Report(w http.ResponseWriter, r *http.Request) {
	var req analytics.IndicatorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	report, err := h.indicatorService.Report(r.Context(), req)
	if err != nil {
		respondMarketError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}
