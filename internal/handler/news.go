package handler

import (
	"net/http"

	"github.com/stockpulse/stockpulse/internal/service"
)

type newsHandler struct {
	newsService *service.NewsService
}

func NewNewsHandler(newsService *service.NewsService) *newsHandler {
	return &newsHandler{newsService: newsService}
}

func (h *newsHandler) Impact(w http.ResponseWriter, r *http.Request) {
	ticker := r.PathValue("ticker")

	impact, err := h.newsService.Impact(r.Context(), ticker)
	if err != nil {
		respondMarketError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, impact)
}
