package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/fin360/internal/utils"
	"github.com/MKhiriev/fin360/models"
)

func (h *Handler) addStock(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var input models.StockInput
	if !decodeJSON(w, r, "*Handler.addStock", &input) {
		return
	}

	holding, err := h.services.StockService.AddStock(r.Context(), userID, input)
	if err != nil {
		writeServiceError(w, r, "*Handler.addStock", err)
		return
	}

	utils.WriteJSON(w, holding, http.StatusCreated)
}

func (h *Handler) fetchStocks(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	holdings, err := h.services.StockService.FetchAllStocks(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, "*Handler.fetchStocks", err)
		return
	}

	utils.WriteJSON(w, nonNil(holdings), http.StatusOK)
}

func (h *Handler) deleteStock(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	if err := h.services.StockService.DeleteStock(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, "*Handler.deleteStock", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) portfolioSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	summary, err := h.services.PortfolioService.Summary(r.Context(), userID, r.URL.Query().Get("currency"))
	if err != nil {
		writeServiceError(w, r, "*Handler.portfolioSummary", err)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}
