package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/divitrack/Dividend-Tracker-Backend/internal/api/response"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/apperrors"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/service"
)

// SecurityHandler handles HTTP requests for the external securities search
// and lookup endpoints used to prefill new events.
type SecurityHandler struct {
	marketDataService *service.MarketDataService
}

// NewSecurityHandler creates a new SecurityHandler with the provided service dependency.
func NewSecurityHandler(marketDataService *service.MarketDataService) *SecurityHandler {
	return &SecurityHandler{
		marketDataService: marketDataService,
	}
}

// Search handles GET requests to search securities by name or symbol.
//
// Endpoint: GET /api/security/search?query=...
// Response: 200 OK with array of SecuritySearchResult
// Error: 400 Bad Request for queries under two characters
// Error: 503 Service Unavailable when no API key is configured
// Error: 502 Bad Gateway when the provider call fails
func (h *SecurityHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	results, err := h.marketDataService.Search(r.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrQueryTooShort):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrQueryTooShort.Error(), "")
		case errors.Is(err, apperrors.ErrAPIKeyNotConfigured):
			response.RespondError(w, http.StatusServiceUnavailable, apperrors.ErrAPIKeyNotConfigured.Error(), "")
		default:
			response.RespondError(w, http.StatusBadGateway, apperrors.ErrFailedToSearchSecurities.Error(), err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, results)
}

// StockData handles GET requests for a ticker's merged security and dividend
// data, including the informational safety score.
//
// Endpoint: GET /api/security/{ticker}
// Response: 200 OK with StockData
// Error: 503 Service Unavailable when no API key is configured
// Error: 502 Bad Gateway when the provider call fails
func (h *SecurityHandler) StockData(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	data, err := h.marketDataService.StockData(r.Context(), ticker)
	if err != nil {
		if errors.Is(err, apperrors.ErrAPIKeyNotConfigured) {
			response.RespondError(w, http.StatusServiceUnavailable, apperrors.ErrAPIKeyNotConfigured.Error(), "")
			return
		}
		response.RespondError(w, http.StatusBadGateway, apperrors.ErrFailedToRetrieveStockData.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, data)
}
