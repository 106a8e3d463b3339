package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/divitrack/Dividend-Tracker-Backend/internal/api/response"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/apperrors"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/service"
)

// QuoteHandler handles HTTP requests for cached quotes.
type QuoteHandler struct {
	quoteService *service.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler with the provided service dependency.
func NewQuoteHandler(quoteService *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
	}
}

// GetQuote handles GET requests for a ticker's cached quote. The cache is
// refreshed by the scheduled quote-refresh job.
//
// Endpoint: GET /api/quote/{ticker}
// Response: 200 OK with Quote
// Error: 404 Not Found when the ticker has never been refreshed
// Error: 500 Internal Server Error if retrieval fails
func (h *QuoteHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	quote, err := h.quoteService.GetQuote(ticker)
	if err != nil {
		if errors.Is(err, apperrors.ErrQuoteNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrQuoteNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveQuote.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, quote)
}
