package handlers

import (
	"net/http"
	"strings"

	"github.com/divitrack/Dividend-Tracker-Backend/internal/api/request"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/api/response"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/apperrors"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/service"
)

// SettingsHandler handles HTTP requests for application settings. The stored
// API key is sealed at rest and never echoed back.
type SettingsHandler struct {
	marketDataService *service.MarketDataService
}

// NewSettingsHandler creates a new SettingsHandler with the provided service dependency.
func NewSettingsHandler(marketDataService *service.MarketDataService) *SettingsHandler {
	return &SettingsHandler{
		marketDataService: marketDataService,
	}
}

// APIKeyStatusResponse reports whether a market-data API key is available.
type APIKeyStatusResponse struct {
	Configured bool `json:"configured"`
}

// GetAPIKeyStatus handles GET requests for the API key's presence.
//
// Endpoint: GET /api/settings/api-key
// Response: 200 OK with APIKeyStatusResponse
func (h *SettingsHandler) GetAPIKeyStatus(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, APIKeyStatusResponse{
		Configured: h.marketDataService.APIKeyConfigured(),
	})
}

// SetAPIKey handles PUT requests to store the market-data API key.
//
// Endpoint: PUT /api/settings/api-key
// Request Body: SetAPIKeyRequest
// Response: 204 No Content
// Error: 400 Bad Request for an empty key or invalid body
// Error: 500 Internal Server Error if storing fails
func (h *SettingsHandler) SetAPIKey(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.SetAPIKeyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if strings.TrimSpace(req.APIKey) == "" {
		response.RespondError(w, http.StatusBadRequest, "apiKey is required", "")
		return
	}

	if err := h.marketDataService.SetAPIKey(req.APIKey); err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToStoreSetting.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
