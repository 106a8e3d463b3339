package handlers

import (
	"bytes"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/divitrack/Dividend-Tracker-Backend/internal/api/request"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/api/response"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/apperrors"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/service"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/validation"
)

// EventHandler handles HTTP requests for dividend event endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the event and export services.
type EventHandler struct {
	eventService  *service.EventService
	exportService *service.ExportService
}

// NewEventHandler creates a new EventHandler with the provided service dependencies.
func NewEventHandler(eventService *service.EventService, exportService *service.ExportService) *EventHandler {
	return &EventHandler{
		eventService:  eventService,
		exportService: exportService,
	}
}

// ListEvents handles GET requests to retrieve all dividend events.
//
// Endpoint: GET /api/events
// Response: 200 OK with array of DividendEvent
// Error: 500 Internal Server Error if retrieval fails
func (h *EventHandler) ListEvents(w http.ResponseWriter, _ *http.Request) {
	events, err := h.eventService.ListEvents()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveEvents.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, events)
}

// GetEvent handles GET requests to retrieve a single event.
//
// Endpoint: GET /api/events/{uuid}
// Response: 200 OK with DividendEvent
// Error: 404 Not Found if the event does not exist
// Error: 500 Internal Server Error if retrieval fails
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "uuid")

	event, err := h.eventService.GetEvent(eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrEventNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrEventNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveEvents.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, event)
}

// CreateEvent handles POST requests to create a new dividend event.
// Validates the request body and creates the event in the store.
//
// Endpoint: POST /api/events
// Request Body: CreateEventRequest (ticker, exDate, and optionally payDate,
// amount, yield, yieldOnCost, price, received, status, notes)
// Response: 201 Created with DividendEvent
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateEventRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateEvent(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	event, err := h.eventService.CreateEvent(req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToCreateEvent.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, event)
}

// CreateCashEvent handles POST requests to record a cash contribution.
// Cash contributions share the event table under the CASH ticker.
//
// Endpoint: POST /api/events/cash
// Request Body: CreateCashEventRequest (amount, date, optionally notes)
// Response: 201 Created with DividendEvent
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *EventHandler) CreateCashEvent(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateCashEventRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateCashEvent(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	event, err := h.eventService.CreateCashEvent(req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToCreateEvent.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, event)
}

// UpdateEvent handles PUT requests to update an existing event.
//
// Endpoint: PUT /api/events/{uuid}
// Request Body: UpdateEventRequest (all fields optional)
// Response: 200 OK with updated DividendEvent
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if the event does not exist
// Error: 500 Internal Server Error if the update fails
func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateEventRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateEvent(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	event, err := h.eventService.UpdateEvent(eventID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrEventNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrEventNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToUpdateEvent.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, event)
}

// DeleteEvent handles DELETE requests to remove an event.
//
// Endpoint: DELETE /api/events/{uuid}
// Response: 204 No Content on successful deletion
// Error: 404 Not Found if the event does not exist
// Error: 500 Internal Server Error if deletion fails
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "uuid")

	if err := h.eventService.DeleteEvent(eventID); err != nil {
		if errors.Is(err, apperrors.ErrEventNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrEventNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToDeleteEvent.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// ExportCSV handles GET requests to download the full event list as CSV.
//
// Endpoint: GET /api/events/export
// Response: 200 OK, text/csv attachment
// Error: 500 Internal Server Error if the export fails
func (h *EventHandler) ExportCSV(w http.ResponseWriter, _ *http.Request) {
	// Build the document up front so a store failure can still produce a
	// clean error response instead of a truncated download.
	var buf bytes.Buffer
	if err := h.exportService.WriteCSV(&buf); err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToExportCSV.Error(), err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="dividend_events.csv"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("failed to write CSV response: %v", err)
	}
}
