package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/divitrack/Dividend-Tracker-Backend/internal/api/response"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/apperrors"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/service"
)

// defaultScale is applied when the scale query parameter is omitted,
// matching the chart's default view.
const defaultScale = "monthly"

// TimelineHandler handles HTTP requests for the aggregated timeline and
// calendar views.
type TimelineHandler struct {
	timelineService *service.TimelineService
}

// NewTimelineHandler creates a new TimelineHandler with the provided service dependency.
func NewTimelineHandler(timelineService *service.TimelineService) *TimelineHandler {
	return &TimelineHandler{
		timelineService: timelineService,
	}
}

// Timeline handles GET requests for the cumulative dividend timeline.
//
// Endpoint: GET /api/timeline?scale={daily|weekly|monthly|quarterly|annually}
// Response: 200 OK with array of TimelinePoint (empty array when no events)
// Error: 400 Bad Request for an unknown scale
// Error: 500 Internal Server Error if the event snapshot cannot be loaded
func (h *TimelineHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	scale := r.URL.Query().Get("scale")
	if scale == "" {
		scale = defaultScale
	}

	series, err := h.timelineService.BuildTimeline(scale)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidScale) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidScale.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBuildTimeline.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, series)
}

// Calendar handles GET requests for the full calendar mapping.
//
// Endpoint: GET /api/calendar
// Response: 200 OK with date-keyed occurrence mapping
// Error: 500 Internal Server Error if the event snapshot cannot be loaded
func (h *TimelineHandler) Calendar(w http.ResponseWriter, _ *http.Request) {
	buckets, err := h.timelineService.CalendarBuckets()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBuildTimeline.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, buckets)
}

// CalendarDay handles GET requests for one calendar date's occurrences.
// An empty array response means the date has nothing to show.
//
// Endpoint: GET /api/calendar/{date}
// Response: 200 OK with array of Occurrence
// Error: 400 Bad Request for a malformed date
// Error: 500 Internal Server Error if the event snapshot cannot be loaded
func (h *TimelineHandler) CalendarDay(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	occurrences, err := h.timelineService.CalendarDay(date)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDate) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDate.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBuildTimeline.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, occurrences)
}
