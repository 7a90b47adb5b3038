package handler

import (
	"context"
	"net/http"

	"github.com/osse101/Milestone_Go/internal/analytics"
	"github.com/osse101/Milestone_Go/internal/domain"
	"github.com/osse101/Milestone_Go/internal/eventlog"
	"github.com/osse101/Milestone_Go/internal/logger"
)

// Event log query defaults
const (
	DefaultEventLogLimit = 100
	MaxEventLogLimit     = eventlog.MaxQueryLimit
)

// AnalyticsService is the analytics sink surface exposed over HTTP
type AnalyticsService interface {
	TrackEvent(ctx context.Context, name domain.EventType, props domain.Properties)
	Events() []domain.AnalyticsEvent
	Summary() analytics.Summary
	Export() ([]byte, error)
	Clear(ctx context.Context)
	UserProperties(ctx context.Context) domain.Properties
	SetUserProperty(ctx context.Context, key string, value domain.Value)
}

// EventLogQuerier reads the durable event log
type EventLogQuerier interface {
	Query(ctx context.Context, filter eventlog.Filter) ([]eventlog.Event, error)
}

// AnalyticsHandler handles analytics requests
type AnalyticsHandler struct {
	service  AnalyticsService
	eventLog EventLogQuerier
}

// NewAnalyticsHandler creates a new analytics handler. eventLog may be nil when no
// durable event log is configured.
func NewAnalyticsHandler(service AnalyticsService, eventLog EventLogQuerier) *AnalyticsHandler {
	return &AnalyticsHandler{service: service, eventLog: eventLog}
}

// TrackEventRequest records a client-side event
type TrackEventRequest struct {
	Name       string            `json:"name" validate:"notblank,max=64"`
	Properties domain.Properties `json:"properties"`
}

// SetUserPropertyRequest sets one user property
type SetUserPropertyRequest struct {
	Key   string       `json:"key" validate:"notblank,max=64"`
	Value domain.Value `json:"value"`
}

// HandleEvents returns the in-memory event buffer, oldest first
// @Summary List recorded events
// @Tags analytics
// @Produce json
// @Success 200 {array} domain.AnalyticsEvent
// @Security ApiKeyAuth
// @Router /api/v1/analytics/events [get]
func (h *AnalyticsHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.Events())
}

// HandleSummary returns per-session event counts
// @Summary Get analytics summary
// @Tags analytics
// @Produce json
// @Success 200 {object} analytics.Summary
// @Security ApiKeyAuth
// @Router /api/v1/analytics/summary [get]
func (h *AnalyticsHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.Summary())
}

// HandleExport returns the recorded events as an indented JSON document
// @Summary Export analytics
// @Tags analytics
// @Produce json
// @Success 200 {array} object
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/analytics/export [get]
func (h *AnalyticsHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.Export()
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgExportFailed, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgExportFailed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="analytics.json"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.FromContext(r.Context()).Error(LogMsgWriteFailed, "error", err)
	}
}

// HandleClear drops the in-memory event buffer
// @Summary Clear recorded events
// @Tags analytics
// @Produce json
// @Success 200 {object} SuccessResponse
// @Security ApiKeyAuth
// @Router /api/v1/analytics/events [delete]
func (h *AnalyticsHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	h.service.Clear(r.Context())
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgEventsCleared})
}

// HandleTrack records an event reported by the client
// @Summary Track event
// @Tags analytics
// @Accept json
// @Produce json
// @Param request body TrackEventRequest true "Event"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ValidationErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/analytics/events [post]
func (h *AnalyticsHandler) HandleTrack(w http.ResponseWriter, r *http.Request) {
	var req TrackEventRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Track event"); err != nil {
		return
	}
	h.service.TrackEvent(r.Context(), domain.EventType(req.Name), req.Properties)
	respondJSON(w, http.StatusCreated, SuccessResponse{Message: MsgEventRecorded})
}

// HandleUserProperties returns all user properties
// @Summary Get user properties
// @Tags analytics
// @Produce json
// @Success 200 {object} domain.Properties
// @Security ApiKeyAuth
// @Router /api/v1/analytics/user-properties [get]
func (h *AnalyticsHandler) HandleUserProperties(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.UserProperties(r.Context()))
}

// HandleSetUserProperty sets one user property
// @Summary Set user property
// @Tags analytics
// @Accept json
// @Produce json
// @Param request body SetUserPropertyRequest true "Property"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ValidationErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/analytics/user-properties [post]
func (h *AnalyticsHandler) HandleSetUserProperty(w http.ResponseWriter, r *http.Request) {
	var req SetUserPropertyRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set user property"); err != nil {
		return
	}
	h.service.SetUserProperty(r.Context(), req.Key, req.Value)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgUserPropertySet})
}

// HandleEventLog queries the durable event log
// @Summary Query event log
// @Tags analytics
// @Produce json
// @Param name query string false "Event name"
// @Param session_id query string false "Session ID"
// @Param since query string false "RFC3339 lower bound"
// @Param until query string false "RFC3339 upper bound"
// @Param limit query int false "Maximum results (default 100, max 500)"
// @Success 200 {array} eventlog.Event
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/analytics/log [get]
func (h *AnalyticsHandler) HandleEventLog(w http.ResponseWriter, r *http.Request) {
	if h.eventLog == nil {
		respondError(w, http.StatusServiceUnavailable, ErrMsgEventLogUnavailable)
		return
	}

	limit, ok := GetLimitParam(r, w, DefaultEventLogLimit, MaxEventLogLimit)
	if !ok {
		return
	}
	since, ok := GetTimeParam(r, w, "since")
	if !ok {
		return
	}
	until, ok := GetTimeParam(r, w, "until")
	if !ok {
		return
	}

	filter := eventlog.Filter{Since: since, Until: until, Limit: limit}
	if name := r.URL.Query().Get("name"); name != "" {
		filter.Name = &name
	}
	if session := r.URL.Query().Get("session_id"); session != "" {
		filter.SessionID = &session
	}

	events, err := h.eventLog.Query(r.Context(), filter)
	if err != nil {
		respondServiceError(w, r, "Query event log", err)
		return
	}
	if events == nil {
		events = []eventlog.Event{}
	}
	respondJSON(w, http.StatusOK, events)
}
