package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/osse101/Milestone_Go/internal/network"
)

// NetworkHandler handles network simulation requests
type NetworkHandler struct {
	sim *network.Simulator
}

// NewNetworkHandler creates a new network handler
func NewNetworkHandler(sim *network.Simulator) *NetworkHandler {
	return &NetworkHandler{sim: sim}
}

// NetworkStatusResponse is the current simulated network state
type NetworkStatusResponse struct {
	Available bool  `json:"available"`
	LatencyMs int64 `json:"latency_ms"`
}

// SetAvailabilityRequest toggles simulated connectivity
type SetAvailabilityRequest struct {
	Available *bool `json:"available" validate:"required"`
}

// SetLatencyRequest sets the simulated latency
type SetLatencyRequest struct {
	LatencyMs int64 `json:"latency_ms" validate:"min=1,max=30000"`
}

// APICallRequest runs one simulated API call
type APICallRequest struct {
	Endpoint string          `json:"endpoint" validate:"notblank,max=256"`
	Data     json.RawMessage `json:"data"`
}

// APICallResponse echoes the payload of a successful simulated call
type APICallResponse struct {
	Endpoint string          `json:"endpoint"`
	Data     json.RawMessage `json:"data"`
}

func (h *NetworkHandler) status() NetworkStatusResponse {
	return NetworkStatusResponse{
		Available: h.sim.IsNetworkAvailable(),
		LatencyMs: h.sim.Latency().Milliseconds(),
	}
}

// HandleStatus returns the simulated network state
// @Summary Get network simulation state
// @Tags network
// @Produce json
// @Success 200 {object} NetworkStatusResponse
// @Security ApiKeyAuth
// @Router /api/v1/network [get]
func (h *NetworkHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.status())
}

// HandleSetAvailability toggles simulated connectivity
// @Summary Set network availability
// @Tags network
// @Accept json
// @Produce json
// @Param request body SetAvailabilityRequest true "Availability"
// @Success 200 {object} NetworkStatusResponse
// @Failure 400 {object} ValidationErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/network/availability [post]
func (h *NetworkHandler) HandleSetAvailability(w http.ResponseWriter, r *http.Request) {
	var req SetAvailabilityRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set network availability"); err != nil {
		return
	}
	h.sim.SetNetworkAvailable(r.Context(), *req.Available)
	respondJSON(w, http.StatusOK, h.status())
}

// HandleSetLatency sets the simulated latency
// @Summary Set network latency
// @Tags network
// @Accept json
// @Produce json
// @Param request body SetLatencyRequest true "Latency in milliseconds"
// @Success 200 {object} NetworkStatusResponse
// @Failure 400 {object} ValidationErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/network/latency [post]
func (h *NetworkHandler) HandleSetLatency(w http.ResponseWriter, r *http.Request) {
	var req SetLatencyRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set network latency"); err != nil {
		return
	}
	h.sim.SetSimulatedLatency(r.Context(), time.Duration(req.LatencyMs)*time.Millisecond)
	respondJSON(w, http.StatusOK, h.status())
}

// HandleCall runs a simulated API call and waits for its outcome
// @Summary Simulate API call
// @Tags network
// @Accept json
// @Produce json
// @Param request body APICallRequest true "Endpoint and payload"
// @Success 200 {object} APICallResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/network/call [post]
func (h *NetworkHandler) HandleCall(w http.ResponseWriter, r *http.Request) {
	var req APICallRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Simulated API call"); err != nil {
		return
	}

	data, err := network.Call(r.Context(), h.sim, req.Endpoint, req.Data)
	if err != nil {
		respondServiceError(w, r, "Simulated API call", err)
		return
	}
	respondJSON(w, http.StatusOK, APICallResponse{Endpoint: req.Endpoint, Data: data})
}
