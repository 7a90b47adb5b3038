package handler

import (
	"context"
	"net/http"

	"github.com/osse101/Milestone_Go/internal/domain"
)

// PreferenceService reads and replaces the user preferences
type PreferenceService interface {
	Preferences(ctx context.Context) domain.UserPreferences
	UpdatePreferences(ctx context.Context, prefs domain.UserPreferences) ([]domain.PreferenceChange, error)
}

// SettingsHandler handles preference requests
type SettingsHandler struct {
	service PreferenceService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(service PreferenceService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// UpdatePreferencesResponse lists the settings that changed
type UpdatePreferencesResponse struct {
	Message     string                    `json:"message"`
	Changes     []domain.PreferenceChange `json:"changes"`
	Preferences domain.UserPreferences    `json:"preferences"`
}

// HandleGet returns the preferences
// @Summary Get preferences
// @Tags settings
// @Produce json
// @Success 200 {object} domain.UserPreferences
// @Security ApiKeyAuth
// @Router /api/v1/settings [get]
func (h *SettingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.Preferences(r.Context()))
}

// HandleUpdate replaces the preferences
// @Summary Update preferences
// @Tags settings
// @Accept json
// @Produce json
// @Param request body domain.UserPreferences true "Complete preference set"
// @Success 200 {object} UpdatePreferencesResponse
// @Failure 400 {object} ValidationErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/settings [put]
func (h *SettingsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var prefs domain.UserPreferences
	if err := DecodeAndValidateRequest(r, w, &prefs, "Update preferences"); err != nil {
		return
	}
	changes, err := h.service.UpdatePreferences(r.Context(), prefs)
	if err != nil {
		respondServiceError(w, r, "Update preferences", err)
		return
	}
	if changes == nil {
		changes = []domain.PreferenceChange{}
	}
	respondJSON(w, http.StatusOK, UpdatePreferencesResponse{
		Message:     MsgPreferencesUpdated,
		Changes:     changes,
		Preferences: h.service.Preferences(r.Context()),
	})
}
