package handler

import (
	"context"
	"net/http"

	"github.com/osse101/Milestone_Go/internal/domain"
)

// AchievementService is the achievement tracker surface exposed over HTTP
type AchievementService interface {
	Get(id string) (domain.Achievement, error)
	GetAll() []domain.Achievement
	GetByCategory(category domain.AchievementCategory) []domain.Achievement
	GetUnlocked() []domain.Achievement
	UpdateProgress(ctx context.Context, id string, value int) bool
	Unlock(ctx context.Context, id string) bool
	RecomputeFromSignals(ctx context.Context) []string
	UserProgress() domain.UserProgress
}

// AchievementHandler handles achievement and user progress requests
type AchievementHandler struct {
	service AchievementService
}

// NewAchievementHandler creates a new achievement handler
func NewAchievementHandler(service AchievementService) *AchievementHandler {
	return &AchievementHandler{service: service}
}

// AchievementProgressRequest sets the progress of one achievement
type AchievementProgressRequest struct {
	ID    string `json:"id" validate:"notblank"`
	Value int    `json:"value" validate:"min=0"`
}

// AchievementUnlockRequest unlocks one achievement directly
type AchievementUnlockRequest struct {
	ID string `json:"id" validate:"notblank"`
}

// AchievementUpdateResponse reports the achievement after an update
type AchievementUpdateResponse struct {
	Unlocked    bool               `json:"newly_unlocked"`
	Achievement domain.Achievement `json:"achievement"`
}

// RecomputeResponse lists achievements unlocked by a recompute
type RecomputeResponse struct {
	Unlocked []string `json:"unlocked"`
}

// HandleList returns every achievement, optionally filtered by category
// @Summary List achievements
// @Tags achievements
// @Produce json
// @Param category query string false "Category key or display name (tapping, social, learning, engagement, premium)"
// @Success 200 {array} domain.Achievement
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/achievements [get]
func (h *AchievementHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("category")
	if raw == "" {
		respondJSON(w, http.StatusOK, h.service.GetAll())
		return
	}

	category, err := domain.ParseAchievementCategory(raw)
	if err != nil {
		respondServiceError(w, r, "List achievements", err)
		return
	}
	respondJSON(w, http.StatusOK, h.service.GetByCategory(category))
}

// HandleUnlocked returns unlocked achievements
// @Summary List unlocked achievements
// @Tags achievements
// @Produce json
// @Success 200 {array} domain.Achievement
// @Security ApiKeyAuth
// @Router /api/v1/achievements/unlocked [get]
func (h *AchievementHandler) HandleUnlocked(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.GetUnlocked())
}

// HandleGet returns a single achievement
// @Summary Get achievement
// @Tags achievements
// @Produce json
// @Param id path string true "Achievement ID"
// @Success 200 {object} domain.Achievement
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/achievements/{id} [get]
func (h *AchievementHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}
	a, err := h.service.Get(id)
	if err != nil {
		respondServiceError(w, r, "Get achievement", err)
		return
	}
	respondJSON(w, http.StatusOK, a)
}

// HandleProgress sets achievement progress
// @Summary Update achievement progress
// @Tags achievements
// @Accept json
// @Produce json
// @Param request body AchievementProgressRequest true "Progress update"
// @Success 200 {object} AchievementUpdateResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/achievements/progress [post]
func (h *AchievementHandler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	var req AchievementProgressRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Achievement progress"); err != nil {
		return
	}
	if _, err := h.service.Get(req.ID); err != nil {
		respondServiceError(w, r, "Achievement progress", err)
		return
	}

	unlocked := h.service.UpdateProgress(r.Context(), req.ID, req.Value)
	a, _ := h.service.Get(req.ID)
	respondJSON(w, http.StatusOK, AchievementUpdateResponse{Unlocked: unlocked, Achievement: a})
}

// HandleUnlock unlocks an achievement directly
// @Summary Unlock achievement
// @Tags achievements
// @Accept json
// @Produce json
// @Param request body AchievementUnlockRequest true "Achievement to unlock"
// @Success 200 {object} AchievementUpdateResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/achievements/unlock [post]
func (h *AchievementHandler) HandleUnlock(w http.ResponseWriter, r *http.Request) {
	var req AchievementUnlockRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Achievement unlock"); err != nil {
		return
	}
	if _, err := h.service.Get(req.ID); err != nil {
		respondServiceError(w, r, "Achievement unlock", err)
		return
	}

	unlocked := h.service.Unlock(r.Context(), req.ID)
	a, _ := h.service.Get(req.ID)
	respondJSON(w, http.StatusOK, AchievementUpdateResponse{Unlocked: unlocked, Achievement: a})
}

// HandleRecompute re-derives achievement progress from stored signals
// @Summary Recompute achievements
// @Tags achievements
// @Produce json
// @Success 200 {object} RecomputeResponse
// @Security ApiKeyAuth
// @Router /api/v1/achievements/recompute [post]
func (h *AchievementHandler) HandleRecompute(w http.ResponseWriter, r *http.Request) {
	unlocked := h.service.RecomputeFromSignals(r.Context())
	if unlocked == nil {
		unlocked = []string{}
	}
	respondJSON(w, http.StatusOK, RecomputeResponse{Unlocked: unlocked})
}

// HandleUserProgress returns the aggregate user progress record
// @Summary Get user progress
// @Tags progress
// @Produce json
// @Success 200 {object} domain.UserProgress
// @Security ApiKeyAuth
// @Router /api/v1/progress [get]
func (h *AchievementHandler) HandleUserProgress(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.UserProgress())
}
