package handler

import (
	"context"
	"net/http"

	"github.com/osse101/Milestone_Go/internal/domain"
)

// ChallengeService is the daily challenge engine surface exposed over HTTP
type ChallengeService interface {
	GetCurrent(ctx context.Context) domain.DailyChallenge
	UpdateProgress(ctx context.Context, keyword string, increment int) bool
	RewardPoints(ctx context.Context) int
}

// ChallengeHandler handles daily challenge requests
type ChallengeHandler struct {
	service ChallengeService
}

// NewChallengeHandler creates a new challenge handler
func NewChallengeHandler(service ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{service: service}
}

// ChallengeProgressRequest reports activity matching a keyword
type ChallengeProgressRequest struct {
	Keyword   string `json:"keyword" validate:"notblank,max=64"`
	Increment int    `json:"increment" validate:"min=1,max=1000"`
}

// ChallengeProgressResponse is the challenge after a progress update
type ChallengeProgressResponse struct {
	Completed bool                  `json:"completed"`
	Challenge domain.DailyChallenge `json:"challenge"`
}

// RewardPointsResponse carries the banked reward points
type RewardPointsResponse struct {
	RewardPoints int `json:"reward_points"`
}

// HandleGetCurrent returns today's challenge
// @Summary Get today's challenge
// @Tags challenge
// @Produce json
// @Success 200 {object} domain.DailyChallenge
// @Security ApiKeyAuth
// @Router /api/v1/challenge [get]
func (h *ChallengeHandler) HandleGetCurrent(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.GetCurrent(r.Context()))
}

// HandleProgress adds progress to today's challenge when the keyword matches
// @Summary Update challenge progress
// @Tags challenge
// @Accept json
// @Produce json
// @Param request body ChallengeProgressRequest true "Keyword and increment"
// @Success 200 {object} ChallengeProgressResponse
// @Failure 400 {object} ValidationErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/challenge/progress [post]
func (h *ChallengeHandler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	var req ChallengeProgressRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Challenge progress"); err != nil {
		return
	}

	completed := h.service.UpdateProgress(r.Context(), req.Keyword, req.Increment)
	respondJSON(w, http.StatusOK, ChallengeProgressResponse{
		Completed: completed,
		Challenge: h.service.GetCurrent(r.Context()),
	})
}

// HandleRewards returns the reward points banked from completed challenges
// @Summary Get reward points
// @Tags challenge
// @Produce json
// @Success 200 {object} RewardPointsResponse
// @Security ApiKeyAuth
// @Router /api/v1/challenge/rewards [get]
func (h *ChallengeHandler) HandleRewards(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, RewardPointsResponse{RewardPoints: h.service.RewardPoints(r.Context())})
}
