package handler

import (
	"context"
	"net/http"
)

// TopicService is the topic list surface exposed over HTTP
type TopicService interface {
	Topics(ctx context.Context) []string
	AddTopic(ctx context.Context, topic string) ([]string, error)
	RemoveTopic(ctx context.Context, topic string) ([]string, error)
	ResetTopics(ctx context.Context) ([]string, error)
	SearchTopics(ctx context.Context, query string) []string
	ViewTopic(ctx context.Context, topic string) error
	CompleteTopic(ctx context.Context, topic string) (bool, error)
	FavoriteTopic(ctx context.Context, topic string) (bool, error)
	RateTopic(ctx context.Context, topic string, rating int) error
}

// TopicHandler handles topic list requests. Topics are passed in request bodies
// because they routinely contain emoji and spaces.
type TopicHandler struct {
	service TopicService
}

// NewTopicHandler creates a new topic handler
func NewTopicHandler(service TopicService) *TopicHandler {
	return &TopicHandler{service: service}
}

// TopicRequest names one topic
type TopicRequest struct {
	Topic string `json:"topic" validate:"notblank,max=200"`
}

// RateTopicRequest rates one topic
type RateTopicRequest struct {
	Topic  string `json:"topic" validate:"notblank,max=200"`
	Rating int    `json:"rating"`
}

// TopicsResponse carries the topic list
type TopicsResponse struct {
	Topics []string `json:"topics"`
}

// TopicCompletedResponse reports whether a completion was new
type TopicCompletedResponse struct {
	Topic     string `json:"topic"`
	Completed bool   `json:"newly_completed"`
}

// TopicFavoriteResponse reports the favorite state after a toggle
type TopicFavoriteResponse struct {
	Topic     string `json:"topic"`
	Favorited bool   `json:"favorited"`
}

// HandleList returns the topic list, filtered when ?q= is given
// @Summary List or search topics
// @Tags topics
// @Produce json
// @Param q query string false "Case-insensitive search"
// @Success 200 {object} TopicsResponse
// @Security ApiKeyAuth
// @Router /api/v1/topics [get]
func (h *TopicHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	var topics []string
	if q == "" {
		topics = h.service.Topics(r.Context())
	} else {
		topics = h.service.SearchTopics(r.Context(), q)
	}
	respondJSON(w, http.StatusOK, TopicsResponse{Topics: topics})
}

// HandleAdd appends a topic
// @Summary Add topic
// @Tags topics
// @Accept json
// @Produce json
// @Param request body TopicRequest true "Topic"
// @Success 201 {object} TopicsResponse
// @Failure 409 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/topics [post]
func (h *TopicHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req TopicRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add topic"); err != nil {
		return
	}
	topics, err := h.service.AddTopic(r.Context(), req.Topic)
	if err != nil {
		respondServiceError(w, r, "Add topic", err)
		return
	}
	respondJSON(w, http.StatusCreated, TopicsResponse{Topics: topics})
}

// HandleRemove deletes a topic
// @Summary Remove topic
// @Tags topics
// @Accept json
// @Produce json
// @Param request body TopicRequest true "Topic"
// @Success 200 {object} TopicsResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/topics/remove [post]
func (h *TopicHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	var req TopicRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Remove topic"); err != nil {
		return
	}
	topics, err := h.service.RemoveTopic(r.Context(), req.Topic)
	if err != nil {
		respondServiceError(w, r, "Remove topic", err)
		return
	}
	respondJSON(w, http.StatusOK, TopicsResponse{Topics: topics})
}

// HandleReset restores the default topics
// @Summary Reset topics
// @Tags topics
// @Produce json
// @Success 200 {object} TopicsResponse
// @Security ApiKeyAuth
// @Router /api/v1/topics/reset [post]
func (h *TopicHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	topics, err := h.service.ResetTopics(r.Context())
	if err != nil {
		respondServiceError(w, r, "Reset topics", err)
		return
	}
	respondJSON(w, http.StatusOK, TopicsResponse{Topics: topics})
}

// HandleView records that a topic was opened
// @Summary View topic
// @Tags topics
// @Accept json
// @Produce json
// @Param request body TopicRequest true "Topic"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/topics/view [post]
func (h *TopicHandler) HandleView(w http.ResponseWriter, r *http.Request) {
	var req TopicRequest
	if err := DecodeAndValidateRequest(r, w, &req, "View topic"); err != nil {
		return
	}
	if err := h.service.ViewTopic(r.Context(), req.Topic); err != nil {
		respondServiceError(w, r, "View topic", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgTopicViewed})
}

// HandleComplete marks a topic completed
// @Summary Complete topic
// @Tags topics
// @Accept json
// @Produce json
// @Param request body TopicRequest true "Topic"
// @Success 200 {object} TopicCompletedResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/topics/complete [post]
func (h *TopicHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	var req TopicRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Complete topic"); err != nil {
		return
	}
	added, err := h.service.CompleteTopic(r.Context(), req.Topic)
	if err != nil {
		respondServiceError(w, r, "Complete topic", err)
		return
	}
	respondJSON(w, http.StatusOK, TopicCompletedResponse{Topic: req.Topic, Completed: added})
}

// HandleFavorite toggles a favorite
// @Summary Toggle favorite topic
// @Tags topics
// @Accept json
// @Produce json
// @Param request body TopicRequest true "Topic"
// @Success 200 {object} TopicFavoriteResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/topics/favorite [post]
func (h *TopicHandler) HandleFavorite(w http.ResponseWriter, r *http.Request) {
	var req TopicRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Favorite topic"); err != nil {
		return
	}
	favorited, err := h.service.FavoriteTopic(r.Context(), req.Topic)
	if err != nil {
		respondServiceError(w, r, "Favorite topic", err)
		return
	}
	respondJSON(w, http.StatusOK, TopicFavoriteResponse{Topic: req.Topic, Favorited: favorited})
}

// HandleRate rates a topic from 1 to 5
// @Summary Rate topic
// @Tags topics
// @Accept json
// @Produce json
// @Param request body RateTopicRequest true "Topic and rating"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/topics/rate [post]
func (h *TopicHandler) HandleRate(w http.ResponseWriter, r *http.Request) {
	var req RateTopicRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Rate topic"); err != nil {
		return
	}
	if err := h.service.RateTopic(r.Context(), req.Topic, req.Rating); err != nil {
		respondServiceError(w, r, "Rate topic", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgTopicRated})
}
