package handler

import (
	"context"
	"encoding/base64"
	"net/http"

	"github.com/osse101/Milestone_Go/internal/domain"
	"github.com/osse101/Milestone_Go/internal/logger"
)

// MaxPhotoBytes caps the decoded size of a profile photo
const MaxPhotoBytes = 5 << 20

// ActivityService is the user activity surface exposed over HTTP
type ActivityService interface {
	Tap(ctx context.Context) (int, error)
	ResetTaps(ctx context.Context) error
	TapCount(ctx context.Context) (int, error)
	ViewScreen(ctx context.Context, screen string) error
	ShareContent(ctx context.Context, kind string) error
	Dashboard(ctx context.Context) domain.Dashboard

	Profile(ctx context.Context) (domain.Profile, error)
	UpdateProfile(ctx context.Context, name, email, location string) (domain.Profile, error)
	SetProfilePhoto(ctx context.Context, data []byte) error
	ProfilePhoto(ctx context.Context) ([]byte, bool, error)
	RemoveProfilePhoto(ctx context.Context) error
}

// ActivityHandler handles taps, screen views, shares and profile requests
type ActivityHandler struct {
	service ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(service ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// TapResponse carries the tap counter
type TapResponse struct {
	TapCount int `json:"tap_count"`
}

// ScreenViewRequest records a screen view
type ScreenViewRequest struct {
	Screen string `json:"screen" validate:"notblank,max=64"`
}

// ShareRequest records a content share
type ShareRequest struct {
	ContentType string `json:"content_type" validate:"notblank,max=64"`
}

// UpdateProfileRequest updates the non-empty profile fields
type UpdateProfileRequest struct {
	Name     string `json:"name" validate:"max=100"`
	Email    string `json:"email" validate:"omitempty,email,max=254"`
	Location string `json:"location" validate:"max=100"`
}

// ProfilePhotoRequest uploads a base64 encoded photo
type ProfilePhotoRequest struct {
	Photo string `json:"photo" validate:"required"`
}

// HandleTap increments the tap counter
// @Summary Tap
// @Tags activity
// @Produce json
// @Success 200 {object} TapResponse
// @Security ApiKeyAuth
// @Router /api/v1/activity/tap [post]
func (h *ActivityHandler) HandleTap(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.Tap(r.Context())
	if err != nil {
		respondServiceError(w, r, "Tap", err)
		return
	}
	respondJSON(w, http.StatusOK, TapResponse{TapCount: count})
}

// HandleTapCount returns the tap counter
// @Summary Get tap count
// @Tags activity
// @Produce json
// @Success 200 {object} TapResponse
// @Security ApiKeyAuth
// @Router /api/v1/activity/tap [get]
func (h *ActivityHandler) HandleTapCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.TapCount(r.Context())
	if err != nil {
		respondServiceError(w, r, "Get tap count", err)
		return
	}
	respondJSON(w, http.StatusOK, TapResponse{TapCount: count})
}

// HandleResetTaps resets the tap counter
// @Summary Reset taps
// @Tags activity
// @Produce json
// @Success 200 {object} SuccessResponse
// @Security ApiKeyAuth
// @Router /api/v1/activity/tap/reset [post]
func (h *ActivityHandler) HandleResetTaps(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ResetTaps(r.Context()); err != nil {
		respondServiceError(w, r, "Reset taps", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgTapsReset})
}

// HandleScreenView records a screen view
// @Summary Record screen view
// @Tags activity
// @Accept json
// @Produce json
// @Param request body ScreenViewRequest true "Screen"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ValidationErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/activity/screen [post]
func (h *ActivityHandler) HandleScreenView(w http.ResponseWriter, r *http.Request) {
	var req ScreenViewRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Screen view"); err != nil {
		return
	}
	if err := h.service.ViewScreen(r.Context(), req.Screen); err != nil {
		respondServiceError(w, r, "Screen view", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgScreenRecorded})
}

// HandleShare records a content share
// @Summary Share content
// @Tags activity
// @Accept json
// @Produce json
// @Param request body ShareRequest true "Content type"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ValidationErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/activity/share [post]
func (h *ActivityHandler) HandleShare(w http.ResponseWriter, r *http.Request) {
	var req ShareRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Share"); err != nil {
		return
	}
	if err := h.service.ShareContent(r.Context(), req.ContentType); err != nil {
		respondServiceError(w, r, "Share", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgContentShared})
}

// HandleDashboard returns the home screen read model
// @Summary Get dashboard
// @Tags progress
// @Produce json
// @Success 200 {object} domain.Dashboard
// @Security ApiKeyAuth
// @Router /api/v1/dashboard [get]
func (h *ActivityHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.Dashboard(r.Context()))
}

// HandleGetProfile returns the profile
// @Summary Get profile
// @Tags profile
// @Produce json
// @Success 200 {object} domain.Profile
// @Security ApiKeyAuth
// @Router /api/v1/profile [get]
func (h *ActivityHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Profile(r.Context())
	if err != nil {
		respondServiceError(w, r, "Get profile", err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// HandleUpdateProfile writes the given profile fields
// @Summary Update profile
// @Tags profile
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Profile fields, empty fields are left unchanged"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ValidationErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/profile [put]
func (h *ActivityHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update profile"); err != nil {
		return
	}
	p, err := h.service.UpdateProfile(r.Context(), req.Name, req.Email, req.Location)
	if err != nil {
		respondServiceError(w, r, "Update profile", err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// HandleSetPhoto stores a profile photo
// @Summary Upload profile photo
// @Tags profile
// @Accept json
// @Produce json
// @Param request body ProfilePhotoRequest true "Base64 encoded image"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/profile/photo [post]
func (h *ActivityHandler) HandleSetPhoto(w http.ResponseWriter, r *http.Request) {
	var req ProfilePhotoRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Upload photo"); err != nil {
		return
	}
	data, err := base64.StdEncoding.DecodeString(req.Photo)
	if err != nil {
		logger.FromContext(r.Context()).Warn("Upload photo rejected", "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidPhoto)
		return
	}
	if len(data) > MaxPhotoBytes {
		respondError(w, http.StatusRequestEntityTooLarge, ErrMsgPhotoTooLarge)
		return
	}
	if err := h.service.SetProfilePhoto(r.Context(), data); err != nil {
		respondServiceError(w, r, "Upload photo", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPhotoSaved})
}

// HandleGetPhoto returns the raw profile photo
// @Summary Get profile photo
// @Tags profile
// @Produce octet-stream
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/profile/photo [get]
func (h *ActivityHandler) HandleGetPhoto(w http.ResponseWriter, r *http.Request) {
	data, ok, err := h.service.ProfilePhoto(r.Context())
	if err != nil {
		respondServiceError(w, r, "Get photo", err)
		return
	}
	if !ok {
		respondError(w, http.StatusNotFound, ErrMsgNoPhoto)
		return
	}
	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.FromContext(r.Context()).Error(LogMsgWriteFailed, "error", err)
	}
}

// HandleRemovePhoto deletes the profile photo
// @Summary Remove profile photo
// @Tags profile
// @Produce json
// @Success 200 {object} SuccessResponse
// @Security ApiKeyAuth
// @Router /api/v1/profile/photo [delete]
func (h *ActivityHandler) HandleRemovePhoto(w http.ResponseWriter, r *http.Request) {
	if err := h.service.RemoveProfilePhoto(r.Context()); err != nil {
		respondServiceError(w, r, "Remove photo", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPhotoRemoved})
}
