package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/osse101/Milestone_Go/internal/domain"
)

// DefaultFeaturePrice is charged for one-time and upgrade purchases that name no price
const DefaultFeaturePrice = "$0.99"

// Feature list filters for the state query parameter
const (
	FeatureStateAll      = "all"
	FeatureStateLocked   = "locked"
	FeatureStateUnlocked = "unlocked"
)

// SubscriptionService is the subscription tier controller surface exposed over HTTP
type SubscriptionService interface {
	Status(ctx context.Context) domain.SubscriptionStatus
	SetTier(ctx context.Context, tier domain.SubscriptionTier) error
	StartTrial(ctx context.Context, tier domain.SubscriptionTier, duration time.Duration) bool
	Feature(ctx context.Context, id string) (domain.PremiumFeature, error)
	Features(ctx context.Context) []domain.PremiumFeature
	LockedFeatures(ctx context.Context) []domain.PremiumFeature
	UnlockedFeatures(ctx context.Context) []domain.PremiumFeature
	SimulatePurchase(ctx context.Context, item domain.PurchaseItem, completion func(bool)) error
}

// SubscriptionHandler handles tier, trial, feature and purchase requests
type SubscriptionHandler struct {
	service SubscriptionService
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(service SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{service: service}
}

// SetTierRequest switches the subscription tier
type SetTierRequest struct {
	Tier string `json:"tier" validate:"required,tier"`
}

// StartTrialRequest starts a trial of a paid tier
type StartTrialRequest struct {
	Tier         string `json:"tier" validate:"required,tier"`
	DurationDays int    `json:"duration_days" validate:"min=0,max=90"`
}

// PurchaseRequest starts a simulated purchase
type PurchaseRequest struct {
	Type      string `json:"type" validate:"required,oneof=subscription one_time upgrade"`
	Tier      string `json:"tier" validate:"omitempty,tier"`
	FeatureID string `json:"feature_id" validate:"max=64"`
	Price     string `json:"price" validate:"max=32"`
}

// PurchaseResponse echoes the accepted purchase item
type PurchaseResponse struct {
	Message string              `json:"message"`
	Item    domain.PurchaseItem `json:"item"`
}

// HandleStatus returns the current tier and trial state
// @Summary Get subscription status
// @Tags subscription
// @Produce json
// @Success 200 {object} domain.SubscriptionStatus
// @Security ApiKeyAuth
// @Router /api/v1/subscription [get]
func (h *SubscriptionHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.Status(r.Context()))
}

// HandleSetTier switches the tier directly and clears any trial
// @Summary Set subscription tier
// @Tags subscription
// @Accept json
// @Produce json
// @Param request body SetTierRequest true "Target tier"
// @Success 200 {object} domain.SubscriptionStatus
// @Failure 400 {object} ValidationErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/subscription/tier [post]
func (h *SubscriptionHandler) HandleSetTier(w http.ResponseWriter, r *http.Request) {
	var req SetTierRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set tier"); err != nil {
		return
	}
	tier, err := domain.ParseSubscriptionTier(req.Tier)
	if err != nil {
		respondServiceError(w, r, "Set tier", err)
		return
	}
	if err := h.service.SetTier(r.Context(), tier); err != nil {
		respondServiceError(w, r, "Set tier", err)
		return
	}
	respondJSON(w, http.StatusOK, h.service.Status(r.Context()))
}

// HandleStartTrial starts a trial. Trials are only granted on the Free tier.
// @Summary Start trial
// @Tags subscription
// @Accept json
// @Produce json
// @Param request body StartTrialRequest true "Trial tier and length in days (0 for the default week)"
// @Success 200 {object} domain.SubscriptionStatus
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/subscription/trial [post]
func (h *SubscriptionHandler) HandleStartTrial(w http.ResponseWriter, r *http.Request) {
	var req StartTrialRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Start trial"); err != nil {
		return
	}
	tier, err := domain.ParseSubscriptionTier(req.Tier)
	if err != nil {
		respondServiceError(w, r, "Start trial", err)
		return
	}

	duration := time.Duration(req.DurationDays) * 24 * time.Hour
	if !h.service.StartTrial(r.Context(), tier, duration) {
		respondServiceError(w, r, "Start trial", domain.ErrTrialUnavailable)
		return
	}
	respondJSON(w, http.StatusOK, h.service.Status(r.Context()))
}

// HandleFeatures lists premium features with their lock state
// @Summary List premium features
// @Tags subscription
// @Produce json
// @Param state query string false "all, locked or unlocked"
// @Success 200 {array} domain.PremiumFeature
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/subscription/features [get]
func (h *SubscriptionHandler) HandleFeatures(w http.ResponseWriter, r *http.Request) {
	switch GetOptionalQueryParam(r, "state", FeatureStateAll) {
	case FeatureStateAll:
		respondJSON(w, http.StatusOK, h.service.Features(r.Context()))
	case FeatureStateLocked:
		respondJSON(w, http.StatusOK, h.service.LockedFeatures(r.Context()))
	case FeatureStateUnlocked:
		respondJSON(w, http.StatusOK, h.service.UnlockedFeatures(r.Context()))
	default:
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
	}
}

// HandleFeature returns a single premium feature
// @Summary Get premium feature
// @Tags subscription
// @Produce json
// @Param id path string true "Feature ID"
// @Success 200 {object} domain.PremiumFeature
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/subscription/features/{id} [get]
func (h *SubscriptionHandler) HandleFeature(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}
	f, err := h.service.Feature(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Get feature", err)
		return
	}
	respondJSON(w, http.StatusOK, f)
}

// HandlePurchase starts a simulated store transaction. The outcome arrives later
// as an analytics event and, on success, a notification.
// @Summary Start purchase
// @Tags subscription
// @Accept json
// @Produce json
// @Param request body PurchaseRequest true "Purchase details"
// @Success 202 {object} PurchaseResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/subscription/purchase [post]
func (h *SubscriptionHandler) HandlePurchase(w http.ResponseWriter, r *http.Request) {
	var req PurchaseRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Purchase"); err != nil {
		return
	}

	item, err := h.buildPurchase(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, "Purchase", err)
		return
	}
	if err := h.service.SimulatePurchase(r.Context(), item, nil); err != nil {
		respondServiceError(w, r, "Purchase", err)
		return
	}
	respondJSON(w, http.StatusAccepted, PurchaseResponse{Message: MsgPurchaseStarted, Item: item})
}

func (h *SubscriptionHandler) buildPurchase(ctx context.Context, req PurchaseRequest) (domain.PurchaseItem, error) {
	purchaseType := domain.PurchaseType(req.Type)
	if purchaseType == domain.PurchaseSubscription {
		tier, err := domain.ParseSubscriptionTier(req.Tier)
		if err != nil {
			return domain.PurchaseItem{}, err
		}
		return domain.NewSubscriptionPurchase(tier), nil
	}

	if req.FeatureID == "" {
		return domain.PurchaseItem{}, fmt.Errorf("%w: %s needs a feature id", domain.ErrInvalidPurchase, purchaseType)
	}
	feature, err := h.service.Feature(ctx, req.FeatureID)
	if err != nil {
		return domain.PurchaseItem{}, err
	}
	price := req.Price
	if price == "" {
		price = DefaultFeaturePrice
	}
	return domain.NewFeaturePurchase(purchaseType, feature, price), nil
}
