package domain

import (
	"fmt"
	"strings"
	"time"
)

// SubscriptionTier is an ordered subscription level: Free < Basic < Premium < Pro
type SubscriptionTier string

const (
	TierFree    SubscriptionTier = "Free"
	TierBasic   SubscriptionTier = "Basic"
	TierPremium SubscriptionTier = "Premium"
	TierPro     SubscriptionTier = "Pro"
)

// SubscriptionTiers lists all tiers in ascending order
var SubscriptionTiers = []SubscriptionTier{TierFree, TierBasic, TierPremium, TierPro}

// DefaultTrialDuration is used when a trial is started without an explicit duration
const DefaultTrialDuration = 7 * 24 * time.Hour

// ParseSubscriptionTier parses a tier name case-insensitively
func ParseSubscriptionTier(s string) (SubscriptionTier, error) {
	for _, t := range SubscriptionTiers {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTier, s)
}

// Rank returns the position of the tier in the ordering, -1 if unknown
func (t SubscriptionTier) Rank() int {
	for i, tier := range SubscriptionTiers {
		if tier == t {
			return i
		}
	}
	return -1
}

func (t SubscriptionTier) Valid() bool {
	return t.Rank() >= 0
}

// AtLeast reports whether t is the same as or higher than other
func (t SubscriptionTier) AtLeast(other SubscriptionTier) bool {
	return t.Rank() >= other.Rank()
}

// Price returns the display price of the tier
func (t SubscriptionTier) Price() string {
	switch t {
	case TierBasic:
		return "$2.99/month"
	case TierPremium:
		return "$5.99/month"
	case TierPro:
		return "$9.99/month"
	default:
		return "Free"
	}
}

// Features returns the marketing feature list of the tier
func (t SubscriptionTier) Features() []string {
	switch t {
	case TierBasic:
		return []string{"Ad-free experience", "All topics", "Basic analytics"}
	case TierPremium:
		return []string{"Everything in Basic", "Advanced analytics", "Priority support", "Offline mode"}
	case TierPro:
		return []string{"Everything in Premium", "Custom themes", "Export data", "Team features"}
	default:
		return []string{"Basic features", "Limited topics", "Ads included"}
	}
}

// Premium feature IDs
const (
	FeatureRemoveAds         = "remove_ads"
	FeatureAdvancedAnalytics = "advanced_analytics"
	FeatureOfflineMode       = "offline_mode"
	FeatureCustomThemes      = "custom_themes"
	FeatureExportData        = "export_data"
	FeaturePrioritySupport   = "priority_support"
	FeatureTeamFeatures      = "team_features"
	FeatureUnlimitedTopics   = "unlimited_topics"
)

// PremiumFeature is a gated feature. IsLocked is derived from the current tier.
type PremiumFeature struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Icon         string           `json:"icon"`
	IsLocked     bool             `json:"is_locked"`
	RequiredTier SubscriptionTier `json:"required_tier"`
}

// SubscriptionStatus summarizes the tier and trial state
type SubscriptionStatus struct {
	Tier                  SubscriptionTier `json:"tier"`
	Price                 string           `json:"price"`
	Features              []string         `json:"features"`
	IsTrialActive         bool             `json:"is_trial_active"`
	TrialEnd              *time.Time       `json:"trial_end,omitempty"`
	TrialRemainingSeconds int64            `json:"trial_remaining_seconds"`
}

// PurchaseType is the kind of simulated purchase
type PurchaseType string

const (
	PurchaseSubscription PurchaseType = "subscription"
	PurchaseOneTime      PurchaseType = "one_time"
	PurchaseUpgrade      PurchaseType = "upgrade"
)

// PurchaseItem is something the user can buy. Tier is set for subscriptions,
// FeatureID for one-time purchases and upgrades.
type PurchaseItem struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Price       string           `json:"price"`
	Description string           `json:"description"`
	Type        PurchaseType     `json:"type"`
	Tier        SubscriptionTier `json:"tier,omitempty"`
	FeatureID   string           `json:"feature_id,omitempty"`
}

// NewSubscriptionPurchase builds the purchase item offered for a tier
func NewSubscriptionPurchase(tier SubscriptionTier) PurchaseItem {
	return PurchaseItem{
		ID:          "subscription_" + strings.ToLower(string(tier)),
		Title:       string(tier) + " Subscription",
		Price:       tier.Price(),
		Description: strings.Join(tier.Features(), ", "),
		Type:        PurchaseSubscription,
		Tier:        tier,
	}
}

// NewFeaturePurchase builds a one-time or upgrade purchase for a single feature
func NewFeaturePurchase(purchaseType PurchaseType, feature PremiumFeature, price string) PurchaseItem {
	return PurchaseItem{
		ID:          string(purchaseType) + "_" + feature.ID,
		Title:       feature.Title,
		Price:       price,
		Description: feature.Description,
		Type:        purchaseType,
		FeatureID:   feature.ID,
	}
}

// Validate checks that the item carries the payload its type needs
func (p PurchaseItem) Validate() error {
	switch p.Type {
	case PurchaseSubscription:
		if !p.Tier.Valid() || p.Tier == TierFree {
			return fmt.Errorf("%w: subscription needs a paid tier", ErrInvalidPurchase)
		}
	case PurchaseOneTime, PurchaseUpgrade:
		if p.FeatureID == "" {
			return fmt.Errorf("%w: %s needs a feature id", ErrInvalidPurchase, p.Type)
		}
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidPurchase, p.Type)
	}
	return nil
}
