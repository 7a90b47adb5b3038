package subscription

import "time"

// Purchase simulation defaults
const (
	DefaultPurchaseMinDelay    = 1 * time.Second
	DefaultPurchaseMaxDelay    = 3 * time.Second
	DefaultPurchaseSuccessRate = 0.85
)

// Analytics property keys
const (
	PropPreviousTier = "previous_tier"
	PropNewTier      = "new_tier"
	PropIsTrial      = "is_trial"
	PropTier         = "tier"
	PropDurationDays = "duration_days"
	PropFeatureID    = "feature_id"
)

// Notification text
const (
	NotificationTitleDowngraded = "Subscription Changed"
	NotificationTitleUpgraded   = "🎉 Upgrade Successful!"
	messageEnded                = "Your subscription has ended. Some features are now locked."
	messageTrialFormat          = "Your %s trial is active! %d days remaining."
	messageWelcomeFormat        = "Welcome to %s! Your new features are now available."
)

// Purchase failure reporting
const (
	PurchaseFailedMessage  = "Purchase failed. Please try again."
	ContextKeyItemID       = "item_id"
	ContextKeyPurchaseType = "purchase_type"
)

// Log messages
const (
	LogMsgTierChanged       = "Subscription tier changed"
	LogMsgTrialStarted      = "Trial started"
	LogMsgTrialExpired      = "Trial expired, reverting to free tier"
	LogMsgFeatureUnlocked   = "Feature unlocked by purchase"
	LogMsgPurchaseStarted   = "Simulated purchase started"
	LogMsgPurchaseCompleted = "Simulated purchase finished"
	LogMsgLoadFailed        = "Failed to load subscription state, using defaults"
	LogMsgPersistFailed     = "Failed to persist subscription state"
	LogMsgShuttingDown      = "Subscription controller shutting down, waiting for purchases..."
)
