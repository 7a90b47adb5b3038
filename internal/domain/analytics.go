package domain

import (
	"time"
)

// EventType is the name of an analytics event
type EventType string

const (
	EventScreenView          EventType = "screen_view"
	EventButtonTap           EventType = "button_tap"
	EventFeatureUsed         EventType = "feature_used"
	EventPurchaseInitiated   EventType = "purchase_initiated"
	EventPurchaseCompleted   EventType = "purchase_completed"
	EventAchievementUnlocked EventType = "achievement_unlocked"
	EventErrorOccurred       EventType = "error_occurred"
	EventSettingChanged      EventType = "setting_changed"
	EventContentShared       EventType = "content_shared"
	EventSearchPerformed     EventType = "search_performed"
	EventItemFavorited       EventType = "item_favorited"
	EventRatingGiven         EventType = "rating_given"
	EventProfileUpdated      EventType = "profile_updated"
)

// Values of the "action" property on feature_used events
const (
	ActionSubscriptionChanged     = "subscription_changed"
	ActionTrialStarted            = "trial_started"
	ActionDailyChallengeCreated   = "daily_challenge_created"
	ActionDailyChallengeCompleted = "daily_challenge_completed"
	ActionUserPropertySet         = "user_property_set"
	ActionEventsCleared           = "events_cleared"
	ActionNetworkSimulation       = "network_simulation"
	ActionAPICall                 = "api_call"
	ActionFeatureUnlocked         = "feature_unlocked"
)

// Property keys added to every event
const (
	PropTimestamp       = "timestamp"
	PropUserID          = "user_id"
	PropSessionID       = "session_id"
	PropSessionDuration = "session_duration"
	PropAction          = "action"
)

// AnalyticsEvent is one recorded analytics event
type AnalyticsEvent struct {
	Name       EventType  `json:"name"`
	Properties Properties `json:"parameters"`
	Timestamp  time.Time  `json:"timestamp"`
	UserID     string     `json:"user_id"`
	SessionID  string     `json:"session_id"`
}

// ErrorType classifies application errors reported to analytics
type ErrorType string

const (
	ErrorTypeNetwork    ErrorType = "network_error"
	ErrorTypeValidation ErrorType = "validation_error"
	ErrorTypePermission ErrorType = "permission_error"
	ErrorTypeStorage    ErrorType = "storage_error"
	ErrorTypeUnknown    ErrorType = "unknown_error"
)

// AppError is an informational application error record
type AppError struct {
	ID        string            `json:"id"`
	Type      ErrorType         `json:"type"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp"`
	Context   map[string]string `json:"context"`
	UserID    string            `json:"user_id,omitempty"`
}

func (e *AppError) Error() string {
	return string(e.Type) + ": " + e.Message
}
