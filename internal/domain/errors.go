package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Achievement errors
	ErrMsgAchievementNotFound = "achievement not found"
	ErrMsgInvalidCategory     = "invalid achievement category"

	// Subscription errors
	ErrMsgInvalidTier      = "invalid subscription tier"
	ErrMsgFeatureNotFound  = "feature not found"
	ErrMsgInvalidPurchase  = "invalid purchase item"
	ErrMsgTrialUnavailable = "trial is only available on the free tier"

	// Topic errors
	ErrMsgTopicNotFound = "topic not found"
	ErrMsgTopicExists   = "topic already exists"
	ErrMsgInvalidRating = "rating must be between 1 and 5"

	// Preference errors
	ErrMsgInvalidPreferences = "invalid preferences"

	// Store errors
	ErrMsgStoreFailure = "progress store failure"
	ErrMsgCorruptValue = "corrupt stored value"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrAchievementNotFound = errors.New(ErrMsgAchievementNotFound)
	ErrInvalidCategory     = errors.New(ErrMsgInvalidCategory)

	ErrInvalidTier      = errors.New(ErrMsgInvalidTier)
	ErrFeatureNotFound  = errors.New(ErrMsgFeatureNotFound)
	ErrInvalidPurchase  = errors.New(ErrMsgInvalidPurchase)
	ErrTrialUnavailable = errors.New(ErrMsgTrialUnavailable)

	ErrTopicNotFound = errors.New(ErrMsgTopicNotFound)
	ErrTopicExists   = errors.New(ErrMsgTopicExists)
	ErrInvalidRating = errors.New(ErrMsgInvalidRating)

	ErrInvalidPreferences = errors.New(ErrMsgInvalidPreferences)

	ErrStoreFailure = errors.New(ErrMsgStoreFailure)
	ErrCorruptValue = errors.New(ErrMsgCorruptValue)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
