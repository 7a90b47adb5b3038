package activity

// Button names reported on button_tap
const (
	ButtonTapCounter   = "tap_counter"
	ButtonResetCounter = "reset_counter"
)

// Engagement actions reported through TrackEngagement
const (
	EngagementViewTopic     = "view_topic"
	EngagementCompleteTopic = "complete_topic"
	EngagementAddTopic      = "add_topic"
	EngagementRemoveTopic   = "remove_topic"
	EngagementResetTopics   = "reset_topics"
)

// Analytics property keys
const (
	PropButton      = "button"
	PropTapCount    = "tap_count"
	PropFields      = "fields"
	PropField       = "field"
	PropPhotoAction = "photo_action"
	PropContentType = "content_type"
	PropQuery       = "query"
	PropResultCount = "result_count"
	PropItem        = "item"
	PropFavorited   = "favorited"
	PropRating      = "rating"
	PropSetting     = "setting"
	PropValue       = "value"
)

// Photo actions
const (
	PhotoActionSet     = "set"
	PhotoActionRemoved = "removed"
)

// Tap milestone notification
const (
	NotificationTitleMilestone = "🎉 Milestone!"
	milestoneMessageFormat     = "You've reached %d taps!"
)

// Log messages
const (
	LogMsgTapRecorded        = "Tap recorded"
	LogMsgTapsReset          = "Tap counter reset"
	LogMsgProfileUpdated     = "Profile updated"
	LogMsgTopicsLoadFailed   = "Failed to load topics, using defaults"
	LogMsgPrefsLoadFailed    = "Failed to load preferences, using defaults"
	LogMsgPreferencesChanged = "Preferences updated"
	LogMsgReadFailed         = "Failed to read activity state"
)
