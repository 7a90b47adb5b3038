package challenge

// Notification text
const (
	NotificationTitleCompleted = "🎯 Challenge Complete!"
	notificationBodyFormat     = "🏆 %s\n\nYou earned %d points!\nDaily streak: %d"
)

// Analytics property keys
const (
	PropChallengeID   = "challenge_id"
	PropChallengeType = "challenge_type"
	PropRewardPoints  = "reward_points"
	PropStreak        = "streak"
)

// Log messages
const (
	LogMsgChallengeCreated   = "Daily challenge created"
	LogMsgChallengeCompleted = "Daily challenge completed"
	LogMsgChallengeRestored  = "Restored daily challenge from store"
	LogMsgLoadFailed         = "Failed to load daily challenge, creating a new one"
	LogMsgPersistFailed      = "Failed to persist daily challenge"
	LogMsgRewardFailed       = "Failed to bank reward points"
	LogMsgPoolLoaded         = "Challenge pool loaded"
)
