package achievement

// Notification text
const (
	NotificationTitleUnlocked = "🎉 Achievement Unlocked!"
	notificationBodyFormat    = "%s %s\n\n%s"
)

// Log messages
const (
	LogMsgAchievementUnlocked = "Achievement unlocked"
	LogMsgUnknownAchievement  = "Ignoring progress for unknown achievement"
	LogMsgLoadFailed          = "Failed to load achievement state, using defaults"
	LogMsgPersistFailed       = "Failed to persist achievement state"
	LogMsgSignalReadFailed    = "Failed to read achievement signal"
	LogMsgVisitRecorded       = "Visit recorded"
	LogMsgRecomputed          = "Achievements recomputed"
)

// MinRating and MaxRating bound topic ratings
const (
	MinRating = 1
	MaxRating = 5
)
