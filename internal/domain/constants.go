package domain

import "time"

// Progress store keys. Absence of a key means first-run defaults apply.
const (
	KeyTapCount            = "tapCount"
	KeyUserName            = "userName"
	KeyUserEmail           = "userEmail"
	KeyUserLocation        = "userLocation"
	KeyProfileImage        = "profileImage"
	KeyUserProgress        = "userProgress"
	KeyAchievementProgress = "achievementProgress"
	KeyDailyChallenge      = "currentDailyChallenge"
	KeyRewardPoints        = "rewardPoints"
	KeySubscriptionTier    = "subscriptionTier"
	KeyTrialEndDate        = "trialEndDate"
	KeyUnlockedFeatures    = "unlockedFeatures"
	KeyUserID              = "userId"
	KeyLastScreen          = "lastScreen"
	KeyUserProperties      = "userProperties"
	KeyTotalEvents         = "totalEvents"
	KeyListItems           = "listItems"
	KeyUserPreferences     = "userPreferences"
)

// Screen names reported by clients
const (
	ScreenHome         = "home"
	ScreenProfile      = "profile"
	ScreenTopics       = "topics"
	ScreenSettings     = "settings"
	ScreenAchievements = "achievements"
	ScreenPremium      = "premium"
)

// Keywords fed to the daily challenge engine by user activity
const (
	ChallengeKeywordTap       = "tap"
	ChallengeKeywordExplorer  = "explorer"
	ChallengeKeywordSocial    = "social"
	ChallengeKeywordKnowledge = "knowledge"
	ChallengeKeywordSettings  = "settings"
	ChallengeKeywordFavorite  = "favorite"
	ChallengeKeywordRating    = "rating"
	ChallengeKeywordSearch    = "search"
)

// DefaultTopics is the topic list shown before the user edits it
var DefaultTopics = []string{
	"📱 iPhone Development",
	"🍎 Apple Design Guidelines",
	"🔧 UIKit Framework",
	"🎨 Interface Builder",
	"📊 Core Data",
	"🌐 Networking",
	"🔔 Push Notifications",
	"📷 Camera Integration",
	"🗺️ MapKit",
	"⚡ Performance Optimization",
	"🧪 Unit Testing",
	"🚀 App Store Submission",
	"🔒 Security Best Practices",
	"📈 Analytics Integration",
	"🎯 User Experience Design",
}

// TapMilestoneInterval is how often a tap milestone notification fires
const TapMilestoneInterval = 10

// Notification kinds
const (
	NotificationAchievementUnlocked = "achievement_unlocked"
	NotificationChallengeCompleted  = "challenge_completed"
	NotificationSubscriptionChanged = "subscription_changed"
	NotificationTapMilestone        = "tap_milestone"
	NotificationPurchase            = "purchase"
)

// Notification is a user-facing message produced by a state change
type Notification struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
