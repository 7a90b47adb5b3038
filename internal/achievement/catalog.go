package achievement

import "github.com/osse101/Milestone_Go/internal/domain"

var catalog = []domain.AchievementDefinition{
	{ID: domain.AchievementFirstTap, Title: "First Tap", Description: "Tap the button for the first time", Icon: "👆", Requirement: 1, Category: domain.CategoryTapping},
	{ID: domain.AchievementTap10, Title: "Getting Started", Description: "Reach 10 taps", Icon: "🔥", Requirement: 10, Category: domain.CategoryTapping},
	{ID: domain.AchievementTap50, Title: "Tap Enthusiast", Description: "Reach 50 taps", Icon: "⚡", Requirement: 50, Category: domain.CategoryTapping},
	{ID: domain.AchievementTap100, Title: "Century Club", Description: "Reach 100 taps", Icon: "💯", Requirement: 100, Category: domain.CategoryTapping},
	{ID: domain.AchievementTap500, Title: "Tap Master", Description: "Reach 500 taps", Icon: "🏆", Requirement: 500, Category: domain.CategoryTapping},

	{ID: domain.AchievementFirstShare, Title: "Sharing is Caring", Description: "Share content for the first time", Icon: "📤", Requirement: 1, Category: domain.CategorySocial},
	{ID: domain.AchievementProfileComplete, Title: "Profile Pro", Description: "Complete your profile", Icon: "👤", Requirement: 1, Category: domain.CategorySocial},
	{ID: domain.AchievementPhotoUpload, Title: "Picture Perfect", Description: "Upload a profile photo", Icon: "📸", Requirement: 1, Category: domain.CategorySocial},

	{ID: domain.AchievementFirstTopic, Title: "Curious Mind", Description: "View your first topic", Icon: "🤔", Requirement: 1, Category: domain.CategoryLearning},
	{ID: domain.AchievementTopic5, Title: "Knowledge Seeker", Description: "Complete 5 topics", Icon: "📚", Requirement: 5, Category: domain.CategoryLearning},
	{ID: domain.AchievementTopic10, Title: "Study Buddy", Description: "Complete 10 topics", Icon: "🎓", Requirement: 10, Category: domain.CategoryLearning},
	{ID: domain.AchievementAllTopics, Title: "Topic Master", Description: "Complete all available topics", Icon: "🏅", Requirement: 15, Category: domain.CategoryLearning},

	{ID: domain.AchievementDailyStreak3, Title: "Committed", Description: "Use the app 3 days in a row", Icon: "📅", Requirement: 3, Category: domain.CategoryEngagement},
	{ID: domain.AchievementDailyStreak7, Title: "Weekly Warrior", Description: "Use the app 7 days in a row", Icon: "🗓️", Requirement: 7, Category: domain.CategoryEngagement},
	{ID: domain.AchievementSettingsExplorer, Title: "Settings Explorer", Description: "Visit the settings screen", Icon: "⚙️", Requirement: 1, Category: domain.CategoryEngagement},

	{ID: domain.AchievementPremiumTrial, Title: "Trial Run", Description: "Start a premium trial", Icon: "⭐", Requirement: 1, Category: domain.CategoryPremium},
	{ID: domain.AchievementPremiumUser, Title: "Premium Member", Description: "Upgrade to premium", Icon: "👑", Requirement: 1, Category: domain.CategoryPremium},
}

// Catalog returns the achievement definitions in display order
func Catalog() []domain.AchievementDefinition {
	return append([]domain.AchievementDefinition(nil), catalog...)
}

// tapAchievements and topicAchievements are fed raw counts during recompute
var (
	tapAchievements   = []string{domain.AchievementTap10, domain.AchievementTap50, domain.AchievementTap100, domain.AchievementTap500}
	topicAchievements = []string{domain.AchievementTopic5, domain.AchievementTopic10, domain.AchievementAllTopics}
)
