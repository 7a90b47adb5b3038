package domain

import (
	"fmt"
	"strings"
)

// AchievementCategory groups achievements for display
type AchievementCategory string

const (
	CategoryTapping    AchievementCategory = "Tapping Master"
	CategorySocial     AchievementCategory = "Social Butterfly"
	CategoryLearning   AchievementCategory = "Knowledge Seeker"
	CategoryEngagement AchievementCategory = "App Explorer"
	CategoryPremium    AchievementCategory = "Premium User"
)

// AchievementCategories lists every category in display order
var AchievementCategories = []AchievementCategory{
	CategoryTapping,
	CategorySocial,
	CategoryLearning,
	CategoryEngagement,
	CategoryPremium,
}

var categoryAliases = map[string]AchievementCategory{
	"tapping":    CategoryTapping,
	"social":     CategorySocial,
	"learning":   CategoryLearning,
	"engagement": CategoryEngagement,
	"premium":    CategoryPremium,
}

// ParseAchievementCategory accepts either the display name or the short key (tapping, social, ...)
func ParseAchievementCategory(s string) (AchievementCategory, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if c, ok := categoryAliases[key]; ok {
		return c, nil
	}
	for _, c := range AchievementCategories {
		if strings.EqualFold(string(c), key) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

// Achievement IDs
const (
	AchievementFirstTap         = "first_tap"
	AchievementTap10            = "tap_10"
	AchievementTap50            = "tap_50"
	AchievementTap100           = "tap_100"
	AchievementTap500           = "tap_500"
	AchievementFirstShare       = "first_share"
	AchievementProfileComplete  = "profile_complete"
	AchievementPhotoUpload      = "photo_upload"
	AchievementFirstTopic       = "first_topic"
	AchievementTopic5           = "topic_5"
	AchievementTopic10          = "topic_10"
	AchievementAllTopics        = "all_topics"
	AchievementDailyStreak3     = "daily_streak_3"
	AchievementDailyStreak7     = "daily_streak_7"
	AchievementSettingsExplorer = "settings_explorer"
	AchievementPremiumTrial     = "premium_trial"
	AchievementPremiumUser      = "premium_user"
)

// AchievementDefinition is the immutable part of an achievement
type AchievementDefinition struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	Requirement int                 `json:"requirement"`
	Category    AchievementCategory `json:"category"`
}

// Achievement is a definition together with its current state.
// IsUnlocked implies Progress >= Requirement.
type Achievement struct {
	AchievementDefinition
	Progress   int  `json:"progress"`
	IsUnlocked bool `json:"is_unlocked"`
}

// ProgressPercentage returns progress towards the requirement, capped at 100
func (a Achievement) ProgressPercentage() float64 {
	if a.Requirement <= 0 {
		return 100
	}
	pct := float64(a.Progress) / float64(a.Requirement) * 100
	if pct > 100 {
		return 100
	}
	return pct
}
