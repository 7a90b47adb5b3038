package domain

import "time"

// UserProgress is the persisted engagement record for the profile
type UserProgress struct {
	CurrentStreak          int            `json:"current_streak"`
	LongestStreak          int            `json:"longest_streak"`
	LastVisitDate          *time.Time     `json:"last_visit_date,omitempty"`
	TotalSessions          int            `json:"total_sessions"`
	TotalTimeSpent         float64        `json:"total_time_spent"`
	AchievementsUnlocked   []string       `json:"achievements_unlocked"`
	FavoriteTopics         []string       `json:"favorite_topics"`
	CompletedTopics        []string       `json:"completed_topics"`
	TopicRatings           map[string]int `json:"topic_ratings"`
	DailyChallengeStreak   int            `json:"daily_challenge_streak"`
	LastDailyChallengeDate *time.Time     `json:"last_daily_challenge_date,omitempty"`
}

// NewUserProgress returns the first-run progress record
func NewUserProgress() UserProgress {
	return UserProgress{
		AchievementsUnlocked: []string{},
		FavoriteTopics:       []string{},
		CompletedTopics:      []string{},
		TopicRatings:         map[string]int{},
	}
}

// Clone returns a deep copy safe to hand to callers
func (p UserProgress) Clone() UserProgress {
	out := p
	out.AchievementsUnlocked = append([]string{}, p.AchievementsUnlocked...)
	out.FavoriteTopics = append([]string{}, p.FavoriteTopics...)
	out.CompletedTopics = append([]string{}, p.CompletedTopics...)
	out.TopicRatings = make(map[string]int, len(p.TopicRatings))
	for k, v := range p.TopicRatings {
		out.TopicRatings[k] = v
	}
	if p.LastVisitDate != nil {
		t := *p.LastVisitDate
		out.LastVisitDate = &t
	}
	if p.LastDailyChallengeDate != nil {
		t := *p.LastDailyChallengeDate
		out.LastDailyChallengeDate = &t
	}
	return out
}

// Profile is the editable user profile
type Profile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Location string `json:"location"`
	HasPhoto bool   `json:"has_photo"`
}

// IsComplete reports whether name, email and location are all set
func (p Profile) IsComplete() bool {
	return p.Name != "" && p.Email != "" && p.Location != ""
}

// Dashboard is the home screen read model
type Dashboard struct {
	TapCount             int                `json:"tap_count"`
	RewardPoints         int                `json:"reward_points"`
	Subscription         SubscriptionStatus `json:"subscription"`
	Challenge            DailyChallenge     `json:"daily_challenge"`
	UnlockedAchievements int                `json:"unlocked_achievements"`
	TotalAchievements    int                `json:"total_achievements"`
	CurrentStreak        int                `json:"current_streak"`
	LongestStreak        int                `json:"longest_streak"`
	DailyChallengeStreak int                `json:"daily_challenge_streak"`
}

// SameDay reports whether a and b fall on the same calendar day in loc
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// DaysBetween returns the number of calendar days from a to b in loc
func DaysBetween(a, b time.Time, loc *time.Location) int {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	start := time.Date(ay, am, ad, 12, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 12, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}
