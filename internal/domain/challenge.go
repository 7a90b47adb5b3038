package domain

import "time"

// ChallengeIDPrefix prefixes daily challenge ids, followed by the local date
const ChallengeIDPrefix = "daily_"

// ChallengeIDDateLayout formats the date part of a challenge id
const ChallengeIDDateLayout = "2006-01-02"

// DailyChallenge is the active challenge for a calendar day
type DailyChallenge struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	TargetValue     int       `json:"target_value"`
	CurrentProgress int       `json:"current_progress"`
	Date            time.Time `json:"date"`
	RewardPoints    int       `json:"reward_points"`
	IsCompleted     bool      `json:"is_completed"`
}

// ProgressPercentage returns progress towards the target, capped at 100
func (c DailyChallenge) ProgressPercentage() float64 {
	if c.TargetValue <= 0 {
		return 0
	}
	pct := float64(c.CurrentProgress) / float64(c.TargetValue)
	if pct > 1 {
		pct = 1
	}
	return pct * 100
}

// ChallengeTemplate describes one entry of the daily challenge pool
type ChallengeTemplate struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description" validate:"required"`
	TargetValue  int    `json:"target_value" validate:"min=1"`
	RewardPoints int    `json:"reward_points" validate:"min=0"`
}

// ChallengePoolConfig is the on-disk format of the template pool
type ChallengePoolConfig struct {
	Version   string              `json:"version"`
	Templates []ChallengeTemplate `json:"templates" validate:"required,min=1,dive"`
}
