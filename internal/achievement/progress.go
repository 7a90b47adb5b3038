package achievement

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/osse101/Milestone_Go/internal/domain"
	"github.com/osse101/Milestone_Go/internal/logger"
)

// UserProgress returns a copy of the user progress record
func (t *Tracker) UserProgress() domain.UserProgress {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.progress.Clone()
}

// RecordVisit updates the visit streak by local calendar day.
// A second visit on the same day changes nothing, the next day extends the streak
// and a longer gap restarts it at 1. It returns the current streak.
func (t *Tracker) RecordVisit(ctx context.Context) int {
	now := t.clock.Now()
	loc := now.Location()

	t.mu.Lock()
	defer t.mu.Unlock()

	p := &t.progress
	if p.LastVisitDate != nil && domain.SameDay(*p.LastVisitDate, now, loc) {
		return p.CurrentStreak
	}

	if p.LastVisitDate != nil && domain.DaysBetween(*p.LastVisitDate, now, loc) == 1 {
		p.CurrentStreak++
	} else {
		p.CurrentStreak = 1
	}
	if p.CurrentStreak > p.LongestStreak {
		p.LongestStreak = p.CurrentStreak
	}
	p.TotalSessions++
	p.LastVisitDate = &now

	t.persistLocked(ctx)
	logger.FromContext(ctx).Info(LogMsgVisitRecorded, "streak", p.CurrentStreak, "longest", p.LongestStreak)
	return p.CurrentStreak
}

// RecordTimeSpent adds d to the total time spent in the app
func (t *Tracker) RecordTimeSpent(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.progress.TotalTimeSpent += d.Seconds()
	t.persistLocked(ctx)
}

// CompleteTopic marks a topic completed. It returns false if it already was.
func (t *Tracker) CompleteTopic(ctx context.Context, topic string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if slices.Contains(t.progress.CompletedTopics, topic) {
		return false
	}
	t.progress.CompletedTopics = append(t.progress.CompletedTopics, topic)
	t.persistLocked(ctx)
	return true
}

// ToggleFavoriteTopic flips the favorite flag of a topic and returns the new state
func (t *Tracker) ToggleFavoriteTopic(ctx context.Context, topic string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	favorite := true
	if i := slices.Index(t.progress.FavoriteTopics, topic); i >= 0 {
		t.progress.FavoriteTopics = slices.Delete(t.progress.FavoriteTopics, i, i+1)
		favorite = false
	} else {
		t.progress.FavoriteTopics = append(t.progress.FavoriteTopics, topic)
	}
	t.persistLocked(ctx)
	return favorite
}

// RateTopic stores a 1..5 rating for a topic
func (t *Tracker) RateTopic(ctx context.Context, topic string, rating int) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("%w: got %d", domain.ErrInvalidRating, rating)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.progress.TopicRatings[topic] = rating
	t.persistLocked(ctx)
	return nil
}

// UpdateDailyChallengeStreak increments the completed-challenge streak and returns it
func (t *Tracker) UpdateDailyChallengeStreak(ctx context.Context) int {
	now := t.clock.Now()
	t.mu.Lock()
	defer t.mu.Unlock()
	t.progress.DailyChallengeStreak++
	t.progress.LastDailyChallengeDate = &now
	t.persistLocked(ctx)
	return t.progress.DailyChallengeStreak
}

// DailyChallengeStreak returns the completed-challenge streak
func (t *Tracker) DailyChallengeStreak() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.progress.DailyChallengeStreak
}
