package challenge

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/osse101/Milestone_Go/internal/clock"
	"github.com/osse101/Milestone_Go/internal/domain"
	"github.com/osse101/Milestone_Go/internal/logger"
	"github.com/osse101/Milestone_Go/internal/notify"
	"github.com/osse101/Milestone_Go/internal/store"
	"github.com/osse101/Milestone_Go/internal/utils"
)

// EventTracker records analytics events
type EventTracker interface {
	TrackEvent(ctx context.Context, name domain.EventType, props domain.Properties)
}

// StreakRecorder bumps the daily challenge streak and returns the new value
type StreakRecorder interface {
	UpdateDailyChallengeStreak(ctx context.Context) int
}

// Engine hands out one challenge per local calendar day and tracks progress on it
type Engine struct {
	store     store.Store
	templates []domain.ChallengeTemplate
	random    utils.RandomSource
	clock     clock.Clock
	analytics EventTracker
	streaks   StreakRecorder
	notifier  notify.Notifier

	mu      sync.Mutex
	fold    cases.Caser // guarded by mu
	loaded  bool
	current *domain.DailyChallenge
}

// NewEngine creates an Engine. An empty template list falls back to DefaultPool.
func NewEngine(st store.Store, templates []domain.ChallengeTemplate, rnd utils.RandomSource, clk clock.Clock,
	analytics EventTracker, streaks StreakRecorder, notifier notify.Notifier) *Engine {
	if len(templates) == 0 {
		templates = DefaultPool()
	}
	return &Engine{
		store:     st,
		templates: templates,
		random:    rnd,
		clock:     clk,
		analytics: analytics,
		streaks:   streaks,
		notifier:  notifier,
		fold:      cases.Fold(),
	}
}

// Templates returns a copy of the template pool
func (e *Engine) Templates() []domain.ChallengeTemplate {
	out := make([]domain.ChallengeTemplate, len(e.templates))
	copy(out, e.templates)
	return out
}

// GetCurrent returns today's challenge, creating it when none exists or the stored one is stale
func (e *Engine) GetCurrent(ctx context.Context) domain.DailyChallenge {
	e.mu.Lock()
	current, created := e.ensureTodayLocked(ctx)
	e.mu.Unlock()

	e.announceCreated(ctx, current, created)
	return current
}

// ensureTodayLocked returns today's challenge and whether it was created by this call. Caller holds e.mu.
func (e *Engine) ensureTodayLocked(ctx context.Context) (domain.DailyChallenge, bool) {
	log := logger.FromContext(ctx)
	now := e.clock.Now()

	if !e.loaded {
		e.loaded = true
		var stored domain.DailyChallenge
		found, err := store.GetJSON(ctx, e.store, domain.KeyDailyChallenge, &stored)
		switch {
		case err != nil:
			log.Warn(LogMsgLoadFailed, "error", err)
		case found:
			e.current = &stored
			log.Debug(LogMsgChallengeRestored, "challenge_id", stored.ID)
		}
	}

	if e.current != nil && domain.SameDay(e.current.Date, now, now.Location()) {
		return *e.current, false
	}

	tpl := e.templates[e.random.Intn(len(e.templates))]
	ch := domain.DailyChallenge{
		ID:           domain.ChallengeIDPrefix + now.Format(domain.ChallengeIDDateLayout),
		Title:        tpl.Title,
		Description:  tpl.Description,
		TargetValue:  tpl.TargetValue,
		Date:         now,
		RewardPoints: tpl.RewardPoints,
	}
	e.current = &ch
	e.persistLocked(ctx)
	log.Info(LogMsgChallengeCreated, "challenge_id", ch.ID, "title", ch.Title)
	return ch, true
}

func (e *Engine) persistLocked(ctx context.Context) {
	if err := store.SetJSON(ctx, e.store, domain.KeyDailyChallenge, e.current); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPersistFailed, "error", err)
	}
}

// UpdateProgress adds increment to today's challenge when keyword appears in its title,
// ignoring case. It returns true only on the call that completes the challenge.
func (e *Engine) UpdateProgress(ctx context.Context, keyword string, increment int) bool {
	if keyword == "" || increment <= 0 {
		return false
	}

	e.mu.Lock()
	ch, created := e.ensureTodayLocked(ctx)
	if ch.IsCompleted || !strings.Contains(e.fold.String(ch.Title), e.fold.String(keyword)) {
		e.mu.Unlock()
		e.announceCreated(ctx, ch, created)
		return false
	}

	e.current.CurrentProgress = min(e.current.CurrentProgress+increment, e.current.TargetValue)
	completed := e.current.CurrentProgress >= e.current.TargetValue
	if completed {
		e.current.IsCompleted = true
	}
	e.persistLocked(ctx)
	snapshot := *e.current
	e.mu.Unlock()

	e.announceCreated(ctx, ch, created)
	if completed {
		e.complete(ctx, snapshot)
	}
	return completed
}

func (e *Engine) announceCreated(ctx context.Context, ch domain.DailyChallenge, created bool) {
	if !created {
		return
	}
	e.track(ctx, domain.Properties{
		domain.PropAction: domain.StringValue(domain.ActionDailyChallengeCreated),
		PropChallengeID:   domain.StringValue(ch.ID),
		PropChallengeType: domain.StringValue(ch.Title),
	})
}

func (e *Engine) complete(ctx context.Context, ch domain.DailyChallenge) {
	log := logger.FromContext(ctx)

	if _, err := store.Incr(ctx, e.store, domain.KeyRewardPoints, ch.RewardPoints); err != nil {
		log.Warn(LogMsgRewardFailed, "challenge_id", ch.ID, "error", err)
	}

	streak := 0
	if e.streaks != nil {
		streak = e.streaks.UpdateDailyChallengeStreak(ctx)
	}

	log.Info(LogMsgChallengeCompleted, "challenge_id", ch.ID, "reward_points", ch.RewardPoints, "streak", streak)

	e.track(ctx, domain.Properties{
		domain.PropAction: domain.StringValue(domain.ActionDailyChallengeCompleted),
		PropChallengeID:   domain.StringValue(ch.ID),
		PropChallengeType: domain.StringValue(ch.Title),
		PropRewardPoints:  domain.IntValue(ch.RewardPoints),
		PropStreak:        domain.IntValue(streak),
	})

	if e.notifier != nil {
		e.notifier.Notify(ctx, domain.NotificationChallengeCompleted, NotificationTitleCompleted,
			fmt.Sprintf(notificationBodyFormat, ch.Title, ch.RewardPoints, streak))
	}
}

func (e *Engine) track(ctx context.Context, props domain.Properties) {
	if e.analytics != nil {
		e.analytics.TrackEvent(ctx, domain.EventFeatureUsed, props)
	}
}

// RewardPoints returns the total points banked from completed challenges
func (e *Engine) RewardPoints(ctx context.Context) int {
	points, err := store.GetInt(ctx, e.store, domain.KeyRewardPoints)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgRewardFailed, "error", err)
	}
	return points
}
