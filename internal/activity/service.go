package activity

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/Milestone_Go/internal/domain"
	"github.com/osse101/Milestone_Go/internal/logger"
	"github.com/osse101/Milestone_Go/internal/notify"
	"github.com/osse101/Milestone_Go/internal/store"
)

// EventTracker is the slice of the analytics sink used for user actions
type EventTracker interface {
	TrackEvent(ctx context.Context, name domain.EventType, props domain.Properties)
	TrackScreen(ctx context.Context, screen string, props domain.Properties)
	TrackEngagement(ctx context.Context, action, target string, value *domain.Value)
}

// AchievementService is what activity needs from the achievement tracker
type AchievementService interface {
	UpdateProgress(ctx context.Context, id string, value int) bool
	RecomputeFromSignals(ctx context.Context) []string
	RecordVisit(ctx context.Context) int
	CompleteTopic(ctx context.Context, topic string) bool
	ToggleFavoriteTopic(ctx context.Context, topic string) bool
	RateTopic(ctx context.Context, topic string, rating int) error
	UserProgress() domain.UserProgress
	GetAll() []domain.Achievement
	GetUnlocked() []domain.Achievement
}

// ChallengeService is what activity needs from the daily challenge engine
type ChallengeService interface {
	GetCurrent(ctx context.Context) domain.DailyChallenge
	UpdateProgress(ctx context.Context, keyword string, increment int) bool
	RewardPoints(ctx context.Context) int
}

// SubscriptionService reports the subscription state for the dashboard
type SubscriptionService interface {
	Status(ctx context.Context) domain.SubscriptionStatus
}

// Service turns user actions into store updates, tracker calls, challenge progress and analytics
type Service struct {
	store        store.Store
	analytics    EventTracker
	achievements AchievementService
	challenges   ChallengeService
	subscription SubscriptionService
	notifier     notify.Notifier
	validate     *validator.Validate

	// serializes read-modify-write sequences on the store
	mu sync.Mutex
}

// NewService creates the activity Service
func NewService(st store.Store, analytics EventTracker, achievements AchievementService, challenges ChallengeService,
	subscription SubscriptionService, notifier notify.Notifier) *Service {
	return &Service{
		store:        st,
		analytics:    analytics,
		achievements: achievements,
		challenges:   challenges,
		subscription: subscription,
		notifier:     notifier,
		validate:     validator.New(),
	}
}

func (s *Service) track(ctx context.Context, name domain.EventType, props domain.Properties) {
	if s.analytics != nil {
		s.analytics.TrackEvent(ctx, name, props)
	}
}

func (s *Service) engage(ctx context.Context, action, target string) {
	if s.analytics != nil {
		s.analytics.TrackEngagement(ctx, action, target, nil)
	}
}

// progress feeds the daily challenge and re-derives achievements from stored signals
func (s *Service) progress(ctx context.Context, keyword string, increment int) {
	if keyword != "" {
		s.challenges.UpdateProgress(ctx, keyword, increment)
	}
	s.achievements.RecomputeFromSignals(ctx)
}

// Tap increments the tap counter and returns the new count
func (s *Service) Tap(ctx context.Context) (int, error) {
	s.mu.Lock()
	count, err := store.Incr(ctx, s.store, domain.KeyTapCount, 1)
	s.mu.Unlock()
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Debug(LogMsgTapRecorded, "tap_count", count)
	s.track(ctx, domain.EventButtonTap, domain.Properties{
		PropButton:   domain.StringValue(ButtonTapCounter),
		PropTapCount: domain.IntValue(count),
	})
	if count%domain.TapMilestoneInterval == 0 && s.notifier != nil {
		s.notifier.Notify(ctx, domain.NotificationTapMilestone, NotificationTitleMilestone, fmt.Sprintf(milestoneMessageFormat, count))
	}
	s.progress(ctx, domain.ChallengeKeywordTap, 1)
	return count, nil
}

// ResetTaps sets the tap counter back to zero. Unlocked tap achievements stay unlocked.
func (s *Service) ResetTaps(ctx context.Context) error {
	s.mu.Lock()
	err := store.SetInt(ctx, s.store, domain.KeyTapCount, 0)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info(LogMsgTapsReset)
	s.track(ctx, domain.EventButtonTap, domain.Properties{
		PropButton: domain.StringValue(ButtonResetCounter),
	})
	return nil
}

// TapCount returns the stored tap counter
func (s *Service) TapCount(ctx context.Context) (int, error) {
	return store.GetInt(ctx, s.store, domain.KeyTapCount)
}

// ViewScreen records a screen view and the daily visit
func (s *Service) ViewScreen(ctx context.Context, screen string) error {
	if screen == "" {
		return fmt.Errorf("%w: screen name is required", domain.ErrInvalidInput)
	}
	if s.analytics != nil {
		s.analytics.TrackScreen(ctx, screen, nil)
	}
	s.achievements.RecordVisit(ctx)
	if screen == domain.ScreenSettings {
		s.achievements.UpdateProgress(ctx, domain.AchievementSettingsExplorer, 1)
	}
	s.progress(ctx, domain.ChallengeKeywordExplorer, 1)
	return nil
}

// ShareContent records a share of the given content kind
func (s *Service) ShareContent(ctx context.Context, kind string) error {
	if kind == "" {
		return fmt.Errorf("%w: content type is required", domain.ErrInvalidInput)
	}
	s.achievements.UpdateProgress(ctx, domain.AchievementFirstShare, 1)
	s.track(ctx, domain.EventContentShared, domain.Properties{
		PropContentType: domain.StringValue(kind),
	})
	return nil
}

// Dashboard assembles the home screen read model
func (s *Service) Dashboard(ctx context.Context) domain.Dashboard {
	taps, err := s.TapCount(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgReadFailed, "key", domain.KeyTapCount, "error", err)
	}
	progress := s.achievements.UserProgress()

	d := domain.Dashboard{
		TapCount:             taps,
		RewardPoints:         s.challenges.RewardPoints(ctx),
		Challenge:            s.challenges.GetCurrent(ctx),
		UnlockedAchievements: len(s.achievements.GetUnlocked()),
		TotalAchievements:    len(s.achievements.GetAll()),
		CurrentStreak:        progress.CurrentStreak,
		LongestStreak:        progress.LongestStreak,
		DailyChallengeStreak: progress.DailyChallengeStreak,
	}
	if s.subscription != nil {
		d.Subscription = s.subscription.Status(ctx)
	}
	return d
}
