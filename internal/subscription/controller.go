package subscription

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/osse101/Milestone_Go/internal/clock"
	"github.com/osse101/Milestone_Go/internal/domain"
	"github.com/osse101/Milestone_Go/internal/logger"
	"github.com/osse101/Milestone_Go/internal/notify"
	"github.com/osse101/Milestone_Go/internal/store"
	"github.com/osse101/Milestone_Go/internal/utils"
)

// ErrClosed is returned by SimulatePurchase after Shutdown has started
var ErrClosed = errors.New("subscription controller is shut down")

// EventTracker is the slice of the analytics sink the controller reports to
type EventTracker interface {
	TrackEvent(ctx context.Context, name domain.EventType, props domain.Properties)
	TrackPurchase(ctx context.Context, item domain.PurchaseItem, success bool)
	TrackError(ctx context.Context, appErr *domain.AppError)
}

// ProgressUpdater feeds the premium achievements
type ProgressUpdater interface {
	UpdateProgress(ctx context.Context, id string, value int) bool
}

// Config tunes trials and the purchase simulation
type Config struct {
	TrialDuration       time.Duration
	PurchaseMinDelay    time.Duration
	PurchaseMaxDelay    time.Duration
	PurchaseSuccessRate float64
}

// DefaultConfig returns a 7 day trial and a 1-3s purchase delay with 85% success
func DefaultConfig() Config {
	return Config{
		TrialDuration:       domain.DefaultTrialDuration,
		PurchaseMinDelay:    DefaultPurchaseMinDelay,
		PurchaseMaxDelay:    DefaultPurchaseMaxDelay,
		PurchaseSuccessRate: DefaultPurchaseSuccessRate,
	}
}

// Controller owns the subscription tier, the trial window and per-feature purchases.
// Feature locks are derived on read and never stored.
type Controller struct {
	store        store.Store
	analytics    EventTracker
	achievements ProgressUpdater
	notifier     notify.Notifier
	clock        clock.Clock
	random       utils.RandomSource
	cfg          Config

	mu        sync.Mutex
	tier      domain.SubscriptionTier
	trialEnd  *time.Time
	purchased map[string]bool
	closed    bool

	wg sync.WaitGroup
}

// tierChange describes a tier transition whose side effects run after the lock is released
type tierChange struct {
	previous domain.SubscriptionTier
	next     domain.SubscriptionTier
	trialEnd *time.Time
}

// NewController restores persisted state and applies the trial expiry check
func NewController(ctx context.Context, st store.Store, analytics EventTracker, achievements ProgressUpdater,
	notifier notify.Notifier, clk clock.Clock, rnd utils.RandomSource, cfg Config) *Controller {
	if cfg.TrialDuration <= 0 {
		cfg.TrialDuration = domain.DefaultTrialDuration
	}
	c := &Controller{
		store:        st,
		analytics:    analytics,
		achievements: achievements,
		notifier:     notifier,
		clock:        clk,
		random:       rnd,
		cfg:          cfg,
		tier:         domain.TierFree,
		purchased:    map[string]bool{},
	}
	c.load(ctx)

	c.mu.Lock()
	change := c.expireLocked(ctx)
	c.mu.Unlock()
	c.emit(ctx, change)
	return c
}

func (c *Controller) load(ctx context.Context) {
	log := logger.FromContext(ctx)

	raw, err := store.GetString(ctx, c.store, domain.KeySubscriptionTier, string(domain.TierFree))
	if err != nil {
		log.Warn(LogMsgLoadFailed, "key", domain.KeySubscriptionTier, "error", err)
	}
	if tier, err := domain.ParseSubscriptionTier(raw); err == nil {
		c.tier = tier
	} else {
		log.Warn(LogMsgLoadFailed, "key", domain.KeySubscriptionTier, "error", err)
	}

	var end time.Time
	found, err := store.GetJSON(ctx, c.store, domain.KeyTrialEndDate, &end)
	if err != nil {
		log.Warn(LogMsgLoadFailed, "key", domain.KeyTrialEndDate, "error", err)
	} else if found {
		c.trialEnd = &end
	}

	var ids []string
	if _, err := store.GetJSON(ctx, c.store, domain.KeyUnlockedFeatures, &ids); err != nil {
		log.Warn(LogMsgLoadFailed, "key", domain.KeyUnlockedFeatures, "error", err)
	}
	for _, id := range ids {
		if _, ok := findFeature(id); ok {
			c.purchased[id] = true
		}
	}
}

// expireLocked reverts an expired trial to Free. Caller holds c.mu.
func (c *Controller) expireLocked(ctx context.Context) *tierChange {
	if c.trialEnd == nil || c.tier == domain.TierFree || !c.clock.Now().After(*c.trialEnd) {
		return nil
	}
	logger.FromContext(ctx).Info(LogMsgTrialExpired, "tier", c.tier, "trial_end", *c.trialEnd)
	return c.setTierLocked(ctx, domain.TierFree, nil)
}

// setTierLocked switches the tier and persists it with the given trial end. Caller holds c.mu.
func (c *Controller) setTierLocked(ctx context.Context, tier domain.SubscriptionTier, trialEnd *time.Time) *tierChange {
	log := logger.FromContext(ctx)
	change := &tierChange{previous: c.tier, next: tier, trialEnd: trialEnd}

	c.tier = tier
	c.trialEnd = trialEnd

	if err := c.store.Set(ctx, domain.KeySubscriptionTier, string(tier)); err != nil {
		log.Warn(LogMsgPersistFailed, "key", domain.KeySubscriptionTier, "error", err)
	}
	var err error
	if trialEnd == nil {
		err = c.store.Delete(ctx, domain.KeyTrialEndDate)
	} else {
		err = store.SetJSON(ctx, c.store, domain.KeyTrialEndDate, *trialEnd)
	}
	if err != nil {
		log.Warn(LogMsgPersistFailed, "key", domain.KeyTrialEndDate, "error", err)
	}
	return change
}

// emit runs the side effects of a tier change: analytics, achievements and the confirmation notification
func (c *Controller) emit(ctx context.Context, change *tierChange) {
	if change == nil {
		return
	}
	now := c.clock.Now()
	isTrial := change.trialEnd != nil && now.Before(*change.trialEnd)

	logger.FromContext(ctx).Info(LogMsgTierChanged, "previous_tier", change.previous, "new_tier", change.next, "is_trial", isTrial)

	if c.analytics != nil {
		c.analytics.TrackEvent(ctx, domain.EventFeatureUsed, domain.Properties{
			domain.PropAction: domain.StringValue(domain.ActionSubscriptionChanged),
			PropPreviousTier:  domain.StringValue(string(change.previous)),
			PropNewTier:       domain.StringValue(string(change.next)),
			PropIsTrial:       domain.BoolValue(isTrial),
		})
	}
	if change.next != domain.TierFree && c.achievements != nil {
		c.achievements.UpdateProgress(ctx, domain.AchievementPremiumUser, 1)
	}
	if change.previous == change.next || c.notifier == nil {
		return
	}

	title := NotificationTitleUpgraded
	var message string
	switch {
	case change.next == domain.TierFree:
		title = NotificationTitleDowngraded
		message = messageEnded
	case isTrial:
		days := int(change.trialEnd.Sub(now) / (24 * time.Hour))
		message = fmt.Sprintf(messageTrialFormat, change.next, days)
	default:
		message = fmt.Sprintf(messageWelcomeFormat, change.next)
	}
	c.notifier.Notify(ctx, domain.NotificationSubscriptionChanged, title, message)
}

// CurrentTier returns the tier after applying the trial expiry check
func (c *Controller) CurrentTier(ctx context.Context) domain.SubscriptionTier {
	c.mu.Lock()
	change := c.expireLocked(ctx)
	tier := c.tier
	c.mu.Unlock()

	c.emit(ctx, change)
	return tier
}

// SetTier switches to tier and clears any pending trial
func (c *Controller) SetTier(ctx context.Context, tier domain.SubscriptionTier) error {
	if !tier.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidTier, tier)
	}
	c.mu.Lock()
	change := c.setTierLocked(ctx, tier, nil)
	c.mu.Unlock()

	c.emit(ctx, change)
	return nil
}

// StartTrial moves a Free user onto tier for duration. A non-positive duration uses the
// configured default. It returns false when the user is not on Free or tier is Free.
func (c *Controller) StartTrial(ctx context.Context, tier domain.SubscriptionTier, duration time.Duration) bool {
	if !tier.Valid() || tier == domain.TierFree {
		return false
	}
	if duration <= 0 {
		duration = c.cfg.TrialDuration
	}

	c.mu.Lock()
	expired := c.expireLocked(ctx)
	if c.tier != domain.TierFree {
		c.mu.Unlock()
		c.emit(ctx, expired)
		return false
	}
	end := c.clock.Now().Add(duration)
	change := c.setTierLocked(ctx, tier, &end)
	c.mu.Unlock()

	c.emit(ctx, expired)
	c.emit(ctx, change)

	logger.FromContext(ctx).Info(LogMsgTrialStarted, "tier", tier, "trial_end", end)
	if c.achievements != nil {
		c.achievements.UpdateProgress(ctx, domain.AchievementPremiumTrial, 1)
	}
	if c.analytics != nil {
		c.analytics.TrackEvent(ctx, domain.EventFeatureUsed, domain.Properties{
			domain.PropAction: domain.StringValue(domain.ActionTrialStarted),
			PropTier:          domain.StringValue(string(tier)),
			PropDurationDays:  domain.IntValue(int(duration / (24 * time.Hour))),
		})
	}
	return true
}

// IsTrialActive reports whether a trial end exists and lies in the future
func (c *Controller) IsTrialActive(ctx context.Context) bool {
	return c.TrialTimeRemaining(ctx) > 0
}

// TrialTimeRemaining returns the time left on the trial, or zero
func (c *Controller) TrialTimeRemaining(ctx context.Context) time.Duration {
	c.mu.Lock()
	change := c.expireLocked(ctx)
	var remaining time.Duration
	if c.trialEnd != nil {
		remaining = max(c.trialEnd.Sub(c.clock.Now()), 0)
	}
	c.mu.Unlock()

	c.emit(ctx, change)
	return remaining
}

// Status summarizes tier, price and trial state
func (c *Controller) Status(ctx context.Context) domain.SubscriptionStatus {
	tier := c.CurrentTier(ctx)
	remaining := c.TrialTimeRemaining(ctx)

	status := domain.SubscriptionStatus{
		Tier:                  tier,
		Price:                 tier.Price(),
		Features:              tier.Features(),
		IsTrialActive:         remaining > 0,
		TrialRemainingSeconds: int64(remaining / time.Second),
	}
	c.mu.Lock()
	if c.trialEnd != nil {
		end := *c.trialEnd
		status.TrialEnd = &end
	}
	c.mu.Unlock()
	return status
}

// IsFeatureUnlocked reports whether the feature is available. Unknown ids are unlocked.
func (c *Controller) IsFeatureUnlocked(ctx context.Context, id string) bool {
	f, err := c.Feature(ctx, id)
	if err != nil {
		return true
	}
	return !f.IsLocked
}

// Feature returns a single feature with its derived lock state
func (c *Controller) Feature(ctx context.Context, id string) (domain.PremiumFeature, error) {
	def, ok := findFeature(id)
	if !ok {
		return domain.PremiumFeature{}, fmt.Errorf("%w: %s", domain.ErrFeatureNotFound, id)
	}
	tier := c.CurrentTier(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	def.IsLocked = c.lockedLocked(def, tier)
	return def, nil
}

func (c *Controller) lockedLocked(f domain.PremiumFeature, tier domain.SubscriptionTier) bool {
	return f.RequiredTier.Rank() > tier.Rank() && !c.purchased[f.ID]
}

// Features returns every feature in catalog order
func (c *Controller) Features(ctx context.Context) []domain.PremiumFeature {
	return c.filter(ctx, func(domain.PremiumFeature) bool { return true })
}

// LockedFeatures returns the features the user cannot use
func (c *Controller) LockedFeatures(ctx context.Context) []domain.PremiumFeature {
	return c.filter(ctx, func(f domain.PremiumFeature) bool { return f.IsLocked })
}

// UnlockedFeatures returns the features the user can use
func (c *Controller) UnlockedFeatures(ctx context.Context) []domain.PremiumFeature {
	return c.filter(ctx, func(f domain.PremiumFeature) bool { return !f.IsLocked })
}

func (c *Controller) filter(ctx context.Context, keep func(domain.PremiumFeature) bool) []domain.PremiumFeature {
	tier := c.CurrentTier(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.PremiumFeature, 0, len(catalog))
	for _, f := range catalog {
		f.IsLocked = c.lockedLocked(f, tier)
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}

// UnlockFeature marks a feature as individually purchased. Purchases survive tier changes.
func (c *Controller) UnlockFeature(ctx context.Context, id string) error {
	if _, ok := findFeature(id); !ok {
		return fmt.Errorf("%w: %s", domain.ErrFeatureNotFound, id)
	}

	c.mu.Lock()
	if c.purchased[id] {
		c.mu.Unlock()
		return nil
	}
	c.purchased[id] = true
	ids := make([]string, 0, len(c.purchased))
	for fid := range c.purchased {
		ids = append(ids, fid)
	}
	sort.Strings(ids)
	if err := store.SetJSON(ctx, c.store, domain.KeyUnlockedFeatures, ids); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPersistFailed, "key", domain.KeyUnlockedFeatures, "error", err)
	}
	c.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgFeatureUnlocked, "feature_id", id)
	if c.analytics != nil {
		c.analytics.TrackEvent(ctx, domain.EventFeatureUsed, domain.Properties{
			domain.PropAction: domain.StringValue(domain.ActionFeatureUnlocked),
			PropFeatureID:     domain.StringValue(id),
		})
	}
	return nil
}
