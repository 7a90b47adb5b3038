package achievement

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/Milestone_Go/internal/clock"
	"github.com/osse101/Milestone_Go/internal/domain"
	"github.com/osse101/Milestone_Go/internal/logger"
	"github.com/osse101/Milestone_Go/internal/notify"
	"github.com/osse101/Milestone_Go/internal/store"
)

// AnalyticsTracker records unlocked achievements
type AnalyticsTracker interface {
	TrackAchievement(ctx context.Context, a domain.Achievement)
}

// Tracker owns achievement state and the user progress record.
// Unlocks are one-way and progress only moves up, clamped to the requirement.
type Tracker struct {
	store     store.Store
	analytics AnalyticsTracker
	notifier  notify.Notifier
	clock     clock.Clock

	mu           sync.Mutex
	achievements []domain.Achievement
	index        map[string]int
	progress     domain.UserProgress
}

// NewTracker builds the catalog and restores persisted progress.
// Corrupt or missing state falls back to first-run defaults.
func NewTracker(ctx context.Context, st store.Store, analytics AnalyticsTracker, notifier notify.Notifier, clk clock.Clock) *Tracker {
	t := &Tracker{
		store:     st,
		analytics: analytics,
		notifier:  notifier,
		clock:     clk,
		index:     make(map[string]int, len(catalog)),
		progress:  domain.NewUserProgress(),
	}
	for i, def := range catalog {
		t.achievements = append(t.achievements, domain.Achievement{AchievementDefinition: def})
		t.index[def.ID] = i
	}
	t.load(ctx)
	return t
}

func (t *Tracker) load(ctx context.Context) {
	log := logger.FromContext(ctx)

	progress := domain.NewUserProgress()
	if _, err := store.GetJSON(ctx, t.store, domain.KeyUserProgress, &progress); err != nil {
		log.Warn(LogMsgLoadFailed, "key", domain.KeyUserProgress, "error", err)
		progress = domain.NewUserProgress()
	}
	normalizeProgress(&progress)
	t.progress = progress

	perID := map[string]int{}
	if _, err := store.GetJSON(ctx, t.store, domain.KeyAchievementProgress, &perID); err != nil {
		log.Warn(LogMsgLoadFailed, "key", domain.KeyAchievementProgress, "error", err)
		perID = map[string]int{}
	}

	for id, p := range perID {
		if i, ok := t.index[id]; ok {
			t.achievements[i].Progress = clamp(p, 0, t.achievements[i].Requirement)
		}
	}
	for _, id := range t.progress.AchievementsUnlocked {
		if i, ok := t.index[id]; ok {
			t.achievements[i].IsUnlocked = true
			t.achievements[i].Progress = t.achievements[i].Requirement
		}
	}
}

func normalizeProgress(p *domain.UserProgress) {
	if p.AchievementsUnlocked == nil {
		p.AchievementsUnlocked = []string{}
	}
	if p.FavoriteTopics == nil {
		p.FavoriteTopics = []string{}
	}
	if p.CompletedTopics == nil {
		p.CompletedTopics = []string{}
	}
	if p.TopicRatings == nil {
		p.TopicRatings = map[string]int{}
	}
}

// persistLocked writes both records. Errors are logged and swallowed. Caller holds t.mu.
func (t *Tracker) persistLocked(ctx context.Context) {
	log := logger.FromContext(ctx)

	perID := make(map[string]int, len(t.achievements))
	for _, a := range t.achievements {
		if a.Progress > 0 {
			perID[a.ID] = a.Progress
		}
	}
	if err := store.SetJSON(ctx, t.store, domain.KeyAchievementProgress, perID); err != nil {
		log.Warn(LogMsgPersistFailed, "key", domain.KeyAchievementProgress, "error", err)
	}
	if err := store.SetJSON(ctx, t.store, domain.KeyUserProgress, t.progress); err != nil {
		log.Warn(LogMsgPersistFailed, "key", domain.KeyUserProgress, "error", err)
	}
}

// UpdateProgress raises progress to value (clamped to the requirement) and unlocks
// the achievement when the requirement is met. It returns true only on the call that unlocked.
// Unknown ids are ignored.
func (t *Tracker) UpdateProgress(ctx context.Context, id string, value int) bool {
	t.mu.Lock()
	i, ok := t.index[id]
	if !ok {
		t.mu.Unlock()
		logger.FromContext(ctx).Debug(LogMsgUnknownAchievement, "achievement_id", id)
		return false
	}

	a := &t.achievements[i]
	next := clamp(max(a.Progress, value), 0, a.Requirement)
	changed := next != a.Progress
	a.Progress = next

	var unlocked *domain.Achievement
	if a.Progress >= a.Requirement && !a.IsUnlocked {
		snapshot := t.unlockLocked(i)
		unlocked = &snapshot
		changed = true
	}
	if changed {
		t.persistLocked(ctx)
	}
	t.mu.Unlock()

	if unlocked != nil {
		t.announce(ctx, *unlocked)
		return true
	}
	return false
}

// Unlock unlocks an achievement directly. It is a no-op for unknown or already unlocked ids.
func (t *Tracker) Unlock(ctx context.Context, id string) bool {
	t.mu.Lock()
	i, ok := t.index[id]
	if !ok || t.achievements[i].IsUnlocked {
		t.mu.Unlock()
		return false
	}
	snapshot := t.unlockLocked(i)
	t.persistLocked(ctx)
	t.mu.Unlock()

	t.announce(ctx, snapshot)
	return true
}

func (t *Tracker) unlockLocked(i int) domain.Achievement {
	a := &t.achievements[i]
	a.IsUnlocked = true
	a.Progress = a.Requirement
	t.progress.AchievementsUnlocked = append(t.progress.AchievementsUnlocked, a.ID)
	return *a
}

func (t *Tracker) announce(ctx context.Context, a domain.Achievement) {
	logger.FromContext(ctx).Info(LogMsgAchievementUnlocked, "achievement_id", a.ID, "title", a.Title)
	if t.analytics != nil {
		t.analytics.TrackAchievement(ctx, a)
	}
	if t.notifier != nil {
		t.notifier.Notify(ctx, domain.NotificationAchievementUnlocked, NotificationTitleUnlocked,
			fmt.Sprintf(notificationBodyFormat, a.Icon, a.Title, a.Description))
	}
}

// Get returns a single achievement
func (t *Tracker) Get(id string) (domain.Achievement, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	i, ok := t.index[id]
	if !ok {
		return domain.Achievement{}, fmt.Errorf("%w: %s", domain.ErrAchievementNotFound, id)
	}
	return t.achievements[i], nil
}

// GetAll returns every achievement in catalog order
func (t *Tracker) GetAll() []domain.Achievement {
	return t.filter(func(domain.Achievement) bool { return true })
}

// GetByCategory returns the achievements of one category in catalog order
func (t *Tracker) GetByCategory(category domain.AchievementCategory) []domain.Achievement {
	return t.filter(func(a domain.Achievement) bool { return a.Category == category })
}

// GetUnlocked returns the unlocked achievements in catalog order
func (t *Tracker) GetUnlocked() []domain.Achievement {
	return t.filter(func(a domain.Achievement) bool { return a.IsUnlocked })
}

func (t *Tracker) filter(keep func(domain.Achievement) bool) []domain.Achievement {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]domain.Achievement, 0, len(t.achievements))
	for _, a := range t.achievements {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

// RecomputeFromSignals derives progress from stored counters and the user progress record.
// It returns the ids unlocked by this call and is safe to call repeatedly.
func (t *Tracker) RecomputeFromSignals(ctx context.Context) []string {
	log := logger.FromContext(ctx)

	tapCount, err := store.GetInt(ctx, t.store, domain.KeyTapCount)
	if err != nil {
		log.Warn(LogMsgSignalReadFailed, "key", domain.KeyTapCount, "error", err)
	}
	profileComplete := t.hasValue(ctx, domain.KeyUserName) &&
		t.hasValue(ctx, domain.KeyUserEmail) &&
		t.hasValue(ctx, domain.KeyUserLocation)
	hasPhoto := t.hasValue(ctx, domain.KeyProfileImage)

	t.mu.Lock()
	completed := len(t.progress.CompletedTopics)
	streak := t.progress.CurrentStreak
	t.mu.Unlock()

	var unlocked []string
	update := func(id string, value int) {
		if t.UpdateProgress(ctx, id, value) {
			unlocked = append(unlocked, id)
		}
	}

	update(domain.AchievementFirstTap, boolToInt(tapCount > 0))
	for _, id := range tapAchievements {
		update(id, tapCount)
	}
	if profileComplete {
		update(domain.AchievementProfileComplete, 1)
	}
	if hasPhoto {
		update(domain.AchievementPhotoUpload, 1)
	}
	update(domain.AchievementFirstTopic, boolToInt(completed > 0))
	for _, id := range topicAchievements {
		update(id, completed)
	}
	update(domain.AchievementDailyStreak3, streak)
	update(domain.AchievementDailyStreak7, streak)

	log.Debug(LogMsgRecomputed, "tap_count", tapCount, "completed_topics", completed, "streak", streak, "unlocked", unlocked)
	return unlocked
}

func (t *Tracker) hasValue(ctx context.Context, key string) bool {
	v, err := store.GetString(ctx, t.store, key, "")
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgSignalReadFailed, "key", key, "error", err)
		return false
	}
	return v != ""
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
