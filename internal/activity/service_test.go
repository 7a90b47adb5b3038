package activity

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Milestone_Go/internal/achievement"
	"github.com/osse101/Milestone_Go/internal/challenge"
	"github.com/osse101/Milestone_Go/internal/clock"
	"github.com/osse101/Milestone_Go/internal/domain"
	"github.com/osse101/Milestone_Go/internal/store"
	"github.com/osse101/Milestone_Go/internal/utils"
)

type trackedEvent struct {
	name  domain.EventType
	props domain.Properties
}

// recordingTracker captures every analytics call in order
type recordingTracker struct {
	mu          sync.Mutex
	events      []trackedEvent
	screens     []string
	engagements []string
}

func (r *recordingTracker) TrackEvent(_ context.Context, name domain.EventType, props domain.Properties) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, trackedEvent{name: name, props: props})
}

func (r *recordingTracker) TrackScreen(_ context.Context, screen string, _ domain.Properties) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.screens = append(r.screens, screen)
}

func (r *recordingTracker) TrackEngagement(_ context.Context, action, target string, _ *domain.Value) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.engagements = append(r.engagements, action+":"+target)
}

func (r *recordingTracker) named(name domain.EventType) []trackedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []trackedEvent
	for _, e := range r.events {
		if e.name == name {
			out = append(out, e)
		}
	}
	return out
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, kind, title, message string) {
	m.Called(ctx, kind, title, message)
}

type stubSubscription struct {
	status domain.SubscriptionStatus
}

func (s stubSubscription) Status(context.Context) domain.SubscriptionStatus {
	return s.status
}

type fixture struct {
	svc          *Service
	store        *store.Memory
	clock        *clock.Simulated
	analytics    *recordingTracker
	achievements *achievement.Tracker
	challenges   *challenge.Engine
	notifier     *MockNotifier
}

// newFixture wires real trackers over a memory store. pick selects the daily challenge template.
func newFixture(t *testing.T, pick int) *fixture {
	t.Helper()
	ctx := context.Background()
	f := &fixture{
		store:     store.NewMemory(),
		clock:     clock.NewSimulated(time.Date(2026, 6, 1, 8, 0, 0, 0, time.Local)),
		analytics: &recordingTracker{},
		notifier:  new(MockNotifier),
	}
	f.notifier.On("Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	f.achievements = achievement.NewTracker(ctx, f.store, nil, f.notifier, f.clock)
	f.challenges = challenge.NewEngine(f.store, nil, utils.FixedRandom{IntValue: pick}, f.clock, f.analytics, f.achievements, f.notifier)
	sub := stubSubscription{status: domain.SubscriptionStatus{Tier: domain.TierBasic, Price: domain.TierBasic.Price()}}
	f.svc = NewService(f.store, f.analytics, f.achievements, f.challenges, sub, f.notifier)
	return f
}

func (f *fixture) unlocked(t *testing.T, id string) bool {
	t.Helper()
	a, err := f.achievements.Get(id)
	require.NoError(t, err)
	return a.IsUnlocked
}

const (
	pickTap = iota
	pickExplorer
	pickSocial
	pickKnowledge
	pickSettings
	pickFavorite
	pickRating
	pickSearch
)

func TestTap(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, pickTap)

	for i := 1; i <= 10; i++ {
		n, err := f.svc.Tap(ctx)
		require.NoError(t, err)
		assert.Equal(t, i, n)
	}

	f.notifier.AssertCalled(t, "Notify", mock.Anything, domain.NotificationTapMilestone, NotificationTitleMilestone, "You've reached 10 taps!")
	assert.True(t, f.unlocked(t, domain.AchievementFirstTap))
	assert.True(t, f.unlocked(t, domain.AchievementTap10))
	assert.False(t, f.unlocked(t, domain.AchievementTap50))
	assert.Equal(t, 10, f.challenges.GetCurrent(ctx).CurrentProgress)

	taps := f.analytics.named(domain.EventButtonTap)
	require.Len(t, taps, 10)
	assert.Equal(t, "10", taps[9].props[PropTapCount].String())
}

func TestResetTaps_KeepsAchievements(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, pickTap)
	for i := 0; i < 10; i++ {
		_, err := f.svc.Tap(ctx)
		require.NoError(t, err)
	}

	require.NoError(t, f.svc.ResetTaps(ctx))
	n, err := f.svc.TapCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.True(t, f.unlocked(t, domain.AchievementTap10))
}

func TestViewScreen(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, pickExplorer)

	require.NoError(t, f.svc.ViewScreen(ctx, domain.ScreenHome))
	require.NoError(t, f.svc.ViewScreen(ctx, domain.ScreenSettings))

	assert.Equal(t, []string{domain.ScreenHome, domain.ScreenSettings}, f.analytics.screens)
	assert.True(t, f.unlocked(t, domain.AchievementSettingsExplorer))
	assert.Equal(t, 2, f.challenges.GetCurrent(ctx).CurrentProgress)
	assert.Equal(t, 1, f.achievements.UserProgress().CurrentStreak)

	assert.ErrorIs(t, f.svc.ViewScreen(ctx, ""), domain.ErrInvalidInput)
}

func TestViewScreen_AdvancesSettingsExplorer(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, pickSettings)

	// "Settings Explorer" contains the screen-view keyword, so two visits complete it
	require.NoError(t, f.svc.ViewScreen(ctx, domain.ScreenHome))
	require.NoError(t, f.svc.ViewScreen(ctx, domain.ScreenHome))

	ch := f.challenges.GetCurrent(ctx)
	assert.Equal(t, "Settings Explorer", ch.Title)
	assert.True(t, ch.IsCompleted)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, pickSocial)

	p, err := f.svc.UpdateProfile(ctx, "Ada", "", "  ")
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.Name)
	assert.Empty(t, p.Email)
	assert.False(t, f.unlocked(t, domain.AchievementProfileComplete))

	ch := f.challenges.GetCurrent(ctx)
	assert.True(t, ch.IsCompleted, "Social Butterfly needs one profile update")
	assert.Equal(t, 20, f.challenges.RewardPoints(ctx))

	p, err = f.svc.UpdateProfile(ctx, "", "ada@example.com", "London")
	require.NoError(t, err)
	assert.Equal(t, domain.Profile{Name: "Ada", Email: "ada@example.com", Location: "London"}, p)
	assert.True(t, f.unlocked(t, domain.AchievementProfileComplete))

	updates := f.analytics.named(domain.EventProfileUpdated)
	require.Len(t, updates, 2)
	assert.Equal(t, "email,location", updates[1].props[PropFields].String())

	_, err = f.svc.UpdateProfile(ctx, "", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProfilePhoto(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, pickTap)

	assert.ErrorIs(t, f.svc.SetProfilePhoto(ctx, nil), domain.ErrInvalidInput)

	require.NoError(t, f.svc.SetProfilePhoto(ctx, []byte{0x89, 'P', 'N', 'G'}))
	data, ok, err := f.svc.ProfilePhoto(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data)
	assert.True(t, f.unlocked(t, domain.AchievementPhotoUpload))

	require.NoError(t, f.svc.RemoveProfilePhoto(ctx))
	p, err := f.svc.Profile(ctx)
	require.NoError(t, err)
	assert.False(t, p.HasPhoto)
	assert.True(t, f.unlocked(t, domain.AchievementPhotoUpload))
}

func TestShareContent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, pickTap)

	require.NoError(t, f.svc.ShareContent(ctx, "achievement"))
	assert.True(t, f.unlocked(t, domain.AchievementFirstShare))
	shares := f.analytics.named(domain.EventContentShared)
	require.Len(t, shares, 1)
	assert.Equal(t, "achievement", shares[0].props[PropContentType].String())

	assert.ErrorIs(t, f.svc.ShareContent(ctx, ""), domain.ErrInvalidInput)
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, pickTap)
	_, err := f.svc.Tap(ctx)
	require.NoError(t, err)
	require.NoError(t, f.svc.ViewScreen(ctx, domain.ScreenHome))

	d := f.svc.Dashboard(ctx)
	assert.Equal(t, 1, d.TapCount)
	assert.Equal(t, domain.TierBasic, d.Subscription.Tier)
	assert.Equal(t, "daily_2026-06-01", d.Challenge.ID)
	assert.Equal(t, 1, d.UnlockedAchievements)
	assert.Equal(t, 17, d.TotalAchievements)
	assert.Equal(t, 1, d.CurrentStreak)
}
