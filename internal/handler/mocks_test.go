package handler

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Milestone_Go/internal/analytics"
	"github.com/osse101/Milestone_Go/internal/domain"
	"github.com/osse101/Milestone_Go/internal/eventlog"
)

// MockAchievementService mocks AchievementService
type MockAchievementService struct {
	mock.Mock
}

func (m *MockAchievementService) Get(id string) (domain.Achievement, error) {
	args := m.Called(id)
	return args.Get(0).(domain.Achievement), args.Error(1)
}

func (m *MockAchievementService) GetAll() []domain.Achievement {
	return m.Called().Get(0).([]domain.Achievement)
}

func (m *MockAchievementService) GetByCategory(category domain.AchievementCategory) []domain.Achievement {
	return m.Called(category).Get(0).([]domain.Achievement)
}

func (m *MockAchievementService) GetUnlocked() []domain.Achievement {
	return m.Called().Get(0).([]domain.Achievement)
}

func (m *MockAchievementService) UpdateProgress(ctx context.Context, id string, value int) bool {
	return m.Called(ctx, id, value).Bool(0)
}

func (m *MockAchievementService) Unlock(ctx context.Context, id string) bool {
	return m.Called(ctx, id).Bool(0)
}

func (m *MockAchievementService) RecomputeFromSignals(ctx context.Context) []string {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockAchievementService) UserProgress() domain.UserProgress {
	return m.Called().Get(0).(domain.UserProgress)
}

// MockChallengeService mocks ChallengeService
type MockChallengeService struct {
	mock.Mock
}

func (m *MockChallengeService) GetCurrent(ctx context.Context) domain.DailyChallenge {
	return m.Called(ctx).Get(0).(domain.DailyChallenge)
}

func (m *MockChallengeService) UpdateProgress(ctx context.Context, keyword string, increment int) bool {
	return m.Called(ctx, keyword, increment).Bool(0)
}

func (m *MockChallengeService) RewardPoints(ctx context.Context) int {
	return m.Called(ctx).Int(0)
}

// MockSubscriptionService mocks SubscriptionService
type MockSubscriptionService struct {
	mock.Mock
}

func (m *MockSubscriptionService) Status(ctx context.Context) domain.SubscriptionStatus {
	return m.Called(ctx).Get(0).(domain.SubscriptionStatus)
}

func (m *MockSubscriptionService) SetTier(ctx context.Context, tier domain.SubscriptionTier) error {
	return m.Called(ctx, tier).Error(0)
}

func (m *MockSubscriptionService) StartTrial(ctx context.Context, tier domain.SubscriptionTier, duration time.Duration) bool {
	return m.Called(ctx, tier, duration).Bool(0)
}

func (m *MockSubscriptionService) Feature(ctx context.Context, id string) (domain.PremiumFeature, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.PremiumFeature), args.Error(1)
}

func (m *MockSubscriptionService) Features(ctx context.Context) []domain.PremiumFeature {
	return m.Called(ctx).Get(0).([]domain.PremiumFeature)
}

func (m *MockSubscriptionService) LockedFeatures(ctx context.Context) []domain.PremiumFeature {
	return m.Called(ctx).Get(0).([]domain.PremiumFeature)
}

func (m *MockSubscriptionService) UnlockedFeatures(ctx context.Context) []domain.PremiumFeature {
	return m.Called(ctx).Get(0).([]domain.PremiumFeature)
}

func (m *MockSubscriptionService) SimulatePurchase(ctx context.Context, item domain.PurchaseItem, completion func(bool)) error {
	return m.Called(ctx, item, completion).Error(0)
}

// MockAnalyticsService mocks AnalyticsService
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) TrackEvent(ctx context.Context, name domain.EventType, props domain.Properties) {
	m.Called(ctx, name, props)
}

func (m *MockAnalyticsService) Events() []domain.AnalyticsEvent {
	return m.Called().Get(0).([]domain.AnalyticsEvent)
}

func (m *MockAnalyticsService) Summary() analytics.Summary {
	return m.Called().Get(0).(analytics.Summary)
}

func (m *MockAnalyticsService) Export() ([]byte, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockAnalyticsService) Clear(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockAnalyticsService) UserProperties(ctx context.Context) domain.Properties {
	return m.Called(ctx).Get(0).(domain.Properties)
}

func (m *MockAnalyticsService) SetUserProperty(ctx context.Context, key string, value domain.Value) {
	m.Called(ctx, key, value)
}

// MockEventLogQuerier mocks EventLogQuerier
type MockEventLogQuerier struct {
	mock.Mock
}

func (m *MockEventLogQuerier) Query(ctx context.Context, filter eventlog.Filter) ([]eventlog.Event, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]eventlog.Event), args.Error(1)
}

// MockActivityService mocks ActivityService
type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) Tap(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockActivityService) ResetTaps(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockActivityService) TapCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockActivityService) ViewScreen(ctx context.Context, screen string) error {
	return m.Called(ctx, screen).Error(0)
}

func (m *MockActivityService) ShareContent(ctx context.Context, kind string) error {
	return m.Called(ctx, kind).Error(0)
}

func (m *MockActivityService) Dashboard(ctx context.Context) domain.Dashboard {
	return m.Called(ctx).Get(0).(domain.Dashboard)
}

func (m *MockActivityService) Profile(ctx context.Context) (domain.Profile, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Profile), args.Error(1)
}

func (m *MockActivityService) UpdateProfile(ctx context.Context, name, email, location string) (domain.Profile, error) {
	args := m.Called(ctx, name, email, location)
	return args.Get(0).(domain.Profile), args.Error(1)
}

func (m *MockActivityService) SetProfilePhoto(ctx context.Context, data []byte) error {
	return m.Called(ctx, data).Error(0)
}

func (m *MockActivityService) ProfilePhoto(ctx context.Context) ([]byte, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.Bool(1), args.Error(2)
}

func (m *MockActivityService) RemoveProfilePhoto(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockTopicService mocks TopicService
type MockTopicService struct {
	mock.Mock
}

func (m *MockTopicService) topics(args mock.Arguments) []string {
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockTopicService) Topics(ctx context.Context) []string {
	return m.topics(m.Called(ctx))
}

func (m *MockTopicService) AddTopic(ctx context.Context, topic string) ([]string, error) {
	args := m.Called(ctx, topic)
	return m.topics(args), args.Error(1)
}

func (m *MockTopicService) RemoveTopic(ctx context.Context, topic string) ([]string, error) {
	args := m.Called(ctx, topic)
	return m.topics(args), args.Error(1)
}

func (m *MockTopicService) ResetTopics(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return m.topics(args), args.Error(1)
}

func (m *MockTopicService) SearchTopics(ctx context.Context, query string) []string {
	return m.topics(m.Called(ctx, query))
}

func (m *MockTopicService) ViewTopic(ctx context.Context, topic string) error {
	return m.Called(ctx, topic).Error(0)
}

func (m *MockTopicService) CompleteTopic(ctx context.Context, topic string) (bool, error) {
	args := m.Called(ctx, topic)
	return args.Bool(0), args.Error(1)
}

func (m *MockTopicService) FavoriteTopic(ctx context.Context, topic string) (bool, error) {
	args := m.Called(ctx, topic)
	return args.Bool(0), args.Error(1)
}

func (m *MockTopicService) RateTopic(ctx context.Context, topic string, rating int) error {
	return m.Called(ctx, topic, rating).Error(0)
}

// MockPreferenceService mocks PreferenceService
type MockPreferenceService struct {
	mock.Mock
}

func (m *MockPreferenceService) Preferences(ctx context.Context) domain.UserPreferences {
	return m.Called(ctx).Get(0).(domain.UserPreferences)
}

func (m *MockPreferenceService) UpdatePreferences(ctx context.Context, prefs domain.UserPreferences) ([]domain.PreferenceChange, error) {
	args := m.Called(ctx, prefs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PreferenceChange), args.Error(1)
}

// MockNotificationFeed mocks NotificationFeed
type MockNotificationFeed struct {
	mock.Mock
}

func (m *MockNotificationFeed) Recent(limit int) []domain.Notification {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Notification)
}
