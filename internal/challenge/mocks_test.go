package challenge

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Milestone_Go/internal/domain"
)

type MockTracker struct {
	mock.Mock
}

func (m *MockTracker) TrackEvent(ctx context.Context, name domain.EventType, props domain.Properties) {
	m.Called(ctx, name, props)
}

type MockStreaks struct {
	mock.Mock
}

func (m *MockStreaks) UpdateDailyChallengeStreak(ctx context.Context) int {
	args := m.Called(ctx)
	return args.Int(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, kind, title, message string) {
	m.Called(ctx, kind, title, message)
}
