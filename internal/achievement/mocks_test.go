package achievement

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Milestone_Go/internal/domain"
)

type MockAnalytics struct {
	mock.Mock
}

func (m *MockAnalytics) TrackAchievement(ctx context.Context, a domain.Achievement) {
	m.Called(ctx, a)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, kind, title, message string) {
	m.Called(ctx, kind, title, message)
}
