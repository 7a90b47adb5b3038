package subscription

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

func (m *MockTracker) TrackPurchase(ctx context.Context, item domain.PurchaseItem, success bool) {
	m.Called(ctx, item, success)
}

func (m *MockTracker) TrackError(ctx context.Context, appErr *domain.AppError) {
	m.Called(ctx, appErr)
}

type MockProgress struct {
	mock.Mock
}

func (m *MockProgress) UpdateProgress(ctx context.Context, id string, value int) bool {
	args := m.Called(ctx, id, value)
	return args.Bool(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, kind, title, message string) {
	m.Called(ctx, kind, title, message)
}
