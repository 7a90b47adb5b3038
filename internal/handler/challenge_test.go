package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/Milestone_Go/internal/domain"
)

func testChallenge(progress int, completed bool) domain.DailyChallenge {
	return domain.DailyChallenge{
		ID:              "daily_2026-10-18",
		Title:           "Tap Master",
		TargetValue:     10,
		CurrentProgress: progress,
		Date:            time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC),
		RewardPoints:    50,
		IsCompleted:     completed,
	}
}

func TestChallengeHandler_HandleGetCurrent(t *testing.T) {
	svc := &MockChallengeService{}
	svc.On("GetCurrent", mock.Anything).Return(testChallenge(0, false))

	w := httptest.NewRecorder()
	NewChallengeHandler(svc).HandleGetCurrent(w, httptest.NewRequest(http.MethodGet, "/api/v1/challenge", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	got := decodeBody[domain.DailyChallenge](t, w)
	assert.Equal(t, "Tap Master", got.Title)
	assert.Equal(t, 10, got.TargetValue)
}

func TestChallengeHandler_HandleProgress(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*MockChallengeService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Completes",
			body: ChallengeProgressRequest{Keyword: "tap", Increment: 10},
			setupMock: func(m *MockChallengeService) {
				m.On("UpdateProgress", mock.Anything, "tap", 10).Return(true)
				m.On("GetCurrent", mock.Anything).Return(testChallenge(10, true))
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"completed":true`,
		},
		{
			name: "No Match",
			body: ChallengeProgressRequest{Keyword: "share", Increment: 1},
			setupMock: func(m *MockChallengeService) {
				m.On("UpdateProgress", mock.Anything, "share", 1).Return(false)
				m.On("GetCurrent", mock.Anything).Return(testChallenge(0, false))
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"completed":false`,
		},
		{
			name:           "Zero Increment",
			body:           ChallengeProgressRequest{Keyword: "tap", Increment: 0},
			setupMock:      func(m *MockChallengeService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Must be at least 1",
		},
		{
			name:           "Blank Keyword",
			body:           ChallengeProgressRequest{Keyword: " ", Increment: 1},
			setupMock:      func(m *MockChallengeService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "keyword",
		},
		{
			name:           "Malformed JSON",
			body:           `{"keyword":`,
			setupMock:      func(m *MockChallengeService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockChallengeService{}
			tt.setupMock(svc)

			w := httptest.NewRecorder()
			NewChallengeHandler(svc).HandleProgress(w, newJSONRequest(t, http.MethodPost, "/api/v1/challenge/progress", tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestChallengeHandler_HandleRewards(t *testing.T) {
	svc := &MockChallengeService{}
	svc.On("RewardPoints", mock.Anything).Return(150)

	w := httptest.NewRecorder()
	NewChallengeHandler(svc).HandleRewards(w, httptest.NewRequest(http.MethodGet, "/api/v1/challenge/rewards", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"reward_points":150}`, w.Body.String())
}
