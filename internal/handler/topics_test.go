package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/Milestone_Go/internal/domain"
)

const testTopic = "📊 Core Data"

func TestTopicHandler_HandleList(t *testing.T) {
	t.Run("All", func(t *testing.T) {
		svc := &MockTopicService{}
		svc.On("Topics", mock.Anything).Return([]string{testTopic})

		w := httptest.NewRecorder()
		NewTopicHandler(svc).HandleList(w, httptest.NewRequest(http.MethodGet, "/api/v1/topics", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		got := decodeBody[TopicsResponse](t, w)
		assert.Equal(t, []string{testTopic}, got.Topics)
		svc.AssertNotCalled(t, "SearchTopics", mock.Anything, mock.Anything)
	})

	t.Run("Search", func(t *testing.T) {
		svc := &MockTopicService{}
		svc.On("SearchTopics", mock.Anything, "core").Return([]string{testTopic})

		w := httptest.NewRecorder()
		NewTopicHandler(svc).HandleList(w, httptest.NewRequest(http.MethodGet, "/api/v1/topics?q=core", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})
}

func TestTopicHandler_Mutations(t *testing.T) {
	tests := []struct {
		name           string
		call           func(h *TopicHandler, w http.ResponseWriter, r *http.Request)
		body           interface{}
		setupMock      func(*MockTopicService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Add",
			call: (*TopicHandler).HandleAdd,
			body: TopicRequest{Topic: "🦀 Rust"},
			setupMock: func(m *MockTopicService) {
				m.On("AddTopic", mock.Anything, "🦀 Rust").Return([]string{testTopic, "🦀 Rust"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   "🦀 Rust",
		},
		{
			name: "Add Duplicate",
			call: (*TopicHandler).HandleAdd,
			body: TopicRequest{Topic: testTopic},
			setupMock: func(m *MockTopicService) {
				m.On("AddTopic", mock.Anything, testTopic).Return(nil, domain.ErrTopicExists)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgTopicExistsError,
		},
		{
			name:           "Add Blank",
			call:           (*TopicHandler).HandleAdd,
			body:           TopicRequest{Topic: "   "},
			setupMock:      func(m *MockTopicService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Remove Missing",
			call: (*TopicHandler).HandleRemove,
			body: TopicRequest{Topic: "nope"},
			setupMock: func(m *MockTopicService) {
				m.On("RemoveTopic", mock.Anything, "nope").Return(nil, domain.ErrTopicNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgTopicNotFoundError,
		},
		{
			name: "Reset",
			call: (*TopicHandler).HandleReset,
			setupMock: func(m *MockTopicService) {
				m.On("ResetTopics", mock.Anything).Return(domain.DefaultTopics, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   domain.DefaultTopics[0],
		},
		{
			name: "View",
			call: (*TopicHandler).HandleView,
			body: TopicRequest{Topic: testTopic},
			setupMock: func(m *MockTopicService) {
				m.On("ViewTopic", mock.Anything, testTopic).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   MsgTopicViewed,
		},
		{
			name: "Complete Again",
			call: (*TopicHandler).HandleComplete,
			body: TopicRequest{Topic: testTopic},
			setupMock: func(m *MockTopicService) {
				m.On("CompleteTopic", mock.Anything, testTopic).Return(false, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"newly_completed":false`,
		},
		{
			name: "Favorite",
			call: (*TopicHandler).HandleFavorite,
			body: TopicRequest{Topic: testTopic},
			setupMock: func(m *MockTopicService) {
				m.On("FavoriteTopic", mock.Anything, testTopic).Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"favorited":true`,
		},
		{
			name: "Rate Out Of Range",
			call: (*TopicHandler).HandleRate,
			body: RateTopicRequest{Topic: testTopic, Rating: 6},
			setupMock: func(m *MockTopicService) {
				m.On("RateTopic", mock.Anything, testTopic, 6).Return(domain.ErrInvalidRating)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRatingError,
		},
		{
			name: "Rate",
			call: (*TopicHandler).HandleRate,
			body: RateTopicRequest{Topic: testTopic, Rating: 4},
			setupMock: func(m *MockTopicService) {
				m.On("RateTopic", mock.Anything, testTopic, 4).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   MsgTopicRated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockTopicService{}
			tt.setupMock(svc)

			w := httptest.NewRecorder()
			tt.call(NewTopicHandler(svc), w, newJSONRequest(t, http.MethodPost, "/api/v1/topics", tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}
