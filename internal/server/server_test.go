package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Milestone_Go/internal/achievement"
	"github.com/osse101/Milestone_Go/internal/activity"
	"github.com/osse101/Milestone_Go/internal/analytics"
	"github.com/osse101/Milestone_Go/internal/challenge"
	"github.com/osse101/Milestone_Go/internal/clock"
	"github.com/osse101/Milestone_Go/internal/handler"
	"github.com/osse101/Milestone_Go/internal/middleware"
	"github.com/osse101/Milestone_Go/internal/network"
	"github.com/osse101/Milestone_Go/internal/notify"
	"github.com/osse101/Milestone_Go/internal/store"
	"github.com/osse101/Milestone_Go/internal/subscription"
	"github.com/osse101/Milestone_Go/internal/utils"
)

const testAPIKey = "test-key"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	ctx := context.Background()

	st := store.NewMemory()
	clk := clock.NewSimulated(time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))
	rnd := &utils.FixedRandom{IntValue: 0, FloatValue: 0.1}

	feed := notify.NewFeed(nil, clk)
	tracker := analytics.NewManager(ctx, st, nil, clk)
	achievements := achievement.NewTracker(ctx, st, tracker, feed, clk)
	challenges := challenge.NewEngine(st, nil, rnd, clk, tracker, achievements, feed)
	subs := subscription.NewController(ctx, st, tracker, achievements, feed, clk, rnd, subscription.DefaultConfig())
	t.Cleanup(func() { _ = subs.Shutdown(context.Background()) })
	svc := activity.NewService(st, tracker, achievements, challenges, subs, feed)

	return NewRouter(Config{APIKey: testAPIKey}, Services{
		Achievements:  achievements,
		Challenges:    challenges,
		Subscription:  subs,
		Analytics:     tracker,
		Network:       network.NewSimulator(tracker, rnd, clk, network.Config{Latency: time.Millisecond, SuccessRate: 1}),
		Activity:      svc,
		Topics:        svc,
		Preferences:   svc,
		Notifications: feed,
		Engagement:    middleware.NewEngagementTracker(achievements, clk, 0),
	})
}

func serve(t *testing.T, h http.Handler, method, target, body string, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set(HeaderAPIKey, testAPIKey)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_PublicPaths(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/healthz", "/readyz", "/version"} {
		rec := serve(t, router, http.MethodGet, path, "", false)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestRouter_RequiresAPIKey(t *testing.T) {
	router := newTestRouter(t)

	rec := serve(t, router, http.MethodGet, "/api/v1/challenge", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_TapFlow(t *testing.T) {
	router := newTestRouter(t)

	for i := 1; i <= 3; i++ {
		rec := serve(t, router, http.MethodPost, "/api/v1/activity/tap", "", true)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp handler.TapResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, i, resp.TapCount)
	}

	rec := serve(t, router, http.MethodGet, "/api/v1/activity/tap", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"tap_count":3}`, rec.Body.String())
}

func TestRouter_ChallengeIsStableWithinDay(t *testing.T) {
	router := newTestRouter(t)

	first := serve(t, router, http.MethodGet, "/api/v1/challenge", "", true)
	second := serve(t, router, http.MethodGet, "/api/v1/challenge", "", true)
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
	assert.Contains(t, first.Body.String(), `"id":"daily_2026-03-14"`)
}

func TestRouter_ValidationError(t *testing.T) {
	router := newTestRouter(t)

	rec := serve(t, router, http.MethodPost, "/api/v1/subscription/tier", `{"tier":"Platinum"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	rec := serve(t, router, http.MethodGet, "/api/v1/nope", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
