package analytics

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/Milestone_Go/internal/clock"
	"github.com/osse101/Milestone_Go/internal/domain"
	"github.com/osse101/Milestone_Go/internal/event"
	"github.com/osse101/Milestone_Go/internal/logger"
	"github.com/osse101/Milestone_Go/internal/store"
)

// Tracker is the event sink used by every other service
type Tracker interface {
	TrackEvent(ctx context.Context, name domain.EventType, props domain.Properties)
	TrackScreen(ctx context.Context, screen string, props domain.Properties)
	TrackPurchase(ctx context.Context, item domain.PurchaseItem, success bool)
	TrackAchievement(ctx context.Context, a domain.Achievement)
	TrackError(ctx context.Context, appErr *domain.AppError)
	TrackEngagement(ctx context.Context, action, target string, value *domain.Value)
}

// Summary is a per-session overview of recorded events
type Summary struct {
	SessionID       string         `json:"session_id"`
	UserID          string         `json:"user_id"`
	SessionDuration float64        `json:"session_duration"`
	TotalEvents     int            `json:"total_events"`
	Counts          map[string]int `json:"counts"`
}

// Manager records analytics events for the current session.
// It keeps the most recent MaxEvents in memory and publishes every event to the bus.
type Manager struct {
	store     store.Store
	publisher event.Publisher
	clock     clock.Clock

	mu           sync.Mutex
	sessionID    string
	sessionStart time.Time
	userID       string
	events       []domain.AnalyticsEvent
}

// NewManager creates a Manager, loading or generating the persisted user id
func NewManager(ctx context.Context, st store.Store, pub event.Publisher, clk clock.Clock) *Manager {
	m := &Manager{
		store:     st,
		publisher: pub,
		clock:     clk,
		events:    make([]domain.AnalyticsEvent, 0, MaxEvents),
	}
	m.sessionID = uuid.NewString()
	m.sessionStart = clk.Now()
	m.userID = m.loadUserID(ctx)
	return m
}

func (m *Manager) loadUserID(ctx context.Context) string {
	log := logger.FromContext(ctx)
	id, err := store.GetString(ctx, m.store, domain.KeyUserID, "")
	if err != nil {
		log.Warn(LogMsgPersistFailed, "key", domain.KeyUserID, "error", err)
	}
	if id != "" {
		return id
	}

	id = UserIDPrefix + uuid.NewString()[:userIDSuffixLength]
	if err := m.store.Set(ctx, domain.KeyUserID, id); err != nil {
		log.Warn(LogMsgPersistFailed, "key", domain.KeyUserID, "error", err)
	}
	log.Info(LogMsgUserIDGenerated, "user_id", id)
	return id
}

// StartSession records the session start event
func (m *Manager) StartSession(ctx context.Context) {
	m.mu.Lock()
	sessionID := m.sessionID
	m.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgSessionStarted, "session_id", sessionID)
	m.TrackEvent(ctx, domain.EventScreenView, domain.Properties{
		domain.PropSessionID: domain.StringValue(sessionID),
		PropSessionStart:     domain.BoolValue(true),
	})
}

// SessionID returns the id of the current session
func (m *Manager) SessionID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessionID
}

// UserID returns the persisted analytics user id
func (m *Manager) UserID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.userID
}

// TrackEvent enriches props with session context, records the event and publishes it.
// Delivery failures are logged and otherwise ignored.
func (m *Manager) TrackEvent(ctx context.Context, name domain.EventType, props domain.Properties) {
	now := m.clock.Now()

	m.mu.Lock()
	enriched := props.Clone()
	enriched[domain.PropTimestamp] = domain.StringValue(now.UTC().Format(time.RFC3339))
	enriched[domain.PropUserID] = domain.StringValue(m.userID)
	enriched[domain.PropSessionID] = domain.StringValue(m.sessionID)
	enriched[domain.PropSessionDuration] = domain.FloatValue(now.Sub(m.sessionStart).Seconds())

	evt := domain.AnalyticsEvent{
		Name:       name,
		Properties: enriched,
		Timestamp:  now,
		UserID:     m.userID,
		SessionID:  m.sessionID,
	}
	m.events = append(m.events, evt)
	if len(m.events) > MaxEvents {
		m.events = append(m.events[:0:0], m.events[len(m.events)-MaxEvents:]...)
	}
	count := len(m.events)
	m.mu.Unlock()

	log := logger.FromContext(ctx)
	log.Info(LogMsgEventTracked, "event", name, "properties", len(enriched), "session_id", evt.SessionID)

	if err := store.SetInt(ctx, m.store, domain.KeyTotalEvents, count); err != nil {
		log.Warn(LogMsgPersistFailed, "key", domain.KeyTotalEvents, "error", err)
	}

	if m.publisher != nil {
		if err := m.publisher.Publish(ctx, event.NewAnalyticsEvent(evt)); err != nil {
			log.Debug(LogMsgPublishFailed, "event", name, "error", err)
		}
	}
}

// TrackScreen records a screen view and remembers it as the last screen
func (m *Manager) TrackScreen(ctx context.Context, screen string, props domain.Properties) {
	previous, err := store.GetString(ctx, m.store, domain.KeyLastScreen, "")
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgPersistFailed, "key", domain.KeyLastScreen, "error", err)
	}

	p := props.Clone()
	p[PropScreenName] = domain.StringValue(screen)
	if previous != "" {
		p[PropPreviousScreen] = domain.StringValue(previous)
	}

	if err := m.store.Set(ctx, domain.KeyLastScreen, screen); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPersistFailed, "key", domain.KeyLastScreen, "error", err)
	}
	m.TrackEvent(ctx, domain.EventScreenView, p)
}

// UserProperties returns the persisted user property map
func (m *Manager) UserProperties(ctx context.Context) domain.Properties {
	props := domain.Properties{}
	if _, err := store.GetJSON(ctx, m.store, domain.KeyUserProperties, &props); err != nil {
		logger.FromContext(ctx).Warn(LogMsgUserPropertiesLoad, "error", err)
		return domain.Properties{}
	}
	return props
}

// UserProperty returns a single user property
func (m *Manager) UserProperty(ctx context.Context, key string) (domain.Value, bool) {
	v, ok := m.UserProperties(ctx)[key]
	return v, ok
}

// SetUserProperty persists a user property and records the change
func (m *Manager) SetUserProperty(ctx context.Context, key string, value domain.Value) {
	m.mu.Lock()
	props := m.UserProperties(ctx)
	props[key] = value
	err := store.SetJSON(ctx, m.store, domain.KeyUserProperties, props)
	m.mu.Unlock()

	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgPersistFailed, "key", domain.KeyUserProperties, "error", err)
	}

	m.TrackEvent(ctx, domain.EventFeatureUsed, domain.Properties{
		domain.PropAction: domain.StringValue(domain.ActionUserPropertySet),
		PropProperty:      domain.StringValue(key),
		PropValue:         domain.StringValue(value.String()),
	})
}

// TrackPurchase records purchase_completed on success and purchase_initiated otherwise
func (m *Manager) TrackPurchase(ctx context.Context, item domain.PurchaseItem, success bool) {
	name := domain.EventPurchaseInitiated
	if success {
		name = domain.EventPurchaseCompleted
	}
	m.TrackEvent(ctx, name, domain.Properties{
		PropItemID:       domain.StringValue(item.ID),
		PropItemTitle:    domain.StringValue(item.Title),
		PropPrice:        domain.StringValue(item.Price),
		PropSuccess:      domain.BoolValue(success),
		PropPurchaseType: domain.StringValue(string(item.Type)),
	})
}

func (m *Manager) TrackAchievement(ctx context.Context, a domain.Achievement) {
	m.TrackEvent(ctx, domain.EventAchievementUnlocked, domain.Properties{
		PropAchievementID:    domain.StringValue(a.ID),
		PropAchievementTitle: domain.StringValue(a.Title),
		PropCategory:         domain.StringValue(string(a.Category)),
		PropProgress:         domain.IntValue(a.Progress),
		PropRequirement:      domain.IntValue(a.Requirement),
	})
}

// TrackError records an application error. Context entries are flattened to context_<key>.
func (m *Manager) TrackError(ctx context.Context, appErr *domain.AppError) {
	if appErr == nil {
		return
	}
	props := domain.Properties{
		PropErrorID:      domain.StringValue(appErr.ID),
		PropErrorType:    domain.StringValue(string(appErr.Type)),
		PropErrorMessage: domain.StringValue(appErr.Message),
	}
	for k, v := range appErr.Context {
		props[PropContextPrefix+k] = domain.StringValue(v)
	}
	m.TrackEvent(ctx, domain.EventErrorOccurred, props)
}

// TrackEngagement records a feature_used event with an action and target
func (m *Manager) TrackEngagement(ctx context.Context, action, target string, value *domain.Value) {
	props := domain.Properties{
		domain.PropAction: domain.StringValue(action),
		PropTarget:        domain.StringValue(target),
	}
	if value != nil {
		props[PropValue] = *value
	}
	m.TrackEvent(ctx, domain.EventFeatureUsed, props)
}

// Events returns a copy of the recorded events, oldest first
func (m *Manager) Events() []domain.AnalyticsEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.AnalyticsEvent, len(m.events))
	for i, e := range m.events {
		e.Properties = e.Properties.Clone()
		out[i] = e
	}
	return out
}

// Summary counts recorded events by name
func (m *Manager) Summary() Summary {
	m.mu.Lock()
	defer m.mu.Unlock()

	counts := make(map[string]int)
	for _, e := range m.events {
		counts[string(e.Name)]++
	}
	return Summary{
		SessionID:       m.sessionID,
		UserID:          m.userID,
		SessionDuration: m.clock.Since(m.sessionStart).Seconds(),
		TotalEvents:     len(m.events),
		Counts:          counts,
	}
}

// Export renders the recorded events as a pretty-printed JSON array.
// Each entry carries name, timestamp, user_id and session_id merged with its properties.
func (m *Manager) Export() ([]byte, error) {
	events := m.Events()
	out := make([]map[string]interface{}, 0, len(events))
	for _, e := range events {
		entry := map[string]interface{}{
			"name":               string(e.Name),
			domain.PropTimestamp: e.Timestamp.UTC().Format(time.RFC3339),
			domain.PropUserID:    e.UserID,
			domain.PropSessionID: e.SessionID,
		}
		for k, v := range e.Properties {
			entry[k] = v.Interface()
		}
		out = append(out, entry)
	}
	return json.MarshalIndent(out, "", "  ")
}

// Clear drops the recorded events and records that they were cleared
func (m *Manager) Clear(ctx context.Context) {
	m.mu.Lock()
	m.events = m.events[:0:0]
	m.mu.Unlock()

	m.TrackEvent(ctx, domain.EventFeatureUsed, domain.Properties{
		domain.PropAction: domain.StringValue(domain.ActionEventsCleared),
	})
}
