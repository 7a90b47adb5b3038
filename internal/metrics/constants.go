package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameAnalyticsEvents       = "analytics_events_total"
	MetricNameAchievementsUnlocked  = "achievements_unlocked_total"
	MetricNameChallengesCompleted   = "daily_challenges_completed_total"
	MetricNameChallengeRewardPoints = "daily_challenge_reward_points_total"
	MetricNameSubscriptionChanges   = "subscription_changes_total"
	MetricNamePurchases             = "purchases_total"
	MetricNameAppErrors             = "app_errors_total"
	MetricNameNotificationsSent     = "notifications_sent_total"
	MetricNameRejectedRequests      = "http_rejected_requests_total"
	MetricNameSSEEventsDropped      = "sse_events_dropped_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextAnalyticsEvents       = "Total number of analytics events recorded"
	HelpTextAchievementsUnlocked  = "Total number of achievements unlocked"
	HelpTextChallengesCompleted   = "Total number of daily challenges completed"
	HelpTextChallengeRewardPoints = "Total reward points earned from daily challenges"
	HelpTextSubscriptionChanges   = "Total number of subscription tier changes"
	HelpTextPurchases             = "Total number of successful purchases"
	HelpTextAppErrors             = "Total number of application errors reported"
	HelpTextNotificationsSent     = "Total number of notifications sent"
	HelpTextRejectedRequests      = "Total number of HTTP requests rejected by auth or rate limiting"
	HelpTextSSEEventsDropped      = "Total number of SSE events dropped because a queue was full"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelName      = "name"
	LabelCategory  = "category"
	LabelTier      = "tier"
	LabelErrorType = "error_type"
	LabelKind      = "kind"
	LabelReason    = "reason"
)

// UnmatchedRoute labels requests that no route matched
const UnmatchedRoute = "unmatched"

// ============================================================================
// Event Payload Field Names
// ============================================================================

// Analytics property keys read from analytics.tracked payloads
const (
	PayloadFieldAction        = "action"
	PayloadFieldCategory      = "category"
	PayloadFieldNewTier       = "new_tier"
	PayloadFieldRewardPoints  = "reward_points"
	PayloadFieldPurchaseType  = "purchase_type"
	PayloadFieldErrorType     = "error_type"
	ActionDailyChallengeDone  = "daily_challenge_completed"
	ActionSubscriptionChanged = "subscription_changed"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadUndecodable = "Event payload could not be decoded"
	LogMsgMetricsRecorded    = "Metrics recorded for event"
)
