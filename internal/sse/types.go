package sse

// NotificationPayload is the SSE payload for user-facing notifications
type NotificationPayload struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// AnalyticsPayload is the SSE payload mirrored from the analytics sink
type AnalyticsPayload struct {
	Name       string                 `json:"name"`
	SessionID  string                 `json:"session_id"`
	Properties map[string]interface{} `json:"properties"`
}
