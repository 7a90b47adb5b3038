package middleware

import "time"

// DefaultIdleTimeout is the longest gap between two requests that still counts as time spent
const DefaultIdleTimeout = 5 * time.Minute

// Log Messages
const (
	LogMsgEngagementRecorded = "Engagement time recorded"
	LogMsgSessionResumed     = "Session resumed after idle gap"
)
