package network

import "time"

// Simulation defaults
const (
	DefaultLatency     = 500 * time.Millisecond
	DefaultSuccessRate = 0.8
)

// Failure messages
const (
	MessageTimeout   = "Request timeout"
	MessageNoNetwork = "No internet connection"
)

// Analytics property and error context keys
const (
	PropAvailable = "available"
	PropEndpoint  = "endpoint"
)

// Log messages
const (
	LogMsgAvailabilityChanged = "Simulated network availability changed"
	LogMsgLatencyChanged      = "Simulated latency changed"
	LogMsgCallStarted         = "Simulated API call started"
	LogMsgCallFailed          = "Simulated API call failed"
	LogMsgCallSucceeded       = "Simulated API call succeeded"
	LogMsgShuttingDown        = "Network simulator shutting down, waiting for calls..."
)
