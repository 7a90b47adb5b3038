package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for the worker pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgWorkerQueueFull = "Worker queue full, job dropped"
)

// ============================================================================
// Log Messages - Challenge Rollover Worker
// ============================================================================

// Log messages for challenge rollover operations
const (
	LogMsgRolloverStandby       = "Challenge rollover standby"
	LogMsgRolloverApproach      = "Challenge rollover scheduled"
	LogMsgRolloverStarting      = "Challenge rollover starting"
	LogMsgRolloverCompleted     = "Challenge rollover completed"
	LogMsgRolloverManualTrigger = "Challenge rollover manually triggered"
	LogMsgRolloverShuttingDown  = "Shutting down challenge rollover worker"
	LogMsgRolloverShutdownDone  = "Challenge rollover worker shutdown complete"
	LogMsgRolloverShutdownSlow  = "Challenge rollover worker shutdown timeout"
)

// Rollover scheduling windows
const (
	// RolloverStandbyThreshold is the distance from midnight beyond which the worker only wakes up to re-plan
	RolloverStandbyThreshold = time.Hour
	// RolloverStandbyLead is how long before midnight the standby timer wakes the worker
	RolloverStandbyLead = 45 * time.Minute
	// RolloverJitterTolerance is how early a timer may fire before it is treated as premature
	RolloverJitterTolerance = 10 * time.Second
)
