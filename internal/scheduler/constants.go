package scheduler

// Log messages
const (
	LogMsgJobScheduled    = "Job scheduled"
	LogMsgJobSkipped      = "Scheduled job skipped, worker queue unavailable"
	LogMsgInvalidInterval = "Job not scheduled, interval must be positive"
)
