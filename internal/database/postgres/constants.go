package postgres

// Error Messages
const (
	ErrMsgFailedToGetValue         = "failed to get value"
	ErrMsgFailedToSetValue         = "failed to set value"
	ErrMsgFailedToDeleteValue      = "failed to delete value"
	ErrMsgFailedToClearStore       = "failed to clear store"
	ErrMsgFailedToMarshalProps     = "failed to marshal properties"
	ErrMsgFailedToUnmarshalProps   = "failed to unmarshal properties"
	ErrMsgFailedToInsertEvent      = "failed to insert event"
	ErrMsgFailedToQueryEvents      = "failed to query events"
	ErrMsgFailedToCleanupEvents    = "failed to clean up events"
	ErrMsgFailedToOpenMigrationsDB = "failed to open database for migrations"
)
