package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
	ErrMsgInvalidTimeParam      = "Invalid %s parameter, expected RFC3339"
	ErrMsgUnauthorized          = "Unauthorized"
	ErrMsgPhotoTooLarge         = "Photo is too large"
	ErrMsgInvalidPhoto          = "Photo must be base64 encoded"
	ErrMsgNoPhoto               = "No profile photo"
	ErrMsgTrialNotStarted       = "Trial could not be started"
	ErrMsgExportFailed          = "Failed to export analytics"
	ErrMsgEventLogUnavailable   = "Event log is not enabled for this store backend"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError       = "Something went wrong"
	ErrMsgUnknownError             = "Unknown error"
	ErrMsgInvalidRequestError      = "Invalid request. Please check your inputs."
	ErrMsgAchievementNotFoundError = "Achievement not found"
	ErrMsgFeatureNotFoundError     = "Feature not found"
	ErrMsgTopicNotFoundError       = "Topic not found"
	ErrMsgTopicExistsError         = "Topic already exists"
	ErrMsgInvalidCategoryError     = "Invalid achievement category"
	ErrMsgInvalidTierError         = "Invalid subscription tier"
	ErrMsgInvalidPurchaseError     = "Invalid purchase item"
	ErrMsgTrialUnavailableError    = "Trials are only available on the Free tier"
	ErrMsgInvalidRatingError       = "Rating must be between 1 and 5"
	ErrMsgInvalidPreferencesError  = "Invalid preferences"
)

// Success messages for API responses
const (
	MsgTapsReset          = "Tap count reset"
	MsgPhotoRemoved       = "Profile photo removed"
	MsgPhotoSaved         = "Profile photo saved"
	MsgContentShared      = "Content shared"
	MsgScreenRecorded     = "Screen view recorded"
	MsgEventRecorded      = "Event recorded"
	MsgEventsCleared      = "Analytics events cleared"
	MsgPurchaseStarted    = "Purchase started"
	MsgTierUpdated        = "Subscription tier updated"
	MsgUserPropertySet    = "User property set"
	MsgNetworkUpdated     = "Network simulation updated"
	MsgTopicViewed        = "Topic viewed"
	MsgTopicRated         = "Topic rated"
	MsgPreferencesUpdated = "Preferences updated"
)

// Log messages
const (
	LogMsgEncodeFailed = "Failed to encode JSON response"
	LogMsgWriteFailed  = "Failed to write response buffer"
	LogMsgReadyFailed  = "Readiness check failed"
)
