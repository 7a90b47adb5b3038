package analytics

// MaxEvents is the size of the in-memory event ring
const MaxEvents = 100

// UserIDPrefix prefixes generated user ids
const UserIDPrefix = "user_"

// userIDSuffixLength is how many uuid characters follow the prefix
const userIDSuffixLength = 8

// Property keys used by the typed track helpers
const (
	PropScreenName     = "screen_name"
	PropPreviousScreen = "previous_screen"
	PropSessionStart   = "session_start"
	PropProperty       = "property"
	PropValue          = "value"
	PropTarget         = "target"

	PropItemID       = "item_id"
	PropItemTitle    = "item_title"
	PropPrice        = "price"
	PropSuccess      = "success"
	PropPurchaseType = "purchase_type"

	PropAchievementID    = "achievement_id"
	PropAchievementTitle = "achievement_title"
	PropCategory         = "category"
	PropProgress         = "progress"
	PropRequirement      = "requirement"

	PropErrorID       = "error_id"
	PropErrorType     = "error_type"
	PropErrorMessage  = "error_message"
	PropContextPrefix = "context_"
)

// Log messages
const (
	LogMsgEventTracked       = "Analytics event"
	LogMsgPublishFailed      = "Failed to publish analytics event"
	LogMsgPersistFailed      = "Failed to persist analytics state"
	LogMsgUserIDGenerated    = "Generated analytics user id"
	LogMsgSessionStarted     = "Analytics session started"
	LogMsgUserPropertiesLoad = "Failed to load user properties"
)
