package domain

// DarkMode is the interface style preference
type DarkMode string

const (
	DarkModeSystem DarkMode = "system"
	DarkModeLight  DarkMode = "light"
	DarkModeDark   DarkMode = "dark"
)

// FontSize is the text size preference
type FontSize string

const (
	FontSizeSmall      FontSize = "Small"
	FontSizeMedium     FontSize = "Medium"
	FontSizeLarge      FontSize = "Large"
	FontSizeExtraLarge FontSize = "Extra Large"
)

// UserPreferences holds the settings screen toggles
type UserPreferences struct {
	NotificationsEnabled   bool     `json:"notifications_enabled"`
	MarketingEmailsEnabled bool     `json:"marketing_emails_enabled"`
	AnalyticsEnabled       bool     `json:"analytics_enabled"`
	CrashReportingEnabled  bool     `json:"crash_reporting_enabled"`
	AutoSyncEnabled        bool     `json:"auto_sync_enabled"`
	DarkModePreference     DarkMode `json:"dark_mode_preference" validate:"oneof=system light dark"`
	FontSize               FontSize `json:"font_size" validate:"oneof=Small Medium Large 'Extra Large'"`
	HapticFeedbackEnabled  bool     `json:"haptic_feedback_enabled"`
	SoundEffectsEnabled    bool     `json:"sound_effects_enabled"`
	DataUsageOptimized     bool     `json:"data_usage_optimized"`
}

// DefaultPreferences returns the first-run settings
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		NotificationsEnabled:  true,
		AnalyticsEnabled:      true,
		CrashReportingEnabled: true,
		AutoSyncEnabled:       true,
		DarkModePreference:    DarkModeSystem,
		FontSize:              FontSizeMedium,
		HapticFeedbackEnabled: true,
		SoundEffectsEnabled:   true,
	}
}

// PreferenceChange is one setting that differs between two preference sets
type PreferenceChange struct {
	Setting string `json:"setting"`
	Value   Value  `json:"value"`
}

// Changes lists the settings in p that differ from old, in a stable order
func (p UserPreferences) Changes(old UserPreferences) []PreferenceChange {
	var changes []PreferenceChange
	addBool := func(name string, before, after bool) {
		if before != after {
			changes = append(changes, PreferenceChange{Setting: name, Value: BoolValue(after)})
		}
	}
	addString := func(name, before, after string) {
		if before != after {
			changes = append(changes, PreferenceChange{Setting: name, Value: StringValue(after)})
		}
	}

	addBool("notifications_enabled", old.NotificationsEnabled, p.NotificationsEnabled)
	addBool("marketing_emails_enabled", old.MarketingEmailsEnabled, p.MarketingEmailsEnabled)
	addBool("analytics_enabled", old.AnalyticsEnabled, p.AnalyticsEnabled)
	addBool("crash_reporting_enabled", old.CrashReportingEnabled, p.CrashReportingEnabled)
	addBool("auto_sync_enabled", old.AutoSyncEnabled, p.AutoSyncEnabled)
	addString("dark_mode_preference", string(old.DarkModePreference), string(p.DarkModePreference))
	addString("font_size", string(old.FontSize), string(p.FontSize))
	addBool("haptic_feedback_enabled", old.HapticFeedbackEnabled, p.HapticFeedbackEnabled)
	addBool("sound_effects_enabled", old.SoundEffectsEnabled, p.SoundEffectsEnabled)
	addBool("data_usage_optimized", old.DataUsageOptimized, p.DataUsageOptimized)

	return changes
}
