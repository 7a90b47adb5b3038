package activity

import (
	"context"
	"fmt"

	"github.com/osse101/Milestone_Go/internal/domain"
	"github.com/osse101/Milestone_Go/internal/logger"
	"github.com/osse101/Milestone_Go/internal/store"
)

// Preferences returns the stored preferences or the first-run defaults
func (s *Service) Preferences(ctx context.Context) domain.UserPreferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preferencesLocked(ctx)
}

func (s *Service) preferencesLocked(ctx context.Context) domain.UserPreferences {
	prefs := domain.DefaultPreferences()
	if _, err := store.GetJSON(ctx, s.store, domain.KeyUserPreferences, &prefs); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPrefsLoadFailed, "error", err)
		return domain.DefaultPreferences()
	}
	return prefs
}

// UpdatePreferences replaces the preferences. Each changed setting emits setting_changed
// and counts once towards the daily challenge.
func (s *Service) UpdatePreferences(ctx context.Context, prefs domain.UserPreferences) ([]domain.PreferenceChange, error) {
	if err := s.validate.Struct(prefs); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPreferences, err)
	}

	s.mu.Lock()
	changes := prefs.Changes(s.preferencesLocked(ctx))
	var err error
	if len(changes) > 0 {
		err = store.SetJSON(ctx, s.store, domain.KeyUserPreferences, prefs)
	}
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		return changes, nil
	}

	logger.FromContext(ctx).Info(LogMsgPreferencesChanged, "changed", len(changes))
	for _, c := range changes {
		s.track(ctx, domain.EventSettingChanged, domain.Properties{
			PropSetting: domain.StringValue(c.Setting),
			PropValue:   c.Value,
		})
	}
	s.progress(ctx, domain.ChallengeKeywordSettings, len(changes))
	return changes, nil
}
