package activity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Milestone_Go/internal/domain"
)

func TestPreferences_Defaults(t *testing.T) {
	f := newFixture(t, pickTap)
	assert.Equal(t, domain.DefaultPreferences(), f.svc.Preferences(context.Background()))
}

func TestUpdatePreferences(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, pickSettings)

	prefs := domain.DefaultPreferences()
	prefs.DarkModePreference = domain.DarkModeDark
	prefs.SoundEffectsEnabled = false

	changes, err := f.svc.UpdatePreferences(ctx, prefs)
	require.NoError(t, err)
	require.Len(t, changes, 2)
	assert.Equal(t, "dark_mode_preference", changes[0].Setting)
	assert.Equal(t, "sound_effects_enabled", changes[1].Setting)

	assert.Equal(t, prefs, f.svc.Preferences(ctx))
	events := f.analytics.named(domain.EventSettingChanged)
	require.Len(t, events, 2)
	assert.Equal(t, "dark", events[0].props[PropValue].String())

	assert.True(t, f.challenges.GetCurrent(ctx).IsCompleted, "Settings Explorer needs 2 changes")

	changes, err = f.svc.UpdatePreferences(ctx, prefs)
	require.NoError(t, err)
	assert.Empty(t, changes)
	assert.Len(t, f.analytics.named(domain.EventSettingChanged), 2)
}

func TestUpdatePreferences_Invalid(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, pickTap)

	prefs := domain.DefaultPreferences()
	prefs.FontSize = "Huge"
	_, err := f.svc.UpdatePreferences(ctx, prefs)
	assert.ErrorIs(t, err, domain.ErrInvalidPreferences)
	assert.Equal(t, domain.DefaultPreferences(), f.svc.Preferences(ctx))
}
