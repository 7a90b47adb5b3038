package activity

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/osse101/Milestone_Go/internal/domain"
	"github.com/osse101/Milestone_Go/internal/logger"
	"github.com/osse101/Milestone_Go/internal/store"
)

// Profile returns the stored profile fields
func (s *Service) Profile(ctx context.Context) (domain.Profile, error) {
	var p domain.Profile
	var err error
	if p.Name, err = store.GetString(ctx, s.store, domain.KeyUserName, ""); err != nil {
		return domain.Profile{}, err
	}
	if p.Email, err = store.GetString(ctx, s.store, domain.KeyUserEmail, ""); err != nil {
		return domain.Profile{}, err
	}
	if p.Location, err = store.GetString(ctx, s.store, domain.KeyUserLocation, ""); err != nil {
		return domain.Profile{}, err
	}
	photo, err := store.GetString(ctx, s.store, domain.KeyProfileImage, "")
	if err != nil {
		return domain.Profile{}, err
	}
	p.HasPhoto = photo != ""
	return p, nil
}

// UpdateProfile writes the non-empty fields and leaves the others untouched
func (s *Service) UpdateProfile(ctx context.Context, name, email, location string) (domain.Profile, error) {
	fields := []struct {
		key, label, value string
	}{
		{domain.KeyUserName, "name", strings.TrimSpace(name)},
		{domain.KeyUserEmail, "email", strings.TrimSpace(email)},
		{domain.KeyUserLocation, "location", strings.TrimSpace(location)},
	}

	var updated []string
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if err := s.store.Set(ctx, f.key, f.value); err != nil {
			return domain.Profile{}, fmt.Errorf("%w: set %s: %v", domain.ErrStoreFailure, f.key, err)
		}
		updated = append(updated, f.label)
	}
	if len(updated) == 0 {
		return domain.Profile{}, fmt.Errorf("%w: no profile fields given", domain.ErrInvalidInput)
	}

	logger.FromContext(ctx).Info(LogMsgProfileUpdated, "fields", updated)
	s.track(ctx, domain.EventProfileUpdated, domain.Properties{
		PropFields: domain.StringValue(strings.Join(updated, ",")),
	})
	s.progress(ctx, domain.ChallengeKeywordSocial, 1)
	return s.Profile(ctx)
}

// SetProfilePhoto stores the raw image bytes base64 encoded
func (s *Service) SetProfilePhoto(ctx context.Context, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: photo is empty", domain.ErrInvalidInput)
	}
	if err := s.store.Set(ctx, domain.KeyProfileImage, base64.StdEncoding.EncodeToString(data)); err != nil {
		return fmt.Errorf("%w: set %s: %v", domain.ErrStoreFailure, domain.KeyProfileImage, err)
	}
	s.track(ctx, domain.EventProfileUpdated, domain.Properties{
		PropField:       domain.StringValue("photo"),
		PropPhotoAction: domain.StringValue(PhotoActionSet),
	})
	s.progress(ctx, "", 0)
	return nil
}

// ProfilePhoto returns the stored photo bytes, or false when none is set
func (s *Service) ProfilePhoto(ctx context.Context) ([]byte, bool, error) {
	encoded, err := store.GetString(ctx, s.store, domain.KeyProfileImage, "")
	if err != nil || encoded == "" {
		return nil, false, err
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s", domain.ErrCorruptValue, domain.KeyProfileImage)
	}
	return data, true, nil
}

// RemoveProfilePhoto deletes the stored photo. The photo achievement stays unlocked.
func (s *Service) RemoveProfilePhoto(ctx context.Context) error {
	if err := s.store.Delete(ctx, domain.KeyProfileImage); err != nil {
		return fmt.Errorf("%w: delete %s: %v", domain.ErrStoreFailure, domain.KeyProfileImage, err)
	}
	s.track(ctx, domain.EventProfileUpdated, domain.Properties{
		PropField:       domain.StringValue("photo"),
		PropPhotoAction: domain.StringValue(PhotoActionRemoved),
	})
	return nil
}
