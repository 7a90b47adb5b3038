package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/osse101/Milestone_Go/internal/domain"
)

// GetString returns the stored string, or def when the key is absent
func GetString(ctx context.Context, s Store, key, def string) (string, error) {
	v, ok, err := s.Get(ctx, key)
	if err != nil {
		return def, fmt.Errorf("%w: get %s: %v", domain.ErrStoreFailure, key, err)
	}
	if !ok {
		return def, nil
	}
	return v, nil
}

// GetInt returns the stored integer, or 0 when the key is absent
func GetInt(ctx context.Context, s Store, key string) (int, error) {
	v, ok, err := s.Get(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("%w: get %s: %v", domain.ErrStoreFailure, key, err)
	}
	if !ok || v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", domain.ErrCorruptValue, key, v)
	}
	return n, nil
}

// SetInt stores an integer counter
func SetInt(ctx context.Context, s Store, key string, n int) error {
	if err := s.Set(ctx, key, strconv.Itoa(n)); err != nil {
		return fmt.Errorf("%w: set %s: %v", domain.ErrStoreFailure, key, err)
	}
	return nil
}

// Incr adds delta to an integer counter and returns the new value.
// A corrupt counter is treated as zero.
func Incr(ctx context.Context, s Store, key string, delta int) (int, error) {
	n, err := GetInt(ctx, s, key)
	if err != nil && !errors.Is(err, domain.ErrCorruptValue) {
		return 0, err
	}
	n += delta
	if err := SetInt(ctx, s, key, n); err != nil {
		return 0, err
	}
	return n, nil
}

// GetJSON decodes the stored JSON record into target.
// It returns false when the key is absent.
func GetJSON(ctx context.Context, s Store, key string, target interface{}) (bool, error) {
	v, ok, err := s.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("%w: get %s: %v", domain.ErrStoreFailure, key, err)
	}
	if !ok || v == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(v), target); err != nil {
		return false, fmt.Errorf("%w: %s: %v", domain.ErrCorruptValue, key, err)
	}
	return true, nil
}

// SetJSON encodes value as JSON and stores it
func SetJSON(ctx context.Context, s Store, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", domain.ErrInvalidInput, key, err)
	}
	if err := s.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("%w: set %s: %v", domain.ErrStoreFailure, key, err)
	}
	return nil
}
