package challenge

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/Milestone_Go/internal/domain"
	"github.com/osse101/Milestone_Go/internal/utils"
	"github.com/osse101/Milestone_Go/internal/validation"
)

//go:embed default_pool.json
var defaultPoolJSON []byte

var poolSchema = validation.NewSchemaValidator()

// DefaultPool returns the built-in template pool
func DefaultPool() []domain.ChallengeTemplate {
	pool, err := parsePool(defaultPoolJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded challenge pool is invalid: %v", err))
	}
	return pool
}

// LoadPool reads a template pool from path. An empty path returns the default pool.
// The file is checked against the pool JSON schema before it is decoded.
func LoadPool(path string) ([]domain.ChallengeTemplate, error) {
	if path == "" {
		return DefaultPool(), nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to load challenge pool: %w", err)
	}
	if err := poolSchema.ValidateFile(path, validation.SchemaChallengePool); err != nil {
		return nil, fmt.Errorf("%w: challenge pool %s: %v", domain.ErrInvalidInput, path, err)
	}
	var cfg domain.ChallengePoolConfig
	if err := utils.LoadJSON(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load challenge pool: %w", err)
	}
	return validatePool(cfg)
}

func parsePool(data []byte) ([]domain.ChallengeTemplate, error) {
	var cfg domain.ChallengePoolConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse challenge pool: %w", err)
	}
	return validatePool(cfg)
}

func validatePool(cfg domain.ChallengePoolConfig) ([]domain.ChallengeTemplate, error) {
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: challenge pool: %v", domain.ErrInvalidInput, err)
	}
	return cfg.Templates, nil
}
