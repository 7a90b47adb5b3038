package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaValidator_ChallengePool(t *testing.T) {
	validator := NewSchemaValidator()

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{
			name: "valid pool",
			data: `{"version": "1.0", "templates": [
				{"title": "Tap Master", "description": "Reach 25 taps", "target_value": 25, "reward_points": 10}
			]}`,
		},
		{
			name:     "empty pool",
			data:     `{"templates": []}`,
			errorMsg: "minItems",
		},
		{
			name:     "missing templates",
			data:     `{"version": "1.0"}`,
			errorMsg: "required",
		},
		{
			name: "zero target",
			data: `{"templates": [
				{"title": "T", "description": "D", "target_value": 0, "reward_points": 1}
			]}`,
			errorMsg: "/templates/0/target_value",
		},
		{
			name: "string reward",
			data: `{"templates": [
				{"title": "T", "description": "D", "target_value": 1, "reward_points": "ten"}
			]}`,
			errorMsg: "reward_points",
		},
		{
			name: "unknown field",
			data: `{"templates": [
				{"title": "T", "description": "D", "target_value": 1, "reward_points": 1, "bonus": 2}
			]}`,
			errorMsg: "additionalProperties",
		},
		{
			name:     "invalid JSON",
			data:     `{"templates": }`,
			errorMsg: "parse JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateBytes([]byte(tt.data), SchemaChallengePool)

			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	validator := NewSchemaValidator()
	path := filepath.Join(t.TempDir(), "pool.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"templates": [
		{"title": "T", "description": "D", "target_value": 3, "reward_points": 5}
	]}`), 0o644))

	assert.NoError(t, validator.ValidateFile(path, SchemaChallengePool))

	err := validator.ValidateFile(filepath.Join(t.TempDir(), "missing.json"), SchemaChallengePool)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read data file")
}

func TestSchemaValidator_UnknownSchema(t *testing.T) {
	err := NewSchemaValidator().ValidateBytes([]byte(`{}`), "nonexistent.schema.json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}
