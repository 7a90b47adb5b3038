package config

import (
	"github.com/osse101/Milestone_Go/internal/store"
)

// Example values shipped in .env templates
const (
	exampleAPIKey     = "generate_with_openssl_rand_hex_32"
	exampleDBPassword = "change_this_secure_password"
	defaultDBPassword = "postgres"
	productionEnv     = "prod"
)

// Warnings reports settings that are valid but probably not what a deployment wants
func (c *Config) Warnings() []string {
	var warnings []string

	if c.APIKey == exampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if c.StoreBackend == store.BackendPostgres {
		switch c.DBPassword {
		case exampleDBPassword:
			warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
		case defaultDBPassword:
			warnings = append(warnings, "DB_PASSWORD is the built-in default - set a real password for postgres")
		}
	}

	if c.Environment == productionEnv && c.StoreBackend == store.BackendMemory {
		warnings = append(warnings, "STORE_BACKEND is memory in prod - progress is lost on restart")
	}

	if c.PurchaseSuccessRate == 0 {
		warnings = append(warnings, "PURCHASE_SUCCESS_RATE is 0 - every simulated purchase will fail")
	}

	return warnings
}
