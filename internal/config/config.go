package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything read from the environment at startup. The
// store, bucket, and mail transport are process-wide dependencies; a
// missing credential must stop the process here, not surface later as a
// failed round trip.
type Config struct {
	AppPort       string
	AppBaseURL    string
	DatabaseDSN   string
	StorageBucket string

	// GoogleCredentials is optional; when empty the storage client
	// falls back to application-default credentials.
	GoogleCredentials string
	ResendAPIKey      string
	MailFrom          string
}

// Load reads configuration from the environment (and an optional .env
// file). It returns a single error naming every required variable that
// is absent.
func Load() (*Config, error) {
	// Best effort: a missing .env just means the variables come from
	// the real environment.
	_ = godotenv.Load()

	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("APP_BASE_URL", "http://localhost:3000")
	viper.SetDefault("MAIL_FROM", "Sandbox <onboarding@resend.dev>")
	viper.AutomaticEnv()

	cfg := &Config{
		AppPort:           viper.GetString("APP_PORT"),
		AppBaseURL:        viper.GetString("APP_BASE_URL"),
		DatabaseDSN:       viper.GetString("DATABASE_DSN"),
		StorageBucket:     viper.GetString("STORAGE_BUCKET"),
		GoogleCredentials: viper.GetString("GOOGLE_APPLICATION_CREDENTIALS"),
		ResendAPIKey:      viper.GetString("RESEND_API_KEY"),
		MailFrom:          viper.GetString("MAIL_FROM"),
	}

	var missing []string
	if cfg.DatabaseDSN == "" {
		missing = append(missing, "DATABASE_DSN")
	}
	if cfg.StorageBucket == "" {
		missing = append(missing, "STORAGE_BUCKET")
	}
	if cfg.ResendAPIKey == "" {
		missing = append(missing, "RESEND_API_KEY")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}
