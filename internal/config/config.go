package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"personnel-portal/internal/core"
)

// Config holds everything the server reads from the environment. Entrypoints
// call godotenv.Load first, so a local .env file works too.
type Config struct {
	DatabaseURL string
	Port        string
	SessionTTL  time.Duration
	Accounts    []core.SeedIdentity
}

// Load reads configuration from environment variables.
//
// Seeded accounts are deliberately external: PORTAL_ADMIN_USERNAME plus
// either PORTAL_ADMIN_PASSWORD_HASH (bcrypt) or PORTAL_ADMIN_PASSWORD, and
// the PORTAL_USER_* equivalents. There are no credentials in the binary.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Port:        getenvDefault("SERVER_PORT", "8080"),
		SessionTTL:  time.Hour,
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}

	if v := os.Getenv("SESSION_TTL_MINUTES"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil || minutes <= 0 {
			return nil, fmt.Errorf("invalid SESSION_TTL_MINUTES %q", v)
		}
		cfg.SessionTTL = time.Duration(minutes) * time.Minute
	}

	admin, err := seedFromEnv("PORTAL_ADMIN", core.RoleAdmin)
	if err != nil {
		return nil, err
	}
	user, err := seedFromEnv("PORTAL_USER", core.RoleUser)
	if err != nil {
		return nil, err
	}
	cfg.Accounts = []core.SeedIdentity{*admin, *user}
	return cfg, nil
}

func seedFromEnv(prefix string, role core.Role) (*core.SeedIdentity, error) {
	username := os.Getenv(prefix + "_USERNAME")
	if username == "" {
		return nil, fmt.Errorf("%s_USERNAME environment variable not set", prefix)
	}
	hash := os.Getenv(prefix + "_PASSWORD_HASH")
	password := os.Getenv(prefix + "_PASSWORD")
	if hash == "" && password == "" {
		return nil, fmt.Errorf("neither %s_PASSWORD_HASH nor %s_PASSWORD is set", prefix, prefix)
	}
	return &core.SeedIdentity{
		Username:     username,
		Password:     password,
		PasswordHash: hash,
		Role:         role,
	}, nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
