package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds runtime configuration loaded from environment variables.
// DatabaseURL is optional: empty selects the in-memory store.
type Config struct {
	DatabaseURL        string
	MigrationsDir      string
	CorsOrigins        []string
	StatsSampleSeconds int
	HealthDiskPath     string
	SeedDemoData       bool
}

func Load() Config {
	return Config{
		DatabaseURL:        strings.TrimSpace(os.Getenv("DATABASE_URL")),
		MigrationsDir:      envOr("MIGRATIONS_DIR", "migrations"),
		CorsOrigins:        parseCSV(envOr("CORS_ORIGINS", "")),
		StatsSampleSeconds: envOrInt("STATS_SAMPLE_INTERVAL", 15),
		HealthDiskPath:     envOr("HEALTH_DISK_PATH", "/"),
		SeedDemoData:       envOrBool("SEED_DEMO_DATA", false),
	}
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		value := strings.TrimSpace(part)
		if value != "" {
			items = append(items, value)
		}
	}
	return items
}
