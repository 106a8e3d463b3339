package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Event store backends. The backend is chosen once at startup; nothing
// re-branches per call.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	CORS       CORSConfig
	MarketData MarketDataConfig
	Scheduler  SchedulerConfig
	Secrets    SecretsConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds event-store configuration. Backend selects the
// sqlite-backed store or the in-memory demo store.
type DatabaseConfig struct {
	Backend  string
	Path     string
	DemoSeed bool
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// MarketDataConfig holds the external securities data provider settings.
// APIKey, when set, overrides any key stored through the settings endpoint.
type MarketDataConfig struct {
	BaseURL string
	APIKey  string
}

// SchedulerConfig holds cron schedules for background jobs.
type SchedulerConfig struct {
	QuoteRefresh string
}

// SecretsConfig holds the fernet key used to seal stored secrets.
// When empty, an ephemeral key is generated at startup.
type SecretsConfig struct {
	SettingsKey string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	backend := getEnv("DB_BACKEND", BackendSQLite)
	if backend != BackendSQLite && backend != BackendMemory {
		return nil, fmt.Errorf("unknown DB_BACKEND %q", backend)
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Backend:  backend,
			Path:     getEnv("DB_PATH", "./data/dividend_tracker.db"),
			DemoSeed: getEnv("DB_DEMO_SEED", "false") == "true",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		MarketData: MarketDataConfig{
			BaseURL: getEnv("MARKET_DATA_BASE_URL", "https://api-v2.intrinio.com"),
			APIKey:  getEnv("MARKET_DATA_API_KEY", ""),
		},
		Scheduler: SchedulerConfig{
			QuoteRefresh: getEnv("QUOTE_REFRESH_SCHEDULE", "@daily"),
		},
		Secrets: SecretsConfig{
			SettingsKey: getEnv("SETTINGS_ENCRYPTION_KEY", ""),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
