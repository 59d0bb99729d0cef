package config

import (
	"fmt"
	"os"
	"strconv"

	"mastery-dashboard/internal/constants"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	// Upstream dashboard API (summoner + per-champion matches).
	APIBaseURL string
	APIKey     string

	// Data Dragon static data source.
	DDragonBaseURL string
	DDragonVersion string

	ServerPort string
	LogLevel   string

	// Default match-window size for per-champion history.
	MatchCount int
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:8080/api"),
		APIKey:         getEnv("API_KEY", ""),
		DDragonBaseURL: getEnv("DDRAGON_BASE_URL", "https://ddragon.leagueoflegends.com/cdn"),
		DDragonVersion: getEnv("DDRAGON_VERSION", "15.24.1"),
		ServerPort:     getEnv("SERVER_PORT", "9090"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		MatchCount:     constants.DefaultMatchCount,
	}

	if v := os.Getenv("MATCH_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > constants.MaxMatchCount {
			return nil, fmt.Errorf("MATCH_COUNT must be 1..%d, got %q", constants.MaxMatchCount, v)
		}
		cfg.MatchCount = n
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required")
	}

	logger.Info().
		Str("api_base_url", cfg.APIBaseURL).
		Str("ddragon_version", cfg.DDragonVersion).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Int("match_count", cfg.MatchCount).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)
