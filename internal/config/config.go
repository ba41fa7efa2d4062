package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	ServerPort string
	DBPath     string
	LogLevel   string

	SleeperBaseURL string
	RosterCacheTTL time.Duration

	ImageBaseURL string
	ImageModel   string
	ImageWidth   int
	ImageHeight  int

	MetricsEnabled bool
	ServiceName    string
	OTLPEndpoint   string
	OTLPInsecure   bool
}

func Load() (*Config, error) {
	// a missing .env is fine, the environment still applies
	_ = godotenv.Load()

	var errs []string

	cfg := &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		DBPath:         getEnv("DB_PATH", "league-logos.db"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		SleeperBaseURL: strings.TrimRight(getEnv("SLEEPER_BASE_URL", "https://api.sleeper.app/v1"), "/"),
		ImageBaseURL:   getEnv("IMAGE_BASE_URL", "https://image.pollinations.ai/prompt/"),
		ImageModel:     getEnv("IMAGE_MODEL", ""),
		ServiceName:    getEnv("SERVICE_NAME", "league-logos"),
		OTLPEndpoint:   getEnv("OTLP_ENDPOINT", ""),
	}

	cfg.RosterCacheTTL = getDuration("ROSTER_CACHE_TTL", 10*time.Minute, &errs)
	cfg.ImageWidth = getInt("IMAGE_WIDTH", 1024, &errs)
	cfg.ImageHeight = getInt("IMAGE_HEIGHT", 1024, &errs)
	cfg.MetricsEnabled = getBool("METRICS_ENABLED", true, &errs)
	cfg.OTLPInsecure = getBool("OTLP_INSECURE", false, &errs)

	if cfg.ImageWidth <= 0 || cfg.ImageHeight <= 0 {
		errs = append(errs, "IMAGE_WIDTH and IMAGE_HEIGHT must be positive")
	}
	if cfg.SleeperBaseURL == "" {
		errs = append(errs, "SLEEPER_BASE_URL is required")
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return cfg, nil
}

func (c *Config) MarshalZerologObject(e *zerolog.Event) {
	e.Str("server_port", c.ServerPort).
		Str("db_path", c.DBPath).
		Str("log_level", c.LogLevel).
		Str("sleeper_base_url", c.SleeperBaseURL).
		Dur("roster_cache_ttl", c.RosterCacheTTL).
		Str("image_base_url", c.ImageBaseURL).
		Str("image_model", c.ImageModel).
		Int("image_width", c.ImageWidth).
		Int("image_height", c.ImageHeight).
		Bool("metrics_enabled", c.MetricsEnabled).
		Str("otlp_endpoint", c.OTLPEndpoint)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int, errs *[]string) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("%s: %q is not an integer", key, v))
		return fallback
	}
	return n
}

func getBool(key string, fallback bool, errs *[]string) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("%s: %q is not a boolean", key, v))
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration, errs *[]string) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil || d < 0 {
		*errs = append(*errs, fmt.Sprintf("%s: %q is not a valid duration", key, v))
		return fallback
	}
	return d
}

var Module = fx.Provide(Load)
