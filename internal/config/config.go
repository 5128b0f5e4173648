package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	App       AppConfig
	TimeClock TimeClockConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// TimeClockConfig holds punch/shift business settings
type TimeClockConfig struct {
	// Hours an open shift may run before the Shift Guard force-closes it.
	// The long-running anomaly in reports uses the same value.
	ShiftGuardThresholdHours float64

	// Lookback window for the sweep's "recently active" employee scan, days.
	SweepLookbackDays int

	// Directory cache tuning.
	DirectoryCacheTTLSeconds int
	DirectoryCacheSize       int
}

func Load() (*Config, error) {
	// A missing .env file is fine; environment variables still apply.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "timeclock"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION", "1h"),
	}
	if config.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8000"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}
	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	threshold, err := strconv.ParseFloat(getEnv("SHIFT_GUARD_THRESHOLD_HOURS", "15"), 64)
	if err != nil || threshold <= 0 {
		return nil, fmt.Errorf("invalid SHIFT_GUARD_THRESHOLD_HOURS")
	}
	lookback, err := strconv.Atoi(getEnv("SHIFT_GUARD_LOOKBACK_DAYS", "3"))
	if err != nil || lookback <= 0 {
		return nil, fmt.Errorf("invalid SHIFT_GUARD_LOOKBACK_DAYS")
	}
	cacheTTL, err := strconv.Atoi(getEnv("DIRECTORY_CACHE_TTL_SECONDS", "300"))
	if err != nil || cacheTTL <= 0 {
		return nil, fmt.Errorf("invalid DIRECTORY_CACHE_TTL_SECONDS")
	}
	cacheSize, err := strconv.Atoi(getEnv("DIRECTORY_CACHE_SIZE", "1024"))
	if err != nil || cacheSize <= 0 {
		return nil, fmt.Errorf("invalid DIRECTORY_CACHE_SIZE")
	}

	config.TimeClock = TimeClockConfig{
		ShiftGuardThresholdHours: threshold,
		SweepLookbackDays:        lookback,
		DirectoryCacheTTLSeconds: cacheTTL,
		DirectoryCacheSize:       cacheSize,
	}

	return config, nil
}

// DatabaseURL builds the pgx connection string.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
