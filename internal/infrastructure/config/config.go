package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	sharedConfig "skylink/internal/shared/config"
)

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server"`
	Backend   sharedConfig.BackendConfig   `mapstructure:"backend"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger"`
	Redis     sharedConfig.RedisConfig     `mapstructure:"redis"`
	Session   sharedConfig.SessionConfig   `mapstructure:"session"`
	Analytics sharedConfig.AnalyticsConfig `mapstructure:"analytics"`
	RateLimit sharedConfig.RateLimitConfig `mapstructure:"rate_limit"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configs/config.yaml (optional), a .env file (optional) and
// SKYLINK_* environment variables, in increasing order of precedence.
func Load(env string) (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")

	v.SetEnvPrefix("SKYLINK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Backend defaults
	v.SetDefault("backend.base_url", "http://localhost:8081")
	v.SetDefault("backend.timeout_seconds", 0)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stderr")

	// Redis defaults
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Session defaults
	v.SetDefault("session.store", "memory")
	v.SetDefault("session.file_path", "")
	v.SetDefault("session.ttl_minutes", 0)
	v.SetDefault("session.cookie.name", "skylink_session")
	v.SetDefault("session.cookie.domain", "")
	v.SetDefault("session.cookie.path", "/")
	v.SetDefault("session.cookie.secure", false)
	v.SetDefault("session.cookie.same_site", "Lax")

	// Analytics defaults
	v.SetDefault("analytics.recent_limit", 5)
	v.SetDefault("analytics.refresh_schedule", "@every 30s")

	// Rate limit defaults
	v.SetDefault("rate_limit.auth_per_minute", 20)
}
