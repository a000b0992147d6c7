package config

import (
	"fmt"
	"strings"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// BackendConfig points the portal at the SkyLink REST backend.
// A zero TimeoutSeconds means requests carry no client-side deadline.
type BackendConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

func (b *BackendConfig) GetBaseURL() string {
	return strings.TrimRight(b.BaseURL, "/")
}

func (b *BackendConfig) GetTimeout() time.Duration {
	if b.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(b.TimeoutSeconds) * time.Second
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// SessionConfig selects where the portal keeps the session holder's state.
// Store is one of "memory", "file" or "redis".
type SessionConfig struct {
	Store      string       `mapstructure:"store"`
	FilePath   string       `mapstructure:"file_path"`
	TTLMinutes int          `mapstructure:"ttl_minutes"`
	Cookie     CookieConfig `mapstructure:"cookie"`
}

func (s *SessionConfig) GetTTL() time.Duration {
	if s.TTLMinutes <= 0 {
		return 0
	}
	return time.Duration(s.TTLMinutes) * time.Minute
}

type CookieConfig struct {
	Name     string `mapstructure:"name"`
	Domain   string `mapstructure:"domain"`
	Path     string `mapstructure:"path"`
	Secure   bool   `mapstructure:"secure"`
	SameSite string `mapstructure:"same_site"`
}

type AnalyticsConfig struct {
	RecentLimit     int    `mapstructure:"recent_limit"`
	RefreshSchedule string `mapstructure:"refresh_schedule"`
}

// RateLimitConfig caps login and signup attempts per client IP. Zero
// disables the limit.
type RateLimitConfig struct {
	AuthPerMinute int `mapstructure:"auth_per_minute"`
}
