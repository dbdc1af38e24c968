package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	Session struct {
		Lifetime   time.Duration
		CookieName string
	}
	Log struct {
		Level  string
		Format string
	}
	// AuthDelay is the artificial latency applied to every sign-in and sign-out.
	AuthDelay       time.Duration
	InsecureCookies bool
}

// Load reads config from environment (MOOD_ prefix) and optional moodmingle.yaml.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MOOD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("moodmingle")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("session.lifetime", "24h")
	v.SetDefault("session.cookie_name", "moodmingle_session")
	v.SetDefault("auth.delay", "500ms")
	v.SetDefault("insecure_cookies", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.Session.CookieName = v.GetString("session.cookie_name")
	cfg.InsecureCookies = v.GetBool("insecure_cookies")
	cfg.Log.Level = strings.ToLower(v.GetString("log.level"))
	cfg.Log.Format = strings.ToLower(v.GetString("log.format"))

	lifetime, err := time.ParseDuration(v.GetString("session.lifetime"))
	if err != nil {
		return nil, fmt.Errorf("invalid MOOD_SESSION_LIFETIME: %w", err)
	}
	if lifetime <= 0 {
		return nil, fmt.Errorf("MOOD_SESSION_LIFETIME must be positive, got %s", lifetime)
	}
	cfg.Session.Lifetime = lifetime

	delay, err := time.ParseDuration(v.GetString("auth.delay"))
	if err != nil {
		return nil, fmt.Errorf("invalid MOOD_AUTH_DELAY: %w", err)
	}
	if delay < 0 {
		return nil, fmt.Errorf("MOOD_AUTH_DELAY must not be negative, got %s", delay)
	}
	cfg.AuthDelay = delay

	if cfg.HTTP.Addr == "" {
		return nil, fmt.Errorf("MOOD_HTTP_ADDR is required")
	}
	if cfg.Session.CookieName == "" {
		return nil, fmt.Errorf("MOOD_SESSION_COOKIE_NAME is required")
	}
	switch cfg.Log.Format {
	case "json", "text":
	default:
		return nil, fmt.Errorf("unsupported MOOD_LOG_FORMAT %q: must be json or text", cfg.Log.Format)
	}

	return cfg, nil
}
