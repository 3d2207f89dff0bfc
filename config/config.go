package config

import "github.com/spf13/viper"

// Config holds everything read from the environment at boot. Defaults are
// development-friendly; production deployments must set APP_ENV=production
// and a real JWT_SECRET.
type Config struct {
	Port        string
	AppEnv      string
	DatabaseURL string
	StoreKind   string // postgres | memory
	JWTSecret   string
	ClientURL   string

	RateLimitMax    int
	RateLimitWindow int // minutes
}

func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "3001")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("STORE", "")
	v.SetDefault("JWT_SECRET", "collectiq-dev-secret")
	v.SetDefault("CLIENT_URL", "http://localhost:5173")
	v.SetDefault("RATE_LIMIT_MAX", 100)
	v.SetDefault("RATE_LIMIT_WINDOW_MINUTES", 15)

	cfg := &Config{
		Port:            v.GetString("PORT"),
		AppEnv:          v.GetString("APP_ENV"),
		DatabaseURL:     v.GetString("DATABASE_URL"),
		StoreKind:       v.GetString("STORE"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		ClientURL:       v.GetString("CLIENT_URL"),
		RateLimitMax:    v.GetInt("RATE_LIMIT_MAX"),
		RateLimitWindow: v.GetInt("RATE_LIMIT_WINDOW_MINUTES"),
	}

	// No database configured means the in-memory fixture store unless the
	// operator asked for postgres explicitly.
	if cfg.StoreKind == "" {
		if cfg.DatabaseURL == "" {
			cfg.StoreKind = "memory"
		} else {
			cfg.StoreKind = "postgres"
		}
	}
	return cfg
}

func (c *Config) Production() bool {
	return c.AppEnv == "production"
}
