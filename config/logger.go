package config

import "go.uber.org/zap"

// NewLogger builds the process logger: structured JSON in production,
// console encoding everywhere else.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.Production() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
