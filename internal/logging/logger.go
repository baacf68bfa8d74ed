package logging

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/edvin/instance-dns/internal/config"
)

// NewLogger creates a structured zerolog.Logger with context fields from the
// config. Non-empty fields are added automatically.
func NewLogger(cfg *config.Config) zerolog.Logger {
	ctx := zerolog.New(os.Stdout).With().Timestamp().Str("service", "dns-updater")

	if cfg.DomainName != "" {
		ctx = ctx.Str("domain", cfg.DomainName)
	}
	if cfg.HostedZoneID != "" {
		ctx = ctx.Str("zone", cfg.HostedZoneID)
	}

	logger := ctx.Logger()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	return logger.Level(level)
}
