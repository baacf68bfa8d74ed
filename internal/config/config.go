package config

import (
	"fmt"
	"os"
)

// Config holds the process-wide configuration for the DNS updater.
// It is read once at cold start and never mutated afterwards.
type Config struct {
	// HostedZoneID is the Route 53 hosted zone the A record lives in.
	HostedZoneID string
	// DomainName is the fully-qualified name pointed at the instance.
	DomainName string
	LogLevel   string
}

func Load() (*Config, error) {
	cfg := &Config{
		HostedZoneID: getEnv("HOSTED_ZONE_ID", ""),
		DomainName:   getEnv("DOMAIN_NAME", ""),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// Validate checks that the required values are present. A missing value is a
// configuration error: the handler must not serve invocations without them.
func (c *Config) Validate() error {
	if c.HostedZoneID == "" {
		return fmt.Errorf("HOSTED_ZONE_ID is required")
	}
	if c.DomainName == "" {
		return fmt.Errorf("DOMAIN_NAME is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
