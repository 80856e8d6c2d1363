package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

// Methods the scoring engine knows about. Only baseline is implemented;
// embeddings and hybrid are reserved names and rejected at request time.
const MethodBaseline = "baseline"

var validLogLevels = []string{"debug", "info", "warn", "error"}

// applyFallbacks applies derived and environment-based fallbacks
func (c *Config) applyFallbacks() {
	c.applyServerAPIKeyFallbacks()
	c.applyObservabilityDefaults()
}

// applyServerAPIKeyFallbacks applies API key fallbacks from environment variables
func (c *Config) applyServerAPIKeyFallbacks() {
	if len(c.Server.APIKeys) == 0 {
		if apiKeysEnv := os.Getenv("SKILLRANK_SERVER_APIKEYS"); apiKeysEnv != "" {
			c.Server.APIKeys = strings.Split(apiKeysEnv, ",")
			for i, key := range c.Server.APIKeys {
				c.Server.APIKeys[i] = strings.TrimSpace(key)
			}
		}
	}
}

// applyObservabilityDefaults applies default observability configuration values
func (c *Config) applyObservabilityDefaults() {
	if c.Observability.ServiceInstance == "" {
		c.Observability.ServiceInstance = generateServiceInstanceID(c.Observability.ServiceName)
	}
}

// generateServiceInstanceID generates a unique service instance ID
func generateServiceInstanceID(serviceName string) string {
	if hostname, err := os.Hostname(); err == nil {
		return fmt.Sprintf("%s-%s", serviceName, hostname)
	}
	return fmt.Sprintf("%s-1", serviceName)
}

// Validate checks the configuration for values that would only fail later
// at request time.
func (c *Config) Validate() error {
	if strings.ToLower(c.Scoring.Method) != MethodBaseline {
		return fmt.Errorf("unsupported scoring method %q (only %q is implemented)", c.Scoring.Method, MethodBaseline)
	}
	if c.Scoring.TopN <= 0 {
		return fmt.Errorf("scoring.topN must be positive, got %d", c.Scoring.TopN)
	}
	if !slices.Contains(validLogLevels, c.App.LogLevel) {
		return fmt.Errorf("invalid log level %q (valid: %v)", c.App.LogLevel, validLogLevels)
	}
	return c.ValidateTLSConfig()
}

// ValidateTLSConfig validates the TLS portion of the server configuration.
func (c *Config) ValidateTLSConfig() error {
	tls := c.Server.TLS
	switch tls.Mode {
	case "", "disabled":
		return nil
	case "server":
		if tls.CertFile == "" || tls.KeyFile == "" {
			return fmt.Errorf("TLS mode %q requires certFile and keyFile", tls.Mode)
		}
	case "mutual":
		if tls.CertFile == "" || tls.KeyFile == "" || tls.CAFile == "" {
			return fmt.Errorf("TLS mode %q requires certFile, keyFile and caFile", tls.Mode)
		}
	default:
		return fmt.Errorf("invalid TLS mode %q (valid: disabled, server, mutual)", tls.Mode)
	}

	switch tls.MinVersion {
	case "", "1.2", "1.3":
	default:
		return fmt.Errorf("invalid TLS minVersion %q (valid: 1.2, 1.3)", tls.MinVersion)
	}
	return nil
}
