package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Storage.validate(),
		c.Story.validate(),
		c.Notifier.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (s *StorageConfig) validate() error {
	switch s.Driver {
	case DriverMemory:
		return nil
	case DriverSQLite:
		if s.Path == "" {
			return errors.New("storage.path must not be empty when driver is sqlite")
		}
		return nil
	default:
		return fmt.Errorf("storage.driver must be one of: memory, sqlite; got %q", s.Driver)
	}
}

func (s *StoryConfig) validate() error {
	var errs []error

	if s.BulkMaxWorkers < 1 {
		errs = append(errs, fmt.Errorf("story.bulk_max_workers must be >= 1, got %d", s.BulkMaxWorkers))
	}
	if s.BulkMaxItems < 1 {
		errs = append(errs, fmt.Errorf("story.bulk_max_items must be >= 1, got %d", s.BulkMaxItems))
	}

	return errors.Join(errs...)
}

// validate only checks the client settings when the notifier is enabled;
// a disabled notifier never dials out.
func (n *NotifierConfig) validate() error {
	if !n.Enabled {
		return nil
	}

	var errs []error

	if n.BaseURL == "" {
		errs = append(errs, errors.New("notifier.base_url must not be empty"))
	}
	if n.Timeout <= 0 {
		errs = append(errs, errors.New("notifier.timeout must be positive"))
	}
	if n.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("notifier.retry.max_attempts must be >= 1, got %d", n.Retry.MaxAttempts))
	}
	if n.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("notifier.retry.multiplier must be positive, got %f", n.Retry.Multiplier))
	}
	if n.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("notifier.circuit_breaker.max_failures must be >= 1, got %d",
			n.CircuitBreaker.MaxFailures))
	}
	if n.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("notifier.rate_limit.requests_per_second must not be negative, got %f",
			n.RateLimit.RequestsPerSecond))
	}
	if n.RateLimit.RequestsPerSecond > 0 && n.RateLimit.BurstSize < 1 {
		errs = append(errs, errors.New("notifier.rate_limit.burst_size must be >= 1 when rate limiting is on"))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
