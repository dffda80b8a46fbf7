package config

import (
	"errors"
	"fmt"
)

const minJWTSecretLength = 32

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Auth.validate(),
		c.Storage.validate(),
		c.Datastore.validate(),
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
	if s.RequestTimeout < 0 {
		errs = append(errs, errors.New("server.request_timeout must not be negative"))
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

func (a *AuthConfig) validate() error {
	var errs []error

	if len(a.JWTSecret) < minJWTSecretLength {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least %d bytes", minJWTSecretLength))
	}
	if a.TokenTTL <= 0 {
		errs = append(errs, errors.New("auth.token_ttl must be positive"))
	}

	return errors.Join(errs...)
}

func (s *StorageConfig) validate() error {
	switch s.Driver {
	case DriverMemory:
		return nil
	case DriverMongo:
		var errs []error
		if s.Mongo.URI == "" {
			errs = append(errs, errors.New("storage.mongo.uri must not be empty when driver is mongo"))
		}
		if s.Mongo.Database == "" {
			errs = append(errs, errors.New("storage.mongo.database must not be empty when driver is mongo"))
		}
		return errors.Join(errs...)
	case DriverPostgres:
		var errs []error
		if s.Postgres.DSN == "" {
			errs = append(errs, errors.New("storage.postgres.dsn must not be empty when driver is postgres"))
		}
		if s.Postgres.MaxOpenConns < 1 {
			errs = append(errs, fmt.Errorf("storage.postgres.max_open_conns must be >= 1, got %d", s.Postgres.MaxOpenConns))
		}
		return errors.Join(errs...)
	default:
		return fmt.Errorf("storage.driver must be one of: memory, mongo, postgres; got %q", s.Driver)
	}
}

func (d *DatastoreConfig) validate() error {
	var errs []error

	if d.Timeout <= 0 {
		errs = append(errs, errors.New("datastore.timeout must be positive"))
	}
	if d.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("datastore.retry.max_attempts must be >= 1, got %d", d.Retry.MaxAttempts))
	}
	if d.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("datastore.retry.multiplier must be positive, got %f", d.Retry.Multiplier))
	}
	if d.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("datastore.circuit_breaker.max_failures must be >= 1, got %d",
			d.CircuitBreaker.MaxFailures))
	}
	if d.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, errors.New("datastore.rate_limit.requests_per_second must not be negative"))
	}
	if d.RateLimit.RequestsPerSecond > 0 && d.RateLimit.BurstSize < 1 {
		errs = append(errs, errors.New("datastore.rate_limit.burst_size must be >= 1 when rate limiting is enabled"))
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
