package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultPostgresMaxOpenConns = 10
	defaultPostgresMaxIdleConns = 5
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "15s",

		"log.level":  "info",
		"log.format": "json",

		"auth.jwt_secret": "",
		"auth.issuer":     "conference-booking",
		"auth.token_ttl":  "1h",

		"storage.driver":                     DriverMemory,
		"storage.mongo.uri":                  "mongodb://localhost:27017",
		"storage.mongo.database":             "conferences",
		"storage.postgres.dsn":               "",
		"storage.postgres.max_open_conns":    defaultPostgresMaxOpenConns,
		"storage.postgres.max_idle_conns":    defaultPostgresMaxIdleConns,
		"storage.postgres.conn_max_lifetime": "30m",

		"datastore.timeout":                         "5s",
		"datastore.retry.max_attempts":              defaultRetryMaxAttempts,
		"datastore.retry.initial_interval":          "50ms",
		"datastore.retry.max_interval":              "2s",
		"datastore.retry.multiplier":                defaultRetryMultiplier,
		"datastore.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"datastore.circuit_breaker.timeout":         "30s",
		"datastore.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"datastore.rate_limit.requests_per_second":  0,
		"datastore.rate_limit.burst_size":           0,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "conference-booking",
	}
}
