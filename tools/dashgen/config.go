package main

import "errors"

// KnownMetrics is the set of metric names exported by shopee-relay
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"relay_http_request_duration_seconds": true,
	"relay_http_requests_total":           true,

	// Health metrics.
	"relay_healthz_up": true,
	"relay_readyz_up":  true,

	// Affiliate API metrics.
	"relay_affiliate_calls_total":  true,
	"relay_affiliate_errors_total": true,
	"relay_links_generated_total":  true,

	// Bot metrics.
	"relay_bot_updates_total":        true,
	"relay_bot_command_errors_total": true,

	// Recording rules.
	"relay:http_requests:rate5m":    true,
	"relay:http_errors:rate5m":      true,
	"relay:affiliate_calls:rate5m":  true,
	"relay:affiliate_errors:rate5m": true,
	"relay:bot_updates:rate5m":      true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
