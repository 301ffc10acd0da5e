// Package config handles configuration for the capture CLI, including
// defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the FormTrack CLI.
//
// Fields:
//   - ServerURL: base URL of the FormTrack API.
//   - ModelEndpoint: URL of the pose-estimation collaborator.
//   - ConfidenceThreshold: keypoint detection cut-off in [0,1].
//   - RequestTimeout: per-request timeout for API and model calls.
//   - CSVOutput: path the export command writes to.
type Config struct {
	ServerURL           string
	ModelEndpoint       string
	ConfidenceThreshold float64
	RequestTimeout      time.Duration
	CSVOutput           string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
	c.ModelEndpoint = "http://127.0.0.1:9001/estimate"
	c.ConfidenceThreshold = 0.3
	c.RequestTimeout = 30 * time.Second
	c.CSVOutput = "sessions.csv"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
