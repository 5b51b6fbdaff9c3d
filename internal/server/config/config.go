// Package config handles configuration for the family health tool server,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the MCP server.
//
// Fields:
//   - FamilyName: registered family group queried on the directory service.
//   - DirectoryBaseURL: directory listing endpoint; the URL-escaped family
//     name is appended per request.
//   - MetricsURLTemplate: health-metrics endpoint with {uid} and {days}
//     placeholders.
//   - RetrievalURL: local free-text retrieval endpoint.
//   - HTTPTimeout: fixed timeout applied to every outbound call.
type Config struct {
	FamilyName         string
	DirectoryBaseURL   string
	MetricsURLTemplate string
	RetrievalURL       string
	HTTPTimeout        time.Duration
}

// LoadDefaults populates Config with local development defaults. The
// directory and metrics addresses must be overridden for a real
// deployment.
func (c *Config) LoadDefaults() {
	c.FamilyName = "心狗家庭"
	c.DirectoryBaseURL = "http://127.0.0.1:8001/family/members?family="
	c.MetricsURLTemplate = "http://127.0.0.1:8002/health/records/{uid}?days={days}"
	c.RetrievalURL = "http://127.0.0.1:8003/query"
	c.HTTPTimeout = 10 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
