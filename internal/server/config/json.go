package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/xingou/family-health-mcp/internal/flagx"
)

// jsonConfig is the intermediate DTO for reading JSON configuration files.
// After unmarshalling, set fields are copied into the runtime Config;
// absent fields keep their current values.
type jsonConfig struct {
	FamilyName         string `json:"family_name"`
	DirectoryBaseURL   string `json:"directory_base_url"`
	MetricsURLTemplate string `json:"metrics_url_template"`
	RetrievalURL       string `json:"retrieval_url"`
	HTTPTimeoutSeconds int    `json:"http_timeout_seconds"`
}

// parseJSON loads configuration values from the JSON file named by the
// -c/-config flags into the provided Config. If no file is named, nothing
// happens; an unreadable or invalid file panics, as the process cannot
// start with half-applied configuration.
func parseJSON(config *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &jsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.FamilyName != "" {
		config.FamilyName = c.FamilyName
	}
	if c.DirectoryBaseURL != "" {
		config.DirectoryBaseURL = c.DirectoryBaseURL
	}
	if c.MetricsURLTemplate != "" {
		config.MetricsURLTemplate = c.MetricsURLTemplate
	}
	if c.RetrievalURL != "" {
		config.RetrievalURL = c.RetrievalURL
	}
	if c.HTTPTimeoutSeconds > 0 {
		config.HTTPTimeout = time.Duration(c.HTTPTimeoutSeconds) * time.Second
	}
}
