package config

import (
	"encoding/json"
	"os"

	"github.com/poseform/formtrack/internal/flagx"
	"github.com/poseform/formtrack/internal/timex"
)

// JsonConfig is an intermediate DTO for reading JSON configuration files.
type JsonConfig struct {
	ServerURL           string         `json:"server_url"`
	ModelEndpoint       string         `json:"model_endpoint"`
	ConfidenceThreshold float64        `json:"confidence_threshold"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	CSVOutput           string         `json:"csv_output"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into the provided Config. When no file is named, nothing
// is loaded.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.ServerURL != "" {
		config.ServerURL = c.ServerURL
	}
	if c.ModelEndpoint != "" {
		config.ModelEndpoint = c.ModelEndpoint
	}
	if c.ConfidenceThreshold != 0 {
		config.ConfidenceThreshold = c.ConfidenceThreshold
	}
	if c.RequestTimeout.Duration != 0 {
		config.RequestTimeout = c.RequestTimeout.Duration
	}
	if c.CSVOutput != "" {
		config.CSVOutput = c.CSVOutput
	}
}
