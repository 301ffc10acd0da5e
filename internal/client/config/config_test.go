package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", c.ServerURL)
	assert.Equal(t, "http://127.0.0.1:9001/estimate", c.ModelEndpoint)
	assert.Equal(t, 0.3, c.ConfidenceThreshold)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, "sessions.csv", c.CSVOutput)
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(map[string]any{
		"server_url":           "http://api:9000",
		"model_endpoint":       "http://model:9001/estimate",
		"confidence_threshold": 0.5,
		"request_timeout":      "10s",
		"csv_output":           "out.csv",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))

	os.Args = []string{"testbin", "-config", path}

	cfg := &Config{}
	parseJson(cfg)

	assert.Equal(t, "http://api:9000", cfg.ServerURL)
	assert.Equal(t, "http://model:9001/estimate", cfg.ModelEndpoint)
	assert.Equal(t, 0.5, cfg.ConfidenceThreshold)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "out.csv", cfg.CSVOutput)
}

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd", "-a", "http://api:7000", "-k", "0.4", "-t", "5"}

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NotPanics(t, func() { parseFlags(cfg) })

	assert.Equal(t, "http://api:7000", cfg.ServerURL)
	assert.Equal(t, 0.4, cfg.ConfidenceThreshold)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}
