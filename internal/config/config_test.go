package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, int64(2025), cfg.Data.Seed)
	assert.Equal(t, "2025-07-22", cfg.Data.AnchorDate)
	assert.Equal(t, int64(50_000_000), cfg.Data.AnnualTarget)

	assert.Empty(t, cfg.Assistant.APIKey, "external calls are off by default")
	assert.Equal(t, "llama-3.1-70b-versatile", cfg.Assistant.Model)
	assert.Equal(t, 800, cfg.Assistant.MaxTokens)
	assert.InDelta(t, 0.3, cfg.Assistant.Temperature, 1e-9)
	assert.Equal(t, 15*time.Second, cfg.Assistant.Timeout)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := `
data:
  seed: 7
  anchor_date: "2025-03-01"
assistant:
  api_key: "gsk-test"
  timeout: 3s
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Data.Seed)
	assert.Equal(t, "2025-03-01", cfg.Data.AnchorDate)
	assert.Equal(t, int64(50_000_000), cfg.Data.AnnualTarget, "defaults fill the gaps")
	assert.Equal(t, "gsk-test", cfg.Assistant.APIKey)
	assert.Equal(t, 3*time.Second, cfg.Assistant.Timeout)
}

func TestAnchor(t *testing.T) {
	d := DataConfig{AnchorDate: "2025-07-22"}
	at, err := d.Anchor()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.July, 22, 0, 0, 0, 0, time.UTC), at)

	d.AnchorDate = "22-07-2025"
	_, err = d.Anchor()
	assert.Error(t, err)
}
