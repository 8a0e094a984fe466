package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("Sainte-Croix")
	cfg.Report.DefaultYear = 2024
	cfg.Flow.MinLinkAmount = 100

	path := filepath.Join(t.TempDir(), "budgetis.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Commune.Name, got.Commune.Name)
	assert.Equal(t, 2024, got.Report.DefaultYear)
	assert.InDelta(t, 0.5, got.Flow.Tolerance, 0.001)
	assert.InDelta(t, 100, got.Flow.MinLinkAmount, 0.001)
}

func TestDefaults(t *testing.T) {
	cfg := Default("Sainte-Croix")

	assert.Equal(t, "Sainte-Croix", cfg.Commune.Name)
	assert.Zero(t, cfg.Report.DefaultYear)
	assert.InDelta(t, 0.5, cfg.Flow.Tolerance, 0.001)
	assert.Zero(t, cfg.Flow.MinLinkAmount)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
