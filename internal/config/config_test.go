package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	assert.Equal(t, 1.0, cfg.LightLossFactor)
	assert.Equal(t, 1.0, cfg.CandelaMultiplier)
	assert.Equal(t, 1.0, cfg.WebScale)
	assert.Equal(t, 1.0, cfg.AxesScale)
	assert.Equal(t, 1.0, cfg.OpeningScale)
	assert.Equal(t, 4, cfg.MaxMirrorPasses)
	assert.Equal(t, 256, cfg.PreviewSize)
	assert.Equal(t, 2, cfg.Supersample)
}

func TestResolveFlagOverrides(t *testing.T) {
	cfg := Config{OutputDir: "from-file", LightLossFactor: 0.5}
	cfg.Resolve(Flags{OutputDir: "from-flag", LightLossFactor: 0.8, CandelaMultiplier: 2})

	assert.Equal(t, "from-flag", cfg.OutputDir)
	assert.Equal(t, 0.8, cfg.LightLossFactor)
	assert.Equal(t, 2.0, cfg.CandelaMultiplier)
}

func TestResolveKeepsFileValues(t *testing.T) {
	cfg := Config{OutputDir: "from-file", WebScale: 2.5}
	cfg.Resolve(Flags{})
	assert.Equal(t, "from-file", cfg.OutputDir)
	assert.Equal(t, 2.5, cfg.WebScale)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"rad_bin_dir": "/opt/radiance/bin",
		"light_loss_factor": 0.85,
		"max_mirror_passes": 6
	}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/radiance/bin", cfg.RadBinDir)
	assert.Equal(t, 0.85, cfg.LightLossFactor)
	assert.Equal(t, 6, cfg.MaxMirrorPasses)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Config{LightLossFactor: 0.5, CandelaMultiplier: 1}
	assert.NoError(t, cfg.Validate())

	cfg.LightLossFactor = 1.5
	var ve *ValidationError
	require.ErrorAs(t, cfg.Validate(), &ve)
	assert.Equal(t, "light_loss_factor", ve.Field)

	cfg = Config{LightLossFactor: 1, CandelaMultiplier: -2}
	require.ErrorAs(t, cfg.Validate(), &ve)
	assert.Equal(t, "candela_multiplier", ve.Field)
}
