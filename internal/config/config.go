// Package config resolves tool paths and drawing/export settings once at
// process start, replacing the host plugin's sticky global state.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds all configurable paths and settings.
type Config struct {
	// Radiance install paths
	RadBinDir string `json:"rad_bin_dir"`
	RadLibDir string `json:"rad_lib_dir"`
	OutputDir string `json:"output_dir"`

	// Export settings
	LightLossFactor   float64 `json:"light_loss_factor"`
	CandelaMultiplier float64 `json:"candela_multiplier"`

	// Drawing settings
	WebScale        float64 `json:"web_scale"`
	AxesScale       float64 `json:"axes_scale"`
	OpeningScale    float64 `json:"opening_scale"`
	MaxMirrorPasses int     `json:"max_mirror_passes"`

	// Preview settings
	PreviewSize int `json:"preview_size"`
	Supersample int `json:"supersample"`
}

// Load reads a JSON config file. Fields not set in the file keep their
// zero values until Resolve fills in defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	RadBinDir         string
	OutputDir         string
	LightLossFactor   float64
	CandelaMultiplier float64
}

// Resolve fills empty fields with flag overrides and auto-detected
// defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.RadBinDir != "" {
		c.RadBinDir = flags.RadBinDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.LightLossFactor > 0 {
		c.LightLossFactor = flags.LightLossFactor
	}
	if flags.CandelaMultiplier > 0 {
		c.CandelaMultiplier = flags.CandelaMultiplier
	}

	if c.RadBinDir == "" {
		c.RadBinDir = detectRadBin()
	}
	if c.RadLibDir == "" && c.RadBinDir != "" {
		lib := filepath.Join(filepath.Dir(c.RadBinDir), "lib")
		if _, err := os.Stat(lib); err == nil {
			c.RadLibDir = lib
		}
	}

	if c.LightLossFactor == 0 {
		c.LightLossFactor = 1.0
	}
	if c.CandelaMultiplier == 0 {
		c.CandelaMultiplier = 1.0
	}
	if c.WebScale == 0 {
		c.WebScale = 1.0
	}
	if c.AxesScale == 0 {
		c.AxesScale = 1.0
	}
	if c.OpeningScale == 0 {
		c.OpeningScale = 1.0
	}
	if c.MaxMirrorPasses <= 0 {
		c.MaxMirrorPasses = 4
	}
	if c.PreviewSize <= 0 {
		c.PreviewSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
}

// ValidationError reports a setting outside its allowed range.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// Validate enforces the ranges the export pipeline depends on.
func (c *Config) Validate() error {
	if c.LightLossFactor < 0 || c.LightLossFactor > 1 {
		return &ValidationError{Field: "light_loss_factor",
			Reason: fmt.Sprintf("should be between 0.0 and 1.0, got %g", c.LightLossFactor)}
	}
	if c.CandelaMultiplier <= 0 {
		return &ValidationError{Field: "candela_multiplier",
			Reason: fmt.Sprintf("should be a number greater than 0, got %g", c.CandelaMultiplier)}
	}
	return nil
}

func detectRadBin() string {
	var candidates []string
	exe := "ies2rad"
	switch runtime.GOOS {
	case "windows":
		candidates = []string{`C:\Radiance\bin`, `C:\Program Files\Radiance\bin`}
		exe = "ies2rad.exe"
	default:
		candidates = []string{"/usr/local/radiance/bin", "/opt/radiance/bin", "/usr/local/bin"}
	}
	for _, dir := range candidates {
		if _, err := os.Stat(filepath.Join(dir, exe)); err == nil {
			return dir
		}
	}
	return ""
}
