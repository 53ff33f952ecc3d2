package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	"ies-luminaire/internal/config"
	"ies-luminaire/internal/ies"
	"ies-luminaire/internal/luminaire"
	"ies-luminaire/internal/radiance"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	iesPath := flag.String("ies", "", "Path to the IES photometry file")
	zonesPath := flag.String("zones", "", "Zone layout JSON file")
	name := flag.String("id", "", "Luminaire ID, base name for output files (default: IES file name)")
	outputDir := flag.String("output", "", "Output directory (default: config or current directory)")
	radBin := flag.String("radbin", "", "Radiance bin directory (default: auto-detect)")
	llf := flag.Float64("llf", 0, "Light loss factor 0.0-1.0 (default: 1.0)")
	candMult := flag.Float64("mult", 0, "Candela multiplier (default: 1.0)")
	lampFile := flag.String("lamp", "", "Default custom lamp JSON file")
	verbose := flag.Bool("v", false, "Debug logging")

	flag.Parse()

	if *iesPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -ies is required. Specify the filepath for an IES file.")
		os.Exit(1)
	}
	if *zonesPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -zones is required. Specify the zone layout JSON file.")
		os.Exit(1)
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		RadBinDir:         *radBin,
		OutputDir:         *outputDir,
		LightLossFactor:   *llf,
		CandelaMultiplier: *candMult,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}

	level := hclog.Info
	if *verbose {
		level = hclog.Debug
	}
	log := hclog.New(&hclog.LoggerOptions{Name: "iesrad", Level: level})

	// Parse inputs before touching any tool.
	rec, err := ies.Parse(*iesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if rec.Photometry != ies.TypeC {
		fmt.Fprintf(os.Stderr, "Error: %v\n", &ies.UnsupportedPhotometryError{Type: rec.Photometry})
		os.Exit(1)
	}

	zones, err := luminaire.LoadZones(*zonesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var defaultLamp *radiance.CustomLamp
	if *lampFile != "" {
		defaultLamp, err = loadLamp(*lampFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	runner := &radiance.Runner{BinDir: cfg.RadBinDir, LibDir: cfg.RadLibDir, Log: log}
	if err := runner.CheckTools("ies2rad"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\nInstall Radiance or point -radbin at its bin directory.\n", err)
		os.Exit(1)
	}

	if *name == "" {
		base := filepath.Base(*iesPath)
		*name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	exporter := &radiance.Exporter{
		Runner:     runner,
		OutDir:     cfg.OutputDir,
		Name:       *name,
		IESPath:    *iesPath,
		Multiplier: cfg.LightLossFactor * cfg.CandelaMultiplier,
		Lamp:       defaultLamp,
	}

	arrPath, err := exporter.Export(context.Background(), exportZones(zones))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s\n", arrPath)
	if desc := luminaire.DescribePlacements(zones); desc != "" {
		fmt.Println(desc)
	}
}

func exportZones(zones []luminaire.Zone) []radiance.ExportZone {
	out := make([]radiance.ExportZone, len(zones))
	for i, z := range zones {
		ez := radiance.ExportZone{Lamp: z.Lamp}
		for _, p := range z.Points {
			ez.Points = append(ez.Points, radiance.ExportPoint{
				Spin: p.Spin, Tilt: p.Tilt, Rotate: p.Rotate,
				X: p.Location.X(), Y: p.Location.Y(), Z: p.Location.Z(),
			})
		}
		out[i] = ez
	}
	return out
}

func loadLamp(path string) (*radiance.CustomLamp, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var lamp radiance.CustomLamp
	if err := json.Unmarshal(data, &lamp); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := lamp.Validate(); err != nil {
		return nil, err
	}
	return &lamp, nil
}
