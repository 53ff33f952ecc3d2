package radiance

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// ExportPoint is one placement for rad export.
type ExportPoint struct {
	Spin, Tilt, Rotate float64
	X, Y, Z            float64
}

// ExportZone groups placements that share a custom lamp. Zones without
// their own lamp use the exporter's default.
type ExportZone struct {
	Lamp   *CustomLamp
	Points []ExportPoint
}

// Exporter converts an IES file into luminaire rad files via ies2rad and
// assembles the aggregate array file for a layout.
type Exporter struct {
	Runner  *Runner
	OutDir  string
	Name    string // luminaire ID, base name for every output file
	IESPath string
	// Multiplier is lightLossFactor * candelaMultiplier.
	Multiplier float64
	// Lamp is the default custom lamp, nil for the builtin lamp table.
	Lamp *CustomLamp
}

// Export runs ies2rad once for the default lamp and once per zone that
// carries its own lamp, then writes NAME_arr.rad with one xform line per
// placement. Success of each ies2rad run is confirmed by the expected
// rad file existing on disk. Returns the array file path.
func (e *Exporter) Export(ctx context.Context, zones []ExportZone) (string, error) {
	if e.Name == "" {
		return "", fmt.Errorf("radiance: exporter needs a luminaire name")
	}
	if err := os.MkdirAll(e.OutDir, 0755); err != nil {
		return "", fmt.Errorf("radiance: create %s: %w", e.OutDir, err)
	}

	defaultRad, err := e.runIes2Rad(ctx, "", e.Lamp)
	if err != nil {
		return "", err
	}

	var entries []ArrayEntry
	for i, z := range zones {
		radPath := defaultRad
		if z.Lamp != nil {
			radPath, err = e.runIes2Rad(ctx, strconv.Itoa(i), z.Lamp)
			if err != nil {
				return "", err
			}
		}
		for _, p := range z.Points {
			entries = append(entries, ArrayEntry{
				Spin: p.Spin, Tilt: p.Tilt, Rotate: p.Rotate,
				X: p.X, Y: p.Y, Z: p.Z,
				RadPath: radPath,
			})
		}
	}

	arrPath := filepath.Join(e.OutDir, e.Name+"_arr.rad")
	if err := WriteArrayFile(arrPath, entries); err != nil {
		return "", err
	}
	return arrPath, nil
}

func (e *Exporter) runIes2Rad(ctx context.Context, suffix string, lamp *CustomLamp) (string, error) {
	name := e.Name + suffix
	tabPath := ""
	if lamp != nil {
		if err := lamp.Validate(); err != nil {
			return "", err
		}
		if lamp.White != nil {
			tabPath = filepath.Join(e.OutDir, name+".tab")
			if err := WriteLampTable(tabPath, lamp.White); err != nil {
				return "", err
			}
		}
	}

	args := Ies2RadArgs(name, e.OutDir, e.IESPath, e.Multiplier, lamp, tabPath)
	if err := e.Runner.Run(ctx, e.OutDir, "ies2rad", args...); err != nil {
		return "", err
	}

	radPath := filepath.Join(e.OutDir, name+".rad")
	if _, err := os.Stat(radPath); err != nil {
		return "", &ToolError{Tool: "ies2rad", Err: fmt.Errorf("expected output %s missing", radPath)}
	}
	return radPath, nil
}
