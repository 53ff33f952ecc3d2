// Package radiance builds and runs Radiance command-line invocations
// (ies2rad, ra_tiff, pcond) and writes the rad files that instance a
// luminaire layout. Tool calls are synchronous: a missing executable or
// a non-zero exit fails the operation immediately.
package radiance

import (
	"fmt"
	"os"
)

// WhiteLamp defines a custom lamp by CIE chromaticity coordinates and a
// lumen depreciation factor. It is written to a .tab lookup table that
// ies2rad consumes via -f.
type WhiteLamp struct {
	Name       string  `json:"name"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	DeprFactor float64 `json:"depr_factor"`
}

// TableLine renders the single .tab record for the lamp.
func (l *WhiteLamp) TableLine() string {
	return fmt.Sprintf("/%s/ %g %g %g", l.Name, l.X, l.Y, l.DeprFactor)
}

// RGBLamp defines a custom lamp by output color, passed to ies2rad as
// -c arguments. The depreciation factor folds into the multiplier.
type RGBLamp struct {
	R          float64 `json:"r"`
	G          float64 `json:"g"`
	B          float64 `json:"b"`
	DeprFactor float64 `json:"depr_factor"`
}

// CustomLamp is one of a white (chromaticity) or RGB lamp definition.
type CustomLamp struct {
	White *WhiteLamp `json:"white,omitempty"`
	RGB   *RGBLamp   `json:"rgb,omitempty"`
}

// Validate checks that exactly one lamp form is present.
func (l *CustomLamp) Validate() error {
	switch {
	case l.White == nil && l.RGB == nil:
		return fmt.Errorf("radiance: custom lamp needs a white or rgb definition")
	case l.White != nil && l.RGB != nil:
		return fmt.Errorf("radiance: custom lamp cannot be both white and rgb")
	case l.White != nil && l.White.Name == "":
		return fmt.Errorf("radiance: white lamp needs a name")
	}
	return nil
}

// WriteLampTable writes the lamp lookup table consumed by ies2rad -f.
func WriteLampTable(path string, l *WhiteLamp) error {
	if err := os.WriteFile(path, []byte(l.TableLine()+"\n"), 0644); err != nil {
		return fmt.Errorf("radiance: write lamp table %s: %w", path, err)
	}
	return nil
}
