package radiance

import (
	"fmt"
	"math"
	"strings"
)

// Transmissivity converts a measured transmittance to the transmissivity
// value Radiance glass primitives expect, accounting for interreflection
// between the panes.
func Transmissivity(transmittance float64) float64 {
	return (math.Sqrt(0.8402528435+0.0072522239*transmittance*transmittance) - 0.9166530661) /
		0.0036261119 / transmittance
}

// GlassMaterial is a Radiance glass primitive defined by per-channel
// transmittance. RefractiveIndex is 1.52 for glass, 1.4 for ETFE.
type GlassMaterial struct {
	Name            string
	R, G, B         float64
	RefractiveIndex float64
}

// Validate checks the channel ranges.
func (g GlassMaterial) Validate() error {
	for _, v := range []float64{g.R, g.G, g.B} {
		if v < 0 || v > 1 {
			return fmt.Errorf("radiance: transmittance values should be between 0 and 1, got %g", v)
		}
	}
	if g.Name == "" {
		return fmt.Errorf("radiance: glass material needs a name")
	}
	return nil
}

// AverageTransmittance is the luminous (photopically weighted)
// transmittance of the glass.
func (g GlassMaterial) AverageTransmittance() float64 {
	return 0.265*g.R + 0.670*g.G + 0.065*g.B
}

// String renders the void glass primitive. Spaces in the name are
// replaced with underscores to keep the rad file parseable.
func (g GlassMaterial) String() string {
	name := strings.ReplaceAll(g.Name, " ", "_")
	return fmt.Sprintf("void glass %s\n0\n0\n4 %.3f %.3f %.3f %.3f\n",
		name, g.R, g.G, g.B, g.RefractiveIndex)
}
