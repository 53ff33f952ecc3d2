package radiance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransmissivity(t *testing.T) {
	// The textbook case: 88% transmittance clear glass.
	assert.InDelta(t, 0.9586, Transmissivity(0.88), 1e-3)
	// Transmissivity exceeds transmittance by roughly 1.09.
	assert.InDelta(t, 1.09*0.65, Transmissivity(0.65), 0.01)
}

func TestGlassMaterialValidate(t *testing.T) {
	ok := GlassMaterial{Name: "clear", R: 0.88, G: 0.88, B: 0.88, RefractiveIndex: 1.52}
	assert.NoError(t, ok.Validate())

	bad := ok
	bad.G = 1.2
	assert.ErrorContains(t, bad.Validate(), "between 0 and 1")

	unnamed := ok
	unnamed.Name = ""
	assert.ErrorContains(t, unnamed.Validate(), "name")
}

func TestGlassMaterialAverageTransmittance(t *testing.T) {
	g := GlassMaterial{R: 1, G: 1, B: 1}
	assert.InDelta(t, 1.0, g.AverageTransmittance(), 1e-12)

	g = GlassMaterial{G: 0.5}
	assert.InDelta(t, 0.335, g.AverageTransmittance(), 1e-12)
}

func TestGlassMaterialString(t *testing.T) {
	g := GlassMaterial{Name: "low iron glass", R: 0.96, G: 0.95, B: 0.94, RefractiveIndex: 1.52}
	assert.Equal(t, "void glass low_iron_glass\n0\n0\n4 0.960 0.950 0.940 1.520\n", g.String())
}
