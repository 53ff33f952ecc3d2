package photoweb

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"ies-luminaire/internal/geometry"
	"ies-luminaire/internal/ies"
)

// Axes returns the C0-G0 reference axes per IES LM-63-2002: a horizontal
// reference line of length 1.2*length/2 along +X and the nadir aiming
// line of length 2*length/2 along -Z. Circular and point-source openings
// substitute |width| for length.
func Axes(rec *ies.PhotometricRecord) (horz, vert geometry.Line, err error) {
	shape, err := rec.Shape()
	if err != nil {
		return geometry.Line{}, geometry.Line{}, err
	}

	scale := rec.Units.MeterScale()
	width := rec.Width * scale
	length := rec.Length * scale
	if shape == ies.ShapePointSource {
		width = pointSourceWidth * scale
	}
	if length == 0 && width < 0 {
		length = math.Abs(width)
	}

	origin := mgl64.Vec3{}
	horz = geometry.Line{From: origin, To: mgl64.Vec3{1.2 * length / 2, 0, 0}}
	vert = geometry.Line{From: origin, To: mgl64.Vec3{0, 0, -2 * length / 2}}
	return horz, vert, nil
}
