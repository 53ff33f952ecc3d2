package photoweb

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"ies-luminaire/internal/geometry"
	"ies-luminaire/internal/ies"
)

// pointSourceWidth stands in for a zero-size luminous opening so the web
// and axes keep a nonzero footprint. File units, negative per the
// circular-opening convention.
const pointSourceWidth = -0.01

// Options tune web construction.
type Options struct {
	// SizeMultiplier scales the normalized candela radius. Zero or
	// negative means the larger of |width| and |length| in meters.
	SizeMultiplier float64
	// MaxMirrorPasses bounds the symmetry expansion loop. Zero means
	// DefaultMaxMirrorPasses.
	MaxMirrorPasses int
	// CircleSegments is the sample count for circular opening outlines.
	// Zero means 36.
	CircleSegments int
}

func (o Options) circleSegments() int {
	if o.CircleSegments <= 0 {
		return 36
	}
	return o.CircleSegments
}

// Web is a candela distribution as a curve network: one curve per
// expanded horizontal angle and a ruled strip between each adjacent pair.
type Web struct {
	Curves []geometry.Polyline
	Strips []geometry.Strip
}

// Build constructs the photometric web for a type C record. Candela
// values are normalized by the global maximum, so the web radius equals
// the size multiplier at the brightest angle pair.
func Build(rec *ies.PhotometricRecord, opts Options) (*Web, error) {
	shape, err := rec.Shape()
	if err != nil {
		return nil, err
	}
	if rec.Photometry != ies.TypeC {
		return nil, &ies.UnsupportedPhotometryError{Type: rec.Photometry}
	}

	scale := rec.Units.MeterScale()
	width := rec.Width * scale
	length := rec.Length * scale
	if shape == ies.ShapePointSource {
		width = pointSourceWidth * scale
	}

	horz, rows, err := ExpandSymmetry(rec.HorzAngles, rec.Candela, opts.MaxMirrorPasses)
	if err != nil {
		return nil, err
	}

	norm, err := Normalize(rows)
	if err != nil {
		return nil, err
	}

	mul := opts.SizeMultiplier
	if mul <= 0 {
		mul = math.Max(math.Abs(width), math.Abs(length))
	}

	curves := make([]geometry.Polyline, len(horz))
	for i, hAng := range horz {
		hRad := hAng * math.Pi / 180
		curve := make(geometry.Polyline, len(rec.VertAngles))
		for j, vAng := range rec.VertAngles {
			vRad := vAng * math.Pi / 180
			r := mul * norm[i][j]
			curve[j] = mgl64.Vec3{
				r * math.Sin(vRad) * math.Cos(hRad),
				r * math.Sin(vRad) * math.Sin(hRad),
				-r * math.Cos(vRad),
			}
		}
		curves[i] = curve
	}

	strips := make([]geometry.Strip, 0, len(curves)-1)
	for i := 0; i+1 < len(curves); i++ {
		strips = append(strips, geometry.Strip{A: curves[i], B: curves[i+1]})
	}

	return &Web{Curves: curves, Strips: strips}, nil
}

// Normalize divides every candela value by the global maximum, mapping
// the table into [0,1] with the maximum at exactly 1. Normalizing an
// already normalized table is a no-op.
func Normalize(rows [][]float64) ([][]float64, error) {
	max := 0.0
	for _, row := range rows {
		for _, v := range row {
			if v > max {
				max = v
			}
		}
	}
	if max <= 0 {
		return nil, fmt.Errorf("photoweb: candela table has no positive values")
	}
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = v / max
		}
	}
	return out, nil
}
