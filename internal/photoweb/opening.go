package photoweb

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"ies-luminaire/internal/geometry"
	"ies-luminaire/internal/ies"
)

// Opening returns the luminous-opening outline in meters, centered on
// the origin in the XY plane. Length runs along X, width along Y.
// Rectangles and circles yield one closed polyline; boxes yield the
// bottom loop, top loop and four vertical edges; point sources are drawn
// as a tiny circle.
func Opening(rec *ies.PhotometricRecord, opts Options) ([]geometry.Polyline, error) {
	shape, err := rec.Shape()
	if err != nil {
		return nil, err
	}

	scale := rec.Units.MeterScale()
	width := rec.Width * scale
	length := rec.Length * scale
	height := rec.Height * scale

	switch shape {
	case ShapeRect:
		return []geometry.Polyline{rectLoop(width, length, 0)}, nil
	case ShapeCircle, ShapePoint:
		if shape == ShapePoint {
			width = pointSourceWidth * scale
		}
		return []geometry.Polyline{circleLoop(math.Abs(width)/2, 0, opts.circleSegments())}, nil
	default: // rectangular with luminous sides
		bottom := rectLoop(width, length, -height/2)
		top := rectLoop(width, length, height/2)
		out := []geometry.Polyline{bottom, top}
		for i := 0; i < 4; i++ {
			out = append(out, geometry.Polyline{bottom[i], top[i]})
		}
		return out, nil
	}
}

// Shape aliases keep the switch above readable without repeating the ies
// package qualifier.
const (
	ShapeRect   = ies.ShapeRectangular
	ShapeCircle = ies.ShapeCircular
	ShapePoint  = ies.ShapePointSource
)

func rectLoop(width, length, z float64) geometry.Polyline {
	return geometry.Polyline{
		{-length / 2, -width / 2, z},
		{length / 2, -width / 2, z},
		{length / 2, width / 2, z},
		{-length / 2, width / 2, z},
		{-length / 2, -width / 2, z},
	}
}

func circleLoop(radius, z float64, segments int) geometry.Polyline {
	loop := make(geometry.Polyline, segments+1)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		loop[i] = mgl64.Vec3{radius * math.Cos(a), radius * math.Sin(a), z}
	}
	// sin(2*pi) is not exactly zero; snap the closing vertex onto the
	// first so the outline is exactly closed.
	loop[segments] = loop[0]
	return loop
}
