// Package geometry holds the curve and outline primitives shared by the
// photometric web builder and the luminaire instancer. Everything is a
// value type over mgl64 vectors; transforms always produce copies.
package geometry

import "github.com/go-gl/mathgl/mgl64"

// Polyline is an open control-point curve through ordered vertices.
// The web curves are deliberately not interpolated, so a polyline with
// few vertices looks exactly as irregular as the source data.
type Polyline []mgl64.Vec3

// Clone returns an independent copy of the polyline.
func (p Polyline) Clone() Polyline {
	out := make(Polyline, len(p))
	copy(out, p)
	return out
}

// Line is a finite segment.
type Line struct {
	From, To mgl64.Vec3
}

// Delta returns the direction vector To-From.
func (l Line) Delta() mgl64.Vec3 {
	return l.To.Sub(l.From)
}

// Strip is a ruled surface between two adjacent web curves. A and B must
// have the same vertex count; quad i spans A[i],A[i+1],B[i+1],B[i].
type Strip struct {
	A, B Polyline
}

// Clone returns an independent copy of the strip.
func (s Strip) Clone() Strip {
	return Strip{A: s.A.Clone(), B: s.B.Clone()}
}
