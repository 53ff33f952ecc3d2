package geometry

import "github.com/go-gl/mathgl/mgl64"

// Apply transforms a point by the homogeneous matrix.
func Apply(m mgl64.Mat4, p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(p, m)
}

// ApplyPolyline returns a transformed copy of the polyline.
func ApplyPolyline(m mgl64.Mat4, p Polyline) Polyline {
	out := make(Polyline, len(p))
	for i, v := range p {
		out[i] = Apply(m, v)
	}
	return out
}

// ApplyLine returns a transformed copy of the line.
func ApplyLine(m mgl64.Mat4, l Line) Line {
	return Line{From: Apply(m, l.From), To: Apply(m, l.To)}
}

// ApplyStrip returns a transformed copy of the strip.
func ApplyStrip(m mgl64.Mat4, s Strip) Strip {
	return Strip{A: ApplyPolyline(m, s.A), B: ApplyPolyline(m, s.B)}
}
