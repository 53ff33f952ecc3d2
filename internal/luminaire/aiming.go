package luminaire

import (
	"github.com/go-gl/mathgl/mgl64"

	"ies-luminaire/internal/geometry"
)

// AimLine extends the placement's nadir axis toward a target point. The
// target is projected parametrically onto the transformed unit aiming
// line and the projection is NOT clamped to the segment: a target behind
// the luminaire or far past the aim direction produces a line behind or
// past it, matching the legacy tool's behavior.
func AimLine(p Placement, target mgl64.Vec3) geometry.Line {
	m := p.Transform(1)
	from := geometry.Apply(m, mgl64.Vec3{0, 0, 0})
	to := geometry.Apply(m, mgl64.Vec3{0, 0, -1})
	d := to.Sub(from)
	t := target.Sub(from).Dot(d) / d.Dot(d)
	return geometry.Line{From: from, To: from.Add(d.Mul(t))}
}
