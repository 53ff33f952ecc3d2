package luminaire

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"ies-luminaire/internal/geometry"
)

// Placement positions one luminaire in a layout. Angles are degrees.
type Placement struct {
	Location mgl64.Vec3 `json:"location"`
	Spin     float64    `json:"spin"`
	Tilt     float64    `json:"tilt"`
	Rotate   float64    `json:"rotate"`
}

// Transform returns the placement matrix. The stage order is fixed:
// uniform scale about the world origin, spin about Z, tilt about Y,
// rotate about Z, then translate to the location.
func (p Placement) Transform(scale float64) mgl64.Mat4 {
	m := mgl64.Translate3D(p.Location.X(), p.Location.Y(), p.Location.Z())
	m = m.Mul4(mgl64.HomogRotate3DZ(mgl64.DegToRad(p.Rotate)))
	m = m.Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(p.Tilt)))
	m = m.Mul4(mgl64.HomogRotate3DZ(mgl64.DegToRad(p.Spin)))
	return m.Mul4(mgl64.Scale3D(scale, scale, scale))
}

// DrawOptions selects which geometry groups an instance carries and how
// large each is drawn. A zero scale means 1; negative scales are taken
// by absolute value.
type DrawOptions struct {
	Opening bool
	Web     bool
	Axes    bool

	OpeningScale float64
	WebScale     float64
	AxesScale    float64

	// AimTarget, when set, adds a line from the luminaire origin to the
	// parametric projection of the target onto the aiming axis.
	AimTarget *mgl64.Vec3
}

// DefaultDrawOptions draws every group at unit scale.
func DefaultDrawOptions() DrawOptions {
	return DrawOptions{Opening: true, Web: true, Axes: true}
}

// Instance is the transformed geometry for one placement.
type Instance struct {
	Placement Placement
	Opening   []geometry.Polyline
	Curves    []geometry.Polyline
	Strips    []geometry.Strip
	Axes      []geometry.Line
	AimLine   *geometry.Line
}

// Instantiate produces an independent transformed copy of the template
// for one placement. The template is never written to, so instances can
// be mutated freely without affecting each other.
func Instantiate(tpl *Template, p Placement, opts DrawOptions) *Instance {
	inst := &Instance{Placement: p}

	if opts.Opening {
		m := p.Transform(drawScale(opts.OpeningScale))
		for _, loop := range tpl.Opening {
			inst.Opening = append(inst.Opening, geometry.ApplyPolyline(m, loop))
		}
	}
	if opts.Web {
		m := p.Transform(drawScale(opts.WebScale))
		for _, c := range tpl.Web.Curves {
			inst.Curves = append(inst.Curves, geometry.ApplyPolyline(m, c))
		}
		for _, s := range tpl.Web.Strips {
			inst.Strips = append(inst.Strips, geometry.ApplyStrip(m, s))
		}
	}
	if opts.Axes {
		m := p.Transform(drawScale(opts.AxesScale))
		inst.Axes = []geometry.Line{
			geometry.ApplyLine(m, tpl.HorzAxis),
			geometry.ApplyLine(m, tpl.VertAxis),
		}
	}
	if opts.AimTarget != nil {
		line := AimLine(p, *opts.AimTarget)
		inst.AimLine = &line
	}

	return inst
}

func drawScale(s float64) float64 {
	if s == 0 {
		return 1
	}
	return math.Abs(s)
}
