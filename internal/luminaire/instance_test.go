package luminaire

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ies-luminaire/internal/geometry"
	"ies-luminaire/internal/ies"
	"ies-luminaire/internal/photoweb"
)

func testTemplate(t *testing.T) *Template {
	t.Helper()
	rec := &ies.PhotometricRecord{
		Photometry:     ies.TypeC,
		Units:          ies.UnitMeters,
		Width:          0.6,
		Length:         1.2,
		VertAngleCount: 3,
		HorzAngleCount: 2,
		VertAngles:     []float64{0, 90, 180},
		HorzAngles:     []float64{0, 180},
		Candela: [][]float64{
			{1000, 500, 0},
			{800, 400, 0},
		},
	}
	tpl, err := NewTemplate(rec, photoweb.Options{})
	require.NoError(t, err)
	return tpl
}

func assertVec3InDelta(t *testing.T, want, got mgl64.Vec3, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X(), got.X(), delta)
	assert.InDelta(t, want.Y(), got.Y(), delta)
	assert.InDelta(t, want.Z(), got.Z(), delta)
}

func TestIdentityPlacementReproducesTemplate(t *testing.T) {
	tpl := testTemplate(t)
	inst := Instantiate(tpl, Placement{}, DefaultDrawOptions())

	require.Len(t, inst.Curves, len(tpl.Web.Curves))
	for i, c := range inst.Curves {
		for j, p := range c {
			assertVec3InDelta(t, tpl.Web.Curves[i][j], p, 1e-12)
		}
	}
	assertVec3InDelta(t, tpl.HorzAxis.To, inst.Axes[0].To, 1e-12)
	assertVec3InDelta(t, tpl.VertAxis.To, inst.Axes[1].To, 1e-12)
	assert.Nil(t, inst.AimLine)
}

func TestTransformStageOrder(t *testing.T) {
	// Tilt alone folds +X down to -Z.
	m := Placement{Tilt: 90}.Transform(1)
	assertVec3InDelta(t, mgl64.Vec3{0, 0, -1}, geometry.Apply(m, mgl64.Vec3{1, 0, 0}), 1e-12)

	// Spin runs before tilt: +X spins onto +Y, which the tilt about Y
	// leaves in place.
	m = Placement{Spin: 90, Tilt: 90}.Transform(1)
	assertVec3InDelta(t, mgl64.Vec3{0, 1, 0}, geometry.Apply(m, mgl64.Vec3{1, 0, 0}), 1e-12)

	// Rotate runs after tilt: +X tilts down to -Z, which the final
	// rotation about Z leaves in place.
	m = Placement{Tilt: 90, Rotate: 90}.Transform(1)
	assertVec3InDelta(t, mgl64.Vec3{0, 0, -1}, geometry.Apply(m, mgl64.Vec3{1, 0, 0}), 1e-12)

	// A point off the rotation axis does move: +Y tilts to +Y, then the
	// rotation carries it to -X.
	assertVec3InDelta(t, mgl64.Vec3{-1, 0, 0}, geometry.Apply(m, mgl64.Vec3{0, 1, 0}), 1e-12)

	// Translation applies last.
	m = Placement{Location: mgl64.Vec3{10, 20, 30}, Tilt: 90}.Transform(1)
	assertVec3InDelta(t, mgl64.Vec3{10, 20, 29}, geometry.Apply(m, mgl64.Vec3{1, 0, 0}), 1e-12)
}

func TestTransformScale(t *testing.T) {
	m := Placement{Location: mgl64.Vec3{5, 0, 0}}.Transform(2)
	assertVec3InDelta(t, mgl64.Vec3{7, 0, 0}, geometry.Apply(m, mgl64.Vec3{1, 0, 0}), 1e-12)
}

func TestInstancesAreIndependent(t *testing.T) {
	tpl := testTemplate(t)
	a := Instantiate(tpl, Placement{}, DefaultDrawOptions())
	b := Instantiate(tpl, Placement{}, DefaultDrawOptions())

	a.Curves[0][0] = mgl64.Vec3{999, 999, 999}
	assert.NotEqual(t, a.Curves[0][0], b.Curves[0][0])
	assert.NotEqual(t, a.Curves[0][0], tpl.Web.Curves[0][0])
}

func TestInstantiateHonorsDrawOptions(t *testing.T) {
	tpl := testTemplate(t)
	inst := Instantiate(tpl, Placement{}, DrawOptions{Web: true})
	assert.Empty(t, inst.Opening)
	assert.Empty(t, inst.Axes)
	assert.NotEmpty(t, inst.Curves)
	assert.NotEmpty(t, inst.Strips)
}

func TestInstantiatePerGroupScales(t *testing.T) {
	tpl := testTemplate(t)
	opts := DefaultDrawOptions()
	opts.AxesScale = 3
	inst := Instantiate(tpl, Placement{}, opts)
	assertVec3InDelta(t, tpl.HorzAxis.To.Mul(3), inst.Axes[0].To, 1e-12)
	// Negative scales are taken by absolute value.
	opts.AxesScale = -3
	inst = Instantiate(tpl, Placement{}, opts)
	assertVec3InDelta(t, tpl.HorzAxis.To.Mul(3), inst.Axes[0].To, 1e-12)
}

func TestAimLineProjection(t *testing.T) {
	// Target on the aiming axis.
	line := AimLine(Placement{}, mgl64.Vec3{0, 0, -5})
	assertVec3InDelta(t, mgl64.Vec3{}, line.From, 1e-12)
	assertVec3InDelta(t, mgl64.Vec3{0, 0, -5}, line.To, 1e-12)

	// Off-axis target projects onto the axis.
	line = AimLine(Placement{}, mgl64.Vec3{3, 4, -2})
	assertVec3InDelta(t, mgl64.Vec3{0, 0, -2}, line.To, 1e-12)

	// A target behind the luminaire is not clamped.
	line = AimLine(Placement{}, mgl64.Vec3{0, 0, 7})
	assertVec3InDelta(t, mgl64.Vec3{0, 0, 7}, line.To, 1e-12)
}

func TestAimLineFollowsPlacement(t *testing.T) {
	p := Placement{Location: mgl64.Vec3{10, 0, 0}, Tilt: 90}
	// Tilt 90 aims the -Z axis toward -X, so the line runs along -X from
	// the location.
	line := AimLine(p, mgl64.Vec3{4, 0, 0})
	assertVec3InDelta(t, mgl64.Vec3{10, 0, 0}, line.From, 1e-12)
	assertVec3InDelta(t, mgl64.Vec3{4, 0, 0}, line.To, 1e-12)
}
