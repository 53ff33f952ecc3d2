package photoweb

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ies-luminaire/internal/ies"
)

func testRecord() *ies.PhotometricRecord {
	return &ies.PhotometricRecord{
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
}

func TestNormalize(t *testing.T) {
	norm, err := Normalize([][]float64{{1000, 500}, {800, 250}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0.5}, {0.8, 0.25}}, norm)

	again, err := Normalize(norm)
	require.NoError(t, err)
	assert.Equal(t, norm, again)
}

func TestNormalizeRejectsAllZero(t *testing.T) {
	_, err := Normalize([][]float64{{0, 0}})
	assert.Error(t, err)
}

func TestBuildWeb(t *testing.T) {
	rec := testRecord()
	web, err := Build(rec, Options{})
	require.NoError(t, err)

	// 0-180 half symmetry expands to 0,180,360.
	require.Len(t, web.Curves, 3)
	require.Len(t, web.Strips, 2)
	for _, c := range web.Curves {
		assert.Len(t, c, 3)
	}

	// The brightest value sits at nadir of the C0 curve; the default size
	// multiplier is max(|width|,|length|) = 1.2 m.
	apex := web.Curves[0][0]
	assert.InDelta(t, 0, apex.X(), 1e-12)
	assert.InDelta(t, 0, apex.Y(), 1e-12)
	assert.InDelta(t, -1.2, apex.Z(), 1e-12)

	// Vertical angle 180 points straight up with zero candela.
	top := web.Curves[0][2]
	assert.InDelta(t, 0, top.Len(), 1e-12)
}

func TestBuildWebSizeMultiplier(t *testing.T) {
	rec := testRecord()
	web, err := Build(rec, Options{SizeMultiplier: 5})
	require.NoError(t, err)
	assert.InDelta(t, -5, web.Curves[0][0].Z(), 1e-12)
}

func TestBuildWebCandelaUnchanged(t *testing.T) {
	rec := testRecord()
	_, err := Build(rec, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1000.0, rec.Candela[0][0])
	assert.Equal(t, 0.6, rec.Width)
}

func TestBuildWebRejectsTypeA(t *testing.T) {
	rec := testRecord()
	rec.Photometry = ies.TypeA
	_, err := Build(rec, Options{})
	var ue *ies.UnsupportedPhotometryError
	require.ErrorAs(t, err, &ue)
}

func TestBuildWebRejectsBadShape(t *testing.T) {
	rec := testRecord()
	rec.Length = -2
	_, err := Build(rec, Options{})
	var se *ies.ShapeError
	require.ErrorAs(t, err, &se)
}

func TestBuildWebPointSource(t *testing.T) {
	rec := testRecord()
	rec.Width, rec.Length, rec.Height = 0, 0, 0
	web, err := Build(rec, Options{})
	require.NoError(t, err)
	// The coerced opening is 0.01 m wide, so the default multiplier is
	// 0.01.
	assert.InDelta(t, -0.01, web.Curves[0][0].Z(), 1e-12)
}

func TestOpeningRectangle(t *testing.T) {
	rec := testRecord()
	loops, err := Opening(rec, Options{})
	require.NoError(t, err)
	require.Len(t, loops, 1)
	loop := loops[0]
	require.Len(t, loop, 5)
	assert.Equal(t, loop[0], loop[4])
	assert.Equal(t, mgl64.Vec3{-0.6, -0.3, 0}, loop[0])
	assert.Equal(t, mgl64.Vec3{0.6, -0.3, 0}, loop[1])
}

func TestOpeningCircle(t *testing.T) {
	rec := testRecord()
	rec.Width, rec.Length = -0.8, 0
	loops, err := Opening(rec, Options{CircleSegments: 8})
	require.NoError(t, err)
	require.Len(t, loops, 1)
	loop := loops[0]
	require.Len(t, loop, 9)
	assert.Equal(t, loop[0], loop[8])
	for _, p := range loop {
		assert.InDelta(t, 0.4, math.Hypot(p.X(), p.Y()), 1e-12)
		assert.Equal(t, 0.0, p.Z())
	}
}

func TestOpeningBox(t *testing.T) {
	rec := testRecord()
	rec.Height = 0.4
	loops, err := Opening(rec, Options{})
	require.NoError(t, err)
	// Bottom loop, top loop, four vertical edges.
	require.Len(t, loops, 6)
	assert.Equal(t, -0.2, loops[0][0].Z())
	assert.Equal(t, 0.2, loops[1][0].Z())
	for _, edge := range loops[2:] {
		require.Len(t, edge, 2)
		assert.InDelta(t, 0.4, edge[1].Z()-edge[0].Z(), 1e-12)
	}
}

func TestOpeningFeetConversion(t *testing.T) {
	rec := testRecord()
	rec.Units = ies.UnitFeet
	loops, err := Opening(rec, Options{})
	require.NoError(t, err)
	assert.InDelta(t, -1.2*0.304/2, loops[0][0].X(), 1e-12)
}

func TestAxes(t *testing.T) {
	rec := testRecord()
	horz, vert, err := Axes(rec)
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec3{}, horz.From)
	assert.Equal(t, mgl64.Vec3{1.2 * 1.2 / 2, 0, 0}, horz.To)
	assert.Equal(t, mgl64.Vec3{0, 0, -1.2}, vert.To)
}

func TestAxesCircularOpening(t *testing.T) {
	rec := testRecord()
	rec.Width, rec.Length = -0.8, 0
	horz, vert, err := Axes(rec)
	require.NoError(t, err)
	assert.InDelta(t, 1.2*0.8/2, horz.To.X(), 1e-12)
	assert.InDelta(t, -0.8, vert.To.Z(), 1e-12)
}
