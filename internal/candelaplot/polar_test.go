package candelaplot

import (
	"path/filepath"
	"testing"

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

func TestPolarDiagram(t *testing.T) {
	plt, err := PolarDiagram(testRecord(), []float64{0, 90}, 0)
	require.NoError(t, err)
	require.NotNil(t, plt)
	assert.Contains(t, plt.Title.Text, "1000")
}

func TestPolarDiagramDefaultPlanes(t *testing.T) {
	plt, err := PolarDiagram(testRecord(), nil, 0)
	require.NoError(t, err)
	require.NotNil(t, plt)
}

func TestPolarDiagramPropagatesSymmetryError(t *testing.T) {
	rec := testRecord()
	rec.HorzAngles = []float64{90, 0}
	_, err := PolarDiagram(rec, nil, 0)
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	plt, err := PolarDiagram(testRecord(), []float64{0}, 0)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "candela.png")
	require.NoError(t, Save(plt, path))
}
