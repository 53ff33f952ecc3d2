package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ies-luminaire/internal/geometry"
	"ies-luminaire/internal/luminaire"
)

func TestWriteOBJ(t *testing.T) {
	inst := &luminaire.Instance{
		Strips: []geometry.Strip{{
			A: geometry.Polyline{{0, 0, 0}, {1, 0, 0}},
			B: geometry.Polyline{{0, 1, 0}, {1, 1, 0}},
		}},
		Opening: []geometry.Polyline{{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}}},
		Axes: []geometry.Line{
			{From: [3]float64{0, 0, 0}, To: [3]float64{2, 0, 0}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, []*luminaire.Instance{inst}))
	out := buf.String()

	assert.Contains(t, out, "o luminaire_1\n")
	// Strip vertices 1-4 form one quad.
	assert.Contains(t, out, "f 1 2 4 3\n")
	// Opening vertices 5-7 form a polyline.
	assert.Contains(t, out, "l 5 6 7\n")
	// Axis line follows as vertices 8-9.
	assert.Contains(t, out, "l 8 9\n")
	assert.Contains(t, out, "v 1 1 0\n")
	assert.Equal(t, 9, strings.Count(out, "\nv "))
}

func TestWriteOBJSkipsDegenerates(t *testing.T) {
	inst := &luminaire.Instance{
		Opening: []geometry.Polyline{{{0, 0, 0}}},
		Strips: []geometry.Strip{{
			A: geometry.Polyline{{0, 0, 0}, {1, 0, 0}},
			B: geometry.Polyline{{0, 1, 0}},
		}},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, []*luminaire.Instance{inst}))
	assert.NotContains(t, buf.String(), "v ")
}

func TestWriteOBJNumbersInstances(t *testing.T) {
	a := &luminaire.Instance{Opening: []geometry.Polyline{{{0, 0, 0}, {1, 0, 0}}}}
	b := &luminaire.Instance{Opening: []geometry.Polyline{{{0, 0, 1}, {1, 0, 1}}}}

	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, []*luminaire.Instance{a, b}))
	out := buf.String()
	assert.Contains(t, out, "o luminaire_1\n")
	assert.Contains(t, out, "o luminaire_2\n")
	// Vertex numbering continues across instances.
	assert.Contains(t, out, "l 3 4\n")
}
