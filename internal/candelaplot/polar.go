// Package candelaplot draws C-plane polar diagrams of a photometric
// record, the 2D cousin of the 3D web: candela against vertical angle
// for chosen horizontal planes.
package candelaplot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"ies-luminaire/internal/ies"
	"ies-luminaire/internal/photoweb"
)

var planeColors = []color.RGBA{
	{R: 0xd9, G: 0x73, B: 0x1a, A: 0xff},
	{R: 0x1a, G: 0x6f, B: 0xd9, A: 0xff},
	{R: 0x2e, G: 0x9e, B: 0x4f, A: 0xff},
	{R: 0xb3, G: 0x2e, B: 0x88, A: 0xff},
}

// PolarDiagram plots the candela cross-section through each requested
// C-plane (degrees). Each plane is drawn together with its opposite
// plane, so C0 gives the full C0-C180 section. The symmetry of the file
// is expanded first, exactly as the web builder does.
func PolarDiagram(rec *ies.PhotometricRecord, planes []float64, maxMirrorPasses int) (*plot.Plot, error) {
	if len(planes) == 0 {
		planes = []float64{0, 90}
	}

	horz, rows, err := photoweb.ExpandSymmetry(rec.HorzAngles, rec.Candela, maxMirrorPasses)
	if err != nil {
		return nil, err
	}

	plt := plot.New()
	plt.Title.Text = fmt.Sprintf("Candela distribution (max %g cd)", tableMax(rows))
	plt.X.Label.Text = "cd"
	plt.Y.Label.Text = "cd"

	for i, plane := range planes {
		xys := sectionXYs(rec.VertAngles, horz, rows, plane)
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("candelaplot: plane C%g: %w", plane, err)
		}
		line.LineStyle.Color = planeColors[i%len(planeColors)]
		line.LineStyle.Width = vg.Points(1.5)
		plt.Add(line)
		plt.Legend.Add(fmt.Sprintf("C%g-C%g", plane, math.Mod(plane+180, 360)), line)
	}

	return plt, nil
}

// Save writes the diagram; the format follows the file extension
// (.png, .svg, .pdf).
func Save(plt *plot.Plot, path string) error {
	return plt.Save(6*vg.Inch, 6*vg.Inch, path)
}

// sectionXYs builds the polar section polyline: the opposite plane on
// the negative X side joined at nadir with the requested plane on the
// positive side.
func sectionXYs(vert, horz []float64, rows [][]float64, plane float64) plotter.XYs {
	right := nearestRow(horz, rows, plane)
	left := nearestRow(horz, rows, math.Mod(plane+180, 360))

	var xys plotter.XYs
	for i := len(vert) - 1; i >= 0; i-- {
		v := vert[i] * math.Pi / 180
		xys = append(xys, plotter.XY{X: -left[i] * math.Sin(v), Y: -left[i] * math.Cos(v)})
	}
	for i := range vert {
		v := vert[i] * math.Pi / 180
		xys = append(xys, plotter.XY{X: right[i] * math.Sin(v), Y: -right[i] * math.Cos(v)})
	}
	return xys
}

func nearestRow(horz []float64, rows [][]float64, angle float64) []float64 {
	best := 0
	bestDist := math.Inf(1)
	for i, h := range horz {
		if d := math.Abs(h - angle); d < bestDist {
			best, bestDist = i, d
		}
	}
	return rows[best]
}

func tableMax(rows [][]float64) float64 {
	max := 0.0
	for _, row := range rows {
		for _, v := range row {
			if v > max {
				max = v
			}
		}
	}
	return max
}
