// Package preview rasterizes instanced luminaire geometry into a small
// WebP image for quick visual checks without a CAD viewport.
package preview

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"ies-luminaire/internal/geometry"
)

// Layer is a group of primitives drawn in one color.
type Layer struct {
	Color     color.NRGBA
	Polylines []geometry.Polyline
	Lines     []geometry.Line
}

// Options control the render.
type Options struct {
	Size        int // output edge length, zero means 256
	Supersample int // render at Size*Supersample then downsample, zero means 2
	// ViewYaw turns the scene about Z and ViewPitch is the camera
	// elevation above the horizon, both degrees. Zero values give a
	// three-quarter view that shows the web hanging below the opening.
	ViewYaw   float64
	ViewPitch float64
}

func (o Options) size() int {
	if o.Size <= 0 {
		return 256
	}
	return o.Size
}

func (o Options) supersample() int {
	if o.Supersample <= 0 {
		return 2
	}
	return o.Supersample
}

func (o Options) view() mgl64.Mat4 {
	yaw, pitch := o.ViewYaw, o.ViewPitch
	if yaw == 0 && pitch == 0 {
		yaw, pitch = 30, 20
	}
	// Turn the scene about Z first, then pitch it toward the camera;
	// pitch-90 puts 0 at an elevation view and 90 at a plan view.
	// Screen X/Y are the transformed X/Y.
	return mgl64.HomogRotate3DX(mgl64.DegToRad(pitch - 90)).
		Mul4(mgl64.HomogRotate3DZ(mgl64.DegToRad(yaw)))
}

// Render projects every layer orthographically and draws the segments
// into a transparent canvas at supersampled resolution, then downsamples
// to the target size.
func Render(layers []Layer, opts Options) *image.NRGBA {
	size := opts.size()
	ss := opts.supersample()
	w := size * ss
	img := image.NewNRGBA(image.Rect(0, 0, w, w))

	view := opts.view()
	pts := projectAll(layers, view)
	if len(pts) == 0 {
		return Downsample(img, size, size)
	}

	// Fit the projected extent into the canvas with a margin.
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p[0])
		maxX = math.Max(maxX, p[0])
		minY = math.Min(minY, p[1])
		maxY = math.Max(maxY, p[1])
	}
	extent := math.Max(maxX-minX, maxY-minY)
	if extent < 1e-9 {
		extent = 1e-9
	}
	scale := float64(w) * 0.9 / extent
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	half := float64(w) / 2

	toScreen := func(v mgl64.Vec3) (float64, float64) {
		t := geometry.Apply(view, v)
		return (t.X()-cx)*scale + half, -(t.Y()-cy)*scale + half
	}

	for _, layer := range layers {
		for _, pl := range layer.Polylines {
			for i := 0; i+1 < len(pl); i++ {
				x0, y0 := toScreen(pl[i])
				x1, y1 := toScreen(pl[i+1])
				drawSegment(img, x0, y0, x1, y1, layer.Color)
			}
		}
		for _, l := range layer.Lines {
			x0, y0 := toScreen(l.From)
			x1, y1 := toScreen(l.To)
			drawSegment(img, x0, y0, x1, y1, layer.Color)
		}
	}

	return Downsample(img, size, size)
}

func projectAll(layers []Layer, view mgl64.Mat4) []mgl64.Vec3 {
	var pts []mgl64.Vec3
	for _, layer := range layers {
		for _, pl := range layer.Polylines {
			for _, v := range pl {
				pts = append(pts, geometry.Apply(view, v))
			}
		}
		for _, l := range layer.Lines {
			pts = append(pts, geometry.Apply(view, l.From), geometry.Apply(view, l.To))
		}
	}
	return pts
}

// drawSegment is a DDA rasterizer; the supersample pass hides the
// missing anti-aliasing.
func drawSegment(img *image.NRGBA, x0, y0, x1, y1 float64, c color.NRGBA) {
	dx, dy := x1-x0, y1-y0
	steps := int(math.Max(math.Abs(dx), math.Abs(dy))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(x0 + dx*t)
		y := int(y0 + dy*t)
		if image.Pt(x, y).In(img.Bounds()) {
			img.SetNRGBA(x, y, c)
		}
	}
}
