package preview

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample shrinks a supersampled render to width x height with
// premultiplied-alpha CatmullRom filtering. Scaling straight NRGBA would
// bleed the transparent background into the line colors and leave dark
// halos.
func Downsample(img *image.NRGBA, width, height int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= width && b.Dy() <= height {
		return img
	}

	src := premultiply(img)
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return unpremultiply(dst)
}

func premultiply(img *image.NRGBA) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	for i := 0; i < len(img.Pix); i += 4 {
		a := uint32(img.Pix[i+3])
		out.Pix[i] = uint8((uint32(img.Pix[i])*a + 127) / 255)
		out.Pix[i+1] = uint8((uint32(img.Pix[i+1])*a + 127) / 255)
		out.Pix[i+2] = uint8((uint32(img.Pix[i+2])*a + 127) / 255)
		out.Pix[i+3] = uint8(a)
	}
	return out
}

func unpremultiply(img *image.RGBA) *image.NRGBA {
	out := image.NewNRGBA(img.Bounds())
	for i := 0; i < len(img.Pix); i += 4 {
		a := uint32(img.Pix[i+3])
		if a > 0 {
			out.Pix[i] = clampChan(uint32(img.Pix[i]) * 255 / a)
			out.Pix[i+1] = clampChan(uint32(img.Pix[i+1]) * 255 / a)
			out.Pix[i+2] = clampChan(uint32(img.Pix[i+2]) * 255 / a)
		}
		out.Pix[i+3] = uint8(a)
	}
	return out
}

func clampChan(v uint32) uint8 {
	if v > 255 {
		return 255
	}
	return uint8(v)
}
