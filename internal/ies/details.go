package ies

import (
	"fmt"
	"math"
	"strings"
)

// Details formats a human-readable description of the parsed file. Every
// keyword value declared in the file is reproduced verbatim. The shape
// sentence follows the LM-63-2002 sign conventions; unrecognized
// dimension patterns surface as a ShapeError.
func Details(r *PhotometricRecord) (string, error) {
	shape, err := r.Shape()
	if err != nil {
		return "", err
	}

	lumens := fmt.Sprintf("%g", r.LumensPerLamp)
	if math.Round(r.LumensPerLamp) == -1 {
		lumens = "-1 (The photometry is absolute)"
	}

	var dims string
	switch shape {
	case ShapeRectangular:
		dims = fmt.Sprintf("%g,%g,%g.\nThe luminous opening is rectangular.",
			r.Width, r.Length, r.Height)
	case ShapeCircular:
		dims = fmt.Sprintf("%g,%g,%g.\n(The luminous opening is circular. %g is the diameter of the luminous opening)",
			r.Width, r.Length, r.Height, math.Abs(r.Width))
	case ShapeRectangularSides:
		dims = fmt.Sprintf("%g,%g,%g.\n(The luminous opening is rectangular with luminous sides.)",
			r.Width, r.Length, r.Height)
	case ShapePointSource:
		dims = fmt.Sprintf("%g,%g,%g.\n(The luminous opening is a point source. The IES data might be for a lamp)",
			r.Width, r.Length, r.Height)
	}

	var b strings.Builder
	if r.LumCat != "" {
		fmt.Fprintf(&b, "Luminaire Catalog Number: %s\n", r.LumCat)
	}
	if r.LumDesc != "" {
		fmt.Fprintf(&b, "Luminaire Description: %s\n", r.LumDesc)
	}
	if r.LampCat != "" {
		fmt.Fprintf(&b, "Lamp Catalog Number: %s\n", r.LampCat)
	}
	if r.LampDesc != "" {
		fmt.Fprintf(&b, "Lamp Description: %s\n\n", r.LampDesc)
	}

	fmt.Fprintf(&b, "Luminaire Manufacturer: %s\n", r.Manufacturer)
	fmt.Fprintf(&b, "IES File Format Type: %s\n", r.FormatType)
	fmt.Fprintf(&b, "Photometry Type: %s\n\n", r.Photometry)
	fmt.Fprintf(&b, "Number of Lamps: %d\n", r.LampCount)
	fmt.Fprintf(&b, "Lumens per lamp: %s\n", lumens)
	fmt.Fprintf(&b, "Units Type: %s\n", r.Units)
	fmt.Fprintf(&b, "Luminous Dimensions(width,length,height): %s\n\n", dims)
	fmt.Fprintf(&b, "Number of Vertical Angles:%d\n", r.VertAngleCount)
	fmt.Fprintf(&b, "Vertical Angle limits:%g,%g\n\n", r.VertAngles[0], r.VertAngles[len(r.VertAngles)-1])
	fmt.Fprintf(&b, "Number of Horizontal Angles: %d\n", r.HorzAngleCount)
	fmt.Fprintf(&b, "Horizontal Angle limits: %g,%g\n", r.HorzAngles[0], r.HorzAngles[len(r.HorzAngles)-1])

	return b.String(), nil
}
