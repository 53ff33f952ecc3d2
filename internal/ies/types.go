// Package ies parses IES LM-63 photometric files into an in-memory
// record. The parsing follows IES LM-63-2002; only type C photometry is
// accepted.
package ies

import (
	"fmt"
	"math"
)

// PhotometryType is the angular coordinate convention declared by the
// file. Type C (vertical 0-180, horizontal 0-360) is the common case for
// architectural luminaires and the only one this package supports.
type PhotometryType int

const (
	TypeC PhotometryType = 1
	TypeB PhotometryType = 2
	TypeA PhotometryType = 3
)

func (p PhotometryType) String() string {
	switch p {
	case TypeC:
		return "C"
	case TypeB:
		return "B"
	case TypeA:
		return "A"
	}
	return fmt.Sprintf("unknown(%d)", int(p))
}

// UnitType is the length unit the luminous dimensions are given in.
type UnitType int

const (
	UnitFeet   UnitType = 1
	UnitMeters UnitType = 2
)

func (u UnitType) String() string {
	switch u {
	case UnitFeet:
		return "feet"
	case UnitMeters:
		return "meters"
	}
	return fmt.Sprintf("unknown(%d)", int(u))
}

// MeterScale returns the factor that converts file units to meters.
// The feet factor is the legacy 0.304 rather than the exact 0.3048.
func (u UnitType) MeterScale() float64 {
	if u == UnitFeet {
		return 0.304
	}
	return 1
}

// TiltInfo holds the TILT=INCLUDE block: lamp-to-luminaire geometry flag
// plus paired tilt angles and multiplying factors.
type TiltInfo struct {
	LampGeometry float64
	AngleCount   int
	Angles       []float64
	Multipliers  []float64
}

// PhotometricRecord is a parsed LM-63 file. Treat it as immutable once
// returned by the parser; downstream geometry builders copy what they
// need instead of writing back.
type PhotometricRecord struct {
	// FormatType is the first non-blank line of the file,
	// e.g. "IESNA:LM-63-2002".
	FormatType string

	// Descriptive keyword values. Keywords absent from the file keep the
	// default "Not specified in file.".
	LumCat       string // [LUMCAT]
	Manufacturer string // [MANUFAC]
	LumDesc      string // [LUMINAIRE]
	LampCat      string // [LAMPCAT]
	LampDesc     string // [LAMP]

	// Tilt is nil when the file declares TILT=NONE.
	Tilt *TiltInfo

	LampCount         int
	LumensPerLamp     float64 // -1 means the photometry is absolute
	CandelaMultiplier float64
	VertAngleCount    int
	HorzAngleCount    int
	Photometry        PhotometryType
	Units             UnitType

	// Luminous opening dimensions in file units. The sign/zero pattern
	// encodes the opening shape, see Shape.
	Width, Length, Height float64

	BallastFactor float64
	FutureUse     float64
	InputWatts    float64

	VertAngles []float64 // degrees, ascending
	HorzAngles []float64 // degrees, ascending

	// Candela is indexed [horizontal][vertical]; len(Candela) equals
	// HorzAngleCount and every row has VertAngleCount entries.
	Candela [][]float64
}

// OpeningShape classifies the luminous opening.
type OpeningShape int

const (
	ShapeRectangular OpeningShape = iota
	ShapeCircular
	ShapeRectangularSides
	ShapePointSource
)

func (s OpeningShape) String() string {
	switch s {
	case ShapeRectangular:
		return "rectangular"
	case ShapeCircular:
		return "circular"
	case ShapeRectangularSides:
		return "rectangular with luminous sides"
	case ShapePointSource:
		return "point source"
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// Shape classifies the luminous opening from the sign/zero pattern of the
// dimensions. Exactly one of the four LM-63 patterns must hold; any other
// combination is a ShapeError.
func (r *PhotometricRecord) Shape() (OpeningShape, error) {
	w, l, h := r.Width, r.Length, r.Height
	switch {
	case w > 0 && l > 0 && round2(h) == 0:
		return ShapeRectangular, nil
	case w < 0 && round2(l) == 0 && round2(h) == 0:
		return ShapeCircular, nil
	case w > 0 && l > 0 && h > 0:
		return ShapeRectangularSides, nil
	case int(w) == 0 && int(l) == 0 && int(h) == 0:
		return ShapePointSource, nil
	}
	return 0, &ShapeError{Width: w, Length: l, Height: h}
}

// round2 rounds to two decimals, matching the tolerance the shape
// classification has always used.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
