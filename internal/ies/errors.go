package ies

import "fmt"

// FormatError reports a malformed or truncated LM-63 token stream.
type FormatError struct {
	File   string
	Offset int // index into the flattened token stream, -1 when unknown
	Msg    string
}

func (e *FormatError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("ies: %s: token %d: %s", e.File, e.Offset, e.Msg)
	}
	return fmt.Sprintf("ies: %s: %s", e.File, e.Msg)
}

// UnsupportedPhotometryError reports a file whose photometry is not
// type C. Type B data can be converted externally (e.g. with the
// Photometric Toolbox) before being fed in here.
type UnsupportedPhotometryError struct {
	Type PhotometryType
}

func (e *UnsupportedPhotometryError) Error() string {
	return fmt.Sprintf("ies: type %s photometry is not supported, only type C", e.Type)
}

// ShapeError reports luminous-opening dimensions that match none of the
// four recognized patterns.
type ShapeError struct {
	Width, Length, Height float64
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("ies: luminous dimensions (%g,%g,%g) are neither rectangular, circular, rectangular with sides nor a point source",
		e.Width, e.Length, e.Height)
}
