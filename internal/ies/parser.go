package ies

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// NotSpecified is the default for descriptive keywords absent from the
// file.
const NotSpecified = "Not specified in file."

// Parse reads and parses an LM-63 photometric file.
func Parse(path string) (*PhotometricRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ies: read %s: %w", path, err)
	}
	return ParseBytes(raw, path)
}

// ParseBytes parses LM-63 data. name appears in error messages only.
//
// Parsing happens in two passes: a line scan for descriptive keywords,
// then a flat token walk (commas count as whitespace) for the TILT block
// and the positional photometric fields.
func ParseBytes(data []byte, name string) (*PhotometricRecord, error) {
	text := string(data)

	rec := &PhotometricRecord{
		FormatType:   NotSpecified,
		LumCat:       NotSpecified,
		Manufacturer: NotSpecified,
		LumDesc:      NotSpecified,
		LampCat:      NotSpecified,
		LampDesc:     NotSpecified,
	}
	scanKeywords(rec, text)

	c := &cursor{
		toks: strings.Fields(strings.ReplaceAll(text, ",", " ")),
		file: name,
	}

	if err := parseTilt(rec, c); err != nil {
		return nil, err
	}

	var err error
	if rec.LampCount, err = c.nextInt(); err != nil {
		return nil, err
	}
	if rec.LumensPerLamp, err = c.nextFloat(); err != nil {
		return nil, err
	}
	if rec.CandelaMultiplier, err = c.nextFloat(); err != nil {
		return nil, err
	}
	if rec.VertAngleCount, err = c.nextInt(); err != nil {
		return nil, err
	}
	if rec.HorzAngleCount, err = c.nextInt(); err != nil {
		return nil, err
	}
	pt, err := c.nextInt()
	if err != nil {
		return nil, err
	}
	rec.Photometry = PhotometryType(pt)
	ut, err := c.nextInt()
	if err != nil {
		return nil, err
	}
	rec.Units = UnitType(ut)
	if rec.Width, err = c.nextFloat(); err != nil {
		return nil, err
	}
	if rec.Length, err = c.nextFloat(); err != nil {
		return nil, err
	}
	if rec.Height, err = c.nextFloat(); err != nil {
		return nil, err
	}
	if rec.BallastFactor, err = c.nextFloat(); err != nil {
		return nil, err
	}
	if rec.FutureUse, err = c.nextFloat(); err != nil {
		return nil, err
	}
	if rec.InputWatts, err = c.nextFloat(); err != nil {
		return nil, err
	}

	if rec.VertAngleCount <= 0 || rec.HorzAngleCount <= 0 {
		return nil, &FormatError{File: name, Offset: -1,
			Msg: fmt.Sprintf("angle counts must be positive, got %d vertical and %d horizontal",
				rec.VertAngleCount, rec.HorzAngleCount)}
	}

	if rec.VertAngles, err = c.nextFloats(rec.VertAngleCount); err != nil {
		return nil, err
	}
	if rec.HorzAngles, err = c.nextFloats(rec.HorzAngleCount); err != nil {
		return nil, err
	}

	// Candela table is row-major: outer horizontal, inner vertical,
	// immediately after the angle arrays.
	rec.Candela = make([][]float64, rec.HorzAngleCount)
	for h := range rec.Candela {
		if rec.Candela[h], err = c.nextFloats(rec.VertAngleCount); err != nil {
			return nil, err
		}
	}

	if rec.Photometry != TypeC {
		return nil, &UnsupportedPhotometryError{Type: rec.Photometry}
	}
	return rec, nil
}

// scanKeywords fills the descriptive fields from a line-wise pass.
// Matching is by substring, which also tolerates files that drop the
// brackets around MANUFAC.
func scanKeywords(rec *PhotometricRecord, text string) {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && rec.FormatType == NotSpecified {
			rec.FormatType = trimmed
		}
		fields := strings.Fields(line)
		rest := ""
		if len(fields) > 1 {
			rest = strings.Join(fields[1:], " ")
		}
		switch {
		case strings.Contains(line, "[LUMCAT]"):
			rec.LumCat = rest
		case strings.Contains(line, "MANUFAC"):
			rec.Manufacturer = rest
		case strings.Contains(line, "[LUMINAIRE]"):
			rec.LumDesc = rest
		case strings.Contains(line, "[LAMPCAT]"):
			rec.LampCat = rest
		case strings.Contains(line, "[LAMP]"):
			rec.LampDesc = rest
		}
	}
}

// parseTilt positions the cursor just past the TILT directive, reading
// the tilt block when one is declared.
func parseTilt(rec *PhotometricRecord, c *cursor) error {
	idx := -1
	for i, t := range c.toks {
		if strings.HasPrefix(t, "TILT=") {
			idx = i
			break
		}
	}
	if idx < 0 {
		return &FormatError{File: c.file, Offset: -1, Msg: "missing TILT directive"}
	}

	switch c.toks[idx] {
	case "TILT=NONE":
		c.pos = idx + 1
	case "TILT=INCLUDE":
		c.pos = idx + 1
		ti := &TiltInfo{}
		var err error
		if ti.LampGeometry, err = c.nextFloat(); err != nil {
			return err
		}
		if ti.AngleCount, err = c.nextInt(); err != nil {
			return err
		}
		if ti.AngleCount <= 0 {
			return &FormatError{File: c.file, Offset: c.pos - 1,
				Msg: fmt.Sprintf("tilt angle count must be positive, got %d", ti.AngleCount)}
		}
		if ti.Angles, err = c.nextFloats(ti.AngleCount); err != nil {
			return err
		}
		if ti.Multipliers, err = c.nextFloats(ti.AngleCount); err != nil {
			return err
		}
		rec.Tilt = ti
	default:
		return &FormatError{File: c.file, Offset: idx,
			Msg: fmt.Sprintf("unsupported TILT directive %q", c.toks[idx])}
	}
	return nil
}

// cursor walks the flattened token stream with bounds checking.
type cursor struct {
	toks []string
	pos  int
	file string
}

func (c *cursor) next() (string, error) {
	if c.pos >= len(c.toks) {
		return "", &FormatError{File: c.file, Offset: c.pos, Msg: "unexpected end of data"}
	}
	t := c.toks[c.pos]
	c.pos++
	return t, nil
}

func (c *cursor) nextFloat() (float64, error) {
	t, err := c.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, &FormatError{File: c.file, Offset: c.pos - 1,
			Msg: fmt.Sprintf("expected number, got %q", t)}
	}
	return v, nil
}

func (c *cursor) nextInt() (int, error) {
	t, err := c.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(t)
	if err != nil {
		return 0, &FormatError{File: c.file, Offset: c.pos - 1,
			Msg: fmt.Sprintf("expected integer, got %q", t)}
	}
	return v, nil
}

func (c *cursor) nextFloats(n int) ([]float64, error) {
	out := make([]float64, n)
	for i := range out {
		v, err := c.nextFloat()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
