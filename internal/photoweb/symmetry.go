// Package photoweb turns a type C photometric record into a 3D curve
// network (the photometric web), a luminous-opening outline and a pair
// of reference axes, all in the luminaire local frame: apex at origin,
// nadir along -Z.
package photoweb

import "fmt"

// DefaultMaxMirrorPasses bounds the symmetry mirroring loop. Four passes
// cover even 0-90 quadrant symmetry; the bound is a safety guard against
// disordered angle tables, not an LM-63 invariant, so Options can raise
// it.
const DefaultMaxMirrorPasses = 4

// SymmetryError reports a horizontal angle table that cannot be expanded
// to the full circle.
type SymmetryError struct {
	Reason string
}

func (e *SymmetryError) Error() string {
	return "photoweb: " + e.Reason
}

// ExpandSymmetry grows a partial horizontal angle table to the full
// 0-360 range, duplicating candela rows per the symmetry the table
// declares:
//
//   - a single angle means rotational symmetry: the row is replicated
//     every 10 degrees around the circle;
//   - a table starting at 0 and ending short of 360 is mirrored about its
//     last angle until the circle closes (quadrant and half symmetry);
//   - a table still starting past 0 after mirroring (90-270 style
//     symmetry) gets partial mirrors at both ends, trimmed to [0,360].
//
// The input slices are never modified; returned rows are independent
// copies.
func ExpandSymmetry(horz []float64, candela [][]float64, maxPasses int) ([]float64, [][]float64, error) {
	if maxPasses <= 0 {
		maxPasses = DefaultMaxMirrorPasses
	}
	if len(horz) == 0 {
		return nil, nil, &SymmetryError{Reason: "horizontal angle table is empty"}
	}
	for i := 1; i < len(horz); i++ {
		if horz[i] < horz[i-1] {
			return nil, nil, &SymmetryError{Reason: "horizontal angles are not in ascending order"}
		}
	}

	if len(horz) == 1 {
		h := make([]float64, 0, 37)
		rows := make([][]float64, 0, 37)
		for a := 0; a <= 360; a += 10 {
			h = append(h, float64(a))
			rows = append(rows, cloneRow(candela[0]))
		}
		return h, rows, nil
	}

	h := append([]float64(nil), horz...)
	rows := cloneRows(candela)

	passes := 0
	for h[0] == 0 && h[len(h)-1] < 360 {
		passes++
		if passes > maxPasses {
			return nil, nil, &SymmetryError{
				Reason: fmt.Sprintf("symmetry mirroring exceeded %d passes; the horizontal angles are not in order", maxPasses)}
		}
		n := len(h)
		last := h[n-1]
		// Reflect every angle but the shared boundary about the last
		// angle, and mirror the candela rows to match.
		for i := n - 2; i >= 0; i-- {
			h = append(h, 2*last-h[i])
			rows = append(rows, cloneRow(rows[i]))
		}
	}

	// 90-270 style symmetry: the table never reached 0, so mirror the
	// short ends using the complementary interval lengths and trim
	// anything outside [0,360].
	if h[0] > 0 {
		n := len(h)
		var low []float64
		for i := 1; i < n; i++ {
			if v := 2*h[0] - h[i]; v >= 0 {
				low = append(low, v)
			}
		}
		reverseFloats(low) // ascending
		var high []float64
		for i := 1; i < n; i++ {
			if v := 2*h[n-1] - h[n-1-i]; v <= 360 {
				high = append(high, v)
			}
		}

		lowRows := reverseRows(cloneRows(rows[1 : len(low)+1]))
		highRows := reverseRows(cloneRows(rows[len(rows)-len(high)-1 : len(rows)-1]))

		merged := make([]float64, 0, len(low)+len(h)+len(high))
		merged = append(merged, low...)
		merged = append(merged, h...)
		merged = append(merged, high...)

		mergedRows := make([][]float64, 0, len(lowRows)+len(rows)+len(highRows))
		mergedRows = append(mergedRows, lowRows...)
		mergedRows = append(mergedRows, rows...)
		mergedRows = append(mergedRows, highRows...)

		h, rows = merged, mergedRows
	}

	return h, rows, nil
}

func cloneRow(row []float64) []float64 {
	return append([]float64(nil), row...)
}

func cloneRows(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = cloneRow(r)
	}
	return out
}

func reverseFloats(s []float64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseRows(s [][]float64) [][]float64 {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	return s
}
