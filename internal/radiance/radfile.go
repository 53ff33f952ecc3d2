package radiance

import (
	"fmt"
	"os"
	"strings"
)

// ArrayEntry instances one placed luminaire from its zone rad file,
// following the LM-63 mounting convention: spin and rotate about Z with
// the tilt about Y between them.
type ArrayEntry struct {
	Spin, Tilt, Rotate float64
	X, Y, Z            float64
	RadPath            string
}

// XformLine renders the entry as an in-line xform command.
func (e ArrayEntry) XformLine() string {
	return fmt.Sprintf("!xform -rz %g -ry %g -rz %g -t %g %g %g %s",
		e.Spin, e.Tilt, e.Rotate, e.X, e.Y, e.Z, e.RadPath)
}

// WriteArrayFile writes the aggregate rad file with one xform line per
// placement. This is the file a daylight simulation includes.
func WriteArrayFile(path string, entries []ArrayEntry) error {
	var b strings.Builder
	b.WriteString("#Radfile created by the IES photometry toolkit\n")
	for _, e := range entries {
		b.WriteString(e.XformLine())
		b.WriteString("\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("radiance: write array file %s: %w", path, err)
	}
	return nil
}
