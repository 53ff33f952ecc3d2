// Package export writes instanced luminaire geometry to Wavefront OBJ,
// the lowest common denominator for downstream viewers.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl64"

	"ies-luminaire/internal/geometry"
	"ies-luminaire/internal/luminaire"
)

// WriteOBJ writes every instance as one OBJ object: web strips become
// quad faces, opening outlines and axes become polyline elements.
func WriteOBJ(w io.Writer, instances []*luminaire.Instance) error {
	bw := bufio.NewWriter(w)
	ob := objBuilder{w: bw}

	for i, inst := range instances {
		fmt.Fprintf(bw, "o luminaire_%d\n", i+1)
		for _, s := range inst.Strips {
			ob.strip(s)
		}
		for _, pl := range inst.Opening {
			ob.polyline(pl)
		}
		for _, pl := range inst.Curves {
			ob.polyline(pl)
		}
		for _, l := range inst.Axes {
			ob.polyline(geometry.Polyline{l.From, l.To})
		}
		if inst.AimLine != nil {
			ob.polyline(geometry.Polyline{inst.AimLine.From, inst.AimLine.To})
		}
	}

	return bw.Flush()
}

// WriteOBJFile writes the instances to path.
func WriteOBJFile(path string, instances []*luminaire.Instance) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer f.Close()
	if err := WriteOBJ(f, instances); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}

type objBuilder struct {
	w     *bufio.Writer
	count int // vertices emitted so far; OBJ indices are 1-based
}

func (b *objBuilder) vertex(v mgl64.Vec3) int {
	fmt.Fprintf(b.w, "v %g %g %g\n", v.X(), v.Y(), v.Z())
	b.count++
	return b.count
}

func (b *objBuilder) polyline(pl geometry.Polyline) {
	if len(pl) < 2 {
		return
	}
	first := b.vertex(pl[0])
	for _, v := range pl[1:] {
		b.vertex(v)
	}
	b.w.WriteString("l")
	for i := 0; i < len(pl); i++ {
		fmt.Fprintf(b.w, " %d", first+i)
	}
	b.w.WriteString("\n")
}

func (b *objBuilder) strip(s geometry.Strip) {
	if len(s.A) != len(s.B) || len(s.A) < 2 {
		return
	}
	firstA := b.vertex(s.A[0])
	for _, v := range s.A[1:] {
		b.vertex(v)
	}
	firstB := b.vertex(s.B[0])
	for _, v := range s.B[1:] {
		b.vertex(v)
	}
	for i := 0; i+1 < len(s.A); i++ {
		fmt.Fprintf(b.w, "f %d %d %d %d\n", firstA+i, firstA+i+1, firstB+i+1, firstB+i)
	}
}
