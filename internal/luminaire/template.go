// Package luminaire instances shared photometric geometry templates into
// placed, oriented copies for a layout of luminaires.
package luminaire

import (
	"ies-luminaire/internal/geometry"
	"ies-luminaire/internal/ies"
	"ies-luminaire/internal/photoweb"
)

// Template is the shared geometry for one luminaire definition. It is
// built once per IES file and never mutated; every placement gets an
// independent transformed copy.
type Template struct {
	Opening  []geometry.Polyline
	Web      *photoweb.Web
	HorzAxis geometry.Line
	VertAxis geometry.Line
}

// NewTemplate builds the template geometry from a parsed record.
func NewTemplate(rec *ies.PhotometricRecord, opts photoweb.Options) (*Template, error) {
	opening, err := photoweb.Opening(rec, opts)
	if err != nil {
		return nil, err
	}
	web, err := photoweb.Build(rec, opts)
	if err != nil {
		return nil, err
	}
	horz, vert, err := photoweb.Axes(rec)
	if err != nil {
		return nil, err
	}
	return &Template{Opening: opening, Web: web, HorzAxis: horz, VertAxis: vert}, nil
}
