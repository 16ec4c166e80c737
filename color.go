package mtl

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color holds one of three alternative color representations: an RGB
// triple, a CIE-XYZ triple, or a spectral curve reference. At most one
// representation is populated per source statement; Parsed reports whether
// any of them was.
type Color struct {
	RGB      Triple   `json:"rgb,omitempty" yaml:"rgb,omitempty"`           // RGB components [0..1]
	XYZ      Triple   `json:"xyz,omitempty" yaml:"xyz,omitempty"`           // CIE tristimulus values
	Spectral Spectral `json:"spectral,omitempty" yaml:"spectral,omitempty"` // Spectral curve reference
	Parsed   bool     `json:"parsed,omitempty" yaml:"parsed,omitempty"`     // Whether any representation was supplied
}

// decode dispatches on the leading keyword of the value text: "spectral"
// routes to the spectral slot, "xyz" to the CIE slot, anything else is read
// directly as an RGB triple.
func (col Color) decode(rest string) (Color, bool) {
	if strings.HasPrefix(rest, "spectral ") {
		c := cursor{s: rest, pos: len("spectral ")}
		sp, ok := col.Spectral.decode(&c)
		if !ok {
			return col, false
		}

		col.Spectral = sp
		col.Parsed = true
		return col, true
	}

	if strings.HasPrefix(rest, "xyz ") {
		c := cursor{s: rest, pos: len("xyz ")}
		t, ok := col.XYZ.decode(&c)
		if !ok {
			return col, false
		}

		col.XYZ = t
		col.Parsed = true
		return col, true
	}

	c := cursor{s: rest}
	t, ok := col.RGB.decode(&c)
	if !ok {
		return col, false
	}

	col.RGB = t
	col.Parsed = true
	return col, true
}

// decodeColor decodes a value line into a color field, committing only on
// success.
func decodeColor(dst *Color, rest string) bool {
	col, ok := dst.decode(rest)
	if ok {
		*dst = col
	}

	return ok
}

// Colorful returns the color as an sRGB go-colorful value. RGB triples map
// directly; CIE-XYZ triples are converted. It reports false for spectral
// references and colors that were never parsed.
func (col Color) Colorful() (colorful.Color, bool) {
	switch {
	case col.RGB.Parsed:
		return colorful.Color{R: col.RGB.X, G: col.RGB.Y, B: col.RGB.Z}, true
	case col.XYZ.Parsed:
		return colorful.Xyz(col.XYZ.X, col.XYZ.Y, col.XYZ.Z), true
	default:
		return colorful.Color{}, false
	}
}

// clearParsed drops provenance from every representation.
func (col *Color) clearParsed() {
	col.RGB.Parsed = false
	col.XYZ.Parsed = false
	col.Spectral.Parsed = false
	col.Parsed = false
}
