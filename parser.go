package mtl

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"
)

// Document is the decoded content of one MTL source: its materials in
// source order plus the comment lines from the file header.
type Document struct {
	Comments  []string   `json:"comments,omitempty" yaml:"comments,omitempty"`   // Header comments, marker stripped
	Materials []Material `json:"materials,omitempty" yaml:"materials,omitempty"` // Materials in source order
}

// Lookup returns the first material with the given name, by exact match.
func (d *Document) Lookup(name string) (*Material, bool) {
	for i := range d.Materials {
		if d.Materials[i].Name.Value == name {
			return &d.Materials[i], true
		}
	}

	return nil, false
}

// Parse decodes an MTL document from bytes.
func Parse(data []byte, opt *DecodeOptions) (*Document, error) {
	return Decode(bytes.NewReader(data), opt)
}

// Decode decodes an MTL document from a reader.
func Decode(r io.Reader, opt *DecodeOptions) (*Document, error) {
	d := NewDecoder(opt)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		d.DecodeLine(sc.Text())
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return d.Document()
}

// DecodeFile decodes an MTL document from a file.
func DecodeFile(path string, opt *DecodeOptions) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(b, opt)
}

// Decoder decodes an MTL document line by line. Use it when lines arrive
// from somewhere other than a plain byte stream; Decode wraps it for the
// common case.
type Decoder struct {
	doc      Document // Document under construction
	template Material // Seed for each new material, provenance cleared
}

// NewDecoder creates a decoder seeded with one material built from the
// options' template.
func NewDecoder(opt *DecodeOptions) *Decoder {
	dopt := opt.normalize()
	d := &Decoder{template: dopt.template()}
	d.doc.Materials = append(d.doc.Materials, d.template)

	return d
}

// DecodeLine processes one source line and reports whether it was
// recognized and applied. Blank lines, unknown keywords, and lines whose
// value failed to decode report false; in every case the document is left
// consistent and decoding may continue with the next line.
func (d *Decoder) DecodeLine(raw string) bool {
	line := strings.TrimSpace(raw)
	if line == "" {
		return false
	}

	last := len(d.doc.Materials) - 1
	m := &d.doc.Materials[last]

	// Comments count as header content until the first material is named.
	if line[0] == '#' {
		if last == 0 && !m.Name.Parsed {
			d.doc.Comments = append(d.doc.Comments, strings.TrimSpace(line[1:]))
		}

		return true
	}

	if strings.HasPrefix(line, "newmtl ") {
		if m.Name.Parsed {
			d.doc.Materials = append(d.doc.Materials, d.template)
			m = &d.doc.Materials[len(d.doc.Materials)-1]
		}

		m.Name.Set(strings.TrimSpace(line[len("newmtl "):]))
		return true
	}

	for _, kw := range keywords {
		if strings.HasPrefix(line, kw.keyword) {
			return kw.apply(m, line[len(kw.keyword):])
		}
	}

	return false
}

// Document finalizes the decode. It fails with ErrNoMaterial when the
// source never named a material; the partially built document is still
// returned for inspection.
func (d *Decoder) Document() (*Document, error) {
	if !d.doc.Materials[0].Name.Parsed {
		return &d.doc, ErrNoMaterial
	}

	return &d.doc, nil
}

// dispatch binds one statement keyword to the decoder of its field. The
// keyword includes its trailing space, which keeps the entries pairwise
// non-overlapping regardless of table order.
type dispatch struct {
	keyword string                              // Statement keyword with trailing space
	apply   func(m *Material, rest string) bool // Field decoder
}

// keywords is the statement dispatch table, built once.
var keywords = []dispatch{
	{"Kd ", func(m *Material, rest string) bool { return decodeColor(&m.Diffuse, rest) }},
	{"Ka ", func(m *Material, rest string) bool { return decodeColor(&m.Ambient, rest) }},
	{"Ks ", func(m *Material, rest string) bool { return decodeColor(&m.Specular, rest) }},
	{"Tf ", func(m *Material, rest string) bool { return decodeColor(&m.Transmission, rest) }},
	{"Ke ", func(m *Material, rest string) bool { return decodeColor(&m.Emissive, rest) }},
	{"Ns ", func(m *Material, rest string) bool { return decodeFloat(&m.Shininess, rest) }},
	{"sharpness ", func(m *Material, rest string) bool { return decodeFloat(&m.Sharpness, rest) }},
	{"d ", func(m *Material, rest string) bool { return decodeOpacity(&m.Opacity, rest) }},
	{"illum ", func(m *Material, rest string) bool { return decodeInt(&m.Illum, rest) }},
	{"Ni ", func(m *Material, rest string) bool { return decodeFloat(&m.OpticalDensity, rest) }},
	{"Tr ", func(m *Material, rest string) bool { return decodeFloat(&m.Transparency, rest) }},
	{"Pr ", func(m *Material, rest string) bool { return decodeFloat(&m.Roughness, rest) }},
	{"Pm ", func(m *Material, rest string) bool { return decodeFloat(&m.Metalness, rest) }},
	{"Ps ", func(m *Material, rest string) bool { return decodeFloat(&m.Sheen, rest) }},
	{"Pc ", func(m *Material, rest string) bool { return decodeFloat(&m.ClearcoatThickness, rest) }},
	{"Pcr ", func(m *Material, rest string) bool { return decodeFloat(&m.ClearcoatRoughness, rest) }},
	{"aniso ", func(m *Material, rest string) bool { return decodeFloat(&m.Anisotropy, rest) }},
	{"anisor ", func(m *Material, rest string) bool { return decodeFloat(&m.AnisotropyRotation, rest) }},
	{"map_Kd ", func(m *Material, rest string) bool { return decodeTexture(&m.DiffuseMap, rest) }},
	{"map_Ka ", func(m *Material, rest string) bool { return decodeTexture(&m.AmbientMap, rest) }},
	{"map_Ks ", func(m *Material, rest string) bool { return decodeTexture(&m.SpecularMap, rest) }},
	{"map_Ns ", func(m *Material, rest string) bool { return decodeTexture(&m.ShininessMap, rest) }},
	{"map_Pr ", func(m *Material, rest string) bool { return decodeTexture(&m.RoughnessMap, rest) }},
	{"map_Pm ", func(m *Material, rest string) bool { return decodeTexture(&m.MetalnessMap, rest) }},
	{"map_Ps ", func(m *Material, rest string) bool { return decodeTexture(&m.SheenMap, rest) }},
	{"map_d ", func(m *Material, rest string) bool { return decodeTexture(&m.OpacityMap, rest) }},
	{"map_bump ", func(m *Material, rest string) bool { return decodeTexture(&m.BumpMap, rest) }},
	{"map_Po ", func(m *Material, rest string) bool { return decodeTexture(&m.OcclusionMap, rest) }},
	{"map_Ke ", func(m *Material, rest string) bool { return decodeTexture(&m.EmissiveMap, rest) }},
	{"norm ", func(m *Material, rest string) bool { return decodeTexture(&m.NormalMap, rest) }},
	{"map_RMA ", func(m *Material, rest string) bool { return decodeTexture(&m.RMAMap, rest) }},
	{"map_ORM ", func(m *Material, rest string) bool { return decodeTexture(&m.ORMMap, rest) }},
	{"disp ", func(m *Material, rest string) bool { return decodeTexture(&m.Displacement, rest) }},
	{"decal ", func(m *Material, rest string) bool { return decodeTexture(&m.Decal, rest) }},
	{"bump ", func(m *Material, rest string) bool { return decodeTexture(&m.Bump, rest) }},
	{"refl ", func(m *Material, rest string) bool { return decodeReflection(&m.Reflection, rest) }},
}
