package mtl

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDecodeSamples(t *testing.T) {
	files := []string{"basic.mtl", "multi.mtl"}
	for _, f := range files {
		doc, err := DecodeFile(filepath.Join("testdata", f), nil)
		if err != nil {
			t.Fatalf("decode %s: %v", f, err)
		}
		if len(doc.Materials) != 2 {
			t.Fatalf("expected 2 materials in %s, got %d", f, len(doc.Materials))
		}
	}
}

func TestDecodeFileMissing(t *testing.T) {
	if _, err := DecodeFile(filepath.Join("testdata", "nope.mtl"), nil); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestEndToEnd(t *testing.T) {
	input := `
# header
newmtl mat_1
Ka 0.328013 0.328013 0.328013
Kd 0.627451 0.627451 0.627451
Ns 750.000000
newmtl mat_2
Ka 0.031400 0.031400 0.031400
Kd 0.098039 0.098039 0.098039
Ks 0.977692 0.968577 0.945277
`
	doc, err := Parse([]byte(input), nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if !reflect.DeepEqual(doc.Comments, []string{"header"}) {
		t.Fatalf("comments = %v", doc.Comments)
	}
	if len(doc.Materials) != 2 {
		t.Fatalf("materials = %d", len(doc.Materials))
	}

	m1, m2 := &doc.Materials[0], &doc.Materials[1]
	if m1.Name.Value != "mat_1" || m2.Name.Value != "mat_2" {
		t.Fatalf("names = %q, %q", m1.Name.Value, m2.Name.Value)
	}
	if !m1.Ambient.Parsed || m1.Ambient.RGB.X != 0.328013 {
		t.Fatalf("mat_1 Ka = %+v", m1.Ambient)
	}
	if !m1.Shininess.Parsed || m1.Shininess.Value != 750 {
		t.Fatalf("mat_1 Ns = %+v", m1.Shininess)
	}
	if m1.Specular.Parsed {
		t.Fatalf("mat_1 Ks should be unparsed")
	}
	if m2.Shininess.Parsed || m2.Shininess.Value != 0 {
		t.Fatalf("mat_2 Ns should keep the template default: %+v", m2.Shininess)
	}
	if !m2.Specular.Parsed || m2.Specular.RGB != (Triple{X: 0.977692, Y: 0.968577, Z: 0.945277, Parsed: true}) {
		t.Fatalf("mat_2 Ks = %+v", m2.Specular)
	}
}

func TestHeaderComments(t *testing.T) {
	input := `# one
# two
newmtl m
# ignored after first material
Kd 1 0 0
`
	doc, err := Parse([]byte(input), nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !reflect.DeepEqual(doc.Comments, []string{"one", "two"}) {
		t.Fatalf("comments = %v", doc.Comments)
	}
}

func TestNoMaterial(t *testing.T) {
	doc, err := Parse([]byte("Kd 1 0 0\n# comment\n"), nil)
	if !errors.Is(err, ErrNoMaterial) {
		t.Fatalf("expected ErrNoMaterial, got %v", err)
	}
	// The partial document is still inspectable.
	if doc == nil || len(doc.Materials) != 1 || doc.Materials[0].Name.Parsed {
		t.Fatalf("partial document = %+v", doc)
	}
	if !doc.Materials[0].Diffuse.Parsed {
		t.Fatalf("decoded fields should remain visible on the sentinel")
	}
}

func TestMalformedLinesAreSkipped(t *testing.T) {
	input := `newmtl m
Kd 0.5
Kd not-a-color
Ns abc
Ns 5
illum x
strange keyword line
`
	doc, err := Parse([]byte(input), nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	m := &doc.Materials[0]
	if m.Diffuse.RGB != (Triple{X: 0.5, Y: 0.5, Z: 0.5, Parsed: true}) {
		t.Fatalf("failed Kd line must not disturb the prior value: %+v", m.Diffuse.RGB)
	}
	if !m.Shininess.Parsed || m.Shininess.Value != 5 {
		t.Fatalf("Ns = %+v", m.Shininess)
	}
	if m.Illum.Parsed {
		t.Fatalf("illum should stay unparsed")
	}
}

func TestDefaultOverlay(t *testing.T) {
	tpl := NewMaterial()
	if ok := decodeColor(&tpl.Ambient, "1 0 0"); !ok {
		t.Fatalf("template setup failed")
	}
	tpl.Name.Set("previous")

	d := NewDecoder(&DecodeOptions{Template: &tpl})
	first := &d.doc.Materials[0]
	if first.Name.Parsed {
		t.Fatalf("template name must not count as parsed")
	}
	if first.Ambient.Parsed || first.Ambient.RGB.Parsed {
		t.Fatalf("template Ka must not count as parsed: %+v", first.Ambient)
	}
	if first.Ambient.RGB.X != 1 || first.Ambient.RGB.Y != 0 || first.Ambient.RGB.Z != 0 {
		t.Fatalf("template Ka value lost: %+v", first.Ambient.RGB)
	}

	// The template value survives a decode that never reassigns it.
	doc, err := Parse([]byte("newmtl a\nKd 0.2\n"), &DecodeOptions{Template: &tpl})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	m := &doc.Materials[0]
	if m.Ambient.Parsed || m.Ambient.RGB.X != 1 {
		t.Fatalf("overlay Ka = %+v", m.Ambient)
	}
	if !m.Diffuse.Parsed {
		t.Fatalf("decoded Kd must be parsed")
	}
}

func TestLookup(t *testing.T) {
	doc, err := DecodeFile(filepath.Join("testdata", "multi.mtl"), nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	m, ok := doc.Lookup("brushed_metal")
	if !ok || m.Name.Value != "brushed_metal" {
		t.Fatalf("lookup = %+v, %v", m, ok)
	}
	if !m.Roughness.Parsed || m.Roughness.Value != 0.35 {
		t.Fatalf("Pr = %+v", m.Roughness)
	}

	if _, ok := doc.Lookup("missing"); ok {
		t.Fatalf("expected lookup miss")
	}
}

func TestDecoderStreaming(t *testing.T) {
	input := `# header
newmtl m
Kd 0.1 0.2 0.3
d -halo 0.5
`
	d := NewDecoder(nil)
	for _, line := range strings.Split(input, "\n") {
		d.DecodeLine(line)
	}
	got, err := d.Document()
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}

	want, err := Parse([]byte(input), nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("streaming decode differs:\n%+v\n%+v", got, want)
	}
}

func TestDecodeLineReport(t *testing.T) {
	d := NewDecoder(nil)
	tests := []struct {
		line string
		want bool
	}{
		{"", false},
		{"# header", true},
		{"newmtl m", true},
		{"Kd 0.5", true},
		{"Kd banana", false},
		{"Zz 1 2 3", false},
	}
	for _, tt := range tests {
		if got := d.DecodeLine(tt.line); got != tt.want {
			t.Fatalf("DecodeLine(%q) = %v; want %v", tt.line, got, tt.want)
		}
	}
}

func TestMultiMaterialFields(t *testing.T) {
	doc, err := DecodeFile(filepath.Join("testdata", "multi.mtl"), nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	glass, ok := doc.Lookup("glass")
	if !ok {
		t.Fatalf("glass missing")
	}
	if !glass.Diffuse.XYZ.Parsed || glass.Diffuse.RGB.Parsed {
		t.Fatalf("glass Kd = %+v", glass.Diffuse)
	}
	if glass.Specular.Spectral.File != "halogen.rad" || glass.Specular.Spectral.Factor != 0.5 {
		t.Fatalf("glass Ks = %+v", glass.Specular.Spectral)
	}
	if glass.Opacity != (Opacity{Value: 0.66, Halo: true, Parsed: true}) {
		t.Fatalf("glass d = %+v", glass.Opacity)
	}
	if glass.Reflection.Sphere.File.Value != "clouds.mpc" {
		t.Fatalf("glass refl sphere = %+v", glass.Reflection.Sphere.File)
	}
	if glass.Reflection.CubeTop.File.Value != "cloud_top.mpc" {
		t.Fatalf("glass refl cube_top = %+v", glass.Reflection.CubeTop.File)
	}

	metal, ok := doc.Lookup("brushed_metal")
	if !ok {
		t.Fatalf("brushed_metal missing")
	}
	if !metal.DiffuseMap.BlendU.Parsed || !metal.DiffuseMap.BlendU.Value {
		t.Fatalf("map_Kd blendu = %+v", metal.DiffuseMap.BlendU)
	}
	if !metal.DiffuseMap.BlendV.Parsed || metal.DiffuseMap.BlendV.Value {
		t.Fatalf("map_Kd blendv = %+v", metal.DiffuseMap.BlendV)
	}
	if metal.DiffuseMap.BumpMultiplier.Value != 0.8 {
		t.Fatalf("map_Kd bm = %+v", metal.DiffuseMap.BumpMultiplier)
	}
	if metal.RoughnessMap.Channel.Value != 'r' {
		t.Fatalf("map_Pr imfchan = %+v", metal.RoughnessMap.Channel)
	}
	if metal.ORMMap.File.Value != "orm.png" {
		t.Fatalf("map_ORM = %+v", metal.ORMMap.File)
	}
}

func TestRoundTrip(t *testing.T) {
	doc, err := DecodeFile(filepath.Join("testdata", "multi.mtl"), nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	out, err := Format(doc, nil)
	if err != nil {
		t.Fatalf("format: %v", err)
	}

	doc2, err := Parse(out, nil)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}

	if !reflect.DeepEqual(doc.Comments, doc2.Comments) {
		t.Fatalf("comments differ: %v vs %v", doc.Comments, doc2.Comments)
	}
	if len(doc.Materials) != len(doc2.Materials) {
		t.Fatalf("material count: %d vs %d", len(doc.Materials), len(doc2.Materials))
	}
	for i := range doc.Materials {
		if doc.Materials[i] != doc2.Materials[i] {
			t.Fatalf("material %d differs after round trip:\n%+v\n%+v",
				i, doc.Materials[i], doc2.Materials[i])
		}
	}

	// Canonical output is a fixed point.
	out2, err := Format(doc2, nil)
	if err != nil {
		t.Fatalf("reformat: %v", err)
	}
	if string(out) != string(out2) {
		t.Fatalf("canonical form not stable:\n%s\nvs\n%s", out, out2)
	}
}
