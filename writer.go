package mtl

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"
)

// Encode writes a Document to writer in its canonical textual form: header
// comments first, then one statement block per material in the field order
// of the grammar. Only parsed fields are written, so encoding a decoded
// document and decoding the result reproduces the same parsed fields and
// values.
func Encode(w io.Writer, doc *Document, opt *FormatOptions) error {
	fopt := opt.normalize()
	bw := bufio.NewWriter(w)
	wr := &writer{w: bw, prec: fopt.Precision}
	if err := wr.writeDocument(doc); err != nil {
		return err
	}

	return bw.Flush()
}

// EncodeFile writes a Document to a file.
func EncodeFile(path string, doc *Document, opt *FormatOptions) error {
	b, err := Format(doc, opt)
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0o600)
}

// Format renders a Document to bytes.
func Format(doc *Document, opt *FormatOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, doc, opt); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// writer renders a Document statement by statement.
type writer struct {
	w    io.Writer // Writer to write to
	prec int       // Significant digits for numbers
}

// writeDocument writes the header comments and every material.
func (w *writer) writeDocument(doc *Document) error {
	for _, c := range doc.Comments {
		if err := w.line("# " + c); err != nil {
			return err
		}
	}

	for i := range doc.Materials {
		if err := w.writeMaterial(&doc.Materials[i]); err != nil {
			return err
		}
	}

	return nil
}

// writeMaterial writes one material block in canonical field order.
func (w *writer) writeMaterial(m *Material) error {
	if err := w.line(""); err != nil {
		return err
	}
	if m.Name.Parsed {
		if err := w.line("newmtl " + m.Name.Value); err != nil {
			return err
		}
	}

	if err := w.writeColor("Ka", &m.Ambient); err != nil {
		return err
	}
	if err := w.writeColor("Kd", &m.Diffuse); err != nil {
		return err
	}
	if err := w.writeColor("Ks", &m.Specular); err != nil {
		return err
	}
	if err := w.writeColor("Ke", &m.Emissive); err != nil {
		return err
	}

	textures := []struct {
		label string
		tex   *Texture
	}{
		{"map_Kd", &m.DiffuseMap},
		{"map_Ka", &m.AmbientMap},
		{"map_Ks", &m.SpecularMap},
		{"map_Ke", &m.EmissiveMap},
		{"map_Ns", &m.ShininessMap},
		{"map_Pr", &m.RoughnessMap},
		{"map_Pm", &m.MetalnessMap},
		{"map_Ps", &m.SheenMap},
		{"map_d", &m.OpacityMap},
		{"map_bump", &m.BumpMap},
		{"map_Po", &m.OcclusionMap},
	}
	for _, e := range textures {
		if err := w.writeTexture(e.label, e.tex); err != nil {
			return err
		}
	}

	if err := w.writeFloat("Ns", m.Shininess); err != nil {
		return err
	}
	if err := w.writeColor("Tf", &m.Transmission); err != nil {
		return err
	}
	if err := w.writeFloat("Tr", m.Transparency); err != nil {
		return err
	}
	if err := w.writeFloat("sharpness", m.Sharpness); err != nil {
		return err
	}
	if err := w.writeOpacity(m.Opacity); err != nil {
		return err
	}
	if err := w.writeTexture("disp", &m.Displacement); err != nil {
		return err
	}
	if err := w.writeTexture("decal", &m.Decal); err != nil {
		return err
	}
	if err := w.writeTexture("bump", &m.Bump); err != nil {
		return err
	}
	if m.Illum.Parsed {
		if err := w.line("illum " + strconv.Itoa(m.Illum.Value)); err != nil {
			return err
		}
	}
	if err := w.writeFloat("Ni", m.OpticalDensity); err != nil {
		return err
	}
	if err := w.writeReflection(&m.Reflection); err != nil {
		return err
	}

	if err := w.writeFloat("Pr", m.Roughness); err != nil {
		return err
	}
	if err := w.writeFloat("Pm", m.Metalness); err != nil {
		return err
	}
	if err := w.writeFloat("Ps", m.Sheen); err != nil {
		return err
	}
	if err := w.writeFloat("Pc", m.ClearcoatThickness); err != nil {
		return err
	}
	if err := w.writeFloat("Pcr", m.ClearcoatRoughness); err != nil {
		return err
	}
	if err := w.writeFloat("aniso", m.Anisotropy); err != nil {
		return err
	}
	if err := w.writeFloat("anisor", m.AnisotropyRotation); err != nil {
		return err
	}
	if err := w.writeTexture("norm", &m.NormalMap); err != nil {
		return err
	}
	if err := w.writeTexture("map_RMA", &m.RMAMap); err != nil {
		return err
	}

	return w.writeTexture("map_ORM", &m.ORMMap)
}

// writeColor writes one statement per parsed representation.
func (w *writer) writeColor(label string, col *Color) error {
	if !col.Parsed {
		return nil
	}

	if col.RGB.Parsed {
		s := label + " " + w.num(col.RGB.X) + " " + w.num(col.RGB.Y) + " " + w.num(col.RGB.Z)
		if err := w.line(s); err != nil {
			return err
		}
	}

	if col.XYZ.Parsed {
		s := label + " xyz " + w.num(col.XYZ.X) + " " + w.num(col.XYZ.Y) + " " + w.num(col.XYZ.Z)
		if err := w.line(s); err != nil {
			return err
		}
	}

	if col.Spectral.Parsed {
		s := label + " spectral " + col.Spectral.File + " " + w.num(col.Spectral.Factor)
		if err := w.line(s); err != nil {
			return err
		}
	}

	return nil
}

// writeFloat writes a scalar statement when the field was parsed.
func (w *writer) writeFloat(label string, f Field[float64]) error {
	if !f.Parsed {
		return nil
	}

	return w.line(label + " " + w.num(f.Value))
}

// writeOpacity writes the dissolve statement.
func (w *writer) writeOpacity(o Opacity) error {
	if !o.Parsed {
		return nil
	}

	if o.Halo {
		return w.line("d -halo " + w.num(o.Value))
	}

	return w.line("d " + w.num(o.Value))
}

// writeTexture writes a texture statement: recognized options first, the
// filename last. Option order is canonical, not source order.
func (w *writer) writeTexture(label string, t *Texture) error {
	if !t.Parsed {
		return nil
	}

	return w.line(label + w.textureSpec(t))
}

// writeReflection writes one refl statement per parsed slot.
func (w *writer) writeReflection(r *Reflection) error {
	if !r.Parsed {
		return nil
	}

	slots := []struct {
		name string
		tex  *Texture
	}{
		{"sphere", &r.Sphere},
		{"cube_top", &r.CubeTop},
		{"cube_bottom", &r.CubeBottom},
		{"cube_front", &r.CubeFront},
		{"cube_back", &r.CubeBack},
		{"cube_left", &r.CubeLeft},
		{"cube_right", &r.CubeRight},
	}
	for _, s := range slots {
		if !s.tex.Parsed {
			continue
		}

		if err := w.line("refl -type " + s.name + w.textureSpec(s.tex)); err != nil {
			return err
		}
	}

	return nil
}

// textureSpec renders the parsed options and filename of a texture,
// each with a leading space.
func (w *writer) textureSpec(t *Texture) string {
	var b strings.Builder

	if t.BlendU.Parsed {
		b.WriteString(" -blendu " + onOff(t.BlendU.Value))
	}
	if t.BlendV.Parsed {
		b.WriteString(" -blendv " + onOff(t.BlendV.Value))
	}
	if t.Clamp.Parsed {
		b.WriteString(" -clamp " + onOff(t.Clamp.Value))
	}
	if t.CC.Parsed {
		b.WriteString(" -cc " + onOff(t.CC.Value))
	}
	if t.BumpMultiplier.Parsed {
		b.WriteString(" -bm " + w.num(t.BumpMultiplier.Value))
	}
	if t.Boost.Parsed {
		b.WriteString(" -boost " + w.num(t.Boost.Value))
	}
	if t.TexRes.Parsed {
		b.WriteString(" -texres " + w.num(t.TexRes.Value))
	}
	if t.Modulate.Parsed {
		b.WriteString(" -mm " + strconv.Itoa(t.Modulate.Base) + " " + strconv.Itoa(t.Modulate.Gain))
	}
	if t.Offset.Parsed {
		b.WriteString(" -o " + w.num(t.Offset.X) + " " + w.num(t.Offset.Y) + " " + w.num(t.Offset.Z))
	}
	if t.Scale.Parsed {
		b.WriteString(" -s " + w.num(t.Scale.X) + " " + w.num(t.Scale.Y) + " " + w.num(t.Scale.Z))
	}
	if t.Turbulence.Parsed {
		b.WriteString(" -t " + w.num(t.Turbulence.X) + " " + w.num(t.Turbulence.Y) + " " + w.num(t.Turbulence.Z))
	}
	if t.Channel.Parsed {
		b.WriteString(" -imfchan " + string(t.Channel.Value))
	}
	if t.File.Parsed {
		b.WriteString(" " + t.File.Value)
	}

	return b.String()
}

// num formats a float with the configured precision.
func (w *writer) num(v float64) string {
	return strconv.FormatFloat(v, 'g', w.prec, 64)
}

// line writes one output line.
func (w *writer) line(s string) error {
	if _, err := io.WriteString(w.w, s); err != nil {
		return err
	}

	_, err := io.WriteString(w.w, "\n")
	return err
}

// onOff renders a boolean in the grammar's on/off form.
func onOff(v bool) string {
	if v {
		return "on"
	}

	return "off"
}
