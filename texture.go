package mtl

import "strings"

// Texture is a texture map statement: a filename plus the optional inline
// rendering modifiers of the map_* grammar. The filename is always the
// final non-flag token on the line.
type Texture struct {
	File Field[string] `json:"file,omitempty" yaml:"file,omitempty"` // Texture file

	BlendU         Field[bool]    `json:"blendu,omitempty" yaml:"blendu,omitempty"`   // Horizontal texture blending
	BlendV         Field[bool]    `json:"blendv,omitempty" yaml:"blendv,omitempty"`   // Vertical texture blending
	Clamp          Field[bool]    `json:"clamp,omitempty" yaml:"clamp,omitempty"`     // Restrict textures to the clamped range
	CC             Field[bool]    `json:"cc,omitempty" yaml:"cc,omitempty"`           // Color correction
	BumpMultiplier Field[float64] `json:"bm,omitempty" yaml:"bm,omitempty"`           // Bump map multiplier
	Boost          Field[float64] `json:"boost,omitempty" yaml:"boost,omitempty"`     // Sharpness boost
	TexRes         Field[float64] `json:"texres,omitempty" yaml:"texres,omitempty"`   // Texture resolution multiplier
	Modulate       Modulate       `json:"mm,omitempty" yaml:"mm,omitempty"`           // Texture value remapping
	Offset         Triple         `json:"o,omitempty" yaml:"o,omitempty"`             // Texture origin offset
	Scale          Triple         `json:"s,omitempty" yaml:"s,omitempty"`             // Texture scale
	Turbulence     Triple         `json:"t,omitempty" yaml:"t,omitempty"`             // Texture turbulence
	Channel        Field[byte]    `json:"imfchan,omitempty" yaml:"imfchan,omitempty"` // File channel selector: r, g, b, m, l or z

	Parsed bool `json:"parsed,omitempty" yaml:"parsed,omitempty"` // Whether anything on the line was recognized
}

// imfchanSet lists the channel selectors -imfchan accepts.
const imfchanSet = "rgbmlz"

// decode scans the line left to right for -flag tokens. Recognized flags
// consume their values; unrecognized ones are skipped byte by byte so a
// trailing filename survives forward-compatible options. The filename is
// the final token of whatever remains after the last recognized flag.
func (t Texture) decode(line string) (Texture, bool) {
	parsed := false

	// rest marks where the positional remainder starts: just past the last
	// recognized flag value.
	rest := 0

	i := 0
	for i < len(line) {
		if line[i] != '-' {
			i++
			continue
		}

		f := line[i+1:]
		switch {
		case hasFlag(f, "blendu"):
			if end, set, ok := scanOnOff(&t.BlendU, line, i+1+len("blendu ")); ok {
				parsed = parsed || set
				i, rest = end, end
				continue
			}

		case hasFlag(f, "blendv"):
			if end, set, ok := scanOnOff(&t.BlendV, line, i+1+len("blendv ")); ok {
				parsed = parsed || set
				i, rest = end, end
				continue
			}

		case hasFlag(f, "clamp"):
			if end, set, ok := scanOnOff(&t.Clamp, line, i+1+len("clamp ")); ok {
				parsed = parsed || set
				i, rest = end, end
				continue
			}

		case hasFlag(f, "bm"):
			c := cursor{s: line, pos: i + 1 + len("bm ")}
			if v, ok := c.float(); ok {
				t.BumpMultiplier.Set(v)
				parsed = true
				i, rest = c.pos, c.pos
				continue
			}

		case hasFlag(f, "boost"):
			c := cursor{s: line, pos: i + 1 + len("boost ")}
			if v, ok := c.float(); ok {
				t.Boost.Set(v)
				parsed = true
				i, rest = c.pos, c.pos
				continue
			}

		case hasFlag(f, "texres"):
			c := cursor{s: line, pos: i + 1 + len("texres ")}
			if v, ok := c.float(); ok {
				t.TexRes.Set(v)
				parsed = true
				i, rest = c.pos, c.pos
				continue
			}

		case hasFlag(f, "mm"):
			c := cursor{s: line, pos: i + 1 + len("mm ")}
			if mm, ok := t.Modulate.decode(&c); ok {
				t.Modulate = mm
				parsed = true
				i, rest = c.pos, c.pos
				continue
			}

		case hasFlag(f, "o"):
			c := cursor{s: line, pos: i + 1 + len("o ")}
			if tr, ok := t.Offset.decode(&c); ok {
				t.Offset = tr
				parsed = true
				i, rest = c.pos, c.pos
				continue
			}

		case hasFlag(f, "s"):
			c := cursor{s: line, pos: i + 1 + len("s ")}
			if tr, ok := t.Scale.decode(&c); ok {
				t.Scale = tr
				parsed = true
				i, rest = c.pos, c.pos
				continue
			}

		case hasFlag(f, "t"):
			c := cursor{s: line, pos: i + 1 + len("t ")}
			if tr, ok := t.Turbulence.decode(&c); ok {
				t.Turbulence = tr
				parsed = true
				i, rest = c.pos, c.pos
				continue
			}

		case hasFlag(f, "imfchan"):
			// An invalid channel word leaves the flag unrecognized; the
			// scan keeps walking instead of consuming it.
			c := cursor{s: line, pos: i + 1 + len("imfchan ")}
			if w, ok := c.word(); ok && len(w) == 1 && strings.IndexByte(imfchanSet, w[0]) >= 0 {
				t.Channel.Set(w[0])
				parsed = true
				i, rest = c.pos, c.pos
				continue
			}
		}

		i++
	}

	if rem := strings.TrimSpace(line[rest:]); rem != "" {
		toks := strings.Fields(rem)
		t.File.Set(toks[len(toks)-1])
		parsed = true
	}

	if !parsed {
		return t, false
	}

	t.Parsed = true
	return t, true
}

// scanOnOff reads the boolean word of a -blendu/-blendv/-clamp flag. The
// word is consumed even when malformed; dst is assigned only for a literal
// "on" or "off", reported through set.
func scanOnOff(dst *Field[bool], line string, pos int) (end int, set, ok bool) {
	c := cursor{s: line, pos: pos}
	w, ok := c.word()
	if !ok {
		return pos, false, false
	}

	switch w {
	case "on":
		dst.Set(true)
		set = true
	case "off":
		dst.Set(false)
		set = true
	}

	return c.pos, set, true
}

// decodeTexture decodes a value line into a texture field, committing only
// on success.
func decodeTexture(dst *Texture, rest string) bool {
	t, ok := dst.decode(rest)
	if ok {
		*dst = t
	}

	return ok
}

// decodeOpacity decodes a value line into an opacity field, committing only
// on success.
func decodeOpacity(dst *Opacity, rest string) bool {
	o, ok := dst.decode(rest)
	if ok {
		*dst = o
	}

	return ok
}

// clearParsed drops provenance from the texture and all its modifiers.
func (t *Texture) clearParsed() {
	t.File.Parsed = false
	t.BlendU.Parsed = false
	t.BlendV.Parsed = false
	t.Clamp.Parsed = false
	t.CC.Parsed = false
	t.BumpMultiplier.Parsed = false
	t.Boost.Parsed = false
	t.TexRes.Parsed = false
	t.Modulate.Parsed = false
	t.Offset.Parsed = false
	t.Scale.Parsed = false
	t.Turbulence.Parsed = false
	t.Channel.Parsed = false
	t.Parsed = false
}

// Reflection holds the reflection map slots a material can carry: one
// sphere map and six cube faces. Each refl statement selects exactly one
// slot with -type; separate statements may fill different slots over the
// material's lifetime.
type Reflection struct {
	Sphere     Texture `json:"sphere,omitempty" yaml:"sphere,omitempty"`           // Sphere reflection map
	CubeTop    Texture `json:"cube_top,omitempty" yaml:"cube_top,omitempty"`       // Cube face +Y
	CubeBottom Texture `json:"cube_bottom,omitempty" yaml:"cube_bottom,omitempty"` // Cube face -Y
	CubeFront  Texture `json:"cube_front,omitempty" yaml:"cube_front,omitempty"`   // Cube face +Z
	CubeBack   Texture `json:"cube_back,omitempty" yaml:"cube_back,omitempty"`     // Cube face -Z
	CubeLeft   Texture `json:"cube_left,omitempty" yaml:"cube_left,omitempty"`     // Cube face -X
	CubeRight  Texture `json:"cube_right,omitempty" yaml:"cube_right,omitempty"`   // Cube face +X

	Parsed bool `json:"parsed,omitempty" yaml:"parsed,omitempty"` // Whether any slot was supplied
}

// slot returns the texture slot for a -type name, or nil for an unknown
// name.
func (r *Reflection) slot(name string) *Texture {
	switch name {
	case "sphere":
		return &r.Sphere
	case "cube_top":
		return &r.CubeTop
	case "cube_bottom":
		return &r.CubeBottom
	case "cube_front":
		return &r.CubeFront
	case "cube_back":
		return &r.CubeBack
	case "cube_left":
		return &r.CubeLeft
	case "cube_right":
		return &r.CubeRight
	default:
		return nil
	}
}

// decode finds the -type option, then reads the remainder of the line as a
// full texture into the selected slot. An unknown type name or a missing
// -type fails the whole line.
func (r Reflection) decode(line string) (Reflection, bool) {
	for i := 0; i < len(line); i++ {
		if line[i] != '-' || !hasFlag(line[i+1:], "type") {
			continue
		}

		c := cursor{s: line, pos: i + 1 + len("type ")}
		name, ok := c.word()
		if !ok {
			continue
		}

		slot := r.slot(name)
		if slot == nil {
			return r, false
		}

		t, ok := slot.decode(c.rest())
		if !ok {
			return r, false
		}

		*slot = t
		r.Parsed = true
		return r, true
	}

	return r, false
}

// decodeReflection decodes a value line into a reflection field, committing
// only on success.
func decodeReflection(dst *Reflection, rest string) bool {
	r, ok := dst.decode(rest)
	if ok {
		*dst = r
	}

	return ok
}

// clearParsed drops provenance from every slot.
func (r *Reflection) clearParsed() {
	r.Sphere.clearParsed()
	r.CubeTop.clearParsed()
	r.CubeBottom.clearParsed()
	r.CubeFront.clearParsed()
	r.CubeBack.clearParsed()
	r.CubeLeft.clearParsed()
	r.CubeRight.clearParsed()
	r.Parsed = false
}
