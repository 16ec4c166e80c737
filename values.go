package mtl

// Field pairs a value with its provenance: Parsed is true only when the
// value was decoded from source text or explicitly assigned through Set.
// Copying a Field propagates provenance verbatim; use DefaultsFrom to copy
// a whole Material with provenance cleared.
type Field[T any] struct {
	Value  T    `json:"value" yaml:"value"`                     // Field value
	Parsed bool `json:"parsed,omitempty" yaml:"parsed,omitempty"` // Whether the value was supplied explicitly
}

// Set assigns a value and marks the field as parsed.
func (f *Field[T]) Set(v T) {
	f.Value = v
	f.Parsed = true
}

// decodeFloat decodes a value line into a float field.
func decodeFloat(dst *Field[float64], rest string) bool {
	c := cursor{s: rest}
	v, ok := c.float()
	if !ok {
		return false
	}

	dst.Set(v)
	return true
}

// decodeInt decodes a value line into an integer field.
func decodeInt(dst *Field[int], rest string) bool {
	c := cursor{s: rest}
	v, ok := c.int()
	if !ok {
		return false
	}

	dst.Set(v)
	return true
}

// Triple is a fixed-arity numeric triple: RGB or CIE-XYZ components for
// colors, u/v/w for texture origin, scale, and turbulence. Components keep
// the order they are written in source.
type Triple struct {
	X      float64 `json:"x" yaml:"x"`                             // First component (r or u)
	Y      float64 `json:"y" yaml:"y"`                             // Second component (g or v)
	Z      float64 `json:"z" yaml:"z"`                             // Third component (b or w)
	Parsed bool    `json:"parsed,omitempty" yaml:"parsed,omitempty"` // Whether the triple was supplied
}

// decode reads up to three numbers with single-value broadcast: one value
// fills all three components, and a missing third component falls back to
// the first component, not the second.
func (t Triple) decode(c *cursor) (Triple, bool) {
	x, ok := c.float()
	if !ok {
		return t, false
	}

	t.X = x
	t.Parsed = true

	y, ok := c.float()
	if !ok {
		t.Y, t.Z = x, x
		return t, true
	}

	t.Y = y
	z, ok := c.float()
	if !ok {
		t.Z = x
		return t, true
	}

	t.Z = z
	return t, true
}

// Modulate is the -mm base/gain pair that remaps texture values.
type Modulate struct {
	Base   int  `json:"base" yaml:"base"`                         // Base value added to texture values
	Gain   int  `json:"gain" yaml:"gain"`                         // Gain factor applied to texture values
	Parsed bool `json:"parsed,omitempty" yaml:"parsed,omitempty"` // Whether the pair was supplied
}

// decode reads the base and an optional gain; a missing gain keeps its
// previous value.
func (m Modulate) decode(c *cursor) (Modulate, bool) {
	base, ok := c.int()
	if !ok {
		return m, false
	}

	m.Base = base
	m.Parsed = true

	if gain, ok := c.int(); ok {
		m.Gain = gain
	}

	return m, true
}

// Spectral references a spectral curve file with a scaling factor.
type Spectral struct {
	File   string  `json:"file" yaml:"file"`                         // Spectral curve file, Radiance RGBE
	Factor float64 `json:"factor" yaml:"factor"`                     // Scaling factor
	Parsed bool    `json:"parsed,omitempty" yaml:"parsed,omitempty"` // Whether the reference was supplied
}

// decode reads the filename and an optional factor; a missing factor keeps
// its previous value.
func (s Spectral) decode(c *cursor) (Spectral, bool) {
	file, ok := c.word()
	if !ok {
		return s, false
	}

	s.File = file
	s.Parsed = true

	if f, ok := c.float(); ok {
		s.Factor = f
	}

	return s, true
}

// Opacity is the dissolve factor of a material with its halo flag. Halo and
// factor are set together when the -halo option is recognized.
type Opacity struct {
	Value  float64 `json:"value" yaml:"value"`                       // Dissolve factor [0..1]
	Halo   bool    `json:"halo,omitempty" yaml:"halo,omitempty"`     // Dissolve depends on surface orientation
	Parsed bool    `json:"parsed,omitempty" yaml:"parsed,omitempty"` // Whether the opacity was supplied
}

// decode scans the line for a -halo flag followed by the dissolve factor.
// Without one, the whole line is read as a bare dissolve factor and the
// halo flag is left untouched.
func (o Opacity) decode(line string) (Opacity, bool) {
	for i := 0; i < len(line); i++ {
		if line[i] != '-' {
			continue
		}

		if !hasFlag(line[i+1:], "halo") {
			continue
		}

		c := cursor{s: line, pos: i + 1 + len("halo ")}
		if v, ok := c.float(); ok {
			o.Value = v
			o.Halo = true
			o.Parsed = true
			return o, true
		}
	}

	c := cursor{s: line}
	v, ok := c.float()
	if !ok {
		return o, false
	}

	o.Value = v
	o.Parsed = true
	return o, true
}

// hasFlag reports whether s starts with the flag name followed by a space,
// the form the grammar uses to bind a flag to its value.
func hasFlag(s, name string) bool {
	if len(s) <= len(name) {
		return false
	}

	return s[:len(name)] == name && s[len(name)] == ' '
}
