package mtl

// DecodeOptions controls decoding behavior.
type DecodeOptions struct {
	// Template seeds every material the decode creates. Its values become
	// the defaults of each new material, but its provenance flags are
	// cleared first so template values never count as parsed from the
	// current source. A nil Template means NewMaterial().
	Template *Material
}

// FormatOptions controls writer formatting.
type FormatOptions struct {
	// Precision is the number of significant digits for numeric values
	// (default -1, the minimum digits that round-trip exactly).
	Precision int
}

// normalize normalizes the DecodeOptions.
func (o *DecodeOptions) normalize() DecodeOptions {
	if o == nil {
		return DecodeOptions{}
	}

	return *o
}

// template returns the provenance-cleared template material.
func (o DecodeOptions) template() Material {
	if o.Template == nil {
		return NewMaterial()
	}

	return DefaultsFrom(*o.Template)
}

// normalize normalizes the FormatOptions.
func (o *FormatOptions) normalize() FormatOptions {
	if o == nil {
		return FormatOptions{Precision: -1}
	}

	out := *o
	if out.Precision == 0 {
		out.Precision = -1
	}

	return out
}
