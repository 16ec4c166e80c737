/*
Package mtl provides parsing and canonical formatting for Wavefront MTL
material libraries.

It focuses on faithful, order-preserving extraction of material properties.
Every field carries a provenance flag reporting whether the value came from
the source text, so callers can overlay defaults without losing track of
what was actually written. Covers the standard MTL statements plus the
Clara.io PBR extensions (Pr, Pm, Ps, Pc, Pcr, aniso, anisor, map_Ke, norm)
and the DirectXMesh map_RMA/map_ORM textures.

Reader example:

	doc, err := mtl.DecodeFile("scene.mtl", nil)
	if err != nil {
		// handle error
	}

Writer example:

	out, err := mtl.Format(doc, nil)
	if err != nil {
		// handle error
	}

Lookup example:

	m, ok := doc.Lookup("gold")
	if ok && m.Diffuse.Parsed {
		_ = m.Diffuse.RGB
	}

Default overlay example:

	opt := &mtl.DecodeOptions{Template: &doc.Materials[0]}
	next, err := mtl.DecodeFile("other.mtl", opt)
	if err != nil {
		// handle error
	}
	_ = next

Malformed value lines never abort a decode; the affected field keeps its
previous value and the rest of the file is still processed. A decode fails
only when no material is ever named.
*/
package mtl
