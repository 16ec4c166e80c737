package mtl

// Material is one named material with every property the MTL grammar can
// assign. Each property carries provenance; values never written to by the
// source keep their defaults with Parsed false.
type Material struct {
	Name Field[string] `json:"name" yaml:"name"` // Material name

	Ambient      Color `json:"Ka,omitempty" yaml:"Ka,omitempty"` // Ambient color
	Diffuse      Color `json:"Kd,omitempty" yaml:"Kd,omitempty"` // Diffuse color
	Specular     Color `json:"Ks,omitempty" yaml:"Ks,omitempty"` // Specular color
	Transmission Color `json:"Tf,omitempty" yaml:"Tf,omitempty"` // Transmission filter color
	Emissive     Color `json:"Ke,omitempty" yaml:"Ke,omitempty"` // Emissive color

	Shininess      Field[float64] `json:"Ns,omitempty" yaml:"Ns,omitempty"`               // Specular exponent [0..1000]
	Sharpness      Field[float64] `json:"sharpness,omitempty" yaml:"sharpness,omitempty"` // Reflection sharpness [0..1000]
	Opacity        Opacity        `json:"d,omitempty" yaml:"d,omitempty"`                 // Dissolve factor
	Illum          Field[int]     `json:"illum,omitempty" yaml:"illum,omitempty"`         // Illumination model [0..10]
	OpticalDensity Field[float64] `json:"Ni,omitempty" yaml:"Ni,omitempty"`               // Index of refraction
	Transparency   Field[float64] `json:"Tr,omitempty" yaml:"Tr,omitempty"`               // Transparency

	Roughness          Field[float64] `json:"Pr,omitempty" yaml:"Pr,omitempty"`         // Roughness factor
	Metalness          Field[float64] `json:"Pm,omitempty" yaml:"Pm,omitempty"`         // Metalness factor
	Sheen              Field[float64] `json:"Ps,omitempty" yaml:"Ps,omitempty"`         // Sheen factor
	ClearcoatThickness Field[float64] `json:"Pc,omitempty" yaml:"Pc,omitempty"`         // Clearcoat thickness
	ClearcoatRoughness Field[float64] `json:"Pcr,omitempty" yaml:"Pcr,omitempty"`       // Clearcoat roughness
	Anisotropy         Field[float64] `json:"aniso,omitempty" yaml:"aniso,omitempty"`   // Anisotropy
	AnisotropyRotation Field[float64] `json:"anisor,omitempty" yaml:"anisor,omitempty"` // Anisotropy rotation

	DiffuseMap   Texture `json:"map_Kd,omitempty" yaml:"map_Kd,omitempty"`     // Diffuse texture
	AmbientMap   Texture `json:"map_Ka,omitempty" yaml:"map_Ka,omitempty"`     // Ambient texture
	SpecularMap  Texture `json:"map_Ks,omitempty" yaml:"map_Ks,omitempty"`     // Specular texture
	ShininessMap Texture `json:"map_Ns,omitempty" yaml:"map_Ns,omitempty"`     // Specular exponent texture
	RoughnessMap Texture `json:"map_Pr,omitempty" yaml:"map_Pr,omitempty"`     // Roughness texture
	MetalnessMap Texture `json:"map_Pm,omitempty" yaml:"map_Pm,omitempty"`     // Metalness texture
	SheenMap     Texture `json:"map_Ps,omitempty" yaml:"map_Ps,omitempty"`     // Sheen texture
	OpacityMap   Texture `json:"map_d,omitempty" yaml:"map_d,omitempty"`       // Opacity texture
	BumpMap      Texture `json:"map_bump,omitempty" yaml:"map_bump,omitempty"` // Bump texture
	OcclusionMap Texture `json:"map_Po,omitempty" yaml:"map_Po,omitempty"`     // Occlusion texture
	EmissiveMap  Texture `json:"map_Ke,omitempty" yaml:"map_Ke,omitempty"`     // Emissive texture
	NormalMap    Texture `json:"norm,omitempty" yaml:"norm,omitempty"`         // Normal texture
	RMAMap       Texture `json:"map_RMA,omitempty" yaml:"map_RMA,omitempty"`   // Roughness/metalness/occlusion texture
	ORMMap       Texture `json:"map_ORM,omitempty" yaml:"map_ORM,omitempty"`   // Occlusion/roughness/metalness texture
	Displacement Texture `json:"disp,omitempty" yaml:"disp,omitempty"`         // Displacement texture
	Decal        Texture `json:"decal,omitempty" yaml:"decal,omitempty"`       // Stencil decal texture
	Bump         Texture `json:"bump,omitempty" yaml:"bump,omitempty"`         // Bump texture, legacy spelling

	Reflection Reflection `json:"refl,omitempty" yaml:"refl,omitempty"` // Reflection map slots
}

// NewMaterial returns a material carrying the grammar's documented default
// values, with nothing marked as parsed.
func NewMaterial() Material {
	m := Material{
		Sharpness:    Field[float64]{Value: 60},
		Opacity:      Opacity{Value: 1},
		Transparency: Field[float64]{Value: 1},
	}

	for _, t := range m.textures() {
		*t = defaultTexture()
	}

	return m
}

// defaultTexture returns a texture with the grammar's default modifier
// values, nothing parsed.
func defaultTexture() Texture {
	return Texture{
		BlendU:   Field[bool]{Value: true},
		BlendV:   Field[bool]{Value: true},
		Boost:    Field[float64]{Value: 60},
		TexRes:   Field[float64]{Value: 1},
		Modulate: Modulate{Gain: 1},
		Channel:  Field[byte]{Value: 'm'},
	}
}

// textures returns every texture slot of the material, reflection slots
// included.
func (m *Material) textures() []*Texture {
	return []*Texture{
		&m.DiffuseMap, &m.AmbientMap, &m.SpecularMap, &m.ShininessMap,
		&m.RoughnessMap, &m.MetalnessMap, &m.SheenMap, &m.OpacityMap,
		&m.BumpMap, &m.OcclusionMap, &m.EmissiveMap, &m.NormalMap,
		&m.RMAMap, &m.ORMMap, &m.Displacement, &m.Decal, &m.Bump,
		&m.Reflection.Sphere, &m.Reflection.CubeTop, &m.Reflection.CubeBottom,
		&m.Reflection.CubeFront, &m.Reflection.CubeBack,
		&m.Reflection.CubeLeft, &m.Reflection.CubeRight,
	}
}

// DefaultsFrom copies a material with every provenance flag cleared. The
// copy keeps all values, so it can seed a new decode as its default
// template without the values counting as parsed from the new source.
func DefaultsFrom(m Material) Material {
	m.Name.Parsed = false

	m.Ambient.clearParsed()
	m.Diffuse.clearParsed()
	m.Specular.clearParsed()
	m.Transmission.clearParsed()
	m.Emissive.clearParsed()

	m.Shininess.Parsed = false
	m.Sharpness.Parsed = false
	m.Opacity.Parsed = false
	m.Illum.Parsed = false
	m.OpticalDensity.Parsed = false
	m.Transparency.Parsed = false

	m.Roughness.Parsed = false
	m.Metalness.Parsed = false
	m.Sheen.Parsed = false
	m.ClearcoatThickness.Parsed = false
	m.ClearcoatRoughness.Parsed = false
	m.Anisotropy.Parsed = false
	m.AnisotropyRotation.Parsed = false

	for _, t := range m.textures() {
		t.clearParsed()
	}
	m.Reflection.clearParsed()

	return m
}
