package mtl

import "testing"

func TestTextureFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		file string
	}{
		{"bare filename", "chrome.png", "chrome.png"},
		{"after options", "-blendu on -bm 2 chrome.png", "chrome.png"},
		{"unknown flag still yields filename", "-zzz 1 2 3 chrome.png", "chrome.png"},
		{"options only", "-bm 2", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := defaultTexture().decode(tt.in)
			if !ok {
				t.Fatalf("decode(%q) failed", tt.in)
			}
			if got.File.Value != tt.file || got.File.Parsed != (tt.file != "") {
				t.Fatalf("decode(%q) file = %+v; want %q", tt.in, got.File, tt.file)
			}
			if !got.Parsed {
				t.Fatalf("decode(%q) not marked parsed", tt.in)
			}
		})
	}

	if _, ok := defaultTexture().decode("   "); ok {
		t.Fatalf("expected empty line to fail")
	}
}

func TestTextureFlags(t *testing.T) {
	got, ok := defaultTexture().decode("-blendu off -blendv on -clamp on -bm 0.8 -boost 2.5 -texres 512 -mm 0 2 -o 1 2 3 -s 2 -t 0.1 0.2 -imfchan z tex.png")
	if !ok {
		t.Fatalf("decode failed")
	}

	if !got.BlendU.Parsed || got.BlendU.Value {
		t.Fatalf("blendu = %+v", got.BlendU)
	}
	if !got.BlendV.Parsed || !got.BlendV.Value {
		t.Fatalf("blendv = %+v", got.BlendV)
	}
	if !got.Clamp.Parsed || !got.Clamp.Value {
		t.Fatalf("clamp = %+v", got.Clamp)
	}
	if !got.BumpMultiplier.Parsed || got.BumpMultiplier.Value != 0.8 {
		t.Fatalf("bm = %+v", got.BumpMultiplier)
	}
	if !got.Boost.Parsed || got.Boost.Value != 2.5 {
		t.Fatalf("boost = %+v", got.Boost)
	}
	if !got.TexRes.Parsed || got.TexRes.Value != 512 {
		t.Fatalf("texres = %+v", got.TexRes)
	}
	if got.Modulate != (Modulate{Base: 0, Gain: 2, Parsed: true}) {
		t.Fatalf("mm = %+v", got.Modulate)
	}
	if got.Offset != (Triple{X: 1, Y: 2, Z: 3, Parsed: true}) {
		t.Fatalf("o = %+v", got.Offset)
	}
	if got.Scale != (Triple{X: 2, Y: 2, Z: 2, Parsed: true}) {
		t.Fatalf("s should broadcast: %+v", got.Scale)
	}
	if got.Turbulence != (Triple{X: 0.1, Y: 0.2, Z: 0.1, Parsed: true}) {
		t.Fatalf("t third component should fall back to first: %+v", got.Turbulence)
	}
	if !got.Channel.Parsed || got.Channel.Value != 'z' {
		t.Fatalf("imfchan = %+v", got.Channel)
	}
	if got.File.Value != "tex.png" {
		t.Fatalf("file = %+v", got.File)
	}
	if got.CC.Parsed {
		t.Fatalf("cc has no flag in the grammar and must stay unparsed")
	}
}

func TestTextureBooleanWordConsumed(t *testing.T) {
	// A malformed boolean word is consumed, leaves the flag unset, and
	// keeps the trailing filename intact.
	got, ok := defaultTexture().decode("-blendu maybe tex.png")
	if !ok {
		t.Fatalf("decode failed")
	}
	if got.BlendU.Parsed {
		t.Fatalf("blendu should stay unparsed for %q", "maybe")
	}
	if got.File.Value != "tex.png" {
		t.Fatalf("file = %+v", got.File)
	}
}

func TestTextureInvalidChannel(t *testing.T) {
	got, ok := defaultTexture().decode("-imfchan q tex.png")
	if !ok {
		t.Fatalf("decode failed")
	}
	if got.Channel.Parsed || got.Channel.Value != 'm' {
		t.Fatalf("invalid channel accepted: %+v", got.Channel)
	}
	if got.File.Value != "tex.png" {
		t.Fatalf("file = %+v", got.File)
	}

	// Multi-character words are rejected even when made of valid letters.
	got, ok = defaultTexture().decode("-imfchan rg tex.png")
	if !ok || got.Channel.Parsed {
		t.Fatalf("multi-character channel accepted: %+v, %v", got.Channel, ok)
	}
}

func TestOpacityDecode(t *testing.T) {
	prior := Opacity{Value: 1}

	got, ok := prior.decode("-halo 0.66")
	if !ok || got != (Opacity{Value: 0.66, Halo: true, Parsed: true}) {
		t.Fatalf("halo decode = %+v, %v", got, ok)
	}

	got, ok = prior.decode("0.66")
	if !ok || got != (Opacity{Value: 0.66, Halo: false, Parsed: true}) {
		t.Fatalf("bare decode = %+v, %v", got, ok)
	}

	if _, ok := prior.decode("-halo x"); ok {
		t.Fatalf("expected halo without factor to fail")
	}
	if _, ok := prior.decode("solid"); ok {
		t.Fatalf("expected non-numeric dissolve to fail")
	}
}

func TestReflectionTypeDispatch(t *testing.T) {
	got, ok := (Reflection{}).decode("-type sphere -mm 0 1 clouds.mpc")
	if !ok || !got.Parsed {
		t.Fatalf("decode = %+v, %v", got, ok)
	}
	if got.Sphere.File.Value != "clouds.mpc" {
		t.Fatalf("sphere file = %+v", got.Sphere.File)
	}
	if got.Sphere.Modulate != (Modulate{Base: 0, Gain: 1, Parsed: true}) {
		t.Fatalf("sphere mm = %+v", got.Sphere.Modulate)
	}
	for name, tex := range map[string]Texture{
		"cube_top": got.CubeTop, "cube_bottom": got.CubeBottom,
		"cube_front": got.CubeFront, "cube_back": got.CubeBack,
		"cube_left": got.CubeLeft, "cube_right": got.CubeRight,
	} {
		if tex.Parsed {
			t.Fatalf("slot %s unexpectedly parsed", name)
		}
	}

	if _, ok := (Reflection{}).decode("-type dome radiance.hdr"); ok {
		t.Fatalf("unknown type name must fail the line")
	}
	if _, ok := (Reflection{}).decode("clouds.mpc"); ok {
		t.Fatalf("missing -type must fail the line")
	}
}

func TestReflectionAccumulatesSlots(t *testing.T) {
	r, ok := (Reflection{}).decode("-type sphere ball.png")
	if !ok {
		t.Fatalf("sphere decode failed")
	}
	r, ok = r.decode("-type cube_top top.png")
	if !ok {
		t.Fatalf("cube_top decode failed")
	}
	if r.Sphere.File.Value != "ball.png" || r.CubeTop.File.Value != "top.png" {
		t.Fatalf("slots = %+v / %+v", r.Sphere.File, r.CubeTop.File)
	}
}
