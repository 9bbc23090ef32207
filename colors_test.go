package softterm

import "testing"

func TestPaletteRamps(t *testing.T) {
	// Cube corners and the grey ramp follow the xterm construction.
	if Palette[16] != (Colour{255, 0, 0, 0}) {
		t.Errorf("cube origin should be black, got %+v", Palette[16])
	}
	if Palette[231] != (Colour{255, 255, 255, 255}) {
		t.Errorf("cube end should be white, got %+v", Palette[231])
	}
	if Palette[232] != (Colour{255, 8, 8, 8}) {
		t.Errorf("first grey should be 8, got %+v", Palette[232])
	}
	if Palette[255] != (Colour{255, 238, 238, 238}) {
		t.Errorf("last grey should be 238, got %+v", Palette[255])
	}
}

func TestIndexedColourBounds(t *testing.T) {
	if IndexedColour(1) != Palette[1] {
		t.Error("indexed colour should come from the palette")
	}
	if IndexedColour(999) != DefaultForeground {
		t.Error("out of range index should fall back to the default foreground")
	}
}

func TestVGAColourReduction(t *testing.T) {
	cases := []struct {
		c    Colour
		want uint8
	}{
		{Colour{255, 0, 0, 0}, cgaBlack},
		{Colour{255, 170, 0, 0}, cgaRed},
		{Colour{255, 0, 170, 0}, cgaGreen},
		{Colour{255, 0, 0, 170}, cgaBlue},
		{Colour{255, 170, 170, 0}, cgaYellow},
		{Colour{255, 170, 0, 170}, cgaMagenta},
		{Colour{255, 0, 170, 170}, cgaCyan},
		{Colour{255, 170, 170, 170}, cgaWhite},
	}
	for _, tc := range cases {
		if got := VGAColour(tc.c); got != tc.want {
			t.Errorf("%+v: expected %d, got %d", tc.c, tc.want, got)
		}
	}
}

func TestColour16Brightens(t *testing.T) {
	if got := Colour16(Colour{255, 255, 85, 85}); got != cgaRed|8 {
		t.Errorf("bright red should map to the bright band, got %d", got)
	}
	if got := Colour16(Colour{255, 170, 0, 0}); got != cgaRed {
		t.Errorf("plain red should stay in the dim band, got %d", got)
	}
}
