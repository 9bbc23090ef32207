package softterm

import (
	"bytes"
	"testing"
)

// memStore is an in-memory BackingStore that grows on demand, standing in
// for the display file.
type memStore struct {
	data []byte
}

func (m *memStore) ensure(n int64) {
	if int64(len(m.data)) < n {
		m.data = append(m.data, make([]byte, n-int64(len(m.data)))...)
	}
}

func (m *memStore) ReadAt(p []byte, off int64) (int, error) {
	m.ensure(off + int64(len(p)))
	copy(p, m.data[off:])
	return len(p), nil
}

func (m *memStore) WriteAt(p []byte, off int64) (int, error) {
	m.ensure(off + int64(len(p)))
	copy(m.data[off:], p)
	return len(p), nil
}

func TestUnicodeCellLayout(t *testing.T) {
	c := CharacterCell{
		Character:  'A',
		Attributes: AttrBold | AttrInverse,
		Foreground: Colour{255, 10, 20, 30},
		Background: Colour{255, 40, 50, 60},
	}
	var raw [UnicodeCellSize]byte
	MarshalUnicodeCell(c, raw[:])
	want := []byte{
		255, 10, 20, 30, // foreground ARGB
		255, 40, 50, 60, // background ARGB
		'A', 0, 0, 0, // code point, little endian
		byte(AttrBold | AttrInverse), 0, // attributes, little endian
		0, 0, // padding
	}
	if !bytes.Equal(raw[:], want) {
		t.Errorf("layout mismatch:\n got % x\nwant % x", raw[:], want)
	}
	if got := UnmarshalUnicodeCell(raw[:]); got != c {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestLegacyCellLayout(t *testing.T) {
	c := CharacterCell{
		Character:  'B',
		Attributes: AttrBlink | AttrBold,
		Foreground: Colour{255, 170, 0, 0},   // red
		Background: Colour{255, 0, 0, 170},   // blue
	}
	var raw [LegacyCellSize]byte
	MarshalLegacyCell(c, raw[:])
	if raw[0] != 'B' {
		t.Errorf("expected character byte, got %#x", raw[0])
	}
	// blink | bg blue (1) << 4 | bold | fg red (4).
	if raw[1] != 0x80|0x10|0x08|0x04 {
		t.Errorf("attribute byte mismatch: %#x", raw[1])
	}

	got := UnmarshalLegacyCell(raw[:])
	if got.Attributes != AttrBlink|AttrBold {
		t.Errorf("attributes mismatch: %v", got.Attributes)
	}
	if got.Foreground != Palette[1] {
		t.Errorf("expected palette red, got %+v", got.Foreground)
	}
	if got.Background != Palette[4] {
		t.Errorf("expected palette blue, got %+v", got.Background)
	}

	// Characters past the low range collapse to 0xFF.
	wide := CharacterCell{Character: 0x4E2D}
	MarshalLegacyCell(wide, raw[:])
	if raw[0] != 0xFF {
		t.Errorf("expected 0xFF for a high code point, got %#x", raw[0])
	}
}

func TestUnicodeFileBufferPersists(t *testing.T) {
	store := &memStore{}
	b := NewUnicodeFileBuffer(store)
	b.SetSize(4, 2)
	c := CharacterCell{Character: 'x', Foreground: DefaultForeground, Background: DefaultBackground}
	b.WriteNCells(5, 1, c)
	if got := b.ReadCell(5); got != c {
		t.Errorf("expected cell back, got %+v", got)
	}
	// The BOM leads the file.
	if store.data[0] != 0xFF || store.data[1] != 0xFE {
		t.Errorf("expected little-endian BOM, got % x", store.data[:4])
	}
	// The size field follows it.
	if store.data[4] != 4 || store.data[6] != 2 {
		t.Errorf("expected 4x2 size header, got % x", store.data[4:8])
	}
}

func TestUnicodeFileBufferScrollAndAlt(t *testing.T) {
	store := &memStore{}
	b := NewUnicodeFileBuffer(store)
	b.SetSize(2, 2)
	for i := 0; i < 4; i++ {
		b.WriteNCells(i, 1, CharacterCell{Character: rune('a' + i)})
	}
	b.ScrollUp(0, 4, 2, blankCell())
	if b.ReadCell(0).Character != 'c' || b.ReadCell(1).Character != 'd' {
		t.Error("scroll up moved the wrong cells")
	}
	if b.ReadCell(2).Character != ' ' {
		t.Error("scroll up should blank the tail")
	}

	b.SetAltBuffer(true)
	b.WriteNCells(0, 1, CharacterCell{Character: 'Z'})
	b.SetAltBuffer(false)
	if b.ReadCell(0).Character != 'c' {
		t.Error("primary contents should be restored after the alt round trip")
	}
}

func TestLegacyFileBufferDrivenBySoftTerm(t *testing.T) {
	store := &memStore{}
	b := NewLegacyFileBuffer(store)
	encoder := NewInputEncoder(DECVT)
	term := NewSoftTerm(b, encoder, encoder, Setup{Width: 4, Height: 2})
	term.Write([]byte("hi"))
	// Header: rows, cols, cursor x, cursor y.
	if store.data[0] != 2 || store.data[1] != 4 {
		t.Errorf("expected 2x4 header, got % x", store.data[:2])
	}
	if store.data[2] != 2 || store.data[3] != 0 {
		t.Errorf("expected cursor at (2,0), got % x", store.data[2:4])
	}
	if store.data[legacyHeaderSize] != 'h' || store.data[legacyHeaderSize+2] != 'i' {
		t.Errorf("expected cell characters, got % x", store.data[legacyHeaderSize:legacyHeaderSize+4])
	}
}
