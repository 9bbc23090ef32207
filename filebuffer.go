package softterm

import (
	"encoding/binary"
	"io"
)

// BackingStore is what the persisted buffers write through: a positioned
// reader/writer, typically an *os.File.
type BackingStore interface {
	io.ReaderAt
	io.WriterAt
}

// cellBatch is how many cells the persisted buffers stage per transfer.
const cellBatch = 256

// --- 16-byte Unicode cell layout ---

// UnicodeCellSize is the canonical on-disk cell size of the Unicode layout:
// foreground ARGB, background ARGB, code point, 16-bit attributes, two pad
// bytes.
const UnicodeCellSize = 16

// unicodeHeaderSize covers the BOM, the size, the cursor position, and the
// sprite/flag bytes.
const unicodeHeaderSize = 16

// MarshalUnicodeCell encodes one cell in the 16-byte Unicode layout.
func MarshalUnicodeCell(c CharacterCell, out []byte) {
	out[0] = c.Foreground.Alpha
	out[1] = c.Foreground.Red
	out[2] = c.Foreground.Green
	out[3] = c.Foreground.Blue
	out[4] = c.Background.Alpha
	out[5] = c.Background.Red
	out[6] = c.Background.Green
	out[7] = c.Background.Blue
	binary.LittleEndian.PutUint32(out[8:], uint32(c.Character))
	binary.LittleEndian.PutUint16(out[12:], uint16(c.Attributes))
	out[14] = 0
	out[15] = 0
}

// UnmarshalUnicodeCell decodes one cell from the 16-byte Unicode layout.
func UnmarshalUnicodeCell(in []byte) CharacterCell {
	return CharacterCell{
		Foreground: Colour{in[0], in[1], in[2], in[3]},
		Background: Colour{in[4], in[5], in[6], in[7]},
		Character:  rune(binary.LittleEndian.Uint32(in[8:])),
		Attributes: Attribute(binary.LittleEndian.Uint16(in[12:])),
	}
}

// UnicodeFileBuffer is a ScreenBuffer persisted in the 16-byte true-colour
// layout, suitable for sharing a display with an on-screen realizer.
type UnicodeFileBuffer struct {
	store     BackingStore
	saved     []byte
	altbuffer bool
	header2   [4]byte
}

// NewUnicodeFileBuffer creates a buffer over the backing store and writes
// the byte-order mark.
func NewUnicodeFileBuffer(store BackingStore) *UnicodeFileBuffer {
	b := &UnicodeFileBuffer{store: store}
	var bom [4]byte
	binary.LittleEndian.PutUint32(bom[:], 0xFEFF)
	b.store.WriteAt(bom[:], 0)
	return b
}

func unicodeOffset(pos int) int64 {
	return unicodeHeaderSize + UnicodeCellSize*int64(pos)
}

func (b *UnicodeFileBuffer) ReadCell(pos int) CharacterCell {
	var raw [UnicodeCellSize]byte
	b.store.ReadAt(raw[:], unicodeOffset(pos))
	return UnmarshalUnicodeCell(raw[:])
}

func (b *UnicodeFileBuffer) WriteNCells(pos, n int, c CharacterCell) {
	var raw [UnicodeCellSize]byte
	MarshalUnicodeCell(c, raw[:])
	batch := make([]byte, 0, cellBatch*UnicodeCellSize)
	for i := 0; i < cellBatch && i < n; i++ {
		batch = append(batch, raw[:]...)
	}
	for n > 0 {
		w := len(batch) / UnicodeCellSize
		if w > n {
			w = n
		}
		b.store.WriteAt(batch[:w*UnicodeCellSize], unicodeOffset(pos))
		pos += w
		n -= w
	}
}

func (b *UnicodeFileBuffer) ModifyNCells(pos, n int, turnoff, flipon Attribute, fgTouched bool, fg Colour, bgTouched bool, bg Colour) {
	raw := make([]byte, cellBatch*UnicodeCellSize)
	for n > 0 {
		w := cellBatch
		if w > n {
			w = n
		}
		chunk := raw[:w*UnicodeCellSize]
		b.store.ReadAt(chunk, unicodeOffset(pos))
		for i := 0; i < w; i++ {
			cell := chunk[i*UnicodeCellSize:]
			attributes := Attribute(binary.LittleEndian.Uint16(cell[12:]))
			attributes = (attributes &^ turnoff) | flipon
			binary.LittleEndian.PutUint16(cell[12:], uint16(attributes))
			if fgTouched {
				cell[0], cell[1], cell[2], cell[3] = fg.Alpha, fg.Red, fg.Green, fg.Blue
			}
			if bgTouched {
				cell[4], cell[5], cell[6], cell[7] = bg.Alpha, bg.Red, bg.Green, bg.Blue
			}
		}
		b.store.WriteAt(chunk, unicodeOffset(pos))
		pos += w
		n -= w
	}
}

func (b *UnicodeFileBuffer) CopyNCells(dst, src, n int) {
	raw := make([]byte, cellBatch*UnicodeCellSize)
	if dst < src {
		for n > 0 {
			w := cellBatch
			if w > n {
				w = n
			}
			chunk := raw[:w*UnicodeCellSize]
			b.store.ReadAt(chunk, unicodeOffset(src))
			b.store.WriteAt(chunk, unicodeOffset(dst))
			src += w
			dst += w
			n -= w
		}
	} else if dst > src {
		src += n
		dst += n
		for n > 0 {
			w := cellBatch
			if w > n {
				w = n
			}
			src -= w
			dst -= w
			n -= w
			chunk := raw[:w*UnicodeCellSize]
			b.store.ReadAt(chunk, unicodeOffset(src))
			b.store.WriteAt(chunk, unicodeOffset(dst))
		}
	}
}

func (b *UnicodeFileBuffer) ScrollUp(start, end, n int, fill CharacterCell) {
	if n <= 0 || start >= end {
		return
	}
	if n < end-start {
		b.CopyNCells(start, start+n, end-start-n)
		b.WriteNCells(end-n, n, fill)
	} else {
		b.WriteNCells(start, end-start, fill)
	}
}

func (b *UnicodeFileBuffer) ScrollDown(start, end, n int, fill CharacterCell) {
	if n <= 0 || start >= end {
		return
	}
	if n < end-start {
		b.CopyNCells(start+n, start, end-start-n)
		b.WriteNCells(start, n, fill)
	} else {
		b.WriteNCells(start, end-start, fill)
	}
}

func (b *UnicodeFileBuffer) SetCursorPos(x, y int) {
	var raw [4]byte
	binary.LittleEndian.PutUint16(raw[0:], uint16(x))
	binary.LittleEndian.PutUint16(raw[2:], uint16(y))
	b.store.WriteAt(raw[:], 8)
}

func (b *UnicodeFileBuffer) SetCursorType(glyph CursorGlyph, attrs CursorAttributes) {
	b.header2[0] = (b.header2[0] &^ 0x0F) | (0x0F & byte(glyph))
	b.header2[1] = (b.header2[1] &^ 0x0F) | (0x0F & byte(attrs))
	b.store.WriteAt(b.header2[:2], 12)
}

func (b *UnicodeFileBuffer) SetPointerType(attrs PointerAttributes) {
	b.header2[2] = (b.header2[2] &^ 0x0F) | (0x0F & byte(attrs))
	b.store.WriteAt(b.header2[2:3], 14)
}

func (b *UnicodeFileBuffer) SetScreenFlags(flags ScreenFlags) {
	b.header2[2] = (b.header2[2] & 0x0F) | byte(flags)<<4
	b.store.WriteAt(b.header2[2:3], 14)
}

func (b *UnicodeFileBuffer) SetSize(w, h int) {
	var raw [4]byte
	binary.LittleEndian.PutUint16(raw[0:], uint16(w))
	binary.LittleEndian.PutUint16(raw[2:], uint16(h))
	b.store.WriteAt(raw[:], 4)
	if f, ok := b.store.(interface{ Truncate(int64) error }); ok {
		f.Truncate(unicodeOffset(w * h))
	}
	b.saved = make([]byte, w*h*UnicodeCellSize)
}

func (b *UnicodeFileBuffer) SetAltBuffer(on bool) {
	if b.altbuffer == on {
		return
	}
	current := make([]byte, len(b.saved))
	b.store.ReadAt(current, unicodeOffset(0))
	b.store.WriteAt(b.saved, unicodeOffset(0))
	b.saved = current
	b.altbuffer = on
}

// --- 2-byte legacy cell layout ---

// LegacyCellSize is the old vcsa cell: a low-ASCII character byte and a
// packed attribute byte.
const LegacyCellSize = 2

const legacyHeaderSize = 4

// MarshalLegacyCell encodes one cell in the 2-byte legacy layout: blink in
// bit 7, VGA background in bits 4..6, bold in bit 3, VGA foreground in bits
// 0..2.
func MarshalLegacyCell(c CharacterCell, out []byte) {
	if c.Character > 0xFE {
		out[0] = 0xFF
	} else {
		out[0] = byte(c.Character)
	}
	var attr byte
	if c.Attributes&AttrBlink != 0 {
		attr |= 0x80
	}
	if c.Attributes&AttrBold != 0 {
		attr |= 0x08
	}
	attr |= VGAColour(c.Foreground)
	attr |= VGAColour(c.Background) << 4
	out[1] = attr
}

// UnmarshalLegacyCell decodes the 2-byte legacy layout back to a cell with
// palette colours.
func UnmarshalLegacyCell(in []byte) CharacterCell {
	var attributes Attribute
	if in[1]&0x80 != 0 {
		attributes |= AttrBlink
	}
	if in[1]&0x08 != 0 {
		attributes |= AttrBold
	}
	return CharacterCell{
		Character:  rune(in[0]),
		Attributes: attributes,
		Foreground: Palette[vgaToPalette(in[1]&0x07)],
		Background: Palette[vgaToPalette(in[1]>>4&0x07)],
	}
}

// vgaToPalette maps the BGR-ordered VGA colour numbers onto the RGB-ordered
// SGR palette.
func vgaToPalette(vga byte) int {
	return int(vga&1)<<2 | int(vga&2) | int(vga&4)>>2
}

// LegacyFileBuffer is a ScreenBuffer persisted in the 2-byte vcsa layout,
// kept for clients of the legacy interface.  Reads return blanks; the
// Unicode buffer alongside it is the authoritative copy.
type LegacyFileBuffer struct {
	store     BackingStore
	saved     []byte
	altbuffer bool
}

// NewLegacyFileBuffer creates a buffer over the backing store.
func NewLegacyFileBuffer(store BackingStore) *LegacyFileBuffer {
	return &LegacyFileBuffer{store: store}
}

func legacyOffset(pos int) int64 {
	return legacyHeaderSize + LegacyCellSize*int64(pos)
}

func (b *LegacyFileBuffer) ReadCell(pos int) CharacterCell {
	// The Unicode buffer handles reads.
	return blankCell()
}

func (b *LegacyFileBuffer) WriteNCells(pos, n int, c CharacterCell) {
	var raw [LegacyCellSize]byte
	MarshalLegacyCell(c, raw[:])
	batch := make([]byte, 0, cellBatch*LegacyCellSize)
	for i := 0; i < cellBatch && i < n; i++ {
		batch = append(batch, raw[:]...)
	}
	for n > 0 {
		w := len(batch) / LegacyCellSize
		if w > n {
			w = n
		}
		b.store.WriteAt(batch[:w*LegacyCellSize], legacyOffset(pos))
		pos += w
		n -= w
	}
}

func (b *LegacyFileBuffer) ModifyNCells(pos, n int, turnoff, flipon Attribute, fgTouched bool, fg Colour, bgTouched bool, bg Colour) {
	raw := make([]byte, cellBatch*LegacyCellSize)
	for n > 0 {
		w := cellBatch
		if w > n {
			w = n
		}
		chunk := raw[:w*LegacyCellSize]
		b.store.ReadAt(chunk, legacyOffset(pos))
		for i := 0; i < w; i++ {
			cell := chunk[i*LegacyCellSize:]
			var attributes Attribute
			if cell[1]&0x80 != 0 {
				attributes |= AttrBlink
			}
			if cell[1]&0x08 != 0 {
				attributes |= AttrBold
			}
			attributes = (attributes &^ turnoff) | flipon
			var attr byte
			if attributes&AttrBlink != 0 {
				attr |= 0x80
			}
			if attributes&AttrBold != 0 {
				attr |= 0x08
			}
			if fgTouched {
				attr |= VGAColour(fg)
			} else {
				attr |= cell[1] & 0x07
			}
			if bgTouched {
				attr |= VGAColour(bg) << 4
			} else {
				attr |= cell[1] & 0x70
			}
			cell[1] = attr
		}
		b.store.WriteAt(chunk, legacyOffset(pos))
		pos += w
		n -= w
	}
}

func (b *LegacyFileBuffer) CopyNCells(dst, src, n int) {
	raw := make([]byte, cellBatch*LegacyCellSize)
	if dst < src {
		for n > 0 {
			w := cellBatch
			if w > n {
				w = n
			}
			chunk := raw[:w*LegacyCellSize]
			b.store.ReadAt(chunk, legacyOffset(src))
			b.store.WriteAt(chunk, legacyOffset(dst))
			src += w
			dst += w
			n -= w
		}
	} else if dst > src {
		src += n
		dst += n
		for n > 0 {
			w := cellBatch
			if w > n {
				w = n
			}
			src -= w
			dst -= w
			n -= w
			chunk := raw[:w*LegacyCellSize]
			b.store.ReadAt(chunk, legacyOffset(src))
			b.store.WriteAt(chunk, legacyOffset(dst))
		}
	}
}

func (b *LegacyFileBuffer) ScrollUp(start, end, n int, fill CharacterCell) {
	if n <= 0 || start >= end {
		return
	}
	if n < end-start {
		b.CopyNCells(start, start+n, end-start-n)
		b.WriteNCells(end-n, n, fill)
	} else {
		b.WriteNCells(start, end-start, fill)
	}
}

func (b *LegacyFileBuffer) ScrollDown(start, end, n int, fill CharacterCell) {
	if n <= 0 || start >= end {
		return
	}
	if n < end-start {
		b.CopyNCells(start+n, start, end-start-n)
		b.WriteNCells(start, n, fill)
	} else {
		b.WriteNCells(start, end-start, fill)
	}
}

func (b *LegacyFileBuffer) SetCursorPos(x, y int) {
	b.store.WriteAt([]byte{byte(x), byte(y)}, 2)
}

func (b *LegacyFileBuffer) SetCursorType(CursorGlyph, CursorAttributes) {}
func (b *LegacyFileBuffer) SetPointerType(PointerAttributes)           {}
func (b *LegacyFileBuffer) SetScreenFlags(ScreenFlags)                 {}

func (b *LegacyFileBuffer) SetSize(w, h int) {
	b.store.WriteAt([]byte{byte(h), byte(w)}, 0)
	if f, ok := b.store.(interface{ Truncate(int64) error }); ok {
		f.Truncate(legacyOffset(w * h))
	}
	b.saved = make([]byte, w*h*LegacyCellSize)
}

func (b *LegacyFileBuffer) SetAltBuffer(on bool) {
	if b.altbuffer == on {
		return
	}
	current := make([]byte, len(b.saved))
	b.store.ReadAt(current, legacyOffset(0))
	b.store.WriteAt(b.saved, legacyOffset(0))
	b.saved = current
	b.altbuffer = on
}

var (
	_ ScreenBuffer = (*UnicodeFileBuffer)(nil)
	_ ScreenBuffer = (*LegacyFileBuffer)(nil)
)
