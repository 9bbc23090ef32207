package softterm

// CursorGlyph selects the shape drawn for the cursor sprite.
type CursorGlyph uint8

const (
	CursorGlyphUnderline CursorGlyph = iota
	CursorGlyphBlock
	CursorGlyphBar
	CursorGlyphBox
	CursorGlyphStar
)

// CursorAttributes carries the cursor sprite visibility and blink state.
type CursorAttributes uint8

const (
	CursorVisible CursorAttributes = 1 << iota
	CursorBlinking
)

// PointerAttributes carries the mouse pointer sprite state.
type PointerAttributes uint8

const (
	PointerVisible PointerAttributes = 1 << iota
)

// ScreenFlags carries whole-screen rendering state.
type ScreenFlags uint8

const (
	ScreenInverted ScreenFlags = 1 << iota
)

// ScreenBuffer is the display-side collaborator of SoftTerm: a cell grid
// with read/write/scroll/copy primitives and cursor/screen metadata.
// Addressing is linear, row-major.  The implementor owns synchronisation;
// SoftTerm assumes each operation completes before the next one starts.
type ScreenBuffer interface {
	ReadCell(pos int) CharacterCell
	WriteNCells(pos, n int, c CharacterCell)
	// ModifyNCells rewrites attributes and colours of a cell run without
	// touching the characters.  turnoff bits are cleared, flipon bits are
	// set; each colour is replaced only when its touched flag is set.
	ModifyNCells(pos, n int, turnoff, flipon Attribute, fgTouched bool, fg Colour, bgTouched bool, bg Colour)
	CopyNCells(dst, src, n int)
	// ScrollUp moves cells [start+n, end) to [start, end-n) and fills the
	// vacated tail with the fill cell; ScrollDown is the mirror image.
	ScrollUp(start, end, n int, fill CharacterCell)
	ScrollDown(start, end, n int, fill CharacterCell)
	SetCursorPos(x, y int)
	SetCursorType(glyph CursorGlyph, attrs CursorAttributes)
	SetPointerType(attrs PointerAttributes)
	SetScreenFlags(flags ScreenFlags)
	SetSize(w, h int)
	// SetAltBuffer swaps between the main and alternate cell storage.
	// The buffer owns the alternate contents; SoftTerm does not retain
	// them.
	SetAltBuffer(on bool)
}

// MemoryBuffer is the in-memory ScreenBuffer used for headless operation
// and tests.
type MemoryBuffer struct {
	width, height int
	cells         []CharacterCell
	saved         []CharacterCell
	alt           bool

	cursorX, cursorY int
	cursorGlyph      CursorGlyph
	cursorAttrs      CursorAttributes
	pointerAttrs     PointerAttributes
	flags            ScreenFlags
}

// NewMemoryBuffer creates a buffer of the given size filled with blanks.
func NewMemoryBuffer(w, h int) *MemoryBuffer {
	b := &MemoryBuffer{}
	b.SetSize(w, h)
	return b
}

func blankCell() CharacterCell {
	return CharacterCell{
		Character:  ' ',
		Foreground: DefaultForeground,
		Background: DefaultBackground,
	}
}

func (b *MemoryBuffer) clip(pos, n int) (int, int) {
	if pos < 0 {
		n += pos
		pos = 0
	}
	if pos > len(b.cells) {
		pos = len(b.cells)
	}
	if n > len(b.cells)-pos {
		n = len(b.cells) - pos
	}
	if n < 0 {
		n = 0
	}
	return pos, n
}

// ReadCell returns the cell at the linear position, or a blank when out of
// range.
func (b *MemoryBuffer) ReadCell(pos int) CharacterCell {
	if pos < 0 || pos >= len(b.cells) {
		return blankCell()
	}
	return b.cells[pos]
}

// WriteNCells stores n copies of c starting at pos.
func (b *MemoryBuffer) WriteNCells(pos, n int, c CharacterCell) {
	pos, n = b.clip(pos, n)
	for i := 0; i < n; i++ {
		b.cells[pos+i] = c
	}
}

// ModifyNCells rewrites attributes and colours without touching characters.
func (b *MemoryBuffer) ModifyNCells(pos, n int, turnoff, flipon Attribute, fgTouched bool, fg Colour, bgTouched bool, bg Colour) {
	pos, n = b.clip(pos, n)
	for i := 0; i < n; i++ {
		cell := &b.cells[pos+i]
		cell.Attributes = (cell.Attributes &^ turnoff) | flipon
		if fgTouched {
			cell.Foreground = fg
		}
		if bgTouched {
			cell.Background = bg
		}
	}
}

// CopyNCells copies a cell run, handling overlap in either direction.
func (b *MemoryBuffer) CopyNCells(dst, src, n int) {
	if dst < 0 || src < 0 || n <= 0 {
		return
	}
	if dst+n > len(b.cells) || src+n > len(b.cells) {
		return
	}
	copy(b.cells[dst:dst+n], b.cells[src:src+n])
}

// ScrollUp moves [start+n, end) to [start, ...) and fills the tail.
func (b *MemoryBuffer) ScrollUp(start, end, n int, fill CharacterCell) {
	start, span := b.clip(start, end-start)
	end = start + span
	if n > span {
		n = span
	}
	if n <= 0 {
		return
	}
	copy(b.cells[start:end-n], b.cells[start+n:end])
	for i := end - n; i < end; i++ {
		b.cells[i] = fill
	}
}

// ScrollDown moves [start, end-n) to [start+n, ...) and fills the head.
func (b *MemoryBuffer) ScrollDown(start, end, n int, fill CharacterCell) {
	start, span := b.clip(start, end-start)
	end = start + span
	if n > span {
		n = span
	}
	if n <= 0 {
		return
	}
	copy(b.cells[start+n:end], b.cells[start:end-n])
	for i := start; i < start+n; i++ {
		b.cells[i] = fill
	}
}

// SetCursorPos records the cursor cell position.
func (b *MemoryBuffer) SetCursorPos(x, y int) {
	b.cursorX, b.cursorY = x, y
}

// SetCursorType records the cursor sprite.
func (b *MemoryBuffer) SetCursorType(glyph CursorGlyph, attrs CursorAttributes) {
	b.cursorGlyph, b.cursorAttrs = glyph, attrs
}

// SetPointerType records the pointer sprite.
func (b *MemoryBuffer) SetPointerType(attrs PointerAttributes) {
	b.pointerAttrs = attrs
}

// SetScreenFlags records the whole-screen flags.
func (b *MemoryBuffer) SetScreenFlags(flags ScreenFlags) {
	b.flags = flags
}

// SetSize resizes the grid.  Cells are reinitialised to blanks; SoftTerm
// repaints after every resize.
func (b *MemoryBuffer) SetSize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	b.width, b.height = w, h
	b.cells = make([]CharacterCell, w*h)
	for i := range b.cells {
		b.cells[i] = blankCell()
	}
	b.saved = make([]CharacterCell, w*h)
	for i := range b.saved {
		b.saved[i] = blankCell()
	}
}

// SetAltBuffer swaps the visible cells with the alternate storage.
func (b *MemoryBuffer) SetAltBuffer(on bool) {
	if b.alt == on {
		return
	}
	b.cells, b.saved = b.saved, b.cells
	b.alt = on
}

// Width returns the grid width in columns.
func (b *MemoryBuffer) Width() int { return b.width }

// Height returns the grid height in rows.
func (b *MemoryBuffer) Height() int { return b.height }

// CursorPos returns the last cursor position set by the emulator.
func (b *MemoryBuffer) CursorPos() (x, y int) { return b.cursorX, b.cursorY }

// CursorType returns the last cursor sprite set by the emulator.
func (b *MemoryBuffer) CursorType() (CursorGlyph, CursorAttributes) {
	return b.cursorGlyph, b.cursorAttrs
}

// Flags returns the last screen flags set by the emulator.
func (b *MemoryBuffer) Flags() ScreenFlags { return b.flags }

// At returns the cell at column x, row y.
func (b *MemoryBuffer) At(x, y int) CharacterCell {
	return b.ReadCell(y*b.width + x)
}

// Line returns the text content of row y with trailing blanks trimmed.
func (b *MemoryBuffer) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	end := b.width
	for end > 0 {
		c := b.cells[y*b.width+end-1].Character
		if c != ' ' && c != NUL {
			break
		}
		end--
	}
	runes := make([]rune, 0, end)
	for x := 0; x < end; x++ {
		c := b.cells[y*b.width+x].Character
		if c == NUL {
			c = ' '
		}
		runes = append(runes, c)
	}
	return string(runes)
}

// MultiBuffer fans every ScreenBuffer operation out to a list of buffers,
// so that one emulator can maintain several renditions of the same display.
type MultiBuffer struct {
	buffers []ScreenBuffer
}

// Add appends a buffer to the fan-out list.
func (m *MultiBuffer) Add(b ScreenBuffer) {
	m.buffers = append(m.buffers, b)
}

func (m *MultiBuffer) ReadCell(pos int) CharacterCell {
	var c CharacterCell
	for _, b := range m.buffers {
		c = b.ReadCell(pos)
	}
	return c
}

func (m *MultiBuffer) WriteNCells(pos, n int, c CharacterCell) {
	for _, b := range m.buffers {
		b.WriteNCells(pos, n, c)
	}
}

func (m *MultiBuffer) ModifyNCells(pos, n int, turnoff, flipon Attribute, fgTouched bool, fg Colour, bgTouched bool, bg Colour) {
	for _, b := range m.buffers {
		b.ModifyNCells(pos, n, turnoff, flipon, fgTouched, fg, bgTouched, bg)
	}
}

func (m *MultiBuffer) CopyNCells(dst, src, n int) {
	for _, b := range m.buffers {
		b.CopyNCells(dst, src, n)
	}
}

func (m *MultiBuffer) ScrollUp(start, end, n int, fill CharacterCell) {
	for _, b := range m.buffers {
		b.ScrollUp(start, end, n, fill)
	}
}

func (m *MultiBuffer) ScrollDown(start, end, n int, fill CharacterCell) {
	for _, b := range m.buffers {
		b.ScrollDown(start, end, n, fill)
	}
}

func (m *MultiBuffer) SetCursorPos(x, y int) {
	for _, b := range m.buffers {
		b.SetCursorPos(x, y)
	}
}

func (m *MultiBuffer) SetCursorType(glyph CursorGlyph, attrs CursorAttributes) {
	for _, b := range m.buffers {
		b.SetCursorType(glyph, attrs)
	}
}

func (m *MultiBuffer) SetPointerType(attrs PointerAttributes) {
	for _, b := range m.buffers {
		b.SetPointerType(attrs)
	}
}

func (m *MultiBuffer) SetScreenFlags(flags ScreenFlags) {
	for _, b := range m.buffers {
		b.SetScreenFlags(flags)
	}
}

func (m *MultiBuffer) SetSize(w, h int) {
	for _, b := range m.buffers {
		b.SetSize(w, h)
	}
}

func (m *MultiBuffer) SetAltBuffer(on bool) {
	for _, b := range m.buffers {
		b.SetAltBuffer(on)
	}
}

var (
	_ ScreenBuffer = (*MemoryBuffer)(nil)
	_ ScreenBuffer = (*MultiBuffer)(nil)
)
