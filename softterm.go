package softterm

// Setup carries the initial configuration of a SoftTerm.
type Setup struct {
	// Width and Height of the display, in character cells.  Zero values
	// default to 80 by 24.  Either axis is capped at 255.
	Width, Height int
	// Inverted starts the screen in reverse video.
	Inverted bool
	// PanIsScroll makes SU/SD scroll the buffer rather than pan the
	// window, as the Linux and teken emulators (wrongly) do.
	PanIsScroll bool
}

type xy struct {
	x, y int
}

// cursor is a position plus the DEC pending-wrap flag: a printable at the
// last column arms a deferred wrap which the next printable performs.
type cursor struct {
	xy
	advancePending bool
}

type wh struct {
	w, h int
}

// modeFlags is the small record of boolean modes that DECSC/DECRC and
// XTerm's private save/restore shadow.
type modeFlags struct {
	automaticRightMargin  bool
	backgroundColourErase bool
	origin                bool
	leftRightMargins      bool
}

func defaultModes() modeFlags {
	return modeFlags{
		automaticRightMargin:  true,
		backgroundColourErase: true,
	}
}

// savedCursorState is the DECSC capsule: position, attributes, colours, and
// the origin-mode flag.
type savedCursorState struct {
	xy
	attributes Attribute
	colour     ColourPair
	origin     bool
}

// SoftTerm is the display engine: it consumes decoder events and mutates a
// ScreenBuffer, and routes keyboard/mouse mode changes and reports to its
// input-side collaborators.
//
// A SoftTerm is single-threaded and cooperative: feed it from one goroutine
// only.  No operation suspends.
type SoftTerm struct {
	BaseSink

	utf8    *UTF8Decoder
	decoder *ECMA48Decoder

	screen   ScreenBuffer
	keyboard KeyboardBuffer
	mouse    MouseBuffer
	debug    DebugProvider

	scrollOrigin  xy
	displayOrigin xy
	scrollMargin  wh
	displayMargin wh

	activeCursor cursor
	savedCursor  savedCursorState

	hTabPins [256]bool
	vTabPins [256]bool

	modes      modeFlags
	savedModes modeFlags

	overstrike                  bool
	altBuffer                   bool
	panIsScroll                 bool
	noClearScreenOnColumnChange bool

	attributes Attribute
	colour     ColourPair

	cursorGlyph      CursorGlyph
	cursorAttributes CursorAttributes
	invertScreen     bool
	initialInvert    bool

	mouseReporting   bool
	locatorReporting bool

	lastPrintable rune
}

// NewSoftTerm creates a display engine over the given collaborators and
// brings the screen to its initial state.
func NewSoftTerm(screen ScreenBuffer, keyboard KeyboardBuffer, mouse MouseBuffer, setup Setup) *SoftTerm {
	if setup.Width <= 0 {
		setup.Width = 80
	}
	if setup.Height <= 0 {
		setup.Height = 24
	}
	if setup.Width > 255 {
		setup.Width = 255
	}
	if setup.Height > 255 {
		setup.Height = 255
	}

	t := &SoftTerm{
		screen:       screen,
		keyboard:     keyboard,
		mouse:        mouse,
		debug:        NoopDebug{},
		panIsScroll:   setup.PanIsScroll,
		invertScreen:  setup.Inverted,
		initialInvert: setup.Inverted,
	}
	t.utf8 = NewUTF8Decoder(t)
	t.decoder = NewECMA48Decoder(t, DecoderConfig{
		ControlStrings:      true,
		AllowCancel:         true,
		Allow7BitExtensions: true,
	})

	t.displayMargin = wh{setup.Width, setup.Height}
	t.screen.SetSize(setup.Width, setup.Height)
	t.resetToInitialState()
	return t
}

// SetDebugProvider routes engine diagnostics to p.
func (t *SoftTerm) SetDebugProvider(p DebugProvider) {
	if p == nil {
		p = NoopDebug{}
	}
	t.debug = p
	t.decoder.SetDebugProvider(p)
}

// Process feeds one application byte through the UTF-8 and ECMA-48 decoders
// into the display engine.
func (t *SoftTerm) Process(b byte) {
	t.utf8.Put(b)
}

// Write feeds a whole buffer of application bytes.  Implements io.Writer.
func (t *SoftTerm) Write(p []byte) (int, error) {
	for _, b := range p {
		t.utf8.Put(b)
	}
	return len(p), nil
}

// ProcessCodePoint implements CodePointSink.
func (t *SoftTerm) ProcessCodePoint(cp CodePoint) {
	t.decoder.Process(cp)
}

// --- Geometry ---

func (t *SoftTerm) index(x, y int) int {
	return y*t.displayMargin.w + x
}

// topMargin and bottomMargin bound the scroll region rows; bottom is
// exclusive.
func (t *SoftTerm) topMargin() int    { return t.scrollOrigin.y }
func (t *SoftTerm) bottomMargin() int { return t.scrollOrigin.y + t.scrollMargin.h }

// leftMargin and rightMargin bound the scroll region columns; right is
// exclusive.  The band narrows only when DECLRMM is on.
func (t *SoftTerm) leftMargin() int  { return t.scrollOrigin.x }
func (t *SoftTerm) rightMargin() int { return t.scrollOrigin.x + t.scrollMargin.w }

// inScrollRows reports whether the cursor row is inside the scroll region.
func (t *SoftTerm) inScrollRows() bool {
	return t.activeCursor.y >= t.topMargin() && t.activeCursor.y < t.bottomMargin()
}

// lineLimitRight is the exclusive column limit for writes and horizontal
// movement at the current cursor row.
func (t *SoftTerm) lineLimitRight() int {
	if t.modes.leftRightMargins && t.inScrollRows() {
		return t.rightMargin()
	}
	return t.displayMargin.w
}

func (t *SoftTerm) lineLimitLeft() int {
	if t.modes.leftRightMargins && t.inScrollRows() {
		return t.leftMargin()
	}
	return 0
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// --- Cursor bookkeeping ---

func (t *SoftTerm) updateCursorPos() {
	t.screen.SetCursorPos(t.displayOrigin.x+t.activeCursor.x, t.displayOrigin.y+t.activeCursor.y)
}

func (t *SoftTerm) updateCursorType() {
	t.screen.SetCursorType(t.cursorGlyph, t.cursorAttributes)
}

func (t *SoftTerm) updatePointerType() {
	var a PointerAttributes
	if t.sendingMouse() {
		a |= PointerVisible
	}
	t.screen.SetPointerType(a)
}

func (t *SoftTerm) updateScreenFlags() {
	var f ScreenFlags
	if t.invertScreen {
		f |= ScreenInverted
	}
	t.screen.SetScreenFlags(f)
}

// sendingMouse reports whether any pointer report family is active, which
// decides pointer sprite visibility.
func (t *SoftTerm) sendingMouse() bool {
	return t.mouseReporting || t.locatorReporting
}

// --- Erasure ---

// erasureCell is what erase operations write: a space carrying the current
// colours when background-colour erase is on, the default colours otherwise.
func (t *SoftTerm) erasureCell(c rune) CharacterCell {
	cell := CharacterCell{Character: c}
	if t.modes.backgroundColourErase {
		cell.Foreground = t.colour.Foreground
		cell.Background = t.colour.Background
	} else {
		cell.Foreground = DefaultForeground
		cell.Background = DefaultBackground
	}
	return cell
}

// --- Printables ---

// PrintableCharacter implements the SequenceSink printable event: it writes
// one or more cells at the cursor and advances per the DEC pending-wrap
// rules.
func (t *SoftTerm) PrintableCharacter(decodeError bool, shiftLevel uint, c rune) {
	if decodeError {
		t.debug.Debugf("undecodable character replaced with U+FFFD")
	}
	// Shifted printables are keyboard-protocol artefacts on input; on the
	// display side every shift level renders the same glyph.
	_ = shiftLevel

	width := runeWidth(c)
	if width <= 0 {
		// Combining marks and other zero-width characters do not
		// occupy a cell of their own.
		return
	}

	if t.willWrap() {
		t.carriageReturnNoUpdate()
		t.cursorDown(1, true)
	}
	t.activeCursor.advancePending = false

	if !t.overstrike {
		t.insertCharacters(uint32(width))
	}

	cell := CharacterCell{
		Character:  c,
		Attributes: t.attributes,
		Foreground: t.colour.Foreground,
		Background: t.colour.Background,
	}
	t.screen.WriteNCells(t.index(t.activeCursor.x, t.activeCursor.y), 1, cell)
	t.advanceOrPend()
	if width == 2 && !t.activeCursor.advancePending {
		spacer := cell
		spacer.Character = NUL
		t.screen.WriteNCells(t.index(t.activeCursor.x, t.activeCursor.y), 1, spacer)
		t.advanceOrPend()
	}

	t.lastPrintable = c
	t.updateCursorPos()
}

// willWrap reports whether a pending advance must wrap before this printable.
func (t *SoftTerm) willWrap() bool {
	return t.activeCursor.advancePending && t.modes.automaticRightMargin
}

// advanceOrPend moves the cursor one column right, or arms the pending wrap
// when it is already at the last column.
func (t *SoftTerm) advanceOrPend() {
	if t.activeCursor.x+1 >= t.lineLimitRight() {
		if t.modes.automaticRightMargin {
			t.activeCursor.advancePending = true
		}
	} else {
		t.activeCursor.x++
	}
}

func (t *SoftTerm) clearPendingAdvance() {
	t.activeCursor.advancePending = false
}

// repeatPrintableCharacter implements REP.
func (t *SoftTerm) repeatPrintableCharacter(n uint32) {
	if t.lastPrintable == NUL {
		return
	}
	for ; n > 0; n-- {
		t.PrintableCharacter(false, 1, t.lastPrintable)
	}
}
