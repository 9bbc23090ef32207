package softterm

// ControlCharacter implements the SequenceSink isolated-control event.
func (t *SoftTerm) ControlCharacter(c rune) {
	switch c {
	case NUL, DEL:
		// Padding; ignored.
	case BEL:
		// No annunciator on a headless terminal.
	case BS:
		t.cursorLeft(1, false)
	case TAB:
		t.horizontalTab(1, false)
	case LF, VT, FF:
		t.cursorDown(1, true)
	case CR:
		t.carriageReturnNoUpdate()
	case SO, SI:
		// Shift-out/shift-in; a single charset is maintained.
	case IND:
		t.cursorDown(1, true)
	case NEL:
		t.carriageReturnNoUpdate()
		t.cursorDown(1, true)
	case HTS:
		t.setHorizontalTabstop()
	case VTS:
		t.setVerticalTabstopAt(t.activeCursor.y, true)
	case RI:
		t.cursorUp(1, true)
	case SS2, SS3, SSA:
		// Starved single shifts replayed by the decoder.
	default:
		t.debug.Debugf("ignored control character %#02x", c)
	}
	t.updateCursorPos()
}

// EscapeSequence implements the SequenceSink escape event.  Fe finals have
// already been folded into C1 controls by the decoder.
func (t *SoftTerm) EscapeSequence(c rune, firstIntermediate rune) {
	switch firstIntermediate {
	case NUL:
		switch c {
		case '7': // DECSC
			t.saveCursor()
		case '8': // DECRC
			t.restoreCursor()
		case 'c': // RIS
			t.resetToInitialState()
		case '=': // DECKPAM
			t.keyboard.SetCalculatorApplicationMode(true)
		case '>': // DECKPNM
			t.keyboard.SetCalculatorApplicationMode(false)
		case '6': // DECBI
			t.backIndex()
		case '9': // DECFI
			t.forwardIndex()
		case 'l', 'm':
			// HP memory lock/unlock; ignored.
		default:
			t.debug.Debugf("ignored escape sequence %q", c)
		}
	case ' ':
		switch c {
		case 'F': // S7C1T
			t.keyboard.Set8BitControl1(false)
		case 'G': // S8C1T
			t.keyboard.Set8BitControl1(true)
		default:
			t.debug.Debugf("ignored escape sequence SP %q", c)
		}
	case '#':
		switch c {
		case '8': // DECALN
			t.screenAlignmentTest()
		default:
			// Double width/height lines are not emulated.
		}
	case '(', ')', '*', '+', '-', '.', '/':
		// Charset designations; a single charset is maintained.
	default:
		t.debug.Debugf("ignored escape sequence %q %q", firstIntermediate, c)
	}
	t.updateCursorPos()
}

// ControlString implements the SequenceSink control-string event.  The
// display engine has no use for DCS/OSC/PM/APC/SOS bodies; hosts that want
// them hook the decoder with their own sink.
func (t *SoftTerm) ControlString(introducer rune) {
	t.debug.Debugf("ignored control string %#02x %q", introducer, t.Str.String())
}

// --- Cursor movement primitives ---

// cursorDown moves n rows down.  With scroll set, hitting the bottom margin
// scrolls the region up instead of stopping (IND/LF behaviour).
func (t *SoftTerm) cursorDown(n uint32, scroll bool) {
	t.clearPendingAdvance()
	for ; n > 0; n-- {
		switch {
		case t.activeCursor.y+1 == t.bottomMargin():
			if scroll {
				t.scrollRegionUp(1)
			}
		case t.activeCursor.y+1 < t.displayMargin.h:
			t.activeCursor.y++
		}
	}
}

// cursorUp moves n rows up.  With scroll set, hitting the top margin scrolls
// the region down instead of stopping (RI behaviour).
func (t *SoftTerm) cursorUp(n uint32, scroll bool) {
	t.clearPendingAdvance()
	for ; n > 0; n-- {
		switch {
		case t.activeCursor.y == t.topMargin():
			if scroll {
				t.scrollRegionDown(1)
			}
		case t.activeCursor.y > 0:
			t.activeCursor.y--
		}
	}
}

// cursorLeft moves n columns left, stopping at the left limit.  The wrap
// flag is reserved for reverse-wrap dialects and currently stops at the
// margin.
func (t *SoftTerm) cursorLeft(n uint32, wrap bool) {
	t.clearPendingAdvance()
	left := t.lineLimitLeft()
	for ; n > 0 && t.activeCursor.x > left; n-- {
		t.activeCursor.x--
	}
	_ = wrap
}

// cursorRight moves n columns right, stopping at the right limit.
func (t *SoftTerm) cursorRight(n uint32, wrap bool) {
	t.clearPendingAdvance()
	limit := t.lineLimitRight() - 1
	for ; n > 0 && t.activeCursor.x < limit; n-- {
		t.activeCursor.x++
	}
	_ = wrap
}

func (t *SoftTerm) carriageReturnNoUpdate() {
	t.clearPendingAdvance()
	left := t.lineLimitLeft()
	if t.activeCursor.x >= left {
		t.activeCursor.x = left
	} else {
		t.activeCursor.x = 0
	}
}

// gotoYX implements CUP/HVP with 1-based arguments.  In origin mode the
// coordinates are relative to the scroll margins and clamp to them; outside
// it they clamp to the screen.
func (t *SoftTerm) gotoYX(row, col uint32) {
	t.clearPendingAdvance()
	y := int(row) - 1
	x := int(col) - 1
	if t.modes.origin {
		y += t.topMargin()
		x += t.leftMargin()
		t.activeCursor.y = clamp(y, t.topMargin(), t.bottomMargin()-1)
		t.activeCursor.x = clamp(x, t.leftMargin(), t.rightMargin()-1)
	} else {
		t.activeCursor.y = clamp(y, 0, t.displayMargin.h-1)
		t.activeCursor.x = clamp(x, 0, t.displayMargin.w-1)
	}
}

func (t *SoftTerm) gotoX(col uint32) {
	t.clearPendingAdvance()
	x := int(col) - 1
	if t.modes.origin {
		x += t.leftMargin()
		t.activeCursor.x = clamp(x, t.leftMargin(), t.rightMargin()-1)
	} else {
		t.activeCursor.x = clamp(x, 0, t.displayMargin.w-1)
	}
}

func (t *SoftTerm) gotoY(row uint32) {
	t.clearPendingAdvance()
	y := int(row) - 1
	if t.modes.origin {
		y += t.topMargin()
		t.activeCursor.y = clamp(y, t.topMargin(), t.bottomMargin()-1)
	} else {
		t.activeCursor.y = clamp(y, 0, t.displayMargin.h-1)
	}
}

func (t *SoftTerm) home() {
	t.gotoYX(1, 1)
}

// --- Saved cursor (DECSC/DECRC) ---

func (t *SoftTerm) saveCursor() {
	t.savedCursor = savedCursorState{
		xy:         t.activeCursor.xy,
		attributes: t.attributes,
		colour:     t.colour,
		origin:     t.modes.origin,
	}
}

func (t *SoftTerm) restoreCursor() {
	t.activeCursor.xy = t.savedCursor.xy
	t.clearPendingAdvance()
	t.attributes = t.savedCursor.attributes
	t.colour = t.savedCursor.colour
	t.modes.origin = t.savedCursor.origin
	t.activeCursor.y = clamp(t.activeCursor.y, 0, t.displayMargin.h-1)
	t.activeCursor.x = clamp(t.activeCursor.x, 0, t.displayMargin.w-1)
}

// --- Reset ---

func (t *SoftTerm) resetMargins() {
	t.scrollOrigin = xy{}
	t.scrollMargin = t.displayMargin
}

func (t *SoftTerm) resetToInitialState() {
	t.resetMargins()
	t.activeCursor = cursor{}
	t.savedCursor = savedCursorState{}
	t.attributes = 0
	t.colour = ColourPair{DefaultForeground, DefaultBackground}
	t.modes = defaultModes()
	t.savedModes = t.modes
	t.overstrike = true
	t.lastPrintable = NUL

	t.setRegularHorizontalTabstops(8)
	t.clearAllVerticalTabstops()

	if t.altBuffer {
		t.altBuffer = false
		t.screen.SetAltBuffer(false)
	}

	t.cursorGlyph = CursorGlyphBlock
	t.cursorAttributes = CursorVisible | CursorBlinking
	t.invertScreen = t.initialInvert

	t.keyboard.Set8BitControl1(false)
	t.keyboard.SetBackspaceIsBS(false)
	t.keyboard.SetEscapeIsFS(false)
	t.keyboard.SetDeleteIsDEL(false)
	t.keyboard.SetSendPasteEvent(false)
	t.keyboard.SetCursorApplicationMode(false)
	t.keyboard.SetCalculatorApplicationMode(false)

	t.mouseReporting = false
	t.locatorReporting = false
	t.mouse.SetSendXTermMouse(false)
	t.mouse.SetSendXTermMouseClicks(false)
	t.mouse.SetSendXTermMouseButtonMotions(false)
	t.mouse.SetSendXTermMouseNoButtonMotions(false)
	t.mouse.SetSendDECLocator(0)
	t.mouse.SetSendDECLocatorPressEvent(false)
	t.mouse.SetSendDECLocatorReleaseEvent(false)

	t.clearDisplay(' ')
	t.updateCursorPos()
	t.updateCursorType()
	t.updatePointerType()
	t.updateScreenFlags()
	t.keyboard.ReportSize(t.displayMargin.w, t.displayMargin.h)
}

// softReset implements DECSTR: modes return to their defaults, the display
// and cursor position stay.
func (t *SoftTerm) softReset() {
	t.modes = defaultModes()
	t.savedModes = t.modes
	t.overstrike = true
	t.clearPendingAdvance()
	t.resetMargins()
	t.cursorAttributes |= CursorVisible
	t.keyboard.SetCursorApplicationMode(false)
	t.keyboard.SetCalculatorApplicationMode(false)
	t.updateCursorType()
}

// screenAlignmentTest implements DECALN: margins reset, the display fills
// with E, and the cursor homes.
func (t *SoftTerm) screenAlignmentTest() {
	t.resetMargins()
	t.modes.origin = false
	fill := CharacterCell{
		Character:  'E',
		Foreground: DefaultForeground,
		Background: DefaultBackground,
	}
	t.screen.WriteNCells(0, t.displayMargin.w*t.displayMargin.h, fill)
	t.activeCursor = cursor{}
}

// resize changes the display geometry and repaints.
func (t *SoftTerm) resize(columns, rows int) {
	columns = clamp(columns, 1, 255)
	rows = clamp(rows, 1, 255)
	t.displayMargin = wh{columns, rows}
	t.screen.SetSize(columns, rows)
	t.resetMargins()
	t.activeCursor.x = clamp(t.activeCursor.x, 0, columns-1)
	t.activeCursor.y = clamp(t.activeCursor.y, 0, rows-1)
	t.clearPendingAdvance()
	t.clearDisplay(' ')
	t.updateCursorPos()
	t.keyboard.ReportSize(columns, rows)
}
