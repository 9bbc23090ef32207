package softterm

// --- ANSI modes (SM/RM) ---

func (t *SoftTerm) setModes(set bool) {
	t.Args.MinimumOneArg()
	for i := 0; i < t.Args.Count(); i++ {
		t.setMode(t.Args.ZeroIfEmpty(i), set)
	}
}

func (t *SoftTerm) setMode(n uint32, set bool) {
	switch n {
	case 4: // IRM
		t.overstrike = !set
	case 20: // LNM
		// Linefeed/newline mode is a line-discipline concern here.
	default:
		t.debug.Debugf("ignored mode %d", n)
	}
}

// --- DEC private modes (DECSET/DECRST) ---

func (t *SoftTerm) setPrivateModes(set bool) {
	t.Args.MinimumOneArg()
	for i := 0; i < t.Args.Count(); i++ {
		t.setPrivateMode(t.Args.ZeroIfEmpty(i), set)
	}
}

func (t *SoftTerm) setPrivateMode(n uint32, set bool) {
	switch n {
	case 1: // DECCKM
		t.keyboard.SetCursorApplicationMode(set)
	case 3: // DECCOLM
		if set {
			t.resize(132, t.displayMargin.h)
		} else {
			t.resize(80, t.displayMargin.h)
		}
		t.home()
	case 5: // DECSCNM
		t.invertScreen = set
		t.updateScreenFlags()
	case 6: // DECOM
		t.modes.origin = set
		t.home()
	case 7: // DECAWM
		t.modes.automaticRightMargin = set
		t.clearPendingAdvance()
	case 9: // X10 mouse
		t.mouseReporting = set
		t.mouse.SetSendXTermMouse(set)
		t.mouse.SetSendXTermMouseClicks(set)
		t.updatePointerType()
	case 12: // cursor blink
		if set {
			t.cursorAttributes |= CursorBlinking
		} else {
			t.cursorAttributes &^= CursorBlinking
		}
		t.updateCursorType()
	case 25: // DECTCEM
		if set {
			t.cursorAttributes |= CursorVisible
		} else {
			t.cursorAttributes &^= CursorVisible
		}
		t.updateCursorType()
	case 66: // DECNKM
		t.keyboard.SetCalculatorApplicationMode(set)
	case 67: // DECBKM
		t.keyboard.SetBackspaceIsBS(set)
	case 69: // DECLRMM
		t.modes.leftRightMargins = set
		if !set {
			t.scrollOrigin.x = 0
			t.scrollMargin.w = t.displayMargin.w
		}
	case 95: // DECNCSM
		t.noClearScreenOnColumnChange = set
	case 117: // DECECM: erasure ignores the current colours when set
		t.modes.backgroundColourErase = !set
	case 47: // XTerm alternate buffer, bare form
		t.switchAltBuffer(set)
	case 1037:
		t.keyboard.SetDeleteIsDEL(set)
	case 1000: // VT200 click reporting
		t.mouseReporting = set
		t.mouse.SetSendXTermMouse(set)
		t.mouse.SetSendXTermMouseClicks(set)
		t.updatePointerType()
	case 1002: // button-motion reporting
		t.mouseReporting = set
		t.mouse.SetSendXTermMouse(set)
		t.mouse.SetSendXTermMouseClicks(set)
		t.mouse.SetSendXTermMouseButtonMotions(set)
		t.updatePointerType()
	case 1003: // any-motion reporting
		t.mouseReporting = set
		t.mouse.SetSendXTermMouse(set)
		t.mouse.SetSendXTermMouseClicks(set)
		t.mouse.SetSendXTermMouseButtonMotions(set)
		t.mouse.SetSendXTermMouseNoButtonMotions(set)
		t.updatePointerType()
	case 1005, 1015:
		// UTF-8 and urxvt coordinate forms; reports always use the
		// 1006 form.
	case 1006:
		// SGR coordinate form; always in effect for reports.
	case 1047: // alternate buffer, cleared on exit
		if set {
			t.switchAltBuffer(true)
		} else {
			if t.altBuffer {
				t.clearDisplay(' ')
			}
			t.switchAltBuffer(false)
		}
	case 1048: // cursor save/restore only
		if set {
			t.saveCursor()
		} else {
			t.restoreCursor()
		}
	case 1049: // save cursor, switch, clear on entry
		if set {
			t.saveCursor()
			t.switchAltBuffer(true)
			t.clearDisplay(' ')
			t.home()
		} else {
			t.switchAltBuffer(false)
			t.restoreCursor()
		}
	case 2004: // bracketed paste
		t.keyboard.SetSendPasteEvent(set)
	default:
		t.debug.Debugf("ignored private mode %d", n)
	}
}

func (t *SoftTerm) switchAltBuffer(on bool) {
	if t.altBuffer == on {
		return
	}
	t.altBuffer = on
	t.screen.SetAltBuffer(on)
}

// setSCOModes handles the SCO console private mode family; none of them
// affect a headless display.
func (t *SoftTerm) setSCOModes(set bool) {
	t.Args.MinimumOneArg()
	for i := 0; i < t.Args.Count(); i++ {
		t.debug.Debugf("ignored SCO mode %d", t.Args.ZeroIfEmpty(i))
	}
	_ = set
}

// saveModes and restoreModes implement the XTerm private mode shadow
// (CSI ? s / CSI ? r without arguments worth honouring individually).
func (t *SoftTerm) saveModes() {
	t.savedModes = t.modes
}

func (t *SoftTerm) restoreModes() {
	t.modes = t.savedModes
	if !t.modes.leftRightMargins {
		t.scrollOrigin.x = 0
		t.scrollMargin.w = t.displayMargin.w
	}
}

// --- Margins ---

// setTopBottomMargins implements DECSTBM.  Out-of-bounds or collapsed
// margins fall back to the full screen; the cursor homes.
func (t *SoftTerm) setTopBottomMargins() {
	top := int(t.Args.OneIfZeroOrEmpty(0))
	bottom := int(t.Args.ThisIfZeroOrEmpty(1, uint32(t.displayMargin.h)))
	if top < 1 || bottom > t.displayMargin.h || top >= bottom {
		top, bottom = 1, t.displayMargin.h
	}
	t.scrollOrigin.y = top - 1
	t.scrollMargin.h = bottom - top + 1
	t.home()
}

// setLeftRightMargins implements DECSLRM; honoured only when DECLRMM is on.
func (t *SoftTerm) setLeftRightMargins() {
	left := int(t.Args.OneIfZeroOrEmpty(0))
	right := int(t.Args.ThisIfZeroOrEmpty(1, uint32(t.displayMargin.w)))
	if left < 1 || right > t.displayMargin.w || left >= right {
		left, right = 1, t.displayMargin.w
	}
	t.scrollOrigin.x = left - 1
	t.scrollMargin.w = right - left + 1
	t.home()
}

// scoSaveCursorOrDECSLRM disambiguates CSI s, which SCO uses for save-cursor
// and DEC reuses for DECSLRM when DECLRMM is enabled.
func (t *SoftTerm) scoSaveCursorOrDECSLRM() {
	if t.modes.leftRightMargins {
		t.setLeftRightMargins()
	} else {
		t.saveCursor()
	}
}

// --- Cursor styles ---

// setCursorStyle implements DECSCUSR.
func (t *SoftTerm) setCursorStyle() {
	style := t.Args.ZeroIfEmpty(0)
	blink := style == 0 || style%2 == 1
	switch style {
	case 0, 1, 2:
		t.cursorGlyph = CursorGlyphBlock
	case 3, 4:
		t.cursorGlyph = CursorGlyphUnderline
	case 5, 6:
		t.cursorGlyph = CursorGlyphBar
	default:
		return
	}
	if blink {
		t.cursorAttributes |= CursorBlinking
	} else {
		t.cursorAttributes &^= CursorBlinking
	}
	t.updateCursorType()
}

// setSCOCursorType implements the SCO console CSI = n C form: 0 hides the
// cursor, anything else shows it.
func (t *SoftTerm) setSCOCursorType() {
	if t.Args.ZeroIfEmpty(0) == 0 {
		t.cursorAttributes &^= CursorVisible
	} else {
		t.cursorAttributes |= CursorVisible
	}
	t.updateCursorType()
}

// setLinuxCursorType implements the Linux console CSI ? n c form.
func (t *SoftTerm) setLinuxCursorType() {
	switch t.Args.ZeroIfEmpty(0) {
	case 1: // invisible
		t.cursorAttributes &^= CursorVisible
	case 2: // underscore
		t.cursorGlyph = CursorGlyphUnderline
		t.cursorAttributes |= CursorVisible
	case 8: // full block
		t.cursorGlyph = CursorGlyphBlock
		t.cursorAttributes |= CursorVisible
	default:
		t.cursorGlyph = CursorGlyphBlock
		t.cursorAttributes |= CursorVisible
	}
	t.updateCursorType()
}

// --- Window geometry ---

// setLinesPerPageOrDTTerm implements CSI t: values 24 and up are DECSLPP
// lines-per-page; below that only the DTTerm resize form 8;h;w is honoured.
func (t *SoftTerm) setLinesPerPageOrDTTerm() {
	op := t.Args.ZeroIfEmpty(0)
	switch {
	case op >= 24:
		t.resize(t.displayMargin.w, int(op))
	case op == 8:
		rows := int(t.Args.ThisIfZeroOrEmpty(1, uint32(t.displayMargin.h)))
		cols := int(t.Args.ThisIfZeroOrEmpty(2, uint32(t.displayMargin.w)))
		t.resize(cols, rows)
	default:
		t.debug.Debugf("ignored window operation %d", op)
	}
}

// setColumnsPerPage implements DECSCPP.
func (t *SoftTerm) setColumnsPerPage() {
	cols := int(t.Args.ThisIfZeroOrEmpty(0, 80))
	t.resize(cols, t.displayMargin.h)
}

// --- DEC locator ---

// enableLocatorReports implements DECELR.
func (t *SoftTerm) enableLocatorReports() {
	mode := t.Args.ZeroIfEmpty(0)
	if mode > 2 {
		mode = 0
	}
	t.locatorReporting = mode != 0
	t.mouse.SetSendDECLocator(mode)
	t.updatePointerType()
}

// selectLocatorEvents implements DECSLE.
func (t *SoftTerm) selectLocatorEvents() {
	t.Args.MinimumOneArg()
	for i := 0; i < t.Args.Count(); i++ {
		switch t.Args.ZeroIfEmpty(i) {
		case 0:
			t.mouse.SetSendDECLocatorPressEvent(false)
			t.mouse.SetSendDECLocatorReleaseEvent(false)
		case 1:
			t.mouse.SetSendDECLocatorPressEvent(true)
		case 2:
			t.mouse.SetSendDECLocatorPressEvent(false)
		case 3:
			t.mouse.SetSendDECLocatorReleaseEvent(true)
		case 4:
			t.mouse.SetSendDECLocatorReleaseEvent(false)
		}
	}
}
