package softterm

// ControlSequence implements the SequenceSink control-sequence event: the
// CSI function catalogue, keyed on the final, the last intermediate, and the
// first private parameter character.  Unknown sequences are consumed and
// ignored.
func (t *SoftTerm) ControlSequence(c rune, lastIntermediate rune, firstPrivateParameter rune) {
	switch lastIntermediate {
	case NUL:
		switch firstPrivateParameter {
		case NUL:
			t.plainControlSequence(c)
		case '?':
			t.decControlSequence(c)
		case '>':
			t.gtControlSequence(c)
		case '=':
			t.eqControlSequence(c)
		default:
			t.debug.Debugf("ignored control sequence %q%q", firstPrivateParameter, c)
		}
	case ' ':
		switch c {
		case 'q': // DECSCUSR
			t.setCursorStyle()
		case '@': // SL
			t.scrollLeft(t.Args.OneIfZeroOrEmpty(0))
		case 'A': // SR
			t.scrollRight(t.Args.OneIfZeroOrEmpty(0))
		default:
			t.debug.Debugf("ignored control sequence SP %q", c)
		}
	case '!':
		switch c {
		case 'p': // DECSTR
			t.softReset()
		default:
			t.debug.Debugf("ignored control sequence ! %q", c)
		}
	case '$':
		switch c {
		case 'r': // DECCARA
			t.changeAreaAttributes()
		case 'w': // DECRQPSR
			t.requestPresentationStateReport()
		case '|': // DECSCPP
			t.setColumnsPerPage()
		default:
			t.debug.Debugf("ignored control sequence $ %q", c)
		}
	case '\'':
		switch c {
		case 'w': // DECEFR filter rectangles: no pointer to constrain
		case 'z': // DECELR
			t.enableLocatorReports()
		case '{': // DECSLE
			t.selectLocatorEvents()
		case '|': // DECRQLP
			t.mouse.RequestDECLocatorReport()
		case '}': // DECIC
			t.insertColumnsInScrollAreaAt(t.activeCursor.x, t.Args.OneIfZeroOrEmpty(0))
		case '~': // DECDC
			t.deleteColumnsInScrollAreaAt(t.activeCursor.x, t.Args.OneIfZeroOrEmpty(0))
		default:
			t.debug.Debugf("ignored control sequence ' %q", c)
		}
	default:
		t.debug.Debugf("ignored control sequence %q %q", lastIntermediate, c)
	}
	t.updateCursorPos()
}

// plainControlSequence handles finals with no intermediate and no private
// parameter marker.
func (t *SoftTerm) plainControlSequence(c rune) {
	switch c {
	case '@': // ICH
		t.insertCharacters(t.Args.OneIfZeroOrEmpty(0))
	case 'A': // CUU
		t.cursorUp(t.Args.ZDIfZeroOneIfEmpty(0), false)
	case 'B': // CUD
		t.cursorDown(t.Args.ZDIfZeroOneIfEmpty(0), false)
	case 'C': // CUF
		t.cursorRight(t.Args.ZDIfZeroOneIfEmpty(0), false)
	case 'D': // CUB
		t.cursorLeft(t.Args.ZDIfZeroOneIfEmpty(0), false)
	case 'E': // CNL
		t.cursorDown(t.Args.OneIfZeroOrEmpty(0), false)
		t.carriageReturnNoUpdate()
	case 'F': // CPL
		t.cursorUp(t.Args.OneIfZeroOrEmpty(0), false)
		t.carriageReturnNoUpdate()
	case 'G', '`': // CHA, HPA
		t.gotoX(t.Args.OneIfZeroOrEmpty(0))
	case 'H', 'f': // CUP, HVP
		t.gotoYX(t.Args.OneIfZeroOrEmpty(0), t.Args.OneIfZeroOrEmpty(1))
	case 'I': // CHT
		t.horizontalTab(t.Args.OneIfZeroOrEmpty(0), true)
	case 'J': // ED
		t.eraseInDisplay()
	case 'K': // EL
		t.eraseInLine()
	case 'L': // IL
		t.insertLines(t.Args.OneIfZeroOrEmpty(0))
	case 'M': // DL
		t.deleteLines(t.Args.OneIfZeroOrEmpty(0))
	case 'P': // DCH
		t.deleteCharacters(t.Args.OneIfZeroOrEmpty(0))
	case 'S': // SU
		t.scrollUp(t.Args.OneIfZeroOrEmpty(0))
	case 'T': // SD
		t.scrollDown(t.Args.OneIfZeroOrEmpty(0))
	case 'W': // CTC
		t.cursorTabulationControl()
	case 'X': // ECH
		t.eraseCharacters(t.Args.OneIfZeroOrEmpty(0))
	case 'Y': // CVT
		t.verticalTab(t.Args.OneIfZeroOrEmpty(0), true)
	case 'Z': // CBT
		t.backwardsHorizontalTab(t.Args.OneIfZeroOrEmpty(0), true)
	case 'a': // HPR
		t.cursorRight(t.Args.OneIfZeroOrEmpty(0), false)
	case 'b': // REP
		t.repeatPrintableCharacter(t.Args.OneIfZeroOrEmpty(0))
	case 'c': // DA1
		t.sendPrimaryDeviceAttributes()
	case 'd': // VPA
		t.gotoY(t.Args.OneIfZeroOrEmpty(0))
	case 'e': // VPR
		t.cursorDown(t.Args.OneIfZeroOrEmpty(0), false)
	case 'g': // TBC
		t.tabClear()
	case 'h': // SM
		t.setModes(true)
	case 'l': // RM
		t.setModes(false)
	case 'm': // SGR
		t.setGraphicRendition()
	case 'n': // DSR
		t.sendDeviceStatusReports()
	case 'r': // DECSTBM
		t.setTopBottomMargins()
	case 's': // SCOSC or DECSLRM
		t.scoSaveCursorOrDECSLRM()
	case 't': // DECSLPP / DTTerm window ops
		t.setLinesPerPageOrDTTerm()
	case 'u': // SCORC
		t.restoreCursor()
	default:
		t.debug.Debugf("ignored control sequence %q", c)
	}
}

// decControlSequence handles the '?' private parameter family.
func (t *SoftTerm) decControlSequence(c rune) {
	switch c {
	case 'J': // DECSED: selective erase handled as plain erase
		t.eraseInDisplay()
	case 'K': // DECSEL
		t.eraseInLine()
	case 'W': // DECST8C
		t.decCursorTabulationControl()
	case 'c': // Linux console cursor shape
		t.setLinuxCursorType()
	case 'h': // DECSET
		t.setPrivateModes(true)
	case 'l': // DECRST
		t.setPrivateModes(false)
	case 'n': // DECDSR
		t.sendPrivateDeviceStatusReports()
	case 'r': // XTerm restore private modes
		t.restoreModes()
	case 's': // XTerm save private modes
		t.saveModes()
	default:
		t.debug.Debugf("ignored private control sequence %q", c)
	}
}

// gtControlSequence handles the '>' private parameter family.
func (t *SoftTerm) gtControlSequence(c rune) {
	switch c {
	case 'c': // DA2
		t.sendSecondaryDeviceAttributes()
	default:
		t.debug.Debugf("ignored control sequence >%q", c)
	}
}

// eqControlSequence handles the '=' private parameter family.
func (t *SoftTerm) eqControlSequence(c rune) {
	switch c {
	case 'c': // DA3
		t.sendTertiaryDeviceAttributes()
	case 'C': // SCO console cursor type
		t.setSCOCursorType()
	case 'h', 'l': // SCO console private modes
		t.setSCOModes(c == 'h')
	default:
		t.debug.Debugf("ignored control sequence =%q", c)
	}
}

// requestPresentationStateReport wires DECRQPSR ("CSI Ps $ w") to
// sendPresentationStateReports.
func (t *SoftTerm) requestPresentationStateReport() {
	t.sendPresentationStateReports()
}
