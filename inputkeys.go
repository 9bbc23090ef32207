package softterm

// --- Ordinary-key and combinator helpers ---

// writeLatin1OrCSISequence sends the bare character unmodified and the CSI
// letter form otherwise.
func (e *InputEncoder) writeLatin1OrCSISequence(csiChar byte, ordChar byte, m uint8) {
	if m != 0 {
		e.writeCSISequence(1, m, csiChar)
	} else {
		e.writeLatin1(ordChar)
	}
}

func (e *InputEncoder) writeSS3OrLatin1(shift bool, shiftedChar, ordChar byte) {
	if shift {
		e.writeSS3Character(shiftedChar)
	} else {
		e.writeLatin1(ordChar)
	}
}

func (e *InputEncoder) writeSS3OrCSISequence(shift bool, shiftedChar, csiChar byte, m uint8) {
	if shift && m == 0 {
		e.writeSS3Character(shiftedChar)
	} else {
		e.writeCSISequence(1, m, csiChar)
	}
}

func (e *InputEncoder) writeSS3OrCSISequenceAmbig(shift bool, c byte, m uint8) {
	if shift && m == 0 {
		e.writeSS3Character(c)
	} else {
		e.writeCSISequenceAmbig(1, m, c)
	}
}

func (e *InputEncoder) writeSS3OrDECFNK(shift bool, c byte, decfnk uint, m uint8) {
	if shift && m == 0 {
		e.writeSS3Character(c)
	} else {
		e.writeDECFNK(decfnk, m)
	}
}

func (e *InputEncoder) writeOrdOrDECFNK(ordMode bool, ordChar byte, decfnk uint, m uint8) {
	if ordMode && m == 0 {
		e.writeLatin1(ordChar)
	} else {
		e.writeDECFNK(decfnk, m)
	}
}

func (e *InputEncoder) writeOrdOrDECFNKAmbig(ordMode bool, ordChar byte, decfnk uint, m uint8) {
	if ordMode && m == 0 {
		e.writeLatin1(ordChar)
	} else {
		e.writeDECFNKAmbig(decfnk, m)
	}
}

// writeBackspaceOrDEL sends BS or DEL per the backspace mode, Control
// flipping the choice; other modifiers force the XTerm modified-key form.
func (e *InputEncoder) writeBackspaceOrDEL(m uint8) {
	if m&^ModifierControl != 0 {
		e.writeXTermModKey(8, m)
		return
	}
	bs := e.backspaceIsBS
	if m&ModifierControl != 0 {
		bs = !bs
	}
	if bs {
		e.writeRawByte(byte(BS))
	} else {
		e.writeRawByte(byte(DEL))
	}
}

func (e *InputEncoder) writeESCOrFS(m uint8) {
	if m != 0 {
		e.writeXTermModKey(27, m)
		return
	}
	if e.escapeIsFS {
		e.writeRawByte(byte(FS))
	} else {
		e.writeRawByte(byte(ESC))
	}
}

func (e *InputEncoder) writeReturnEnter(m uint8) {
	if m&^ModifierControl != 0 {
		e.writeXTermModKey(13, m)
		return
	}
	if m&ModifierControl != 0 {
		e.writeRawByte(byte(LF))
	} else {
		e.writeRawByte(byte(CR))
	}
}

// --- Keypad key shapes ---

// writeDECVTKeypadKeyFNK: strict DEC VT conformance means that modifiers are
// ignored in application modes.
func (e *InputEncoder) writeDECVTKeypadKeyFNK(appMode bool, appChar byte, decfnk uint, m uint8) {
	if appMode {
		e.writeSS3Character(appChar)
	} else {
		e.writeDECFNKAmbig(decfnk, m)
	}
}

func (e *InputEncoder) writeDECVTKeypadKeyCSI(appMode bool, appChar, csiChar byte, m uint8) {
	if appMode {
		e.writeSS3Character(appChar)
	} else {
		e.writeCSISequenceAmbig(1, m, csiChar)
	}
}

func (e *InputEncoder) writeDECVTKeypadKey(appMode bool, appChar, csiChar byte, decfnk uint, m uint8) {
	switch {
	case appMode:
		e.writeSS3Character(appChar)
	case m&ModifierLevel3 != 0:
		e.writeDECFNKAmbig(decfnk, m)
	default:
		e.writeCSISequenceAmbig(1, m, csiChar)
	}
}

// writeXTermPCKeypadKey* reproduce XTerm's PC-mode behaviour: modified
// application-mode keys come out as broken SS3 sequences, and application
// mode only wins when Level 2 shift is held.
func (e *InputEncoder) writeXTermPCKeypadKeyFNK(appMode bool, appChar byte, decfnk uint, m uint8) {
	if appMode && m&ModifierLevel2 != 0 {
		e.writeBrokenSS3Sequence(m, appChar)
	} else {
		e.writeDECFNKAmbig(decfnk, m)
	}
}

func (e *InputEncoder) writeXTermPCKeypadKeyCSI(appMode bool, appChar, csiChar byte, m uint8) {
	if appMode && m&ModifierLevel2 != 0 {
		e.writeBrokenSS3Sequence(m, appChar)
	} else {
		e.writeCSISequenceAmbig(1, m, csiChar)
	}
}

func (e *InputEncoder) writeXTermPCKeypadKey(appMode bool, appChar, csiChar byte, decfnk uint, m uint8) {
	switch {
	case appMode && m&ModifierLevel2 != 0:
		e.writeBrokenSS3Sequence(m, appChar)
	case m&ModifierLevel3 != 0:
		e.writeDECFNKAmbig(decfnk, m)
	default:
		e.writeCSISequenceAmbig(1, m, csiChar)
	}
}

// writeTekenKeypadKey prefers DECFNK whenever modifiers are present.
func (e *InputEncoder) writeTekenKeypadKey(appMode bool, appChar, csiChar byte, decfnk uint, m uint8) {
	if m != 0 {
		e.writeDECFNK(decfnk, m)
	} else {
		e.writeSS3OrCSISequence(appMode, appChar, csiChar, m)
	}
}

// --- Function keys ---

// decFunctionKeyNumbers is the DEC function-key index table: F1..F24 to the
// DECFNK numbers a VT520 transmits.
var decFunctionKeyNumbers = [24]uint{
	11, 12, 13, 14, 15,
	17, 18, 19, 20, 21,
	23, 24,
	25, 26, 28, 29, 31, 32, 33, 34,
	35, 36, 42, 43, // F21..F24 are XTerm extensions
}

func (e *InputEncoder) writeFunctionKeyDECVT(k uint16, m uint8) {
	if !e.sendDECFunctionKeys {
		e.writeFNK(uint(k), m)
		return
	}
	if k >= 1 && int(k) <= len(decFunctionKeyNumbers) {
		e.writeDECFNKAmbig(decFunctionKeyNumbers[k-1], m)
	} else {
		// Fall back to the standard control sequence.
		e.writeFNK(uint(k), m)
	}
}

// scoFNKCharacter returns the SCO console final for function key number k,
// or -1 when out of range.  The table is the SCO-derived encoding that
// lingers in FreeBSD, not what SCO Unix keyboard(7) documents.
func scoFNKCharacter(k uint16) int {
	switch {
	case k < 1:
		// The SCO system has no F0 ('L').
		return -1
	case k < 15:
		return int(k) - 1 + 'M'
	case k < 41:
		return int(k) - 15 + 'a'
	case k < 49:
		return int("@[\\]^_`{"[k-41])
	default:
		return -1
	}
}

// scoFoldModifiers folds modifiers into the function key number in 12-key
// bands: Level2 +12 and Control +24 per the console documentation, with
// Level3, Group2 and Super banded above them as extensions.
func scoFoldModifiers(k uint16, m uint8) uint16 {
	if m&ModifierLevel2 != 0 {
		k += 12
	}
	if m&ModifierControl != 0 {
		k += 24
	}
	if m&ModifierLevel3 != 0 {
		k += 48
	}
	if m&ModifierGroup2 != 0 {
		k += 96
	}
	if m&ModifierSuper != 0 {
		k += 192
	}
	return k
}

func (e *InputEncoder) writeFunctionKeySCOConsole(k uint16, m uint8) {
	if !e.sendSCOFunctionKeys {
		e.writeFunctionKeyDECVT(k, m)
		return
	}
	if c := scoFNKCharacter(scoFoldModifiers(k, m)); c >= 0 {
		e.writeSCOConsoleFNK(0, byte(c))
		return
	}
	if c := scoFNKCharacter(k); c >= 0 {
		// Modifiers that fold past the table ride as an extension.
		e.writeSCOConsoleFNK(m, byte(c))
		return
	}
	// Fall back to the standard control sequence.
	e.writeFNK(uint(k), m)
}

// writeFunctionKeyTeken copes with libteken's DECFNK switching: F1..F12
// unmodified go the DEC way, everything else the SCO way.
func (e *InputEncoder) writeFunctionKeyTeken(k uint16, m uint8) {
	if !e.sendTekenFunctionKeys || (k < 13 && m == 0) {
		e.writeFunctionKeyDECVT(k, m)
	} else {
		e.writeFunctionKeySCOConsole(k, m)
	}
}

func (e *InputEncoder) writeFunctionKey(k uint16, m uint8) {
	e.setPasting(false)
	switch e.emulation {
	case Teken:
		e.writeFunctionKeyTeken(k, m)
	case SCOConsole:
		e.writeFunctionKeySCOConsole(k, m)
	default:
		e.writeFunctionKeyDECVT(k, m)
	}
}

// --- Extended keys ---

// writeExtendedKeyCommonExtensions covers keys every dialect shares: the
// exotic calculator-pad legends and the private extended-FNK fallback.
func (e *InputEncoder) writeExtendedKeyCommonExtensions(k uint16, m uint8) {
	switch k {
	case ExtendedKeyPad00:
		e.writeRawString("00")
	case ExtendedKeyPad000:
		e.writeRawString("000")
	case ExtendedKeyPadThousandsSep:
		e.writeRawByte(',')
	case ExtendedKeyPadDecimalSep:
		e.writeRawByte('.')
	case ExtendedKeyPadCurrencyUnit:
		e.writeUnicode(0x00A4)
	case ExtendedKeyPadCurrencySub:
		e.writeUnicode(0x00A2)
	case ExtendedKeyPadOpenBracket:
		e.writeRawByte('[')
	case ExtendedKeyPadCloseBracket:
		e.writeRawByte(']')
	case ExtendedKeyPadOpenBrace:
		e.writeRawByte('{')
	case ExtendedKeyPadCloseBrace:
		e.writeRawByte('}')
	case ExtendedKeyPadA:
		e.writeRawByte('A')
	case ExtendedKeyPadB:
		e.writeRawByte('B')
	case ExtendedKeyPadC:
		e.writeRawByte('C')
	case ExtendedKeyPadD:
		e.writeRawByte('D')
	case ExtendedKeyPadE:
		e.writeRawByte('E')
	case ExtendedKeyPadF:
		e.writeRawByte('F')
	case ExtendedKeyPadXOR:
		e.writeUnicode(0x22BB)
	case ExtendedKeyPadCaret:
		e.writeRawByte('^')
	case ExtendedKeyPadPercent:
		e.writeRawByte('%')
	case ExtendedKeyPadLess:
		e.writeRawByte('<')
	case ExtendedKeyPadGreater:
		e.writeRawByte('>')
	case ExtendedKeyPadAnd:
		e.writeUnicode(0x2227)
	case ExtendedKeyPadAndAnd:
		e.writeRawString("&&")
	case ExtendedKeyPadOr:
		e.writeUnicode(0x2228)
	case ExtendedKeyPadOrOr:
		e.writeRawString("||")
	case ExtendedKeyPadColon:
		e.writeRawByte(':')
	case ExtendedKeyPadHash:
		e.writeRawByte('#')
	case ExtendedKeyPadSpace:
		e.writeRawByte(' ')
	case ExtendedKeyPadAt:
		e.writeRawByte('@')
	case ExtendedKeyPadExclamation:
		e.writeRawByte('!')
	case ExtendedKeyPadSign:
		e.writeUnicode(0x00B1)
	default:
		if !isNonUSBKey(k) {
			e.writeUSBExtendedFNK(uint(k), m)
		}
	}
}

// writeExtendedKeyDECVT writes the sequences defined by the DEC VT510 and
// VT520 programmers' references.  There is no way to transmit modifier
// state with application-mode keys.
func (e *InputEncoder) writeExtendedKeyDECVT(k uint16, m uint8) {
	switch k {
	// The calculator keypad.
	case ExtendedKeyPadTab:
		e.writeLatin1OrCSISequence('I', byte(TAB), m)
	case ExtendedKeyPadEnter:
		if e.calculatorApplicationMode {
			e.writeSS3Character('M')
		} else {
			e.writeReturnEnter(m)
		}
	case ExtendedKeyPadF1:
		e.writeSS3Character('P')
	case ExtendedKeyPadF2:
		e.writeSS3Character('Q')
	case ExtendedKeyPadF3:
		e.writeSS3Character('R')
	case ExtendedKeyPadF4:
		e.writeSS3Character('S')
	case ExtendedKeyPadF5:
		e.writeSS3Character('T')
	case ExtendedKeyPadEquals, ExtendedKeyPadEqualsAS400:
		e.writeSS3OrLatin1(e.calculatorApplicationMode, 'X', '=')
	case ExtendedKeyPadAsterisk:
		e.writeSS3OrLatin1(e.calculatorApplicationMode, 'j', '*')
	case ExtendedKeyPadPlus:
		e.writeSS3OrLatin1(e.calculatorApplicationMode, 'k', '+')
	case ExtendedKeyPadComma:
		e.writeSS3OrLatin1(e.calculatorApplicationMode, 'l', ',')
	case ExtendedKeyPadMinus:
		e.writeSS3OrLatin1(e.calculatorApplicationMode, 'm', '-')
	case ExtendedKeyPadDelete:
		e.writeDECVTKeypadKeyFNK(e.calculatorApplicationMode, 'n', 3, m)
	case ExtendedKeyPadSlash:
		e.writeSS3OrLatin1(e.calculatorApplicationMode, 'o', '/')
	case ExtendedKeyPadInsert:
		e.writeDECVTKeypadKeyFNK(e.calculatorApplicationMode, 'p', 2, m)
	case ExtendedKeyPadEnd:
		e.writeDECVTKeypadKeyCSI(e.calculatorApplicationMode, 'q', 'F', m)
	case ExtendedKeyPadDown:
		e.writeDECVTKeypadKey(e.calculatorApplicationMode, 'r', 'B', 8, m)
	case ExtendedKeyPadPageDown:
		e.writeDECVTKeypadKeyFNK(e.calculatorApplicationMode, 's', 6, m)
	case ExtendedKeyPadLeft:
		e.writeDECVTKeypadKey(e.calculatorApplicationMode, 't', 'D', 7, m)
	case ExtendedKeyPadCentre:
		e.writeDECVTKeypadKeyCSI(e.calculatorApplicationMode, 'u', 'E', m)
	case ExtendedKeyPadRight:
		e.writeDECVTKeypadKey(e.calculatorApplicationMode, 'v', 'C', 10, m)
	case ExtendedKeyPadHome:
		e.writeDECVTKeypadKeyCSI(e.calculatorApplicationMode, 'w', 'H', m)
	case ExtendedKeyPadUp:
		e.writeDECVTKeypadKey(e.calculatorApplicationMode, 'x', 'A', 9, m)
	case ExtendedKeyPadPageUp:
		e.writeDECVTKeypadKeyFNK(e.calculatorApplicationMode, 'y', 5, m)
	// The cursor/editing keypad.
	case ExtendedKeyUpArrow, ExtendedKeyScrollUp:
		e.writeDECVTKeypadKey(e.cursorApplicationMode, 'A', 'A', 9, m)
	case ExtendedKeyDownArrow, ExtendedKeyScrollDown:
		e.writeDECVTKeypadKey(e.cursorApplicationMode, 'B', 'B', 8, m)
	case ExtendedKeyRightArrow:
		e.writeDECVTKeypadKey(e.cursorApplicationMode, 'C', 'C', 10, m)
	case ExtendedKeyLeftArrow:
		e.writeDECVTKeypadKey(e.cursorApplicationMode, 'D', 'D', 7, m)
	case ExtendedKeyCentre:
		e.writeDECVTKeypadKeyCSI(false, 'E', 'E', m)
	case ExtendedKeyEnd:
		e.writeDECVTKeypadKeyCSI(false, 'F', 'F', m)
	case ExtendedKeyHome:
		e.writeDECVTKeypadKeyCSI(false, 'H', 'H', m)
	case ExtendedKeyTab:
		e.writeLatin1OrCSISequence('I', byte(TAB), m)
	case ExtendedKeyBacktab:
		e.writeDECVTKeypadKeyCSI(false, 'Z', 'Z', m)
	case ExtendedKeyFind:
		e.writeDECFNKAmbig(1, m)
	case ExtendedKeyInsert, ExtendedKeyInsChar:
		e.writeDECFNKAmbig(2, m)
	case ExtendedKeyDelete, ExtendedKeyDelChar:
		e.writeOrdOrDECFNKAmbig(e.deleteIsDEL, byte(DEL), 3, m)
	case ExtendedKeySelect:
		e.writeDECFNKAmbig(4, m)
	case ExtendedKeyPageUp, ExtendedKeyPrevious:
		e.writeDECFNKAmbig(5, m)
	case ExtendedKeyPageDown, ExtendedKeyNext:
		e.writeDECFNKAmbig(6, m)
	case ExtendedKeyBackspace:
		e.writeBackspaceOrDEL(m)
	case ExtendedKeyEscape:
		e.writeESCOrFS(m)
	case ExtendedKeyReturnOrEnter:
		e.writeReturnEnter(m)
	default:
		e.writeExtendedKeyCommonExtensions(k, m)
	}
}

// writeExtendedKeyXTermPC writes what XTerm produces in its PC mode, broken
// SS3 sequences and all.
func (e *InputEncoder) writeExtendedKeyXTermPC(k uint16, m uint8) {
	switch k {
	// The calculator keypad.
	case ExtendedKeyPadTab:
		e.writeXTermPCKeypadKeyCSI(e.calculatorApplicationMode, 'I', 'I', m)
	case ExtendedKeyPadEnter:
		if e.calculatorApplicationMode {
			e.writeXTermPCKeypadKeyCSI(true, 'M', 'M', m)
		} else {
			e.writeReturnEnter(m)
		}
	case ExtendedKeyPadF1:
		e.writeXTermPCKeypadKeyCSI(e.calculatorApplicationMode, 'P', 'P', m)
	case ExtendedKeyPadF2:
		e.writeXTermPCKeypadKeyCSI(e.calculatorApplicationMode, 'Q', 'Q', m)
	case ExtendedKeyPadF3:
		e.writeXTermPCKeypadKeyCSI(e.calculatorApplicationMode, 'R', 'R', m)
	case ExtendedKeyPadF4:
		e.writeXTermPCKeypadKeyCSI(e.calculatorApplicationMode, 'S', 'S', m)
	case ExtendedKeyPadF5:
		e.writeXTermPCKeypadKeyCSI(e.calculatorApplicationMode, 'T', 'T', m)
	case ExtendedKeyPadEquals, ExtendedKeyPadEqualsAS400:
		e.writeSS3OrLatin1(e.calculatorApplicationMode, 'X', '=')
	case ExtendedKeyPadAsterisk:
		e.writeSS3OrLatin1(e.calculatorApplicationMode, 'j', '*')
	case ExtendedKeyPadPlus:
		e.writeSS3OrLatin1(e.calculatorApplicationMode, 'k', '+')
	case ExtendedKeyPadComma:
		e.writeSS3OrLatin1(e.calculatorApplicationMode, 'l', ',')
	case ExtendedKeyPadMinus:
		e.writeSS3OrLatin1(e.calculatorApplicationMode, 'm', '-')
	case ExtendedKeyPadDelete:
		e.writeXTermPCKeypadKeyFNK(e.calculatorApplicationMode, 'n', 3, m)
	case ExtendedKeyPadSlash:
		e.writeSS3OrLatin1(e.calculatorApplicationMode, 'o', '/')
	case ExtendedKeyPadInsert:
		e.writeXTermPCKeypadKeyFNK(e.calculatorApplicationMode, 'p', 2, m)
	case ExtendedKeyPadEnd:
		e.writeXTermPCKeypadKeyCSI(e.calculatorApplicationMode, 'q', 'F', m)
	case ExtendedKeyPadDown:
		e.writeXTermPCKeypadKey(e.calculatorApplicationMode, 'r', 'B', 8, m)
	case ExtendedKeyPadPageDown:
		e.writeXTermPCKeypadKeyFNK(e.calculatorApplicationMode, 's', 6, m)
	case ExtendedKeyPadLeft:
		e.writeXTermPCKeypadKey(e.calculatorApplicationMode, 't', 'D', 7, m)
	case ExtendedKeyPadCentre:
		e.writeXTermPCKeypadKeyCSI(e.calculatorApplicationMode, 'u', 'E', m)
	case ExtendedKeyPadRight:
		e.writeXTermPCKeypadKey(e.calculatorApplicationMode, 'v', 'C', 10, m)
	case ExtendedKeyPadHome:
		e.writeXTermPCKeypadKeyCSI(e.calculatorApplicationMode, 'w', 'H', m)
	case ExtendedKeyPadUp:
		e.writeXTermPCKeypadKey(e.calculatorApplicationMode, 'x', 'A', 9, m)
	case ExtendedKeyPadPageUp:
		e.writeXTermPCKeypadKeyFNK(e.calculatorApplicationMode, 'y', 5, m)
	// The cursor/editing keypad.
	case ExtendedKeyUpArrow, ExtendedKeyScrollUp:
		e.writeSS3OrCSISequenceAmbig(e.cursorApplicationMode, 'A', m)
	case ExtendedKeyDownArrow, ExtendedKeyScrollDown:
		e.writeSS3OrCSISequenceAmbig(e.cursorApplicationMode, 'B', m)
	case ExtendedKeyRightArrow:
		e.writeSS3OrCSISequenceAmbig(e.cursorApplicationMode, 'C', m)
	case ExtendedKeyLeftArrow:
		e.writeSS3OrCSISequenceAmbig(e.cursorApplicationMode, 'D', m)
	case ExtendedKeyCentre:
		e.writeSS3OrCSISequenceAmbig(e.cursorApplicationMode, 'E', m)
	case ExtendedKeyEnd:
		e.writeSS3OrCSISequenceAmbig(e.cursorApplicationMode, 'F', m)
	case ExtendedKeyHome:
		e.writeSS3OrCSISequenceAmbig(e.cursorApplicationMode, 'H', m)
	case ExtendedKeyTab:
		e.writeLatin1OrCSISequence('I', byte(TAB), m)
	case ExtendedKeyBacktab:
		e.writeSS3OrCSISequence(e.cursorApplicationMode, 'Z', 'Z', m)
	case ExtendedKeyFind:
		e.writeDECFNKAmbig(1, m)
	case ExtendedKeyInsert, ExtendedKeyInsChar:
		e.writeDECFNKAmbig(2, m)
	case ExtendedKeyDelete, ExtendedKeyDelChar:
		e.writeOrdOrDECFNKAmbig(e.deleteIsDEL, byte(DEL), 3, m)
	case ExtendedKeySelect:
		e.writeDECFNKAmbig(4, m)
	case ExtendedKeyPageUp, ExtendedKeyPrevious:
		e.writeDECFNKAmbig(5, m)
	case ExtendedKeyPageDown, ExtendedKeyNext:
		e.writeDECFNKAmbig(6, m)
	case ExtendedKeyBackspace:
		e.writeBackspaceOrDEL(m)
	case ExtendedKeyEscape:
		e.writeESCOrFS(m)
	case ExtendedKeyReturnOrEnter:
		e.writeReturnEnter(m)
	default:
		e.writeExtendedKeyCommonExtensions(k, m)
	}
}

// writeExtendedKeyTeken writes the libteken sequences, extended to respect
// the application keypad modes and transmit modifiers in ISO 8613-6 form.
func (e *InputEncoder) writeExtendedKeyTeken(k uint16, m uint8) {
	switch k {
	// The calculator keypad.
	case ExtendedKeyPadEnter:
		if e.calculatorApplicationMode {
			e.writeSS3OrCSISequence(true, 'M', 'M', m)
		} else {
			e.writeReturnEnter(m)
		}
	case ExtendedKeyPadF1:
		e.writeSS3OrCSISequence(true, 'P', 'P', m)
	case ExtendedKeyPadF2:
		e.writeSS3OrCSISequence(true, 'Q', 'Q', m)
	case ExtendedKeyPadF3:
		e.writeSS3OrCSISequence(true, 'R', 'R', m)
	case ExtendedKeyPadF4:
		e.writeSS3OrCSISequence(true, 'S', 'S', m)
	case ExtendedKeyPadF5:
		e.writeSS3OrCSISequence(true, 'T', 'T', m)
	case ExtendedKeyPadEquals, ExtendedKeyPadEqualsAS400:
		e.writeSS3OrLatin1(e.calculatorApplicationMode, 'X', '=')
	case ExtendedKeyPadAsterisk:
		e.writeSS3OrLatin1(e.calculatorApplicationMode, 'j', '*')
	case ExtendedKeyPadPlus:
		e.writeSS3OrLatin1(e.calculatorApplicationMode, 'k', '+')
	case ExtendedKeyPadComma:
		e.writeSS3OrLatin1(e.calculatorApplicationMode, 'l', ',')
	case ExtendedKeyPadMinus:
		e.writeSS3OrLatin1(e.calculatorApplicationMode, 'm', '-')
	case ExtendedKeyPadDelete:
		e.writeSS3OrDECFNK(e.calculatorApplicationMode, 'n', 3, m)
	case ExtendedKeyPadSlash:
		e.writeSS3OrLatin1(e.calculatorApplicationMode, 'o', '/')
	case ExtendedKeyPadInsert:
		e.writeSS3OrDECFNK(e.calculatorApplicationMode, 'p', 2, m)
	case ExtendedKeyPadEnd:
		e.writeSS3OrCSISequence(e.calculatorApplicationMode, 'q', 'F', m)
	case ExtendedKeyPadDown:
		e.writeTekenKeypadKey(e.calculatorApplicationMode, 'r', 'B', 8, m)
	case ExtendedKeyPadPageDown:
		e.writeSS3OrDECFNK(e.calculatorApplicationMode, 's', 6, m)
	case ExtendedKeyPadLeft:
		e.writeTekenKeypadKey(e.calculatorApplicationMode, 't', 'D', 7, m)
	case ExtendedKeyPadCentre:
		e.writeSS3OrCSISequence(e.calculatorApplicationMode, 'u', 'E', m)
	case ExtendedKeyPadRight:
		e.writeTekenKeypadKey(e.calculatorApplicationMode, 'v', 'C', 10, m)
	case ExtendedKeyPadHome:
		e.writeSS3OrCSISequence(e.calculatorApplicationMode, 'w', 'H', m)
	case ExtendedKeyPadUp:
		e.writeTekenKeypadKey(e.calculatorApplicationMode, 'x', 'A', 9, m)
	case ExtendedKeyPadPageUp:
		e.writeSS3OrDECFNK(e.calculatorApplicationMode, 'y', 5, m)
	// The cursor/editing keypad.
	case ExtendedKeyUpArrow, ExtendedKeyScrollUp:
		e.writeSS3OrCSISequence(e.cursorApplicationMode, 'A', 'A', m)
	case ExtendedKeyDownArrow, ExtendedKeyScrollDown:
		e.writeSS3OrCSISequence(e.cursorApplicationMode, 'B', 'B', m)
	case ExtendedKeyRightArrow:
		e.writeSS3OrCSISequence(e.cursorApplicationMode, 'C', 'C', m)
	case ExtendedKeyLeftArrow:
		e.writeSS3OrCSISequence(e.cursorApplicationMode, 'D', 'D', m)
	case ExtendedKeyCentre:
		e.writeSS3OrCSISequence(e.cursorApplicationMode, 'E', 'E', m)
	case ExtendedKeyEnd:
		e.writeSS3OrCSISequence(e.cursorApplicationMode, 'F', 'F', m)
	case ExtendedKeyHome:
		e.writeSS3OrCSISequence(e.cursorApplicationMode, 'H', 'H', m)
	case ExtendedKeyTab, ExtendedKeyPadTab:
		e.writeLatin1OrCSISequence('I', byte(TAB), m)
	case ExtendedKeyBacktab:
		e.writeSS3OrCSISequence(e.cursorApplicationMode, 'Z', 'Z', m)
	case ExtendedKeyFind:
		e.writeDECFNK(1, m)
	case ExtendedKeyInsert, ExtendedKeyInsChar:
		e.writeDECFNK(2, m)
	case ExtendedKeyDelete, ExtendedKeyDelChar:
		e.writeOrdOrDECFNK(e.deleteIsDEL, byte(DEL), 3, m)
	case ExtendedKeySelect:
		e.writeDECFNK(4, m)
	case ExtendedKeyPageUp, ExtendedKeyPrevious:
		e.writeDECFNK(5, m)
	case ExtendedKeyPageDown, ExtendedKeyNext:
		e.writeDECFNK(6, m)
	case ExtendedKeyBackspace:
		e.writeBackspaceOrDEL(m)
	case ExtendedKeyEscape:
		e.writeESCOrFS(m)
	case ExtendedKeyReturnOrEnter:
		e.writeReturnEnter(m)
	default:
		e.writeExtendedKeyCommonExtensions(k, m)
	}
}

// writeExtendedKeySCOConsole writes what a DEC VT520 produces in SCO Console
// mode, which does not distinguish the keypads from the editing keys.
func (e *InputEncoder) writeExtendedKeySCOConsole(k uint16, m uint8) {
	switch k {
	case ExtendedKeyPadEquals, ExtendedKeyPadEqualsAS400:
		e.writeSS3OrLatin1(e.calculatorApplicationMode, 'X', '=')
	case ExtendedKeyPadAsterisk:
		e.writeRawByte('*')
	case ExtendedKeyPadPlus:
		e.writeRawByte('+')
	case ExtendedKeyPadComma:
		e.writeRawByte(',')
	case ExtendedKeyPadMinus:
		e.writeRawByte('-')
	case ExtendedKeyPadSlash:
		e.writeRawByte('/')
	case ExtendedKeyUpArrow, ExtendedKeyPadUp, ExtendedKeyScrollUp:
		e.writeCSISequenceAmbig(1, m, 'A')
	case ExtendedKeyDownArrow, ExtendedKeyPadDown, ExtendedKeyScrollDown:
		e.writeCSISequenceAmbig(1, m, 'B')
	case ExtendedKeyRightArrow, ExtendedKeyPadRight:
		e.writeCSISequenceAmbig(1, m, 'C')
	case ExtendedKeyLeftArrow, ExtendedKeyPadLeft:
		e.writeCSISequenceAmbig(1, m, 'D')
	case ExtendedKeyCentre, ExtendedKeyPadCentre:
		e.writeCSISequenceAmbig(1, m, 'E')
	case ExtendedKeyEnd, ExtendedKeyPadEnd:
		e.writeCSISequenceAmbig(1, m, 'F')
	case ExtendedKeyPageDown, ExtendedKeyPadPageDown, ExtendedKeyNext:
		e.writeCSISequenceAmbig(1, m, 'G')
	case ExtendedKeyHome, ExtendedKeyPadHome:
		e.writeCSISequenceAmbig(1, m, 'H')
	case ExtendedKeyPageUp, ExtendedKeyPadPageUp, ExtendedKeyPrevious:
		e.writeCSISequenceAmbig(1, m, 'I')
	case ExtendedKeyInsert, ExtendedKeyPadInsert, ExtendedKeyInsChar:
		e.writeCSISequenceAmbig(1, m, 'L')
	case ExtendedKeyPadF1:
		e.writeCSISequenceAmbig(1, m, 'M')
	case ExtendedKeyPadF2:
		e.writeCSISequenceAmbig(1, m, 'N')
	case ExtendedKeyPadF3:
		e.writeCSISequenceAmbig(1, m, 'O')
	case ExtendedKeyPadF4:
		e.writeCSISequenceAmbig(1, m, 'P')
	case ExtendedKeyPadF5:
		e.writeCSISequenceAmbig(1, m, 'Q')
	case ExtendedKeyTab, ExtendedKeyPadTab:
		e.writeLatin1OrCSISequence('I', byte(TAB), m)
	case ExtendedKeyBacktab:
		e.writeCSISequenceAmbig(1, m, 'Z')
	case ExtendedKeyBackspace:
		e.writeBackspaceOrDEL(m)
	case ExtendedKeyEscape:
		e.writeESCOrFS(m)
	case ExtendedKeyReturnOrEnter, ExtendedKeyPadEnter:
		e.writeReturnEnter(m)
	case ExtendedKeyDelete, ExtendedKeyPadDelete, ExtendedKeyDelChar:
		e.writeRawByte(byte(DEL))
	default:
		e.writeExtendedKeyCommonExtensions(k, m)
	}
}

// writeExtendedKeyLinuxKVT writes what the Linux kernel terminal emulator
// produces, including its Home/Find and End/Select confusion, extended to
// respect the application keypad modes.
func (e *InputEncoder) writeExtendedKeyLinuxKVT(k uint16, m uint8) {
	switch k {
	// The calculator keypad.
	case ExtendedKeyPadEnter:
		if e.calculatorApplicationMode {
			e.writeSS3OrCSISequence(true, 'M', 'M', m)
		} else {
			e.writeReturnEnter(m)
		}
	case ExtendedKeyPadEquals, ExtendedKeyPadEqualsAS400:
		e.writeSS3OrLatin1(e.calculatorApplicationMode, 'X', '=')
	case ExtendedKeyPadF1:
		e.writeLinuxKVTFNK(m, 'A')
	case ExtendedKeyPadF2:
		e.writeLinuxKVTFNK(m, 'B')
	case ExtendedKeyPadF3:
		e.writeLinuxKVTFNK(m, 'C')
	case ExtendedKeyPadF4:
		e.writeLinuxKVTFNK(m, 'D')
	case ExtendedKeyPadF5:
		e.writeLinuxKVTFNK(m, 'E')
	case ExtendedKeyPadAsterisk:
		e.writeSS3OrLatin1(e.calculatorApplicationMode, 'j', '*')
	case ExtendedKeyPadPlus:
		e.writeSS3OrLatin1(e.calculatorApplicationMode, 'k', '+')
	case ExtendedKeyPadComma:
		e.writeSS3OrLatin1(e.calculatorApplicationMode, 'l', ',')
	case ExtendedKeyPadMinus:
		e.writeSS3OrLatin1(e.calculatorApplicationMode, 'm', '-')
	case ExtendedKeyPadDelete:
		if e.calculatorApplicationMode {
			e.writeSS3Character('n')
		} else {
			e.writeOrdOrDECFNK(e.deleteIsDEL, byte(DEL), 3, m)
		}
	case ExtendedKeyPadSlash:
		e.writeSS3OrLatin1(e.calculatorApplicationMode, 'o', '/')
	case ExtendedKeyPadInsert:
		e.writeSS3OrDECFNK(e.calculatorApplicationMode, 'p', 2, m)
	case ExtendedKeyPadEnd:
		e.writeSS3OrCSISequence(e.calculatorApplicationMode, 'q', 'F', m)
	case ExtendedKeyPadDown:
		e.writeTekenKeypadKey(e.calculatorApplicationMode, 'r', 'B', 8, m)
	case ExtendedKeyPadPageDown:
		e.writeSS3OrDECFNK(e.calculatorApplicationMode, 's', 6, m)
	case ExtendedKeyPadLeft:
		e.writeTekenKeypadKey(e.calculatorApplicationMode, 't', 'D', 7, m)
	case ExtendedKeyPadCentre:
		e.writeSS3OrCSISequence(e.calculatorApplicationMode, 'u', 'G', m)
	case ExtendedKeyPadRight:
		e.writeTekenKeypadKey(e.calculatorApplicationMode, 'v', 'C', 10, m)
	case ExtendedKeyPadHome:
		e.writeSS3OrCSISequence(e.calculatorApplicationMode, 'w', 'H', m)
	case ExtendedKeyPadUp:
		e.writeTekenKeypadKey(e.calculatorApplicationMode, 'x', 'A', 9, m)
	case ExtendedKeyPadPageUp:
		e.writeSS3OrDECFNK(e.calculatorApplicationMode, 'y', 5, m)
	// The cursor/editing keypad.
	case ExtendedKeyUpArrow, ExtendedKeyScrollUp:
		e.writeSS3OrCSISequence(e.cursorApplicationMode, 'A', 'A', m)
	case ExtendedKeyDownArrow, ExtendedKeyScrollDown:
		e.writeSS3OrCSISequence(e.cursorApplicationMode, 'B', 'B', m)
	case ExtendedKeyRightArrow:
		e.writeSS3OrCSISequence(e.cursorApplicationMode, 'C', 'C', m)
	case ExtendedKeyLeftArrow:
		e.writeSS3OrCSISequence(e.cursorApplicationMode, 'D', 'D', m)
	case ExtendedKeyCentre:
		e.writeCSISequenceAmbig(1, m, 'G')
	case ExtendedKeyTab, ExtendedKeyPadTab:
		e.writeLatin1OrCSISequence('I', byte(TAB), m)
	case ExtendedKeyBacktab:
		e.writeSS3OrCSISequence(e.cursorApplicationMode, 'Z', 'Z', m)
	case ExtendedKeyFind, ExtendedKeyHome:
		// The Linux KVT erroneously makes Home the same as Find.
		e.writeDECFNKAmbig(1, m)
	case ExtendedKeyInsert, ExtendedKeyInsChar:
		e.writeDECFNKAmbig(2, m)
	case ExtendedKeyDelete, ExtendedKeyDelChar:
		e.writeOrdOrDECFNK(e.deleteIsDEL, byte(DEL), 3, m)
	case ExtendedKeySelect, ExtendedKeyEnd:
		// The Linux KVT erroneously makes End the same as Select.
		e.writeDECFNKAmbig(4, m)
	case ExtendedKeyPageUp, ExtendedKeyPrevious:
		e.writeDECFNKAmbig(5, m)
	case ExtendedKeyPageDown, ExtendedKeyNext:
		e.writeDECFNKAmbig(6, m)
	case ExtendedKeyBackspace:
		e.writeBackspaceOrDEL(m)
	case ExtendedKeyEscape:
		e.writeESCOrFS(m)
	case ExtendedKeyReturnOrEnter:
		e.writeReturnEnter(m)
	default:
		e.writeExtendedKeyCommonExtensions(k, m)
	}
}

// writeExtendedKeyNetBSDConsole writes the NetBSD "vt100" mode sequences:
// the keypad PF keys send DECFNK and Home/End have their own numbers.
func (e *InputEncoder) writeExtendedKeyNetBSDConsole(k uint16, m uint8) {
	switch k {
	// The calculator keypad.
	case ExtendedKeyPadEnter:
		if e.calculatorApplicationMode {
			e.writeSS3OrCSISequence(true, 'M', 'M', m)
		} else {
			e.writeReturnEnter(m)
		}
	case ExtendedKeyPadF1:
		e.writeSS3OrDECFNK(e.calculatorApplicationMode, 'P', 11, m)
	case ExtendedKeyPadF2:
		e.writeSS3OrDECFNK(e.calculatorApplicationMode, 'Q', 12, m)
	case ExtendedKeyPadF3:
		e.writeSS3OrDECFNK(e.calculatorApplicationMode, 'R', 13, m)
	case ExtendedKeyPadF4:
		e.writeSS3OrDECFNK(e.calculatorApplicationMode, 'S', 14, m)
	case ExtendedKeyPadF5:
		e.writeSS3OrDECFNK(e.calculatorApplicationMode, 'T', 15, m)
	case ExtendedKeyPadEquals, ExtendedKeyPadEqualsAS400:
		e.writeSS3OrLatin1(e.calculatorApplicationMode, 'X', '=')
	case ExtendedKeyPadAsterisk:
		e.writeSS3OrLatin1(e.calculatorApplicationMode, 'j', '*')
	case ExtendedKeyPadPlus:
		e.writeSS3OrLatin1(e.calculatorApplicationMode, 'k', '+')
	case ExtendedKeyPadComma:
		e.writeSS3OrLatin1(e.calculatorApplicationMode, 'l', ',')
	case ExtendedKeyPadMinus:
		e.writeSS3OrLatin1(e.calculatorApplicationMode, 'm', '-')
	case ExtendedKeyPadDelete:
		e.writeSS3OrDECFNK(e.calculatorApplicationMode, 'n', 3, m)
	case ExtendedKeyPadSlash:
		e.writeSS3OrLatin1(e.calculatorApplicationMode, 'o', '/')
	case ExtendedKeyPadPageUp:
		e.writeSS3OrDECFNK(e.calculatorApplicationMode, 'y', 5, m)
	case ExtendedKeyPadEnd:
		e.writeSS3OrCSISequence(e.calculatorApplicationMode, 'q', 'F', m)
	case ExtendedKeyPadDown:
		e.writeTekenKeypadKey(e.calculatorApplicationMode, 'r', 'B', 8, m)
	case ExtendedKeyPadPageDown:
		e.writeSS3OrDECFNK(e.calculatorApplicationMode, 's', 6, m)
	case ExtendedKeyPadLeft:
		e.writeTekenKeypadKey(e.calculatorApplicationMode, 't', 'D', 7, m)
	case ExtendedKeyPadCentre:
		e.writeSS3OrCSISequence(e.calculatorApplicationMode, 'u', 'E', m)
	case ExtendedKeyPadRight:
		e.writeTekenKeypadKey(e.calculatorApplicationMode, 'v', 'C', 10, m)
	case ExtendedKeyPadHome:
		e.writeSS3OrCSISequence(e.calculatorApplicationMode, 'w', 'H', m)
	case ExtendedKeyPadUp:
		e.writeTekenKeypadKey(e.calculatorApplicationMode, 'x', 'A', 9, m)
	// The cursor/editing keypad.
	case ExtendedKeyUpArrow, ExtendedKeyScrollUp:
		e.writeSS3OrCSISequence(e.cursorApplicationMode, 'A', 'A', m)
	case ExtendedKeyDownArrow, ExtendedKeyScrollDown:
		e.writeSS3OrCSISequence(e.cursorApplicationMode, 'B', 'B', m)
	case ExtendedKeyRightArrow:
		e.writeSS3OrCSISequence(e.cursorApplicationMode, 'C', 'C', m)
	case ExtendedKeyLeftArrow:
		e.writeSS3OrCSISequence(e.cursorApplicationMode, 'D', 'D', m)
	case ExtendedKeyCentre:
		e.writeSS3OrCSISequence(e.cursorApplicationMode, 'E', 'E', m)
	case ExtendedKeyInsert, ExtendedKeyPadInsert, ExtendedKeyInsChar:
		e.writeCSISequenceAmbig(1, m, 'L')
	case ExtendedKeyTab, ExtendedKeyPadTab:
		e.writeLatin1OrCSISequence('I', byte(TAB), m)
	case ExtendedKeyBacktab:
		e.writeSS3OrCSISequence(e.cursorApplicationMode, 'Z', 'Z', m)
	case ExtendedKeyFind:
		e.writeDECFNKAmbig(1, m)
	case ExtendedKeyDelete, ExtendedKeyDelChar:
		e.writeOrdOrDECFNK(e.deleteIsDEL, byte(DEL), 3, m)
	case ExtendedKeySelect:
		e.writeDECFNKAmbig(4, m)
	case ExtendedKeyPageUp, ExtendedKeyPrevious:
		e.writeDECFNKAmbig(5, m)
	case ExtendedKeyPageDown, ExtendedKeyNext:
		e.writeDECFNKAmbig(6, m)
	case ExtendedKeyHome:
		e.writeDECFNKAmbig(7, m)
	case ExtendedKeyEnd:
		e.writeDECFNKAmbig(8, m)
	case ExtendedKeyBackspace:
		e.writeBackspaceOrDEL(m)
	case ExtendedKeyEscape:
		e.writeESCOrFS(m)
	case ExtendedKeyReturnOrEnter:
		e.writeReturnEnter(m)
	default:
		e.writeExtendedKeyCommonExtensions(k, m)
	}
}

func (e *InputEncoder) writeExtendedKey(k uint16, m uint8) {
	e.setPasting(false)
	switch e.emulation {
	case SCOConsole:
		e.writeExtendedKeySCOConsole(k, m)
	case LinuxConsole:
		e.writeExtendedKeyLinuxKVT(k, m)
	case NetBSDConsole:
		e.writeExtendedKeyNetBSDConsole(k, m)
	case XTermPC:
		e.writeExtendedKeyXTermPC(k, m)
	case Teken:
		e.writeExtendedKeyTeken(k, m)
	default:
		e.writeExtendedKeyDECVT(k, m)
	}
}

// --- Consumer keys ---

func (e *InputEncoder) writeConsumerKey(k uint16, m uint8) {
	e.setPasting(false)
	e.writeUSBConsumerFNK(uint(k), m)
}
