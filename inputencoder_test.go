package softterm

import "testing"

func encoderOutputString(e *InputEncoder) string {
	return string(e.TakeOutput())
}

func TestEncoderPlainCharacter(t *testing.T) {
	e := NewInputEncoder(DECVT)
	e.HandleMessage(MessageUCS3('a'))
	if got := encoderOutputString(e); got != "a" {
		t.Errorf("expected \"a\", got %q", got)
	}
	e.HandleMessage(MessageUCS3(0x20AC))
	if got := encoderOutputString(e); got != "\xe2\x82\xac" {
		t.Errorf("expected UTF-8 euro sign, got %q", got)
	}
}

func TestEncoderCursorKeyApplicationMode(t *testing.T) {
	// Spec scenario: Up with Level2 in application mode is ESC O A
	// (strict DEC ignores modifiers); in normal mode it is CSI 1;2 A.
	e := NewInputEncoder(DECVT)
	e.SetCursorApplicationMode(true)
	e.HandleMessage(MessageExtendedKey(ExtendedKeyUpArrow, ModifierLevel2))
	if got := encoderOutputString(e); got != "\x1bOA" {
		t.Errorf("application mode: expected ESC O A, got %q", got)
	}

	e.SetCursorApplicationMode(false)
	e.HandleMessage(MessageExtendedKey(ExtendedKeyUpArrow, ModifierLevel2))
	if got := encoderOutputString(e); got != "\x1b[1;2A" {
		t.Errorf("normal mode: expected CSI 1;2 A, got %q", got)
	}

	e.HandleMessage(MessageExtendedKey(ExtendedKeyUpArrow, 0))
	if got := encoderOutputString(e); got != "\x1b[A" {
		t.Errorf("unmodified: expected CSI A, got %q", got)
	}
}

func TestEncoderFunctionKeysDECVT(t *testing.T) {
	e := NewInputEncoder(DECVT)
	e.SetDECFunctionKeys(true)
	cases := []struct {
		key  uint16
		want string
	}{
		{1, "\x1b[11~"},
		{5, "\x1b[15~"},
		{6, "\x1b[17~"},
		{11, "\x1b[23~"},
		{13, "\x1b[25~"},
		{21, "\x1b[35~"},
		{23, "\x1b[42~"},
		{24, "\x1b[43~"},
	}
	for _, tc := range cases {
		e.HandleMessage(MessageFunctionKey(tc.key, 0))
		if got := encoderOutputString(e); got != tc.want {
			t.Errorf("F%d: expected %q, got %q", tc.key, tc.want, got)
		}
	}
	// Modified keys carry the DEC plus-one modifier.
	e.HandleMessage(MessageFunctionKey(1, ModifierControl))
	if got := encoderOutputString(e); got != "\x1b[11;5~" {
		t.Errorf("expected modified F1, got %q", got)
	}
}

func TestEncoderFunctionKeysFNKFallback(t *testing.T) {
	e := NewInputEncoder(DECVT)
	// Without DEC function keys the standard FNK sequence is used.
	e.HandleMessage(MessageFunctionKey(3, 0))
	if got := encoderOutputString(e); got != "\x1b[3 W" {
		t.Errorf("expected FNK form, got %q", got)
	}
	e.SetDECFunctionKeys(true)
	// Keys past the table fall back too.
	e.HandleMessage(MessageFunctionKey(30, 0))
	if got := encoderOutputString(e); got != "\x1b[30 W" {
		t.Errorf("expected FNK fallback, got %q", got)
	}
}

func TestEncoderFunctionKeysSCO(t *testing.T) {
	e := NewInputEncoder(SCOConsole)
	e.SetSCOFunctionKeys(true)
	e.HandleMessage(MessageFunctionKey(1, 0))
	if got := encoderOutputString(e); got != "\x1b[M" {
		t.Errorf("expected CSI M for F1, got %q", got)
	}
	e.HandleMessage(MessageFunctionKey(12, 0))
	if got := encoderOutputString(e); got != "\x1b[X" {
		t.Errorf("expected CSI X for F12, got %q", got)
	}
	// Level2 folds into the 12-key band: F1+Shift is F13's letter.
	e.HandleMessage(MessageFunctionKey(1, ModifierLevel2))
	if got := encoderOutputString(e); got != "\x1b[Y" {
		t.Errorf("expected folded CSI Y, got %q", got)
	}
	// Control folds by 24: F1+Control is F25's letter.
	e.HandleMessage(MessageFunctionKey(1, ModifierControl))
	if got := encoderOutputString(e); got != "\x1b[k" {
		t.Errorf("expected folded CSI k, got %q", got)
	}
}

func TestEncoderFunctionKeysTeken(t *testing.T) {
	e := NewInputEncoder(Teken)
	e.SetDECFunctionKeys(true)
	e.SetTekenFunctionKeys(true)
	e.SetSCOFunctionKeys(true)
	// F1..F12 unmodified go the DEC way.
	e.HandleMessage(MessageFunctionKey(1, 0))
	if got := encoderOutputString(e); got != "\x1b[11~" {
		t.Errorf("expected DECFNK F1, got %q", got)
	}
	// F13 switches to the SCO letters.
	e.HandleMessage(MessageFunctionKey(13, 0))
	if got := encoderOutputString(e); got != "\x1b[Y" {
		t.Errorf("expected SCO letter for F13, got %q", got)
	}
}

func TestEncoderLinuxKVTPadFunctionKeys(t *testing.T) {
	e := NewInputEncoder(LinuxConsole)
	e.HandleMessage(MessageExtendedKey(ExtendedKeyPadF1, 0))
	if got := encoderOutputString(e); got != "\x1b[[A" {
		t.Errorf("expected CSI [ A, got %q", got)
	}
	e.HandleMessage(MessageExtendedKey(ExtendedKeyPadF1, ModifierLevel2))
	if got := encoderOutputString(e); got != "\x1b[[1;2A" {
		t.Errorf("expected modified CSI [ 1;2 A, got %q", got)
	}
}

func TestEncoderLinuxKVTHomeEndConfusion(t *testing.T) {
	e := NewInputEncoder(LinuxConsole)
	e.HandleMessage(MessageExtendedKey(ExtendedKeyHome, 0))
	if got := encoderOutputString(e); got != "\x1b[1~" {
		t.Errorf("Linux Home should be Find, got %q", got)
	}
	e.HandleMessage(MessageExtendedKey(ExtendedKeyEnd, 0))
	if got := encoderOutputString(e); got != "\x1b[4~" {
		t.Errorf("Linux End should be Select, got %q", got)
	}
}

func TestEncoderNetBSDHomeEnd(t *testing.T) {
	e := NewInputEncoder(NetBSDConsole)
	e.HandleMessage(MessageExtendedKey(ExtendedKeyHome, 0))
	if got := encoderOutputString(e); got != "\x1b[7~" {
		t.Errorf("NetBSD Home is DECFNK 7, got %q", got)
	}
	e.HandleMessage(MessageExtendedKey(ExtendedKeyEnd, 0))
	if got := encoderOutputString(e); got != "\x1b[8~" {
		t.Errorf("NetBSD End is DECFNK 8, got %q", got)
	}
}

func TestEncoderEditingKeys(t *testing.T) {
	e := NewInputEncoder(DECVT)
	cases := []struct {
		key  uint16
		want string
	}{
		{ExtendedKeyFind, "\x1b[1~"},
		{ExtendedKeyInsert, "\x1b[2~"},
		{ExtendedKeyDelete, "\x1b[3~"},
		{ExtendedKeySelect, "\x1b[4~"},
		{ExtendedKeyPageUp, "\x1b[5~"},
		{ExtendedKeyPageDown, "\x1b[6~"},
	}
	for _, tc := range cases {
		e.HandleMessage(MessageExtendedKey(tc.key, 0))
		if got := encoderOutputString(e); got != tc.want {
			t.Errorf("key %#x: expected %q, got %q", tc.key, tc.want, got)
		}
	}
}

func TestEncoderXTermModKeyExtension(t *testing.T) {
	e := NewInputEncoder(DECVT)
	e.HandleMessage(MessageExtendedKey(ExtendedKeyEscape, ModifierLevel2))
	if got := encoderOutputString(e); got != "\x1b[27;2;27~" {
		t.Errorf("expected modified escape form, got %q", got)
	}
	e.HandleMessage(MessageExtendedKey(ExtendedKeyReturnOrEnter, ModifierLevel2))
	if got := encoderOutputString(e); got != "\x1b[27;2;13~" {
		t.Errorf("expected modified enter form, got %q", got)
	}
	// Control+Enter is still plain LF.
	e.HandleMessage(MessageExtendedKey(ExtendedKeyReturnOrEnter, ModifierControl))
	if got := encoderOutputString(e); got != "\n" {
		t.Errorf("expected LF, got %q", got)
	}
}

func TestEncoderBackspaceModes(t *testing.T) {
	e := NewInputEncoder(DECVT)
	e.HandleMessage(MessageExtendedKey(ExtendedKeyBackspace, 0))
	if got := encoderOutputString(e); got != "\x7f" {
		t.Errorf("default backspace is DEL, got %q", got)
	}
	e.SetBackspaceIsBS(true)
	e.HandleMessage(MessageExtendedKey(ExtendedKeyBackspace, 0))
	if got := encoderOutputString(e); got != "\x08" {
		t.Errorf("expected BS, got %q", got)
	}
	// Control flips the choice.
	e.HandleMessage(MessageExtendedKey(ExtendedKeyBackspace, ModifierControl))
	if got := encoderOutputString(e); got != "\x7f" {
		t.Errorf("expected DEL with Control, got %q", got)
	}
}

func TestEncoderXTermMouseClickRelease(t *testing.T) {
	// Spec scenario: button 0 press at (col 10, row 5) with Level2 held.
	e := NewInputEncoder(DECVT)
	e.SetSendXTermMouse(true)
	e.SetSendXTermMouseClicks(true)
	e.HandleMessage(MessageMouseX(10, 0))
	e.HandleMessage(MessageMouseY(5, 0))
	if got := encoderOutputString(e); got != "" {
		t.Fatalf("motion without motion mode must stay silent, got %q", got)
	}
	e.HandleMessage(MessageMouseButton(0, true, ModifierLevel2))
	if got := encoderOutputString(e); got != "\x1b[<4;11;6M" {
		t.Errorf("expected press report, got %q", got)
	}
	e.HandleMessage(MessageMouseButton(0, false, ModifierLevel2))
	if got := encoderOutputString(e); got != "\x1b[<4;11;6m" {
		t.Errorf("expected release report, got %q", got)
	}
}

func TestEncoderXTermMouseMotionModes(t *testing.T) {
	e := NewInputEncoder(DECVT)
	e.SetSendXTermMouse(true)
	e.SetSendXTermMouseClicks(true)
	e.SetSendXTermMouseButtonMotions(true)
	// No button held: button motions alone do not report.
	e.HandleMessage(MessageMouseX(3, 0))
	if got := encoderOutputString(e); got != "" {
		t.Fatalf("expected silence without a held button, got %q", got)
	}
	// With a button held, motion reports with the motion flag.
	e.HandleMessage(MessageMouseButton(0, true, 0))
	e.TakeOutput()
	e.HandleMessage(MessageMouseX(4, 0))
	if got := encoderOutputString(e); got != "\x1b[<32;5;1M" {
		t.Errorf("expected motion report, got %q", got)
	}
}

func TestEncoderXTermMouseWheelSuppressesRelease(t *testing.T) {
	e := NewInputEncoder(DECVT)
	e.SetSendXTermMouse(true)
	e.SetSendXTermMouseClicks(true)
	e.HandleMessage(MessageMouseWheel(0, -1, 0))
	if got := encoderOutputString(e); got != "\x1b[<64;1;1M" {
		t.Errorf("expected one wheel press report, got %q", got)
	}
	e.HandleMessage(MessageMouseWheel(0, 1, 0))
	if got := encoderOutputString(e); got != "\x1b[<65;1;1M" {
		t.Errorf("expected opposite wheel report, got %q", got)
	}
}

func TestEncoderDECLocator(t *testing.T) {
	e := NewInputEncoder(DECVT)
	// Disabled: a request answers with the locator-disabled report.
	e.RequestDECLocatorReport()
	if got := encoderOutputString(e); got != "\x1b[0&w" {
		t.Errorf("expected disabled report, got %q", got)
	}

	e.SetSendDECLocator(1)
	e.SetSendDECLocatorPressEvent(true)
	e.SetSendDECLocatorReleaseEvent(true)
	e.HandleMessage(MessageMouseX(7, 0))
	e.HandleMessage(MessageMouseY(2, 0))
	e.HandleMessage(MessageMouseButton(0, true, 0))
	if got := encoderOutputString(e); got != "\x1b[2;1;3;8;0&w" {
		t.Errorf("expected press event report, got %q", got)
	}
	e.HandleMessage(MessageMouseButton(0, false, 0))
	if got := encoderOutputString(e); got != "\x1b[3;1;3;8;0&w" {
		t.Errorf("expected release event report, got %q", got)
	}
	// An unsolicited request reports event 1 with the latched buttons.
	e.RequestDECLocatorReport()
	if got := encoderOutputString(e); got != "\x1b[1;0;3;8;0&w" {
		t.Errorf("expected request report, got %q", got)
	}
}

func TestEncoderDECLocatorOneShot(t *testing.T) {
	e := NewInputEncoder(DECVT)
	e.SetSendDECLocator(2)
	e.SetSendDECLocatorReleaseEvent(true)
	// A suppressed report (press events off) does not consume one-shot.
	e.HandleMessage(MessageMouseButton(1, true, 0))
	if got := encoderOutputString(e); got != "" {
		t.Fatalf("expected suppressed report, got %q", got)
	}
	if e.locatorMode != 2 {
		t.Error("suppressed report must not consume one-shot mode")
	}
	// A transmitted report does.
	e.HandleMessage(MessageMouseButton(1, false, 0))
	if got := encoderOutputString(e); got == "" {
		t.Fatal("expected a transmitted report")
	}
	if e.locatorMode != 0 {
		t.Error("transmitted report must consume one-shot mode")
	}
}

func TestEncoderBracketedPaste(t *testing.T) {
	e := NewInputEncoder(DECVT)
	e.SetSendPasteEvent(true)
	e.HandleMessage(MessagePastedUCS3('h'))
	e.HandleMessage(MessagePastedUCS3('i'))
	e.HandleMessage(MessageUCS3('!'))
	if got := encoderOutputString(e); got != "\x1b[200~hi\x1b[201~!" {
		t.Errorf("unexpected paste bracketing %q", got)
	}
	if e.Pasting() {
		t.Error("paste should be closed")
	}
}

func TestEncoderPasteAutoTerminatesOnESC(t *testing.T) {
	e := NewInputEncoder(DECVT)
	e.SetSendPasteEvent(true)
	e.HandleMessage(MessagePastedUCS3('a'))
	e.HandleMessage(MessagePastedUCS3(ESC))
	if e.Pasting() {
		t.Error("a pasted ESC must close the bracket")
	}
	if got := encoderOutputString(e); got != "\x1b[200~a\x1b\x1b[201~" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestEncoderAcceleratorPrefix(t *testing.T) {
	e := NewInputEncoder(DECVT)
	e.HandleMessage(MessageAcceleratorUCS3('x'))
	if got := encoderOutputString(e); got != "\x1bx" {
		t.Errorf("expected ESC prefix, got %q", got)
	}
}

func TestEncoderEightBitControls(t *testing.T) {
	e := NewInputEncoder(DECVT)
	e.Set8BitControl1(true)
	e.HandleMessage(MessageExtendedKey(ExtendedKeyUpArrow, 0))
	if got := encoderOutputString(e); got != "\xc2\x9bA" {
		t.Errorf("expected 8-bit CSI, got %q", got)
	}
}

func TestEncoderConsumerKey(t *testing.T) {
	e := NewInputEncoder(DECVT)
	e.HandleMessage(MessageConsumerKey(0xCD, 0))
	if got := encoderOutputString(e); got != "\x1b[=205 W" {
		t.Errorf("expected consumer FNK, got %q", got)
	}
}

func TestEncoderUSBExtendedFallback(t *testing.T) {
	e := NewInputEncoder(DECVT)
	e.HandleMessage(MessageExtendedKey(ExtendedKeyPadEquals+1, 0)) // 0x68: F13, not in any table here
	if got := encoderOutputString(e); got != "\x1b[?104 W" {
		t.Errorf("expected USB extended FNK, got %q", got)
	}
}

func TestEncoderDialectFunctionKeyDefaults(t *testing.T) {
	e := NewInputEncoder(SCOConsole)
	e.SetDialectFunctionKeys()
	e.HandleMessage(MessageFunctionKey(1, 0))
	if got := encoderOutputString(e); got != "\x1b[M" {
		t.Errorf("SCO default should use the letter table, got %q", got)
	}
	e = NewInputEncoder(XTermPC)
	e.SetDialectFunctionKeys()
	e.HandleMessage(MessageFunctionKey(1, 0))
	if got := encoderOutputString(e); got != "\x1b[11~" {
		t.Errorf("XTerm PC default should use DECFNK, got %q", got)
	}
}

func TestEncoderBackPressureSignals(t *testing.T) {
	e := NewInputEncoder(DECVT)
	if e.OutputAvailable() {
		t.Error("fresh encoder should have no output")
	}
	if !e.HasInputSpace() {
		t.Error("fresh encoder should have input space")
	}
	for i := 0; i < outputBufferSize; i++ {
		e.HandleMessage(MessageUCS3('x'))
	}
	if e.HasInputSpace() {
		t.Error("full encoder should report no input space")
	}
	if !e.OutputAvailable() {
		t.Error("full encoder should have output")
	}
}

func TestEncoderSaneSizeReport(t *testing.T) {
	e := NewInputEncoder(DECVT)
	var w, h int
	e.SetSizeReporter(func(cw, ch int) { w, h = cw, ch })
	e.ReportSize(0, 0)
	if w != 1 || h != 1 {
		t.Errorf("degenerate size should clamp to 1x1, got %dx%d", w, h)
	}
}
