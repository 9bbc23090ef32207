package softterm

import "fmt"

// outputBufferSize bounds the encoder's pending output.  Bytes past the
// bound are dropped; the host is expected to honour HasInputSpace before
// feeding more events.
const outputBufferSize = 4096

// InputEncoder renders abstract input events into the byte sequences a
// terminal dialect transmits.  It implements the KeyboardBuffer and
// MouseBuffer collaborator interfaces, so a SoftTerm drives its modes
// directly, and consumes framed input messages via HandleMessage.
type InputEncoder struct {
	emulation Emulation
	utf8      *UTF8Encoder

	out []byte

	send8BitControls bool
	backspaceIsBS    bool
	escapeIsFS       bool
	deleteIsDEL      bool

	cursorApplicationMode     bool
	calculatorApplicationMode bool

	sendXTermMouse                bool
	sendXTermMouseClicks          bool
	sendXTermMouseButtonMotions   bool
	sendXTermMouseNoButtonMotions bool
	sendLocatorPressEvents        bool
	sendLocatorReleaseEvents      bool
	locatorMode                   uint32

	sendDECFunctionKeys   bool
	sendSCOFunctionKeys   bool
	sendTekenFunctionKeys bool
	sendPaste             bool

	mouseColumn  uint16
	mouseRow     uint16
	mouseButtons [8]bool

	pasting bool

	sizeReporter func(w, h int)
}

// encoderOutput adapts the encoder's raw buffer to the UTF-8 encoder.
type encoderOutput struct {
	e *InputEncoder
}

func (w encoderOutput) Write(p []byte) (int, error) {
	w.e.writeRaw(p)
	return len(p), nil
}

// NewInputEncoder creates an encoder for the given dialect.
func NewInputEncoder(emulation Emulation) *InputEncoder {
	e := &InputEncoder{
		emulation:    emulation,
		sizeReporter: func(int, int) {},
	}
	e.utf8 = NewUTF8Encoder(encoderOutput{e})
	return e
}

// SetSizeReporter installs the host callback that applies ReportSize to the
// underlying pty.
func (e *InputEncoder) SetSizeReporter(f func(w, h int)) {
	if f == nil {
		f = func(int, int) {}
	}
	e.sizeReporter = f
}

// Emulation returns the configured dialect.
func (e *InputEncoder) Emulation() Emulation { return e.emulation }

// Pasting reports whether a bracketed paste is open.
func (e *InputEncoder) Pasting() bool { return e.pasting }

// --- Output draining ---

// OutputAvailable reports whether encoded bytes are waiting.
func (e *InputEncoder) OutputAvailable() bool { return len(e.out) > 0 }

// HasInputSpace reports whether the encoder can take another event without
// risking truncation.  Hosts must honour this as back-pressure.
func (e *InputEncoder) HasInputSpace() bool {
	return len(e.out)+128 < outputBufferSize
}

// Read drains encoded bytes.  Implements io.Reader, never blocks, and
// returns n == 0 when nothing is pending.
func (e *InputEncoder) Read(p []byte) (int, error) {
	n := copy(p, e.out)
	e.out = e.out[n:]
	return n, nil
}

// TakeOutput removes and returns all pending encoded bytes.
func (e *InputEncoder) TakeOutput() []byte {
	out := e.out
	e.out = nil
	return out
}

// --- Raw writers ---

func (e *InputEncoder) writeRaw(p []byte) {
	room := outputBufferSize - len(e.out)
	if len(p) > room {
		p = p[:room]
	}
	e.out = append(e.out, p...)
}

func (e *InputEncoder) writeRawByte(b byte) {
	e.writeRaw([]byte{b})
}

func (e *InputEncoder) writeRawString(s string) {
	e.writeRaw([]byte(s))
}

func (e *InputEncoder) writeUnicode(c rune) {
	if c < 0x80 {
		e.writeRawByte(byte(c))
	} else {
		e.utf8.Process(c)
	}
}

func (e *InputEncoder) writeLatin1(b byte) {
	if b < 0x80 {
		e.writeRawByte(b)
	} else {
		e.utf8.Process(rune(b))
	}
}

// --- KeyboardBuffer ---

// WriteLatin1Characters transmits response bytes from the display engine.
func (e *InputEncoder) WriteLatin1Characters(s []byte) {
	for _, b := range s {
		e.writeLatin1(b)
	}
}

// WriteControl1Character transmits a C1 control, 8-bit or as its ESC alias.
func (e *InputEncoder) WriteControl1Character(c byte) {
	if e.send8BitControls {
		e.writeUnicode(rune(c))
	} else {
		e.writeRawByte(byte(ESC))
		e.writeRawByte(c - 0x40)
	}
}

func (e *InputEncoder) Set8BitControl1(on bool)              { e.send8BitControls = on }
func (e *InputEncoder) SetBackspaceIsBS(on bool)             { e.backspaceIsBS = on }
func (e *InputEncoder) SetEscapeIsFS(on bool)                { e.escapeIsFS = on }
func (e *InputEncoder) SetDeleteIsDEL(on bool)               { e.deleteIsDEL = on }
func (e *InputEncoder) SetSendPasteEvent(on bool)            { e.sendPaste = on }
func (e *InputEncoder) SetDECFunctionKeys(on bool)           { e.sendDECFunctionKeys = on }
func (e *InputEncoder) SetSCOFunctionKeys(on bool)           { e.sendSCOFunctionKeys = on }
func (e *InputEncoder) SetTekenFunctionKeys(on bool)         { e.sendTekenFunctionKeys = on }
func (e *InputEncoder) SetCursorApplicationMode(on bool)     { e.cursorApplicationMode = on }
func (e *InputEncoder) SetCalculatorApplicationMode(on bool) { e.calculatorApplicationMode = on }

// ReportSize applies a display size change to the host pty, after the sane
// winsize policy has clamped degenerate values.
func (e *InputEncoder) ReportSize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	e.sizeReporter(w, h)
}

// --- MouseBuffer ---

func (e *InputEncoder) SetSendXTermMouse(on bool)                { e.sendXTermMouse = on }
func (e *InputEncoder) SetSendXTermMouseClicks(on bool)          { e.sendXTermMouseClicks = on }
func (e *InputEncoder) SetSendXTermMouseButtonMotions(on bool)   { e.sendXTermMouseButtonMotions = on }
func (e *InputEncoder) SetSendXTermMouseNoButtonMotions(on bool) { e.sendXTermMouseNoButtonMotions = on }
func (e *InputEncoder) SetSendDECLocator(mode uint32)            { e.locatorMode = mode }
func (e *InputEncoder) SetSendDECLocatorPressEvent(on bool)      { e.sendLocatorPressEvents = on }
func (e *InputEncoder) SetSendDECLocatorReleaseEvent(on bool)    { e.sendLocatorReleaseEvents = on }

// --- Sequence builders ---

func (e *InputEncoder) writeCSI() { e.WriteControl1Character(byte(CSI)) }
func (e *InputEncoder) writeSS3() { e.WriteControl1Character(byte(SS3)) }

// decModifiers is the DEC convention in protocol bytes: transmitted modifier
// is the logical modifier bits plus one.
func decModifiers(m uint8) uint8 { return m + 1 }

// writeCSISequence writes "CSI r:m c" with the repeat/modifier prefix left
// out in the unmodified single-repeat case.
func (e *InputEncoder) writeCSISequence(r uint, m uint8, c byte) {
	e.writeCSI()
	if m != 0 || r != 1 {
		e.writeRawString(fmt.Sprintf("%d:%d", r, decModifiers(m)))
	}
	e.writeLatin1(c)
}

// writeCSISequenceAmbig is the semicolon form used where installed software
// expects the ambiguous legacy syntax.
func (e *InputEncoder) writeCSISequenceAmbig(r uint, m uint8, c byte) {
	e.writeCSI()
	if m != 0 || r != 1 {
		e.writeRawString(fmt.Sprintf("%d;%d", r, decModifiers(m)))
	}
	e.writeLatin1(c)
}

func (e *InputEncoder) writeSS3Character(c byte) {
	e.writeSS3()
	e.writeLatin1(c)
}

// writeBrokenSS3Sequence writes the malformed modified SS3 sequences that
// XTerm produces in PC mode.
func (e *InputEncoder) writeBrokenSS3Sequence(m uint8, c byte) {
	e.writeSS3()
	if m != 0 {
		e.writeRawString(fmt.Sprintf("%d", decModifiers(m)))
	}
	e.writeLatin1(c)
}

// writeFNK writes the standard ECMA-48 FNK control sequence.  Modifiers ride
// as a raw sub-parameter; FNK predates the DEC plus-one convention.
func (e *InputEncoder) writeFNK(n uint, m uint8) {
	e.writeCSI()
	if m != 0 {
		e.writeRawString(fmt.Sprintf("%d:%d W", n, m))
	} else {
		e.writeRawString(fmt.Sprintf("%d W", n))
	}
}

// writeDECFNK writes "CSI n ~", encoding modifiers in ISO 8613-6 colon form.
func (e *InputEncoder) writeDECFNK(n uint, m uint8) {
	e.writeCSI()
	if m != 0 {
		e.writeRawString(fmt.Sprintf("%d:%d~", n, decModifiers(m)))
	} else {
		e.writeRawString(fmt.Sprintf("%d~", n))
	}
}

// writeDECFNKAmbig is the semicolon form of writeDECFNK.
func (e *InputEncoder) writeDECFNKAmbig(n uint, m uint8) {
	e.writeCSI()
	if m != 0 {
		e.writeRawString(fmt.Sprintf("%d;%d~", n, decModifiers(m)))
	} else {
		e.writeRawString(fmt.Sprintf("%d~", n))
	}
}

// writeXTermModKey writes "CSI 27 ; m ; n ~": the key that would have
// produced character n, with modifiers m.
func (e *InputEncoder) writeXTermModKey(n uint, m uint8) {
	e.writeCSI()
	e.writeRawString(fmt.Sprintf("27;%d;%d~", decModifiers(m), n))
}

// writeLinuxKVTFNK writes the Linux kernel "CSI [ c" function key form.
func (e *InputEncoder) writeLinuxKVTFNK(m uint8, c byte) {
	e.writeCSI()
	e.writeLatin1('[')
	if m != 0 {
		e.writeRawString(fmt.Sprintf("1;%d", decModifiers(m)))
	}
	e.writeLatin1(c)
}

// writeUSBExtendedFNK is a private variation on FNK for keys named by USB
// usage ID; '?' keeps it sort-of DEC-like.
func (e *InputEncoder) writeUSBExtendedFNK(n uint, m uint8) {
	e.writeCSI()
	if m != 0 {
		e.writeRawString(fmt.Sprintf("?%d:%d W", n, m))
	} else {
		e.writeRawString(fmt.Sprintf("?%d W", n))
	}
}

// writeUSBConsumerFNK is the consumer-page analogue, marked with '='.
func (e *InputEncoder) writeUSBConsumerFNK(n uint, m uint8) {
	e.writeCSI()
	if m != 0 {
		e.writeRawString(fmt.Sprintf("=%d:%d W", n, m))
	} else {
		e.writeRawString(fmt.Sprintf("=%d W", n))
	}
}

// writeSCOConsoleFNK writes the SCO letter form with any unfoldable
// modifiers riding as an ISO 8613-6 extension.
func (e *InputEncoder) writeSCOConsoleFNK(m uint8, c byte) {
	e.writeCSI()
	if m != 0 {
		e.writeRawString(fmt.Sprintf("1:%d", m))
	}
	e.writeLatin1(c)
}

// --- Bracketed paste ---

// setPasting opens or closes the paste bracket when the state changes.
func (e *InputEncoder) setPasting(p bool) {
	if p == e.pasting {
		return
	}
	e.pasting = p
	if e.sendPaste {
		if p {
			e.writeDECFNKAmbig(200, 0)
		} else {
			e.writeDECFNKAmbig(201, 0)
		}
	}
}

// --- Ordinary characters ---

// writeUCS3Character transmits one character, bracketing pastes and
// prefixing accelerators with ESC.
func (e *InputEncoder) writeUCS3Character(c rune, pasted, accelerator bool) {
	e.setPasting(pasted)
	if accelerator {
		e.writeUnicode(ESC)
	}
	e.writeUnicode(c)
	// Interrupt after any pasted character that could otherwise begin a
	// DECFNK sequence.
	if c == ESC || c == CSI {
		e.setPasting(false)
	}
}

// --- Message dispatch ---

// SetDialectFunctionKeys enables the function-key styles the configured
// dialect transmits by default.
func (e *InputEncoder) SetDialectFunctionKeys() {
	switch e.emulation {
	case SCOConsole:
		e.sendSCOFunctionKeys = true
	case Teken:
		e.sendDECFunctionKeys = true
		e.sendSCOFunctionKeys = true
		e.sendTekenFunctionKeys = true
	default:
		e.sendDECFunctionKeys = true
	}
}

// HandleMessage decodes one framed input event and encodes it.
func (e *InputEncoder) HandleMessage(b uint32) {
	switch b & MsgMask {
	case MsgUCS3:
		e.writeUCS3Character(rune(b&^MsgMask), false, false)
	case MsgPUCS3:
		e.writeUCS3Character(rune(b&^MsgMask), true, false)
	case MsgAUCS3:
		e.writeUCS3Character(rune(b&^MsgMask), false, true)
	case MsgCKey:
		e.writeConsumerKey(uint16(b>>8), uint8(b))
	case MsgEKey:
		e.writeExtendedKey(uint16(b>>8), uint8(b))
	case MsgFKey:
		e.writeFunctionKey(uint16(b>>8), uint8(b))
	case MsgXPos:
		e.setMouseX(uint16(b>>8), uint8(b))
	case MsgYPos:
		e.setMouseY(uint16(b>>8), uint8(b))
	case MsgWheel:
		e.writeWheelMotion(uint8(b>>16), int8(b>>8), uint8(b))
	case MsgButton:
		e.setMouseButton(uint8(b>>16), b>>8&0xFF != 0, uint8(b))
	case MsgSession:
		// Session management chatter; nothing to transmit.
	}
}

var (
	_ KeyboardBuffer = (*InputEncoder)(nil)
	_ MouseBuffer    = (*InputEncoder)(nil)
)
