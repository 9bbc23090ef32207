package softterm

// SequenceSink receives classified ECMA-48 events from the decoder.
//
// The first group of methods is storage plumbing called by the decoder while
// it accumulates control-sequence arguments and control-string bodies;
// embedding BaseSink provides them ready-made.  The second group is the
// abstract event API.
type SequenceSink interface {
	ResetControlSequenceArgs()
	ResetControlString()
	AppendArgDigit(d uint32)
	Colon()
	Semicolon()
	MinimumOneArg()
	AppendControlString(c rune)

	// PrintableCharacter delivers one printable.  shiftLevel is 1 for the
	// ordinary graphic set, 2/3 after SS2/SS3, 10/12 for the SSA/SRS
	// dialect shifts, and 0 for characters that arrived as decoding
	// errors or overlong encodings.
	PrintableCharacter(decodeError bool, shiftLevel uint, c rune)
	ControlCharacter(c rune)
	EscapeSequence(c rune, firstIntermediate rune)
	ControlSequence(c rune, lastIntermediate rune, firstPrivateParameter rune)
	ControlString(introducer rune)
}

// BaseSink supplies the storage half of SequenceSink.  Concrete sinks embed
// it and implement only the five event methods.
type BaseSink struct {
	Args Arguments
	Str  ControlStringBuffer
}

func (s *BaseSink) ResetControlSequenceArgs() { s.Args.Reset() }
func (s *BaseSink) ResetControlString()       { s.Str.Reset() }
func (s *BaseSink) AppendArgDigit(d uint32)   { s.Args.AppendDigit(d) }
func (s *BaseSink) Colon()                    { s.Args.Colon() }
func (s *BaseSink) Semicolon()                { s.Args.Semicolon() }
func (s *BaseSink) MinimumOneArg()            { s.Args.MinimumOneArg() }
func (s *BaseSink) AppendControlString(c rune) { s.Str.Append(c) }

// DebugProvider receives decoder diagnostics.  The engines never fail; a
// malformation is at most one line here.
type DebugProvider interface {
	Debugf(format string, args ...any)
}

// NoopDebug discards all diagnostics.
type NoopDebug struct{}

func (NoopDebug) Debugf(format string, args ...any) {}

type decoderState int

const (
	stateNormal decoderState = iota
	stateEscape
	stateEscapeNF
	stateControl1
	stateControl2
	stateShift2
	stateShift3
	stateShiftA
	stateShiftL
	stateControlString
	stateControlStringEscape
)

// DecoderConfig selects the dialect-dependent behaviours of the decoder.
type DecoderConfig struct {
	// ControlStrings enables recognition of DCS/OSC/PM/APC/SOS bodies.
	ControlStrings bool
	// AllowCancel makes CAN abandon the current sequence.
	AllowCancel bool
	// Allow7BitExtensions folds every ESC Fe final into its C1 control.
	// ESC [ folds to CSI regardless.
	Allow7BitExtensions bool
	// InterixShift treats SSA as a single-shift (Interix function keys).
	InterixShift bool
	// RXVTFunctionKeys keeps '$' out of the intermediate set so that
	// rxvt-style shifted function key sequences terminate on it.
	RXVTFunctionKeys bool
	// LinuxFunctionKeys treats a bare "CSI [" as a single-shift (Linux
	// kernel function keys).
	LinuxFunctionKeys bool
}

// ECMA48Decoder classifies a UCS character stream into printables, isolated
// controls, escape sequences, control sequences, and control strings.
// It is fed from something like a UTF8Decoder and delivers to a SequenceSink.
type ECMA48Decoder struct {
	sink  SequenceSink
	cfg   DecoderConfig
	debug DebugProvider

	state                 decoderState
	firstPrivateParameter rune
	savedIntermediate     rune
	stringChar            rune
}

// NewECMA48Decoder creates a decoder delivering to sink.
func NewECMA48Decoder(sink SequenceSink, cfg DecoderConfig) *ECMA48Decoder {
	d := &ECMA48Decoder{
		sink:  sink,
		cfg:   cfg,
		debug: NoopDebug{},
	}
	sink.ResetControlSequenceArgs()
	sink.ResetControlString()
	return d
}

// SetDebugProvider routes decoder diagnostics to p.
func (d *ECMA48Decoder) SetDebugProvider(p DebugProvider) {
	if p == nil {
		p = NoopDebug{}
	}
	d.debug = p
}

// AbortSequence abandons any sequence in progress, replaying the stored
// introducer to the sink as an isolated control character.  Downstream
// consumers treating ESC-alone as the Escape key rely on the replay.
// Intermediate and parameter characters are not preserved; nothing in either
// input or output ECMA-48 processing wants them back.
func (d *ECMA48Decoder) AbortSequence() {
	switch d.state {
	case stateEscape, stateEscapeNF:
		d.sink.ControlCharacter(ESC)
	case stateControl1, stateControl2:
		d.sink.ControlCharacter(CSI)
	case stateControlString, stateControlStringEscape:
		d.sink.ControlCharacter(d.stringChar)
	}
	d.state = stateNormal
}

func (d *ECMA48Decoder) terminateSequence() {
	switch d.state {
	case stateControlString, stateControlStringEscape:
		d.sink.ControlString(d.stringChar)
	}
	d.state = stateNormal
}

func (d *ECMA48Decoder) resetControlSeqAndStr() {
	d.firstPrivateParameter = NUL
	d.savedIntermediate = NUL
	d.stringChar = NUL
	d.sink.ResetControlSequenceArgs()
	d.sink.ResetControlString()
}

func (d *ECMA48Decoder) controlCharacter(c rune) {
	// Starting an escape sequence, a control sequence, or a control string
	// aborts any that is in progress.
	switch c {
	case DCS, OSC, PM, APC, SOS:
		if d.cfg.ControlStrings {
			d.AbortSequence()
		}
	case CSI:
		d.AbortSequence()
	case ESC:
		if d.state != stateControlString {
			d.AbortSequence()
		}
	case ST:
		d.terminateSequence()
	}

	switch c {
	case CAN:
		// The sink might never see this one.
		if d.cfg.AllowCancel {
			d.state = stateNormal
		} else {
			d.sink.ControlCharacter(c)
		}
	case ESC:
		if d.state == stateControlString {
			d.state = stateControlStringEscape
		} else {
			d.state = stateEscape
		}
		d.savedIntermediate = NUL
	case CSI:
		d.state = stateControl1
		d.resetControlSeqAndStr()
	case SS2:
		d.state = stateShift2
	case SS3:
		d.state = stateShift3
	case SSA:
		// Pretend that Start of Selected Area is Shift State A.
		if d.cfg.InterixShift {
			d.state = stateShiftA
		} else {
			d.sink.ControlCharacter(c)
		}
	case DCS, OSC, PM, APC, SOS:
		if d.cfg.ControlStrings {
			d.state = stateControlString
			d.resetControlSeqAndStr()
			d.stringChar = c
		}
	case ST:
		if d.cfg.ControlStrings {
			d.state = stateNormal
		}
	default:
		d.sink.ControlCharacter(c)
	}
}

func (d *ECMA48Decoder) escape(c rune) {
	switch {
	case isControl(c):
		d.controlCharacter(c)
	case isIntermediate(c):
		d.savedIntermediate = c
		d.state = stateEscapeNF
	case isParameter(c):
		// ECMA-35 private control function (Fp) escape sequence.
		d.sink.EscapeSequence(c, d.savedIntermediate)
		d.state = stateNormal
	case c >= 0x40 && c <= 0x5F:
		if d.cfg.Allow7BitExtensions || isAlways7BitExtension(c) {
			// ECMA-35 7-bit code extension (Fe), defined for the
			// whole range.  Reset state first so that the control
			// character processing can override it.
			d.state = stateNormal
			d.controlCharacter(c + 0x40)
		} else {
			d.sink.EscapeSequence(c, d.savedIntermediate)
			d.state = stateNormal
		}
	default:
		// ECMA-35 standardized single control function (Fs).
		d.sink.EscapeSequence(c, d.savedIntermediate)
		d.state = stateNormal
	}
}

// escapeNF handles ESC sequences that already carry an intermediate.
// See ECMA-35 section 13.2.2 for the meaning of "nF".
func (d *ECMA48Decoder) escapeNF(c rune) {
	switch {
	case isControl(c):
		d.controlCharacter(c)
	case isIntermediate(c):
		// Keep the first intermediate, rather than the last.
	default:
		d.sink.EscapeSequence(c, d.savedIntermediate)
		d.state = stateNormal
	}
}

func (d *ECMA48Decoder) controlSequence(c rune) {
	switch {
	case isControl(c):
		d.controlCharacter(c)
	case isParameter(c):
		if d.state != stateControl1 {
			d.debug.Debugf("out of sequence CSI parameter character: %q", c)
			d.state = stateNormal
			return
		}
		switch {
		case c >= '0' && c <= '9':
			d.sink.AppendArgDigit(uint32(c - '0'))
		case c == ':':
			// ECMA-48 sub-argument delimiter, defined for
			// ISO 8613-6/ITU T.416 SGR 38/48 and used by various
			// extensions.
			d.sink.Colon()
		case c == ';':
			d.sink.Semicolon()
		default:
			// Everything else up to U+003F is a private parameter
			// character per ECMA-48 5.4.1.  DEC VTs use '<', '=',
			// '>', and '?'.
			if d.firstPrivateParameter == NUL {
				d.firstPrivateParameter = c
			}
		}
	case isIntermediate(c) && !(d.cfg.RXVTFunctionKeys && c == 0x24):
		d.savedIntermediate = c
		d.state = stateControl2
	case d.cfg.LinuxFunctionKeys && c == '[' && d.savedIntermediate == NUL && d.firstPrivateParameter == NUL:
		// Pretend that SRS is Shift State L.
		d.state = stateShiftL
	default:
		d.sink.ControlSequence(c, d.savedIntermediate, d.firstPrivateParameter)
		d.state = stateNormal
	}
}

func (d *ECMA48Decoder) controlString(c rune) {
	// BS, HT, LF, VT, FF, and CR are part of a control string, not
	// standalone control characters.
	switch {
	case c >= 0x08 && c < 0x0E:
		d.sink.AppendControlString(c)
	case isControl(c):
		d.controlCharacter(c)
	default:
		d.sink.AppendControlString(c)
	}
}

func (d *ECMA48Decoder) controlStringEscape(c rune) {
	switch {
	case c >= 0x08 && c < 0x0E:
		d.sink.AppendControlString(c)
	case isControl(c):
		d.controlCharacter(c)
	case isIntermediate(c), isParameter(c):
		// Ignore inside control strings.
	case c >= 0x40 && c <= 0x5F:
		if d.cfg.Allow7BitExtensions || isAlways7BitExtension(c) {
			d.controlCharacter(c + 0x40)
		}
		// Otherwise ignore inside control strings.
	default:
		// Fs escapes are ignored inside control strings.
	}
}

// Process classifies one decoded character.
func (d *ECMA48Decoder) Process(cp CodePoint) {
	c := cp.Value
	switch d.state {
	case stateNormal, stateShift2, stateShift3, stateShiftA, stateShiftL:
		if cp.Error || cp.Overlong {
			d.sink.PrintableCharacter(cp.Error, 0, c)
			d.state = stateNormal
			return
		}
		if isControl(c) {
			// A control in a single-shift window starves the
			// shift; replay its introducer to the sink.
			switch d.state {
			case stateShift2:
				d.sink.ControlCharacter(SS2)
			case stateShift3:
				d.sink.ControlCharacter(SS3)
			case stateShiftA:
				d.sink.ControlCharacter(SSA)
			}
			// Reset first, so that the control character processing
			// can override it.
			d.state = stateNormal
			d.controlCharacter(c)
			return
		}
		switch d.state {
		case stateNormal:
			d.sink.PrintableCharacter(false, 1, c)
		case stateShift2:
			d.sink.PrintableCharacter(false, 2, c)
		case stateShift3:
			d.sink.PrintableCharacter(false, 3, c)
		case stateShiftA:
			d.sink.PrintableCharacter(false, 10, c)
		case stateShiftL:
			d.sink.PrintableCharacter(false, 12, c)
		}
		d.state = stateNormal
	default:
		if cp.Error {
			d.state = stateNormal
			return
		}
		if cp.Overlong {
			d.sink.PrintableCharacter(false, 0, c)
			d.state = stateNormal
			return
		}
		switch d.state {
		case stateEscape:
			d.escape(c)
		case stateEscapeNF:
			d.escapeNF(c)
		case stateControl1, stateControl2:
			d.controlSequence(c)
		case stateControlString:
			d.controlString(c)
		case stateControlStringEscape:
			d.controlStringEscape(c)
		}
	}
}
