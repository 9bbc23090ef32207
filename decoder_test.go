package softterm

import "testing"

// event records one sink callback for inspection.
type event struct {
	kind         string
	char         rune
	shiftLevel   uint
	intermediate rune
	private      rune
	args         []uint32
	body         string
}

// recordingSink collects decoder events, snapshotting arguments and control
// string bodies at delivery time.
type recordingSink struct {
	BaseSink
	events []event
}

func (s *recordingSink) PrintableCharacter(decodeError bool, shiftLevel uint, c rune) {
	s.events = append(s.events, event{kind: "printable", char: c, shiftLevel: shiftLevel})
}

func (s *recordingSink) ControlCharacter(c rune) {
	s.events = append(s.events, event{kind: "control", char: c})
}

func (s *recordingSink) EscapeSequence(c rune, fi rune) {
	s.events = append(s.events, event{kind: "escape", char: c, intermediate: fi})
}

func (s *recordingSink) ControlSequence(c rune, li rune, fp rune) {
	var args []uint32
	for i := 0; i < s.Args.Count(); i++ {
		args = append(args, s.Args.ZeroIfEmpty(i))
	}
	s.events = append(s.events, event{kind: "csi", char: c, intermediate: li, private: fp, args: args})
}

func (s *recordingSink) ControlString(introducer rune) {
	s.events = append(s.events, event{kind: "string", char: introducer, body: s.Str.String()})
}

func decodeString(s string, cfg DecoderConfig) *recordingSink {
	sink := &recordingSink{}
	d := NewECMA48Decoder(sink, cfg)
	utf8 := NewUTF8Decoder(decoderAdapter{d})
	for _, b := range []byte(s) {
		utf8.Put(b)
	}
	return sink
}

type decoderAdapter struct {
	d *ECMA48Decoder
}

func (a decoderAdapter) ProcessCodePoint(cp CodePoint) { a.d.Process(cp) }

var defaultDecoderConfig = DecoderConfig{
	ControlStrings:      true,
	AllowCancel:         true,
	Allow7BitExtensions: true,
}

func TestDecoderPrintables(t *testing.T) {
	sink := decodeString("ab", defaultDecoderConfig)
	if len(sink.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(sink.events))
	}
	for i, c := range "ab" {
		e := sink.events[i]
		if e.kind != "printable" || e.char != c || e.shiftLevel != 1 {
			t.Errorf("event %d: %+v", i, e)
		}
	}
}

func TestDecoderControlSequence(t *testing.T) {
	sink := decodeString("\x1b[2;3H", defaultDecoderConfig)
	if len(sink.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(sink.events))
	}
	e := sink.events[0]
	if e.kind != "csi" || e.char != 'H' {
		t.Fatalf("unexpected event %+v", e)
	}
	if len(e.args) != 2 || e.args[0] != 2 || e.args[1] != 3 {
		t.Errorf("unexpected args %v", e.args)
	}
}

func TestDecoderPrivateParameter(t *testing.T) {
	sink := decodeString("\x1b[?25h", defaultDecoderConfig)
	e := sink.events[0]
	if e.kind != "csi" || e.char != 'h' || e.private != '?' {
		t.Errorf("unexpected event %+v", e)
	}
	if len(e.args) != 1 || e.args[0] != 25 {
		t.Errorf("unexpected args %v", e.args)
	}
}

func TestDecoderIntermediate(t *testing.T) {
	sink := decodeString("\x1b[2 q", defaultDecoderConfig)
	e := sink.events[0]
	if e.kind != "csi" || e.char != 'q' || e.intermediate != ' ' {
		t.Errorf("unexpected event %+v", e)
	}
}

func TestDecoderEightBitCSI(t *testing.T) {
	// C1 CSI arrives as UTF-8 for U+009B.
	sink := decodeString("\xc2\x9b5m", defaultDecoderConfig)
	e := sink.events[0]
	if e.kind != "csi" || e.char != 'm' || len(e.args) != 1 || e.args[0] != 5 {
		t.Errorf("unexpected event %+v", e)
	}
}

func TestDecoderEscapeSequence(t *testing.T) {
	sink := decodeString("\x1b7", defaultDecoderConfig)
	e := sink.events[0]
	if e.kind != "escape" || e.char != '7' || e.intermediate != NUL {
		t.Errorf("unexpected event %+v", e)
	}

	sink = decodeString("\x1b#8", defaultDecoderConfig)
	e = sink.events[0]
	if e.kind != "escape" || e.char != '8' || e.intermediate != '#' {
		t.Errorf("unexpected event %+v", e)
	}
}

func TestDecoderControlString(t *testing.T) {
	for _, tc := range []struct {
		input      string
		introducer rune
	}{
		{"\x1bPhello\x1b\\", DCS},
		{"\x1b]0;title\x1b\\", OSC},
		{"\x1b^secret\x1b\\", PM},
		{"\x1b_app\x1b\\", APC},
		{"\x1bXsos\x1b\\", SOS},
	} {
		sink := decodeString(tc.input, defaultDecoderConfig)
		if len(sink.events) != 1 {
			t.Fatalf("%q: expected 1 event, got %d: %+v", tc.input, len(sink.events), sink.events)
		}
		e := sink.events[0]
		if e.kind != "string" || e.char != tc.introducer {
			t.Errorf("%q: unexpected event %+v", tc.input, e)
		}
		want := tc.input[2 : len(tc.input)-2]
		if e.body != want {
			t.Errorf("%q: expected body %q, got %q", tc.input, want, e.body)
		}
	}
}

func TestDecoderControlStringEmbeddedControls(t *testing.T) {
	// BS..CR are control string body, not standalone controls.
	sink := decodeString("\x1b]a\tb\x1b\\", defaultDecoderConfig)
	if len(sink.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(sink.events))
	}
	if sink.events[0].body != "a\tb" {
		t.Errorf("expected body with tab, got %q", sink.events[0].body)
	}
}

func TestDecoderAbortReplaysIntroducer(t *testing.T) {
	// A new CSI in the middle of a CSI aborts it and replays the stored
	// introducer as an isolated control.
	sink := decodeString("\x1b[12\x1b[3m", defaultDecoderConfig)
	if len(sink.events) != 2 {
		t.Fatalf("expected 2 events, got %d: %+v", len(sink.events), sink.events)
	}
	if sink.events[0].kind != "control" || sink.events[0].char != CSI {
		t.Errorf("expected replayed CSI control, got %+v", sink.events[0])
	}
	e := sink.events[1]
	if e.kind != "csi" || e.char != 'm' || len(e.args) != 1 || e.args[0] != 3 {
		t.Errorf("unexpected event %+v", e)
	}
}

func TestDecoderCancelAbandonsQuietly(t *testing.T) {
	sink := decodeString("\x1b[12\x18A", defaultDecoderConfig)
	if len(sink.events) != 1 {
		t.Fatalf("expected 1 event, got %d: %+v", len(sink.events), sink.events)
	}
	e := sink.events[0]
	if e.kind != "printable" || e.char != 'A' {
		t.Errorf("unexpected event %+v", e)
	}
}

func TestDecoderSingleShift(t *testing.T) {
	// ESC O folds to SS3; the next printable carries shift level 3.
	sink := decodeString("\x1bOA", defaultDecoderConfig)
	if len(sink.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(sink.events))
	}
	e := sink.events[0]
	if e.kind != "printable" || e.char != 'A' || e.shiftLevel != 3 {
		t.Errorf("unexpected event %+v", e)
	}
}

func TestDecoderStarvedShiftReplaysIntroducer(t *testing.T) {
	// A control in the shift window replays the shift introducer.
	sink := decodeString("\x1bO\rA", defaultDecoderConfig)
	if len(sink.events) != 3 {
		t.Fatalf("expected 3 events, got %d: %+v", len(sink.events), sink.events)
	}
	if sink.events[0].kind != "control" || sink.events[0].char != SS3 {
		t.Errorf("expected SS3 control, got %+v", sink.events[0])
	}
	if sink.events[1].kind != "control" || sink.events[1].char != CR {
		t.Errorf("expected CR control, got %+v", sink.events[1])
	}
	if sink.events[2].shiftLevel != 1 {
		t.Errorf("shift should not survive, got %+v", sink.events[2])
	}
}

func TestDecoderOverlongAbandonsSequence(t *testing.T) {
	// An overlong '[' inside a CSI dispatches as a shift-level-0
	// printable and abandons the sequence.
	sink := decodeString("\x1b[1\xc1\x9bm", defaultDecoderConfig)
	if len(sink.events) != 2 {
		t.Fatalf("expected 2 events, got %d: %+v", len(sink.events), sink.events)
	}
	e := sink.events[0]
	if e.kind != "printable" || e.char != '[' || e.shiftLevel != 0 {
		t.Errorf("unexpected event %+v", e)
	}
	if sink.events[1].kind != "printable" || sink.events[1].char != 'm' {
		t.Errorf("sequence should be abandoned, got %+v", sink.events[1])
	}
}

func TestDecoderLinuxFunctionKeyShift(t *testing.T) {
	cfg := defaultDecoderConfig
	cfg.LinuxFunctionKeys = true
	sink := decodeString("\x1b[[A", cfg)
	if len(sink.events) != 1 {
		t.Fatalf("expected 1 event, got %d: %+v", len(sink.events), sink.events)
	}
	e := sink.events[0]
	if e.kind != "printable" || e.char != 'A' || e.shiftLevel != 12 {
		t.Errorf("unexpected event %+v", e)
	}
}

func TestDecoderInterixShift(t *testing.T) {
	cfg := defaultDecoderConfig
	cfg.InterixShift = true
	// ESC F folds to SSA, which the Interix dialect puns into a shift.
	sink := decodeString("\x1bFA", cfg)
	if len(sink.events) != 1 {
		t.Fatalf("expected 1 event, got %d: %+v", len(sink.events), sink.events)
	}
	e := sink.events[0]
	if e.kind != "printable" || e.char != 'A' || e.shiftLevel != 10 {
		t.Errorf("unexpected event %+v", e)
	}
}

func TestDecoderRXVTFunctionKeyFinal(t *testing.T) {
	cfg := defaultDecoderConfig
	cfg.RXVTFunctionKeys = true
	// '$' terminates rxvt shifted function keys instead of collecting as
	// an intermediate.
	sink := decodeString("\x1b[11$", cfg)
	if len(sink.events) != 1 {
		t.Fatalf("expected 1 event, got %d: %+v", len(sink.events), sink.events)
	}
	e := sink.events[0]
	if e.kind != "csi" || e.char != '$' || len(e.args) != 1 || e.args[0] != 11 {
		t.Errorf("unexpected event %+v", e)
	}
}

func TestDecoderControlStringsDisabled(t *testing.T) {
	cfg := defaultDecoderConfig
	cfg.ControlStrings = false
	sink := decodeString("\x1b]0;title\x07", cfg)
	// With control strings off, OSC is dropped and the body decodes as
	// ordinary characters.
	for _, e := range sink.events {
		if e.kind == "string" {
			t.Fatalf("unexpected control string event %+v", e)
		}
	}
}

func TestDecoderStateTotality(t *testing.T) {
	// Throwing every byte at every entry state must never wedge the
	// decoder: a plain printable afterwards always comes through.
	prefixes := []string{"", "\x1b", "\x1b#", "\x1b[", "\x1b[1", "\x1b[1;", "\x1b[ ", "\x1bP", "\x1bP\x1b"}
	for _, prefix := range prefixes {
		for b := 0; b < 256; b++ {
			sink := &recordingSink{}
			d := NewECMA48Decoder(sink, defaultDecoderConfig)
			utf8 := NewUTF8Decoder(decoderAdapter{d})
			for _, c := range []byte(prefix) {
				utf8.Put(c)
			}
			utf8.Put(byte(b))
			// Terminate any control string and deliver a probe.
			for _, c := range []byte("\x1b\\Z") {
				utf8.Put(c)
			}
			found := false
			for _, e := range sink.events {
				if e.kind == "printable" && e.char == 'Z' {
					found = true
				}
			}
			if !found {
				t.Fatalf("decoder wedged after %q + %#02x", prefix, b)
			}
		}
	}
}
