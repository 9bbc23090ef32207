// Package softterm is a headless terminal emulator and its input-side
// inverse.
//
// The output direction decodes an application-to-terminal byte stream per
// ECMA-48 / ISO 2022 / ISO 6429 (with the DEC VT, Linux, SCO, teken, and
// XTerm dialect extensions) and maintains a two-dimensional character-cell
// display; the input direction takes abstract key, mouse, and paste events
// and emits the bytes a chosen terminal dialect would transmit.
//
// # Pipeline
//
// The output side is a chain of three engines sharing one data model:
//
//	application bytes -> UTF8Decoder -> ECMA48Decoder -> SoftTerm -> ScreenBuffer
//
// [UTF8Decoder] turns bytes into [CodePoint]s, flagging malformed input and
// overlong encodings.  [ECMA48Decoder] classifies the character stream into
// printables, isolated controls, escape sequences, control sequences, and
// control strings, delivering them to a [SequenceSink].  [SoftTerm] is the
// display engine: it implements the CSI/ESC function catalogue against a
// [ScreenBuffer] and drives the keyboard and mouse collaborators' modes.
//
// The input side is the symmetric [InputEncoder]: framed input events
// (see [MessageUCS3] and friends) come in, dialect-correct byte sequences
// come out.
//
// # Quick start
//
// Emulate a display and inspect it:
//
//	screen := softterm.NewMemoryBuffer(80, 24)
//	encoder := softterm.NewInputEncoder(softterm.DECVT)
//	term := softterm.NewSoftTerm(screen, encoder, encoder, softterm.Setup{Width: 80, Height: 24})
//
//	term.Write([]byte("\x1b[1;31mhello\x1b[0m"))
//	fmt.Println(screen.Line(0)) // "hello"
//
// Encode input events for the application:
//
//	encoder.HandleMessage(softterm.MessageExtendedKey(softterm.ExtendedKeyUpArrow, 0))
//	bytes := encoder.TakeOutput() // "\x1b[A"
//
// # Concurrency
//
// Each decode pipeline instance is single-threaded and cooperative.  Feed
// SoftTerm and the InputEncoder from one goroutine; the only blocking I/O
// belongs to the host loop that connects them to a pty.  The encoder
// exposes HasInputSpace and OutputAvailable so that the host loop can apply
// back-pressure.
//
// # Screen buffers
//
// [MemoryBuffer] keeps the grid in memory; [UnicodeFileBuffer] and
// [LegacyFileBuffer] persist it in the canonical 16-byte true-colour and
// 2-byte vcsa layouts; [MultiBuffer] fans writes out to several buffers at
// once.
package softterm
