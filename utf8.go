package softterm

import "io"

// UTF8Decoder converts a byte stream into CodePoints.
//
// All historical encoding lengths (1 to 6 bytes) are accepted so that the
// full pre-2003 range up to 0x7FFFFFFF round-trips.  Malformed input yields
// U+FFFD with the Error flag set; valid code points that arrived in a longer
// encoding than the minimum are flagged Overlong so that the ECMA-48 layer
// can refuse to treat them as controls.
type UTF8Decoder struct {
	sink CodePointSink

	value     rune
	remaining int
	minimum   rune
}

// NewUTF8Decoder creates a decoder delivering characters to sink.
func NewUTF8Decoder(sink CodePointSink) *UTF8Decoder {
	return &UTF8Decoder{sink: sink}
}

// utf8Minimum is the smallest code point that genuinely needs an encoding of
// the given length.
var utf8Minimum = [7]rune{0, 0, 0x80, 0x800, 0x10000, 0x200000, 0x4000000}

// Put feeds one byte into the decoder.
func (d *UTF8Decoder) Put(b byte) {
	if d.remaining > 0 {
		if b&0xC0 == 0x80 {
			d.value = d.value<<6 | rune(b&0x3F)
			d.remaining--
			if d.remaining == 0 {
				d.sink.ProcessCodePoint(CodePoint{
					Value:    d.value,
					Overlong: d.value < d.minimum,
				})
			}
			return
		}
		// Truncated sequence: report the malformation, then let the
		// interrupting byte start afresh.
		d.remaining = 0
		d.sink.ProcessCodePoint(CodePoint{Value: 0xFFFD, Error: true})
	}

	switch {
	case b < 0x80:
		d.sink.ProcessCodePoint(CodePoint{Value: rune(b)})
	case b < 0xC0:
		// Continuation byte with no sequence in progress.
		d.sink.ProcessCodePoint(CodePoint{Value: 0xFFFD, Error: true})
	case b < 0xE0:
		d.start(rune(b&0x1F), 1)
	case b < 0xF0:
		d.start(rune(b&0x0F), 2)
	case b < 0xF8:
		d.start(rune(b&0x07), 3)
	case b < 0xFC:
		d.start(rune(b&0x03), 4)
	case b < 0xFE:
		d.start(rune(b&0x01), 5)
	default:
		d.sink.ProcessCodePoint(CodePoint{Value: 0xFFFD, Error: true})
	}
}

func (d *UTF8Decoder) start(high rune, continuations int) {
	d.value = high
	d.remaining = continuations
	d.minimum = utf8Minimum[continuations+1]
}

// Write feeds a whole buffer through the decoder.  Implements io.Writer.
func (d *UTF8Decoder) Write(p []byte) (int, error) {
	for _, b := range p {
		d.Put(b)
	}
	return len(p), nil
}

// UTF8Encoder writes code points to a byte sink in minimal-length UTF-8.
// Each character is emitted atomically in a single Write call.
type UTF8Encoder struct {
	w io.Writer
}

// NewUTF8Encoder creates an encoder writing to w.
func NewUTF8Encoder(w io.Writer) *UTF8Encoder {
	return &UTF8Encoder{w: w}
}

// Process encodes one code point.
func (e *UTF8Encoder) Process(c rune) {
	switch {
	case c < 0x80:
		e.w.Write([]byte{byte(c)})
	case c < 0x800:
		e.w.Write([]byte{
			0xC0 | byte(0x1F&(c>>6)),
			0x80 | byte(0x3F&c),
		})
	case c < 0x10000:
		e.w.Write([]byte{
			0xE0 | byte(0x0F&(c>>12)),
			0x80 | byte(0x3F&(c>>6)),
			0x80 | byte(0x3F&c),
		})
	case c < 0x200000:
		e.w.Write([]byte{
			0xF0 | byte(0x07&(c>>18)),
			0x80 | byte(0x3F&(c>>12)),
			0x80 | byte(0x3F&(c>>6)),
			0x80 | byte(0x3F&c),
		})
	case c < 0x4000000:
		e.w.Write([]byte{
			0xF8 | byte(0x03&(c>>24)),
			0x80 | byte(0x3F&(c>>18)),
			0x80 | byte(0x3F&(c>>12)),
			0x80 | byte(0x3F&(c>>6)),
			0x80 | byte(0x3F&c),
		})
	default:
		e.w.Write([]byte{
			0xFC | byte(0x01&(c>>30)),
			0x80 | byte(0x3F&(c>>24)),
			0x80 | byte(0x3F&(c>>18)),
			0x80 | byte(0x3F&(c>>12)),
			0x80 | byte(0x3F&(c>>6)),
			0x80 | byte(0x3F&c),
		})
	}
}
