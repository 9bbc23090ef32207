package softterm

import (
	"bytes"
	"testing"
)

type codePointCollector struct {
	points []CodePoint
}

func (c *codePointCollector) ProcessCodePoint(cp CodePoint) {
	c.points = append(c.points, cp)
}

func decodeAll(t *testing.T, input []byte) []CodePoint {
	t.Helper()
	sink := &codePointCollector{}
	d := NewUTF8Decoder(sink)
	for _, b := range input {
		d.Put(b)
	}
	return sink.points
}

func TestUTF8DecodeASCII(t *testing.T) {
	points := decodeAll(t, []byte("Az"))
	if len(points) != 2 {
		t.Fatalf("expected 2 code points, got %d", len(points))
	}
	if points[0].Value != 'A' || points[0].Error || points[0].Overlong {
		t.Errorf("unexpected first code point: %+v", points[0])
	}
}

func TestUTF8DecodeMultibyte(t *testing.T) {
	points := decodeAll(t, []byte("\xE2\x82\xAC"))
	if len(points) != 1 {
		t.Fatalf("expected 1 code point, got %d", len(points))
	}
	if points[0].Value != 0x20AC || points[0].Error || points[0].Overlong {
		t.Errorf("unexpected code point: %+v", points[0])
	}
}

func TestUTF8DecodeOverlong(t *testing.T) {
	// A two-byte encoding of '[': valid value, over-length form.
	points := decodeAll(t, []byte{0xC1, 0x9B})
	if len(points) != 1 {
		t.Fatalf("expected 1 code point, got %d", len(points))
	}
	if points[0].Value != '[' {
		t.Errorf("expected '[', got %q", points[0].Value)
	}
	if !points[0].Overlong {
		t.Error("expected overlong flag")
	}
	if points[0].Error {
		t.Error("overlong is not an error")
	}
}

func TestUTF8DecodeMalformed(t *testing.T) {
	// A lone continuation byte.
	points := decodeAll(t, []byte{0x80})
	if len(points) != 1 {
		t.Fatalf("expected 1 code point, got %d", len(points))
	}
	if points[0].Value != 0xFFFD || !points[0].Error {
		t.Errorf("expected U+FFFD error, got %+v", points[0])
	}
}

func TestUTF8DecodeTruncatedSequence(t *testing.T) {
	// A lead byte interrupted by ASCII: one replacement, then the ASCII.
	points := decodeAll(t, []byte{0xE2, 'A'})
	if len(points) != 2 {
		t.Fatalf("expected 2 code points, got %d", len(points))
	}
	if points[0].Value != 0xFFFD || !points[0].Error {
		t.Errorf("expected U+FFFD error, got %+v", points[0])
	}
	if points[1].Value != 'A' || points[1].Error {
		t.Errorf("expected 'A', got %+v", points[1])
	}
}

func TestUTF8EncodeMinimalLength(t *testing.T) {
	cases := []struct {
		c    rune
		want []byte
	}{
		{0x41, []byte{0x41}},
		{0xA2, []byte{0xC2, 0xA2}},
		{0x20AC, []byte{0xE2, 0x82, 0xAC}},
		{0x10348, []byte{0xF0, 0x90, 0x8D, 0x88}},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		NewUTF8Encoder(&buf).Process(tc.c)
		if !bytes.Equal(buf.Bytes(), tc.want) {
			t.Errorf("encode %#x: got % x, want % x", tc.c, buf.Bytes(), tc.want)
		}
	}
}

func TestUTF8RoundTrip(t *testing.T) {
	// Every code point decodes back to itself with no error, including
	// the pre-2003 extended range.
	for _, c := range []rune{0, 0x7F, 0x80, 0x7FF, 0x800, 0xFFFF, 0x10000, 0x10FFFF, 0x1FFFFF, 0x3FFFFFF, 0x7FFFFFFF} {
		var buf bytes.Buffer
		NewUTF8Encoder(&buf).Process(c)
		points := decodeAll(t, buf.Bytes())
		if len(points) != 1 {
			t.Fatalf("%#x: expected 1 code point, got %d", c, len(points))
		}
		if points[0].Value != c || points[0].Error || points[0].Overlong {
			t.Errorf("%#x: round trip gave %+v", c, points[0])
		}
	}
}

func TestUTF8SixByteLength(t *testing.T) {
	var buf bytes.Buffer
	NewUTF8Encoder(&buf).Process(0x7FFFFFFF)
	if buf.Len() != 6 {
		t.Errorf("expected 6 bytes, got %d", buf.Len())
	}
}
