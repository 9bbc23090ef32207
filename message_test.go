package softterm

import (
	"encoding/binary"
	"testing"
)

func TestMessageCharacterFields(t *testing.T) {
	m := MessageUCS3(0x10FFFF)
	if m&MsgMask != MsgUCS3 {
		t.Error("wrong tag")
	}
	if rune(m&^MsgMask) != 0x10FFFF {
		t.Errorf("wrong code point %#x", m&^MsgMask)
	}
	if MessagePastedUCS3('x')&MsgMask != MsgPUCS3 {
		t.Error("wrong pasted tag")
	}
	if MessageAcceleratorUCS3('x')&MsgMask != MsgAUCS3 {
		t.Error("wrong accelerator tag")
	}
}

func TestMessageKeyFields(t *testing.T) {
	m := MessageExtendedKey(0x1234, ModifierControl|ModifierLevel2)
	if m&MsgMask != MsgEKey {
		t.Error("wrong tag")
	}
	if uint16(m>>8) != 0x1234 {
		t.Errorf("wrong key number %#x", uint16(m>>8))
	}
	if uint8(m) != ModifierControl|ModifierLevel2 {
		t.Errorf("wrong modifiers %#x", uint8(m))
	}
}

func TestMessageWheelFields(t *testing.T) {
	m := MessageMouseWheel(1, -2, 3)
	if m&MsgMask != MsgWheel {
		t.Error("wrong tag")
	}
	if uint8(m>>16) != 1 {
		t.Errorf("wrong wheel index %d", uint8(m>>16))
	}
	if int8(m>>8) != -2 {
		t.Errorf("wrong delta %d", int8(m>>8))
	}
	if uint8(m) != 3 {
		t.Errorf("wrong modifiers %d", uint8(m))
	}
}

func TestMessageButtonFields(t *testing.T) {
	m := MessageMouseButton(2, true, ModifierSuper)
	if m&MsgMask != MsgButton {
		t.Error("wrong tag")
	}
	if uint8(m>>16) != 2 {
		t.Errorf("wrong button %d", uint8(m>>16))
	}
	if m>>8&0xFF == 0 {
		t.Error("expected pressed state")
	}
	if uint8(m) != ModifierSuper {
		t.Errorf("wrong modifiers %d", uint8(m))
	}
}

func TestInputFIFOReassembly(t *testing.T) {
	var f InputFIFO
	want := []uint32{MessageUCS3('a'), MessageMouseX(10, 0), MessageFunctionKey(5, ModifierControl)}
	var raw []byte
	for _, m := range want {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], m)
		raw = append(raw, b[:]...)
	}
	// Deliver in awkward chunk sizes.
	f.Write(raw[:3])
	if f.HasMessage() {
		t.Fatal("three bytes are not a message")
	}
	f.Write(raw[3:7])
	if !f.HasMessage() {
		t.Fatal("expected a complete message")
	}
	f.Write(raw[7:])
	for i, m := range want {
		if !f.HasMessage() {
			t.Fatalf("message %d missing", i)
		}
		if got := f.PullMessage(); got != m {
			t.Errorf("message %d: expected %#x, got %#x", i, m, got)
		}
	}
	if f.HasMessage() {
		t.Error("no messages should remain")
	}
}
