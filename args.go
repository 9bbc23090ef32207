package softterm

import "math"

// maxArguments bounds both the top-level argument list and each sublist.
// Entries past the bound are silently dropped.
const maxArguments = 64

// argument is a nullable number.  A null argument is one whose position was
// present in the sequence but carried no digits (e.g. "CSI ; 3 H").
type argument struct {
	null  bool
	value uint32
}

// Arguments accumulates CSI parameter bytes into a list of sublists of
// nullable numbers.  Semicolons open new top-level entries; colons append
// sub-entries to the current one; digits accumulate into the current number,
// saturating at MaxUint32.
//
// The accessor vocabulary exists because the dialect zoo disagrees on what
// missing and explicit-zero parameters mean.  ECMA-48:1986 abolished Zero
// Default Mode; SetZeroDefaultMode restores it for legacy clients.
type Arguments struct {
	list            [][]argument
	zeroReplacement uint32
}

// Reset discards all accumulated arguments.
func (a *Arguments) Reset() {
	a.list = a.list[:0]
}

// SetZeroDefaultMode selects the ECMA-48 Zero Default Mode replacement used
// by ZDIfZeroOneIfEmpty: 1 when on, 0 (explicit zero stays zero) when off.
func (a *Arguments) SetZeroDefaultMode(on bool) {
	if on {
		a.zeroReplacement = 1
	} else {
		a.zeroReplacement = 0
	}
}

// AppendDigit accumulates one decimal digit into the current number.
func (a *Arguments) AppendDigit(d uint32) {
	if len(a.list) == 0 {
		a.list = append(a.list, nil)
	}
	if len(a.list) > maxArguments {
		return
	}
	s := &a.list[len(a.list)-1]
	if len(*s) == 0 {
		*s = append(*s, argument{null: true})
	}
	if len(*s) > maxArguments {
		return
	}
	n := &(*s)[len(*s)-1]
	if n.null {
		n.value = 0
		n.null = false
	}
	if n.value >= math.MaxUint32/10 {
		n.value = math.MaxUint32
	} else {
		n.value = n.value*10 + d
	}
}

// Colon opens a new sub-entry in the current top-level argument.
func (a *Arguments) Colon() {
	if len(a.list) == 0 {
		a.list = append(a.list, nil)
	}
	if len(a.list) > maxArguments {
		return
	}
	s := &a.list[len(a.list)-1]
	if len(*s) == 0 {
		*s = append(*s, argument{null: true})
	}
	if len(*s) >= maxArguments {
		return
	}
	*s = append(*s, argument{null: true})
}

// Semicolon opens a new top-level argument.
func (a *Arguments) Semicolon() {
	if len(a.list) == 0 {
		a.list = append(a.list, nil)
	}
	if len(a.list) >= maxArguments {
		return
	}
	a.list = append(a.list, nil)
}

// MinimumOneArg ensures that at least one (null) argument exists, so that
// sequences with no parameters at all iterate once over their default.
func (a *Arguments) MinimumOneArg() {
	if len(a.list) == 0 {
		a.list = append(a.list, nil)
	}
}

// Count returns the number of top-level arguments.
func (a *Arguments) Count() int {
	return len(a.list)
}

// SubCount returns the number of sub-entries in argument sub.
func (a *Arguments) SubCount(sub int) int {
	if sub >= len(a.list) {
		return 0
	}
	return len(a.list[sub])
}

// IsNull reports whether the (sub, index) slot is absent or empty.
func (a *Arguments) IsNull(sub, index int) bool {
	if sub >= len(a.list) {
		return true
	}
	s := a.list[sub]
	if index >= len(s) {
		return true
	}
	return s[index].null
}

// HasNoSubArgsFrom reports whether no argument at or after position sub
// carries colon-separated sub-entries.  Used to decide whether a colour
// parameter list arrived in semicolon (legacy) form.
func (a *Arguments) HasNoSubArgsFrom(sub int) bool {
	for i := sub; i < len(a.list); i++ {
		if len(a.list[i]) > 1 {
			return false
		}
	}
	return true
}

// CollapseToSubArgs folds every top-level argument after position sub into
// the sublist at sub, keeping only each victim's first entry.  This
// pre-normalises legacy semicolon-separated parameter lists so that the
// ISO 8613-6 colon form can be parsed uniformly.
func (a *Arguments) CollapseToSubArgs(sub int) {
	if sub >= len(a.list) {
		return
	}
	d := a.list[sub]
	for _, s := range a.list[sub+1:] {
		if len(s) == 0 {
			d = append(d, argument{null: true})
		} else {
			d = append(d, s[0])
		}
	}
	a.list[sub] = d
	a.list = a.list[:sub+1]
}

// ThisIfEmpty returns the (sub, index) value, or d when absent or empty.
func (a *Arguments) ThisIfEmpty(sub, index int, d uint32) uint32 {
	if sub >= len(a.list) {
		return d
	}
	s := a.list[sub]
	if index >= len(s) {
		return d
	}
	n := s[index]
	if n.null {
		return d
	}
	return n.value
}

// ThisIfZeroThisIfEmpty returns the (sub, index) value, substituting dz for
// an explicit zero and de when absent or empty.
func (a *Arguments) ThisIfZeroThisIfEmpty(sub, index int, dz, de uint32) uint32 {
	if sub >= len(a.list) {
		return de
	}
	s := a.list[sub]
	if index >= len(s) {
		return de
	}
	n := s[index]
	if n.null {
		return de
	}
	if n.value == 0 {
		return dz
	}
	return n.value
}

// ZeroIfEmpty returns argument sub, defaulting to 0 when empty.
func (a *Arguments) ZeroIfEmpty(sub int) uint32 { return a.ThisIfEmpty(sub, 0, 0) }

// OneIfEmpty returns argument sub, defaulting to 1 when empty.
func (a *Arguments) OneIfEmpty(sub int) uint32 { return a.ThisIfEmpty(sub, 0, 1) }

// OneIfZeroOrEmpty returns argument sub, defaulting to 1 when empty or zero.
func (a *Arguments) OneIfZeroOrEmpty(sub int) uint32 { return a.ThisIfZeroThisIfEmpty(sub, 0, 1, 1) }

// ThisIfZeroOrEmpty returns argument sub, defaulting to d when empty or zero.
func (a *Arguments) ThisIfZeroOrEmpty(sub int, d uint32) uint32 {
	return a.ThisIfZeroThisIfEmpty(sub, 0, d, d)
}

// OneIfZeroThisIfEmpty returns argument sub, substituting 1 for an explicit
// zero and d when empty.
func (a *Arguments) OneIfZeroThisIfEmpty(sub int, d uint32) uint32 {
	return a.ThisIfZeroThisIfEmpty(sub, 0, 1, d)
}

// ZDIfZeroOneIfEmpty returns argument sub with Zero Default Mode applied to
// an explicit zero and 1 substituted when empty.
func (a *Arguments) ZDIfZeroOneIfEmpty(sub int) uint32 {
	return a.ThisIfZeroThisIfEmpty(sub, 0, a.zeroReplacement, 1)
}

// controlStringCapacity bounds control-string bodies; excess is dropped.
const controlStringCapacity = 2096

// ControlStringBuffer accumulates the body of a DCS/OSC/PM/APC/SOS control
// string together with its introducer.
type ControlStringBuffer struct {
	introducer rune
	body       []rune
}

// Reset discards the body.
func (b *ControlStringBuffer) Reset() {
	b.body = b.body[:0]
}

// SetIntroducer records which control character opened the string.
func (b *ControlStringBuffer) SetIntroducer(c rune) {
	b.introducer = c
}

// Introducer returns the control character that opened the string
// (DCS, OSC, PM, APC, or SOS).
func (b *ControlStringBuffer) Introducer() rune {
	return b.introducer
}

// Append adds one character to the body, dropping input past capacity.
func (b *ControlStringBuffer) Append(c rune) {
	if len(b.body) < controlStringCapacity {
		b.body = append(b.body, c)
	}
}

// Len returns the body length.
func (b *ControlStringBuffer) Len() int {
	return len(b.body)
}

// At returns the body character at index, or NUL when out of range.
func (b *ControlStringBuffer) At(index int) rune {
	if index >= len(b.body) {
		return NUL
	}
	return b.body[index]
}

// String returns the body as a Go string.
func (b *ControlStringBuffer) String() string {
	return string(b.body)
}
