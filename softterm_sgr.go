package softterm

// sgr0 returns the attributes and colours to their initial values.
func (t *SoftTerm) sgr0() {
	t.attributes = 0
	t.colour = ColourPair{DefaultForeground, DefaultBackground}
}

// setGraphicRendition implements SGR.  Unknown parameters are ignored.
func (t *SoftTerm) setGraphicRendition() {
	t.Args.MinimumOneArg()
	for i := 0; i < t.Args.Count(); i++ {
		p := t.Args.ZeroIfEmpty(i)
		switch p {
		case 0:
			t.sgr0()
		case 1:
			t.attributes |= AttrBold
		case 2:
			t.attributes |= AttrFaint
		case 3:
			t.attributes |= AttrItalic
		case 4, 21:
			t.attributes |= AttrUnderline
		case 5, 6:
			t.attributes |= AttrBlink
		case 7:
			t.attributes |= AttrInverse
		case 8:
			t.attributes |= AttrInvisible
		case 9:
			t.attributes |= AttrStrikethrough
		case 22:
			t.attributes &^= AttrBold | AttrFaint
		case 23:
			t.attributes &^= AttrItalic
		case 24:
			t.attributes &^= AttrUnderline
		case 25:
			t.attributes &^= AttrBlink
		case 27:
			t.attributes &^= AttrInverse
		case 28:
			t.attributes &^= AttrInvisible
		case 29:
			t.attributes &^= AttrStrikethrough
		case 30, 31, 32, 33, 34, 35, 36, 37:
			t.colour.Foreground = Palette[p-30]
		case 38:
			if c, ok := t.extendedColour(i); ok {
				t.colour.Foreground = c
			}
		case 39:
			t.colour.Foreground = DefaultForeground
		case 40, 41, 42, 43, 44, 45, 46, 47:
			t.colour.Background = Palette[p-40]
		case 48:
			if c, ok := t.extendedColour(i); ok {
				t.colour.Background = c
			}
		case 49:
			t.colour.Background = DefaultBackground
		case 90, 91, 92, 93, 94, 95, 96, 97:
			t.colour.Foreground = Palette[p-90+8]
		case 100, 101, 102, 103, 104, 105, 106, 107:
			t.colour.Background = Palette[p-100+8]
		default:
			t.debug.Debugf("ignored SGR parameter %d", p)
		}
	}
}

// extendedColour parses the ISO 8613-6 colour forms at argument i.  The
// colon form arrives as sub-arguments; the legacy semicolon form is first
// collapsed into the same shape so that both parse identically.  Collapsing
// consumes the rest of the parameter list, which also ends the SGR loop, as
// the legacy form requires.
func (t *SoftTerm) extendedColour(i int) (Colour, bool) {
	if t.Args.SubCount(i) <= 1 && t.Args.HasNoSubArgsFrom(i) {
		t.Args.CollapseToSubArgs(i)
	}
	switch t.Args.ThisIfEmpty(i, 1, 0) {
	case 5:
		return IndexedColour(t.Args.ThisIfEmpty(i, 2, 0)), true
	case 2:
		// Either 2:r:g:b or 2:colourspace:r:g:b; a colourspace slot is
		// present when more than five entries arrived.
		base := 2
		if t.Args.SubCount(i) > 5 {
			base = 3
		}
		return Colour{
			Alpha: 255,
			Red:   uint8(clamp(int(t.Args.ThisIfEmpty(i, base, 0)), 0, 255)),
			Green: uint8(clamp(int(t.Args.ThisIfEmpty(i, base+1, 0)), 0, 255)),
			Blue:  uint8(clamp(int(t.Args.ThisIfEmpty(i, base+2, 0)), 0, 255)),
		}, true
	}
	return Colour{}, false
}

// changeAreaAttributes implements DECCARA: rewrite attributes over a
// rectangle without touching the characters.  Only the attribute subset DEC
// defines for it is honoured.
func (t *SoftTerm) changeAreaAttributes() {
	top := int(t.Args.OneIfZeroOrEmpty(0)) - 1
	left := int(t.Args.OneIfZeroOrEmpty(1)) - 1
	bottom := int(t.Args.ThisIfZeroOrEmpty(2, uint32(t.displayMargin.h))) - 1
	right := int(t.Args.ThisIfZeroOrEmpty(3, uint32(t.displayMargin.w))) - 1

	top = clamp(top, 0, t.displayMargin.h-1)
	bottom = clamp(bottom, 0, t.displayMargin.h-1)
	left = clamp(left, 0, t.displayMargin.w-1)
	right = clamp(right, 0, t.displayMargin.w-1)
	if top > bottom || left > right {
		return
	}

	var turnoff, flipon Attribute
	for i := 4; i < t.Args.Count(); i++ {
		switch t.Args.ZeroIfEmpty(i) {
		case 0:
			turnoff = AttrBold | AttrUnderline | AttrBlink | AttrInverse
			flipon = 0
		case 1:
			flipon |= AttrBold
		case 4:
			flipon |= AttrUnderline
		case 5:
			flipon |= AttrBlink
		case 7:
			flipon |= AttrInverse
		case 22:
			turnoff |= AttrBold
		case 24:
			turnoff |= AttrUnderline
		case 25:
			turnoff |= AttrBlink
		case 27:
			turnoff |= AttrInverse
		}
	}

	width := right - left + 1
	for y := top; y <= bottom; y++ {
		t.screen.ModifyNCells(t.index(left, y), width, turnoff, flipon, false, Colour{}, false, Colour{})
	}
}
