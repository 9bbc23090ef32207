package softterm

// Tab stops live in fixed 256-entry pin arrays addressed modulo 256, so
// stops survive resizes and positions beyond the current width still resolve.

func (t *SoftTerm) isHorizontalTabstopAt(p int) bool { return t.hTabPins[p%len(t.hTabPins)] }
func (t *SoftTerm) setHorizontalTabstopAt(p int, v bool) {
	t.hTabPins[p%len(t.hTabPins)] = v
}

func (t *SoftTerm) isVerticalTabstopAt(p int) bool { return t.vTabPins[p%len(t.vTabPins)] }
func (t *SoftTerm) setVerticalTabstopAt(p int, v bool) {
	t.vTabPins[p%len(t.vTabPins)] = v
}

func (t *SoftTerm) setHorizontalTabstop() {
	t.setHorizontalTabstopAt(t.activeCursor.x, true)
}

// setRegularHorizontalTabstops clears the pins and re-sets a stop every n
// columns; n of zero just clears.
func (t *SoftTerm) setRegularHorizontalTabstops(n uint32) {
	for i := range t.hTabPins {
		t.hTabPins[i] = n != 0 && uint32(i)%n == 0
	}
}

func (t *SoftTerm) clearAllHorizontalTabstops() {
	for i := range t.hTabPins {
		t.hTabPins[i] = false
	}
}

func (t *SoftTerm) clearAllVerticalTabstops() {
	for i := range t.vTabPins {
		t.vTabPins[i] = false
	}
}

// horizontalTab moves right to the n'th following tab stop, stopping at the
// right margin.
func (t *SoftTerm) horizontalTab(n uint32, clearPending bool) {
	if clearPending {
		t.clearPendingAdvance()
	}
	limit := t.lineLimitRight() - 1
	for ; n > 0; n-- {
		for t.activeCursor.x < limit {
			t.activeCursor.x++
			if t.isHorizontalTabstopAt(t.activeCursor.x) {
				break
			}
		}
	}
}

// backwardsHorizontalTab moves left to the n'th preceding tab stop, stopping
// at the left margin.
func (t *SoftTerm) backwardsHorizontalTab(n uint32, clearPending bool) {
	if clearPending {
		t.clearPendingAdvance()
	}
	left := t.lineLimitLeft()
	for ; n > 0; n-- {
		for t.activeCursor.x > left {
			t.activeCursor.x--
			if t.isHorizontalTabstopAt(t.activeCursor.x) {
				break
			}
		}
	}
}

// verticalTab moves down to the n'th following vertical tab stop, stopping
// at the bottom margin.
func (t *SoftTerm) verticalTab(n uint32, clearPending bool) {
	if clearPending {
		t.clearPendingAdvance()
	}
	limit := t.bottomMargin() - 1
	for ; n > 0; n-- {
		for t.activeCursor.y < limit {
			t.activeCursor.y++
			if t.isVerticalTabstopAt(t.activeCursor.y) {
				break
			}
		}
	}
}

// tabClear implements TBC.
func (t *SoftTerm) tabClear() {
	t.Args.MinimumOneArg()
	for i := 0; i < t.Args.Count(); i++ {
		switch t.Args.ZeroIfEmpty(i) {
		case 0:
			t.setHorizontalTabstopAt(t.activeCursor.x, false)
		case 1:
			t.setVerticalTabstopAt(t.activeCursor.y, false)
		case 2, 3:
			t.clearAllHorizontalTabstops()
		case 4:
			t.clearAllVerticalTabstops()
		case 5:
			t.clearAllHorizontalTabstops()
			t.clearAllVerticalTabstops()
		}
	}
}

// cursorTabulationControl implements CTC.
func (t *SoftTerm) cursorTabulationControl() {
	t.Args.MinimumOneArg()
	for i := 0; i < t.Args.Count(); i++ {
		switch t.Args.ZeroIfEmpty(i) {
		case 0:
			t.setHorizontalTabstopAt(t.activeCursor.x, true)
		case 1:
			t.setVerticalTabstopAt(t.activeCursor.y, true)
		case 2:
			t.setHorizontalTabstopAt(t.activeCursor.x, false)
		case 3:
			t.setVerticalTabstopAt(t.activeCursor.y, false)
		case 4, 5:
			t.clearAllHorizontalTabstops()
		case 6:
			t.clearAllVerticalTabstops()
		}
	}
}

// decCursorTabulationControl implements the DEC private CSI ? W forms; the
// only defined one, DECST8C, restores a stop every 8 columns.
func (t *SoftTerm) decCursorTabulationControl() {
	t.Args.MinimumOneArg()
	for i := 0; i < t.Args.Count(); i++ {
		if t.Args.ZeroIfEmpty(i) == 5 {
			t.setRegularHorizontalTabstops(8)
		}
	}
}
