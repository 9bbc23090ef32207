package softterm

// --- Display erasure ---

func (t *SoftTerm) clearDisplay(c rune) {
	t.screen.WriteNCells(0, t.displayMargin.w*t.displayMargin.h, t.erasureCell(c))
}

func (t *SoftTerm) clearLine() {
	t.screen.WriteNCells(t.index(0, t.activeCursor.y), t.displayMargin.w, t.erasureCell(' '))
}

func (t *SoftTerm) clearToEOD() {
	start := t.index(t.activeCursor.x, t.activeCursor.y)
	end := t.displayMargin.w * t.displayMargin.h
	t.screen.WriteNCells(start, end-start, t.erasureCell(' '))
}

func (t *SoftTerm) clearFromBOD() {
	end := t.index(t.activeCursor.x, t.activeCursor.y) + 1
	t.screen.WriteNCells(0, end, t.erasureCell(' '))
}

func (t *SoftTerm) clearToEOL() {
	start := t.index(t.activeCursor.x, t.activeCursor.y)
	end := t.index(t.displayMargin.w, t.activeCursor.y)
	t.screen.WriteNCells(start, end-start, t.erasureCell(' '))
}

func (t *SoftTerm) clearFromBOL() {
	start := t.index(0, t.activeCursor.y)
	end := t.index(t.activeCursor.x, t.activeCursor.y) + 1
	t.screen.WriteNCells(start, end-start, t.erasureCell(' '))
}

// eraseInDisplay implements ED.  Parameter 3 is the XTerm scrollback form,
// treated as 2 since there is no scrollback to clear.
func (t *SoftTerm) eraseInDisplay() {
	t.Args.MinimumOneArg()
	for i := 0; i < t.Args.Count(); i++ {
		switch t.Args.ZeroIfEmpty(i) {
		case 0:
			t.clearToEOD()
		case 1:
			t.clearFromBOD()
		case 2, 3:
			t.clearDisplay(' ')
		}
	}
}

// eraseInLine implements EL.
func (t *SoftTerm) eraseInLine() {
	t.Args.MinimumOneArg()
	for i := 0; i < t.Args.Count(); i++ {
		switch t.Args.ZeroIfEmpty(i) {
		case 0:
			t.clearToEOL()
		case 1:
			t.clearFromBOL()
		case 2:
			t.clearLine()
		}
	}
}

// eraseCharacters implements ECH: blank n cells at the cursor without
// shifting.
func (t *SoftTerm) eraseCharacters(n uint32) {
	limit := t.lineLimitRight()
	count := int(n)
	if t.activeCursor.x+count > limit {
		count = limit - t.activeCursor.x
	}
	t.screen.WriteNCells(t.index(t.activeCursor.x, t.activeCursor.y), count, t.erasureCell(' '))
}

// --- Character edits ---

// deleteCharacters implements DCH: cells right of the cursor slide left and
// the vacated tail fills with the erasure cell.
func (t *SoftTerm) deleteCharacters(n uint32) {
	limit := t.lineLimitRight()
	span := limit - t.activeCursor.x
	count := int(n)
	if count > span {
		count = span
	}
	if count <= 0 {
		return
	}
	pos := t.index(t.activeCursor.x, t.activeCursor.y)
	t.screen.CopyNCells(pos, pos+count, span-count)
	t.screen.WriteNCells(pos+span-count, count, t.erasureCell(' '))
}

// insertCharacters implements ICH: cells at the cursor slide right and the
// vacated run fills with the erasure cell.
func (t *SoftTerm) insertCharacters(n uint32) {
	limit := t.lineLimitRight()
	span := limit - t.activeCursor.x
	count := int(n)
	if count > span {
		count = span
	}
	if count <= 0 {
		return
	}
	pos := t.index(t.activeCursor.x, t.activeCursor.y)
	t.screen.CopyNCells(pos+count, pos, span-count)
	t.screen.WriteNCells(pos, count, t.erasureCell(' '))
}

// --- Region scrolling ---

// bandIsFullWidth reports whether the scroll region spans every column, in
// which case region scrolls are single linear buffer operations.
func (t *SoftTerm) bandIsFullWidth() bool {
	return t.leftMargin() == 0 && t.rightMargin() == t.displayMargin.w
}

func (t *SoftTerm) scrollRegionUp(n uint32) {
	height := t.bottomMargin() - t.topMargin()
	count := int(n)
	if count > height {
		count = height
	}
	if count <= 0 {
		return
	}
	fill := t.erasureCell(' ')
	if t.bandIsFullWidth() {
		t.screen.ScrollUp(t.topMargin()*t.displayMargin.w, t.bottomMargin()*t.displayMargin.w, count*t.displayMargin.w, fill)
		return
	}
	width := t.rightMargin() - t.leftMargin()
	for y := t.topMargin(); y < t.bottomMargin()-count; y++ {
		t.screen.CopyNCells(t.index(t.leftMargin(), y), t.index(t.leftMargin(), y+count), width)
	}
	for y := t.bottomMargin() - count; y < t.bottomMargin(); y++ {
		t.screen.WriteNCells(t.index(t.leftMargin(), y), width, fill)
	}
}

func (t *SoftTerm) scrollRegionDown(n uint32) {
	height := t.bottomMargin() - t.topMargin()
	count := int(n)
	if count > height {
		count = height
	}
	if count <= 0 {
		return
	}
	fill := t.erasureCell(' ')
	if t.bandIsFullWidth() {
		t.screen.ScrollDown(t.topMargin()*t.displayMargin.w, t.bottomMargin()*t.displayMargin.w, count*t.displayMargin.w, fill)
		return
	}
	width := t.rightMargin() - t.leftMargin()
	for y := t.bottomMargin() - 1; y >= t.topMargin()+count; y-- {
		t.screen.CopyNCells(t.index(t.leftMargin(), y), t.index(t.leftMargin(), y-count), width)
	}
	for y := t.topMargin(); y < t.topMargin()+count; y++ {
		t.screen.WriteNCells(t.index(t.leftMargin(), y), width, fill)
	}
}

// panUp and panDown are the SU/SD semantics on a real DEC VT: the window
// pans over the whole display rather than scrolling the margin region.
func (t *SoftTerm) panUp(n uint32) {
	count := int(n)
	if count > t.displayMargin.h {
		count = t.displayMargin.h
	}
	if count <= 0 {
		return
	}
	t.screen.ScrollUp(0, t.displayMargin.w*t.displayMargin.h, count*t.displayMargin.w, t.erasureCell(' '))
}

func (t *SoftTerm) panDown(n uint32) {
	count := int(n)
	if count > t.displayMargin.h {
		count = t.displayMargin.h
	}
	if count <= 0 {
		return
	}
	t.screen.ScrollDown(0, t.displayMargin.w*t.displayMargin.h, count*t.displayMargin.w, t.erasureCell(' '))
}

// scrollUp dispatches SU per the pan-vs-scroll Setup flag; scrollDown is SD.
func (t *SoftTerm) scrollUp(n uint32) {
	if t.panIsScroll {
		t.scrollRegionUp(n)
	} else {
		t.panUp(n)
	}
}

func (t *SoftTerm) scrollDown(n uint32) {
	if t.panIsScroll {
		t.scrollRegionDown(n)
	} else {
		t.panDown(n)
	}
}

// --- Line edits ---

// insertLines implements IL: lines at the cursor slide down within the
// scroll region; the cursor moves to the left margin.
func (t *SoftTerm) insertLines(n uint32) {
	if !t.inScrollRows() {
		return
	}
	t.insertLinesInScrollAreaAt(t.activeCursor.y, n)
	t.carriageReturnNoUpdate()
}

// deleteLines implements DL: lines below the cursor slide up within the
// scroll region; the cursor moves to the left margin.
func (t *SoftTerm) deleteLines(n uint32) {
	if !t.inScrollRows() {
		return
	}
	t.deleteLinesInScrollAreaAt(t.activeCursor.y, n)
	t.carriageReturnNoUpdate()
}

func (t *SoftTerm) insertLinesInScrollAreaAt(row int, n uint32) {
	savedTop := t.scrollOrigin.y
	savedHeight := t.scrollMargin.h
	t.scrollOrigin.y = row
	t.scrollMargin.h = savedTop + savedHeight - row
	t.scrollRegionDown(n)
	t.scrollOrigin.y = savedTop
	t.scrollMargin.h = savedHeight
}

func (t *SoftTerm) deleteLinesInScrollAreaAt(row int, n uint32) {
	savedTop := t.scrollOrigin.y
	savedHeight := t.scrollMargin.h
	t.scrollOrigin.y = row
	t.scrollMargin.h = savedTop + savedHeight - row
	t.scrollRegionUp(n)
	t.scrollOrigin.y = savedTop
	t.scrollMargin.h = savedHeight
}

// --- Column edits ---

// insertColumnsInScrollAreaAt implements DECIC at the given column: columns
// in the region slide right.
func (t *SoftTerm) insertColumnsInScrollAreaAt(col int, n uint32) {
	width := t.rightMargin() - col
	count := int(n)
	if count > width {
		count = width
	}
	if count <= 0 {
		return
	}
	fill := t.erasureCell(' ')
	for y := t.topMargin(); y < t.bottomMargin(); y++ {
		pos := t.index(col, y)
		t.screen.CopyNCells(pos+count, pos, width-count)
		t.screen.WriteNCells(pos, count, fill)
	}
}

// deleteColumnsInScrollAreaAt implements DECDC at the given column: columns
// in the region slide left.
func (t *SoftTerm) deleteColumnsInScrollAreaAt(col int, n uint32) {
	width := t.rightMargin() - col
	count := int(n)
	if count > width {
		count = width
	}
	if count <= 0 {
		return
	}
	fill := t.erasureCell(' ')
	for y := t.topMargin(); y < t.bottomMargin(); y++ {
		pos := t.index(col, y)
		t.screen.CopyNCells(pos, pos+count, width-count)
		t.screen.WriteNCells(pos+width-count, count, fill)
	}
}

// scrollLeft and scrollRight implement SL/SR over the scroll region.
func (t *SoftTerm) scrollLeft(n uint32) {
	t.deleteColumnsInScrollAreaAt(t.leftMargin(), n)
}

func (t *SoftTerm) scrollRight(n uint32) {
	t.insertColumnsInScrollAreaAt(t.leftMargin(), n)
}

// backIndex implements DECBI: move left, or scroll the region right when
// the cursor sits on the left margin.
func (t *SoftTerm) backIndex() {
	t.clearPendingAdvance()
	if t.activeCursor.x == t.leftMargin() && t.inScrollRows() {
		t.scrollRight(1)
	} else if t.activeCursor.x > 0 {
		t.activeCursor.x--
	}
}

// forwardIndex implements DECFI: move right, or scroll the region left when
// the cursor sits on the right margin.
func (t *SoftTerm) forwardIndex() {
	t.clearPendingAdvance()
	if t.activeCursor.x == t.rightMargin()-1 && t.inScrollRows() {
		t.scrollLeft(1)
	} else if t.activeCursor.x < t.displayMargin.w-1 {
		t.activeCursor.x++
	}
}
