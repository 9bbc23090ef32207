package softterm

import "fmt"

// translateToXTermButton swaps the middle and right buttons: event sources
// number them 0/1/2 = left/right/middle, the XTerm protocol wants
// 0/1/2 = left/middle/right.
func translateToXTermButton(button uint8) uint8 {
	switch button {
	case 1:
		return 2
	case 2:
		return 1
	default:
		return button
	}
}

// writeXTermMouse frames an XTerm 1006 report: "CSI < flags ; col ; row M"
// for presses, final 'm' for releases.  Coordinates are 1-based.
func (e *InputEncoder) writeXTermMouse(flags uint, pressed bool, modifiers uint8) {
	if modifiers&ModifierLevel2 != 0 {
		flags |= 4
	}
	if modifiers&ModifierSuper != 0 {
		flags |= 8
	}
	if modifiers&ModifierControl != 0 {
		flags |= 16
	}

	final := byte('m')
	if pressed {
		final = 'M'
	}
	e.writeCSI()
	e.writeRawString(fmt.Sprintf("<%d;%d;%d%c", flags, e.mouseColumn+1, e.mouseRow+1, final))
}

func (e *InputEncoder) writeXTermMouseButton(button uint8, pressed bool, modifiers uint8) {
	if !e.sendXTermMouse {
		return
	}
	if button > 0x02 {
		return
	}
	if !e.sendXTermMouseClicks {
		return
	}
	e.writeXTermMouse(uint(translateToXTermButton(button)), pressed, modifiers)
}

func (e *InputEncoder) writeXTermMouseMotion(modifiers uint8) {
	if !e.sendXTermMouse {
		return
	}

	// Best effort at a button number; even XTerm just reuses the last
	// button pressed for motion events.
	pressed := false
	flags := uint(32)
	for button := range e.mouseButtons {
		if button > 0x02 {
			flags |= 0x03
			break
		}
		if e.mouseButtons[button] {
			flags |= uint(translateToXTermButton(uint8(button)))
			pressed = true
			break
		}
	}
	if pressed {
		if !e.sendXTermMouseButtonMotions {
			return
		}
	} else if !e.sendXTermMouseNoButtonMotions {
		return
	}

	e.writeXTermMouse(flags, pressed, modifiers)
}

// writeXTermMouseWheel frames a wheel turn: bit 6 marks a wheel report, the
// low bits carry wheel axis and direction.  Release events are suppressed;
// vim cannot cope with button-up wheel events.
func (e *InputEncoder) writeXTermMouseWheel(wheel uint8, towardZero bool, pressed bool, modifiers uint8) {
	if !e.sendXTermMouse {
		return
	}
	if wheel > 0x01 {
		return
	}
	if !e.sendXTermMouseClicks {
		return
	}
	if !pressed {
		return
	}

	flags := uint(64) | uint(wheel)<<1
	if !towardZero {
		flags |= 1
	}
	e.writeXTermMouse(flags, pressed, modifiers)
}

// writeDECLocatorReport frames "CSI event ; buttons ; row ; col ; page & w",
// merging the latched button state into the button word.  A transmitted
// report consumes one-shot mode; invalid buttons and suppressed reports do
// not, because one-shot is from the point of view of the client.
func (e *InputEncoder) writeDECLocatorReport(event uint, buttons uint) {
	for button := range e.mouseButtons {
		if e.mouseButtons[button] {
			buttons |= 1 << uint(button)
		}
	}

	const mousePage = 0
	e.writeCSI()
	e.writeRawString(fmt.Sprintf("%d;%d;%d;%d;%d&w", event, buttons, e.mouseRow+1, e.mouseColumn+1, mousePage))

	if e.locatorMode == 2 {
		e.locatorMode = 0
	}
}

// writeDECLocatorReportButton reports one button transition.  DEC locator
// events are 2+2b for presses and 3+2b for releases of button b; wheels
// continue the series from 12 as an extension, since the original DEC
// specification defined four actual mouse buttons.
func (e *InputEncoder) writeDECLocatorReportButton(button uint, pressed bool) {
	if e.locatorMode == 0 {
		return
	}
	if button >= 32 {
		return
	}
	if pressed {
		if !e.sendLocatorPressEvents {
			return
		}
	} else if !e.sendLocatorReleaseEvents {
		return
	}

	var event uint
	if button < 4 {
		event = button*2 + 2
	} else {
		event = (button-4)*2 + 12
	}
	if !pressed {
		event++
	}
	e.writeDECLocatorReport(event, 1<<button)
}

func (e *InputEncoder) writeRequestedDECLocatorReport() {
	if e.locatorMode == 0 {
		return
	}
	e.writeDECLocatorReport(1, 0)
}

// RequestDECLocatorReport implements the MouseBuffer request: an unsolicited
// report, or the "locator disabled" form when no locator mode is active.
func (e *InputEncoder) RequestDECLocatorReport() {
	e.setPasting(false)
	if e.locatorMode == 0 {
		e.writeCSI()
		e.writeRawString("0&w")
		return
	}
	e.writeRequestedDECLocatorReport()
}

// --- Event-message entry points ---

func (e *InputEncoder) setMouseX(p uint16, m uint8) {
	e.setPasting(false)
	if e.mouseColumn != p {
		e.mouseColumn = p
		// DEC locator reports only report button events.
		e.writeXTermMouseMotion(m)
	}
}

func (e *InputEncoder) setMouseY(p uint16, m uint8) {
	e.setPasting(false)
	if e.mouseRow != p {
		e.mouseRow = p
		e.writeXTermMouseMotion(m)
	}
}

func (e *InputEncoder) setMouseButton(b uint8, pressed bool, m uint8) {
	if int(b) >= len(e.mouseButtons) {
		return
	}
	e.setPasting(false)
	if e.mouseButtons[b] != pressed {
		e.mouseButtons[b] = pressed
		e.writeXTermMouseButton(b, pressed, m)
		e.writeDECLocatorReportButton(uint(b), pressed)
	}
}

// writeWheelMotion reports each notch of a wheel turn as a press/release
// pair on both protocols.
func (e *InputEncoder) writeWheelMotion(w uint8, delta int8, m uint8) {
	e.setPasting(false)
	for delta != 0 {
		if delta < 0 {
			delta++
			decButton := uint(4 + 2*w)
			e.writeXTermMouseWheel(w, true, true, m)
			e.writeDECLocatorReportButton(decButton, true)
			e.writeXTermMouseWheel(w, true, false, m)
			e.writeDECLocatorReportButton(decButton, false)
		} else {
			delta--
			decButton := uint(5 + 2*w)
			e.writeXTermMouseWheel(w, false, true, m)
			e.writeDECLocatorReportButton(decButton, true)
			e.writeXTermMouseWheel(w, false, false, m)
			e.writeDECLocatorReportButton(decButton, false)
		}
	}
}
