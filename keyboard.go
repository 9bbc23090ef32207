package softterm

// KeyboardBuffer is the input-side collaborator of SoftTerm: it receives the
// emulator's keyboard responses and the mode switches that change how input
// events are encoded.
type KeyboardBuffer interface {
	// WriteLatin1Characters transmits response bytes (device attribute
	// and status reports) towards the application.
	WriteLatin1Characters(s []byte)
	// WriteControl1Character transmits a C1 control, as an 8-bit byte or
	// a 7-bit ESC alias per Set8BitControl1.
	WriteControl1Character(c byte)
	Set8BitControl1(on bool)
	SetBackspaceIsBS(on bool)
	SetEscapeIsFS(on bool)
	SetDeleteIsDEL(on bool)
	SetSendPasteEvent(on bool)
	SetDECFunctionKeys(on bool)
	SetSCOFunctionKeys(on bool)
	SetTekenFunctionKeys(on bool)
	SetCursorApplicationMode(on bool)
	SetCalculatorApplicationMode(on bool)
	// ReportSize propagates a terminal size change to the host pty.
	ReportSize(w, h int)
}

// MouseBuffer is the pointer-side collaborator of SoftTerm: it receives the
// mode switches for the mouse report families and locator report requests.
type MouseBuffer interface {
	SetSendXTermMouse(on bool)
	SetSendXTermMouseClicks(on bool)
	SetSendXTermMouseButtonMotions(on bool)
	SetSendXTermMouseNoButtonMotions(on bool)
	// SetSendDECLocator selects the locator mode: 0 off, 1 continuous,
	// 2 one-shot.
	SetSendDECLocator(mode uint32)
	SetSendDECLocatorPressEvent(on bool)
	SetSendDECLocatorReleaseEvent(on bool)
	RequestDECLocatorReport()
}

// NoopKeyboard discards responses and ignores mode switches.
type NoopKeyboard struct{}

func (NoopKeyboard) WriteLatin1Characters([]byte)     {}
func (NoopKeyboard) WriteControl1Character(byte)      {}
func (NoopKeyboard) Set8BitControl1(bool)             {}
func (NoopKeyboard) SetBackspaceIsBS(bool)            {}
func (NoopKeyboard) SetEscapeIsFS(bool)               {}
func (NoopKeyboard) SetDeleteIsDEL(bool)              {}
func (NoopKeyboard) SetSendPasteEvent(bool)           {}
func (NoopKeyboard) SetDECFunctionKeys(bool)          {}
func (NoopKeyboard) SetSCOFunctionKeys(bool)          {}
func (NoopKeyboard) SetTekenFunctionKeys(bool)        {}
func (NoopKeyboard) SetCursorApplicationMode(bool)    {}
func (NoopKeyboard) SetCalculatorApplicationMode(bool) {}
func (NoopKeyboard) ReportSize(int, int)              {}

// NoopMouse ignores all mouse mode switches and report requests.
type NoopMouse struct{}

func (NoopMouse) SetSendXTermMouse(bool)                {}
func (NoopMouse) SetSendXTermMouseClicks(bool)          {}
func (NoopMouse) SetSendXTermMouseButtonMotions(bool)   {}
func (NoopMouse) SetSendXTermMouseNoButtonMotions(bool) {}
func (NoopMouse) SetSendDECLocator(uint32)              {}
func (NoopMouse) SetSendDECLocatorPressEvent(bool)      {}
func (NoopMouse) SetSendDECLocatorReleaseEvent(bool)    {}
func (NoopMouse) RequestDECLocatorReport()              {}

var (
	_ KeyboardBuffer = NoopKeyboard{}
	_ MouseBuffer    = NoopMouse{}
)
