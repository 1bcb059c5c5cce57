package window

// Event is a single input event delivered by the window's message loop.
// The concrete types are KeyEvent, MouseMoveEvent, MouseButtonEvent, and
// ScrollEvent; consumers switch on the dynamic type.
type Event interface {
	isEvent()
}

// MouseButton identifies a mouse button in MouseButtonEvent.
type MouseButton int

const (
	// MouseButtonLeft is the primary mouse button.
	MouseButtonLeft MouseButton = iota

	// MouseButtonRight is the secondary mouse button.
	MouseButtonRight

	// MouseButtonMiddle is the scroll wheel button.
	MouseButtonMiddle
)

// KeyEvent reports a key press or release.
// Key repeat events are delivered as additional presses.
type KeyEvent struct {
	// Key is the virtual key code (see common key code constants).
	Key uint32

	// Pressed is true on press, false on release.
	Pressed bool
}

// MouseMoveEvent reports relative cursor motion since the previous event,
// in pixels. Positive DX is rightward, positive DY is downward.
type MouseMoveEvent struct {
	DX float32
	DY float32
}

// MouseButtonEvent reports a mouse button press or release.
type MouseButtonEvent struct {
	// Button is the button that changed state.
	Button MouseButton

	// Pressed is true on press, false on release.
	Pressed bool
}

// ScrollEvent reports a scroll wheel movement.
// Positive Delta is scroll up (away from the user).
type ScrollEvent struct {
	Delta float32
}

func (KeyEvent) isEvent()         {}
func (MouseMoveEvent) isEvent()   {}
func (MouseButtonEvent) isEvent() {}
func (ScrollEvent) isEvent()      {}
