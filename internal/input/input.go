package input

// Key identifies a keyboard key independently of the windowing library.
type Key int

const (
	KeyA Key = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyG
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyV
	KeyW
	KeyEscape
	keyCount
)

// Keys lists every key a sampler needs to poll.
var Keys = func() []Key {
	ks := make([]Key, 0, keyCount)
	for k := Key(0); k < keyCount; k++ {
		ks = append(ks, k)
	}
	return ks
}()

// Button identifies a mouse button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	buttonCount
)

// State is what the input devices look like at one instant. It is sampled once per frame;
// there is no event queue, so a key held across frames is reported down on every one of them.
type State struct {
	down    [keyCount]bool
	pressed [buttonCount]bool

	// MouseX, MouseY is the cursor position in window pixels, origin top-left.
	MouseX, MouseY float32
	// DeltaX, DeltaY is how far the cursor moved since the previous sample.
	DeltaX, DeltaY float32
	// Width, Height is the window size in pixels at sample time.
	Width, Height float32
}

// Down reports whether k is held.
func (s State) Down(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return s.down[k]
}

// Pressed reports whether b went down in this frame.
func (s State) Pressed(b Button) bool {
	if b < 0 || b >= buttonCount {
		return false
	}
	return s.pressed[b]
}

// MouseMoved reports whether the cursor moved since the previous sample.
func (s State) MouseMoved() bool {
	return s.DeltaX != 0 || s.DeltaY != 0
}

// WithKeys returns a copy of s with the given keys held. Samplers and tests use it to build states.
func (s State) WithKeys(keys ...Key) State {
	for _, k := range keys {
		if k >= 0 && k < keyCount {
			s.down[k] = true
		}
	}
	return s
}

// WithPressed returns a copy of s with the given buttons pressed this frame.
func (s State) WithPressed(buttons ...Button) State {
	for _, b := range buttons {
		if b >= 0 && b < buttonCount {
			s.pressed[b] = true
		}
	}
	return s
}

// Sampler reads the current input state. Implementations are backed by a windowing library.
type Sampler interface {
	Sample() State
}
