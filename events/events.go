// Package events defines the inbound event sum types the controller's
// event_handler dispatches on: physical key presses, input-pin level
// changes, and device-lifecycle notifications (firmware available,
// firmware upload finished).
package events

// Key identifies one of the front-panel buttons.
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEsc
)

// KeyAction is a press/long-press/release on a Key.
type KeyAction uint8

const (
	KeyPressed KeyAction = iota
	KeyLongPressed
	KeyReleased
)

// KeyEvent is one inbound button event.
type KeyEvent struct {
	Key    Key
	Action KeyAction
}

// InputPin identifies one of the four hardware input lines wired to the
// drain valve, speed-to-fly toggle, gear switch and airbrake switch.
type InputPin uint8

const (
	Io1 InputPin = iota // drain valve
	Io2                 // speed-to-fly toggle
	Io3                 // gear switch
	Io4                 // airbrake switch
)

// PinLevel is a sampled hardware input level.
type PinLevel uint8

const (
	PinOpen PinLevel = iota
	PinClosed
)

// InputEvent is one inbound pin-level change.
type InputEvent struct {
	Pin   InputPin
	Level PinLevel
}

// DeviceKind discriminates the device-lifecycle notifications.
type DeviceKind uint8

const (
	DeviceFwAvailable DeviceKind = iota
	DeviceUploadFinished
)

// DeviceEvent is one inbound device-lifecycle notification.
type DeviceEvent struct {
	Kind DeviceKind
}

// Event is the sum of everything the controller's event_handler accepts.
type Event struct {
	Key    *KeyEvent
	Input  *InputEvent
	Device *DeviceEvent
}
