package controller

import (
	"github.com/skyvario/varioc/events"
	"github.com/skyvario/varioc/model"
	"github.com/skyvario/varioc/units"
)

// InPinFunction selects when a simple input pin is considered "active".
type InPinFunction uint8

const (
	InNone InPinFunction = iota
	InOnClose
	InOnOpen
)

// InTogglePinFunction adds a toggle-on-each-closure mode to InPinFunction,
// used by the speed-to-fly pin.
type InTogglePinFunction uint8

const (
	ToggleNone InTogglePinFunction = iota
	ToggleOnClose
	ToggleOnOpen
	ToggleOnToggled
)

// OutPinFunction selects the active level of a simple output pin.
type OutPinFunction uint8

const (
	OutNone OutPinFunction = iota
	OutClosed
	OutOpened
)

// GearPinMode selects whether the gear alarm considers one switch or
// requires both gear and airbrake switches to agree.
type GearPinMode uint8

const (
	OnePinMode GearPinMode = iota
	TwoPinMode
)

// DrainControl models the water-ballast drain valve: while open, ballast
// mass decreases at a rate linear in the remaining mass, clamped at zero.
type DrainControl struct {
	PinFunction    InPinFunction
	pinState       events.PinLevel
	IsFlowing      bool
	FlowRateOffset float32 // l/min
	FlowRateSlope  float32 // l/min per kg
}

// NewDrainControl returns a DrainControl with the original's default
// flow-rate offset.
func NewDrainControl() *DrainControl {
	return &DrainControl{FlowRateOffset: 30.0}
}

// SetState updates the pin level and recomputes IsFlowing.
func (d *DrainControl) SetState(m *model.Model, level events.PinLevel) {
	d.pinState = level
	d.adjust(m)
}

// Tick1s drains ballast mass for one second if the valve is open, then
// recomputes IsFlowing.
func (d *DrainControl) Tick1s(m *model.Model) {
	if d.IsFlowing {
		flowRate := d.FlowRateOffset + m.Config.GliderData.WaterBallast.Kg()*d.FlowRateSlope
		drained := units.NewMassFromKg(flowRate / 60.0)
		remaining := m.Config.GliderData.WaterBallast.Sub(drained)
		if remaining.Kg() < 0 {
			remaining = units.NewMassFromKg(0)
		}
		m.Config.GliderData.WaterBallast = remaining
	}
	d.adjust(m)
}

func (d *DrainControl) adjust(m *model.Model) {
	active := pinActive(d.PinFunction, d.pinState)
	d.IsFlowing = active && m.Config.GliderData.WaterBallast.Kg() > 0
	setInfo(m, model.InfoWaterBallast, d.IsFlowing)
}

func pinActive(f InPinFunction, level events.PinLevel) bool {
	switch f {
	case InOnClose:
		return level == events.PinClosed
	case InOnOpen:
		return level == events.PinOpen
	default:
		return false
	}
}

func setInfo(m *model.Model, kind model.TypeOfInfo, active bool) {
	if active {
		m.Config.InfoActive = kind
	} else if m.Config.InfoActive == kind {
		m.Config.InfoActive = model.InfoNone
	}
}

// FlashControl drives an output pin High/Low based on an IAS threshold.
type FlashControl struct {
	PinFunction OutPinFunction
}

// Tick1s returns the pin level to emit this second, or ok=false if the
// function is disabled.
func (f FlashControl) Tick1s(m *model.Model) (level events.PinLevel, ok bool) {
	fast := m.Sensor.IAS.KmH() > 40.0
	switch f.PinFunction {
	case OutClosed:
		if fast {
			return events.PinClosed, true
		}
		return events.PinOpen, true
	case OutOpened:
		if fast {
			return events.PinOpen, true
		}
		return events.PinClosed, true
	default:
		return 0, false
	}
}

// SpeedToFlyControl maps a toggle-pin input onto VarioMode.
type SpeedToFlyControl struct {
	PinFunction InTogglePinFunction
	VarioMode   model.VarioMode
}

// SetState updates VarioMode from a new pin level per the toggle pin's
// configured function. It reports whether the pin function is actually
// configured (anything but ToggleNone), so the caller can tell "this pin
// just claimed the override" from "this pin isn't wired at all".
func (s *SpeedToFlyControl) SetState(level events.PinLevel) bool {
	switch s.PinFunction {
	case ToggleOnClose:
		if level == events.PinClosed {
			s.VarioMode = model.SpeedToFly
		} else {
			s.VarioMode = model.Vario
		}
	case ToggleOnOpen:
		if level == events.PinOpen {
			s.VarioMode = model.SpeedToFly
		} else {
			s.VarioMode = model.Vario
		}
	case ToggleOnToggled:
		if level == events.PinClosed {
			if s.VarioMode == model.Vario {
				s.VarioMode = model.SpeedToFly
			} else {
				s.VarioMode = model.Vario
			}
		}
	default:
		return false
	}
	return true
}

// GearAlarmControl raises an alarm scenario when the gear is up (and, in
// two-pin mode, the airbrakes are also out) while flying slow.
type GearAlarmControl struct {
	GearPins                GearPinMode
	PinGearOrBothFunction   InPinFunction
	PinAirbrakesFunction    InPinFunction
	gearState, airbrakeState bool
}

// SetGearPinState updates the gear switch reading and recomputes the alarm.
func (g *GearAlarmControl) SetGearPinState(m *model.Model, level events.PinLevel) bool {
	g.gearState = pinActive(g.PinGearOrBothFunction, level)
	return g.alarmIsActive(m)
}

// SetAirbrakesPinState updates the airbrake switch reading and recomputes
// the alarm.
func (g *GearAlarmControl) SetAirbrakesPinState(m *model.Model, level events.PinLevel) bool {
	g.airbrakeState = pinActive(g.PinAirbrakesFunction, level)
	return g.alarmIsActive(m)
}

func (g *GearAlarmControl) alarmIsActive(m *model.Model) bool {
	var active bool
	if g.GearPins == TwoPinMode {
		active = g.gearState && g.airbrakeState
	} else {
		active = g.gearState
	}
	setInfo(m, model.InfoGearAlarm, active)
	return active
}
