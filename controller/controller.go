// Package controller wires the model, the CAN dispatcher, the NMEA codec
// and the persistence store together into the 1ms/100ms/1s tick pipeline
// described for the flight computer core.
package controller

import (
	"github.com/skyvario/varioc/canbus"
	"github.com/skyvario/varioc/editor"
	"github.com/skyvario/varioc/events"
	"github.com/skyvario/varioc/idle"
	"github.com/skyvario/varioc/model"
	"github.com/skyvario/varioc/nmea"
	"github.com/skyvario/varioc/persistence"
	"github.com/skyvario/varioc/polar"
	"github.com/skyvario/varioc/scheduler"
	"github.com/skyvario/varioc/sound"
	"github.com/skyvario/varioc/units"
)

// Controller owns every piece of state that is not the shared Model
// blackboard itself: the polar solver, the hardware-pin state machines,
// the PT1 filters smoothing displayed values, the persistence debounce
// queue, the NMEA cyclic scheduler, and the outbound idle-event log.
type Controller struct {
	Polar      polar.Polar
	Dispatcher *canbus.Dispatcher
	Scheduler  *scheduler.Scheduler
	Pending    *persistence.PendingEcho
	NmeaCycle  *nmea.Cycle
	IdleEvents []idle.Event

	Drain       *DrainControl
	Flash       FlashControl
	SpeedToFly  *SpeedToFlyControl
	GearAlarm   *GearAlarmControl
	Sound       sound.Mapper
	Menu        *editor.Menu

	av2ClimbRate     Pt1
	avSpeedToFly     Pt1
	avSupplyVoltage  Pt1

	ms uint16

	lastVarioMode model.VarioMode
}

// New builds a Controller ready to run against an already-defaulted Model.
func New(dispatcher *canbus.Dispatcher, tcClimbRate, tcSpeedToFly, tcSupplyVoltage float32) *Controller {
	return &Controller{
		Dispatcher:      dispatcher,
		Scheduler:       scheduler.New(),
		Pending:         persistence.NewPendingEcho(),
		NmeaCycle:       nmea.NewCycle(),
		Drain:           NewDrainControl(),
		SpeedToFly:      &SpeedToFlyControl{},
		GearAlarm:       &GearAlarmControl{},
		Sound:           sound.Mapper{CenterFreqHz: 500, K: 0.5, HysteresisHz: 2},
		av2ClimbRate:    NewPt1(tcClimbRate),
		avSpeedToFly:    NewPt1(tcSpeedToFly),
		avSupplyVoltage: NewPt1(tcSupplyVoltage),
	}
}

// EventHandler dispatches one inbound key/pin/device event onto the model.
func (c *Controller) EventHandler(m *model.Model, ev events.Event) {
	switch {
	case ev.Key != nil:
		c.keyAction(m, *ev.Key)
	case ev.Input != nil:
		c.inputAction(m, *ev.Input)
	case ev.Device != nil:
		c.deviceAction(m, *ev.Device)
	}
}

func (c *Controller) inputAction(m *model.Model, ev events.InputEvent) {
	switch ev.Pin {
	case events.Io1:
		c.Drain.SetState(m, ev.Level)
	case events.Io2:
		if c.SpeedToFly.SetState(ev.Level) &&
			(m.Config.VarioModeControl == model.SourceAuto || m.Config.VarioModeControl == model.SourceInputPin) {
			m.Config.VarioModeControl = model.SourceInputPin
		}
	case events.Io3:
		active := c.GearAlarm.SetGearPinState(m, ev.Level)
		c.Sound.SetScenario(sound.ScenarioGearAlarm, active)
	case events.Io4:
		active := c.GearAlarm.SetAirbrakesPinState(m, ev.Level)
		c.Sound.SetScenario(sound.ScenarioGearAlarm, active)
	}
}

func (c *Controller) deviceAction(m *model.Model, ev events.DeviceEvent) {
	switch ev.Kind {
	case events.DeviceFwAvailable:
		m.Control.LastDisplayActive = m.Control.DisplayActive
		m.Control.DisplayActive = model.DisplayFirmwareUpdate
	case events.DeviceUploadFinished:
		m.Control.DisplayActive = m.Control.LastDisplayActive
		c.IdleEvents = append(c.IdleEvents, idle.UploadFinished())
	}
}

// keyAction forwards a key press to the menu state machine, if one has
// been wired (Menu is nil in tests that don't need the editor). Committed
// edits are written through PersistSetF32/PersistSetGlider by id; command
// editables carry their own OnCommit action and never reach here.
func (c *Controller) keyAction(m *model.Model, ev events.KeyEvent) {
	if c.Menu == nil {
		return
	}
	c.Menu.HandleKey(ev, func(e editor.Editable, v float32) {
		if e.ID == persistence.Glider {
			c.PersistSetGlider(m, int(v), e.Echo)
			return
		}
		if e.ID == persistence.Bugs {
			// the menu edits bugs as a percentage; the model stores a factor
			v = 1.0 + v/100.0
		}
		c.PersistSetF32(m, e.ID, v, e.Echo)
	})
}

// Tick1ms advances the controller by 1ms. Every 100th tick runs the
// scheduler's 100ms dispatch, which fires every timer that has come due;
// the tick immediately after that runs Tick100ms itself; every other tick
// runs at most one callback returned by the scheduler's NextCallback. As
// the 100ms dispatch has already fired every due timer, those ticks only
// find a timer armed with a zero delay since that dispatch; timer work is
// not spread across the millisecond ticks.
// Returns whether a 100ms recalculation happened this call.
func (c *Controller) Tick1ms(m *model.Model) bool {
	c.ms++
	switch c.ms % 100 {
	case 0:
		c.Scheduler.Tick100ms()
		return false
	case 1:
		c.Tick100ms(m)
		return true
	default:
		if fn := c.Scheduler.NextCallback(); fn != nil {
			fn()
		}
		return false
	}
}

// Tick100ms recomputes the fast-changing derived values: the smoothed
// climb rate, sink rate, speed-to-fly and its smoothed deviation, the
// averaged supply voltage, and the sound mapping — then queues the CAN
// frames that broadcast them.
func (c *Controller) Tick100ms(m *model.Model) {
	m.Control.AliveTicks++

	if m.Control.VarioMode == model.Vario && m.Control.AvgClimbSlaveTicks == 0 {
		m.Calculated.AV2ClimbRate = units.Speed(c.av2ClimbRate.Tick(m.Sensor.ClimbRate.MS(), 0.1))
	} else if m.Control.AvgClimbSlaveTicks > 0 {
		m.Control.AvgClimbSlaveTicks--
	}

	m.Calculated.SinkRate = c.Polar.SinkRate(m.Sensor.IAS)
	stf := c.Polar.SpeedToFly(m.Sensor.ClimbRate.MS()-m.Calculated.SinkRate, m.Config.McCready)
	m.Calculated.SpeedToFly = stf
	m.Calculated.SpeedToFlyDif = units.Speed(c.avSpeedToFly.Tick(stf.IAS().MS(), 0.1) - m.Sensor.IAS.MS())

	c.avSupplyVoltage.Tick(m.Sensor.SupplyVoltage, 0.1)

	var params sound.Params
	var changed bool
	if m.Control.VarioMode == model.Vario {
		params, changed = c.Sound.Vario(m.Sensor.ClimbRate.MS())
	} else {
		norm := m.Calculated.SpeedToFlyDif.MS() / 10.0
		params, changed = c.Sound.SpeedToFly(norm)
	}
	if changed {
		c.IdleEvents = append(c.IdleEvents, idle.Sound(idle.SoundParams{
			FrequencyHz: float32(params.FrequencyHz), Continuous: params.Continuous, Gain: float32(params.Gain),
		}))
	}

	c.Dispatcher.QueueTx(canFrameAvgClimbRates(m))
	c.Dispatcher.QueueTx(canFrameSound(params))
}

func canFrameAvgClimbRates(m *model.Model) canbus.Classified {
	return canbus.Specific(canbus.SensorVarioAvVario, uint16(canbus.ObjectSensor), func(f canbus.Frame) canbus.Frame {
		return f.PushF32(m.Sensor.ClimbRate.MS()).PushF32(m.Calculated.AV2ClimbRate.MS())
	})
}

func canFrameSound(p sound.Params) canbus.Classified {
	return canbus.Specific(uint16(canbus.SpecialSound), uint16(canbus.ObjectFrontend), func(f canbus.Frame) canbus.Frame {
		cont := uint8(0)
		if p.Continuous {
			cont = 1
		}
		return f.PushU16(p.FrequencyHz).PushU8(cont).PushI8(p.Gain)
	})
}
