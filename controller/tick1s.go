package controller

import (
	"time"

	"github.com/skyvario/varioc/canbus"
	"github.com/skyvario/varioc/events"
	"github.com/skyvario/varioc/idle"
	"github.com/skyvario/varioc/model"
	"github.com/skyvario/varioc/persistence"
	"github.com/skyvario/varioc/units"
)

// VarioModeSwitchRatio is the fraction of the speed-to-fly solution below
// which the automatic arbitration switches back from SpeedToFly to Vario.
const VarioModeSwitchRatio = 0.9

// Tick1s runs the six-step 1-second chain in the declared order: rebuild
// the polar, arbitrate vario mode and advance the thermal-climb-rate state
// machine, broadcast the heartbeat and refresh system state, forward the
// GPS time, seed the slow NMEA cadence and broadcast 1Hz telemetry, and
// finally drain the hardware-pin controls.
func (c *Controller) Tick1s(m *model.Model) {
	c.recalcPolar(m)
	c.speedToFly1s(m)
	c.canHeartbeat(m)
	c.setDateTime(m)
	c.sendCanNmea(m)
	c.processHardwarePins(m)
}

func (c *Controller) recalcPolar(m *model.Model) {
	c.Polar.Recalc(m.Config.GliderData, m.Sensor.Density)
}

func (c *Controller) speedToFly1s(m *model.Model) {
	stf := c.Polar.SpeedToFly(0, 0)
	m.Control.SpeedToFlyLimit = stf.IAS()

	oldMode := m.Control.VarioMode

	// The source selector decides who owns VarioMode this tick: auto
	// arbitration only runs while nothing else has claimed it. A pin
	// override tracks the toggle pin live; an NMEA/CAN override leaves
	// VarioMode exactly as the config-dispatch path last set it until a
	// PersistSetVarioModeControl call hands the source back to SourceAuto.
	switch m.Config.VarioModeControl {
	case model.SourceAuto:
		if m.Sensor.IAS.MS() > m.Control.SpeedToFlyLimit.MS()*VarioModeSwitchRatio {
			m.Control.VarioMode = model.SpeedToFly
		} else {
			m.Control.VarioMode = model.Vario
		}
	case model.SourceInputPin:
		m.Control.VarioMode = c.SpeedToFly.VarioMode
	}

	if m.Control.VarioMode != oldMode {
		c.NmeaCycle.QueuePersistenceEcho(persistence.VarioModeControl)
	}

	m.Calculated.SpeedToFly1s = units.Speed(c.avSpeedToFly.Tick(stf.IAS().MS(), 1.0))

	if c.lastVarioMode != m.Control.VarioMode && m.Control.VarioMode == model.Vario {
		c.av2ClimbRate.Reset(m.Sensor.ClimbRate.MS())
	}
	c.lastVarioMode = m.Control.VarioMode

	c.advanceThermalClimbRate(m)
}

// advanceThermalClimbRate runs the Straight/Transition/Climbing state
// machine: while circling, altitude gained since the climb started is
// averaged over the number of seconds spent climbing; 30 consecutive
// straight-flight seconds after a climb resets the thermal climb rate to
// zero.
func (c *Controller) advanceThermalClimbRate(m *model.Model) {
	gpsAlt := m.Sensor.Altitude

	if m.Sensor.FlyMode == model.Circling {
		switch m.Control.TcrMode {
		case model.TcrStraightFlight:
			m.Control.TcrStart = gpsAlt
			m.Control.Tcr1sClimbTicks = 0
		case model.TcrTransition:
			m.Control.Tcr1sTransientTicks = 0
			m.Control.Tcr1sClimbTicks++
		case model.TcrClimbing:
			m.Control.Tcr1sClimbTicks++
		}
		m.Control.TcrMode = model.TcrClimbing

		if m.Control.AvgClimbSlaveTicks > 0 {
			m.Control.AvgClimbSlaveTicks--
		} else if m.Control.Tcr1sClimbTicks > 0 {
			gained := gpsAlt.Sub(m.Control.TcrStart)
			m.Control.ThermalClimbRate = gained.DivSeconds(float32(m.Control.Tcr1sClimbTicks))
		}
	} else {
		switch m.Control.TcrMode {
		case model.TcrClimbing:
			m.Control.TcrMode = model.TcrTransition
			m.Control.Tcr1sTransientTicks = 0
		case model.TcrTransition:
			m.Control.Tcr1sTransientTicks++
			if m.Control.Tcr1sTransientTicks > 30 {
				m.Control.TcrMode = model.TcrStraightFlight
				m.Control.ThermalClimbRate = 0
			}
		case model.TcrStraightFlight:
			m.Control.TcrStart = gpsAlt
		}
	}
}

func (c *Controller) canHeartbeat(m *model.Model) {
	c.Dispatcher.QueueTx(canbus.Classified{Kind: canbus.KindGeneric, GenericID: uint16(canbus.GenericHeartbeat),
		Can: canbus.EmptyFromID(0).PushU16(uint16(canbus.ObjectConfig))})

	if m.Control.CanDevices != canbus.CanActiveNone {
		if m.Sensor.GpsState == model.GpsHeadingAvail || m.Sensor.GpsState == model.GpsPosAvail {
			m.Calculated.SystemState = model.CanAndGpsOk
		} else {
			m.Calculated.SystemState = model.CanOk
		}
	} else {
		m.Sensor.GpsState = model.GpsNoFix
		m.Calculated.SystemState = model.NoCom
	}
	m.Control.CanDevices = canbus.CanActiveNone
}

func (c *Controller) setDateTime(m *model.Model) {
	gt := m.Sensor.GpsDateTime
	c.IdleEvents = append(c.IdleEvents, idle.DateTime(unixFromParts(gt)))
}

func unixFromParts(parts [6]int) int64 {
	year, month, day, hour, min, sec := parts[0], parts[1], parts[2], parts[3], parts[4], parts[5]
	return time.Date(year, time.Month(month), day, hour, min, sec, 0, time.UTC).Unix()
}

func (c *Controller) sendCanNmea(m *model.Model) {
	c.Dispatcher.QueueTx(canbus.Specific(canbus.SensorUbattCircleMode, uint16(canbus.ObjectSensor), func(f canbus.Frame) canbus.Frame {
		return f.PushF32(m.Sensor.SupplyVoltage).PushU8(uint8(m.Sensor.FlyMode))
	}))
	c.NmeaCycle.NmeaCyclic(false)
}

func (c *Controller) processHardwarePins(m *model.Model) {
	c.Drain.Tick1s(m)
	if c.Drain.IsFlowing {
		c.PersistSetF32(m, persistence.WaterBallast, m.Config.GliderData.WaterBallast.Kg(), persistence.EchoNmeaAndCan)
	}
	if level, ok := c.Flash.Tick1s(m); ok {
		c.IdleEvents = append(c.IdleEvents, idle.Output1(pinStateFromLevel(level)))
	}
}

func pinStateFromLevel(l events.PinLevel) idle.PinState {
	if l == events.PinClosed {
		return idle.High
	}
	return idle.Low
}
