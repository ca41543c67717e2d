package controller

import (
	"github.com/skyvario/varioc/canbus"
	"github.com/skyvario/varioc/idle"
	"github.com/skyvario/varioc/model"
	"github.com/skyvario/varioc/persistence"
	"github.com/skyvario/varioc/polar"
	"github.com/skyvario/varioc/units"
	"github.com/skyvario/varioc/view"
)

// RestoreItem applies a loaded EEPROM item to the model at startup. Unknown
// ids are silently ignored (a newer firmware's slot on older hardware).
func (c *Controller) RestoreItem(m *model.Model, it persistence.Item) {
	if !it.DatBit {
		return
	}
	switch it.ID {
	case persistence.Volume:
		m.Config.Volume = it.ToU8()
	case persistence.McCready:
		m.Config.McCready = it.ToF32()
	case persistence.WaterBallast:
		m.Config.GliderData.WaterBallast = units.NewMassFromKg(it.ToF32())
	case persistence.PilotWeight:
		m.Config.GliderData.PilotWeight = units.NewMassFromKg(it.ToF32())
	case persistence.Bugs:
		m.Config.Bugs = it.ToF32()
		m.Config.GliderData.Bugs = it.ToF32()
	case persistence.Qnh:
		m.Config.Qnh = units.NewPressureFromHpa(it.ToF32())
	case persistence.TcClimbRate:
		m.Config.TcClimbRate = it.ToF32()
	case persistence.TcSpeedToFly:
		m.Config.TcSpeedToFly = it.ToF32()
	case persistence.VarioModeControl:
		if it.ToU8() == 1 {
			m.Control.VarioMode = model.SpeedToFly
		} else {
			m.Control.VarioMode = model.Vario
		}
	case persistence.DisplayTheme:
		m.Config.DisplayTheme = it.ToU8()
	case persistence.Display:
		m.Control.LastDisplayActive = model.DisplayActive(it.ToU8())
	case persistence.Info1:
		m.Config.Info1 = view.LineViewFromU32(it.ToU32())
	case persistence.Info2:
		m.Config.Info2 = view.LineViewFromU32(it.ToU32())
	case persistence.Rotation:
		m.Config.Rotation = view.RotationFromU32(it.ToU32())
	case persistence.CenterFrequency:
		m.Config.CenterFreqHz = it.ToF32()
		c.Sound.CenterFreqHz = m.Config.CenterFreqHz
	case persistence.CenterViewCircling:
		m.Config.CenterViewCircling = view.CenterViewFromU32(it.ToU32())
	case persistence.CenterViewStraight:
		m.Config.CenterViewStraight = view.CenterViewFromU32(it.ToU32())
	case persistence.Glider:
		idx := int(it.ToI32())
		m.Config.GliderIdx = idx
		if idx >= 0 && idx < len(polar.Store) {
			m.Config.GliderData.Basic = polar.Store[idx]
		}
		c.RecalcGlider(m)
	case persistence.EmptyMass:
		m.Config.GliderData.Basic.EmptyMass = it.ToF32()
		c.RecalcGlider(m)
	case persistence.MaxBallast:
		m.Config.GliderData.Basic.MaxBallast = it.ToF32()
		c.RecalcGlider(m)
	case persistence.ReferenceWeight:
		m.Config.GliderData.Basic.ReferenceWeight = it.ToF32()
		c.RecalcGlider(m)
	case persistence.PolarValueV1:
		m.Config.GliderData.Basic.PolarValues[0][0] = it.ToF32()
		c.RecalcGlider(m)
	case persistence.PolarValueV2:
		m.Config.GliderData.Basic.PolarValues[1][0] = it.ToF32()
		c.RecalcGlider(m)
	case persistence.PolarValueV3:
		m.Config.GliderData.Basic.PolarValues[2][0] = it.ToF32()
		c.RecalcGlider(m)
	case persistence.PolarValueSi1:
		m.Config.GliderData.Basic.PolarValues[0][1] = it.ToF32()
		c.RecalcGlider(m)
	case persistence.PolarValueSi2:
		m.Config.GliderData.Basic.PolarValues[1][1] = it.ToF32()
		c.RecalcGlider(m)
	case persistence.PolarValueSi3:
		m.Config.GliderData.Basic.PolarValues[2][1] = it.ToF32()
		c.RecalcGlider(m)
	}
}

// StoreItem builds the EEPROM item representing id's current value. Ids
// with no storage representation return persistence.DoNotStoreItem().
func StoreItem(m *model.Model, id persistence.ID) persistence.Item {
	switch id {
	case persistence.Volume:
		return persistence.FromU8(id, m.Config.Volume)
	case persistence.McCready:
		return persistence.FromF32(id, m.Config.McCready)
	case persistence.WaterBallast:
		return persistence.FromF32(id, m.Config.GliderData.WaterBallast.Kg())
	case persistence.PilotWeight:
		return persistence.FromF32(id, m.Config.GliderData.PilotWeight.Kg())
	case persistence.Bugs:
		return persistence.FromF32(id, m.Config.Bugs)
	case persistence.Qnh:
		return persistence.FromF32(id, m.Config.Qnh.Hpa())
	case persistence.TcClimbRate:
		return persistence.FromF32(id, m.Config.TcClimbRate)
	case persistence.TcSpeedToFly:
		return persistence.FromF32(id, m.Config.TcSpeedToFly)
	case persistence.VarioModeControl:
		if m.Control.VarioMode == model.SpeedToFly {
			return persistence.FromU8(id, 1)
		}
		return persistence.FromU8(id, 0)
	case persistence.DisplayTheme:
		return persistence.FromU8(id, m.Config.DisplayTheme)
	case persistence.Display:
		return persistence.FromU8(id, uint8(m.Control.LastDisplayActive))
	case persistence.Info1:
		return persistence.FromU32(id, uint32(m.Config.Info1))
	case persistence.Info2:
		return persistence.FromU32(id, uint32(m.Config.Info2))
	case persistence.Rotation:
		return persistence.FromU32(id, uint32(m.Config.Rotation))
	case persistence.CenterFrequency:
		return persistence.FromF32(id, m.Config.CenterFreqHz)
	case persistence.CenterViewCircling:
		return persistence.FromU32(id, uint32(m.Config.CenterViewCircling))
	case persistence.CenterViewStraight:
		return persistence.FromU32(id, uint32(m.Config.CenterViewStraight))
	case persistence.Glider:
		return persistence.FromI32(id, int32(m.Config.GliderIdx))
	case persistence.EmptyMass:
		return persistence.FromF32(id, m.Config.GliderData.Basic.EmptyMass)
	case persistence.MaxBallast:
		return persistence.FromF32(id, m.Config.GliderData.Basic.MaxBallast)
	case persistence.ReferenceWeight:
		return persistence.FromF32(id, m.Config.GliderData.Basic.ReferenceWeight)
	case persistence.PolarValueV1:
		return persistence.FromF32(id, m.Config.GliderData.Basic.PolarValues[0][0])
	case persistence.PolarValueV2:
		return persistence.FromF32(id, m.Config.GliderData.Basic.PolarValues[1][0])
	case persistence.PolarValueV3:
		return persistence.FromF32(id, m.Config.GliderData.Basic.PolarValues[2][0])
	case persistence.PolarValueSi1:
		return persistence.FromF32(id, m.Config.GliderData.Basic.PolarValues[0][1])
	case persistence.PolarValueSi2:
		return persistence.FromF32(id, m.Config.GliderData.Basic.PolarValues[1][1])
	case persistence.PolarValueSi3:
		return persistence.FromF32(id, m.Config.GliderData.Basic.PolarValues[2][1])
	default:
		return persistence.DoNotStoreItem()
	}
}

// PersistSetF32 sets a float32-valued setting, applying it to the model,
// persisting the change (debounced) and echoing per policy.
func (c *Controller) PersistSetF32(m *model.Model, id persistence.ID, v float32, echo persistence.Echo) {
	switch id {
	case persistence.Volume:
		m.Config.Volume = uint8(v)
	case persistence.McCready:
		m.Config.McCready = v
	case persistence.WaterBallast:
		m.Config.GliderData.WaterBallast = units.NewMassFromKg(v)
	case persistence.PilotWeight:
		m.Config.GliderData.PilotWeight = units.NewMassFromKg(v)
	case persistence.Bugs:
		m.Config.Bugs = v
		m.Config.GliderData.Bugs = v
	case persistence.Qnh:
		m.Config.Qnh = units.NewPressureFromHpa(v)
	case persistence.TcClimbRate:
		m.Config.TcClimbRate = v
	case persistence.TcSpeedToFly:
		m.Config.TcSpeedToFly = v
	case persistence.CenterFrequency:
		m.Config.CenterFreqHz = v
		c.Sound.CenterFreqHz = v
	case persistence.EmptyMass, persistence.MaxBallast, persistence.ReferenceWeight,
		persistence.PolarValueV1, persistence.PolarValueV2, persistence.PolarValueV3,
		persistence.PolarValueSi1, persistence.PolarValueSi2, persistence.PolarValueSi3:
		setPolarField(m, id, v)
		c.RecalcGlider(m)
	}
	c.finishPush(m, id, echo)
}

func setPolarField(m *model.Model, id persistence.ID, v float32) {
	b := &m.Config.GliderData.Basic
	switch id {
	case persistence.EmptyMass:
		b.EmptyMass = v
	case persistence.MaxBallast:
		b.MaxBallast = v
	case persistence.ReferenceWeight:
		b.ReferenceWeight = v
	case persistence.PolarValueV1:
		b.PolarValues[0][0] = v
	case persistence.PolarValueV2:
		b.PolarValues[1][0] = v
	case persistence.PolarValueV3:
		b.PolarValues[2][0] = v
	case persistence.PolarValueSi1:
		b.PolarValues[0][1] = v
	case persistence.PolarValueSi2:
		b.PolarValues[1][1] = v
	case persistence.PolarValueSi3:
		b.PolarValues[2][1] = v
	}
}

// PersistSetGlider sets the glider selection, clearing its measured-polar
// settings (they describe the previous glider) and rebuilding the polar.
func (c *Controller) PersistSetGlider(m *model.Model, idx int, echo persistence.Echo) {
	m.Config.GliderIdx = idx
	if idx >= 0 && idx < len(polar.Store) {
		m.Config.GliderData.Basic = polar.Store[idx]
	}
	c.RecalcGlider(m)
	c.IdleEvents = append(c.IdleEvents, idle.ClearEepromItems(persistence.SpecificPolarSettings))
	c.finishPush(m, persistence.Glider, echo)
}

// PersistSetVarioModeControl sets the vario mode and records who is
// overriding it, so the next Tick1s arbitration step (which only
// auto-arbitrates when the source is SourceAuto) leaves this value alone
// until the source is handed back.
func (c *Controller) PersistSetVarioModeControl(m *model.Model, mode model.VarioMode, source model.VarioModeSource, echo persistence.Echo) {
	m.Control.VarioMode = mode
	m.Config.VarioModeControl = source
	c.finishPush(m, persistence.VarioModeControl, echo)
}

// finishPush records the echo/debounce side effects of a setting change:
// it optionally enqueues an outbound CAN config frame immediately, always
// queues the id for the debounced flush (EEPROM write, plus the NMEA echo
// when the policy asks for one), and re-arms the debounce timer so the
// flush runs DebounceMillis after the last change.
func (c *Controller) finishPush(m *model.Model, id persistence.ID, echo persistence.Echo) {
	if echo.WantsCan() {
		cfgID := id.ToCanConfigID()
		frame := canbus.Generic(uint16(canbus.GenericSetSysSetting), func(f canbus.Frame) canbus.Frame {
			return f.PushU16(uint16(cfgID)).PushF32(StoreItem(m, id).ToF32())
		})
		c.Dispatcher.QueueTx(frame)
	}
	c.Pending.Push(id, echo)
	c.Scheduler.After("persist-flush", persistence.DebounceMillis/100, func() {
		c.flushPersistence(m)
	})
}

// flushPersistence is the debounce timer callback: it stores every pending
// id to EEPROM and sends every NMEA-pending id as a $PLARS report.
func (c *Controller) flushPersistence(m *model.Model) {
	eeprom, nmea := c.Pending.Drain()
	for _, id := range eeprom {
		c.IdleEvents = append(c.IdleEvents, idle.SetEepromItem(StoreItem(m, id)))
	}
	for _, id := range nmea {
		c.NmeaCycle.QueuePersistenceEcho(id)
	}
}

// RecalcGlider rebuilds Refer/Curr from the current glider selection and
// rescales for the current weight/density, mirroring the 1s chain's
// recalc_polar step run once immediately after a glider-shaped setting
// changes instead of waiting for the next tick.
func (c *Controller) RecalcGlider(m *model.Model) {
	c.Polar.RecalcGlider(m.Config.GliderData)
	c.Polar.Recalc(m.Config.GliderData, m.Sensor.Density)
}
