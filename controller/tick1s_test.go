package controller

import (
	"testing"

	"github.com/skyvario/varioc/events"
	"github.com/skyvario/varioc/model"
	"github.com/skyvario/varioc/persistence"
	"github.com/skyvario/varioc/units"
	"github.com/stretchr/testify/assert"
)

func loadedTestModel(c *Controller) *model.Model {
	m := &model.Model{}
	m.Sensor.Density = units.DensityAtNN
	c.PersistSetGlider(m, 0, persistence.EchoNone)
	return m
}

// TestSpeedToFly1sAutoArbitrates checks the SourceAuto branch: flying fast
// (above the switch ratio) selects SpeedToFly, flying slow selects Vario.
func TestSpeedToFly1sAutoArbitrates(t *testing.T) {
	c := newTestController()
	m := loadedTestModel(c)

	m.Sensor.IAS = c.Polar.SpeedToFly(0, 0).IAS() * 2
	c.speedToFly1s(m)
	assert.Equal(t, model.SourceAuto, m.Config.VarioModeControl)
	assert.Equal(t, model.SpeedToFly, m.Control.VarioMode)

	m.Sensor.IAS = 0
	c.speedToFly1s(m)
	assert.Equal(t, model.Vario, m.Control.VarioMode)
}

// TestSpeedToFly1sPinOverridesAuto checks that once the toggle pin has
// claimed the source, the arbitration step follows the pin's live state
// instead of auto-arbitrating.
func TestSpeedToFly1sPinOverridesAuto(t *testing.T) {
	c := newTestController()
	m := loadedTestModel(c)
	c.SpeedToFly.PinFunction = ToggleOnClose
	m.Sensor.IAS = 0 // would auto-arbitrate to Vario if the pin didn't claim the source

	c.inputAction(m, events.InputEvent{Pin: events.Io2, Level: events.PinClosed})
	assert.Equal(t, model.SourceInputPin, m.Config.VarioModeControl)

	c.speedToFly1s(m)
	assert.Equal(t, model.SpeedToFly, m.Control.VarioMode)

	c.inputAction(m, events.InputEvent{Pin: events.Io2, Level: events.PinOpen})
	c.speedToFly1s(m)
	assert.Equal(t, model.Vario, m.Control.VarioMode)
}

// TestSpeedToFly1sNmeaOverrideSticksUntilReleased checks that an
// NMEA-sourced override is left untouched by the 1s arbitration step (it is
// not silently reclaimed by auto-arbitration) until the source is set back
// to SourceAuto.
func TestSpeedToFly1sNmeaOverrideSticksUntilReleased(t *testing.T) {
	c := newTestController()
	m := loadedTestModel(c)

	c.PersistSetVarioModeControl(m, model.SpeedToFly, model.SourceNmea, persistence.EchoNone)
	m.Sensor.IAS = 0 // would auto-arbitrate to Vario if auto ran

	c.speedToFly1s(m)
	assert.Equal(t, model.SpeedToFly, m.Control.VarioMode)
	assert.Equal(t, model.SourceNmea, m.Config.VarioModeControl)

	c.PersistSetVarioModeControl(m, model.Vario, model.SourceAuto, persistence.EchoNone)
	c.speedToFly1s(m)
	assert.Equal(t, model.SourceAuto, m.Config.VarioModeControl)
	assert.Equal(t, model.Vario, m.Control.VarioMode)
}

// TestSpeedToFly1sPinIgnoredWhenUnconfigured checks that an Io2 event on an
// unconfigured (ToggleNone) pin never claims the source, leaving auto
// arbitration in control.
func TestSpeedToFly1sPinIgnoredWhenUnconfigured(t *testing.T) {
	c := newTestController()
	m := loadedTestModel(c)

	c.inputAction(m, events.InputEvent{Pin: events.Io2, Level: events.PinClosed})
	assert.Equal(t, model.SourceAuto, m.Config.VarioModeControl)
}
