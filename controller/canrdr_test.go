package controller

import (
	"testing"

	"github.com/skyvario/varioc/canbus"
	"github.com/skyvario/varioc/model"
	"github.com/stretchr/testify/assert"
)

func newTestController() *Controller {
	d := canbus.NewDispatcher(1, nil, nil, nil)
	return New(d, 2.0, 2.0, 10.0)
}

func TestReadGenericSetSysSettingMcCready(t *testing.T) {
	c := newTestController()
	m := &model.Model{}

	f := canbus.Generic(uint16(canbus.GenericSetSysSetting), func(fr canbus.Frame) canbus.Frame {
		return fr.PushU16(uint16(canbus.CfgMacCready)).PushF32(1.5)
	})
	c.ReadCanFrame(m, f)

	assert.InDelta(t, 1.5, m.Config.McCready, 0.0001)
}

func TestReadSensorTasIas(t *testing.T) {
	c := newTestController()
	m := &model.Model{}

	f := canbus.Specific(canbus.SensorTasIas, uint16(canbus.ObjectSensor), func(fr canbus.Frame) canbus.Frame {
		return fr.PushF32(30.0).PushF32(28.0)
	})
	c.ReadCanFrame(m, f)

	assert.InDelta(t, 30.0, m.Sensor.TAS.MS(), 0.0001)
	assert.InDelta(t, 28.0, m.Sensor.IAS.MS(), 0.0001)
}

func TestReadSensorNonFiniteIgnored(t *testing.T) {
	c := newTestController()
	m := &model.Model{}
	m.Sensor.TAS = 12

	f := canbus.Specific(canbus.SensorTasIas, uint16(canbus.ObjectSensor), func(fr canbus.Frame) canbus.Frame {
		inf := float32(1)
		return fr.PushF32(inf / 0).PushF32(5)
	})
	c.ReadCanFrame(m, f)

	assert.Equal(t, float32(12), m.Sensor.TAS.MS())
	assert.InDelta(t, 5.0, m.Sensor.IAS.MS(), 0.0001)
}

func TestReadLegacyAirspeed(t *testing.T) {
	c := newTestController()
	m := &model.Model{}

	raw := canbus.EmptyFromID(canbus.LegacyAirspeed).PushI16(360).PushI16(180)
	c.ReadCanFrame(m, canbus.Legacy(raw))

	assert.InDelta(t, 360.0, m.Sensor.TAS.KmH(), 0.01)
	assert.InDelta(t, 180.0, m.Sensor.IAS.KmH(), 0.01)
}

func TestReadLegacyVarioSetsCanDevices(t *testing.T) {
	c := newTestController()
	m := &model.Model{}

	raw := canbus.EmptyFromID(canbus.LegacyVario).PushI16(1500).PushI16(1000)
	c.ReadCanFrame(m, canbus.Legacy(raw))

	assert.InDelta(t, 1.5, m.Sensor.ClimbRate.MS(), 0.001)
	assert.InDelta(t, 1.0, m.Sensor.AvgClimbRate.MS(), 0.001)
	assert.Equal(t, canbus.CanActiveSensorboxLegacy, m.Control.CanDevices)
}

func TestReadGpsNoSatFixType(t *testing.T) {
	c := newTestController()
	m := &model.Model{}

	f := canbus.Specific(canbus.GpsNoSatFixType, uint16(canbus.ObjectGPS), func(fr canbus.Frame) canbus.Frame {
		return fr.PushU8(7).PushU8(3)
	})
	c.ReadCanFrame(m, f)

	assert.Equal(t, 7, m.Sensor.Sats)
	assert.Equal(t, model.GpsHeadingAvail, m.Sensor.GpsState)
}
