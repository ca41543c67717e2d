package controller

import (
	"github.com/skyvario/varioc/canbus"
	"github.com/skyvario/varioc/model"
	"github.com/skyvario/varioc/persistence"
	"github.com/skyvario/varioc/units"
)

// ReadCanFrame applies one classified inbound frame to the model,
// dispatching by its Kind.
func (c *Controller) ReadCanFrame(m *model.Model, f canbus.Classified) {
	switch f.Kind {
	case canbus.KindGeneric:
		c.readGeneric(m, f)
	case canbus.KindSpecific:
		c.readSpecific(m, f)
	case canbus.KindLegacy:
		c.readLegacy(m, f.Can)
	}
}

// readGeneric only interprets GenericSetSysSetting; every other generic id
// (heartbeat, firmware version, binary transfer) is owned by other
// subsystems and ignored here.
func (c *Controller) readGeneric(m *model.Model, f canbus.Classified) {
	if f.GenericID != uint16(canbus.GenericSetSysSetting) {
		return
	}
	r := f.Can.Reader()
	configID := canbus.CanConfigID(r.PopU16())
	c.readSysConfigValue(m, configID, r)
}

// readSysConfigValue decodes one SetSysSetting payload and writes it
// through PersistSetF32 with Echo::Nmea — an inbound CAN config change is
// only ever echoed back out over NMEA, never re-broadcast on CAN, or every
// node that cross-echoed would loop forever.
func (c *Controller) readSysConfigValue(m *model.Model, id canbus.CanConfigID, r *canbus.Reader) {
	switch id {
	case canbus.CfgVolume:
		m.Config.Volume = uint8(r.PopI8())
		c.finishPush(m, persistence.Volume, persistence.EchoNmea)
	case canbus.CfgMacCready:
		if v, ok := r.PopF32(); ok {
			c.PersistSetF32(m, persistence.McCready, v, persistence.EchoNmea)
		}
	case canbus.CfgWaterBallast:
		if v, ok := r.PopF32(); ok {
			c.PersistSetF32(m, persistence.WaterBallast, v, persistence.EchoNmea)
		}
	case canbus.CfgBugs:
		if v, ok := r.PopF32(); ok {
			c.PersistSetF32(m, persistence.Bugs, v, persistence.EchoNmea)
		}
	case canbus.CfgQnh:
		if v, ok := r.PopF32(); ok {
			c.PersistSetF32(m, persistence.Qnh, v, persistence.EchoNmea)
		}
	case canbus.CfgPilotWeight:
		if v, ok := r.PopF32(); ok {
			c.PersistSetF32(m, persistence.PilotWeight, v, persistence.EchoNmea)
		}
	case canbus.CfgVarioModeControl:
		mode := model.Vario
		if r.PopU8() == 1 {
			mode = model.SpeedToFly
		}
		c.PersistSetVarioModeControl(m, mode, model.SourceCan, persistence.EchoNmea)
	case canbus.CfgTcClimbRate:
		if v, ok := r.PopF32(); ok {
			c.PersistSetF32(m, persistence.TcClimbRate, v, persistence.EchoNmea)
		}
	case canbus.CfgTcSpeedToFly:
		if v, ok := r.PopF32(); ok {
			c.PersistSetF32(m, persistence.TcSpeedToFly, v, persistence.EchoNmea)
		}
	}
}

func (c *Controller) readSpecific(m *model.Model, f canbus.Classified) {
	switch canbus.ObjectID(f.ObjectID) {
	case canbus.ObjectSensor:
		c.readSensorValues(m, f.SpecificID, f.Can.Reader())
	case canbus.ObjectGPS:
		c.readGpsValues(m, f.SpecificID, f.Can.Reader())
	}
}

func (c *Controller) readSensorValues(m *model.Model, specificID uint16, r *canbus.Reader) {
	switch specificID {
	case canbus.SensorEulerRollNick:
		roll, okR := r.PopF32()
		nick, okN := r.PopF32()
		if okR {
			m.Sensor.EulerRoll = units.Angle(roll)
		}
		if okN {
			m.Sensor.EulerNick = units.Angle(nick)
		}
	case canbus.SensorEulerYawTurnRate:
		yaw, okY := r.PopF32()
		rate, okR := r.PopF32()
		if okY {
			m.Sensor.EulerYaw = units.Angle(yaw)
		}
		if okR {
			m.Sensor.TurnRate = units.AngularVelocity(rate)
		}
	case canbus.SensorTasIas:
		tas, okT := r.PopF32()
		ias, okI := r.PopF32()
		if okT {
			m.Sensor.TAS = units.Speed(tas)
		}
		if okI {
			m.Sensor.IAS = units.Speed(ias)
		}
	case canbus.SensorVarioAvVario:
		climb, okC := r.PopF32()
		avg, okA := r.PopF32()
		if okC {
			m.Sensor.ClimbRate = units.Speed(climb)
			m.Control.CanDevices |= canbus.CanActiveSensorboxLegacy
		}
		if okA {
			m.Sensor.AvgClimbRate = units.Speed(avg)
		}
	case canbus.SensorWindDirSpeed:
		dir, okD := r.PopF32()
		spd, okS := r.PopF32()
		if okD {
			m.Sensor.WindDir = units.Angle(dir)
		}
		if okS {
			m.Sensor.WindSpeed = units.Speed(spd)
		}
	case canbus.SensorAvWindDirSpeed:
		dir, okD := r.PopF32()
		spd, okS := r.PopF32()
		if okD {
			m.Sensor.AvgWindDir = units.Angle(dir)
		}
		if okS {
			m.Sensor.AvgWindSpeed = units.Speed(spd)
		}
	case canbus.SensorAmbPressAirDens:
		press, okP := r.PopF32()
		dens, okD := r.PopF32()
		if okP {
			m.Sensor.Pressure = units.Pressure(press)
		}
		if okD {
			m.Sensor.Density = units.Density(dens)
		}
	case canbus.SensorGForceVerticalGf:
		g, okG := r.PopF32()
		vg, okV := r.PopF32()
		if okG {
			m.Sensor.GForce = units.Acceleration(g)
		}
		if okV {
			m.Sensor.VerticalGForce = units.Acceleration(vg)
		}
	case canbus.SensorSlipPitchAngle:
		slip, ok := r.PopF32()
		if ok {
			m.Sensor.SlipAngle = units.Angle(slip)
		}
	case canbus.SensorUbattCircleMode:
		r.PopF32() // ubatt discarded
		flyMode := r.PopU8()
		m.Sensor.FlyMode = model.StraightFlight
		if flyMode == 2 {
			m.Sensor.FlyMode = model.Circling
		}
	}
}

func (c *Controller) readGpsValues(m *model.Model, specificID uint16, r *canbus.Reader) {
	switch specificID {
	case canbus.GpsDateTime:
		year := r.PopU16()
		month := r.PopU8()
		day := r.PopU8()
		hour := r.PopU8()
		min := r.PopU8()
		sec := r.PopU8()
		m.Sensor.GpsDateTime = [6]int{int(year), int(month), int(day), int(hour), int(min), int(sec)}
	case canbus.GpsLatitude:
		if v, ok := r.PopF64(); ok {
			m.Sensor.Latitude = v
		}
	case canbus.GpsLongitude:
		if v, ok := r.PopF64(); ok {
			m.Sensor.Longitude = v
		}
	case canbus.GpsAltitudeGeoSep:
		alt, okA := r.PopF32()
		sep, okS := r.PopF32()
		if okA {
			m.Sensor.Altitude = units.Length(alt)
		}
		if okS {
			m.Sensor.GeoSep = units.Length(sep)
		}
	case canbus.GpsGroundTrackSpeed:
		track, okT := r.PopF32()
		speed, okS := r.PopF32()
		if okT {
			m.Sensor.GroundTrack = units.Angle(track)
		}
		if okS {
			m.Sensor.GroundSpeed = units.Speed(speed)
		}
	case canbus.GpsNoSatFixType:
		sats := r.PopU8()
		fixType := r.PopU8()
		m.Sensor.Sats = int(sats)
		m.Sensor.GpsState = fixTypeToState(fixType)
	}
}

func fixTypeToState(fixType uint8) model.GpsState {
	switch fixType {
	case 1:
		return model.GpsPosAvail
	case 3:
		return model.GpsHeadingAvail
	default:
		return model.GpsNoFix
	}
}

// norm02Pi and normMPiPPi reproduce the legacy-frame angle scaling: raw
// values are milliradians modulo a full turn (2*pi*1000 is about 6283.2
// thousandths of a radian, taken as 6284), cast to the [0, 2pi) or [-pi, +pi] convention the
// receiving field expects.
func norm02Pi(raw int16) units.Angle {
	r := int32(raw) % 6284
	if r < 0 {
		r += 6284
	}
	return units.Angle(float32(r) * 0.001)
}

func normMPiPPi(raw int16) units.Angle {
	r := int32(raw) % 6284
	if r > 3142 {
		r -= 6284
	}
	return units.Angle(float32(r) * 0.001)
}

func (c *Controller) readLegacy(m *model.Model, f canbus.Frame) {
	r := f.Reader()
	switch f.ID() {
	case canbus.LegacyEulerAngles:
		m.Sensor.EulerRoll = normMPiPPi(r.PopI16())
		m.Sensor.EulerNick = normMPiPPi(r.PopI16())
		m.Sensor.EulerYaw = norm02Pi(r.PopI16())
	case canbus.LegacyAcceleration:
		g := r.PopI16()
		vg := r.PopI16()
		r.PopI16() // gps climb rate, discarded
		flyMode := r.PopU8()
		m.Sensor.GForce = units.Acceleration(float32(g) / 1000)
		m.Sensor.VerticalGForce = units.Acceleration(float32(vg) / 1000)
		if flyMode == 2 {
			m.Sensor.FlyMode = model.Circling
		} else {
			m.Sensor.FlyMode = model.StraightFlight
		}
	case canbus.LegacyAirspeed:
		m.Sensor.TAS = units.NewSpeedFromKmh(float32(r.PopI16()))
		m.Sensor.IAS = units.NewSpeedFromKmh(float32(r.PopI16()))
	case canbus.LegacyAtmosphere:
		m.Sensor.Pressure = units.Pressure(float32(r.PopU32()))
		m.Sensor.Density = units.NewDensityFromGm3(float32(r.PopU32()))
	case canbus.LegacyGpsDateTime:
		year := int(r.PopU8()) + 2000
		month := int(r.PopU8())
		day := int(r.PopU8())
		hour := int(r.PopU8())
		min := int(r.PopU8())
		sec := int(r.PopU8())
		m.Sensor.GpsDateTime = [6]int{year, month, day, hour, min, sec}
	case canbus.LegacyGpsLatLon:
		m.Sensor.Latitude = float64(r.PopI32()) * 1e-7 * (3.141592653589793 / 180)
		m.Sensor.Longitude = float64(r.PopI32()) * 1e-7 * (3.141592653589793 / 180)
	case canbus.LegacyGpsAlt:
		m.Sensor.Altitude = units.NewLengthFromMm(float32(r.PopI32()))
		m.Sensor.GeoSep = units.Length(float32(r.PopI32()) / 10)
	case canbus.LegacyGpsTrkSpd:
		track := norm02Pi(r.PopI16())
		speed := units.NewSpeedFromKmh(float32(r.PopU16()))
		if speed.KmH() < 1.0 {
			// track is meaningless below walking speed
			track = 0
		}
		m.Sensor.GroundTrack = track
		m.Sensor.GroundSpeed = speed
	case canbus.LegacyGpsSats:
		m.Sensor.Sats = int(r.PopU8())
		m.Sensor.GpsState = fixTypeToState(r.PopU8())
	case canbus.LegacyTurnCoord:
		m.Sensor.SlipAngle = normMPiPPi(r.PopI16())
		m.Sensor.TurnRate = units.AngularVelocity(normMPiPPi(r.PopI16()).Rad())
		r.PopI16() // nick angle, not modeled separately from EulerNick
	case canbus.LegacyVario:
		m.Sensor.ClimbRate = units.Speed(float32(r.PopI16()) / 1000)
		m.Sensor.AvgClimbRate = units.Speed(float32(r.PopI16()) / 1000)
		m.Control.CanDevices |= canbus.CanActiveSensorboxLegacy
	case canbus.LegacyWind:
		m.Sensor.WindDir = norm02Pi(r.PopI16())
		m.Sensor.WindSpeed = units.NewSpeedFromKmh(float32(r.PopI16()))
		m.Sensor.AvgWindDir = norm02Pi(r.PopI16())
		m.Sensor.AvgWindSpeed = units.NewSpeedFromKmh(float32(r.PopI16()))
	}
}
