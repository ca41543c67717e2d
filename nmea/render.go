package nmea

import (
	"github.com/skyvario/varioc/model"
	"github.com/skyvario/varioc/persistence"
)

// idToPLARSKey maps the small set of persistence ids that have a $PLARS
// wire representation; everything else has nothing to echo over NMEA.
func idToPLARSKey(id persistence.ID) (PLARSKey, bool) {
	switch id {
	case persistence.McCready:
		return KeyMC, true
	case persistence.WaterBallast:
		return KeyBal, true
	case persistence.Bugs:
		return KeyBugs, true
	case persistence.Qnh:
		return KeyQnh, true
	case persistence.VarioModeControl:
		return KeyCir, true
	default:
		return "", false
	}
}

// cirWireValue converts the internal VarioMode ordinal to the $PLARS CIR
// wire encoding, which is inverted relative to it (0=SpeedToFly,
// 1=Vario).
func cirWireValue(mode model.VarioMode) float32 {
	if mode == model.SpeedToFly {
		return 0
	}
	return 1
}

// Render formats the sentence Cycle.Next() selected into a complete,
// checksummed wire sentence. Returns ok=false for SentenceNone or a
// SentencePLARS whose id has no wire representation.
func Render(m *model.Model, kind SentenceKind, id persistence.ID) (string, bool) {
	dt := DateTime{
		Year: m.Sensor.GpsDateTime[0], Month: m.Sensor.GpsDateTime[1], Day: m.Sensor.GpsDateTime[2],
		Hour: m.Sensor.GpsDateTime[3], Minute: m.Sensor.GpsDateTime[4], Second: m.Sensor.GpsDateTime[5],
	}
	quality := GpsQuality(m.Sensor.GpsState)

	switch kind {
	case SentenceGPRMC:
		return Finish(GPRMC(dt, m.Sensor.Latitude, m.Sensor.Longitude, quality, m.Sensor.GroundSpeed, m.Sensor.GroundTrack)), true
	case SentenceGPGGA:
		return Finish(GPGGA(dt, m.Sensor.Latitude, m.Sensor.Longitude, quality, m.Sensor.Sats, m.Sensor.Altitude, m.Sensor.GeoSep)), true
	case SentenceHCHDT:
		return Finish(HCHDT(m.Sensor.EulerYaw)), true
	case SentencePLARW:
		return Finish(PLARW(m.Sensor.AvgWindDir, m.Sensor.AvgWindSpeed, true)), true
	case SentencePLARWInstant:
		return Finish(PLARW(m.Sensor.WindDir, m.Sensor.WindSpeed, false)), true
	case SentencePLARD:
		return Finish(PLARD(m.Sensor.Density)), true
	case SentencePLARB:
		return Finish(PLARB(m.Sensor.SupplyVoltage)), true
	case SentencePLARA:
		return Finish(PLARA(m.Sensor.EulerRoll, m.Sensor.EulerNick, m.Sensor.EulerYaw)), true
	case SentencePLARV:
		return Finish(PLARV(m.Sensor.ClimbRate, m.Sensor.AvgClimbRate, m.Calculated.QneAltitude, m.Sensor.TAS)), true
	case SentencePLARS:
		key, ok := idToPLARSKey(id)
		if !ok {
			return "", false
		}
		body, ok := PLARSReport(key, m.Config.McCready, m.Config.GliderData.BallastFraction(), m.Config.Bugs, m.Config.Qnh.Hpa(), cirWireValue(m.Control.VarioMode))
		if !ok {
			return "", false
		}
		return Finish(body), true
	default:
		return "", false
	}
}
