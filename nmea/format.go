package nmea

import (
	"fmt"
	"math"

	"github.com/skyvario/varioc/units"
)

// GpsQuality mirrors the three-valued fix confidence the GPS sensor
// reports, used both as the GGA quality indicator and to gate whether a
// position/heading is trustworthy enough to publish.
type GpsQuality uint8

const (
	NoGps GpsQuality = iota
	PosAvail
	HeadingAvail
)

// ggaQuality maps a GpsQuality to the NMEA GGA fix-quality digit.
func (q GpsQuality) ggaQuality() int {
	switch q {
	case HeadingAvail:
		return 2
	case PosAvail:
		return 1
	default:
		return 0
	}
}

// DateTime is the GPS-derived UTC timestamp used by GPRMC/GPGGA.
type DateTime struct {
	Year, Month, Day    int
	Hour, Minute, Second int
}

func (d DateTime) timeField() string {
	return fmt.Sprintf("%02d%02d%02d.00", d.Hour, d.Minute, d.Second)
}

func (d DateTime) dateField() string {
	return fmt.Sprintf("%02d%02d%02d", d.Day, d.Month, d.Year%100)
}

// formatCoord renders an absolute-value coordinate in DM.mmmmm form: the
// integer degree with no leading zero, immediately followed by minutes
// zero-padded to two integer digits and five decimal places.
func formatCoord(absDeg float64) string {
	d := int(absDeg)
	min := (absDeg - float64(d)) * 60
	return fmt.Sprintf("%d%08.5f", d, min)
}

func latField(rad float64) (string, byte) {
	hemi := byte('N')
	if rad < 0 {
		hemi = 'S'
	}
	deg := math.Abs(rad) * 180 / math.Pi
	return formatCoord(deg), hemi
}

func lonField(rad float64) (string, byte) {
	hemi := byte('E')
	if rad < 0 {
		hemi = 'W'
	}
	deg := math.Abs(rad) * 180 / math.Pi
	return formatCoord(deg), hemi
}

// GPRMC formats the recommended-minimum GPS sentence.
func GPRMC(dt DateTime, latRad, lonRad float64, quality GpsQuality, groundSpeed units.Speed, track units.Angle) string {
	lat, latH := latField(latRad)
	lon, lonH := lonField(lonRad)
	status := byte('V')
	if quality != NoGps {
		status = 'A'
	}
	return fmt.Sprintf("$GPRMC,%s,%c,%s,%c,%s,%c,%.1f,%.1f,%s,,,A",
		dt.timeField(), status, lat, latH, lon, lonH,
		groundSpeed.Kt(), track.Deg(), dt.dateField())
}

// GPGGA formats the fix-data sentence.
func GPGGA(dt DateTime, latRad, lonRad float64, quality GpsQuality, sats int, altitude, geoSep units.Length) string {
	lat, latH := latField(latRad)
	lon, lonH := lonField(lonRad)
	return fmt.Sprintf("$GPGGA,%s,%s,%c,%s,%c,%d,%d,1.0,%.1f,M,%.1f,M,,",
		dt.timeField(), lat, latH, lon, lonH, quality.ggaQuality(), sats,
		altitude.M(), geoSep.M())
}

// HCHDT formats the magnetic-heading sentence.
func HCHDT(yaw units.Angle) string {
	return fmt.Sprintf("$HCHDT,%.1f,T", yaw.Deg())
}

// PLARA formats the attitude (roll/pitch/yaw) sentence.
func PLARA(roll, nick, yaw units.Angle) string {
	return fmt.Sprintf("$PLARA,%.1f,%.1f,%.1f", roll.Deg(), nick.Deg(), yaw.Deg())
}

// PLARB formats the supply-voltage sentence.
func PLARB(supplyVolts float32) string {
	return fmt.Sprintf("$PLARB,%.2f", supplyVolts)
}

// PLARD formats the air-density sentence.
func PLARD(density units.Density) string {
	return fmt.Sprintf("$PLARD,%.2f,M", density.GM3())
}

// PLARV formats the vario sentence.
func PLARV(climbRate, avgClimbRate units.Speed, qneAltitude units.Length, tas units.Speed) string {
	return fmt.Sprintf("$PLARV,%.2f,%.2f,%.0f,%.0f", climbRate.MS(), avgClimbRate.MS(), qneAltitude.M(), tas.KmH())
}

// PLARW formats a wind sentence; average selects the "A" vs "I" kind flag.
func PLARW(angle units.Angle, speed units.Speed, average bool) string {
	kind := byte('I')
	if average {
		kind = 'A'
	}
	return fmt.Sprintf("$PLARW,%.0f,%.0f,%c,A", angle.Deg(), speed.KmH(), kind)
}

// PLARSKey identifies which setting a $PLARS sentence reports or carries.
type PLARSKey string

const (
	KeyMC   PLARSKey = "MC"
	KeyBal  PLARSKey = "BAL"
	KeyBugs PLARSKey = "BUGS"
	KeyQnh  PLARSKey = "QNH"
	KeyCir  PLARSKey = "CIR"
)

// PLARSReport formats a "report current value" ($PLARS,L,...) sentence for
// the given setting. cirWire carries the CIR key's value already converted
// to the wire's 0=SpeedToFly/1=Vario encoding (the inverse of the internal
// VarioMode ordinal); callers reporting any other key may pass 0.
func PLARSReport(key PLARSKey, mcCreadyMS float32, ballastRatio float32, bugsFactor float32, qnhHpa float32, cirWire float32) (string, bool) {
	switch key {
	case KeyMC:
		return fmt.Sprintf("$PLARS,L,MC,%.1f", mcCreadyMS), true
	case KeyBal:
		return fmt.Sprintf("$PLARS,L,BAL,%.3f", ballastRatio), true
	case KeyBugs:
		return fmt.Sprintf("$PLARS,L,BUGS,%.0f", (bugsFactor-1.0)*100.0), true
	case KeyQnh:
		return fmt.Sprintf("$PLARS,L,QNH,%.1f", qnhHpa), true
	case KeyCir:
		return fmt.Sprintf("$PLARS,L,CIR,%.0f", cirWire), true
	default:
		return "", false
	}
}

// Finish appends the trailing "*HH\r\n" checksum footer to a sentence body
// (which must start with '$' and carry no footer yet).
func Finish(body string) string {
	sum := Checksum([]byte(body))
	return fmt.Sprintf("%s*%02X\r\n", body, sum)
}
