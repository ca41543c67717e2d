package nmea

import (
	"testing"

	"github.com/skyvario/varioc/units"
	"github.com/stretchr/testify/assert"
)

var goldenDate = DateTime{Year: 2023, Month: 6, Day: 23, Hour: 12, Minute: 5, Second: 20}

func TestGPGGAGolden(t *testing.T) {
	body := GPGGA(goldenDate, -0.8672530930250163, -0.1498276674644056, HeadingAvail, 23,
		units.NewLengthFromMm(2745900), units.NewLengthFromMm(12300))
	assert.Equal(t, "$GPGGA,120520.00,4941.39652,S,835.06958,W,2,23,1.0,2745.9,M,12.3,M,,*56\r\n", Finish(body))
}

func TestGPRMCGolden(t *testing.T) {
	body := GPRMC(goldenDate, 0.8672530930250163, 0.1498276674644056, HeadingAvail,
		units.NewSpeedFromKt(123.4), units.NewAngleFromDeg(321.4))
	assert.Equal(t, "$GPRMC,120520.00,A,4941.39652,N,835.06958,E,123.4,321.4,230623,,,A*53\r\n", Finish(body))
}

func TestHCHDTGolden(t *testing.T) {
	body := HCHDT(units.NewAngleFromDeg(123.4))
	assert.Equal(t, "$HCHDT,123.4,T*2D\r\n", Finish(body))
}

func TestPLARAGolden(t *testing.T) {
	body := PLARA(units.NewAngleFromDeg(123.4), units.NewAngleFromDeg(98.7), units.NewAngleFromDeg(12.3))
	assert.Equal(t, "$PLARA,123.4,98.7,12.3*4E\r\n", Finish(body))
}

func TestPLARBGolden(t *testing.T) {
	body := PLARB(13.12)
	assert.Equal(t, "$PLARB,13.12*4E\r\n", Finish(body))
}

func TestPLARDGolden(t *testing.T) {
	body := PLARD(units.NewDensityFromGm3(922.54))
	assert.Equal(t, "$PLARD,922.54,M*10\r\n", Finish(body))
}

func TestPLARSGolden(t *testing.T) {
	mc, ok := PLARSReport(KeyMC, 1.7, 0, 0, 0, 0)
	assert.True(t, ok)
	assert.Equal(t, "$PLARS,L,MC,1.7*1A\r\n", Finish(mc))

	bal, _ := PLARSReport(KeyBal, 0, 1.26, 0, 0, 0)
	assert.Equal(t, "$PLARS,L,BAL,1.260*58\r\n", Finish(bal))

	bugs, _ := PLARSReport(KeyBugs, 0, 0, 1.23, 0, 0)
	assert.Equal(t, "$PLARS,L,BUGS,23*3E\r\n", Finish(bugs))

	qnh, _ := PLARSReport(KeyQnh, 0, 0, 0, 1031.37, 0)
	assert.Equal(t, "$PLARS,L,QNH,1031.4*72\r\n", Finish(qnh))

	cir, _ := PLARSReport(KeyCir, 0, 0, 0, 0, 1)
	assert.Equal(t, "$PLARS,L,CIR,1*55\r\n", Finish(cir))
}

func TestPLARVGolden(t *testing.T) {
	body := PLARV(units.Speed(2.50), units.Speed(1.25), units.NewLengthFromMm(305000), units.NewSpeedFromKmh(111.1))
	assert.Equal(t, "$PLARV,2.50,1.25,305,111*5F\r\n", Finish(body))
}

func TestPLARWGolden(t *testing.T) {
	avg := PLARW(units.NewAngleFromDeg(321.0), units.NewSpeedFromKmh(45.6), true)
	assert.Equal(t, "$PLARW,321,46,A,A*6A\r\n", Finish(avg))

	instant := PLARW(units.NewAngleFromDeg(321.0), units.NewSpeedFromKmh(45.6), false)
	assert.Equal(t, "$PLARW,321,46,I,A*62\r\n", Finish(instant))
}

func TestChecksumExcludesDollarAndStar(t *testing.T) {
	sum := Checksum([]byte("$GPRMC,foo*"))
	assert.NotEqual(t, byte(0), sum)
	assert.Equal(t, Checksum([]byte("GPRMC,foo")), sum)
}
