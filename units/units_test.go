package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpeedConversions(t *testing.T) {
	s := NewSpeedFromKmh(100.0)
	assert.InDelta(t, 27.7778, float64(s.MS()), 0.001)
	assert.InDelta(t, 100.0, float64(s.KmH()), 0.001)

	kt := NewSpeedFromKt(100.0)
	assert.InDelta(t, 185.2, float64(kt.KmH()), 0.1)
}

func TestAngleNormalization(t *testing.T) {
	a := Angle(-1)
	n := a.Norm02Pi()
	assert.GreaterOrEqual(t, float64(n), 0.0)
	assert.Less(t, float64(n), 2*math.Pi)

	b := Angle(4)
	m := b.NormMPiPPi()
	assert.GreaterOrEqual(t, float64(m), -math.Pi)
	assert.LessOrEqual(t, float64(m), math.Pi)
}

func TestPressureAndDensity(t *testing.T) {
	p := NewPressureFromHpa(1013.25)
	assert.InDelta(t, 101325.0, float64(p.Pa()), 1)

	d := NewDensityFromGm3(1225)
	assert.InDelta(t, 1.225, float64(d.KgM3()), 0.001)
}

func TestLengthDivSpeed(t *testing.T) {
	l := Length(100)
	s := Speed(10)
	d := l.Div(s)
	assert.InDelta(t, 10.0, float64(d.Seconds()), 0.001)

	assert.Equal(t, Duration(0), l.Div(Speed(0)))
}
