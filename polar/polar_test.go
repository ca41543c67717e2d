package polar

import (
	"testing"

	"github.com/skyvario/varioc/units"
	"github.com/stretchr/testify/assert"
)

var ls3 = BasicGliderData{
	Name:            "LS-3",
	WingArea:        10.5,
	MaxSpeed:        270.0,
	EmptyMass:       280.0,
	MaxBallast:      121.0,
	ReferenceWeight: 396.0,
	Handicap:        107,
	PolarValues:     [3][2]float32{{80.0, -0.604}, {105.0, -0.700}, {180.0, -1.939}},
}

// pilot90 is the pilot load the reference expectations below are computed
// with (280 kg empty + 90 kg pilot).
var pilot90 = units.NewMassFromKg(90.0)

func referenceLoaded() (Polar, GliderData) {
	gd := GliderData{Basic: ls3, Bugs: 1.0, PilotWeight: pilot90}
	var p Polar
	p.RecalcGlider(gd)
	p.Recalc(gd, units.DensityAtNN)
	return p, gd
}

func TestGlidingRatioAtReference(t *testing.T) {
	p, _ := referenceLoaded()
	ratio := p.GlidingRatio(units.NewSpeedFromKmh(101.86))
	assert.InDelta(t, 41.68, ratio, 0.1)

	ratio180 := p.GlidingRatio(units.NewSpeedFromKmh(180))
	assert.InDelta(t, 24.56, ratio180, 0.1)
}

func TestMinSinkSpeed(t *testing.T) {
	p, _ := referenceLoaded()
	assert.InDelta(t, 74.77, p.MinSinkSpeed().KmH(), 0.5)
}

func TestSinkRateAtReference(t *testing.T) {
	p, _ := referenceLoaded()
	assert.InDelta(t, -0.613, p.SinkRate(units.NewSpeedFromKmh(90)), 0.01)
	assert.InDelta(t, -1.059, p.SinkRate(units.NewSpeedFromKmh(135)), 0.01)
	assert.InDelta(t, -2.64, p.SinkRate(units.NewSpeedFromKmh(200)), 0.05)
}

func TestSpeedToFlyAtReference(t *testing.T) {
	p, _ := referenceLoaded()

	assert.InDelta(t, 100.2, p.SpeedToFly(0, 0).TAS().KmH(), 0.5)
	assert.InDelta(t, 74.77, p.SpeedToFly(0.62, 0).TAS().KmH(), 0.5)
	assert.InDelta(t, 100.2, p.SpeedToFly(1, 1).TAS().KmH(), 0.5)
	assert.InDelta(t, 132.9, p.SpeedToFly(-1, 0).TAS().KmH(), 0.5)
	assert.InDelta(t, 159.0, p.SpeedToFly(-2, 0).TAS().KmH(), 0.5)
	assert.InDelta(t, 181.4, p.SpeedToFly(-3, 0).TAS().KmH(), 0.5)

	// Clamped to v_min / max_speed.
	assert.InDelta(t, 74.77, p.SpeedToFly(10, 0).TAS().KmH(), 0.5)
	assert.InDelta(t, 270.0, p.SpeedToFly(-99, 0).TAS().KmH(), 0.5)
}

func TestSpeedToFlyWithBallast(t *testing.T) {
	gd := GliderData{Basic: ls3, Bugs: 1.0, PilotWeight: pilot90}
	gd.WaterBallast = units.NewMassFromKg(121.0)
	var p Polar
	p.RecalcGlider(gd)
	p.Recalc(gd, units.DensityAtNN)

	assert.InDelta(t, 115.4, p.SpeedToFly(0, 0).TAS().KmH(), 0.5)
	assert.InDelta(t, 199.15, p.SpeedToFly(-3, 0).TAS().KmH(), 0.5)
}

func TestSpeedToFlyWithPilotWeight(t *testing.T) {
	gd := GliderData{Basic: ls3, Bugs: 1.0, PilotWeight: units.NewMassFromKg(120.0)}
	var p Polar
	p.RecalcGlider(gd)
	p.Recalc(gd, units.DensityAtNN)

	assert.InDelta(t, 104.2, p.SpeedToFly(0, 0).TAS().KmH(), 0.5)
}

func TestSpeedToFlyWithLighterEmptyMass(t *testing.T) {
	lighter := ls3
	lighter.EmptyMass = 260.0
	gd := GliderData{Basic: lighter, Bugs: 1.0, PilotWeight: pilot90}
	var p Polar
	p.RecalcGlider(gd)
	p.Recalc(gd, units.DensityAtNN)

	assert.InDelta(t, 97.4, p.SpeedToFly(0, 0).TAS().KmH(), 0.5)
}

func TestGlidingRatioWithBugs(t *testing.T) {
	gd := GliderData{Basic: ls3, Bugs: 1.1, PilotWeight: pilot90}
	var p Polar
	p.RecalcGlider(gd)
	p.Recalc(gd, units.DensityAtNN)

	assert.InDelta(t, 37.7, p.GlidingRatio(units.NewSpeedFromKmh(105)), 0.5)
}

func TestSpeedToFlyAtAltitudeDensity(t *testing.T) {
	gd := GliderData{Basic: ls3, Bugs: 1.0, PilotWeight: pilot90}
	var p Polar
	p.RecalcGlider(gd)
	p.Recalc(gd, units.Density(0.913))

	stf := p.SpeedToFly(0, 0)
	assert.InDelta(t, 100.2, stf.IAS().KmH(), 0.5)
	assert.InDelta(t, 116.0, stf.TAS().KmH(), 0.5)
}

func TestBallastFractionRoundTrip(t *testing.T) {
	gd := GliderData{Basic: ls3}
	gd.SetBallastFraction(0.5)
	assert.InDelta(t, 60.5, gd.WaterBallast.Kg(), 0.01)
	assert.InDelta(t, 0.5, gd.BallastFraction(), 0.01)
}
