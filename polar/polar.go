// Package polar implements the glider performance model: fitting a
// quadratic sink-rate curve from three measured polar points, rescaling it
// for the current weight/density/bugs state, and solving for speed-to-fly.
package polar

import (
	"math"

	"github.com/skyvario/varioc/units"
)

// Koefs is a fitted quadratic sink(v) = a*v^2 + b*v + c, plus the minimum
// flyable airspeed and the reference weight the fit was computed at.
type Koefs struct {
	A, B, C float32
	VMin    units.Speed
	Weight  units.Mass
}

// BasicGliderData is the handicap-sheet data for one glider type: three
// (speed km/h, sink m/s) polar points plus mass/area bounds.
type BasicGliderData struct {
	Name            string
	WingArea        float32 // m^2
	MaxSpeed        float32 // km/h
	EmptyMass       float32 // kg
	MaxBallast      float32 // kg
	ReferenceWeight float32 // kg
	Handicap        int
	PolarValues     [3][2]float32 // [v km/h, sink m/s]
}

// GliderData is the pilot/loading state layered on top of a BasicGliderData
// selection.
type GliderData struct {
	Basic        BasicGliderData
	PilotWeight  units.Mass
	WaterBallast units.Mass
	Bugs         float32
}

// BallastFraction returns the water ballast carried as a fraction of the
// glider's max ballast capacity, 0..1.
func (g GliderData) BallastFraction() float32 {
	if g.Basic.MaxBallast <= 0 {
		return 0
	}
	return g.WaterBallast.Kg() / g.Basic.MaxBallast
}

// SetBallastFraction sets WaterBallast from a 0..1 fraction of max ballast.
func (g *GliderData) SetBallastFraction(fraction float32) {
	g.WaterBallast = units.NewMassFromKg(fraction * g.Basic.MaxBallast)
}

// Polar is the live flight-physics model: Curr is rescaled every second for
// the current weight/density/bugs, Refer is the unscaled fit recomputed
// only when the glider selection changes.
type Polar struct {
	MaxSpeed     units.Speed
	DensityRatio float32
	Curr         Koefs
	Refer        Koefs
}

// RecalcGlider refits Refer (and resets Curr to match) from a glider's
// three polar points. Each point is (speed km/h, sink m/s); sink is
// negative (a descent rate).
func (p *Polar) RecalcGlider(gd GliderData) {
	v1 := gd.Basic.PolarValues[0][0] / 3.6
	v2 := gd.Basic.PolarValues[1][0] / 3.6
	v3 := gd.Basic.PolarValues[2][0] / 3.6
	w1 := gd.Basic.PolarValues[0][1]
	w2 := gd.Basic.PolarValues[1][1]
	w3 := gd.Basic.PolarValues[2][1]

	a := ((v2-v3)*(w1-w3) + (v3-v1)*(w2-w3)) /
		(v1*v1*(v2-v3) + v2*v2*(v3-v1) + v3*v3*(v1-v2))
	b := (w2 - w3 - a*(v2*v2-v3*v3)) / (v2 - v3)
	c := w3 - a*v3*v3 - b*v3
	vMin := units.Speed(-b / a / 2.0)

	p.Refer = Koefs{A: a, B: b, C: c, VMin: vMin, Weight: units.NewMassFromKg(gd.Basic.ReferenceWeight)}
	p.Curr = p.Refer
	p.MaxSpeed = units.NewSpeedFromKmh(gd.Basic.MaxSpeed)
	p.DensityRatio = 1.0
}

// Recalc rescales Curr for the current pilot/ballast/bugs load and air
// density. Must be called after RecalcGlider has established Refer.
func (p *Polar) Recalc(gd GliderData, density units.Density) {
	weight := gd.Basic.EmptyMass + gd.PilotWeight.Kg() + gd.WaterBallast.Kg()
	ratioWeight := float32(math.Sqrt(float64(weight / p.Refer.Weight.Kg())))
	p.DensityRatio = float32(math.Sqrt(float64(units.DensityAtNN.KgM3() / density.KgM3())))
	ratio := ratioWeight * p.DensityRatio

	bugs := gd.Bugs
	p.Curr.A = bugs * p.Refer.A / ratio
	p.Curr.B = bugs * p.Refer.B
	p.Curr.C = bugs * p.Refer.C * ratio
	p.Curr.VMin = units.Speed(p.Refer.VMin.MS() * ratio)
	p.Curr.Weight = units.NewMassFromKg(weight)
}

// clampSpeed clamps a TAS (m/s) into [Curr.VMin, MaxSpeed], mapping NaN to
// VMin the same way the original treats an unsolvable quadratic.
func (p Polar) clampSpeed(v float32) units.Speed {
	if math.IsNaN(float64(v)) {
		return p.Curr.VMin
	}
	if v > p.MaxSpeed.MS() {
		return p.MaxSpeed
	}
	if v < p.Curr.VMin.MS() {
		return p.Curr.VMin
	}
	return units.Speed(v)
}

// SinkRate returns the sink rate (negative, m/s) at the given true airspeed.
func (p Polar) SinkRate(tas units.Speed) float32 {
	v := p.clampSpeed(tas.MS()).MS()
	return v*v*p.Curr.A + v*p.Curr.B + p.Curr.C
}

// MinSinkSpeed returns the TAS at minimum sink.
func (p Polar) MinSinkSpeed() units.Speed {
	return p.clampSpeed(-p.Curr.B / p.Curr.A / 2.0)
}

// VMin returns the clamped minimum flyable TAS.
func (p Polar) VMin() units.Speed { return p.Curr.VMin }

// GlidingRatio returns -speed/sink_rate (dimensionless, e.g. 40 means 40:1).
func (p Polar) GlidingRatio(speed units.Speed) float32 {
	sink := p.SinkRate(speed)
	if sink == 0 {
		return 0
	}
	return -speed.MS() / sink
}

// AirspeedFromTAS converts a true airspeed to indicated airspeed using the
// current density ratio.
func (p Polar) AirspeedFromTAS(tas units.Speed) units.Speed {
	return units.Speed(tas.MS() / p.DensityRatio)
}

// SpeedToFly is the TAS/IAS pair returned by the MacCready solver.
type SpeedToFly struct {
	tas units.Speed
	dr  float32
}

// TAS returns the solved true airspeed.
func (s SpeedToFly) TAS() units.Speed { return s.tas }

// IAS returns the solved indicated airspeed.
func (s SpeedToFly) IAS() units.Speed { return units.Speed(s.tas.MS() / s.dr) }

// SpeedToFly solves MacCready's equation for the given net lift (met, m/s,
// positive climbing) and MacCready ring setting (mc_cready, m/s).
func (p Polar) SpeedToFly(met, mcCready float32) SpeedToFly {
	val := (p.Curr.C + met - mcCready) / p.Curr.A
	var stf float32
	if val > 0 {
		stf = float32(math.Sqrt(float64(val)))
	}
	tas := p.clampSpeed(stf)
	return SpeedToFly{tas: tas, dr: p.DensityRatio}
}
