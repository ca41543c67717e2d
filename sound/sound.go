// Package sound maps flight state onto the audible vario tone: a
// frequency, a continuous-vs-pulsed duty cycle and a gain, re-evaluated
// every 100ms but only forwarded to the sound hardware driver when it
// changes by more than a hysteresis bound.
package sound

import "math"

// Scenario overrides the normal climb/speed-to-fly mapping entirely with a
// fixed alarm tone.
type Scenario uint8

const (
	ScenarioNone Scenario = iota
	ScenarioGearAlarm
	ScenarioLowBattery
)

const (
	alarmFrequencyHz = 2000.0
	alarmGain        = 127
)

// Params is the (frequency, continuous-vs-pulsed, gain) triple the sound
// hardware driver consumes.
type Params struct {
	FrequencyHz uint16
	Continuous  bool
	Gain        int8
}

// Mapper tracks the center frequency/exponential-gain constant and the last
// emitted Params, so Sound() can report whether the new value differs
// enough to be worth sending.
type Mapper struct {
	CenterFreqHz float32
	K            float32
	HysteresisHz float32

	last    Params
	hasLast bool
	scenario Scenario
}

// SetScenario arms or clears an alarm override.
func (m *Mapper) SetScenario(s Scenario, active bool) {
	if active {
		m.scenario = s
	} else if m.scenario == s {
		m.scenario = ScenarioNone
	}
}

// Vario computes the tone for vario mode: frequency rises exponentially
// with climb rate, continuous tone when climbing or level, pulsed with a
// magnitude-scaled duty cycle when sinking.
func (m *Mapper) Vario(climbRateMS float32) (Params, bool) {
	if m.scenario != ScenarioNone {
		return m.alarm(), m.changed(m.alarm())
	}
	freq := m.CenterFreqHz * float32(math.Exp(float64(m.K*climbRateMS)))
	p := Params{
		FrequencyHz: clampFreq(freq),
		Continuous:  climbRateMS >= 0,
		Gain:        100,
	}
	return p, m.changed(p)
}

// SpeedToFly computes the tone for speed-to-fly mode: frequency tracks the
// normalized deviation from the computed optimum, pulsed when flying too
// slow, continuous at or above it.
func (m *Mapper) SpeedToFly(diffNorm float32) (Params, bool) {
	if m.scenario != ScenarioNone {
		return m.alarm(), m.changed(m.alarm())
	}
	freq := m.CenterFreqHz * float32(math.Exp(float64(m.K*diffNorm)))
	p := Params{
		FrequencyHz: clampFreq(freq),
		Continuous:  diffNorm >= 0,
		Gain:        100,
	}
	return p, m.changed(p)
}

func (m *Mapper) alarm() Params {
	return Params{FrequencyHz: alarmFrequencyHz, Continuous: false, Gain: alarmGain}
}

// changed reports whether p differs from the last emitted Params by more
// than HysteresisHz (frequency) or in continuous/gain, and records p as
// the new baseline when it does.
func (m *Mapper) changed(p Params) bool {
	if !m.hasLast {
		m.last = p
		m.hasLast = true
		return true
	}
	diff := math.Abs(float64(p.FrequencyHz) - float64(m.last.FrequencyHz))
	changed := diff > float64(m.HysteresisHz) || p.Continuous != m.last.Continuous || p.Gain != m.last.Gain
	if changed {
		m.last = p
	}
	return changed
}

func clampFreq(hz float32) uint16 {
	if hz < 0 {
		return 0
	}
	if hz > 65535 {
		return 65535
	}
	return uint16(hz)
}
