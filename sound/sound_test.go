package sound

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newMapper() *Mapper {
	return &Mapper{CenterFreqHz: 500, K: 0.5, HysteresisHz: 2}
}

func TestVarioContinuousWhenClimbing(t *testing.T) {
	m := newMapper()
	p, changed := m.Vario(1.0)
	assert.True(t, changed)
	assert.True(t, p.Continuous)
	assert.Greater(t, p.FrequencyHz, uint16(500))
}

func TestVarioPulsedWhenSinking(t *testing.T) {
	m := newMapper()
	p, _ := m.Vario(-1.0)
	assert.False(t, p.Continuous)
	assert.Less(t, p.FrequencyHz, uint16(500))
}

func TestHysteresisSuppressesTinyChanges(t *testing.T) {
	m := newMapper()
	_, changed := m.Vario(1.0)
	assert.True(t, changed)
	_, changed = m.Vario(1.0001)
	assert.False(t, changed, "near-identical climb rate should not re-emit")
}

func TestAlarmOverridesMapping(t *testing.T) {
	m := newMapper()
	m.SetScenario(ScenarioGearAlarm, true)
	p, changed := m.Vario(1.0)
	assert.True(t, changed)
	assert.Equal(t, uint16(2000), p.FrequencyHz)
	assert.Equal(t, int8(127), p.Gain)

	m.SetScenario(ScenarioGearAlarm, false)
	p, _ = m.Vario(1.0)
	assert.NotEqual(t, uint16(2000), p.FrequencyHz)
}
