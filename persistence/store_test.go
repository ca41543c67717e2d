package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPendingEchoArmsAndDrains(t *testing.T) {
	p := NewPendingEcho()
	assert.False(t, p.Armed())

	p.Push(McCready, EchoNmeaAndCan)
	p.Push(Volume, EchoNone)
	assert.True(t, p.Armed())

	eeprom, nmea := p.Drain()
	assert.ElementsMatch(t, []ID{McCready, Volume}, eeprom)
	assert.ElementsMatch(t, []ID{McCready}, nmea)
	assert.False(t, p.Armed())
}

func TestEchoPolicyWants(t *testing.T) {
	assert.False(t, EchoNone.WantsNmea())
	assert.False(t, EchoNone.WantsCan())
	assert.True(t, EchoNmea.WantsNmea())
	assert.False(t, EchoNmea.WantsCan())
	assert.True(t, EchoCan.WantsCan())
	assert.True(t, EchoNmeaAndCan.WantsNmea())
	assert.True(t, EchoNmeaAndCan.WantsCan())
}

func TestToCanConfigID(t *testing.T) {
	assert.Equal(t, uint16(1), uint16(McCready.ToCanConfigID()))
	assert.NotEqual(t, uint16(VarioModeControl.ToCanConfigID()), uint16(9))
}

func TestItemRoundTripF32(t *testing.T) {
	it := FromF32(Qnh, 1013.25)
	assert.InDelta(t, 1013.25, it.ToF32(), 0.001)
}
