package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEveryFiresPeriodically(t *testing.T) {
	s := New()
	count := 0
	s.Every("tick", 2, func() { count++ })

	for i := 0; i < 6; i++ {
		s.Tick100ms()
	}
	assert.Equal(t, 3, count)
}

func TestAfterFiresOnceAndDebounces(t *testing.T) {
	s := New()
	count := 0
	s.After("flush", 3, func() { count++ })
	s.Tick100ms()
	s.After("flush", 3, func() { count++ }) // re-arm, pushes deadline out
	for i := 0; i < 5; i++ {
		s.Tick100ms()
	}
	assert.Equal(t, 1, count)
}

func TestCancelDisarms(t *testing.T) {
	s := New()
	count := 0
	s.Every("tick", 1, func() { count++ })
	s.Tick100ms()
	s.Cancel("tick")
	for i := 0; i < 5; i++ {
		s.Tick100ms()
	}
	assert.Equal(t, 1, count)
}
