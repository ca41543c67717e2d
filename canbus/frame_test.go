package canbus

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHeartbeat(t *testing.T) {
	cases := []struct {
		id   uint16
		want bool
	}{
		{0x400, true},
		{0x610, true},
		{0x611, false},
		{0x300, false},
	}
	for _, c := range cases {
		f := EmptyFromID(c.id)
		assert.Equal(t, c.want, f.IsHeartbeat(), "id %#x", c.id)
	}
}

func TestGenericID(t *testing.T) {
	cases := []struct {
		id   uint16
		want uint16
		ok   bool
	}{
		{0x400, 0, true},
		{0x613, 3, true},
		{0x61f, 15, true},
		{0x3ff, 0, false},
		{0x123, 0, false},
	}
	for _, c := range cases {
		f := EmptyFromID(c.id)
		got, ok := f.GenericID()
		assert.Equal(t, c.ok, ok, "id %#x", c.id)
		if c.ok {
			assert.Equal(t, c.want, got, "id %#x", c.id)
		}
	}
}

func TestSpecificID(t *testing.T) {
	cases := []struct {
		id   uint16
		want uint16
		ok   bool
	}{
		{0x400, 0, false},
		{0x613, 0, false},
		{0x31f, 15, true},
		{0x3ff, 15, true},
		{0x123, 3, true},
	}
	for _, c := range cases {
		f := EmptyFromID(c.id)
		got, ok := f.SpecificID()
		assert.Equal(t, c.ok, ok, "id %#x", c.id)
		if c.ok {
			assert.Equal(t, c.want, got, "id %#x", c.id)
		}
	}
}

func TestPushAndReadRoundTrip(t *testing.T) {
	f := Frame{}
	f = f.PushF32(1.5)
	f = f.PushU16(42)
	f = f.PushI8(-3)

	assert.Equal(t, uint8(7), f.DLC())
	assert.InDelta(t, 1.5, f.ReadF32(0), 0.0001)
	assert.Equal(t, uint16(42), f.ReadU16(4))
	assert.Equal(t, int8(-3), f.ReadI8(6))
}

func TestReaderPopF32NonFinite(t *testing.T) {
	f := Frame{}
	f = f.PushF32(float32(math.NaN()))
	f = f.PushF32(2.25)

	r := f.Reader()
	_, ok := r.PopF32()
	assert.False(t, ok)
	v, ok := r.PopF32()
	assert.True(t, ok)
	assert.InDelta(t, 2.25, v, 0.0001)
}

func TestVDA(t *testing.T) {
	f := EmptyFromID(HeartbeatID(5))
	assert.Equal(t, uint16(5), f.VDA())
}

func TestClassifiedRewrite(t *testing.T) {
	g := Generic(3, func(f Frame) Frame { return f.PushU8(1) })
	rewritten := g.Rewrite(2)
	assert.Equal(t, HeartbeatID(2)+3, rewritten.ID())

	s := Specific(5, 2, func(f Frame) Frame { return f.PushU8(9) })
	rewrittenS := s.Rewrite(2)
	assert.Equal(t, BaseID(2)+5, rewrittenS.ID())

	l := Legacy(EmptyFromID(0x101))
	rewrittenL := l.Rewrite(2)
	assert.Equal(t, uint16(0x101), rewrittenL.ID())
}
