package canbus

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestDispatcher() *Dispatcher {
	return NewDispatcher(
		5,
		[]LegacyRange{{Low: 0x100, High: 0x1ff}},
		[]uint16{uint16(ObjectSensor), uint16(ObjectGPS)},
		rand.New(rand.NewSource(42)),
	)
}

func TestDispatcherStartsInStartupMode(t *testing.T) {
	d := newTestDispatcher()
	assert.Equal(t, OpStartup, d.OpMode)
}

func TestDispatcherClaimsFreeVDA(t *testing.T) {
	d := newTestDispatcher()
	frames := d.Tick(0)
	assert.Len(t, frames, 1, "first tick should arm and send an RTR")

	// Drive the countdown to completion: no collisions reported, so the
	// stage should walk down to 1 and settle into OpNormal.
	now := uint64(0)
	for i := 0; i < 20 && d.OpMode == OpStartup; i++ {
		now += startupFirstWaitMaxUs + 1
		d.startupTick(now)
	}
	assert.Equal(t, OpNormal, d.OpMode)
	assert.Equal(t, uint16(5), d.VDA())
}

func TestClassifyLegacyFrame(t *testing.T) {
	d := newTestDispatcher()
	d.OpMode = OpNormal
	c, ok := d.classify(EmptyFromID(0x101))
	assert.True(t, ok)
	assert.Equal(t, KindLegacy, c.Kind)
}

func TestClassifyGenericFrame(t *testing.T) {
	d := newTestDispatcher()
	d.OpMode = OpNormal
	c, ok := d.classify(EmptyFromID(0x613))
	assert.True(t, ok)
	assert.Equal(t, KindGeneric, c.Kind)
	assert.Equal(t, uint16(3), c.GenericID)
}

func TestClassifyGenericHeartbeatNotForwarded(t *testing.T) {
	d := newTestDispatcher()
	d.OpMode = OpNormal
	_, ok := d.classify(EmptyFromID(0x610))
	assert.False(t, ok)
}

func TestClassifySpecificFrameRequiresFirstAndFilter(t *testing.T) {
	d := newTestDispatcher()
	d.OpMode = OpNormal

	vda := uint16(2)
	d.devices[vda] = Device{ObjectID: uint16(ObjectSensor), IsFirst: true, TimeToDeath: 3}

	id := BaseID(vda) + 4
	c, ok := d.classify(EmptyFromID(id))
	assert.True(t, ok)
	assert.Equal(t, KindSpecific, c.Kind)
	assert.Equal(t, uint16(4), c.SpecificID)
	assert.Equal(t, uint16(ObjectSensor), c.ObjectID)

	d.devices[vda].IsFirst = false
	_, ok = d.classify(EmptyFromID(id))
	assert.False(t, ok, "non-first duplicate device must be dropped")
}

func TestRxDataTracksHeartbeatAndResetsOnCollision(t *testing.T) {
	d := newTestDispatcher()
	d.OpMode = OpNormal
	d.vda = 7

	hb := EmptyFromID(HeartbeatID(7)).PushU16(uint16(ObjectSensor))
	_, ok := d.RxData(hb)
	assert.False(t, ok, "heartbeats are never forwarded")
	assert.Equal(t, uint16(ObjectSensor), d.devices[7].ObjectID, "heartbeat records the sender's object id")
	assert.Equal(t, OpStartup, d.OpMode, "own address collision restarts arbitration")
}

func TestDeviceSecTickExpiresObjectID(t *testing.T) {
	dev := Device{ObjectID: 9, TimeToDeath: 1}
	dev.SecTick()
	assert.Equal(t, uint16(0), dev.ObjectID)
}

func TestQueueTxAndDrain(t *testing.T) {
	d := newTestDispatcher()
	d.vda = 3
	d.OpMode = OpNormal

	ok := d.QueueTx(Generic(1, func(f Frame) Frame { return f.PushU8(1) }))
	assert.True(t, ok)

	frames := d.normTick()
	assert.Len(t, frames, 1)
	assert.Equal(t, HeartbeatID(3)+1, frames[0].ID())
}
