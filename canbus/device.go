package canbus

// deviceTTL is the number of one-second ticks a heard device stays alive in
// the table before its object_id is forgotten.
const deviceTTL = 3

// Device tracks the last-seen object_id of one of the 64 possible virtual
// device addresses on the bus.
type Device struct {
	TimeToDeath uint8
	IsFirst     bool
	ObjectID    uint16
}

// SecTick ages the device by one second, clearing its object_id once the
// TTL reaches zero.
func (d *Device) SecTick() {
	if d.TimeToDeath > 0 {
		d.TimeToDeath--
		if d.TimeToDeath == 0 {
			d.ObjectID = 0
		}
	}
}

// SetObjectID records a heartbeat's object_id and resets the TTL. It is a
// no-op for non-heartbeat frames.
func (d *Device) SetObjectID(f Frame) {
	if !f.IsHeartbeat() {
		return
	}
	d.ObjectID = f.ReadU16(0)
	d.TimeToDeath = deviceTTL
}
