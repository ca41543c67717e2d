// Package canbus implements the 11-bit CAN frame codec, the classified
// frame sum type and the address-arbitration dispatcher that sits between
// the bus hardware driver and the controller.
package canbus

import "encoding/binary"

// Frame is a fixed 11-bit-ID, 8-byte-payload CAN frame with an explicit
// little-endian read/write cursor. len is always <= 8.
type Frame struct {
	id   uint16
	rtr  bool
	len  uint8
	data [8]byte
}

// EmptyFromID builds a zero-length data frame with the given id.
func EmptyFromID(id uint16) Frame {
	return Frame{id: id}
}

// RemoteTransRq builds a remote-transmission-request frame with the given
// id and declared length (the RTR bit carries no payload on the wire, but
// callers that need a declared DLC pass it here).
func RemoteTransRq(id uint16, length uint8) Frame {
	return Frame{id: id, rtr: true, len: length}
}

// FromSlice builds a frame from raw payload bytes, id and length are
// derived from the slice (capped at 8 bytes).
func FromSlice(id uint16, src []byte) Frame {
	f := Frame{id: id}
	n := len(src)
	if n > 8 {
		n = 8
	}
	f.len = uint8(n)
	copy(f.data[:n], src[:n])
	return f
}

// ID returns the 11-bit CAN identifier.
func (f Frame) ID() uint16 { return f.id }

// SetID overwrites the CAN identifier (used when the dispatcher rewrites an
// outbound frame's id before handing it to the bus driver).
func (f *Frame) SetID(id uint16) { f.id = id }

// IsRTR reports whether the remote-transmission-request bit is set.
func (f Frame) IsRTR() bool { return f.rtr }

// DLC returns the declared data length, 0..8.
func (f Frame) DLC() uint8 { return f.len }

// Data returns the payload bytes actually present (len(Data()) == DLC()).
func (f Frame) Data() []byte { return f.data[:f.len] }

// IsHeartbeat reports whether this frame's id is a heartbeat id: id >= 0x400
// and the low nibble is zero.
func (f Frame) IsHeartbeat() bool {
	return f.id >= 0x400 && f.id&0xF == 0
}

// GenericID returns the generic function id (low nibble) when id >= 0x400.
func (f Frame) GenericID() (uint16, bool) {
	if f.id >= 0x400 {
		return f.id & 0xF, true
	}
	return 0, false
}

// SpecificID returns the specific record id (low nibble) when id < 0x400.
func (f Frame) SpecificID() (uint16, bool) {
	if f.id < 0x400 {
		return f.id & 0xF, true
	}
	return 0, false
}

// VDA returns the virtual device address encoded in bits 4..9 of the id.
func (f Frame) VDA() uint16 {
	return (f.id & 0x3F0) >> 4
}

// ReadU32 reads a little-endian uint32 at the given byte offset.
func (f Frame) ReadU32(idx int) uint32 { return binary.LittleEndian.Uint32(f.data[idx : idx+4]) }

// ReadU16 reads a little-endian uint16 at the given byte offset.
func (f Frame) ReadU16(idx int) uint16 { return binary.LittleEndian.Uint16(f.data[idx : idx+2]) }

// ReadU8 reads a single byte at the given offset.
func (f Frame) ReadU8(idx int) uint8 { return f.data[idx] }

// ReadI32 reads a little-endian int32 at the given byte offset.
func (f Frame) ReadI32(idx int) int32 { return int32(binary.LittleEndian.Uint32(f.data[idx : idx+4])) }

// ReadI16 reads a little-endian int16 at the given byte offset.
func (f Frame) ReadI16(idx int) int16 { return int16(binary.LittleEndian.Uint16(f.data[idx : idx+2])) }

// ReadI8 reads a single signed byte at the given offset.
func (f Frame) ReadI8(idx int) int8 { return int8(f.data[idx]) }

// ReadF32 reads a little-endian float32 at the given byte offset.
func (f Frame) ReadF32(idx int) float32 {
	return float32frombits(binary.LittleEndian.Uint32(f.data[idx : idx+4]))
}

// PushU32 appends a little-endian uint32 and returns the updated frame.
func (f Frame) PushU32(v uint32) Frame {
	idx := f.len
	f.len += 4
	binary.LittleEndian.PutUint32(f.data[idx:f.len], v)
	return f
}

// PushU16 appends a little-endian uint16 and returns the updated frame.
func (f Frame) PushU16(v uint16) Frame {
	idx := f.len
	f.len += 2
	binary.LittleEndian.PutUint16(f.data[idx:f.len], v)
	return f
}

// PushU8 appends a single byte and returns the updated frame.
func (f Frame) PushU8(v uint8) Frame {
	f.data[f.len] = v
	f.len++
	return f
}

// PushI32 appends a little-endian int32 and returns the updated frame.
func (f Frame) PushI32(v int32) Frame { return f.PushU32(uint32(v)) }

// PushI16 appends a little-endian int16 and returns the updated frame.
func (f Frame) PushI16(v int16) Frame { return f.PushU16(uint16(v)) }

// PushI8 appends a single signed byte and returns the updated frame.
func (f Frame) PushI8(v int8) Frame { return f.PushU8(uint8(v)) }

// PushF32 appends a little-endian float32 and returns the updated frame.
func (f Frame) PushF32(v float32) Frame { return f.PushU32(float32bits(v)) }

// PushSlice appends raw bytes and returns the updated frame.
func (f Frame) PushSlice(src []byte) Frame {
	idx := f.len
	f.len += uint8(len(src))
	copy(f.data[idx:f.len], src)
	return f
}

// Reader returns a read cursor over the frame payload.
func (f Frame) Reader() *Reader {
	return &Reader{data: f.data[:f.len]}
}

// Reader is a little-endian read cursor over a frame payload, used to
// decode fixed-layout sensor/GPS/legacy records field by field.
type Reader struct {
	data []byte
	pos  int
}

// PopU32 reads the next little-endian uint32 and advances the cursor.
func (r *Reader) PopU32() uint32 {
	idx := r.pos
	r.pos += 4
	return binary.LittleEndian.Uint32(r.data[idx:r.pos])
}

// PopU16 reads the next little-endian uint16 and advances the cursor.
func (r *Reader) PopU16() uint16 {
	idx := r.pos
	r.pos += 2
	return binary.LittleEndian.Uint16(r.data[idx:r.pos])
}

// PopU8 reads the next byte and advances the cursor.
func (r *Reader) PopU8() uint8 {
	idx := r.pos
	r.pos++
	return r.data[idx]
}

// PopI32 reads the next little-endian int32 and advances the cursor.
func (r *Reader) PopI32() int32 { return int32(r.PopU32()) }

// PopI16 reads the next little-endian int16 and advances the cursor.
func (r *Reader) PopI16() int16 { return int16(r.PopU16()) }

// PopI8 reads the next signed byte and advances the cursor.
func (r *Reader) PopI8() int8 { return int8(r.PopU8()) }

// PopF32 reads the next little-endian float32. It returns ok=false without
// advancing the field's semantic value when the bit pattern is non-finite,
// per spec.md §4.3.4 ("pop_f32() returns None on non-finite values").
func (r *Reader) PopF32() (float32, bool) {
	idx := r.pos
	r.pos += 4
	v := float32frombits(binary.LittleEndian.Uint32(r.data[idx:r.pos]))
	if isFiniteF32(v) {
		return v, true
	}
	return 0, false
}

// PopF64 reads the next little-endian float64, with the same non-finite
// discipline as PopF32.
func (r *Reader) PopF64() (float64, bool) {
	idx := r.pos
	r.pos += 8
	bits := binary.LittleEndian.Uint64(r.data[idx:r.pos])
	v := float64frombits(bits)
	if isFiniteF64(v) {
		return v, true
	}
	return 0, false
}
