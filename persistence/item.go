package persistence

import "encoding/binary"

// Item is the wire/storage shape of one settings value: an id, a presence
// bit (DatBit — false means "write this slot as absent/default"), and a
// raw 4-byte little-endian cell interpreted per id.
type Item struct {
	ID     ID
	DatBit bool
	Data   [4]byte
}

// DoNotStoreItem is returned when an id has no storage representation.
func DoNotStoreItem() Item { return Item{ID: DoNotStore} }

// FromU8 builds an Item carrying a single byte.
func FromU8(id ID, v uint8) Item {
	it := Item{ID: id, DatBit: true}
	it.Data[0] = v
	return it
}

// FromI8 builds an Item carrying a signed byte.
func FromI8(id ID, v int8) Item { return FromU8(id, uint8(v)) }

// FromU32 builds an Item carrying a little-endian uint32.
func FromU32(id ID, v uint32) Item {
	it := Item{ID: id, DatBit: true}
	binary.LittleEndian.PutUint32(it.Data[:], v)
	return it
}

// FromI32 builds an Item carrying a little-endian int32.
func FromI32(id ID, v int32) Item { return FromU32(id, uint32(v)) }

// FromF32 builds an Item carrying a little-endian float32.
func FromF32(id ID, v float32) Item {
	return FromU32(id, mathFloat32bits(v))
}

// ToU8 reads the item as a single byte.
func (it Item) ToU8() uint8 { return it.Data[0] }

// ToI8 reads the item as a signed byte.
func (it Item) ToI8() int8 { return int8(it.Data[0]) }

// ToU32 reads the item as a little-endian uint32.
func (it Item) ToU32() uint32 { return binary.LittleEndian.Uint32(it.Data[:]) }

// ToI32 reads the item as a little-endian int32.
func (it Item) ToI32() int32 { return int32(it.ToU32()) }

// ToF32 reads the item as a little-endian float32.
func (it Item) ToF32() float32 { return mathFloat32frombits(it.ToU32()) }
