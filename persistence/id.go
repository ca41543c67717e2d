// Package persistence implements the stable-id settings store: a fixed
// enumeration whose ordinal is the EEPROM slot number, typed read/write
// accessors on top of a 4-byte value cell, and the debounced echo fan-out
// to NMEA and CAN after a setting changes.
package persistence

// ID is a stable settings identifier. Its ordinal IS the EEPROM slot
// number for ids below LastItem, so the enum must never be reordered —
// new settings are appended before LastItem.
type ID uint16

const (
	Volume ID = iota
	McCready
	WaterBallast
	PilotWeight
	Glider
	VarioModeControl
	DisplayTheme
	Qnh
	Bugs
	Display
	TcClimbRate
	TcSpeedToFly
	Info1
	Info2
	Rotation
	CenterFrequency
	CenterViewCircling
	CenterViewStraight
	EmptyMass
	MaxBallast
	ReferenceWeight
	PolarValueV1
	PolarValueV2
	PolarValueV3
	PolarValueSi1
	PolarValueSi2
	PolarValueSi3
	// LastItem marks the end of the EEPROM-backed range; ids at or above
	// it are not stored in EEPROM slots.
	LastItem

	UserProfile ID = 65533
	DeleteAll   ID = 65534
	// DoNotStore is the sentinel for "this id resolves to nothing
	// storable" (an unrecognized config id, or a write-only command).
	DoNotStore ID = 65535
)

// DeleteConfigList is the set of ids cleared by a config (not factory)
// reset.
var DeleteConfigList = []ID{
	McCready, WaterBallast, Bugs, Qnh, PilotWeight, VarioModeControl,
	TcClimbRate, TcSpeedToFly, Volume, DisplayTheme, Display, Info1, Info2,
	Rotation, CenterFrequency, CenterViewCircling, CenterViewStraight,
}

// SpecificPolarSettings is the set of ids cleared whenever the glider
// selection changes, since they describe the previous glider's measured
// polar rather than a user preference.
var SpecificPolarSettings = []ID{
	EmptyMass, MaxBallast, ReferenceWeight,
	PolarValueV1, PolarValueV2, PolarValueV3,
	PolarValueSi1, PolarValueSi2, PolarValueSi3,
}

// StoredInEeprom reports whether id occupies a real EEPROM slot.
func (id ID) StoredInEeprom() bool { return id < LastItem }
