// Package view implements the Viewable selection contract: the small,
// EEPROM-stable enums that pick which derived value a display line or
// center panel shows, and the clamped from/to-ordinal conversions the
// settings menu needs to let a user step through them. No pixel drawing
// happens here — that stays out of scope.
package view

// LineView selects what a top/bottom info line displays. Its ordinal is
// also the EEPROM-stable value persisted for Info1/Info2, so the sequence
// must never be reordered; new viewables are appended before
// lastLineViewNotInUse.
type LineView uint8

const (
	LineNone LineView = iota
	LineAverageClimbRate
	LineFlightLevel
	LineTrueCourse
	LineUtcTime
	LineWindAndDelta
	LineDriftAngle
	LineWindAndAvgWind
	lastLineViewNotInUse
)

// Placement selects which of the two fixed, differently-sized selection
// lists a line view is chosen from (the bottom line has one extra
// wind-related entry the top line doesn't).
type Placement uint8

const (
	PlacementTop Placement = iota
	PlacementBottom
)

var topLineViews = []LineView{
	LineNone, LineAverageClimbRate, LineDriftAngle, LineFlightLevel, LineTrueCourse, LineUtcTime,
}

var bottomLineViews = []LineView{
	LineNone, LineAverageClimbRate, LineDriftAngle, LineFlightLevel, LineTrueCourse, LineUtcTime,
	LineWindAndAvgWind, LineWindAndDelta,
}

func linesFor(p Placement) []LineView {
	if p == PlacementBottom {
		return bottomLineViews
	}
	return topLineViews
}

// LineViewFromU32 clamps a raw stored/wire value into a valid LineView,
// mapping anything at or beyond the last real variant to the last one
// instead of overflowing, the same discipline the EEPROM restore path
// needs when reading a value a newer firmware wrote.
func LineViewFromU32(value uint32) LineView {
	if value >= uint32(lastLineViewNotInUse)-1 {
		return LineView(uint8(lastLineViewNotInUse) - 1)
	}
	return LineView(value)
}

// LineViewMaxSorted returns the highest valid menu-sorted index for
// placement.
func LineViewMaxSorted(p Placement) int { return len(linesFor(p)) - 1 }

// LineViewFromSorted returns the LineView at the menu-sorted index idx for
// placement, or LineNone if idx is out of range.
func LineViewFromSorted(idx int, p Placement) LineView {
	lvs := linesFor(p)
	if idx < 0 || idx >= len(lvs) {
		return LineNone
	}
	return lvs[idx]
}

// SortedIndex returns v's position in placement's menu-sorted list, or 0 if
// v doesn't appear in it (shouldn't happen for a value that round-tripped
// through LineViewFromU32).
func (v LineView) SortedIndex(p Placement) int {
	for idx, lv := range linesFor(p) {
		if lv == v {
			return idx
		}
	}
	return 0
}

// Name returns the display label for v.
func (v LineView) Name() string {
	switch v {
	case LineAverageClimbRate:
		return "Avg Climb Rate"
	case LineDriftAngle:
		return "Drift Angle"
	case LineFlightLevel:
		return "Flight Level"
	case LineTrueCourse:
		return "True Course"
	case LineUtcTime:
		return "UTC Time"
	case LineWindAndAvgWind:
		return "Wind, avg Wind"
	case LineWindAndDelta:
		return "Wind and Delta"
	default:
		return "None"
	}
}

// Rotation selects the display's physical mounting orientation.
type Rotation uint8

const (
	Rotate0 Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

// RotationFromU32 clamps a raw stored value into a valid Rotation.
func RotationFromU32(value uint32) Rotation {
	if value > uint32(Rotate270) {
		return Rotate0
	}
	return Rotation(value)
}

// Name returns the display label for r.
func (r Rotation) Name() string {
	switch r {
	case Rotate90:
		return "90"
	case Rotate180:
		return "180"
	case Rotate270:
		return "270"
	default:
		return "0"
	}
}

// CenterType selects which flight phase a CenterView setting applies to.
type CenterType uint8

const (
	CenterCircling CenterType = iota
	CenterStraight
)

// CenterView selects what the center info panel shows; unlike LineView this
// repo's original_source didn't carry the enum's defining file, so the
// variant set below is an invented but EEPROM-stable stand-in covering the
// values a glide computer's center panel plausibly needs (see DESIGN.md).
type CenterView uint8

const (
	CenterNone CenterView = iota
	CenterAltitude
	CenterGroundSpeed
	CenterGlideRatio
	CenterVario
	lastCenterViewNotInUse
)

var centerViews = []CenterView{
	CenterNone, CenterAltitude, CenterGroundSpeed, CenterGlideRatio, CenterVario,
}

// CenterViewFromU32 clamps a raw stored/wire value into a valid CenterView.
func CenterViewFromU32(value uint32) CenterView {
	if value >= uint32(lastCenterViewNotInUse)-1 {
		return CenterView(uint8(lastCenterViewNotInUse) - 1)
	}
	return CenterView(value)
}

// CenterViewMaxSorted returns the highest valid menu-sorted index. Both
// CenterTypes share one list in this stand-in enum (see CenterView's
// doc comment), so the parameter only mirrors the original's
// per-CenterType max() signature.
func CenterViewMaxSorted(CenterType) int { return len(centerViews) - 1 }

// CenterViewFromSorted returns the CenterView at menu-sorted index idx.
func CenterViewFromSorted(idx int) CenterView {
	if idx < 0 || idx >= len(centerViews) {
		return CenterNone
	}
	return centerViews[idx]
}

// SortedIndex returns v's position in the menu-sorted list.
func (v CenterView) SortedIndex() int {
	for idx, cv := range centerViews {
		if cv == v {
			return idx
		}
	}
	return 0
}

// Name returns the display label for v.
func (v CenterView) Name() string {
	switch v {
	case CenterAltitude:
		return "Altitude"
	case CenterGroundSpeed:
		return "Ground Speed"
	case CenterGlideRatio:
		return "Glide Ratio"
	case CenterVario:
		return "Vario"
	default:
		return "None"
	}
}
