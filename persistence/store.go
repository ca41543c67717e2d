package persistence

// DebounceMillis is the delay after the last change before pending ids are
// flushed to EEPROM/NMEA, so that a user dragging a slider doesn't cause a
// write per tick.
const DebounceMillis = 500

// PendingEcho accumulates the ids touched since the last flush, split by
// destination (EEPROM is always written; NMEA only for ids whose Echo
// policy requested it), and tracks whether the debounce timer should be
// (re)armed.
type PendingEcho struct {
	eeprom map[ID]struct{}
	nmea   map[ID]struct{}
	armed  bool
}

// NewPendingEcho returns an empty PendingEcho.
func NewPendingEcho() *PendingEcho {
	return &PendingEcho{eeprom: make(map[ID]struct{}), nmea: make(map[ID]struct{})}
}

// Push records that id changed under the given echo policy and arms the
// debounce timer. The caller is responsible for actually (re)scheduling
// the DebounceMillis callback on every Push, so the flush follows the last
// change.
func (p *PendingEcho) Push(id ID, echo Echo) {
	p.eeprom[id] = struct{}{}
	if echo.WantsNmea() {
		p.nmea[id] = struct{}{}
	}
	p.armed = true
}

// Armed reports whether a flush is pending.
func (p *PendingEcho) Armed() bool { return p.armed }

// Drain clears the pending sets and returns the ids to store to EEPROM and
// the ids to echo over NMEA. Call this from the debounce timer callback.
func (p *PendingEcho) Drain() (eeprom, nmea []ID) {
	eeprom = make([]ID, 0, len(p.eeprom))
	for id := range p.eeprom {
		eeprom = append(eeprom, id)
	}
	nmea = make([]ID, 0, len(p.nmea))
	for id := range p.nmea {
		nmea = append(nmea, id)
	}
	p.eeprom = make(map[ID]struct{})
	p.nmea = make(map[ID]struct{})
	p.armed = false
	return eeprom, nmea
}
