// Package editor implements the on-device settings menu: a small
// hierarchical state machine (Idle -> EditingSection -> EditingFullscreen)
// driven by key events, plus the editable-value descriptors it walks.
package editor

import (
	"github.com/skyvario/varioc/events"
	"github.com/skyvario/varioc/persistence"
)

// State is the editor's position in its navigation hierarchy.
type State uint8

const (
	Idle State = iota
	EditingSection
	EditingFullscreen
)

// ValueKind discriminates what shape of value an Editable carries.
type ValueKind uint8

const (
	KindFloat ValueKind = iota
	KindEnum
	KindList
	KindCommand
)

// Editable describes one settable item in the menu: display metadata plus
// the bounds/step used while scrubbing a float value, and the persistence
// id + echo policy used to commit it. Command editables (Kind ==
// KindCommand) never persist; committing them only enqueues a one-shot
// action via OnCommit.
type Editable struct {
	Name string
	Unit string
	Kind ValueKind

	Min, Max, Step float32

	ID   persistence.ID
	Echo persistence.Echo

	Format func(v float32) string

	// Get, if set, reads the item's live current value when fullscreen
	// editing starts, so scrubbing begins from the current setting rather
	// than from Min. Command editables (Kind == KindCommand) typically
	// leave this nil since there's nothing to read back.
	Get func() float32

	// OnCommit, if set, is called instead of a persistence write (used by
	// command editables, e.g. sensor-box calibration commands).
	OnCommit func(v float32)
}

// Clamp restricts v to [Min, Max], rounding to the nearest Step.
func (e Editable) Clamp(v float32) float32 {
	if e.Step > 0 {
		steps := (v - e.Min) / e.Step
		v = e.Min + round(steps)*e.Step
	}
	if v < e.Min {
		v = e.Min
	}
	if v > e.Max {
		v = e.Max
	}
	return v
}

func round(f float32) float32 {
	if f >= 0 {
		return float32(int(f + 0.5))
	}
	return float32(int(f - 0.5))
}

// Menu is the editor state machine: a list of sections, each a list of
// Editables, navigated by Up/Down/Left/Right/Enter/Esc.
type Menu struct {
	Sections [][]Editable

	state        State
	sectionIdx   int
	itemIdx      int
	editingValue float32
	idleTicks    uint32
}

// IdleTimeoutTicks is how many 100ms ticks of key inactivity auto-commit
// the current edit and return to Idle.
const IdleTimeoutTicks = 50 // 5s

// State returns the menu's current navigation state.
func (m *Menu) State() State { return m.state }

// Tick100ms advances the idle timer; once it reaches IdleTimeoutTicks, a
// fullscreen edit's current value is committed, and from either editing
// state the menu returns to Idle.
func (m *Menu) Tick100ms(commit func(Editable, float32)) {
	if m.state == Idle {
		return
	}
	m.idleTicks++
	if m.idleTicks >= IdleTimeoutTicks {
		if m.state == EditingFullscreen {
			m.commit(commit)
		} else {
			m.state = Idle
			m.idleTicks = 0
		}
	}
}

func (m *Menu) current() Editable {
	return m.Sections[m.sectionIdx][m.itemIdx]
}

func (m *Menu) commit(commit func(Editable, float32)) {
	e := m.current()
	if e.Kind != KindCommand {
		commit(e, m.editingValue)
	} else if e.OnCommit != nil {
		e.OnCommit(m.editingValue)
	}
	m.state = Idle
	m.idleTicks = 0
}

// HandleKey drives the state machine for one key press, invoking commit
// when a fullscreen edit is confirmed with Enter; Esc leaves the fullscreen
// edit without committing.
func (m *Menu) HandleKey(ev events.KeyEvent, commit func(Editable, float32)) {
	if ev.Action != events.KeyPressed {
		return
	}
	m.idleTicks = 0

	switch m.state {
	case Idle:
		if ev.Key == events.KeyEnter {
			m.state = EditingSection
		}
	case EditingSection:
		switch ev.Key {
		case events.KeyUp:
			m.itemIdx = wrapDec(m.itemIdx, len(m.Sections[m.sectionIdx]))
		case events.KeyDown:
			m.itemIdx = wrapInc(m.itemIdx, len(m.Sections[m.sectionIdx]))
		case events.KeyLeft:
			m.sectionIdx = wrapDec(m.sectionIdx, len(m.Sections))
			m.itemIdx = 0
		case events.KeyRight:
			m.sectionIdx = wrapInc(m.sectionIdx, len(m.Sections))
			m.itemIdx = 0
		case events.KeyEnter:
			e := m.current()
			if e.Get != nil {
				m.editingValue = e.Clamp(e.Get())
			} else {
				m.editingValue = e.Min
			}
			m.state = EditingFullscreen
		case events.KeyEsc:
			m.state = Idle
		}
	case EditingFullscreen:
		e := m.current()
		switch ev.Key {
		case events.KeyUp:
			m.editingValue = e.Clamp(m.editingValue + e.Step)
		case events.KeyDown:
			m.editingValue = e.Clamp(m.editingValue - e.Step)
		case events.KeyEnter:
			m.commit(commit)
		case events.KeyEsc:
			m.state = EditingSection
		}
	}
}

func wrapInc(i, n int) int {
	if n == 0 {
		return 0
	}
	return (i + 1) % n
}

func wrapDec(i, n int) int {
	if n == 0 {
		return 0
	}
	return (i - 1 + n) % n
}
