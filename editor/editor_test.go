package editor

import (
	"testing"

	"github.com/skyvario/varioc/events"
	"github.com/skyvario/varioc/persistence"
	"github.com/stretchr/testify/assert"
)

func newMenu() *Menu {
	return &Menu{Sections: [][]Editable{
		{{Name: "MC", ID: persistence.McCready, Min: 0, Max: 5, Step: 0.1}},
		{{Name: "Volume", ID: persistence.Volume, Min: 0, Max: 10, Step: 1}},
	}}
}

func press(m *Menu, k events.Key, commit func(Editable, float32)) {
	m.HandleKey(events.KeyEvent{Key: k, Action: events.KeyPressed}, commit)
}

func TestEditorNavigatesAndCommits(t *testing.T) {
	m := newMenu()
	assert.Equal(t, Idle, m.State())

	press(m, events.KeyEnter, nil)
	assert.Equal(t, EditingSection, m.State())

	press(m, events.KeyEnter, nil)
	assert.Equal(t, EditingFullscreen, m.State())

	press(m, events.KeyUp, nil)
	press(m, events.KeyUp, nil)

	var committed Editable
	var committedVal float32
	press(m, events.KeyEnter, func(e Editable, v float32) {
		committed = e
		committedVal = v
	})

	assert.Equal(t, Idle, m.State())
	assert.Equal(t, persistence.McCready, committed.ID)
	assert.InDelta(t, 0.2, committedVal, 0.001)
}

func TestEditorEscReturnsOneLevel(t *testing.T) {
	m := newMenu()
	press(m, events.KeyEnter, nil)
	press(m, events.KeyEnter, nil)
	assert.Equal(t, EditingFullscreen, m.State())

	press(m, events.KeyEsc, nil)
	assert.Equal(t, EditingSection, m.State())

	press(m, events.KeyEsc, nil)
	assert.Equal(t, Idle, m.State())
}

func TestIdleTimeoutAutoCommits(t *testing.T) {
	m := newMenu()
	press(m, events.KeyEnter, nil)
	press(m, events.KeyEnter, nil)

	committed := false
	for i := 0; i < IdleTimeoutTicks+1; i++ {
		m.Tick100ms(func(Editable, float32) { committed = true })
	}
	assert.True(t, committed)
	assert.Equal(t, Idle, m.State())
}
