package controller

import (
	"fmt"

	"github.com/skyvario/varioc/editor"
	"github.com/skyvario/varioc/model"
	"github.com/skyvario/varioc/persistence"
	"github.com/skyvario/varioc/polar"
)

// BuildMenu constructs the on-device settings menu against m and wires it
// as the Controller's c.Menu, so subsequent key events reach editor.Menu
// instead of being a no-op. Grounded on the editable descriptors in
// model/editable/model.rs: each section groups the settings the original
// shows together (flight settings, audio/CAN-wide settings, glider
// selection).
func (c *Controller) BuildMenu(m *model.Model) {
	c.Menu = &editor.Menu{Sections: [][]editor.Editable{
		{
			{
				Name: "MC", Unit: "m/s", Kind: editor.KindFloat,
				Min: 0, Max: 9.9, Step: 0.1,
				ID: persistence.McCready, Echo: persistence.EchoNmeaAndCan,
				Get:    func() float32 { return m.Config.McCready },
				Format: func(v float32) string { return fmt.Sprintf("%.1f", v) },
			},
			{
				Name: "Bugs", Unit: "%", Kind: editor.KindFloat,
				Min: 0, Max: 50, Step: 1,
				ID: persistence.Bugs, Echo: persistence.EchoNmeaAndCan,
				Get:    func() float32 { return (m.Config.Bugs - 1.0) * 100.0 },
				Format: func(v float32) string { return fmt.Sprintf("%.0f", v) },
			},
			{
				Name: "QNH", Unit: "hPa", Kind: editor.KindFloat,
				Min: 900, Max: 1100, Step: 0.1,
				ID: persistence.Qnh, Echo: persistence.EchoNmeaAndCan,
				Get:    func() float32 { return m.Config.Qnh.Hpa() },
				Format: func(v float32) string { return fmt.Sprintf("%.1f", v) },
			},
		},
		{
			{
				Name: "Volume", Unit: "", Kind: editor.KindFloat,
				Min: 0, Max: 10, Step: 1,
				ID: persistence.Volume, Echo: persistence.EchoNone,
				Get:    func() float32 { return float32(m.Config.Volume) },
				Format: func(v float32) string { return fmt.Sprintf("%.0f", v) },
			},
			{
				Name: "Center Frequency", Unit: "Hz", Kind: editor.KindFloat,
				Min: 500, Max: 1000, Step: 1,
				ID: persistence.CenterFrequency, Echo: persistence.EchoCan,
				Get:    func() float32 { return m.Config.CenterFreqHz },
				Format: func(v float32) string { return fmt.Sprintf("%.0f", v) },
			},
		},
		{
			{
				Name: "Glider", Unit: "", Kind: editor.KindList,
				Min: 0, Max: float32(len(polar.Store) - 1), Step: 1,
				ID: persistence.Glider, Echo: persistence.EchoNone,
				Get:    func() float32 { return float32(m.Config.GliderIdx) },
				Format: gliderName,
			},
		},
	}}
}

func gliderName(v float32) string {
	idx := int(v)
	if idx < 0 || idx >= len(polar.Store) {
		return ""
	}
	return polar.Store[idx].Name
}
