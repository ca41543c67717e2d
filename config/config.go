// Package config loads the flight computer's startup configuration: the
// serial ports to open, the preferred CAN virtual device address, the
// legacy 16-bit id ranges to forward, and the initially selected glider.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/skyvario/varioc/canbus"
)

// Config is the on-disk startup configuration, loaded once at boot.
type Config struct {
	CanPort  string `yaml:"can_port"`
	CanBaud  int    `yaml:"can_baud"`
	NmeaPort string `yaml:"nmea_port"`
	NmeaBaud int    `yaml:"nmea_baud"`

	PreferredVDA uint16 `yaml:"preferred_vda"`
	LegacyRanges []Range `yaml:"legacy_ranges"`
	ObjectIDFilter []uint16 `yaml:"object_id_filter"`

	GliderIndex int `yaml:"glider_index"`

	TcClimbRate  float32 `yaml:"tc_climb_rate"`
	TcSpeedToFly float32 `yaml:"tc_speed_to_fly"`
	TcSupplyVoltage float32 `yaml:"tc_supply_voltage"`
}

// Range is a low/high pair of CAN ids, used for the legacy id forwarding
// filter.
type Range struct {
	Low  uint16 `yaml:"low"`
	High uint16 `yaml:"high"`
}

// Default returns the configuration used when no file is present: both
// serial ports disabled, full legacy id range forwarded, no object id
// filtering, PT1 time constants matching the factory defaults.
func Default() Config {
	return Config{
		CanBaud:         115200,
		NmeaBaud:        4800,
		PreferredVDA:    1,
		LegacyRanges:    []Range{{Low: 0x100, High: 0x1FF}},
		TcClimbRate:     2.0,
		TcSpeedToFly:    2.0,
		TcSupplyVoltage: 10.0,
	}
}

// Load reads and parses a YAML configuration file.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// DispatcherRanges converts the configured legacy ranges to canbus.LegacyRange.
func (c Config) DispatcherRanges() []canbus.LegacyRange {
	out := make([]canbus.LegacyRange, 0, len(c.LegacyRanges))
	for _, r := range c.LegacyRanges {
		out = append(out, canbus.LegacyRange{Low: r.Low, High: r.High})
	}
	return out
}
