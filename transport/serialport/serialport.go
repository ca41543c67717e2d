// Package serialport opens the two serial lines the flight computer core
// talks over: a CAN-bridge USB device and the NMEA output port, using the
// same tarm/serial wrapping as the rest of the corpus.
package serialport

import (
	"time"

	"github.com/tarm/serial"
)

// Config mirrors the fields of serial.Config that callers actually need to
// set, keeping the tarm/serial import contained to this package.
type Config struct {
	Name        string
	Baud        int
	ReadTimeout time.Duration
}

// DefaultReadTimeout matches the corpus's own note: the underlying driver
// cannot be configured below 100ms.
const DefaultReadTimeout = 100 * time.Millisecond

// Open opens a serial line for either the CAN bridge or the NMEA output.
func Open(cfg Config) (*serial.Port, error) {
	timeout := cfg.ReadTimeout
	if timeout <= 0 {
		timeout = DefaultReadTimeout
	}
	return serial.OpenPort(&serial.Config{
		Name:        cfg.Name,
		Baud:        cfg.Baud,
		ReadTimeout: timeout,
	})
}
