package persistence

import "github.com/skyvario/varioc/canbus"

// Echo controls which external channels are notified after a setting is
// changed locally, so that a value received over one channel is never
// echoed back down the same channel in a loop.
type Echo uint8

const (
	EchoNone Echo = iota
	EchoNmea
	EchoCan
	EchoNmeaAndCan
)

// WantsNmea reports whether this policy echoes to NMEA.
func (e Echo) WantsNmea() bool { return e == EchoNmea || e == EchoNmeaAndCan }

// WantsCan reports whether this policy echoes to CAN.
func (e Echo) WantsCan() bool { return e == EchoCan || e == EchoNmeaAndCan }

// ToCanConfigID maps a persisted setting id to the generic CAN
// system-setting wire id used to broadcast it. Ids with no CAN
// representation (e.g. VarioModeControl, which only ever flows in over
// CAN or NMEA, never announced spontaneously) map to CfgIgnore.
func (id ID) ToCanConfigID() canbus.CanConfigID {
	switch id {
	case Volume:
		return canbus.CfgVolume
	case McCready:
		return canbus.CfgMacCready
	case WaterBallast:
		return canbus.CfgWaterBallast
	case Bugs:
		return canbus.CfgBugs
	case Qnh:
		return canbus.CfgQnh
	case PilotWeight:
		return canbus.CfgPilotWeight
	case TcClimbRate:
		return canbus.CfgTcClimbRate
	case TcSpeedToFly:
		return canbus.CfgTcSpeedToFly
	default:
		return canbus.CfgIgnore
	}
}
