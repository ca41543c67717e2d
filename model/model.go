// Package model implements the shared flight-state blackboard: the single
// struct every controller stage reads and writes under one lock, grouped
// the way the original core groups it (live Sensor inputs, derived
// Calculated outputs, persisted Config, transient Control state).
package model

import (
	"github.com/skyvario/varioc/canbus"
	"github.com/skyvario/varioc/polar"
	"github.com/skyvario/varioc/units"
	"github.com/skyvario/varioc/view"
)

// VarioMode selects whether the computed speed-to-fly or the raw vario
// signal drives the primary display/sound output.
type VarioMode uint8

const (
	Vario VarioMode = iota
	SpeedToFly
)

// VarioModeSource records who last changed VarioMode, so a pin override
// can be told apart from an automatic arbitration or an NMEA command.
type VarioModeSource uint8

const (
	SourceAuto VarioModeSource = iota
	SourceInputPin
	SourceNmea
	SourceCan
)

// FlyMode is the glider's current circling/cruise state, reported by the
// sensor box.
type FlyMode uint8

const (
	StraightFlight FlyMode = iota
	Circling
)

// TcrMode tracks the thermal-climb-rate averaging state machine's phase.
type TcrMode uint8

const (
	TcrStraightFlight TcrMode = iota
	TcrTransition
	TcrClimbing
)

// GpsState is the GPS fix confidence, mirrored from nmea.GpsQuality.
type GpsState uint8

const (
	GpsNoFix GpsState = iota
	GpsPosAvail
	GpsHeadingAvail
)

// SystemState summarizes overall sensor/CAN health for the status display.
type SystemState uint8

const (
	NoCom SystemState = iota
	CanOk
	CanAndGpsOk
)

// DisplayActive selects which top-level screen is shown.
type DisplayActive uint8

const (
	DisplayNormal DisplayActive = iota
	DisplayMenu
	DisplayEditor
	DisplayFirmwareUpdate
)

// TypeOfInfo selects which transient info line a temporary condition
// (water ballast draining, gear alarm) should display instead of the
// user's configured info line.
type TypeOfInfo uint8

const (
	InfoNone TypeOfInfo = iota
	InfoWaterBallast
	InfoGearAlarm
)

// Sensor holds the latest values read from the CAN/legacy sensor frames.
type Sensor struct {
	EulerRoll, EulerNick, EulerYaw units.Angle
	TurnRate                       units.AngularVelocity
	TAS, IAS                       units.Speed
	ClimbRate, AvgClimbRate        units.Speed
	WindDir, AvgWindDir            units.Angle
	WindSpeed, AvgWindSpeed        units.Speed
	Pressure                       units.Pressure
	Density                        units.Density
	GForce, VerticalGForce         units.Acceleration
	SlipAngle                      units.Angle
	SupplyVoltage                  float32
	FlyMode                        FlyMode

	GpsDateTime                          [6]int // year,month,day,hour,min,sec
	Latitude, Longitude                  float64 // radians, signed
	Altitude, GeoSep                     units.Length
	GroundTrack                          units.Angle
	GroundSpeed                          units.Speed
	Sats                                 int
	GpsState                            GpsState
}

// Calculated holds values derived by the controller's tick pipeline.
type Calculated struct {
	AV2ClimbRate      units.Speed
	SinkRate          float32
	SpeedToFly        polar.SpeedToFly
	SpeedToFlyDif     units.Speed
	SpeedToFly1s      units.Speed
	ThermalClimbRate  units.Speed
	QneAltitude       units.Length
	SystemState       SystemState
}

// Config holds persisted user settings.
type Config struct {
	Volume           uint8
	McCready         float32 // m/s
	Qnh              units.Pressure
	Bugs             float32
	TcClimbRate      float32
	TcSpeedToFly     float32
	VarioModeControl VarioModeSource
	DisplayTheme     uint8
	InfoActive       TypeOfInfo
	GliderData       polar.GliderData
	GliderIdx        int

	Info1              view.LineView
	Info2              view.LineView
	Rotation           view.Rotation
	CenterFreqHz       float32
	CenterViewCircling view.CenterView
	CenterViewStraight view.CenterView
}

// Control holds transient per-tick controller state not persisted across
// reboots.
type Control struct {
	VarioMode           VarioMode
	SpeedToFlyLimit      units.Speed
	AliveTicks           uint32
	CanDevices           canbus.CanActive
	TcrMode              TcrMode
	TcrStart             units.Length
	Tcr1sClimbTicks      uint32
	Tcr1sTransientTicks  uint32
	ThermalClimbRate     units.Speed
	AvgClimbSlaveTicks   uint32
	LastVarioMode        VarioMode
	DisplayActive        DisplayActive
	LastDisplayActive    DisplayActive
}

// Model is the complete shared blackboard.
type Model struct {
	Sensor     Sensor
	Calculated Calculated
	Config     Config
	Control    Control
}
