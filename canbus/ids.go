package canbus

// SpecialID enumerates the low-nibble ids used by the legacy audio/frontend
// generation of frames (id < 0x400, specific_id 0..2).
type SpecialID uint8

const (
	SpecialSound SpecialID = iota
	SpecialVoltTemp
	SpecialAvgClimbRates
	SpecialIgnore SpecialID = 0xFF
)

// GenericID enumerates the low-nibble ids used by generic frames
// (id >= 0x400).
type GenericID uint8

const (
	GenericHeartbeat GenericID = iota
	GenericHwFwVersion
	GenericSetSysSetting
	GenericBinaryTransfer
	GenericIgnore
)

// RemoteConfig distinguishes a read request from a write when a CAN peer
// asks this node to change a persisted setting.
type RemoteConfig uint8

const (
	RemoteConfigGet RemoteConfig = iota
	RemoteConfigSet
)

// CanConfigID is the wire identifier for a SetSysSetting payload, shared by
// the generic-frame system-setting channel and, via persistence.ID's
// ToCanConfigID conversion, by the persisted-settings echo path.
type CanConfigID uint16

const (
	CfgVolume CanConfigID = iota
	CfgMacCready
	CfgWaterBallast
	CfgBugs
	CfgQnh
	CfgPilotWeight
	CfgVarioModeControl
	CfgTcClimbRate
	CfgTcSpeedToFly
	CfgVarioMode
	CfgIgnore CanConfigID = 10

	// Extended sensor calibration ids.
	CfgSensTiltRoll   CanConfigID = 0x2000
	CfgSensTiltPitch  CanConfigID = 0x2001
	CfgSensTiltYaw    CanConfigID = 0x2002
	CfgPitotOffset    CanConfigID = 0x2003
	CfgPitotSpan      CanConfigID = 0x2004
	CfgQnhDelta       CanConfigID = 0x2005
	CfgMagAutoCalib   CanConfigID = 0x2006
	CfgVarioTc        CanConfigID = 0x2007
	CfgVarioIntTc     CanConfigID = 0x2008
	CfgWindTc         CanConfigID = 0x2009
	CfgMeanWindTc     CanConfigID = 0x200a
	CfgGnssConfig     CanConfigID = 0x200b
	CfgAntBaselen     CanConfigID = 0x200c
	CfgAntSlaveDown   CanConfigID = 0x200d
	CfgAntSlaveRight  CanConfigID = 0x200e
	CfgVarioPressTc   CanConfigID = 0x200f

	// Command ids.
	CfgCmdMeasure1               CanConfigID = 0x3000
	CfgCmdMeasure2               CanConfigID = 0x3001
	CfgCmdMeasure3               CanConfigID = 0x3002
	CfgCmdCalcSensorOrientation  CanConfigID = 0x3003
	CfgCmdFineTuneCalibration    CanConfigID = 0x3004
	CfgCmdReset                  CanConfigID = 0x3005
)

// ObjectID enumerates the fixed device roles assigned an object_id in the
// CanDevice liveness table.
type ObjectID uint16

const (
	ObjectArbitration ObjectID = iota
	ObjectConfig
	ObjectSensor
	ObjectGPS
	ObjectFrontend
)

// Field offsets (specific_id, 0..0xf) within an ObjectSensor specific frame.
const (
	SensorEulerRollNick     uint16 = 0
	SensorEulerYawTurnRate  uint16 = 1
	SensorTasIas            uint16 = 2
	SensorVarioAvVario      uint16 = 3
	SensorWindDirSpeed      uint16 = 4
	SensorAvWindDirSpeed    uint16 = 5
	SensorAmbPressAirDens   uint16 = 6
	SensorGForceVerticalGf  uint16 = 7
	SensorSlipPitchAngle    uint16 = 8
	SensorUbattCircleMode   uint16 = 9
	SensorSystemStateGitTag uint16 = 0x0a
	SensorConfigValue       uint16 = 0x0f
)

// Field offsets (specific_id, 0..0xf) within an ObjectGPS specific frame.
const (
	GpsDateTime          uint16 = 0
	GpsLatitude          uint16 = 1
	GpsLongitude         uint16 = 2
	GpsAltitudeGeoSep     uint16 = 3
	GpsGroundTrackSpeed   uint16 = 4
	GpsNoSatFixType       uint16 = 5
)

// Legacy 16-bit frame ids (sensor generation, < 0x200).
const (
	LegacyEulerAngles   uint16 = 0x101
	LegacyAirspeed      uint16 = 0x102
	LegacyVario         uint16 = 0x103
	LegacyGpsDateTime   uint16 = 0x104
	LegacyGpsLatLon     uint16 = 0x105
	LegacyGpsAlt        uint16 = 0x106
	LegacyGpsTrkSpd     uint16 = 0x107
	LegacyWind          uint16 = 0x108
	LegacyAtmosphere    uint16 = 0x109
	LegacyGpsSats       uint16 = 0x10a
	LegacyAcceleration  uint16 = 0x10b
	LegacyTurnCoord     uint16 = 0x10c
	LegacySystemState   uint16 = 0x10d
	LegacyVdd           uint16 = 0x112
)

// CanActive is a bitflag set recording which legacy devices have been heard
// from within the current 1-second window (control.can_devices).
type CanActive uint8

const (
	CanActiveNone           CanActive = 0x00
	CanActiveSensorboxLegacy CanActive = 0x01
)
