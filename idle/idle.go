// Package idle defines the outbound side-channel events the controller
// emits for the hardware/OS-facing collaborators it never talks to
// directly (EEPROM writer, watchdog, SD card, reset line).
package idle

import "github.com/skyvario/varioc/persistence"

// Kind discriminates the idle event variants.
type Kind uint8

const (
	KindSetEepromItem Kind = iota
	KindClearEepromItems
	KindOutput1
	KindOutput2
	KindSound
	KindDateTime
	KindSdCard
	KindResetDevice
	KindFeedTheDog
	KindUploadFinished
)

// PinState is the logic level of a hardware output pin.
type PinState uint8

const (
	Low PinState = iota
	High
)

// ResetReason explains why ResetDevice was requested.
type ResetReason uint8

const (
	ResetConfigChanged ResetReason = iota
	ResetFactoryReset
	ResetUserProfile
)

// SdCardAction enumerates the SD-card-facing notifications.
type SdCardAction uint8

const (
	SwUpdateAccepted SdCardAction = iota
)

// Event is one outbound notification to an external collaborator.
type Event struct {
	Kind Kind

	Item         persistence.Item   // KindSetEepromItem
	ClearIDs     []persistence.ID   // KindClearEepromItems
	PinState     PinState           // KindOutput1, KindOutput2
	SoundParams  *SoundParams       // KindSound
	DateTimeUnix int64              // KindDateTime
	SdCard       SdCardAction       // KindSdCard
	ResetReason  ResetReason        // KindResetDevice
}

// SoundParams is the per-cycle tone the sound hardware driver should
// synthesize.
type SoundParams struct {
	FrequencyHz float32
	Continuous  bool
	Gain        float32
}

// SetEepromItem requests that item be written to its EEPROM slot.
func SetEepromItem(item persistence.Item) Event {
	return Event{Kind: KindSetEepromItem, Item: item}
}

// ClearEepromItems requests that the given ids be erased/reset to default.
func ClearEepromItems(ids []persistence.ID) Event {
	return Event{Kind: KindClearEepromItems, ClearIDs: ids}
}

// Output1 requests output pin 1 be driven to the given level.
func Output1(s PinState) Event { return Event{Kind: KindOutput1, PinState: s} }

// Output2 requests output pin 2 be driven to the given level.
func Output2(s PinState) Event { return Event{Kind: KindOutput2, PinState: s} }

// Sound requests the sound driver synthesize the given tone.
func Sound(p SoundParams) Event { return Event{Kind: KindSound, SoundParams: &p} }

// DateTime reports the current GPS-derived wall clock to the RTC driver.
func DateTime(unix int64) Event { return Event{Kind: KindDateTime, DateTimeUnix: unix} }

// ResetDevice requests a device reset for the given reason.
func ResetDevice(r ResetReason) Event { return Event{Kind: KindResetDevice, ResetReason: r} }

// FeedTheDog pets the hardware watchdog.
func FeedTheDog() Event { return Event{Kind: KindFeedTheDog} }

// UploadFinished notifies the SD-card driver that a firmware upload has
// completed and the device may leave update mode.
func UploadFinished() Event { return Event{Kind: KindUploadFinished, SdCard: SwUpdateAccepted} }
