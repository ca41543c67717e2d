package canbus

// Kind distinguishes the three shapes of classified frame exchanged between
// the dispatcher and the controller.
type Kind uint8

const (
	// KindLegacy is a 16-bit-id frame forwarded byte for byte, used by the
	// older sensor/audio/frontend protocol generation.
	KindLegacy Kind = iota
	// KindSpecific is a frame whose low nibble is a specific_id and whose
	// originating CanDevice's object_id selects the field layout.
	KindSpecific
	// KindGeneric is a frame whose low nibble is a generic_id (heartbeat,
	// firmware version, system setting, binary transfer).
	KindGeneric
)

// Classified is the dispatcher's output: a Frame plus enough metadata to
// route it without re-deriving the id arithmetic downstream.
type Classified struct {
	Kind       Kind
	Can        Frame
	SpecificID uint16 // valid when Kind == KindSpecific
	ObjectID   uint16 // valid when Kind == KindSpecific
	GenericID  uint16 // valid when Kind == KindGeneric
}

// Legacy wraps a raw frame as a legacy-classified frame.
func Legacy(f Frame) Classified {
	return Classified{Kind: KindLegacy, Can: f}
}

// Specific builds a specific-classified frame from a 4-bit record id and the
// object id carried by the originating device, with the given payload
// bytes appended.
func Specific(specificID, objectID uint16, push func(Frame) Frame) Classified {
	f := push(Frame{})
	return Classified{Kind: KindSpecific, Can: f, SpecificID: specificID, ObjectID: objectID}
}

// Generic builds a generic-classified frame from a 4-bit function id, with
// the given payload bytes appended.
func Generic(genericID uint16, push func(Frame) Frame) Classified {
	f := push(Frame{})
	return Classified{Kind: KindGeneric, Can: f, GenericID: genericID}
}

// HeartbeatID returns the heartbeat frame id for a virtual device address.
func HeartbeatID(vda uint16) uint16 { return (vda << 4) + 0x400 }

// BaseID returns the base id used for specific frames from a virtual device
// address.
func BaseID(vda uint16) uint16 { return vda << 4 }

// Rewrite computes the wire id this classified frame should carry once it
// leaves the local node at the given virtual device address, mirroring the
// dispatcher's outbound id composition: Legacy frames pass their id through
// unchanged, Generic frames land at HeartbeatID(vda)+genericID, Specific
// frames land at BaseID(vda)+specificID.
func (c Classified) Rewrite(vda uint16) Frame {
	out := c.Can
	switch c.Kind {
	case KindGeneric:
		out.SetID(HeartbeatID(vda) + c.GenericID)
	case KindSpecific:
		out.SetID(BaseID(vda) + c.SpecificID)
	}
	return out
}
