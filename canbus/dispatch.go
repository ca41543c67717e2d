package canbus

import (
	"math/rand"

	"github.com/skyvario/varioc/queue"
)

// OpMode is the dispatcher's address-arbitration state.
type OpMode uint8

const (
	// OpStartup is the bus-join arbitration phase: the dispatcher counts
	// down a preferred stage id, listening for other claims, before
	// settling on a free virtual device address.
	OpStartup OpMode = iota
	// OpNormal is steady-state operation: heartbeats are tracked, frames
	// are classified and forwarded per the legacy/generic/specific rules.
	OpNormal
)

const (
	startupInitialStage  = 15
	startupRetransMinUs  = 34_000
	startupRetransMaxUs  = 67_000
	startupFirstWaitMinUs = 500_000
	startupFirstWaitMaxUs = 600_000
)

// LegacyRange is an inclusive [Low, High] id range forwarded as legacy
// frames without further classification.
type LegacyRange struct{ Low, High uint16 }

// Dispatcher implements the address-arbitration state machine and the
// inbound/outbound frame classification described for the bus front end:
// on startup it claims a free virtual device address by counting down a
// stage id and listening for collisions, then in normal operation it
// tracks device heartbeats, classifies inbound frames into
// legacy/generic/specific and rewrites outbound ones to carry this node's
// claimed address.
type Dispatcher struct {
	OpMode OpMode

	preferredVDA uint16
	vda          uint16

	startupStage        uint8
	nextStartupInstantUs *uint64
	receivedAdgs        [16]bool

	devices [64]Device

	legacyFilter   []LegacyRange
	objectIDFilter map[uint16]struct{}

	txFrames *queue.Queue[Classified]

	rng *rand.Rand
}

// NewDispatcher builds a Dispatcher that will attempt to claim
// preferredVDA, forwarding any frame whose id falls in one of legacyRanges
// as KindLegacy and any specific frame whose device object_id is in
// objectIDFilter.
func NewDispatcher(preferredVDA uint16, legacyRanges []LegacyRange, objectIDFilter []uint16, rng *rand.Rand) *Dispatcher {
	filter := make(map[uint16]struct{}, len(objectIDFilter))
	for _, id := range objectIDFilter {
		filter[id] = struct{}{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Dispatcher{
		OpMode:         OpStartup,
		preferredVDA:   preferredVDA,
		startupStage:   startupInitialStage,
		legacyFilter:   legacyRanges,
		objectIDFilter: filter,
		txFrames:       queue.New[Classified](32),
		rng:            rng,
	}
}

// VDA returns the virtual device address this node has claimed. It is only
// meaningful once OpMode == OpNormal.
func (d *Dispatcher) VDA() uint16 { return d.vda }

// Tick advances the dispatcher by one second. It ages the device table,
// recomputes each device's IsFirst flag (the first device seen for a given
// object_id this pass wins), and drives the startup or normal-mode tick.
func (d *Dispatcher) Tick(nowUs uint64) []Frame {
	seen := make(map[uint16]bool)
	for i := range d.devices {
		dev := &d.devices[i]
		dev.SecTick()
		if dev.ObjectID == 0 {
			dev.IsFirst = false
			continue
		}
		if !seen[dev.ObjectID] {
			dev.IsFirst = true
			seen[dev.ObjectID] = true
		} else {
			dev.IsFirst = false
		}
	}

	if d.OpMode == OpStartup {
		return d.startupTick(nowUs)
	}
	return d.normTick()
}

func (d *Dispatcher) randRangeUs(lo, hi uint64) uint64 {
	return lo + uint64(d.rng.Int63n(int64(hi-lo)))
}

func (d *Dispatcher) startupTick(nowUs uint64) []Frame {
	if d.nextStartupInstantUs == nil {
		wake := nowUs + d.randRangeUs(startupFirstWaitMinUs, startupFirstWaitMaxUs)
		d.nextStartupInstantUs = &wake
		d.startupStage = startupInitialStage
		for i := range d.receivedAdgs {
			d.receivedAdgs[i] = false
		}
		return []Frame{d.rtrOnStage()}
	}

	if nowUs < *d.nextStartupInstantUs {
		return nil
	}

	seenStage1 := d.startupStage >= 1 && d.receivedAdgs[d.startupStage-1]
	seenStage2 := d.startupStage >= 2 && d.receivedAdgs[d.startupStage-2]

	var out []Frame
	if !seenStage1 && !seenStage2 {
		if d.startupStage > 0 {
			d.startupStage--
		}
		if d.startupStage <= 1 {
			d.vda = d.claimFreeVDA()
			d.OpMode = OpNormal
			out = []Frame{EmptyFromID(HeartbeatID(d.vda)).withRTR()}
		} else {
			wake := nowUs + d.randRangeUs(startupRetransMinUs, startupRetransMaxUs)
			d.nextStartupInstantUs = &wake
			out = []Frame{d.rtrOnStage()}
		}
	} else {
		wake := nowUs + d.randRangeUs(startupRetransMinUs, startupRetransMaxUs)
		d.nextStartupInstantUs = &wake
		out = []Frame{d.rtrOnStage()}
	}

	for i := range d.receivedAdgs {
		d.receivedAdgs[i] = false
	}
	return out
}

func (d *Dispatcher) rtrOnStage() Frame {
	return RemoteTransRq(uint16(d.startupStage), 0)
}

// claimFreeVDA picks the smallest virtual device address >= preferredVDA
// whose heartbeat slot is not presently occupied by a live device. If every
// slot from preferredVDA up is taken it takes the smallest free address
// below preferredVDA, and if none is free at all it returns preferredVDA.
func (d *Dispatcher) claimFreeVDA() uint16 {
	for vda := d.preferredVDA; vda < 64; vda++ {
		if d.devices[vda].ObjectID == 0 {
			return vda
		}
	}
	for vda := uint16(0); vda < d.preferredVDA; vda++ {
		if d.devices[vda].ObjectID == 0 {
			return vda
		}
	}
	return d.preferredVDA
}

func (f Frame) withRTR() Frame {
	f.rtr = true
	return f
}

// RxData feeds one inbound raw frame to the dispatcher. It updates the
// device heartbeat table, handles a local-address collision by restarting
// arbitration, and in normal mode classifies the frame, returning it if it
// should be forwarded to the controller.
func (d *Dispatcher) RxData(f Frame) (Classified, bool) {
	if f.IsHeartbeat() {
		vda := f.VDA()
		d.devices[vda].SetObjectID(f)
		if d.OpMode == OpNormal && vda == d.vda {
			d.OpMode = OpStartup
			d.startupStage = startupInitialStage
			d.nextStartupInstantUs = nil
			for i := range d.receivedAdgs {
				d.receivedAdgs[i] = false
			}
		}
	}

	if d.OpMode == OpStartup {
		if id, ok := f.SpecificID(); ok && id < 16 {
			d.receivedAdgs[id] = true
		}
		return Classified{}, false
	}

	return d.classify(f)
}

func (d *Dispatcher) classify(f Frame) (Classified, bool) {
	for _, r := range d.legacyFilter {
		if f.ID() >= r.Low && f.ID() <= r.High {
			return Legacy(f), true
		}
	}

	if gid, ok := f.GenericID(); ok {
		if gid == 0 {
			return Classified{}, false
		}
		return Classified{Kind: KindGeneric, Can: f, GenericID: gid}, true
	}

	vda := f.VDA()
	dev := &d.devices[vda]
	if sid, ok := f.SpecificID(); ok {
		if _, wanted := d.objectIDFilter[dev.ObjectID]; wanted && dev.IsFirst {
			return Classified{Kind: KindSpecific, Can: f, SpecificID: sid, ObjectID: dev.ObjectID}, true
		}
	}
	return Classified{}, false
}

// QueueTx enqueues a classified frame for transmission; it will be rewritten
// to carry this node's claimed address and drained by DrainTx.
func (d *Dispatcher) QueueTx(c Classified) bool {
	return d.txFrames.Enqueue(c)
}

// DrainTx removes and rewrites one queued outbound frame, or returns
// ok=false if nothing is queued. Only meaningful in OpNormal.
func (d *Dispatcher) DrainTx() (Frame, bool) {
	c, ok := d.txFrames.Dequeue()
	if !ok {
		return Frame{}, false
	}
	return c.Rewrite(d.vda), true
}

func (d *Dispatcher) normTick() []Frame {
	var out []Frame
	for {
		f, ok := d.DrainTx()
		if !ok {
			break
		}
		out = append(out, f)
	}
	return out
}
