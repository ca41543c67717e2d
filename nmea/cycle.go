package nmea

import "github.com/skyvario/varioc/persistence"

// SentenceKind identifies which formatter the cyclic scheduler wants next.
type SentenceKind uint8

const (
	SentenceNone SentenceKind = iota
	SentenceGPRMC
	SentenceGPGGA
	SentenceHCHDT
	SentencePLARW
	SentencePLARD
	SentencePLARB
	SentencePLARWInstant
	SentencePLARA
	SentencePLARV
	SentencePLARS
)

const (
	slowFirst = 101
	slowLast  = 106
	fastFirst = 201
	fastLast  = 203
)

var slowSeq = [...]SentenceKind{
	SentenceGPRMC, SentenceGPGGA, SentenceHCHDT, SentencePLARW, SentencePLARD, SentencePLARB,
}

var fastSeq = [...]SentenceKind{
	SentencePLARWInstant, SentencePLARA, SentencePLARV,
}

// Cycle drives the outbound sentence order: a 10-deep FIFO of persistence
// ids pending an NMEA echo always drains first (as $PLARS reports), then
// the slow sequence (6 sentences, armed by NmeaCyclic(false)) or the fast
// sequence (3 sentences, armed by NmeaCyclic(true)), one sentence per Next
// call, depending on which cyclic reset was last requested. Once a
// sequence is used up, Next returns SentenceNone until it is re-armed.
type Cycle struct {
	readoutIdx int
	pending    *pendingIDs
}

// NewCycle returns an idle Cycle (NmeaCyclic must be called to arm it).
func NewCycle() *Cycle {
	return &Cycle{pending: newPendingIDs(10)}
}

// NmeaCyclic (re)arms the cadence: short selects the 200ms/fast sequence,
// otherwise the 1s/slow sequence.
func (c *Cycle) NmeaCyclic(short bool) {
	if short {
		c.readoutIdx = fastFirst - 1
	} else {
		c.readoutIdx = slowFirst - 1
	}
}

// QueuePersistenceEcho schedules id to be reported as a $PLARS sentence
// ahead of the next cyclic sentence. Silently dropped if the queue (depth
// 10) is already full.
func (c *Cycle) QueuePersistenceEcho(id persistence.ID) {
	c.pending.push(id)
}

// Next returns the next sentence to emit, and for SentencePLARS the
// persistence id it should report. Draining the pending-echo queue always
// takes priority over the cyclic sequence.
func (c *Cycle) Next() (SentenceKind, persistence.ID) {
	if id, ok := c.pending.pop(); ok {
		return SentencePLARS, id
	}

	switch {
	case c.readoutIdx >= slowFirst-1 && c.readoutIdx < slowLast:
		c.readoutIdx++
		return slowSeq[c.readoutIdx-slowFirst], 0
	case c.readoutIdx >= fastFirst-1 && c.readoutIdx < fastLast:
		c.readoutIdx++
		return fastSeq[c.readoutIdx-fastFirst], 0
	default:
		return SentenceNone, 0
	}
}

// pendingIDs is a small fixed-capacity FIFO of persistence ids awaiting an
// NMEA echo.
type pendingIDs struct {
	ids []persistence.ID
	cap int
}

func newPendingIDs(capacity int) *pendingIDs {
	return &pendingIDs{ids: make([]persistence.ID, 0, capacity), cap: capacity}
}

func (p *pendingIDs) push(id persistence.ID) bool {
	if len(p.ids) >= p.cap {
		return false
	}
	p.ids = append(p.ids, id)
	return true
}

func (p *pendingIDs) pop() (persistence.ID, bool) {
	if len(p.ids) == 0 {
		return 0, false
	}
	id := p.ids[0]
	p.ids = p.ids[1:]
	return id, true
}
