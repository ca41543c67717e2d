package nmea

import (
	"testing"

	"github.com/skyvario/varioc/persistence"
	"github.com/stretchr/testify/assert"
)

func TestCycleSlowSequence(t *testing.T) {
	c := NewCycle()
	c.NmeaCyclic(false)

	want := []SentenceKind{
		SentenceGPRMC, SentenceGPGGA, SentenceHCHDT, SentencePLARW, SentencePLARD, SentencePLARB,
	}
	for _, w := range want {
		kind, _ := c.Next()
		assert.Equal(t, w, kind)
	}
	kind, _ := c.Next()
	assert.Equal(t, SentenceNone, kind)
}

func TestCycleFastSequence(t *testing.T) {
	c := NewCycle()
	c.NmeaCyclic(true)

	want := []SentenceKind{SentencePLARWInstant, SentencePLARA, SentencePLARV}
	for _, w := range want {
		kind, _ := c.Next()
		assert.Equal(t, w, kind)
	}
}

func TestPendingEchoDrainsBeforeCyclic(t *testing.T) {
	c := NewCycle()
	c.NmeaCyclic(false)
	c.QueuePersistenceEcho(persistence.McCready)

	kind, id := c.Next()
	assert.Equal(t, SentencePLARS, kind)
	assert.Equal(t, persistence.McCready, id)

	kind, _ = c.Next()
	assert.Equal(t, SentenceGPRMC, kind, "cyclic sequence resumes where it left off")
}

func TestParseSentenceChecksum(t *testing.T) {
	body, err := ParseSentence([]byte("$PLARS,H,MC,1.7*1E\r\n"))
	assert.NoError(t, err)
	assert.Equal(t, "PLARS,H,MC,1.7", body)

	_, err = ParseSentence([]byte("$PLARS,H,MC,1.7*FF\r\n"))
	assert.ErrorIs(t, err, ErrParse)
}

func TestParsePLARSSetRanges(t *testing.T) {
	cmd, err := ParsePLARSSet("PLARS,H,MC,1.7")
	assert.NoError(t, err)
	assert.Equal(t, KeyMC, cmd.Key)
	assert.InDelta(t, 1.7, cmd.Value, 0.001)

	_, err = ParsePLARSSet("PLARS,H,MC,10.0")
	assert.ErrorIs(t, err, ErrParse)

	_, err = ParsePLARSSet("PLARS,H,BAL,1.2")
	assert.ErrorIs(t, err, ErrParse)

	_, err = ParsePLARSSet("PLARS,H,QNH,899.9")
	assert.ErrorIs(t, err, ErrParse)
}
