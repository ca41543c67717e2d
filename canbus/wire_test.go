package canbus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeParseLineRoundTrip(t *testing.T) {
	f := FromSlice(0x412, []byte{0x01, 0x02, 0xFF})
	line := EncodeLine(f, true)
	assert.Equal(t, "S 0412 01 02 FF\r\n", string(line))

	got, isSend, err := ParseLine(line)
	assert.NoError(t, err)
	assert.True(t, isSend)
	assert.Equal(t, f.ID(), got.ID())
	assert.Equal(t, f.Data(), got.Data())
}

func TestEncodeParseLineRTR(t *testing.T) {
	f := RemoteTransRq(0x40F, 0)
	line := EncodeLine(f, false)
	assert.Equal(t, "R 040F RTR\r\n", string(line))

	got, isSend, err := ParseLine(line)
	assert.NoError(t, err)
	assert.False(t, isSend)
	assert.True(t, got.IsRTR())
	assert.Equal(t, f.ID(), got.ID())
}

func TestLineReaderSkipsBlankLines(t *testing.T) {
	r := NewLineReader(strings.NewReader("\n\nR 0400 01 02\r\n"))
	f, isSend, err := r.Next()
	assert.NoError(t, err)
	assert.False(t, isSend)
	assert.Equal(t, uint16(0x400), f.ID())
}

func TestParseLineRejectsGarbage(t *testing.T) {
	_, _, err := ParseLine([]byte("garbage"))
	assert.ErrorIs(t, err, ErrWireFrame)
}
