package canbus

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrWireFrame is returned for a line that cannot be parsed as a wire frame.
var ErrWireFrame = errors.New("canbus: malformed wire frame")

// EncodeLine renders a frame as a single ASCII line: direction, hex id,
// hex payload bytes space separated, e.g. "S 0412 01 02 03\r\n". This is the
// wire format spoken over the CAN bridge's serial port.
func EncodeLine(f Frame, isSend bool) []byte {
	dir := "R"
	if isSend {
		dir = "S"
	}
	var b strings.Builder
	b.WriteString(dir)
	b.WriteByte(' ')
	fmt.Fprintf(&b, "%04X", f.ID())
	if f.IsRTR() {
		b.WriteString(" RTR")
	}
	for _, d := range f.Data() {
		b.WriteByte(' ')
		fmt.Fprintf(&b, "%02X", d)
	}
	b.WriteString("\r\n")
	return []byte(b.String())
}

// ParseLine decodes one EncodeLine-formatted line (without its trailing
// CRLF) back into a Frame and its direction.
func ParseLine(line []byte) (f Frame, isSend bool, err error) {
	s := strings.TrimSpace(string(line))
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return Frame{}, false, ErrWireFrame
	}
	switch fields[0] {
	case "S":
		isSend = true
	case "R":
		isSend = false
	default:
		return Frame{}, false, ErrWireFrame
	}

	id, err := strconv.ParseUint(fields[1], 16, 16)
	if err != nil {
		return Frame{}, false, ErrWireFrame
	}

	rest := fields[2:]
	isRTR := false
	if len(rest) > 0 && rest[0] == "RTR" {
		isRTR = true
		rest = rest[1:]
	}

	data := make([]byte, 0, len(rest))
	for _, hx := range rest {
		b, err := hex.DecodeString(hx)
		if err != nil || len(b) != 1 {
			return Frame{}, false, ErrWireFrame
		}
		data = append(data, b[0])
	}

	if isRTR {
		return RemoteTransRq(uint16(id), uint8(len(data))), isSend, nil
	}
	return FromSlice(uint16(id), data), isSend, nil
}

// LineReader reads successive wire frames off an io.Reader, one per line.
type LineReader struct {
	s *bufio.Scanner
}

// NewLineReader wraps r for reading one EncodeLine frame per call to Next.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{s: bufio.NewScanner(r)}
}

// Next reads and parses the next line, skipping blank lines.
func (lr *LineReader) Next() (Frame, bool, error) {
	for lr.s.Scan() {
		line := lr.s.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		return ParseLine(line)
	}
	if err := lr.s.Err(); err != nil {
		return Frame{}, false, err
	}
	return Frame{}, false, io.EOF
}
