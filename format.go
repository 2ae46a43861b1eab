// FILE: format.go
package flog

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// lineTimestampLayout renders the record's capture instant in the local
// zone at millisecond precision with a signed zone offset.
const lineTimestampLayout = "2006-01-02 15:04:05.000-0700"

// serializer manages the buffered formatting of log records.
type serializer struct {
	buf []byte
}

// newSerializer creates a serializer instance.
func newSerializer() *serializer {
	return &serializer{
		buf: make([]byte, 0, 4096), // Initial reasonable capacity
	}
}

// reset clears the serializer buffer for reuse.
func (s *serializer) reset() {
	s.buf = s.buf[:0]
}

// serialize converts one record into one formatted line:
//
//	<SeverityChar><timestamp> <threadTag> <file>:<line>] <message>
//
// The message is appended verbatim; multi-line payloads such as stack
// traces simply continue past the single-line prefix. Timezone conversion
// happens here, at format time, so the output reflects the formatting
// machine's zone.
func (s *serializer) serialize(rec Record) []byte {
	s.reset()

	s.buf = append(s.buf, rec.Severity.Char())
	s.buf = rec.Time.In(time.Local).AppendFormat(s.buf, lineTimestampLayout)
	s.buf = append(s.buf, ' ')
	s.buf = strconv.AppendUint(s.buf, threadTag(rec.Goroutine), 10)
	s.buf = append(s.buf, ' ')
	s.buf = append(s.buf, rec.File...)
	s.buf = append(s.buf, ':')
	s.buf = strconv.AppendInt(s.buf, int64(rec.Line), 10)
	s.buf = append(s.buf, ']', ' ')
	s.buf = append(s.buf, rec.Message...)
	s.buf = append(s.buf, '\n')
	return s.buf
}

// formatMessage resolves a message template against its arguments.
// With no args the template passes through verbatim, '%' included.
// An empty template renders the args space-joined instead.
func formatMessage(template string, args []any) string {
	if len(args) == 0 {
		return template
	}
	if template == "" {
		var buf []byte
		for i, arg := range args {
			if i > 0 {
				buf = append(buf, ' ')
			}
			buf = appendValue(buf, arg)
		}
		return string(buf)
	}
	return fmt.Sprintf(template, args...)
}

// appendValue converts any value to its text representation.
// Fallback to go-spew with data structure information for types
// that are not explicitly supported.
func appendValue(buf []byte, v any) []byte {
	switch val := v.(type) {
	case string:
		return append(buf, val...)
	case int:
		return strconv.AppendInt(buf, int64(val), 10)
	case int64:
		return strconv.AppendInt(buf, val, 10)
	case uint:
		return strconv.AppendUint(buf, uint64(val), 10)
	case uint64:
		return strconv.AppendUint(buf, val, 10)
	case float32:
		return strconv.AppendFloat(buf, float64(val), 'f', -1, 32)
	case float64:
		return strconv.AppendFloat(buf, val, 'f', -1, 64)
	case bool:
		return strconv.AppendBool(buf, val)
	case nil:
		return append(buf, "nil"...)
	case time.Time:
		return val.AppendFormat(buf, time.RFC3339Nano)
	case error:
		return append(buf, val.Error()...)
	case fmt.Stringer:
		return append(buf, val.String()...)
	default:
		// For structs, maps, pointers and the rest, delegate to spew.
		// Output carries type and size information for diagnostics.
		var b bytes.Buffer

		dumper := &spew.ConfigState{
			Indent:                  " ",
			MaxDepth:                10,
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			SortKeys:                true,
		}

		dumper.Fdump(&b, val)

		// Trim trailing new line added by spew
		return append(buf, bytes.TrimSpace(b.Bytes())...)
	}
}
