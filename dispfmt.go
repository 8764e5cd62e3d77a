package dispfmt

import (
	"errors"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNilSink   = errors.New("nil sink")
	ErrSinkWrite = errors.New("sink write failed")
)

// OpaqueDelimiter marks a field rendered by the argument itself.
const OpaqueDelimiter = "{}"

// --- Display Capabilities ---
//
// A value passed for a {} field implements the capabilities for the sinks
// it will be rendered through. The receiver is the value being displayed.
// Returning a non-nil error omits the field; it never aborts the render.

// Displayer renders itself to standard output. Required for [Print].
type Displayer interface {
	Display() (int, error)
}

// StreamDisplayer renders itself to a stream. Required for [Fprint] and
// [Sprint].
type StreamDisplayer interface {
	DisplayTo(w io.Writer) (int, error)
}

// BufferDisplayer renders itself into buf, writing at most len(buf) bytes,
// and returns the number written. Required for [Snprint].
type BufferDisplayer interface {
	DisplayInto(buf []byte) (int, error)
}

// Stats describes one render.
type Stats struct {
	Native  int // native markers rendered, including %n and %5%
	Opaque  int // {} fields rendered
	Invalid int // native markers whose argument was missing or of the wrong type
	Skipped int // {} fields omitted
	Bytes   int // bytes delivered to the sink
}

// Total returns the number of fields rendered.
func (s Stats) Total() int { return s.Native + s.Opaque }
