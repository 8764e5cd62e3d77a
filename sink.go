package dispfmt

import (
	"io"
	"os"
)

// stdout is the byte sink's destination. Tests swap it.
var stdout io.Writer = os.Stdout

// Sink is an output destination for [Render]. The three kinds are created
// with [Stdout], [Stream] and [Buffer].
type Sink interface {
	write(s string) (int, error)
	// display renders v with the capability matching the sink. It reports
	// handled=false when v lacks that capability.
	display(v any) (n int, handled bool, err error)
}

type stdoutSink struct{}

// Stdout returns the byte sink writing to standard output. {} fields are
// rendered with [Displayer].
func Stdout() Sink { return stdoutSink{} }

func (stdoutSink) write(s string) (int, error) { return io.WriteString(stdout, s) }

func (stdoutSink) display(v any) (int, bool, error) {
	d, ok := v.(Displayer)
	if !ok {
		return 0, false, nil
	}
	n, err := d.Display()
	return n, true, err
}

type streamSink struct {
	w io.Writer
}

// Stream returns a sink writing to w. {} fields are rendered with
// [StreamDisplayer]. A nil w, or one wrapping a nil pointer, yields a nil
// Sink.
func Stream(w io.Writer) Sink {
	if isNilRef(w) {
		return nil
	}
	return streamSink{w: w}
}

func (s streamSink) write(str string) (int, error) { return io.WriteString(s.w, str) }

func (s streamSink) display(v any) (int, bool, error) {
	d, ok := v.(StreamDisplayer)
	if !ok {
		return 0, false, nil
	}
	n, err := d.DisplayTo(s.w)
	return n, true, err
}

// BufferSink writes into a fixed buffer and truncates what does not fit.
// There is no terminator; len(buf) bytes are usable.
type BufferSink struct {
	buf       []byte
	n         int
	truncated bool
}

// Buffer returns a sink writing into buf. {} fields are rendered with
// [BufferDisplayer].
func Buffer(buf []byte) *BufferSink {
	return &BufferSink{buf: buf}
}

// Bytes returns the bytes written so far.
func (b *BufferSink) Bytes() []byte { return b.buf[:b.n] }

// Len returns the number of bytes written so far.
func (b *BufferSink) Len() int { return b.n }

// Truncated reports whether any text was cut off for lack of room.
func (b *BufferSink) Truncated() bool { return b.truncated }

func (b *BufferSink) write(s string) (int, error) {
	n := copy(b.buf[b.n:], s)
	b.n += n
	if n < len(s) {
		b.truncated = true
	}
	return n, nil
}

func (b *BufferSink) display(v any) (int, bool, error) {
	d, ok := v.(BufferDisplayer)
	if !ok {
		return 0, false, nil
	}
	room := b.buf[b.n:]
	n, err := d.DisplayInto(room)
	if err != nil {
		return 0, true, err
	}
	n = max(0, min(n, len(room)))
	b.n += n
	return n, true, nil
}
