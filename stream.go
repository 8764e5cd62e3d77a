package dispfmt

import (
	"io"
	"iter"
)

// FprintIter renders format to w once per row of seq, each row supplying
// the arguments for one render. Rows are written as they arrive. It stops
// at the first sink error and returns the fields rendered across all rows.
func FprintIter(w io.Writer, format string, seq iter.Seq[[]any]) (int, error) {
	dst := Stream(w)
	if dst == nil {
		return 0, ErrNilSink
	}
	total := 0
	var streamErr error
	seq(func(row []any) bool {
		st, err := Render(dst, format, NewArgs(row...))
		total += st.Total()
		if err != nil {
			streamErr = err
			return false
		}
		return true
	})
	return total, streamErr
}

// FprintChan renders format to w once per row received from ch.
// It is a thin wrapper around [FprintIter].
func FprintChan(w io.Writer, format string, ch <-chan []any) (int, error) {
	return FprintIter(w, format, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
