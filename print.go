package dispfmt

import (
	"io"
	"strings"
)

// Print renders format to standard output and returns the number of fields
// rendered.
func Print(format string, a ...any) (int, error) {
	return Vprint(format, NewArgs(a...))
}

// Println is like [Print] and adds a newline when the render succeeds.
func Println(format string, a ...any) (int, error) {
	return Vprintln(format, NewArgs(a...))
}

// Fprint renders format to w.
func Fprint(w io.Writer, format string, a ...any) (int, error) {
	return Vfprint(w, format, NewArgs(a...))
}

// Fprintln is like [Fprint] and adds a newline when the render succeeds.
func Fprintln(w io.Writer, format string, a ...any) (int, error) {
	return Vfprintln(w, format, NewArgs(a...))
}

// Snprint renders format into buf, truncating at len(buf). Use [Buffer] and
// [Render] when the written length is needed. A nil buf is rejected with
// [ErrNilSink].
func Snprint(buf []byte, format string, a ...any) (int, error) {
	return Vsnprint(buf, format, NewArgs(a...))
}

// Snprintln is like [Snprint] and adds a newline, subject to truncation,
// when the render succeeds.
func Snprintln(buf []byte, format string, a ...any) (int, error) {
	return Vsnprintln(buf, format, NewArgs(a...))
}

// Sprint renders format to a string. {} fields use [StreamDisplayer].
func Sprint(format string, a ...any) string {
	var b strings.Builder
	_, _ = Render(Stream(&b), format, NewArgs(a...))
	return b.String()
}

// Vprint is [Print] over a prepared cursor.
func Vprint(format string, args *Args) (int, error) {
	return total(Render(Stdout(), format, args))
}

// Vprintln is [Println] over a prepared cursor.
func Vprintln(format string, args *Args) (int, error) {
	return line(Stdout(), format, args)
}

// Vfprint is [Fprint] over a prepared cursor.
func Vfprint(w io.Writer, format string, args *Args) (int, error) {
	return total(Render(Stream(w), format, args))
}

// Vfprintln is [Fprintln] over a prepared cursor.
func Vfprintln(w io.Writer, format string, args *Args) (int, error) {
	return line(Stream(w), format, args)
}

// Vsnprint is [Snprint] over a prepared cursor.
func Vsnprint(buf []byte, format string, args *Args) (int, error) {
	if buf == nil {
		return 0, ErrNilSink
	}
	return total(Render(Buffer(buf), format, args))
}

// Vsnprintln is [Snprintln] over a prepared cursor.
func Vsnprintln(buf []byte, format string, args *Args) (int, error) {
	if buf == nil {
		return 0, ErrNilSink
	}
	return line(Buffer(buf), format, args)
}

func total(st Stats, err error) (int, error) {
	return st.Total(), err
}

func line(dst Sink, format string, args *Args) (int, error) {
	st, err := Render(dst, format, args)
	if err != nil {
		return st.Total(), err
	}
	if _, err := dst.write("\n"); err != nil {
		return st.Total(), errWrap(err)
	}
	return st.Total(), nil
}
