// Package display provides ready-made values for dispfmt's {} fields.
//
// Every [Value] implements dispfmt.Displayer, dispfmt.StreamDisplayer and
// dispfmt.BufferDisplayer over a single render function, so it can be used
// with any sink:
//
//	dispfmt.Print("user: {}\n", display.JSON(u))
//	dispfmt.Fprint(w, "[{}]", display.Pad(display.Text("ok"), 6, display.AlignCenter))
//
// Values are rendered lazily, each time they are displayed. A render error
// makes dispfmt omit the field.
package display

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNilValue          = errors.New("nil display value")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// stdout is where Display writes. Tests swap it.
var stdout io.Writer = os.Stdout

// Value is a displayable value backed by a render function.
// The zero Value fails to render with [ErrNilValue].
type Value struct {
	render func() (string, error)
}

// Func returns a Value rendered by fn.
func Func(fn func() (string, error)) Value {
	return Value{render: fn}
}

// Text returns a Value that renders s verbatim.
func Text(s string) Value {
	return Func(func() (string, error) { return s, nil })
}

// Stringer returns a Value that renders s.String() at display time.
func Stringer(s fmt.Stringer) Value {
	return Func(func() (string, error) {
		if s == nil {
			return "", ErrNilValue
		}
		return s.String(), nil
	})
}

// Render returns the text of v.
func (v Value) Render() (string, error) {
	if v.render == nil {
		return "", ErrNilValue
	}
	return v.render()
}

// String returns the text of v, or "" when it fails to render.
func (v Value) String() string {
	s, _ := v.Render()
	return s
}

// Display writes v to standard output.
func (v Value) Display() (int, error) {
	return v.DisplayTo(stdout)
}

// DisplayTo writes v to w.
func (v Value) DisplayTo(w io.Writer) (int, error) {
	s, err := v.Render()
	if err != nil {
		return 0, err
	}
	return io.WriteString(w, s)
}

// DisplayInto copies as much of v as fits into buf.
func (v Value) DisplayInto(buf []byte) (int, error) {
	s, err := v.Render()
	if err != nil {
		return 0, err
	}
	return copy(buf, s), nil
}

// Format names a serialization for [Encode].
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var formats = []Format{FormatText, FormatJSON, FormatYAML, FormatTOML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all formats accepted by [Encode].
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Encode returns a Value rendering v in format f. FormatText uses fmt's %v, or
// String for a [fmt.Stringer].
func Encode(f Format, v any) (Value, error) {
	switch f {
	case FormatText:
		if s, ok := v.(fmt.Stringer); ok {
			return Stringer(s), nil
		}
		return Func(func() (string, error) { return fmt.Sprintf("%v", v), nil }), nil
	case FormatJSON:
		return JSON(v), nil
	case FormatYAML:
		return YAML(v), nil
	case FormatTOML:
		return TOML(v), nil
	default:
		return Value{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}
