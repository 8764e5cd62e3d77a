package display

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Alignment controls how [Pad] places text within its width.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Pad returns a Value rendering v padded with spaces to width terminal
// columns. Text already at least width columns wide is left alone.
func Pad(v Value, width int, align Alignment) Value {
	return Func(func() (string, error) {
		s, err := v.Render()
		if err != nil {
			return "", err
		}
		return alignText(s, width, align), nil
	})
}

// Truncate returns a Value rendering v cut to at most width terminal
// columns, ending in "..." when cut.
func Truncate(v Value, width int) Value {
	return Func(func() (string, error) {
		s, err := v.Render()
		if err != nil {
			return "", err
		}
		if width <= 0 || runewidth.StringWidth(s) <= width {
			return s, nil
		}
		return runewidth.Truncate(s, width, "..."), nil
	})
}

func alignText(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
