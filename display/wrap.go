package display

import "github.com/muesli/reflow/wordwrap"

// Wrap returns a Value rendering v word-wrapped at width columns.
// ANSI escape sequences do not count toward the width.
func Wrap(v Value, width int) Value {
	return Func(func() (string, error) {
		s, err := v.Render()
		if err != nil {
			return "", err
		}
		if width <= 0 {
			return s, nil
		}
		return wordwrap.String(s, width), nil
	})
}
