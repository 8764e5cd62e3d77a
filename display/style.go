package display

import "github.com/charmbracelet/lipgloss"

// Style returns a Value rendering v through a lipgloss style.
func Style(v Value, style lipgloss.Style) Value {
	return Func(func() (string, error) {
		s, err := v.Render()
		if err != nil {
			return "", err
		}
		return style.Render(s), nil
	})
}
