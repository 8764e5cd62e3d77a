package display

import "strings"

// List returns a Value joining items with sep. An empty sep means ", ".
func List(items []string, sep string) Value {
	if sep == "" {
		sep = ", "
	}
	return Func(func() (string, error) {
		return strings.Join(items, sep), nil
	})
}

// Join returns a Value rendering each of vs in turn, separated by sep.
// The first failing value fails the whole render.
func Join(sep string, vs ...Value) Value {
	return Func(func() (string, error) {
		parts := make([]string, 0, len(vs))
		for _, v := range vs {
			s, err := v.Render()
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, sep), nil
	})
}
