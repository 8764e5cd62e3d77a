package display

import (
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// TOML returns a Value rendering v as a TOML document. v must marshal to a
// table: a struct or a map.
func TOML(v any) Value {
	return Func(func() (string, error) {
		b, err := toml.Marshal(v)
		if err != nil {
			return "", err
		}
		return strings.TrimSuffix(string(b), "\n"), nil
	})
}
