package display

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAML returns a Value rendering v as a YAML document, without the final
// newline.
func YAML(v any) Value {
	return Func(func() (string, error) {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return "", err
		}
		if err := enc.Close(); err != nil {
			return "", err
		}
		return strings.TrimSuffix(buf.String(), "\n"), nil
	})
}
