package display

import (
	"bytes"
	"encoding/json"
	"strings"
)

// JSON returns a Value rendering v as compact JSON, without HTML escaping.
func JSON(v any) Value {
	return JSONIndent(v, "")
}

// JSONIndent returns a Value rendering v as JSON indented by indent.
func JSONIndent(v any, indent string) Value {
	return Func(func() (string, error) {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if indent != "" {
			enc.SetIndent("", indent)
		}
		if err := enc.Encode(v); err != nil {
			return "", err
		}
		return strings.TrimSuffix(buf.String(), "\n"), nil
	})
}
