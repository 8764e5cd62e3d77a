package display

import (
	"fmt"
	"strings"
	"text/template"
)

// Template returns a Value executing the Go text/template tmpl against
// data. The template is parsed once; a parse failure is reported by every
// render as [ErrInvalidTemplate].
func Template(tmpl string, data any) Value {
	t, err := template.New("").Parse(tmpl)
	if err != nil {
		err = fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
		return Func(func() (string, error) { return "", err })
	}
	return Func(func() (string, error) {
		var b strings.Builder
		if err := t.Execute(&b, data); err != nil {
			return "", err
		}
		return b.String(), nil
	})
}
