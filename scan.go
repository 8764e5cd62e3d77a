package dispfmt

import "strings"

const (
	flagChars = "-+ #0"
	convChars = "diouxXeEfFgGaAcspn"
)

// Specifier is one conversion marker found in a template.
type Specifier struct {
	// Text is the exact source of the marker, e.g. "%-08.3lld".
	Text string
	// Offset is the byte index of the leading '%' in the template.
	Offset int

	Flags         string
	Width         int
	WidthStar     bool
	Precision     int
	PrecisionStar bool
	HasPrecision  bool
	Length        string
	Verb          byte
	Tag           Tag
}

// HasWidth reports whether the marker carries a width, literal or indirect.
func (s Specifier) HasWidth() bool { return s.WidthStar || s.Width > 0 }

// Scan returns the conversion markers of format in left-to-right order.
// A "%%" pair produces no entry. Malformed markers produce no entry either;
// scanning resumes on the byte after their '%', so the stray '%' reads as a
// literal character.
func Scan(format string) []Specifier {
	var specs []Specifier
	for i := 0; i < len(format); {
		j := strings.IndexByte(format[i:], '%')
		if j < 0 {
			break
		}
		i += j
		if i+1 < len(format) && format[i+1] == '%' {
			i += 2
			continue
		}
		spec, ok := parseSpecifier(format, i)
		if !ok {
			i++
			continue
		}
		specs = append(specs, spec)
		i += len(spec.Text)
	}
	return specs
}

// parseSpecifier parses the marker whose '%' sits at format[start].
func parseSpecifier(format string, start int) (Specifier, bool) {
	s := Specifier{Offset: start}
	i := start + 1

	for i < len(format) && strings.IndexByte(flagChars, format[i]) >= 0 {
		i++
	}
	s.Flags = format[start+1 : i]

	if i < len(format) && format[i] == '*' {
		s.WidthStar = true
		i++
	} else {
		s.Width, i = parseNum(format, i)
	}

	if i < len(format) && format[i] == '.' {
		s.HasPrecision = true
		i++
		if i < len(format) && format[i] == '*' {
			s.PrecisionStar = true
			i++
		} else {
			s.Precision, i = parseNum(format, i)
		}
	}

	s.Length, i = parseLength(format, i)

	if i >= len(format) {
		return Specifier{}, false
	}
	switch verb := format[i]; {
	case verb == '%':
		s.Verb, s.Tag = verb, TagNone
	case strings.IndexByte(convChars, verb) >= 0:
		s.Verb, s.Tag = verb, resolveTag(s.Length, verb)
	default:
		return Specifier{}, false
	}
	s.Text = format[start : i+1]
	return s, true
}

func parseNum(format string, i int) (int, int) {
	n := 0
	for i < len(format) && format[i] >= '0' && format[i] <= '9' {
		if n < 1e6 {
			n = n*10 + int(format[i]-'0')
		}
		i++
	}
	return n, i
}

func parseLength(format string, i int) (string, int) {
	if i >= len(format) {
		return "", i
	}
	switch c := format[i]; c {
	case 'h', 'l':
		if i+1 < len(format) && format[i+1] == c {
			return format[i : i+2], i + 2
		}
		return format[i : i+1], i + 1
	case 'j', 'z', 't', 'L':
		return format[i : i+1], i + 1
	default:
		return "", i
	}
}
