package dispfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// field holds the resolved flags, width and precision of one marker.
type field struct {
	minus, plus, space, sharp, zero bool

	width   int
	prec    int
	hasPrec bool
}

func newField(s Specifier) field {
	f := field{
		width:   s.Width,
		prec:    s.Precision,
		hasPrec: s.HasPrecision,
	}
	for i := 0; i < len(s.Flags); i++ {
		switch s.Flags[i] {
		case '-':
			f.minus = true
		case '+':
			f.plus = true
		case ' ':
			f.space = true
		case '#':
			f.sharp = true
		case '0':
			f.zero = true
		}
	}
	return f
}

// setWidth applies an indirect width; negative means left-justified.
func (f *field) setWidth(w int64) {
	if w < 0 {
		f.minus = true
		w = -w
	}
	f.width = int(min(w, 1e6))
}

// setPrec applies an indirect precision; negative means none.
func (f *field) setPrec(p int64) {
	if p < 0 {
		f.hasPrec = false
		f.prec = 0
		return
	}
	f.hasPrec = true
	f.prec = int(min(p, 1e6))
}

// verb builds the equivalent Go fmt directive.
func (f field) verb(conv byte) string {
	var b strings.Builder
	b.WriteByte('%')
	if f.minus {
		b.WriteByte('-')
	}
	if f.plus {
		b.WriteByte('+')
	}
	if f.space {
		b.WriteByte(' ')
	}
	if f.sharp {
		b.WriteByte('#')
	}
	if f.zero && !f.minus {
		b.WriteByte('0')
	}
	if f.width > 0 {
		b.WriteString(strconv.Itoa(f.width))
	}
	if f.hasPrec {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(f.prec))
	}
	b.WriteByte(conv)
	return b.String()
}

// pad fills body with spaces up to the field width, counted in bytes.
func (f field) pad(body string) string {
	n := f.width - len(body)
	if n <= 0 {
		return body
	}
	if f.minus {
		return body + strings.Repeat(" ", n)
	}
	return strings.Repeat(" ", n) + body
}

// padNumber pads sign+prefix+digits, zero-filling between prefix and
// digits when the 0 flag applies.
func (f field) padNumber(sign, prefix, digits string, zeroOK bool) string {
	n := f.width - len(sign) - len(prefix) - len(digits)
	if n > 0 && f.zero && !f.minus && zeroOK {
		return sign + prefix + strings.Repeat("0", n) + digits
	}
	return f.pad(sign + prefix + digits)
}

// badArg renders an argument that does not fit the marker, in Go's style.
func badArg(verb byte, v any, present bool) string {
	switch {
	case !present:
		return "%!" + string(verb) + "(MISSING)"
	case v == nil:
		return "%!" + string(verb) + "(<nil>)"
	default:
		return fmt.Sprintf("%%!%c(%T=%v)", verb, v, v)
	}
}

// formatNative renders v according to s and f. It reports false when v
// cannot serve as the marker's argument; the returned text then describes
// the mismatch.
func formatNative(s Specifier, f field, v any, present bool) (string, bool) {
	if !present {
		return badArg(s.Verb, nil, false), false
	}
	switch s.Tag.Class() {
	case ClassSigned, ClassUnsigned:
		b, ok := intBits(v)
		if !ok {
			return badArg(s.Verb, v, true), false
		}
		if s.Verb == 'c' {
			return f.pad(string([]byte{byte(b)})), true
		}
		return formatInt(s, f, b), true
	case ClassFloat:
		x, ok := floatArg(v)
		if !ok {
			return badArg(s.Verb, v, true), false
		}
		return formatFloat(s.Verb, f, x), true
	case ClassString:
		str, isNil, ok := stringArg(v)
		if !ok {
			return badArg(s.Verb, v, true), false
		}
		if isNil {
			str = "(null)"
			if f.hasPrec && f.prec < len(str) {
				str = ""
			}
		}
		if f.hasPrec && f.prec < len(str) {
			str = str[:f.prec]
		}
		return f.pad(str), true
	case ClassPointer:
		p, ok := pointerArg(v)
		if !ok {
			return badArg(s.Verb, v, true), false
		}
		if p == 0 {
			return f.pad("(nil)"), true
		}
		return f.pad("0x" + strconv.FormatUint(uint64(p), 16)), true
	default:
		return "", false
	}
}

func formatInt(s Specifier, f field, b uint64) string {
	bits := s.Tag.Bits()
	if f.hasPrec && f.prec == 0 && zeroExtend(b, bits) == 0 {
		return f.pad(zeroPrecision(s, f))
	}
	if s.Tag.Signed() {
		conv := s.Verb
		if conv == 'i' {
			conv = 'd'
		}
		return fmt.Sprintf(f.verb(conv), signExtend(b, bits))
	}
	u := zeroExtend(b, bits)
	f.plus, f.space = false, false
	conv := s.Verb
	switch conv {
	case 'u':
		conv = 'd'
	case 'x', 'X':
		if u == 0 {
			f.sharp = false
		}
	}
	return fmt.Sprintf(f.verb(conv), u)
}

// zeroPrecision is the body C prints for a zero value at precision 0: no
// digits, but the sign flag of signed conversions and the 0 of "%#o" remain.
func zeroPrecision(s Specifier, f field) string {
	switch {
	case s.Tag.Signed():
		return floatSign(f, false)
	case s.Verb == 'o' && f.sharp:
		return "0"
	default:
		return ""
	}
}

func formatFloat(conv byte, f field, x float64) string {
	upper := conv == 'E' || conv == 'F' || conv == 'G' || conv == 'A'
	if math.IsInf(x, 0) || math.IsNaN(x) {
		body := "inf"
		if math.IsNaN(x) {
			body = "nan"
		}
		if upper {
			body = strings.ToUpper(body)
		}
		return f.padNumber(floatSign(f, math.Signbit(x)), "", body, false)
	}
	switch conv {
	case 'a', 'A':
		return formatHexFloat(f, x, upper)
	case 'g', 'G':
		if !f.hasPrec {
			f.hasPrec, f.prec = true, 6
		}
	}
	return fmt.Sprintf(f.verb(conv), x)
}

func floatSign(f field, neg bool) string {
	switch {
	case neg:
		return "-"
	case f.plus:
		return "+"
	case f.space:
		return " "
	default:
		return ""
	}
}

// formatHexFloat renders x in C's %a form: 0x1.8p+1, with the exponent in
// as few digits as needed. Normal numbers lead with 1 unless rounding to the
// precision carries into the leading digit; subnormals lead with 0 and use
// the minimum exponent, as glibc does.
func formatHexFloat(f field, x float64, upper bool) string {
	const fracBits = 52
	bits := math.Float64bits(x)
	exp := int(bits>>fracBits) & 0x7ff
	m, e := bits&(1<<fracBits-1), 0
	switch {
	case exp != 0:
		m, e = m|1<<fracBits, exp-1023
	case m != 0:
		e = -1022
	}

	var lead uint64
	var digits string
	if f.hasPrec && f.prec < fracBits/4 {
		keep := uint(4 * f.prec)
		shift := uint(fracBits) - keep
		rem := m & (1<<shift - 1)
		m >>= shift
		half := uint64(1) << (shift - 1)
		if rem > half || (rem == half && m&1 == 1) {
			m++
		}
		lead, m = m>>keep, m&(1<<keep-1)
		if f.prec > 0 {
			digits = fmt.Sprintf("%0*x", f.prec, m)
		}
	} else {
		lead = m >> fracBits
		digits = fmt.Sprintf("%013x", m&(1<<fracBits-1))
		if f.hasPrec {
			digits += strings.Repeat("0", f.prec-fracBits/4)
		} else {
			digits = strings.TrimRight(digits, "0")
		}
	}

	mant := strconv.FormatUint(lead, 16)
	if digits != "" || f.sharp {
		mant += "." + digits
	}
	esign := "+"
	if e < 0 {
		esign, e = "-", -e
	}
	body := mant + "p" + esign + strconv.Itoa(e)
	prefix := "0x"
	if upper {
		prefix = "0X"
		body = strings.ToUpper(body)
	}
	return f.padNumber(floatSign(f, math.Signbit(x)), prefix, body, true)
}
