package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bjaus/dispfmt"
	"github.com/bjaus/dispfmt/display"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

var errInvalidOperand = errors.New("invalid operand")

// slot is one argument the template consumes, in template order.
type slot struct {
	spec   dispfmt.Specifier
	star   bool // a * width or precision
	opaque bool // a {} field
}

// argSlots lists the arguments format consumes. It walks the template with
// the same rules as the renderer so operands line up with their markers.
func argSlots(format string) []slot {
	specs := dispfmt.Scan(format)
	var slots []slot
	next := 0
	for i := 0; i < len(format); {
		switch {
		case strings.HasPrefix(format[i:], "%%"):
			i += 2
		case format[i] == '%' && next < len(specs) && specs[next].Offset == i:
			spec := specs[next]
			next++
			if spec.WidthStar {
				slots = append(slots, slot{spec: spec, star: true})
			}
			if spec.PrecisionStar {
				slots = append(slots, slot{spec: spec, star: true})
			}
			if spec.Tag != dispfmt.TagNone {
				slots = append(slots, slot{spec: spec})
			}
			i += len(spec.Text)
		case strings.HasPrefix(format[i:], dispfmt.OpaqueDelimiter):
			slots = append(slots, slot{opaque: true})
			i += len(dispfmt.OpaqueDelimiter)
		default:
			i++
		}
	}
	return slots
}

// converter turns command-line operands into render arguments.
type converter struct {
	cfg   config
	style bool
}

// count reports whether s is a %n slot. It takes no operand; the count is
// stored into a slot that is then discarded.
func (s slot) count() bool {
	return !s.star && !s.opaque && s.spec.Tag.Class() == dispfmt.ClassCount
}

// takesOperands reports whether any slot consumes an operand.
func takesOperands(slots []slot) bool {
	for _, s := range slots {
		if !s.count() {
			return true
		}
	}
	return false
}

// convert consumes one operand per slot, except %n slots, and returns the
// arguments and the unconsumed operands. Slots left without an operand get
// zero values, as printf(1) does; a {} without an operand is left nil and so
// omitted.
func (c converter) convert(slots []slot, operands []string) ([]any, []string, error) {
	args := make([]any, 0, len(slots))
	for _, s := range slots {
		if s.count() {
			args = append(args, new(int64))
			continue
		}
		var op string
		present := len(operands) > 0
		if present {
			op, operands = operands[0], operands[1:]
		}
		v, err := c.value(s, op, present)
		if err != nil {
			return nil, nil, err
		}
		args = append(args, v)
	}
	return args, operands, nil
}

func (c converter) value(s slot, op string, present bool) (any, error) {
	switch {
	case s.opaque:
		if !present {
			return nil, nil
		}
		return c.opaque(op)
	case s.star:
		if !present {
			return 0, nil
		}
		return parseSigned(op)
	}

	switch s.spec.Tag.Class() {
	case dispfmt.ClassSigned, dispfmt.ClassUnsigned:
		if !present {
			return 0, nil
		}
		if s.spec.Verb == 'c' {
			if op == "" {
				return 0, nil
			}
			return int64(op[0]), nil
		}
		if s.spec.Tag.Class() == dispfmt.ClassUnsigned && !strings.HasPrefix(op, "-") {
			return parseUnsigned(op)
		}
		return parseSigned(op)
	case dispfmt.ClassFloat:
		if !present {
			return 0.0, nil
		}
		f, err := strconv.ParseFloat(op, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", errInvalidOperand, op)
		}
		return f, nil
	case dispfmt.ClassPointer:
		if !present {
			return nil, nil
		}
		u, err := parseUnsigned(op)
		if err != nil {
			return nil, err
		}
		return uintptr(u), nil
	default:
		return op, nil
	}
}

// opaque parses op as YAML and re-renders it in the configured format.
// Operands that are not YAML are shown as text.
func (c converter) opaque(op string) (any, error) {
	var data any
	if err := yaml.Unmarshal([]byte(op), &data); err != nil {
		log.Debug().Err(err).Str("operand", op).Msg("Operand is not YAML, showing as text")
		data = op
	}
	v, err := display.Encode(c.cfg.Display, data)
	if err != nil {
		return nil, err
	}
	if st, ok := c.cfg.lipglossStyle(); ok && c.style {
		v = display.Style(v, st)
	}
	return v, nil
}

// parseSigned accepts decimal, 0x, 0 and 0b forms, and a quote followed by a
// character, whose byte value is used.
func parseSigned(op string) (int64, error) {
	if q, ok := quotedChar(op); ok {
		return q, nil
	}
	n, err := strconv.ParseInt(op, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", errInvalidOperand, op)
	}
	return n, nil
}

func parseUnsigned(op string) (uint64, error) {
	if q, ok := quotedChar(op); ok {
		return uint64(q), nil
	}
	n, err := strconv.ParseUint(op, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an unsigned integer", errInvalidOperand, op)
	}
	return n, nil
}

func quotedChar(op string) (int64, bool) {
	if len(op) >= 2 && (op[0] == '\'' || op[0] == '"') {
		return int64(op[1]), true
	}
	return 0, false
}

var escapes = strings.NewReplacer(
	`\\`, `\`,
	`\n`, "\n",
	`\t`, "\t",
	`\r`, "\r",
	`\a`, "\a",
	`\b`, "\b",
	`\f`, "\f",
	`\v`, "\v",
	`\"`, `"`,
	`\e`, "\x1b",
)

// unescape interprets printf(1) backslash escapes in a template.
func unescape(s string) string {
	return escapes.Replace(s)
}
