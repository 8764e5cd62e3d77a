package dispfmt

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Args is a sequential, single-pass cursor over a caller's arguments.
// The render driver advances it once per marker that consumes a value and
// never rewinds it, so a cursor can be handed to several renders in turn.
type Args struct {
	list []any
	pos  int
}

// NewArgs returns a cursor positioned at the first of a.
func NewArgs(a ...any) *Args {
	return &Args{list: a}
}

// Next returns the next argument and advances the cursor.
// It reports false once the arguments are exhausted.
func (a *Args) Next() (any, bool) {
	if a == nil || a.pos >= len(a.list) {
		return nil, false
	}
	v := a.list[a.pos]
	a.pos++
	return v, true
}

// Remaining returns the number of arguments not yet consumed.
func (a *Args) Remaining() int {
	if a == nil {
		return 0
	}
	return len(a.list) - a.pos
}

// Consumed returns the number of arguments consumed so far.
func (a *Args) Consumed() int {
	if a == nil {
		return 0
	}
	return a.pos
}

// intBits returns the two's complement bit pattern of any Go integer.
func intBits(v any) (uint64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), true
	default:
		return 0, false
	}
}

// signExtend interprets the low bits of b as a signed integer.
func signExtend(b uint64, bits int) int64 {
	shift := 64 - bits
	return int64(b<<shift) >> shift
}

// zeroExtend keeps only the low bits of b.
func zeroExtend(b uint64, bits int) uint64 {
	if bits >= 64 {
		return b
	}
	return b & (1<<bits - 1)
}

func floatArg(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// stringArg returns the text of v. A nil text argument reports isNil.
func stringArg(v any) (s string, isNil, ok bool) {
	switch x := v.(type) {
	case nil:
		return "", true, true
	case string:
		return x, false, true
	case []byte:
		return string(x), false, true
	case *string:
		if x == nil {
			return "", true, true
		}
		return *x, false, true
	case fmt.Stringer:
		if isNilRef(x) {
			return "", true, true
		}
		return x.String(), false, true
	default:
		return "", false, false
	}
}

// pointerArg returns the address held by v; 0 means a nil pointer.
func pointerArg(v any) (uintptr, bool) {
	switch x := v.(type) {
	case nil:
		return 0, true
	case unsafe.Pointer:
		return uintptr(x), true
	case uintptr:
		return x, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice:
		return rv.Pointer(), true
	default:
		return 0, false
	}
}

// storeCount writes n, truncated to the tag's width, through the integer
// pointer v.
func storeCount(v any, tag Tag, n int) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return false
	}
	elem := rv.Elem()
	b := uint64(int64(n))
	switch elem.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		elem.SetInt(signExtend(b, tag.Bits()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		elem.SetUint(zeroExtend(b, tag.Bits()))
	default:
		return false
	}
	return true
}

// isNilRef reports whether v is nil or wraps a nil reference.
func isNilRef(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
