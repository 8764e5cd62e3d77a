package dispfmt

import (
	"fmt"
	"strings"
)

// Render writes format to dst, consuming arguments from args in template
// order.
//
// Native markers are classified by [Scan] before any argument is consumed
// and are then rendered with C printf semantics. Each {} consumes one
// argument and renders it through the display capability matching dst;
// a nil value, a value without that capability, or one whose render fails
// is omitted and counted in Stats.Skipped. A '%' that does not begin a
// valid marker is copied literally.
//
// The only errors are [ErrNilSink] and [ErrSinkWrite]; on a write failure
// the stats gathered so far are returned.
func Render(dst Sink, format string, args *Args) (Stats, error) {
	if dst == nil || isNilRef(dst) {
		return Stats{}, ErrNilSink
	}
	r := renderer{dst: dst, args: args, specs: Scan(format)}
	err := r.run(format)
	return r.stats, err
}

type renderer struct {
	dst   Sink
	args  *Args
	specs []Specifier
	next  int
	stats Stats
}

func (r *renderer) run(format string) error {
	for i := 0; i < len(format); {
		switch {
		case strings.HasPrefix(format[i:], "%%"):
			if err := r.emit("%"); err != nil {
				return err
			}
			i += 2
		case format[i] == '%':
			if r.next >= len(r.specs) || r.specs[r.next].Offset != i {
				if err := r.emit("%"); err != nil {
					return err
				}
				i++
				continue
			}
			spec := r.specs[r.next]
			r.next++
			if err := r.native(spec); err != nil {
				return err
			}
			i += len(spec.Text)
		case strings.HasPrefix(format[i:], OpaqueDelimiter):
			r.opaque()
			i += len(OpaqueDelimiter)
		default:
			j := i + 1
			for j < len(format) && format[j] != '%' && !strings.HasPrefix(format[j:], OpaqueDelimiter) {
				j++
			}
			if err := r.emit(format[i:j]); err != nil {
				return err
			}
			i = j
		}
	}
	return nil
}

func (r *renderer) emit(s string) error {
	n, err := r.dst.write(s)
	r.stats.Bytes += n
	if err != nil {
		return errWrap(err)
	}
	return nil
}

func errWrap(err error) error {
	return fmt.Errorf("%w: %w", ErrSinkWrite, err)
}

func (r *renderer) native(spec Specifier) error {
	f := newField(spec)
	if spec.WidthStar {
		w, ok := r.starArg()
		if !ok {
			if err := r.emit("%!(BADWIDTH)"); err != nil {
				return err
			}
		} else {
			f.setWidth(w)
		}
	}
	if spec.PrecisionStar {
		p, ok := r.starArg()
		if !ok {
			if err := r.emit("%!(BADPREC)"); err != nil {
				return err
			}
			f.hasPrec = false
		} else {
			f.setPrec(p)
		}
	}

	switch spec.Tag.Class() {
	case ClassNone:
		r.stats.Native++
		return r.emit("%")
	case ClassCount:
		v, present := r.args.Next()
		if !present || !storeCount(v, spec.Tag, r.stats.Total()) {
			r.stats.Invalid++
			return r.emit(badArg(spec.Verb, v, present))
		}
		r.stats.Native++
		return nil
	}

	v, present := r.args.Next()
	text, ok := formatNative(spec, f, v, present)
	if ok {
		r.stats.Native++
	} else {
		r.stats.Invalid++
	}
	return r.emit(text)
}

func (r *renderer) starArg() (int64, bool) {
	v, present := r.args.Next()
	if !present {
		return 0, false
	}
	b, ok := intBits(v)
	if !ok {
		return 0, false
	}
	return signExtend(b, 32), true
}

func (r *renderer) opaque() {
	v, present := r.args.Next()
	if !present || isNilRef(v) {
		r.stats.Skipped++
		return
	}
	n, handled, err := r.dst.display(v)
	if !handled || err != nil {
		r.stats.Skipped++
		return
	}
	r.stats.Opaque++
	r.stats.Bytes += n
}
