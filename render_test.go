package dispfmt_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/bjaus/dispfmt"
	"github.com/bjaus/dispfmt/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Test types: display capabilities ---

type streamOnly struct{ s string }

func (v streamOnly) DisplayTo(w io.Writer) (int, error) { return io.WriteString(w, v.s) }

type bufferOnly struct{ s string }

func (v bufferOnly) DisplayInto(buf []byte) (int, error) { return copy(buf, v.s), nil }

type failing struct{}

func (failing) DisplayTo(io.Writer) (int, error) { return 0, errDisplay }
func (failing) DisplayInto([]byte) (int, error)  { return 0, errDisplay }
func (failing) Display() (int, error)            { return 0, errDisplay }

// overclaiming reports more bytes than the buffer holds, snprintf style.
type overclaiming struct{ s string }

func (v overclaiming) DisplayInto(buf []byte) (int, error) {
	copy(buf, v.s)
	return len(v.s), nil
}

type ptrDisplay struct{ s string }

func (v *ptrDisplay) DisplayTo(w io.Writer) (int, error) { return io.WriteString(w, v.s) }

// --- Helpers ---

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

// failAfterN fails on the (n+1)th call to Write.
type failAfterN struct {
	n     int
	calls int
	buf   bytes.Buffer
}

func (f *failAfterN) Write(p []byte) (int, error) {
	if f.calls >= f.n {
		return 0, errWriteFailed
	}
	f.calls++
	return f.buf.Write(p)
}

var (
	errWriteFailed = errors.New("write failed")
	errDisplay     = errors.New("display failed")
)

// ============================================================
// Tests
// ============================================================

func TestFprintScenario(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	n, err := dispfmt.Fprint(&buf, "%d-%s {} end", 5, "ok", display.Text("OK"))
	require.NoError(t, err)
	assert.Equal(t, "5-ok OK end", buf.String())
	assert.Equal(t, 3, n)
}

func TestRenderStatsScenario(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	st, err := dispfmt.Render(dispfmt.Stream(&buf), "%d-%s {} end", dispfmt.NewArgs(5, "ok", streamOnly{"OK"}))
	require.NoError(t, err)
	assert.Equal(t, dispfmt.Stats{Native: 2, Opaque: 1, Bytes: 11}, st)
	assert.Equal(t, 3, st.Total())
}

func TestFprintLiteral(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format string
		want   string
	}{
		"plain":            {format: "hello world", want: "hello world"},
		"empty":            {format: "", want: ""},
		"escaped percent":  {format: "100%% done", want: "100% done"},
		"double escape":    {format: "%%%%", want: "%%"},
		"trailing percent": {format: "50%", want: "50%"},
		"unknown verb":     {format: "50%!", want: "50%!"},
		"lone brace":       {format: "a{b}", want: "a{b}"},
		"closing first":    {format: "}{", want: "}{"},
		"utf-8":            {format: "héllo ✓", want: "héllo ✓"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			n, err := dispfmt.Fprint(&buf, tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
			assert.Equal(t, 0, n)
		})
	}
}

func TestSprintInt(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format string
		arg    any
		want   string
	}{
		"plain":             {format: "%d", arg: 42, want: "42"},
		"i":                 {format: "%i", arg: -3, want: "-3"},
		"width":             {format: "%5d", arg: 42, want: "   42"},
		"left":              {format: "%-5d|", arg: 42, want: "42   |"},
		"zero pad":          {format: "%05d", arg: -42, want: "-0042"},
		"plus":              {format: "%+d", arg: 5, want: "+5"},
		"space":             {format: "% d", arg: 5, want: " 5"},
		"precision":         {format: "%.3d", arg: 7, want: "007"},
		"precision no zero": {format: "%05.3d", arg: 7, want: "  007"},
		"zero precision":    {format: "%.0d", arg: 0, want: ""},
		"plus zero prec":    {format: "%+.0d", arg: 0, want: "+"},
		"space zero prec":   {format: "% .0d", arg: 0, want: " "},
		"zero prec width":   {format: "%+3.0d", arg: 0, want: "  +"},
		"alt oct zero prec": {format: "%#.0o", arg: 0, want: "0"},
		"alt hex zero prec": {format: "%#.0x", arg: 0, want: ""},
		"uint zero prec":    {format: "%+.0u", arg: 0, want: ""},
		"int truncates":     {format: "%d", arg: int64(1<<32 + 5), want: "5"},
		"schar wraps":       {format: "%hhd", arg: 300, want: "44"},
		"short wraps":       {format: "%hd", arg: 70000, want: "4464"},
		"long":              {format: "%ld", arg: int64(1 << 40), want: "1099511627776"},
		"long long min":     {format: "%lld", arg: int64(math.MinInt64), want: "-9223372036854775808"},
		"from uint8":        {format: "%d", arg: uint8(200), want: "200"},
		"unsigned":          {format: "%u", arg: 7, want: "7"},
		"unsigned of -1":    {format: "%u", arg: -1, want: "4294967295"},
		"ulong of -1":       {format: "%lu", arg: -1, want: "18446744073709551615"},
		"uchar of -1":       {format: "%hhu", arg: -1, want: "255"},
		"unsigned no plus":  {format: "%+u", arg: 3, want: "3"},
		"hex":               {format: "%x", arg: 255, want: "ff"},
		"HEX":               {format: "%X", arg: 255, want: "FF"},
		"alt hex":           {format: "%#x", arg: 255, want: "0xff"},
		"alt HEX":           {format: "%#X", arg: 255, want: "0XFF"},
		"alt hex zero":      {format: "%#x", arg: 0, want: "0"},
		"alt hex zero pad":  {format: "%#08x", arg: 255, want: "0x0000ff"},
		"hex of -1":         {format: "%x", arg: -1, want: "ffffffff"},
		"octal":             {format: "%o", arg: 8, want: "10"},
		"alt octal":         {format: "%#o", arg: 8, want: "010"},
		"uintptr":           {format: "%zx", arg: uintptr(0xbeef), want: "beef"},
		"char":              {format: "%c", arg: 'A', want: "A"},
		"char width":        {format: "%3c", arg: 'x', want: "  x"},
		"char left":         {format: "%-3c|", arg: 'x', want: "x  |"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, dispfmt.Sprint(tt.format, tt.arg))
		})
	}
}

func TestSprintFloat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format string
		arg    any
		want   string
	}{
		"f":              {format: "%f", arg: 1.5, want: "1.500000"},
		"float32":        {format: "%.1f", arg: float32(2.25), want: "2.2"},
		"width prec":     {format: "%8.3f", arg: 3.14159, want: "   3.142"},
		"zero pad":       {format: "%08.3f", arg: -1.5, want: "-001.500"},
		"alt no digits":  {format: "%#.0f", arg: 3.0, want: "3."},
		"e":              {format: "%e", arg: 1234.5, want: "1.234500e+03"},
		"E":              {format: "%E", arg: 1234.5, want: "1.234500E+03"},
		"g third":        {format: "%g", arg: 1.0 / 3, want: "0.333333"},
		"g integral":     {format: "%g", arg: 100000.0, want: "100000"},
		"g exponent":     {format: "%g", arg: 1e6, want: "1e+06"},
		"G small":        {format: "%G", arg: 1e-10, want: "1E-10"},
		"alt g":          {format: "%#g", arg: 1.0, want: "1.00000"},
		"long double":    {format: "%Lf", arg: 0.25, want: "0.250000"},
		"inf":            {format: "%f", arg: math.Inf(1), want: "inf"},
		"INF":            {format: "%F", arg: math.Inf(1), want: "INF"},
		"neg inf":        {format: "%e", arg: math.Inf(-1), want: "-inf"},
		"plus inf":       {format: "%+g", arg: math.Inf(1), want: "+inf"},
		"nan padded":     {format: "%05f", arg: math.NaN(), want: "  nan"},
		"hex one":        {format: "%a", arg: 1.0, want: "0x1p+0"},
		"hex three":      {format: "%a", arg: 3.0, want: "0x1.8p+1"},
		"HEX three":      {format: "%A", arg: 3.0, want: "0X1.8P+1"},
		"hex half":       {format: "%a", arg: -0.5, want: "-0x1p-1"},
		"hex precision":  {format: "%.2a", arg: 1.0, want: "0x1.00p+0"},
		"hex zero pad":   {format: "%010a", arg: 1.0, want: "0x00001p+0"},
		"hex left":       {format: "%-8a|", arg: 1.0, want: "0x1p+0  |"},
		"hex zero value": {format: "%a", arg: 0.0, want: "0x0p+0"},
		"hex carry":      {format: "%.0a", arg: 1.5, want: "0x2p+0"},
		"hex carry frac": {format: "%.1a", arg: 1.96875, want: "0x2.0p+0"},
		"hex round down": {format: "%.0a", arg: 1.25, want: "0x1p+0"},
		"hex subnormal":  {format: "%a", arg: math.SmallestNonzeroFloat64, want: "0x0.0000000000001p-1022"},
		"hex alt":        {format: "%#a", arg: 1.0, want: "0x1.p+0"},
		"hex long prec":  {format: "%.14a", arg: 1.0, want: "0x1.00000000000000p+0"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, dispfmt.Sprint(tt.format, tt.arg))
		})
	}
}

func TestSprintText(t *testing.T) {
	t.Parallel()
	var nilStr *string
	s := "ptr"
	tests := map[string]struct {
		format string
		arg    any
		want   string
	}{
		"plain":           {format: "%s", arg: "hi", want: "hi"},
		"width":           {format: "%5s", arg: "hi", want: "   hi"},
		"left":            {format: "%-5s|", arg: "hi", want: "hi   |"},
		"precision":       {format: "%.2s", arg: "hello", want: "he"},
		"bytes":           {format: "%s", arg: []byte("b"), want: "b"},
		"string pointer":  {format: "%s", arg: &s, want: "ptr"},
		"nil":             {format: "%s", arg: nil, want: "(null)"},
		"nil pointer":     {format: "%s", arg: nilStr, want: "(null)"},
		"nil short prec":  {format: "%.3s", arg: nil, want: ""},
		"stringer":        {format: "[%s]", arg: display.Text("txt"), want: "[txt]"},
		"width by bytes":  {format: "%4s|", arg: "é", want: "  é|"},
		"cut mid rune ok": {format: "%.1s", arg: "é", want: "\xc3"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, dispfmt.Sprint(tt.format, tt.arg))
		})
	}
}

func TestSprintPointer(t *testing.T) {
	t.Parallel()
	x := 1
	assert.Equal(t, "(nil)", dispfmt.Sprint("%p", nil))
	assert.Equal(t, "  (nil)", dispfmt.Sprint("%7p", nil))
	got := dispfmt.Sprint("%p", &x)
	assert.True(t, strings.HasPrefix(got, "0x"), got)
	assert.NotEqual(t, "0x0", got)
	assert.Equal(t, "0x10", dispfmt.Sprint("%p", uintptr(16)))
}

func TestSprintIndirect(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format string
		args   []any
		want   string
	}{
		"width":          {format: "%*d", args: []any{5, 42}, want: "   42"},
		"left width":     {format: "%-*d|", args: []any{4, 1}, want: "1   |"},
		"negative width": {format: "%*d|", args: []any{-4, 1}, want: "1   |"},
		"precision":      {format: "%.*f", args: []any{2, 3.14159}, want: "3.14"},
		"neg precision":  {format: "%.*f", args: []any{-1, 1.5}, want: "1.500000"},
		"both":           {format: "%*.*s|", args: []any{4, 2, "abc"}, want: "  ab|"},
		"bad width":      {format: "%*d", args: []any{"x", 7}, want: "%!(BADWIDTH)7"},
		"missing width":  {format: "%*d", args: nil, want: "%!(BADWIDTH)%!d(MISSING)"},
		"bad precision":  {format: "%.*d", args: []any{1.5, 7}, want: "%!(BADPREC)7"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, dispfmt.Sprint(tt.format, tt.args...))
		})
	}
}

func TestPaddedEscape(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	n, err := dispfmt.Fprint(&buf, "[%5%]%d", 9)
	require.NoError(t, err)
	assert.Equal(t, "[%]9", buf.String())
	assert.Equal(t, 2, n)
}

func TestFprintMalformedKeepsSync(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	n, err := dispfmt.Fprint(&buf, "%y%d %q%s", 3, "ok")
	require.NoError(t, err)
	assert.Equal(t, "%y3 %qok", buf.String())
	assert.Equal(t, 2, n)
}

func TestFprintBadArguments(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format string
		args   []any
		want   string
		stats  dispfmt.Stats
	}{
		"missing": {
			format: "%d",
			want:   "%!d(MISSING)",
			stats:  dispfmt.Stats{Invalid: 1, Bytes: 12},
		},
		"wrong type": {
			format: "%d",
			args:   []any{"hi"},
			want:   "%!d(string=hi)",
			stats:  dispfmt.Stats{Invalid: 1, Bytes: 14},
		},
		"nil int": {
			format: "%x",
			args:   []any{nil},
			want:   "%!x(<nil>)",
			stats:  dispfmt.Stats{Invalid: 1, Bytes: 10},
		},
		"int for float": {
			format: "%f|%d",
			args:   []any{1, 2},
			want:   "%!f(int=1)|2",
			stats:  dispfmt.Stats{Native: 1, Invalid: 1, Bytes: 12},
		},
		"string for pointer": {
			format: "%p",
			args:   []any{"s"},
			want:   "%!p(string=s)",
			stats:  dispfmt.Stats{Invalid: 1, Bytes: 13},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			st, err := dispfmt.Render(dispfmt.Stream(&buf), tt.format, dispfmt.NewArgs(tt.args...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
			assert.Equal(t, tt.stats, st)
		})
	}
}

func TestWriteCount(t *testing.T) {
	t.Parallel()
	var n int
	var small int8
	var buf bytes.Buffer
	total, err := dispfmt.Fprint(&buf, "%d%s%n{}%hhn", 1, "a", &n, display.Text("X"), &small)
	require.NoError(t, err)
	assert.Equal(t, "1aX", buf.String())
	assert.Equal(t, 2, n)
	assert.Equal(t, int8(4), small)
	assert.Equal(t, 5, total)
}

func TestWriteCountUnsignedSlot(t *testing.T) {
	t.Parallel()
	var n uint16
	dispfmt.Sprint("%d%hn", 1, &n)
	assert.Equal(t, uint16(1), n)
}

func TestWriteCountInvalid(t *testing.T) {
	t.Parallel()
	var nilPtr *int
	assert.Equal(t, "%!n(<nil>)", dispfmt.Sprint("%n", nil))
	assert.Equal(t, "%!n(MISSING)", dispfmt.Sprint("%n"))
	assert.Contains(t, dispfmt.Sprint("%n", nilPtr), "%!n(")
	assert.Equal(t, "%!n(int=3)", dispfmt.Sprint("%n", 3))
}

func TestOpaqueSkipped(t *testing.T) {
	t.Parallel()
	var nilPtr *ptrDisplay
	tests := map[string]struct {
		format string
		args   []any
		want   string
		stats  dispfmt.Stats
	}{
		"nil": {
			format: "a{}b",
			args:   []any{nil},
			want:   "ab",
			stats:  dispfmt.Stats{Skipped: 1, Bytes: 2},
		},
		"missing": {
			format: "a{}b",
			want:   "ab",
			stats:  dispfmt.Stats{Skipped: 1, Bytes: 2},
		},
		"nil pointer receiver": {
			format: "[{}]",
			args:   []any{nilPtr},
			want:   "[]",
			stats:  dispfmt.Stats{Skipped: 1, Bytes: 2},
		},
		"lacks stream capability": {
			format: "[{}]",
			args:   []any{bufferOnly{"X"}},
			want:   "[]",
			stats:  dispfmt.Stats{Skipped: 1, Bytes: 2},
		},
		"not displayable": {
			format: "[{}]",
			args:   []any{42},
			want:   "[]",
			stats:  dispfmt.Stats{Skipped: 1, Bytes: 2},
		},
		"render fails": {
			format: "[{}]%d",
			args:   []any{failing{}, 7},
			want:   "[]7",
			stats:  dispfmt.Stats{Native: 1, Skipped: 1, Bytes: 3},
		},
		"zero display value": {
			format: "[{}]",
			args:   []any{display.Value{}},
			want:   "[]",
			stats:  dispfmt.Stats{Skipped: 1, Bytes: 2},
		},
		"skip then render": {
			format: "a{}b{}c",
			args:   []any{nil, &ptrDisplay{"X"}},
			want:   "abXc",
			stats:  dispfmt.Stats{Opaque: 1, Skipped: 1, Bytes: 4},
		},
		"nested braces": {
			format: "{{}}",
			args:   []any{streamOnly{"X"}},
			want:   "{X}",
			stats:  dispfmt.Stats{Opaque: 1, Bytes: 3},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			st, err := dispfmt.Render(dispfmt.Stream(&buf), tt.format, dispfmt.NewArgs(tt.args...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
			assert.Equal(t, tt.stats, st)
		})
	}
}

func TestOpaqueConsumesNoNativeArgument(t *testing.T) {
	t.Parallel()
	// "%{}" is a stray '%' followed by a display field.
	var buf bytes.Buffer
	n, err := dispfmt.Fprint(&buf, "%{}%d", streamOnly{"X"}, 4)
	require.NoError(t, err)
	assert.Equal(t, "%X4", buf.String())
	assert.Equal(t, 2, n)
}

func TestFprintNilWriter(t *testing.T) {
	t.Parallel()
	n, err := dispfmt.Fprint(nil, "x")
	require.ErrorIs(t, err, dispfmt.ErrNilSink)
	assert.Equal(t, 0, n)

	_, err = dispfmt.Render(nil, "x", nil)
	require.ErrorIs(t, err, dispfmt.ErrNilSink)

	var nilBuf *dispfmt.BufferSink
	_, err = dispfmt.Render(nilBuf, "x", nil)
	require.ErrorIs(t, err, dispfmt.ErrNilSink)

	var nilWriter *bytes.Buffer
	n, err = dispfmt.Fprint(nilWriter, "x%d", 1)
	require.ErrorIs(t, err, dispfmt.ErrNilSink)
	assert.Equal(t, 0, n)
	_, err = dispfmt.Fprintln(nilWriter, "x")
	require.ErrorIs(t, err, dispfmt.ErrNilSink)
}

func TestFprintWriteError(t *testing.T) {
	t.Parallel()
	_, err := dispfmt.Fprint(&errWriter{}, "abc")
	require.ErrorIs(t, err, dispfmt.ErrSinkWrite)
	require.ErrorIs(t, err, errWriteFailed)
}

func TestFprintWriteErrorStopsRender(t *testing.T) {
	t.Parallel()
	w := &failAfterN{n: 1}
	args := dispfmt.NewArgs(1, 2)
	n, err := dispfmt.Vfprint(w, "%d,%d", args)
	require.ErrorIs(t, err, dispfmt.ErrSinkWrite)
	assert.Equal(t, "1", w.buf.String())
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, args.Remaining())
}

func TestFprintln(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	n, err := dispfmt.Fprintln(&buf, "%d {}", 5, streamOnly{"x"})
	require.NoError(t, err)
	assert.Equal(t, "5 x\n", buf.String())
	assert.Equal(t, 2, n)
}

func TestFprintlnNoNewlineOnFailure(t *testing.T) {
	t.Parallel()
	w := &failAfterN{n: 1}
	_, err := dispfmt.Fprintln(w, "a%sb", "x")
	require.ErrorIs(t, err, dispfmt.ErrSinkWrite)
	assert.Equal(t, "a", w.buf.String())

	w = &failAfterN{n: 1}
	_, err = dispfmt.Fprintln(w, "ab")
	require.ErrorIs(t, err, dispfmt.ErrSinkWrite)
	assert.Equal(t, "ab", w.buf.String())
}

func TestSnprintTruncates(t *testing.T) {
	t.Parallel()
	buf := make([]byte, 5)
	n, err := dispfmt.Snprint(buf, "hello %s", "world")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(buf))
	assert.Equal(t, 1, n)
}

func TestSnprintFits(t *testing.T) {
	t.Parallel()
	buf := make([]byte, 16)
	sink := dispfmt.Buffer(buf)
	st, err := dispfmt.Render(sink, "%d-%s {} end", dispfmt.NewArgs(5, "ok", bufferOnly{"OK"}))
	require.NoError(t, err)
	assert.Equal(t, "5-ok OK end", string(sink.Bytes()))
	assert.Equal(t, 11, sink.Len())
	assert.Equal(t, 3, st.Total())
	assert.False(t, sink.Truncated())
}

func TestBufferSinkTruncation(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		size   int
		format string
		args   []any
		want   string
		total  int
	}{
		"literal":         {size: 3, format: "abcdef", want: "abc"},
		"native":          {size: 4, format: "n=%d", args: []any{12345}, want: "n=12", total: 1},
		"opaque":          {size: 4, format: "ab{}", args: []any{bufferOnly{"XYZ"}}, want: "abXY", total: 1},
		"overclaiming":    {size: 4, format: "ab{}", args: []any{overclaiming{"XYZ"}}, want: "abXY", total: 1},
		"after full":      {size: 2, format: "ab{}%d", args: []any{bufferOnly{"X"}, 1}, want: "ab", total: 2},
		"zero capacity":   {size: 0, format: "abc%d", args: []any{1}, want: "", total: 1},
		"display value":   {size: 6, format: "[{}]", args: []any{display.Text("value")}, want: "[value", total: 1},
		"failing display": {size: 8, format: "[{}]", args: []any{failing{}}, want: "[]"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			sink := dispfmt.Buffer(make([]byte, tt.size))
			st, err := dispfmt.Render(sink, tt.format, dispfmt.NewArgs(tt.args...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(sink.Bytes()))
			assert.Equal(t, tt.total, st.Total())
			assert.LessOrEqual(t, sink.Len(), tt.size)
		})
	}
}

func TestBufferSinkTruncatedFlag(t *testing.T) {
	t.Parallel()
	sink := dispfmt.Buffer(make([]byte, 3))
	_, err := dispfmt.Render(sink, "abcd", nil)
	require.NoError(t, err)
	assert.True(t, sink.Truncated())
}

func TestSnprintln(t *testing.T) {
	t.Parallel()
	buf := make([]byte, 3)
	n, err := dispfmt.Snprintln(buf, "%s", "ab")
	require.NoError(t, err)
	assert.Equal(t, "ab\n", string(buf))
	assert.Equal(t, 1, n)

	buf = make([]byte, 2)
	_, err = dispfmt.Snprintln(buf, "ab")
	require.NoError(t, err)
	assert.Equal(t, "ab", string(buf))
}

func TestSnprintNilBuffer(t *testing.T) {
	t.Parallel()
	_, err := dispfmt.Snprint(nil, "x")
	require.ErrorIs(t, err, dispfmt.ErrNilSink)
	_, err = dispfmt.Snprintln(nil, "x")
	require.ErrorIs(t, err, dispfmt.ErrNilSink)
}

func TestCursorSharedAcrossRenders(t *testing.T) {
	t.Parallel()
	args := dispfmt.NewArgs(1, streamOnly{"x"}, 2, "extra")
	var buf bytes.Buffer
	n1, err := dispfmt.Vfprint(&buf, "%d{}", args)
	require.NoError(t, err)
	n2, err := dispfmt.Vfprintln(&buf, "%d", args)
	require.NoError(t, err)
	assert.Equal(t, "1x2\n", buf.String())
	assert.Equal(t, 2, n1)
	assert.Equal(t, 1, n2)
	assert.Equal(t, 3, args.Consumed())
	assert.Equal(t, 1, args.Remaining())
}

func TestVsnprint(t *testing.T) {
	t.Parallel()
	buf := make([]byte, 8)
	n, err := dispfmt.Vsnprint(buf, "%d+%d", dispfmt.NewArgs(1, 2))
	require.NoError(t, err)
	assert.Equal(t, "1+2", string(buf[:3]))
	assert.Equal(t, 2, n)
}

func TestArgsNilCursor(t *testing.T) {
	t.Parallel()
	var args *dispfmt.Args
	v, ok := args.Next()
	assert.Nil(t, v)
	assert.False(t, ok)
	assert.Equal(t, 0, args.Remaining())
	assert.Equal(t, 0, args.Consumed())
	assert.Equal(t, "%!d(MISSING)", dispfmt.Sprint("%d"))
}

func TestSprintMatchesFmtForSharedVerbs(t *testing.T) {
	t.Parallel()
	// Where C and Go agree, a single marker renders exactly as fmt does.
	tests := map[string]struct {
		format string
		arg    any
	}{
		"d":   {format: "%-+6d", arg: int32(-17)},
		"e":   {format: "%+12.4e", arg: 6.02214076e23},
		"f":   {format: "%010.2f", arg: 2.5},
		"x":   {format: "%08x", arg: uint32(48879)},
		"s":   {format: "%-6s", arg: "go"},
		"G":   {format: "%.3G", arg: 1234567.0},
		"o":   {format: "%6o", arg: uint32(64)},
		"E":   {format: "%E", arg: -0.000123},
		"F":   {format: "%.1F", arg: 9.96},
		"X":   {format: "%X", arg: uint32(3054)},
		"pad": {format: "%4d", arg: int32(12345)},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, fmt.Sprintf(tt.format, tt.arg), dispfmt.Sprint(tt.format, tt.arg))
		})
	}
}
