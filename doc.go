// Package dispfmt renders printf-style templates that mix C conversion
// markers with values that display themselves.
//
// A template is literal text, "%%", C conversion markers such as "%-8.3lld"
// or "%#x", and the opaque field delimiter "{}". The central entry points are
// [Print], [Fprint] and [Snprint], which write to standard output, an
// [io.Writer], or a fixed byte buffer. Each returns the number of fields
// rendered.
//
//	dispfmt.Fprint(w, "%d-%s {} end", 5, "ok", display.Text("OK"))
//	// 5-ok OK end, 3 fields
//
// # Markers
//
// The marker grammar is C's:
//
//	%[flags][width][.precision][length]conv
//	flags  - + space # 0
//	width  digits or *
//	length hh h l ll j z t L
//	conv   d i o u x X e E f F g G a A c s p n
//
// [Scan] classifies every marker into a [Tag] before any argument is read,
// so an argument's interpretation depends only on the template. Integers
// are truncated to the tag's width ("%hhd" of 300 prints 44) and unsigned
// conversions read the two's complement bits ("%x" of -1 prints ffffffff).
// A "*" width or precision consumes one integer argument ahead of the value.
//
// "%n" stores the number of fields rendered so far through an integer
// pointer and prints nothing.
//
// A '%' that does not start a valid marker is printed as is. An argument of
// the wrong type, or a missing one, is printed Go style, as in
// "%!d(string=hi)" or "%!d(MISSING)", and is not counted.
//
// # Display Values
//
// Each "{}" consumes one argument that renders itself. The capability used
// depends on the sink:
//
//   - [Displayer] → [Print], [Println]
//   - [StreamDisplayer] → [Fprint], [Fprintln], [Sprint]
//   - [BufferDisplayer] → [Snprint], [Snprintln]
//
// A nil value, a value without the needed capability, or a value whose
// render returns an error is left out of the output and the field count.
// The rest of the template is still rendered. Package display provides
// values implementing all three over text, JSON, YAML, TOML and templates.
//
// # Cursors
//
// The V forms ([Vprint], [Vfprint], [Vsnprint]) take an [Args] cursor
// instead of variadic arguments. The cursor is only ever advanced, so one
// cursor can feed several templates in sequence.
//
// [FprintIter] and [FprintChan] render one template per row of a sequence
// or channel, writing each row as it arrives:
//
//	dispfmt.FprintIter(w, "%-8s {}\n", slices.Values(rows))
//
// # Stats
//
// [Render] is the underlying driver. It returns [Stats], which separates
// native fields, display fields, invalid arguments and skipped display
// values, and counts bytes delivered. Stats.Total is what the print
// functions return.
//
// Renders share no state. Concurrent calls are safe when each has its own
// cursor and sink.
package dispfmt
