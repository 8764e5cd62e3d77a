package dispfmt

// Tag identifies the kind of argument a conversion marker consumes.
// It is fixed by the length modifier and conversion letter alone.
type Tag int

const (
	TagNone Tag = iota // literal %, consumes nothing

	TagInt      // int
	TagSchar    // hh
	TagShort    // h
	TagLong     // l
	TagLongLong // ll (also L on integers)
	TagIntmax   // j
	TagSsize    // z
	TagPtrdiff  // t

	TagUint
	TagUchar
	TagUshort
	TagUlong
	TagUlongLong
	TagUintmax
	TagSize
	TagUptrdiff

	TagDouble
	TagLongDouble

	TagPointer
	TagString

	TagCountInt
	TagCountSchar
	TagCountShort
	TagCountLong
	TagCountLongLong
	TagCountIntmax
	TagCountSize
	TagCountPtrdiff
)

// Class groups tags by how their argument is extracted.
type Class int

const (
	ClassNone Class = iota
	ClassSigned
	ClassUnsigned
	ClassFloat
	ClassPointer
	ClassString
	ClassCount
)

var tagNames = map[Tag]string{
	TagNone:          "none",
	TagInt:           "int",
	TagSchar:         "signed char",
	TagShort:         "short",
	TagLong:          "long",
	TagLongLong:      "long long",
	TagIntmax:        "intmax_t",
	TagSsize:         "ssize_t",
	TagPtrdiff:       "ptrdiff_t",
	TagUint:          "unsigned int",
	TagUchar:         "unsigned char",
	TagUshort:        "unsigned short",
	TagUlong:         "unsigned long",
	TagUlongLong:     "unsigned long long",
	TagUintmax:       "uintmax_t",
	TagSize:          "size_t",
	TagUptrdiff:      "unsigned ptrdiff_t",
	TagDouble:        "double",
	TagLongDouble:    "long double",
	TagPointer:       "pointer",
	TagString:        "string",
	TagCountInt:      "int *",
	TagCountSchar:    "signed char *",
	TagCountShort:    "short *",
	TagCountLong:     "long *",
	TagCountLongLong: "long long *",
	TagCountIntmax:   "intmax_t *",
	TagCountSize:     "size_t *",
	TagCountPtrdiff:  "ptrdiff_t *",
}

// String returns the C type name the tag stands for.
func (t Tag) String() string {
	if s, ok := tagNames[t]; ok {
		return s
	}
	return "unknown"
}

// Class reports how the argument for t is extracted.
func (t Tag) Class() Class {
	switch {
	case t >= TagInt && t <= TagPtrdiff:
		return ClassSigned
	case t >= TagUint && t <= TagUptrdiff:
		return ClassUnsigned
	case t == TagDouble || t == TagLongDouble:
		return ClassFloat
	case t == TagPointer:
		return ClassPointer
	case t == TagString:
		return ClassString
	case t >= TagCountInt && t <= TagCountPtrdiff:
		return ClassCount
	default:
		return ClassNone
	}
}

// Signed reports whether integer values for t are sign-extended.
func (t Tag) Signed() bool {
	c := t.Class()
	return c == ClassSigned || c == ClassCount
}

// Bits returns the integer width in bits for integer and count tags,
// following an LP64 data model. It returns 0 for other tags.
func (t Tag) Bits() int {
	switch t {
	case TagSchar, TagUchar, TagCountSchar:
		return 8
	case TagShort, TagUshort, TagCountShort:
		return 16
	case TagInt, TagUint, TagCountInt:
		return 32
	case TagLong, TagLongLong, TagIntmax, TagSsize, TagPtrdiff,
		TagUlong, TagUlongLong, TagUintmax, TagSize, TagUptrdiff,
		TagCountLong, TagCountLongLong, TagCountIntmax, TagCountSize, TagCountPtrdiff:
		return 64
	default:
		return 0
	}
}

// lengthTags maps a length modifier to its signed, unsigned and count tag.
var lengthTags = map[string][3]Tag{
	"":   {TagInt, TagUint, TagCountInt},
	"hh": {TagSchar, TagUchar, TagCountSchar},
	"h":  {TagShort, TagUshort, TagCountShort},
	"l":  {TagLong, TagUlong, TagCountLong},
	"ll": {TagLongLong, TagUlongLong, TagCountLongLong},
	"L":  {TagLongLong, TagUlongLong, TagCountLongLong},
	"j":  {TagIntmax, TagUintmax, TagCountIntmax},
	"z":  {TagSsize, TagSize, TagCountSize},
	"t":  {TagPtrdiff, TagUptrdiff, TagCountPtrdiff},
}

// resolveTag maps a length modifier and conversion letter to a Tag.
// The conversion letter must already be known to be valid.
func resolveTag(length string, verb byte) Tag {
	switch verb {
	case 'd', 'i':
		return lengthTags[length][0]
	case 'o', 'u', 'x', 'X':
		return lengthTags[length][1]
	case 'n':
		return lengthTags[length][2]
	case 'e', 'E', 'f', 'F', 'g', 'G', 'a', 'A':
		if length == "L" {
			return TagLongDouble
		}
		return TagDouble
	case 'c':
		return TagInt
	case 's':
		return TagString
	case 'p':
		return TagPointer
	default:
		return TagNone
	}
}
