package tag

import "strings"

// Modifier is a set of text attributes.
type Modifier uint16

// Text attributes.
const (
	ModBold Modifier = 1 << iota
	ModDim
	ModItalic
	ModUnderline
	ModReverse
	ModBlink
	ModStrikethrough
)

// Has reports whether all attributes of other are set in m.
func (m Modifier) Has(other Modifier) bool {
	return m&other == other
}

// String lists the attribute names joined by '|'.
func (m Modifier) String() string {
	if m == 0 {
		return "none"
	}

	var names []string
	for _, attr := range []struct {
		mod  Modifier
		name string
	}{
		{ModBold, "bold"},
		{ModDim, "dim"},
		{ModItalic, "italic"},
		{ModUnderline, "underline"},
		{ModReverse, "reverse"},
		{ModBlink, "blink"},
		{ModStrikethrough, "strikethrough"},
	} {
		if m.Has(attr.mod) {
			names = append(names, attr.name)
		}
	}

	return strings.Join(names, "|")
}

// NamedModifier is an entry of the builtin modifier table.
type NamedModifier struct {
	Name     string
	Modifier Modifier
}

//nolint:gochecknoglobals // immutable lookup table
var namedModifiers = []NamedModifier{
	{"b", ModBold},
	{"d", ModDim},
	{"i", ModItalic},
	{"u", ModUnderline},
	{"r", ModReverse},
	{"sb", ModBlink},
	{"rb", ModBlink},
	{"s", ModStrikethrough},
	{"x", ModStrikethrough},
}

// NamedModifiers returns the builtin modifier names.
func NamedModifiers() []NamedModifier {
	out := make([]NamedModifier, len(namedModifiers))
	copy(out, namedModifiers)
	return out
}

// LookupModifier parses a modifier name.
func LookupModifier(s string) (Modifier, bool) {
	for _, named := range namedModifiers {
		if named.Name == s {
			return named.Modifier, true
		}
	}
	return 0, false
}
