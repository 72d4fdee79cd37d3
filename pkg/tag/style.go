package tag

// Style is a backend-neutral text style.
// Nil colours are unset and leave the terminal default in place.
type Style struct {
	Foreground *Color
	Background *Color
	Modifiers  Modifier
}

// Patch returns s overlaid with other: colours set in other replace those in s
// and modifiers accumulate.
func (s Style) Patch(other Style) Style {
	if other.Foreground != nil {
		s.Foreground = other.Foreground
	}
	if other.Background != nil {
		s.Background = other.Background
	}
	s.Modifiers |= other.Modifiers
	return s
}

// IsZero reports whether the style sets nothing.
func (s Style) IsZero() bool {
	return s.Foreground == nil && s.Background == nil && s.Modifiers == 0
}

// Fg returns a style with only the foreground set.
func Fg(c Color) Style {
	return Style{Foreground: &c}
}

// Bg returns a style with only the background set.
func Bg(c Color) Style {
	return Style{Background: &c}
}

// Mod returns a style with only the given modifiers set.
func Mod(m Modifier) Style {
	return Style{Modifiers: m}
}

// StyleOf turns a converted neutral tag into the style it applies.
func StyleOf(t Standard) Style {
	switch t.Kind {
	case KindForeground:
		return Fg(t.Color)
	case KindBackground:
		return Bg(t.Color)
	case KindModifier:
		return Mod(t.Modifier)
	default:
		return t.Custom
	}
}
