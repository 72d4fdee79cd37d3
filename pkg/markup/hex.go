package markup

// HexRGB parses exactly six hex digits into red, green and blue components.
// No '#' prefix is accepted.
func HexRGB(s string) (uint8, uint8, uint8, bool) {
	const hexColorLen = 6
	if len(s) != hexColorLen {
		return 0, 0, 0, false
	}

	var parts [3]uint8
	for i := range parts {
		high, okHigh := hexDigit(s[2*i])
		low, okLow := hexDigit(s[2*i+1])
		if !okHigh || !okLow {
			return 0, 0, 0, false
		}
		parts[i] = high<<4 | low
	}

	return parts[0], parts[1], parts[2], true
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
