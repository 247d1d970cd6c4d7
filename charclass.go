package ron

// Character-class predicates used throughout the grammar. Kept as small
// constant-time functions rather than regexps, matching the teacher's
// preference for direct byte/rune comparisons over the stdlib's regexp
// package (psec's pOneOf, pRange and pNoneOf parsers all work this way).

func isWS(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isDigitFirst is identical to isDigit; kept as a distinct name because the
// grammar uses it at a different decision point (classifying the first
// character of an expression) than isDigit (scanning digit runs).
func isDigitFirst(r rune) bool {
	return isDigit(r)
}

func isIdentFirstChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func isIdentOtherChar(r rune) bool {
	return isIdentFirstChar(r) || isDigit(r)
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
