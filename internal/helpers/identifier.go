// Package helpers holds small utilities that don't belong to any single
// dialect. Adapted from the teacher's internal/js_scanner
// byte-classification helpers (isPunctuator/isBrOrWs), generalized from
// "is this the start of a JS keyword" into "is this string a bare
// identifier". The printer uses Dedent; the shorthand-attribute rules
// (vBindSameNameShortHand, svelteAttrShorthand, astroAttrShorthand)
// compare an attribute's name with its value directly and do not call
// IsIdentifier.
package helpers

// IsIdentifier reports whether s is a single JS-style identifier
// (`[A-Za-z_$][A-Za-z0-9_$]*`), with no property access, call, or other
// punctuation.
func IsIdentifier(s []byte) bool {
	if len(s) == 0 {
		return false
	}
	if !isIdentStart(s[0]) {
		return false
	}
	for _, c := range s[1:] {
		if !isIdentPart(c) {
			return false
		}
	}
	return true
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
