package helpers

import "github.com/lithammer/dedent"

// Dedent strips the common leading whitespace from every line of s, the
// way an external formatter callback's output needs normalizing before
// this module re-indents it to the surrounding context (spec section
// 4.4: "re-indented by current indent plus..."). Grounded on the
// teacher's own use of github.com/lithammer/dedent for embedded-code
// reindentation in its test fixtures.
func Dedent(s string) string {
	return dedent.Dedent(s)
}
