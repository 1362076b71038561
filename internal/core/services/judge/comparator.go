package judge

import "strings"

// trimOutput strips leading and trailing whitespace. Verdicts compare
// outputs byte-for-byte after this and nothing else; interior whitespace
// stays significant.
func trimOutput(s string) string {
	return strings.TrimSpace(s)
}

// outputsEqual reports whether actual matches expected under trimmed
// comparison.
func outputsEqual(actual, expected string) bool {
	return trimOutput(actual) == trimOutput(expected)
}
