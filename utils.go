package speech

import "strings"

// collapse trims s and squeezes every whitespace sequence into a single space
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// plural picks the word form for n items
func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}

	return many
}

// isLetter returns true for an ASCII letter
func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isWordChar matches the characters of a regexp \w class
func isWordChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}
