package speech

import (
	"unicode"
	"unicode/utf8"
)

// readGroup reads one argument at position i and returns its content together with
// the position right after it.
//
// An argument is a {...} group (returned without braces), a command name optionally
// followed by its own {...} group (for example \mathbf{v}), or a single character.
// Leading whitespace is skipped. An unterminated group extends to the end of s.
func readGroup(s string, i int) (string, int) {
	i = skipSpaces(s, i)
	if i >= len(s) {
		return "", i
	}

	switch s[i] {
	case '{':
		return readDelimited(s, i, '{', '}')
	case '\\':
		j := readName(s, i+1)
		command := s[i:j]

		// nested command without delimiters, like \mathbf{u} used as a single argument
		if j < len(s) && s[j] == '{' {
			group, k := readGroup(s, j)
			return command + "{" + group + "}", k
		}

		return command, j
	default:
		_, size := utf8.DecodeRuneInString(s[i:])
		return s[i : i+size], i + size
	}
}

// readOption reads an optional [...] argument which must start exactly at i.
func readOption(s string, i int) (string, int, bool) {
	if i >= len(s) || s[i] != '[' {
		return "", i, false
	}

	option, j := readDelimited(s, i, '[', ']')
	return option, j, true
}

// readArgument works like readGroup, but also accepts a parenthesised argument, as
// in \proj_{v}(u).
func readArgument(s string, i int) (string, int) {
	i = skipSpaces(s, i)
	if i < len(s) && s[i] == '(' {
		return readDelimited(s, i, '(', ')')
	}

	return readGroup(s, i)
}

// readDelimited reads a group opened by s[i] and balanced by depth counting.
func readDelimited(s string, i int, open, close byte) (string, int) {
	depth := 0
	for j := i; j < len(s); j++ {
		switch s[j] {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[i+1 : j], j + 1
			}
		}
	}

	return s[i+1:], len(s)
}

// readName returns the end of a sequence of letters starting at i
func readName(s string, i int) int {
	for i < len(s) && isLetter(s[i]) {
		i++
	}

	return i
}

// skipSpaces returns position of the next non-whitespace character
func skipSpaces(s string, i int) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			return i
		}

		i += size
	}

	return i
}
