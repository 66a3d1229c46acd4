package speech

import "strings"

// tooDeep is spoken instead of groups nested deeper than the configured limit
const tooDeep = "too deeply nested"

// walker converts one string to words, recursing into every argument it extracts.
// A walker is created per conversion and is not shared.
type walker struct {
	lexicon  map[string]string
	notify   func(Notice)
	depth    int
	maxDepth int
}

// words converts markup s into a whitespace-normalized phrase
func (w *walker) words(s string) string {
	if w.depth >= w.maxDepth {
		w.notice(Notice{Kind: NoticeDepth})
		return tooDeep
	}

	w.depth++
	defer func() { w.depth-- }()

	return cleanup(w.scan(w.prepare(s)))
}

// prepare runs normalizations which must happen before the scan, in this order
func (w *walker) prepare(s string) string {
	s = rewriteStarred(s)
	s = rewriteGlyphs(s)
	s = rewriteNumberSets(s)
	s = unwrapText(s)
	s = rewriteStarred(s)
	s = rewriteHelpers(s)
	s = rewriteIdentity(s)
	s = promoteOperators(s)
	s = w.environments(s)
	s = substituteCommands(s, w.symbol)
	return stripSizing(s)
}

// symbol looks up user defined words first, so they may override built-in phrases
func (w *walker) symbol(name string) (string, bool) {
	if v, ok := w.lexicon[name]; ok {
		return " " + v + " ", true
	}

	return symbol(name)
}

// scan walks s left to right and emits words
func (w *walker) scan(s string) string {
	var out strings.Builder
	out.Grow(len(s) * 2)

	for i := 0; i < len(s); {
		switch ch := s[i]; ch {
		case '\\':
			end := readName(s, i+1)
			phrase, next := w.command(s[i+1:end], s, end)
			out.WriteString(phrase)
			i = next
		case '^':
			content, next := readGroup(s, i+1)
			out.WriteString(w.power(content))
			i = next
		case '_':
			content, next := readGroup(s, i+1)
			out.WriteString(" sub " + w.words(content))
			i = next
		case '(', ')', '[', ']', '{', '}':
			out.WriteByte(' ')
			i++
		case ',':
			out.WriteString(", ")
			i++
		default:
			if word, ok := operators[ch]; ok {
				out.WriteString(word)
			} else {
				out.WriteByte(ch)
			}

			i++
		}
	}

	return out.String()
}

// operators are single character operators
var operators = map[byte]string{
	'+': " plus ",
	'-': " minus ",
	'*': " times ",
	'/': " divided by ",
	'=': " equals ",
	'<': " less than ",
	'>': " greater than ",
}

// power speaks a superscript
func (w *walker) power(content string) string {
	raw := strings.TrimSpace(content)
	words := strings.TrimSpace(w.words(content))

	switch {
	case raw == `\top` || raw == "top" || raw == "T":
		return " transposed "
	case raw == "2" || raw == "two":
		return " squared "
	case raw == "3" || raw == "three":
		return " cubed "
	case DigitsToWords(words) == "minus one":
		return " inverse "
	default:
		return " to the power " + words + " "
	}
}

func (w *walker) notice(n Notice) {
	if w.notify != nil {
		w.notify(n)
	}
}
