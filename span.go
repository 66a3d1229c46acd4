package speech

import "strings"

// delimiters of math spans in prose, in the order they are resolved
var delimiters = []struct {
	open, close string
}{
	{open: "$$", close: "$$"},
	{open: "$", close: "$"},
	{open: `\(`, close: `\)`},
	{open: `\[`, close: `\]`},
}

// spans converts the inside of every delimited math span, padding the result with spaces
func (w *walker) spans(s string) string {
	for _, d := range delimiters {
		s = replaceSpans(s, d.open, d.close, w.words)
	}

	return s
}

// replaceSpans replaces every open...close span having non-empty content with
// the result of convert. Spans do not nest, the first closing delimiter wins.
func replaceSpans(s, open, close string, convert func(string) string) string {
	var b strings.Builder
	i := 0
	for {
		k := strings.Index(s[i:], open)
		if k < 0 {
			break
		}

		start := i + k
		inner := start + len(open)
		if inner >= len(s) {
			break
		}

		// when there is no closing delimiter after this opening one, there is none after the next ones either
		e := strings.Index(s[inner+1:], close)
		if e < 0 {
			break
		}

		end := inner + 1 + e
		b.WriteString(s[i:start])
		b.WriteString(" " + convert(s[inner:end]) + " ")
		i = end + len(close)
	}

	if i == 0 {
		return s
	}

	b.WriteString(s[i:])
	return b.String()
}
