package speech

import (
	"strings"
)

const beginMarker = `\begin{`

// environments resolves every \begin{name}...\end{name} block. The body must be at
// least one character long and ends at the first matching \end{name}.
func (w *walker) environments(s string) string {
	if !strings.Contains(s, beginMarker) {
		return s
	}

	var b strings.Builder
	i := 0
	for {
		k := strings.Index(s[i:], beginMarker)
		if k < 0 {
			break
		}

		start := i + k
		nameStart := start + len(beginMarker)
		nameEnd := nameStart
		for nameEnd < len(s) && (isLetter(s[nameEnd]) || s[nameEnd] == '*') {
			nameEnd++
		}

		if nameEnd == nameStart || nameEnd+1 >= len(s) || s[nameEnd] != '}' {
			b.WriteString(s[i:nameStart])
			i = nameStart
			continue
		}

		name := s[nameStart:nameEnd]
		end := `\end{` + name + `}`
		bodyStart := nameEnd + 1

		e := strings.Index(s[bodyStart+1:], end)
		if e < 0 {
			b.WriteString(s[i:nameStart])
			i = nameStart
			continue
		}

		bodyEnd := bodyStart + 1 + e
		b.WriteString(s[i:start])
		b.WriteString(" " + w.environment(name, s[bodyStart:bodyEnd]) + " ")
		i = bodyEnd + len(end)
	}

	b.WriteString(s[i:])
	return b.String()
}

// environment speaks the body of one environment
func (w *walker) environment(name, body string) string {
	switch {
	case strings.Contains(name, "matrix"):
		return w.matrix(body)
	case strings.Contains(name, "cases"):
		return w.cases(body)
	default:
		return w.words(body)
	}
}

// matrix speaks dimensions of a matrix-like environment followed by one sentence per row
func (w *walker) matrix(body string) string {
	var rows [][]string
	columns := 0

	for _, raw := range splitRows(strings.TrimSpace(body)) {
		var cells []string
		for _, cell := range strings.Split(raw, "&") {
			if cell = strings.TrimSpace(cell); cell != "" {
				cells = append(cells, cell)
			}
		}

		rows = append(rows, cells)
		columns = max(columns, len(cells))
	}

	parts := []string{"matrix with " + IntToWords(int64(len(rows))) + " " + plural(len(rows), "row", "rows") +
		" and " + IntToWords(int64(columns)) + " " + plural(columns, "column", "columns")}

	for index, cells := range rows {
		entries := make([]string, 0, len(cells))
		for _, cell := range cells {
			entries = append(entries, w.words(cell))
		}

		parts = append(parts, "row "+IntToWords(int64(index+1))+" entries are "+strings.Join(entries, ", "))
	}

	return strings.Join(parts, ". ")
}

// cases speaks a cases environment, where & reads as "when"
func (w *walker) cases(body string) string {
	var items []string
	for _, row := range splitRows(body) {
		items = append(items, w.words(strings.ReplaceAll(strings.TrimSpace(row), "&", " when ")))
	}

	return "cases " + strings.Join(items, ". ")
}

// splitRows splits an environment body into non-blank rows. A row break is a run of
// two or more backslashes, optionally followed by a [spacing] argument, or a single
// backslash which does not start a command name.
func splitRows(body string) (rows []string) {
	add := func(row string) {
		if strings.TrimSpace(row) != "" {
			rows = append(rows, row)
		}
	}

	start := 0
	for i := 0; i < len(body); {
		if body[i] != '\\' {
			i++
			continue
		}

		j := i
		for j < len(body) && body[j] == '\\' {
			j++
		}

		if j-i == 1 && j < len(body) && isLetter(body[j]) {
			i = j
			continue
		}

		add(body[start:i])

		if j-i > 1 {
			if k := skipSpaces(body, j); k < len(body) && body[k] == '[' {
				_, j = readDelimited(body, k, '[', ']')
			}
		}

		start, i = j, j
	}

	add(body[start:])
	return
}
