package speech

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	starredGroup = regexp.MustCompile(`([A-Za-z]+)\s*\*\s*\{`)
	starredChar  = regexp.MustCompile(`([A-Za-z}])\s*\*\s*([0-9])`)
	numberSet    = regexp.MustCompile(`\\mathbb\s*\{\s*([RNZQC])\s*\}`)
	wrappedText  = regexp.MustCompile(`\\(?:text|operatorname)\s*\{([^{}]*)\}`)
	diagCall     = regexp.MustCompile(`\bdiag\s*\(([^()]*)\)`)
	colCall      = regexp.MustCompile(`\bcol\s*\(([^()]*)\)`)
	spanSet      = regexp.MustCompile(`\b[Ss]pan\s*\{([^{}]*)\}`)
	letterCall   = regexp.MustCompile(`\b([A-Za-z])\s*\(\s*([A-Za-z])\s*\)`)
	identity     = regexp.MustCompile(`\bI\s*_\s*\{?\s*([A-Za-z0-9]+)\s*\}?`)
)

var (
	differential = regexp.MustCompile(`\bd\s*([A-Za-z])\b`)
	partialMark  = regexp.MustCompile(`\bpartial\s*([A-Za-z])\b`)
	innerProduct = regexp.MustCompile(`angle\s+(.+?)\s*,\s*(.+?)\s+angle`)
	vecWord      = regexp.MustCompile(`(?i)\bvec\b`)
	normPair     = regexp.MustCompile(`\bnorm\s+([^.,]+?)\s+norm\b`)
)

// normMarkers are replaced in this order, before single bars become absolute value bars
var normMarkers = []string{`\|`, "||"}

// spacing are the thin and negative space commands
var spacing = []string{`\,`, `\;`, `\:`, `\!`}

// rewriteStarred turns the starred subscript shorthand (x*{i}, x*1) into x_{...}
func rewriteStarred(s string) string {
	if !strings.Contains(s, "*") {
		return s
	}

	s = starredGroup.ReplaceAllString(s, "${1}_{")
	s = starredChar.ReplaceAllString(s, "${1}_{${2}}")
	return starredGroup.ReplaceAllString(s, "${1}_{")
}

// rewriteGlyphs speaks norm markers, spacing commands and Unicode math characters
func rewriteGlyphs(s string) string {
	s = norm.NFC.String(s)

	for _, marker := range normMarkers {
		s = strings.ReplaceAll(s, marker, " norm ")
	}

	for _, space := range spacing {
		s = strings.ReplaceAll(s, space, " ")
	}

	return substituteGlyphs(s)
}

// rewriteNumberSets replaces \mathbb{R} and friends
func rewriteNumberSets(s string) string {
	return replaceSubmatch(numberSet, s, func(m []string) string {
		return numberSets[m[1]]
	})
}

// unwrapText drops \text{...} and \operatorname{...}, turning proj and perp into commands
func unwrapText(s string) string {
	return replaceSubmatch(wrappedText, s, func(m []string) string {
		switch name := strings.ToLower(strings.TrimSpace(m[1])); name {
		case "proj", "perp":
			return "\\" + name + " "
		default:
			return m[1]
		}
	})
}

// rewriteHelpers expands bare-word helpers like diag(...), col(...), span{...} and f(x)
func rewriteHelpers(s string) string {
	s = diagCall.ReplaceAllString(s, "diagonal of ${1}")
	s = colCall.ReplaceAllString(s, "column space of ${1}")
	s = spanSet.ReplaceAllString(s, "span of ${1}")
	return letterCall.ReplaceAllString(s, "${1} of ${2}")
}

// rewriteIdentity turns I_n and I_{n} into a subscripted identity
func rewriteIdentity(s string) string {
	return identity.ReplaceAllString(s, "identity_{${1}}")
}

// promoteOperators turns bare words proj and perp into commands
func promoteOperators(s string) string {
	for _, word := range []string{"proj", "perp"} {
		s = promoteWord(s, word)
	}

	return s
}

func promoteWord(s, word string) string {
	var b strings.Builder
	i := 0
	for {
		k := strings.Index(s[i:], word)
		if k < 0 {
			break
		}

		start, end := i+k, i+k+len(word)
		bounded := (start == 0 || !isWordChar(s[start-1]) && s[start-1] != '\\') &&
			(end == len(s) || !isWordChar(s[end]))

		b.WriteString(s[i:start])
		if bounded {
			b.WriteByte('\\')
		}

		b.WriteString(word)
		i = end
	}

	b.WriteString(s[i:])
	return b.String()
}

// substituteCommands replaces every \name, where name is the complete run of
// letters after the backslash, for which lookup returns a phrase. Taking the whole
// run means \in never matches inside \infty.
func substituteCommands(s string, lookup func(string) (string, bool)) string {
	if !strings.Contains(s, "\\") {
		return s
	}

	var b strings.Builder
	i := 0
	for {
		k := strings.IndexByte(s[i:], '\\')
		if k < 0 {
			break
		}

		start := i + k
		end := readName(s, start+1)

		phrase, ok := lookup(s[start+1 : end])
		if !ok || end == start+1 {
			b.WriteString(s[i : start+1])
			i = start + 1
			continue
		}

		b.WriteString(s[i:start])
		b.WriteString(phrase)
		i = end
	}

	b.WriteString(s[i:])
	return b.String()
}

// stripSizing replaces \left, \right and \big-style hints with a space
func stripSizing(s string) string {
	return substituteCommands(s, func(name string) (string, bool) {
		return " ", sizing[name]
	})
}

// cleanup runs the passes applied once to the scanned words of every level
func cleanup(text string) string {
	text = differential.ReplaceAllString(text, "with respect to ${1}")
	text = partialMark.ReplaceAllString(text, "partial with respect to ${1}")
	text = strings.ReplaceAll(text, " to the power minus one", " inverse")
	text = innerProduct.ReplaceAllString(text, "inner product of ${1} and ${2}")
	text = vecWord.ReplaceAllString(text, "vector")
	text = normPair.ReplaceAllString(text, "norm of ${1}")
	return collapse(text)
}

// replaceSubmatch is like regexp.ReplaceAllStringFunc, but gives access to the groups
func replaceSubmatch(re *regexp.Regexp, s string, repl func([]string) string) string {
	matches := re.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	last := 0
	for _, loc := range matches {
		groups := make([]string, len(loc)/2)
		for g := range groups {
			if loc[2*g] >= 0 {
				groups[g] = s[loc[2*g]:loc[2*g+1]]
			}
		}

		b.WriteString(s[last:loc[0]])
		b.WriteString(repl(groups))
		last = loc[1]
	}

	b.WriteString(s[last:])
	return b.String()
}
