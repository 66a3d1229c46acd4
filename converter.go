// Package speech converts LaTeX math embedded in prose into plain English words
// suitable for a text-to-speech engine.
package speech

import (
	"sort"
	"strings"
	"unicode"
)

// DefaultMaxDepth is the nesting depth used when Options.MaxDepth is not set
const DefaultMaxDepth = 64

// NoticeKind identifies what a Notice reports
type NoticeKind int

const (
	// NoticeUnknown reports a command which was dropped because it is not recognized
	NoticeUnknown NoticeKind = iota
	// NoticeDepth reports a group nested deeper than Options.MaxDepth
	NoticeDepth
)

// Notice is a diagnostic emitted during conversion. Notices never change the output.
type Notice struct {
	Kind NoticeKind
	Name string // command name, for NoticeUnknown
}

// Options configure a Converter
type Options struct {
	// MaxDepth limits how deep groups may be nested, deeper groups are spoken as "too deeply nested"
	MaxDepth int `yaml:"max_depth" mapstructure:"max_depth"`

	// NoQuote disables quoting of single-letter variables
	NoQuote bool `yaml:"no_quote" mapstructure:"no_quote"`

	// Lexicon holds additional commands without arguments: name (without backslash) to phrase
	Lexicon map[string]string `yaml:"lexicon" mapstructure:"-"`

	// Notify receives diagnostics, it may be nil
	Notify func(Notice) `yaml:"-" mapstructure:"-"`
}

// Converter turns text with math markup into pronounceable words.
//
// Convert may be called concurrently, Define may not be called concurrently with Convert.
type Converter struct {
	opts    Options
	lexicon map[string]string
}

// NewConverter creates a converter
func NewConverter(opts Options) *Converter {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	c := &Converter{opts: opts, lexicon: map[string]string{}}
	for name, phrase := range opts.Lexicon {
		c.Define(name, phrase)
	}

	return c
}

// Convert converts text using default options
func Convert(text string) string {
	return NewConverter(Options{}).Convert(text)
}

// Define adds a command without arguments, it takes precedence over built-in phrases
func (c *Converter) Define(name, phrase string) {
	c.lexicon[strings.TrimPrefix(name, "\\")] = phrase
}

// Lookup returns what a command is spoken as
func (c *Converter) Lookup(name string) (string, bool) {
	name = strings.TrimPrefix(name, "\\")

	if v, ok := c.lexicon[name]; ok {
		return v, true
	}

	if v, ok := symbol(name); ok {
		return strings.TrimSpace(v), true
	}

	if v, ok := functions[name]; ok {
		return strings.TrimSpace(v), true
	}

	if v, ok := templates[name]; ok {
		return v, true
	}

	if strings.HasPrefix(name, "mathbb{") && strings.HasSuffix(name, "}") {
		if v, ok := numberSets[strings.TrimSuffix(strings.TrimPrefix(name, "mathbb{"), "}")]; ok {
			return strings.TrimSpace(v), true
		}
	}

	return "", false
}

// Names returns every name known to Lookup, sorted
func (c *Converter) Names() []string {
	seen := make(map[string]bool, len(builtinNames)+len(c.lexicon))
	names := make([]string, 0, len(builtinNames)+len(c.lexicon))

	for _, name := range builtinNames {
		seen[name] = true
		names = append(names, name)
	}

	for name := range c.lexicon {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	sort.Strings(names)
	return names
}

// Convert converts text which may freely mix prose and math. It never fails: malformed
// markup degrades to a best-effort phrase.
func (c *Converter) Convert(text string) string {
	w := &walker{lexicon: c.lexicon, notify: c.opts.Notify, maxDepth: c.opts.MaxDepth}

	s := rewriteStarred(text)
	s = w.spans(s)
	s = w.words(s)
	s = DigitsToWords(s)

	if !c.opts.NoQuote {
		s = quoteVariables(s)
	}

	return filter(s)
}

// quoteVariables wraps single-letter variables in double quotes, lower-cased
func quoteVariables(text string) string {
	tokens := strings.Split(text, " ")
	for i, token := range tokens {
		if len(token) != 1 || !isLetter(token[0]) {
			continue
		}

		if literalLetters[token] || spokenLetters[strings.ToLower(token)] {
			continue
		}

		tokens[i] = `"` + strings.ToLower(token) + `"`
	}

	return strings.Join(tokens, " ")
}

// filter keeps letters, periods, commas, double quotes and whitespace
func filter(text string) string {
	return collapse(strings.Map(func(r rune) rune {
		switch {
		case r < unicode.MaxASCII && isLetter(byte(r)):
			return r
		case r == '.' || r == ',' || r == '"' || unicode.IsSpace(r):
			return r
		default:
			return ' '
		}
	}, text))
}
