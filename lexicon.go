package speech

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Lexicon maps names of commands without arguments to spoken phrases, for example:
//
//	R: real numbers
//	\emptyset: empty set
type Lexicon map[string]string

// ReadLexicon decodes a YAML lexicon. Names may be written with or without the
// leading backslash, but otherwise must consist of letters only.
func ReadLexicon(r io.Reader) (Lexicon, error) {
	raw := map[string]string{}
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding lexicon: %w", err)
	}

	lex := make(Lexicon, len(raw))
	for name, phrase := range raw {
		key := strings.TrimPrefix(name, "\\")
		if key == "" || readName(key, 0) != len(key) {
			return nil, fmt.Errorf("lexicon entry %q: command names must consist of letters", name)
		}

		lex[key] = strings.TrimSpace(phrase)
	}

	return lex, nil
}

// LoadLexicon reads a YAML lexicon file
func LoadLexicon(path string) (Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening lexicon: %w", err)
	}

	defer f.Close()

	return ReadLexicon(f)
}
