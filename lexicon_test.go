package speech_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	speech "github.com/eolymp/go-latex-speech"
)

func TestReadLexicon(t *testing.T) {
	tt := []struct {
		name    string
		input   string
		output  speech.Lexicon
		wantErr bool
	}{
		{
			name:   "entries",
			input:  "emptyset: empty set\n'\\varnothing': ' empty set '\n",
			output: speech.Lexicon{"emptyset": "empty set", "varnothing": "empty set"},
		},
		{
			name:   "empty document",
			input:  "",
			output: speech.Lexicon{},
		},
		{
			name:    "name with digits",
			input:   "x2: something\n",
			wantErr: true,
		},
		{
			name:    "not a mapping",
			input:   "- a\n- b\n",
			wantErr: true,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got, err := speech.ReadLexicon(strings.NewReader(tc.input))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Expected an error, got %v", got)
				}

				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if diff := cmp.Diff(tc.output, got); diff != "" {
				t.Errorf("Lexicon does not match expected (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadLexicon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	if err := os.WriteFile(path, []byte("QED: end of proof\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	lex, err := speech.LoadLexicon(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	c := speech.NewConverter(speech.Options{Lexicon: lex})
	if diff := cmp.Diff("which is end of proof", c.Convert(`which is \QED`)); diff != "" {
		t.Errorf("Output does not match expected (-want +got):\n%s", diff)
	}

	if _, err := speech.LoadLexicon(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
