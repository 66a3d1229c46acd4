package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	speech "github.com/eolymp/go-latex-speech"
)

func TestReadInput(t *testing.T) {
	text, err := readInput(strings.NewReader("ignored"), []string{"x", `\in`, "A"})
	require.NoError(t, err)
	assert.Equal(t, `x \in A`, text)

	text, err = readInput(strings.NewReader("$x^2$\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, "$x^2$\n", text)
}

func TestWriteOutput(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, writeOutput(&buf, "one"))
	require.NoError(t, writeOutput(&buf, "two\n"))
	require.NoError(t, writeOutput(&buf, ""))

	assert.Equal(t, "one\ntwo\n\n", buf.String())
}

func TestNewConverter(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(t *testing.T, v *viper.Viper)
		input  string
		want   string
		errMsg string
	}{
		{
			name:  "defaults",
			setup: func(t *testing.T, v *viper.Viper) {},
			input: `x \in A`,
			want:  `"x" is an element of A`,
		},
		{
			name: "no quote",
			setup: func(t *testing.T, v *viper.Viper) {
				v.Set("no_quote", true)
			},
			input: `x \in A`,
			want:  "x is an element of A",
		},
		{
			name: "max depth",
			setup: func(t *testing.T, v *viper.Viper) {
				v.Set("max_depth", 2)
			},
			input: `\frac{\frac{\frac{a}{b}}{c}}{d}`,
			want:  `too deeply nested over too deeply nested over "d"`,
		},
		{
			name: "lexicon file",
			setup: func(t *testing.T, v *viper.Viper) {
				path := filepath.Join(t.TempDir(), "lexicon.yaml")
				require.NoError(t, os.WriteFile(path, []byte("emptyset: empty set\n"), 0o644))
				v.Set("lexicon_file", path)
			},
			input: `A = \emptyset`,
			want:  "A equals empty set",
		},
		{
			name: "missing lexicon file",
			setup: func(t *testing.T, v *viper.Viper) {
				v.Set("lexicon_file", filepath.Join(t.TempDir(), "missing.yaml"))
			},
			errMsg: "opening lexicon",
		},
		{
			name: "invalid lexicon file",
			setup: func(t *testing.T, v *viper.Viper) {
				path := filepath.Join(t.TempDir(), "lexicon.yaml")
				require.NoError(t, os.WriteFile(path, []byte("x1: nope\n"), 0o644))
				v.Set("lexicon_file", path)
			},
			errMsg: "command names must consist of letters",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := viper.New()
			tc.setup(t, v)

			conv, err := newConverter(v, log.New(&bytes.Buffer{}, "", 0))
			if tc.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, conv.Convert(tc.input))
		})
	}
}

func TestNewConverter_Verbose(t *testing.T) {
	var buf bytes.Buffer

	v := viper.New()
	v.Set("verbose", true)
	v.Set("max_depth", 1)

	conv, err := newConverter(v, log.New(&buf, "", 0))
	require.NoError(t, err)

	conv.Convert(`\alp x`)
	conv.Convert(`\frac{a}{b}`)

	assert.Contains(t, buf.String(), `dropped unknown command \alp, did you mean \`)
	assert.Contains(t, buf.String(), "input is nested deeper than 1 levels")
}

func TestEvalLine(t *testing.T) {
	conv := speech.NewConverter(speech.Options{})

	tests := []struct {
		name  string
		line  string
		reply string
		quit  bool
	}{
		{name: "text", line: `  x \notin A `, reply: `"x" is not an element of A`},
		{name: "blank", line: "   ", reply: ""},
		{name: "quit", line: ":quit", quit: true},
		{name: "short quit", line: ":q", quit: true},
		{name: "help", line: ":help", reply: replHelp},
		{name: "lookup", line: `:lookup \alpha`, reply: `\alpha: alpha`},
		{name: "lookup usage", line: ":lookup", reply: "usage: :lookup <name>"},
		{name: "unknown", line: ":bogus", reply: "unknown REPL command :bogus, try :help"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reply, quit := evalLine(conv, tc.line)
			assert.Equal(t, tc.reply, reply)
			assert.Equal(t, tc.quit, quit)
		})
	}
}

func TestHistoryPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	assert.Equal(t, filepath.Join(home, historyFile), historyPath())

	t.Setenv("HOME", "")
	assert.Empty(t, historyPath())
}

func TestDescribe(t *testing.T) {
	conv := speech.NewConverter(speech.Options{})

	text, err := describe(conv, "frac")
	require.NoError(t, err)
	assert.Equal(t, `\frac: <a> over <b>`, text)

	_, err = describe(conv, `\frc`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean \frac`)

	_, err = describe(conv, "zzz")
	require.Error(t, err)
	assert.Equal(t, `unknown command \zzz`, err.Error())
}

func TestSuggest(t *testing.T) {
	names := speech.NewConverter(speech.Options{}).Names()

	got := suggest("frc", names)
	require.NotEmpty(t, got)
	assert.Equal(t, "frac", got[0])
	assert.LessOrEqual(t, len(got), maxSuggestions)

	assert.Empty(t, suggest("zzz", names))
	assert.Empty(t, suggest("", names))
}

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{
			name: "arguments",
			args: []string{"x", `\notin`, "A"},
			want: "\"x\" is not an element of A\n",
		},
		{
			name:  "standard input",
			args:  []string{},
			stdin: "Let $x^2$ be positive.",
			want:  "Let \"x\" squared be positive.\n",
		},
		{
			name: "version",
			args: []string{"version"},
			want: "latex-speech dev\n",
		},
		{
			name: "lookup",
			args: []string{"lookup", `\frac`},
			want: "\\frac: <a> over <b>\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer

			rootCmd.SetArgs(tc.args)
			rootCmd.SetIn(strings.NewReader(tc.stdin))
			rootCmd.SetOut(&out)
			rootCmd.SetErr(&bytes.Buffer{})

			require.NoError(t, rootCmd.Execute())
			assert.Equal(t, tc.want, out.String())
		})
	}
}
