package speech

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReplaceSpans(t *testing.T) {
	upper := func(s string) string { return strings.ToUpper(s) }

	tt := []struct {
		name   string
		input  string
		open   string
		close  string
		output string
	}{
		{name: "inline", input: "a $x$ b", open: "$", close: "$", output: "a  X  b"},
		{name: "several", input: "$x$,$y$", open: "$", close: "$", output: " X , Y "},
		{name: "empty span", input: "$$", open: "$", close: "$", output: "$$"},
		{name: "unterminated", input: "a $x", open: "$", close: "$", output: "a $x"},
		{name: "first close wins", input: `\(a\)b\)`, open: `\(`, close: `\)`, output: ` A b\)`},
		{name: "no spans", input: "plain", open: "$", close: "$", output: "plain"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.output, replaceSpans(tc.input, tc.open, tc.close, upper)); diff != "" {
				t.Errorf("Output does not match expected (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSpans_DisplayBeforeInline(t *testing.T) {
	w := &walker{maxDepth: DefaultMaxDepth}

	if diff := cmp.Diff("see  a over b  and  x squared ", w.spans(`see $$\frac{a}{b}$$ and $x^2$`)); diff != "" {
		t.Errorf("Output does not match expected (-want +got):\n%s", diff)
	}
}
