package speech

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadGroup(t *testing.T) {
	tt := []struct {
		name    string
		input   string
		start   int
		content string
		next    int
	}{
		{name: "brace group", input: "{abc}d", content: "abc", next: 5},
		{name: "nested braces", input: "{a{b}c}", content: "a{b}c", next: 7},
		{name: "leading spaces", input: "   {x}", content: "x", next: 6},
		{name: "single character", input: "xy", content: "x", next: 1},
		{name: "multibyte character", input: "αβ", content: "α", next: 2},
		{name: "bare command", input: `\alpha+1`, content: `\alpha`, next: 6},
		{name: "command with group", input: `\mathbf{u} v`, content: `\mathbf{u}`, next: 10},
		{name: "unterminated group", input: "{abc", content: "abc", next: 4},
		{name: "end of input", input: "x  ", start: 1, content: "", next: 3},
		{name: "offset", input: "^{2}", start: 1, content: "2", next: 4},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			content, next := readGroup(tc.input, tc.start)

			if diff := cmp.Diff(tc.content, content); diff != "" {
				t.Errorf("Content does not match expected (-want +got):\n%s", diff)
			}

			if next != tc.next {
				t.Errorf("Next position is %d, want %d", next, tc.next)
			}
		})
	}
}

func TestReadOption(t *testing.T) {
	tt := []struct {
		name   string
		input  string
		option string
		next   int
		ok     bool
	}{
		{name: "option", input: "[3]{x}", option: "3", next: 3, ok: true},
		{name: "nested option", input: "[a[b]]", option: "a[b]", next: 6, ok: true},
		{name: "no option", input: "{x}", option: "", next: 0, ok: false},
		{name: "space before option", input: " [3]", option: "", next: 0, ok: false},
		{name: "unterminated", input: "[3", option: "3", next: 2, ok: true},
		{name: "empty input", input: "", option: "", next: 0, ok: false},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			option, next, ok := readOption(tc.input, 0)

			if diff := cmp.Diff(tc.option, option); diff != "" {
				t.Errorf("Option does not match expected (-want +got):\n%s", diff)
			}

			if next != tc.next || ok != tc.ok {
				t.Errorf("readOption returned (%d, %v), want (%d, %v)", next, ok, tc.next, tc.ok)
			}
		})
	}
}

func TestReadArgument(t *testing.T) {
	tt := []struct {
		name    string
		input   string
		content string
		next    int
	}{
		{name: "parenthesis", input: " (u+v) w", content: "u+v", next: 6},
		{name: "nested parenthesis", input: "(f(x))", content: "f(x)", next: 6},
		{name: "brace group", input: "{u}", content: "u", next: 3},
		{name: "command", input: `\mathbf{u}`, content: `\mathbf{u}`, next: 10},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			content, next := readArgument(tc.input, 0)

			if diff := cmp.Diff(tc.content, content); diff != "" {
				t.Errorf("Content does not match expected (-want +got):\n%s", diff)
			}

			if next != tc.next {
				t.Errorf("Next position is %d, want %d", next, tc.next)
			}
		})
	}
}
