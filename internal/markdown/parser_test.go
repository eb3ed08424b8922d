package markdown

import (
	"errors"
	"strings"
	"testing"

	"github.com/yuin/goldmark/ast"
)

func TestFlatten(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain sentence", input: "The energy is ", want: "The energy is "},
		{name: "punctuation only", input: ".", want: "."},
		{name: "bold and italic", input: "**bold** and *it*", want: "bold and it"},
		{name: "strikethrough", input: "~~gone~~ kept", want: "gone kept"},
		{name: "code span", input: "use `x_1` here", want: "use x_1 here"},
		{name: "link text", input: "see [docs](https://example.com)", want: "see docs"},
		{name: "heading and body", input: "# Title\n\nBody", want: "Title\n\nBody"},
		{name: "unordered list", input: "- a\n- b", want: "- a\n- b"},
		{name: "ordered list", input: "1. one\n2. two", want: "1. one\n2. two"},
		{name: "soft break", input: "line one\nline two", want: "line one\nline two"},
		{name: "keeps surrounding whitespace", input: "\n  **x**  ", want: "\n  x  "},
		{name: "whitespace only", input: "   ", want: "   "},
		{name: "fenced code", input: "```\nraw *text*\n```", want: "raw *text*"},
		{name: "table", input: "| a | b |\n|---|---|\n| 1 | 2 |", want: "a | b\n1 | 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Flatten(tt.input)
			if err != nil {
				t.Fatalf("Flatten(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Flatten(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFlatten_TaskList(t *testing.T) {
	got, err := Flatten("- [x] done\n- [ ] todo")
	if err != nil {
		t.Fatalf("Flatten() error = %v", err)
	}
	for _, want := range []string{"[x]", "done", "[ ]", "todo"} {
		if !strings.Contains(got, want) {
			t.Errorf("Flatten task list = %q, missing %q", got, want)
		}
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("Flatten task list = %q, want two lines", got)
	}
}

func TestFlatten_WalkError(t *testing.T) {
	boom := errors.New("bad node")
	failOnText := func(w *Walker, n ast.Node, entering bool) (ast.WalkStatus, error) {
		if n.Kind() == ast.KindText {
			return ast.WalkStop, boom
		}
		return w.Walk(n, entering)
	}

	got, err := flatten("**bold** text", failOnText)
	if !errors.Is(err, boom) {
		t.Fatalf("flatten() error = %v, want %v", err, boom)
	}
	if got != "" {
		t.Errorf("flatten() = %q, want empty on error", got)
	}
}
