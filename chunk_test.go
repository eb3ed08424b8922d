package eqpaste

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

func TestSplitText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxRunes int
		want     []string
	}{
		{name: "fits", text: "short", maxRunes: 10, want: []string{"short"}},
		{name: "disabled", text: "whatever length", maxRunes: 0, want: []string{"whatever length"}},
		{name: "newline split", text: "aaaa\nbbbb\ncccc", maxRunes: 10, want: []string{"aaaa\nbbbb\n", "cccc"}},
		{name: "hard split", text: "abcdefghij", maxRunes: 4, want: []string{"abcd", "efgh", "ij"}},
		{name: "hard split keeps runes whole", text: "αβγδε", maxRunes: 2, want: []string{"αβ", "γδ", "ε"}},
		{name: "newline preferred over hard split", text: "ab\ncdefgh", maxRunes: 5, want: []string{"ab\n", "cdefg", "h"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitText(tt.text, tt.maxRunes)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitText(%q, %d) mismatch (-want +got):\n%s", tt.text, tt.maxRunes, diff)
			}
		})
	}
}

func TestSplitText_Reassembles(t *testing.T) {
	text := strings.Repeat("line with π and ∑\n", 20) + strings.Repeat("x", 50)
	for _, size := range []int{1, 3, 7, 16, 64, 1000} {
		chunks := SplitText(text, size)
		if got := strings.Join(chunks, ""); got != text {
			t.Fatalf("size %d: chunks do not reassemble the text", size)
		}
		for _, c := range chunks {
			if n := utf8.RuneCountInString(c); n > size || n == 0 {
				t.Errorf("size %d: chunk %q has %d runes", size, c, n)
			}
		}
	}
}
