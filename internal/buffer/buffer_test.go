package buffer

import "testing"

func TestTextBuffer(t *testing.T) {
	tb := New()
	if tb.String() != "" || tb.ByteOffset() != 0 {
		t.Fatalf("new buffer not empty")
	}

	tb.Write("h\u00e9llo")
	tb.Write("")
	tb.Write(" π\n")
	tb.Write("\n")

	if got := tb.String(); got != "h\u00e9llo π\n\n" {
		t.Errorf("String() = %q", got)
	}
	if got := tb.ByteOffset(); got != len("h\u00e9llo π\n\n") {
		t.Errorf("ByteOffset() = %d", got)
	}
	if got := tb.TrailingNewlineCount(); got != 2 {
		t.Errorf("TrailingNewlineCount() = %d, want 2", got)
	}

	tb.Write("x")
	if got := tb.TrailingNewlineCount(); got != 0 {
		t.Errorf("TrailingNewlineCount() after text = %d, want 0", got)
	}
}
