package eqpaste

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKeystrokeSink(t *testing.T) {
	sink := NewKeystrokeSink(nil)
	if err := Dispatch(context.Background(), `Let \(\alpha_{i} = \frac{1}{2}\).`, sink); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}

	want := []Keystroke{
		{Kind: KeystrokeWrite, Text: "Let "},
		{Kind: KeystrokeHotkey, Keys: []string{"alt", "i"}},
		{Kind: KeystrokePress, Keys: []string{"e"}},
		{Kind: KeystrokeWrite, Text: `\alpha`},
		{Kind: KeystrokePress, Keys: []string{"space"}},
		{Kind: KeystrokeWrite, Text: "_"},
		{Kind: KeystrokeWrite, Text: "i"},
		{Kind: KeystrokePress, Keys: []string{"right"}},
		{Kind: KeystrokeWrite, Text: " "},
		{Kind: KeystrokeWrite, Text: "="},
		{Kind: KeystrokeWrite, Text: " "},
		{Kind: KeystrokeWrite, Text: `\frac`},
		{Kind: KeystrokePress, Keys: []string{"space"}},
		{Kind: KeystrokeWrite, Text: "1"},
		{Kind: KeystrokePress, Keys: []string{"right"}},
		{Kind: KeystrokeWrite, Text: "2"},
		{Kind: KeystrokePress, Keys: []string{"right"}},
		{Kind: KeystrokePress, Keys: []string{"right"}},
		{Kind: KeystrokeWrite, Text: "."},
	}
	if diff := cmp.Diff(want, sink.Keystrokes); diff != "" {
		t.Errorf("keystrokes mismatch (-want +got):\n%s", diff)
	}
}

func TestKeystrokeSink_SendFailure(t *testing.T) {
	boom := errors.New("no display")
	sent := 0
	sink := NewKeystrokeSink(func(Keystroke) error {
		sent++
		if sent == 2 {
			return boom
		}
		return nil
	})

	err := Dispatch(context.Background(), `a $b$`, sink)
	if !errors.Is(err, boom) {
		t.Fatalf("Dispatch() error = %v, want %v", err, boom)
	}
	if sent != 2 {
		t.Errorf("Send called %d times, want 2", sent)
	}
}

func TestKeystroke_JSON(t *testing.T) {
	data, err := json.Marshal([]Keystroke{
		{Kind: KeystrokeWrite, Text: `\frac`},
		{Kind: KeystrokeHotkey, Keys: []string{"alt", "i"}},
	})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	want := `[{"kind":"write","text":"\\frac"},{"kind":"hotkey","keys":["alt","i"]}]`
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}
}

func TestKeystroke_ToDict(t *testing.T) {
	d := Keystroke{Kind: KeystrokePress, Keys: []string{"right"}}.ToDict()
	if d["kind"] != "press" {
		t.Errorf("ToDict()[kind] = %v", d["kind"])
	}
	if _, ok := d["text"]; ok {
		t.Error("ToDict() should omit empty text")
	}
	if keys, ok := d["keys"].([]string); !ok || len(keys) != 1 || keys[0] != "right" {
		t.Errorf("ToDict()[keys] = %v", d["keys"])
	}
}
