package eqpaste

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// blockingSink 在第一次 InsertText 时阻塞，直到 release 关闭
type blockingSink struct {
	Recorder
	started chan struct{}
	release chan struct{}
}

func (s *blockingSink) InsertText(text string) error {
	if s.started != nil {
		close(s.started)
		s.started = nil
		<-s.release
	}
	return s.Recorder.InsertText(text)
}

func quietLogger(t *testing.T) {
	t.Helper()
	prev := Logger
	SetLogger(log.New(io.Discard, "", 0))
	t.Cleanup(func() { SetLogger(prev) })
}

func TestRunner_Run(t *testing.T) {
	quietLogger(t)
	rec := &Recorder{}
	r := NewRunner(StaticSource(`x $y^2$`), rec, WithPlainText(false))

	if !r.Trigger(context.Background()) {
		t.Fatal("Trigger() = false on idle runner")
	}
	if err := r.Wait(); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if r.Active() {
		t.Error("Active() = true after run finished")
	}

	want := seq(begin, TextAction("y"), sup, TextAction("2"), exit, end)
	if diff := cmp.Diff(want, rec.Actions); diff != "" {
		t.Errorf("actions mismatch (-want +got):\n%s", diff)
	}
}

func TestRunner_TriggerWhileActive(t *testing.T) {
	quietLogger(t)
	sink := &blockingSink{started: make(chan struct{}), release: make(chan struct{})}
	started := sink.started
	r := NewRunner(StaticSource("hello"), sink)

	if !r.Trigger(context.Background()) {
		t.Fatal("first Trigger() = false")
	}
	<-started
	if r.Trigger(context.Background()) {
		t.Error("second Trigger() started a run while one was active")
	}
	close(sink.release)

	if err := r.Wait(); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if diff := cmp.Diff(seq(TextAction("hello")), sink.Actions); diff != "" {
		t.Errorf("actions mismatch (-want +got):\n%s", diff)
	}
}

func TestRunner_Cancel(t *testing.T) {
	quietLogger(t)
	sink := &blockingSink{started: make(chan struct{}), release: make(chan struct{})}
	started := sink.started
	r := NewRunner(StaticSource("lead $a+b$ tail"), sink)

	if r.Cancel() {
		t.Error("Cancel() = true on idle runner")
	}
	r.Trigger(context.Background())
	<-started
	if !r.Cancel() {
		t.Error("Cancel() = false on active runner")
	}
	close(sink.release)

	if err := r.Wait(); !errors.Is(err, context.Canceled) {
		t.Fatalf("Wait() error = %v, want context.Canceled", err)
	}
	// 只完成了阻塞中的那一个动作
	if diff := cmp.Diff(seq(TextAction("lead ")), sink.Actions); diff != "" {
		t.Errorf("actions mismatch (-want +got):\n%s", diff)
	}

	// 取消不影响下一次运行
	rec := &Recorder{}
	r2 := NewRunner(StaticSource("$z$"), rec)
	r2.Trigger(context.Background())
	r2.Cancel()
	_ = r2.Wait()
	r2.Trigger(context.Background())
	if err := r2.Wait(); err != nil {
		t.Fatalf("Wait() after re-trigger error = %v", err)
	}
	if len(rec.Actions) == 0 || rec.Actions[len(rec.Actions)-1] != end {
		t.Errorf("second run did not complete: %v", rec.Actions)
	}
}

func TestRunner_SourceError(t *testing.T) {
	quietLogger(t)
	boom := errors.New("clipboard unavailable")
	r := NewRunner(SourceFunc(func(context.Context) (string, error) {
		return "", boom
	}), &Recorder{})

	r.Trigger(context.Background())
	err := r.Wait()
	if !errors.Is(err, boom) {
		t.Fatalf("Wait() error = %v, want %v", err, boom)
	}
	if got := err.Error(); got != "read source: clipboard unavailable" {
		t.Errorf("Wait() error = %q", got)
	}
}

func TestRunner_WaitIdle(t *testing.T) {
	r := NewRunner(StaticSource(""), &Recorder{})
	if err := r.Wait(); err != nil {
		t.Errorf("Wait() on idle runner = %v", err)
	}
}
