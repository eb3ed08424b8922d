package eqpaste

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Source provides the text for one run, e.g. the system clipboard.
type Source interface {
	Read(ctx context.Context) (string, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (string, error)

// Read calls f(ctx).
func (f SourceFunc) Read(ctx context.Context) (string, error) {
	return f(ctx)
}

// StaticSource always returns the same text.
type StaticSource string

// Read returns the text.
func (s StaticSource) Read(context.Context) (string, error) {
	return string(s), nil
}

// Runner 保证同一时间只有一次翻译在执行
//
// Trigger 在独立 goroutine 上启动一次运行：读取 Source，翻译并驱动 Sink。
// 运行中再次 Trigger 不做任何事。Cancel 取消当前运行；每次运行使用新的
// context，上一次的取消不会影响下一次。
type Runner struct {
	source Source
	sink   Sink
	opts   []Option

	mu      sync.Mutex
	active  bool
	cancel  context.CancelFunc
	done    chan struct{}
	lastErr error
}

// NewRunner 创建 Runner
func NewRunner(source Source, sink Sink, opts ...Option) *Runner {
	return &Runner{
		source: source,
		sink:   sink,
		opts:   opts,
	}
}

// Trigger starts a run unless one is already active. It reports whether a run
// was started.
func (r *Runner) Trigger(ctx context.Context) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active {
		return false
	}

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	r.active = true
	r.cancel = cancel
	r.done = done
	r.lastErr = nil

	go r.run(runCtx, cancel, done)
	return true
}

// Cancel cancels the active run. It reports whether a run was active.
func (r *Runner) Cancel() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.active {
		return false
	}
	r.cancel()
	return true
}

// Active reports whether a run is in flight.
func (r *Runner) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// Wait blocks until the current run (if any) finishes and returns its error.
// A cancelled run returns context.Canceled.
func (r *Runner) Wait() error {
	r.mu.Lock()
	done := r.done
	r.mu.Unlock()

	if done == nil {
		return nil
	}
	<-done

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}

func (r *Runner) run(ctx context.Context, cancel context.CancelFunc, done chan struct{}) {
	defer close(done)
	defer cancel()

	err := r.process(ctx)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		Logger.Printf("run stopped by user")
	default:
		Logger.Printf("run failed: %v", err)
	}

	r.mu.Lock()
	r.active = false
	r.lastErr = err
	r.mu.Unlock()
}

func (r *Runner) process(ctx context.Context) error {
	text, err := r.source.Read(ctx)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	return Dispatch(ctx, text, r.sink, r.opts...)
}
