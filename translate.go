package eqpaste

import (
	"context"
	"fmt"

	"github.com/riverfjs/eqpaste-go/internal/equation"
	"github.com/riverfjs/eqpaste-go/internal/markdown"
	"github.com/riverfjs/eqpaste-go/internal/normalize"
	"github.com/riverfjs/eqpaste-go/internal/segment"
	"github.com/riverfjs/eqpaste-go/internal/types"
)

// Normalize 将特殊 Unicode 标点替换为 ASCII 并做 NFKD 兼容分解
func Normalize(text string) string {
	return normalize.Text(text)
}

// Segment 规范化原始文本并拆分为纯文本/公式片段
func Segment(raw string) []Span {
	return segment.Split(Normalize(raw))
}

// TranslateEquation 将一条预处理后的公式翻译为动作序列
func TranslateEquation(ctx context.Context, eq string) ([]Action, error) {
	return equation.Actions(ctx, eq)
}

// Translate 将原始文本翻译为完整的动作序列
//
// 公式动作由 BeginEquation / EndEquation 包裹；纯文本为 InsertText。
// 取消时返回已生成的动作和 ctx.Err()。
func Translate(ctx context.Context, raw string, opts ...Option) ([]Action, error) {
	actions := make([]Action, 0)
	err := Stream(ctx, raw, func(a Action) error {
		actions = append(actions, a)
		return nil
	}, opts...)
	return actions, err
}

// Stream 按文档顺序逐个发出动作：normalize → segment → 逐片段翻译
//
// 每个片段开始前检查一次 ctx；公式内部的检查粒度见 equation.Translate。
// 畸形输入在本地降级处理，只会通过 WithIssueHandler 报告，不会返回错误。
// 返回的错误只可能来自 ctx 取消或 emit。
func Stream(ctx context.Context, raw string, emit func(Action) error, opts ...Option) error {
	options := applyOptions(opts...)
	cfg := options.Config

	report := func(types.Issue) {}
	if options.IssueHandler != nil {
		report = options.IssueHandler
	}

	for _, span := range Segment(raw) {
		if err := ctx.Err(); err != nil {
			return err
		}

		if span.Kind == types.Equation {
			if err := streamEquation(ctx, span, emit, report); err != nil {
				return err
			}
			continue
		}

		if _, at, ok := segment.Unterminated(span.Content); ok {
			report(types.Issue{Kind: types.MalformedDelimiter, SpanOffset: span.Offset, Offset: at})
		}
		if !cfg.IncludePlainText {
			continue
		}
		if err := streamText(ctx, span.Content, cfg, emit); err != nil {
			return err
		}
	}
	return nil
}

// Dispatch 驱动 Sink 执行完整的翻译
func Dispatch(ctx context.Context, raw string, sink Sink, opts ...Option) error {
	return Stream(ctx, raw, func(a Action) error {
		return Apply(sink, a)
	}, opts...)
}

func streamEquation(ctx context.Context, span Span, emit func(Action) error, report func(types.Issue)) error {
	if err := send(emit, Action{Kind: ActionBeginEquation}); err != nil {
		return err
	}

	located := func(issue types.Issue) {
		issue.SpanOffset = span.Offset
		report(issue)
	}
	if err := equation.Translate(ctx, span.Content, emit, located); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	return send(emit, Action{Kind: ActionEndEquation})
}

func streamText(ctx context.Context, text string, cfg *Config, emit func(Action) error) error {
	if cfg.MarkdownText {
		flat, err := markdown.Flatten(text)
		if err != nil {
			return fmt.Errorf("flatten text: %w", err)
		}
		text = flat
	}
	if text == "" {
		return nil
	}

	chunks := []string{text}
	if cfg.TextChunkSize > 0 {
		chunks = SplitText(text, cfg.TextChunkSize)
	}
	for i, chunk := range chunks {
		if i > 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := send(emit, TextAction(chunk)); err != nil {
			return err
		}
	}
	return nil
}

func send(emit func(Action) error, a Action) error {
	if err := emit(a); err != nil {
		return fmt.Errorf("emit %s: %w", a, err)
	}
	return nil
}
