// Package equation turns one preprocessed equation into equation-editor actions.
package equation

import (
	"context"
	"fmt"
	"strings"

	"github.com/riverfjs/eqpaste-go/internal/types"
)

const fracPrefix = `\frac`

// EmitFunc 接收一个动作；返回错误时翻译中止
type EmitFunc func(types.Action) error

// ReportFunc 接收已在本地降级处理的问题
type ReportFunc func(types.Issue)

type translator struct {
	ctx    context.Context
	emit   EmitFunc
	report ReportFunc
}

// Translate 从左到右递归遍历公式，按顺序发出动作
//
// 每一步（字符、命令、花括号组）之前以及每次发出动作之前都检查 ctx；
// 取消后立即返回 ctx.Err()，已打开的组不再补发 ExitGroup。
// 畸形输入不会返回错误：缺失或未闭合的花括号组按空内容/剩余文本处理，
// 并通过 report 通知。
func Translate(ctx context.Context, src string, emit EmitFunc, report ReportFunc) error {
	if report == nil {
		report = func(types.Issue) {}
	}
	t := &translator{ctx: ctx, emit: emit, report: report}
	return t.walk(src, 0)
}

// Actions 收集 Translate 的全部动作
func Actions(ctx context.Context, src string) ([]types.Action, error) {
	actions := make([]types.Action, 0, len(src))
	err := Translate(ctx, src, func(a types.Action) error {
		actions = append(actions, a)
		return nil
	}, nil)
	return actions, err
}

// walk 翻译 src；base 是 src 在整条公式中的偏移，仅用于问题定位
func (t *translator) walk(src string, base int) error {
	c := cursor{src: src}
	for !c.done() {
		if err := t.ctx.Err(); err != nil {
			return err
		}
		next, err := t.step(c, base)
		if err != nil {
			return err
		}
		c = next
	}
	return nil
}

func (t *translator) step(c cursor, base int) (cursor, error) {
	switch c.peek() {
	case '\\':
		// \frac 按前缀识别，\fracab 同样进入分数
		if strings.HasPrefix(c.src[c.pos:], fracPrefix) {
			return t.fraction(c.advance(len(fracPrefix)), base)
		}
		name, next, ok := c.command()
		if !ok {
			return c.advance(1), t.send(types.InsertText, `\`)
		}
		return next, t.send(types.InsertCommand, name)

	case '_':
		return t.script(c.advance(1), base, types.EnterSubscript)

	case '^':
		return t.script(c.advance(1), base, types.EnterSuperscript)

	default:
		char, next := c.nextRune()
		return next, t.send(types.InsertText, char)
	}
}

// fraction 处理 \frac{num}{den}；c 位于 \frac 之后
func (t *translator) fraction(c cursor, base int) (cursor, error) {
	if err := t.send(types.EnterFraction, ""); err != nil {
		return c, err
	}

	for _, part := range [...]string{"numerator", "denominator"} {
		if err := t.ctx.Err(); err != nil {
			return c, err
		}
		if group, ok := c.braceGroup(); ok {
			if err := t.group(group, base); err != nil {
				return c, err
			}
			c = c.seek(group.end)
		} else {
			t.issue(types.MissingBraceGroup, base+c.pos, `\frac `+part)
		}
		if err := t.send(types.ExitGroup, ""); err != nil {
			return c, err
		}
	}
	return c, nil
}

// script 处理下标/上标；c 位于 _ 或 ^ 之后
//
// 主体为花括号组，否则为下一个字符；到达末尾时主体为空。
func (t *translator) script(c cursor, base int, enter types.ActionKind) (cursor, error) {
	if err := t.send(enter, ""); err != nil {
		return c, err
	}

	switch group, ok := c.braceGroup(); {
	case ok:
		if err := t.group(group, base); err != nil {
			return c, err
		}
		c = c.seek(group.end)
	case !c.done():
		start := c.pos
		var body string
		body, c = c.nextRune()
		if err := t.walk(body, base+start); err != nil {
			return c, err
		}
	default:
		t.issue(types.MissingBraceGroup, base+c.pos, enter.String()+" body")
	}

	return c, t.send(types.ExitGroup, "")
}

func (t *translator) group(g braceGroup, base int) error {
	if !g.terminated {
		t.issue(types.UnterminatedBraceGroup, base+g.start-1, "")
	}
	return t.walk(g.content, base+g.start)
}

func (t *translator) send(kind types.ActionKind, text string) error {
	if err := t.ctx.Err(); err != nil {
		return err
	}
	action := types.Action{Kind: kind, Text: text}
	if err := t.emit(action); err != nil {
		return fmt.Errorf("emit %s: %w", action, err)
	}
	return nil
}

func (t *translator) issue(kind types.IssueKind, offset int, detail string) {
	t.report(types.Issue{Kind: kind, Offset: offset, Detail: detail})
}
