// Package segment splits normalized text into plain-text and equation spans.
package segment

import (
	"regexp"
	"strings"

	"github.com/riverfjs/eqpaste-go/internal/types"
)

// 四种公式定界符，按顺序尝试；非贪婪，(?s) 让 . 匹配换行
var equationRe = regexp.MustCompile(`(?s)\\\[(.*?)\\\]|\\\((.*?)\\\)|\$\$(.*?)\$\$|\$(.*?)\$`)

// 子匹配组序号 → 定界符
var groupDelimiters = []types.Delimiter{
	types.BracketDelimiter,
	types.ParenDelimiter,
	types.DoubleDollarDelimiter,
	types.DollarDelimiter,
}

// Split 将规范化后的文本拆分为有序片段
//
// 未闭合的定界符不会匹配，原样留在纯文本中。相邻公式之间的空纯文本不输出。
func Split(text string) []types.Span {
	spans := make([]types.Span, 0)
	cursor := 0

	for _, m := range equationRe.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > cursor {
			spans = append(spans, plainSpan(text[cursor:m[0]], cursor))
		}

		delim, raw := matchedGroup(text, m)
		spans = append(spans, types.Span{
			Kind:      types.Equation,
			Content:   Preprocess(raw),
			Raw:       raw,
			Delimiter: delim,
			Offset:    m[0],
		})
		cursor = m[1]
	}

	if cursor < len(text) {
		spans = append(spans, plainSpan(text[cursor:], cursor))
	}
	return spans
}

func plainSpan(text string, offset int) types.Span {
	return types.Span{
		Kind:    types.PlainText,
		Content: text,
		Raw:     text,
		Offset:  offset,
	}
}

// matchedGroup 找出命中的分支，返回定界符和去掉一层定界符后的内容
func matchedGroup(text string, m []int) (types.Delimiter, string) {
	for g, delim := range groupDelimiters {
		start, end := m[2*(g+1)], m[2*(g+1)+1]
		if start >= 0 {
			return delim, text[start:end]
		}
	}
	return types.NoDelimiter, text[m[0]:m[1]]
}

// Unterminated 返回纯文本中第一个未闭合的起始定界符及其偏移
func Unterminated(plain string) (types.Delimiter, int, bool) {
	best, bestAt := types.NoDelimiter, -1
	for _, delim := range []types.Delimiter{types.BracketDelimiter, types.ParenDelimiter, types.DollarDelimiter} {
		open, _ := delim.Markers()
		at := strings.Index(plain, open)
		if at < 0 || (bestAt >= 0 && at >= bestAt) {
			continue
		}
		best, bestAt = delim, at
	}
	if bestAt < 0 {
		return types.NoDelimiter, 0, false
	}
	if best == types.DollarDelimiter && strings.HasPrefix(plain[bestAt:], "$$") {
		best = types.DoubleDollarDelimiter
	}
	return best, bestAt, true
}

// Reconstruct 把片段还原为规范化文本（公式重新套上定界符）
func Reconstruct(spans []types.Span) string {
	var b strings.Builder
	for _, s := range spans {
		if s.Kind == types.PlainText {
			b.WriteString(s.Raw)
			continue
		}
		open, closing := s.Delimiter.Markers()
		b.WriteString(open)
		b.WriteString(s.Raw)
		b.WriteString(closing)
	}
	return b.String()
}
