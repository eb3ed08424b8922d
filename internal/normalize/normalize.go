// Package normalize canonicalizes clipboard text before any pattern matching.
package normalize

import (
	"regexp"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiPunct 特殊 Unicode 标点 → ASCII
var asciiPunct = map[rune]rune{
	'\u2018': '\'', // ‘
	'\u2019': '\'', // ’
	'\u201C': '"',  // “
	'\u201D': '"',  // ”
	'\u2013': '-',  // –
	'\u2014': '-',  // —
	'\u00A0': ' ',  // NBSP
}

func mapPunct(r rune) rune {
	if ascii, ok := asciiPunct[r]; ok {
		return ascii
	}
	return r
}

// lineBreak 匹配 CRLF 以及重复转换留下的 \r\r\n
var lineBreak = regexp.MustCompile(`\r+\n`)

// Text 规范化文本：换行折叠、标点替换、NFKD 兼容分解
//
// NFKD 会把全角符号分解为 ASCII，例如 ＄ 和 ＼ 变成 $ 和 \，
// 因而之后同样会被识别为公式定界符。Text 是幂等的。
func Text(text string) string {
	text = lineBreak.ReplaceAllString(text, "\n")

	// transform.Chain 持有内部缓冲，不能跨 goroutine 共享，每次调用新建
	t := transform.Chain(runes.Map(mapPunct), norm.NFKD, runes.Map(mapPunct))
	out, _, err := transform.String(t, text)
	if err != nil {
		// runes.Map 与 norm 不会返回错误，保底返回原文
		return text
	}
	return out
}
