package equation

import "unicode/utf8"

// cursor 公式文本中的只读位置，按值传递，前进时返回新值
type cursor struct {
	src string
	pos int
}

func (c cursor) done() bool {
	return c.pos >= len(c.src)
}

func (c cursor) peek() byte {
	return c.src[c.pos]
}

func (c cursor) advance(n int) cursor {
	c.pos += n
	if c.pos > len(c.src) {
		c.pos = len(c.src)
	}
	return c
}

func (c cursor) seek(pos int) cursor {
	c.pos = pos
	return c
}

// nextRune 读取一个完整字符
func (c cursor) nextRune() (string, cursor) {
	_, size := utf8.DecodeRuneInString(c.src[c.pos:])
	return c.src[c.pos : c.pos+size], c.advance(size)
}

// command 读取 \ 后最长的 [a-zA-Z]+ 串；没有字母时 ok 为 false
func (c cursor) command() (name string, next cursor, ok bool) {
	if c.done() || c.peek() != '\\' {
		return "", c, false
	}
	end := c.pos + 1
	for end < len(c.src) && isLetter(c.src[end]) {
		end++
	}
	if end == c.pos+1 {
		return "", c, false
	}
	return c.src[c.pos+1 : end], c.seek(end), true
}

// braceGroup 花括号组的提取结果
type braceGroup struct {
	content    string // 最外层花括号之间的内容
	start      int    // content 在源文本中的起点
	end        int    // 匹配的 } 之后的位置
	terminated bool
}

// braceGroup 从 { 开始按嵌套计数提取内容
//
// 光标不在 { 上时返回 ok=false 且不消耗输入。缺少匹配的 } 时，
// 剩余文本全部作为内容，end 为文本末尾。
func (c cursor) braceGroup() (braceGroup, bool) {
	if c.done() || c.peek() != '{' {
		return braceGroup{}, false
	}

	start := c.pos + 1
	depth := 1
	for i := start; i < len(c.src); i++ {
		switch c.src[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return braceGroup{content: c.src[start:i], start: start, end: i + 1, terminated: true}, true
			}
		}
	}
	return braceGroup{content: c.src[start:], start: start, end: len(c.src)}, true
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
