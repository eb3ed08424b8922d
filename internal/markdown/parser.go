// Package markdown flattens Markdown in plain-text spans to readable text.
package markdown

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// StandardOptions goldmark 扩展配置
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM, // tables, strikethrough, tasklists
	),
}

// Flatten 解析 Markdown 并输出去掉标记的纯文本
//
// 原文首尾的空白原样保留，片段拼接回去时单词之间的空格不会丢失。
// 遍历 AST 失败时返回错误和空字符串。
func Flatten(markdown string) (string, error) {
	return flatten(markdown, (*Walker).Walk)
}

// visitFunc 对每个节点调用的遍历函数
type visitFunc func(w *Walker, n ast.Node, entering bool) (ast.WalkStatus, error)

func flatten(markdown string, visit visitFunc) (string, error) {
	body := strings.TrimSpace(markdown)
	if body == "" {
		return markdown, nil
	}
	start := strings.Index(markdown, body)
	leading, trailing := markdown[:start], markdown[start+len(body):]

	source := []byte(body)
	node := parse(source)

	walker := NewWalker(source)
	err := ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		return visit(walker, n, entering)
	})
	if err != nil {
		return "", fmt.Errorf("walk markdown: %w", err)
	}

	return leading + walker.Result() + trailing, nil
}

func parse(source []byte) ast.Node {
	md := goldmark.New(StandardOptions...)
	return md.Parser().Parse(text.NewReader(source))
}
