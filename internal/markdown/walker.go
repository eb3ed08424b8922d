package markdown

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/riverfjs/eqpaste-go/internal/buffer"
)

// Walker 遍历 goldmark AST 并生成纯文本
type Walker struct {
	buf    *buffer.TextBuffer
	source []byte

	// Block-level state
	blockCount int
	listStack  []*int // nil=unordered, *int=ordered(next_number)

	// Table state
	tableRows   [][]string
	currentRow  []string
	cellParts   []string
	inTableCell bool
}

// NewWalker 创建新的 Walker
func NewWalker(source []byte) *Walker {
	return &Walker{
		buf:       buffer.New(),
		source:    source,
		listStack: make([]*int, 0),
	}
}

// Walk 遍历 AST 节点
func (w *Walker) Walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := node.(type) {
	// --- Inline elements ---
	case *ast.Text:
		if entering {
			w.onText(n.Segment, n.SoftLineBreak(), n.HardLineBreak())
		}

	case *ast.String:
		if entering {
			w.write(string(n.Value))
		}

	case *ast.CodeSpan:
		if entering {
			w.write(extractCodeSpanText(n, w.source))
			return ast.WalkSkipChildren, nil
		}

	case *ast.AutoLink:
		if entering {
			w.write(string(n.URL(w.source)))
			return ast.WalkSkipChildren, nil
		}

	case *ast.RawHTML, *ast.HTMLBlock:
		return ast.WalkSkipChildren, nil

	// --- Block elements ---
	case *ast.Paragraph:
		if entering {
			w.onStartParagraph()
		} else {
			w.onEndParagraph()
		}

	case *ast.Heading, *ast.Blockquote:
		if entering {
			w.ensureBlockSpacing()
		} else {
			w.blockCount++
		}

	case *ast.List:
		if entering {
			w.onStartList(n)
		} else {
			w.onEndList()
		}

	case *ast.ListItem:
		if entering {
			w.onStartItem()
		} else if w.buf.TrailingNewlineCount() == 0 {
			w.buf.Write("\n")
		}

	case *east.TaskCheckBox:
		if entering {
			if n.IsChecked {
				w.buf.Write("[x] ")
			} else {
				w.buf.Write("[ ] ")
			}
		}

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if entering {
			w.onCodeBlock(n)
			return ast.WalkSkipChildren, nil
		}

	case *ast.ThematicBreak:
		if entering {
			w.ensureBlockSpacing()
			w.buf.Write("---")
			w.blockCount++
		}

	// --- Table ---
	case *east.Table:
		if entering {
			w.ensureBlockSpacing()
			w.tableRows = make([][]string, 0)
		} else {
			w.buf.Write(formatTable(w.tableRows))
			w.tableRows = nil
			w.blockCount++
		}

	case *east.TableHeader, *east.TableRow:
		if entering {
			w.currentRow = make([]string, 0)
		} else {
			w.tableRows = append(w.tableRows, w.currentRow)
			w.currentRow = nil
		}

	case *east.TableCell:
		if entering {
			w.cellParts = make([]string, 0)
			w.inTableCell = true
		} else {
			w.currentRow = append(w.currentRow, strings.Join(w.cellParts, ""))
			w.cellParts = nil
			w.inTableCell = false
		}
	}

	return ast.WalkContinue, nil
}

// Result 返回展平后的文本（去掉末尾换行）
func (w *Walker) Result() string {
	return strings.TrimRight(w.buf.String(), "\n")
}

// --- Text handling ---

func (w *Walker) onText(seg text.Segment, softBreak bool, hardBreak bool) {
	textContent := string(seg.Value(w.source))

	if w.inTableCell {
		// Table cells: soft breaks become spaces
		if softBreak {
			textContent += " "
		}
		w.cellParts = append(w.cellParts, textContent)
		return
	}

	if softBreak || hardBreak {
		textContent += "\n"
	}
	w.buf.Write(textContent)
}

func (w *Walker) write(textContent string) {
	if w.inTableCell {
		w.cellParts = append(w.cellParts, textContent)
		return
	}
	w.buf.Write(textContent)
}

// --- Paragraph ---

func (w *Walker) onStartParagraph() {
	if len(w.listStack) == 0 {
		w.ensureBlockSpacing()
	}
}

func (w *Walker) onEndParagraph() {
	if len(w.listStack) == 0 {
		w.blockCount++
	} else if w.buf.TrailingNewlineCount() == 0 {
		// loose list 中段落结束时写入换行，避免多段落粘连
		w.buf.Write("\n")
	}
}

// --- Code block ---

func (w *Walker) onCodeBlock(n ast.Node) {
	w.ensureBlockSpacing()

	var parts []string
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		parts = append(parts, string(line.Value(w.source)))
	}
	w.buf.Write(strings.TrimSuffix(strings.Join(parts, ""), "\n"))
	w.blockCount++
}

// --- Lists ---

func (w *Walker) onStartList(n *ast.List) {
	if len(w.listStack) == 0 {
		w.ensureBlockSpacing()
	}

	if n.IsOrdered() {
		start := n.Start
		w.listStack = append(w.listStack, &start)
	} else {
		w.listStack = append(w.listStack, nil)
	}
}

func (w *Walker) onStartItem() {
	depth := len(w.listStack)
	indent := strings.Repeat("  ", depth-1)

	// 嵌套列表：父项文本后没有换行时，插入换行确保子项独占一行
	if w.buf.ByteOffset() > 0 && w.buf.TrailingNewlineCount() == 0 {
		w.buf.Write("\n")
	}

	current := w.listStack[depth-1]
	if current != nil {
		w.buf.Write(fmt.Sprintf("%s%d. ", indent, *current))
		*current++
	} else {
		w.buf.Write(indent + "- ")
	}
}

func (w *Walker) onEndList() {
	if len(w.listStack) > 0 {
		w.listStack = w.listStack[:len(w.listStack)-1]
	}
	if len(w.listStack) == 0 {
		w.blockCount++
	}
}

// --- Tables ---

func formatTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = strings.TrimSpace(cell)
		}
		lines = append(lines, strings.Join(cells, " | "))
	}
	return strings.Join(lines, "\n")
}

func (w *Walker) ensureBlockSpacing() {
	// Ensure a blank line (\n\n) between blocks, avoiding excess newlines
	if w.blockCount > 0 {
		needed := 2 - w.buf.TrailingNewlineCount()
		if needed > 0 {
			w.buf.Write(strings.Repeat("\n", needed))
		}
	}
}

// --- Utilities ---

func extractCodeSpanText(n *ast.CodeSpan, source []byte) string {
	var buf strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if textNode, ok := c.(*ast.Text); ok {
			_, _ = buf.Write(textNode.Segment.Value(source))
		}
	}
	return buf.String()
}
