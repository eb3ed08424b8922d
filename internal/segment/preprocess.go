package segment

import (
	"regexp"
	"strings"
)

var (
	// \text{...} 不处理嵌套：遇到第一个 } 即闭合
	textCommandRe = regexp.MustCompile(`\\text\{([^}]*)\}`)

	newlineReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")
)

// sizingCommands 删除的定界符尺寸命令
var sizingCommands = map[string]bool{
	"left":  true,
	"right": true,
}

// Preprocess 预处理公式文本
//   - \mathcal{E} → \varepsilon
//   - 删除 \left、\right
//   - \text{X} → X
//   - 去掉首尾空白，换行变为空格
func Preprocess(equation string) string {
	equation = strings.ReplaceAll(equation, `\mathcal{E}`, `\varepsilon`)
	equation = stripSizing(equation)
	equation = textCommandRe.ReplaceAllString(equation, "${1}")
	equation = strings.TrimSpace(equation)
	equation = newlineReplacer.Replace(equation)
	return strings.TrimSpace(equation)
}

// stripSizing 按命令 token 删除 \left / \right，\leftarrow 等不受影响
func stripSizing(equation string) string {
	if !strings.Contains(equation, `\left`) && !strings.Contains(equation, `\right`) {
		return equation
	}

	var b strings.Builder
	b.Grow(len(equation))
	i := 0
	for i < len(equation) {
		if equation[i] != '\\' {
			b.WriteByte(equation[i])
			i++
			continue
		}

		end := i + 1
		for end < len(equation) && isLetter(equation[end]) {
			end++
		}
		if end == i+1 && end < len(equation) {
			// 控制符号（\\、\{ 等）整体保留
			end++
		}
		if !sizingCommands[equation[i+1:end]] {
			b.WriteString(equation[i:end])
		}
		i = end
	}
	return b.String()
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
