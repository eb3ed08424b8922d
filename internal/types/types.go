package types

import (
	"errors"
	"fmt"
)

// ActionKind 动作类型
type ActionKind int

const (
	// InsertText 输入字面字符
	InsertText ActionKind = iota
	// InsertCommand 输入反斜杠命令并激活
	InsertCommand
	// EnterFraction 进入分数模板
	EnterFraction
	// EnterSubscript 进入下标
	EnterSubscript
	// EnterSuperscript 进入上标
	EnterSuperscript
	// ExitGroup 右移，离开当前嵌套上下文
	ExitGroup
	// BeginEquation 打开公式编辑器
	BeginEquation
	// EndEquation 关闭公式编辑器
	EndEquation
)

var actionKindNames = map[ActionKind]string{
	InsertText:       "insert_text",
	InsertCommand:    "insert_command",
	EnterFraction:    "enter_fraction",
	EnterSubscript:   "enter_subscript",
	EnterSuperscript: "enter_superscript",
	ExitGroup:        "exit_group",
	BeginEquation:    "begin_equation",
	EndEquation:      "end_equation",
}

// String returns the string representation of ActionKind.
func (k ActionKind) String() string {
	if name, ok := actionKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Opens reports whether the kind opens a group that needs an ExitGroup.
func (k ActionKind) Opens() bool {
	return k == EnterFraction || k == EnterSubscript || k == EnterSuperscript
}

// Action 一个原子编辑动作
type Action struct {
	Kind ActionKind `json:"kind"`
	Text string     `json:"text,omitempty"` // InsertText 的字符或 InsertCommand 的命令名（不含 \）
}

// String renders the action for logs and test failures.
func (a Action) String() string {
	switch a.Kind {
	case InsertText, InsertCommand:
		return fmt.Sprintf("%s(%q)", a.Kind, a.Text)
	default:
		return a.Kind.String()
	}
}

// SpanKind 片段类型
type SpanKind int

const (
	PlainText SpanKind = iota
	Equation
)

func (k SpanKind) String() string {
	if k == Equation {
		return "equation"
	}
	return "plain"
}

// Delimiter 公式定界符
type Delimiter int

const (
	NoDelimiter Delimiter = iota
	BracketDelimiter      // \[ ... \]
	ParenDelimiter        // \( ... \)
	DoubleDollarDelimiter // $$ ... $$
	DollarDelimiter       // $ ... $
)

// Markers returns the opening and closing marker of the delimiter.
func (d Delimiter) Markers() (string, string) {
	switch d {
	case BracketDelimiter:
		return `\[`, `\]`
	case ParenDelimiter:
		return `\(`, `\)`
	case DoubleDollarDelimiter:
		return "$$", "$$"
	case DollarDelimiter:
		return "$", "$"
	}
	return "", ""
}

// Span 输入中的一段纯文本或公式
type Span struct {
	Kind      SpanKind
	Content   string    // 要输出的内容；公式为预处理后的文本
	Raw       string    // 定界符之间的原始文本（纯文本时与 Content 相同）
	Delimiter Delimiter // 仅公式有效
	Offset    int       // 在规范化文本中的字节偏移
}

// IssueKind 可恢复的输入问题类型
type IssueKind int

const (
	MalformedDelimiter IssueKind = iota
	MissingBraceGroup
	UnterminatedBraceGroup
)

var (
	ErrMalformedDelimiter     = errors.New("unterminated equation delimiter")
	ErrMissingBraceGroup      = errors.New("missing brace group")
	ErrUnterminatedBraceGroup = errors.New("unterminated brace group")
)

func (k IssueKind) String() string {
	return k.Err().Error()
}

// Err returns the sentinel error of the kind.
func (k IssueKind) Err() error {
	switch k {
	case MalformedDelimiter:
		return ErrMalformedDelimiter
	case MissingBraceGroup:
		return ErrMissingBraceGroup
	default:
		return ErrUnterminatedBraceGroup
	}
}

// Issue 已在本地降级处理的输入问题，只用于诊断
type Issue struct {
	Kind       IssueKind
	SpanOffset int // 所在片段在规范化文本中的字节偏移
	Offset     int // 相对于片段内容（公式为预处理后的文本）的字节偏移
	Detail     string
}

// Err wraps the kind's sentinel with the issue details.
func (i Issue) Err() error {
	if i.Detail == "" {
		return fmt.Errorf("%w at offset %d", i.Kind.Err(), i.Offset)
	}
	return fmt.Errorf("%w at offset %d: %s", i.Kind.Err(), i.Offset, i.Detail)
}

// Config 翻译配置
type Config struct {
	IncludePlainText bool // 是否输出纯文本片段
	MarkdownText     bool // 纯文本片段是否先按 Markdown 展平
	TextChunkSize    int  // >0 时纯文本按此 rune 数拆成多个 InsertText
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		IncludePlainText: true,
		MarkdownText:     false,
		TextChunkSize:    0,
	}
}
