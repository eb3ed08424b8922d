package eqpaste

import "github.com/riverfjs/eqpaste-go/internal/types"

// 导出类型别名
type (
	Action     = types.Action
	ActionKind = types.ActionKind
	Span       = types.Span
	SpanKind   = types.SpanKind
	Delimiter  = types.Delimiter
	Issue      = types.Issue
	IssueKind  = types.IssueKind
)

const (
	// ActionInsertText types literal characters.
	ActionInsertText = types.InsertText
	// ActionInsertCommand types a backslash command followed by an activation step.
	ActionInsertCommand = types.InsertCommand
	// ActionEnterFraction starts fraction template entry.
	ActionEnterFraction = types.EnterFraction
	// ActionEnterSubscript starts a subscript group.
	ActionEnterSubscript = types.EnterSubscript
	// ActionEnterSuperscript starts a superscript group.
	ActionEnterSuperscript = types.EnterSuperscript
	// ActionExitGroup moves right out of the current nested context.
	ActionExitGroup = types.ExitGroup
	// ActionBeginEquation opens the editor's equation mode.
	ActionBeginEquation = types.BeginEquation
	// ActionEndEquation leaves the editor's equation mode.
	ActionEndEquation = types.EndEquation
)

const (
	SpanPlainText = types.PlainText
	SpanEquation  = types.Equation
)

const (
	IssueMalformedDelimiter     = types.MalformedDelimiter
	IssueMissingBraceGroup      = types.MissingBraceGroup
	IssueUnterminatedBraceGroup = types.UnterminatedBraceGroup
)

var (
	ErrMalformedDelimiter     = types.ErrMalformedDelimiter
	ErrMissingBraceGroup      = types.ErrMissingBraceGroup
	ErrUnterminatedBraceGroup = types.ErrUnterminatedBraceGroup
)

// TextAction returns an InsertText action.
func TextAction(s string) Action {
	return Action{Kind: ActionInsertText, Text: s}
}

// CommandAction returns an InsertCommand action; name has no leading backslash.
func CommandAction(name string) Action {
	return Action{Kind: ActionInsertCommand, Text: name}
}

// Balanced reports whether every Enter* action is closed by an ExitGroup
// within each equation of the sequence.
func Balanced(actions []Action) bool {
	depth := 0
	for _, a := range actions {
		switch {
		case a.Kind.Opens():
			depth++
		case a.Kind == ActionExitGroup:
			depth--
			if depth < 0 {
				return false
			}
		case a.Kind == ActionEndEquation:
			if depth != 0 {
				return false
			}
		}
	}
	return depth == 0
}
