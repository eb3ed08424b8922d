package eqpaste

import "fmt"

// Sink turns actions into real editor effects (keystrokes, editor API calls).
//
// Implementations must tolerate a sequence that stops mid-structure: a cancelled
// run leaves opened fractions or scripts without their ExitGroup.
type Sink interface {
	InsertText(s string) error
	InsertCommand(name string) error
	ActivateFraction() error
	ExitGroup() error
	EnterSubscript() error
	EnterSuperscript() error
}

// EquationSink is a Sink that also opens and closes the editor's equation mode
// around each equation span.
type EquationSink interface {
	Sink
	BeginEquation() error
	EndEquation() error
}

// Apply routes one action to the matching Sink method.
//
// Equation boundaries are dropped for sinks that do not implement EquationSink.
func Apply(sink Sink, action Action) error {
	switch action.Kind {
	case ActionInsertText:
		return sink.InsertText(action.Text)
	case ActionInsertCommand:
		return sink.InsertCommand(action.Text)
	case ActionEnterFraction:
		return sink.ActivateFraction()
	case ActionEnterSubscript:
		return sink.EnterSubscript()
	case ActionEnterSuperscript:
		return sink.EnterSuperscript()
	case ActionExitGroup:
		return sink.ExitGroup()
	case ActionBeginEquation:
		if es, ok := sink.(EquationSink); ok {
			return es.BeginEquation()
		}
		return nil
	case ActionEndEquation:
		if es, ok := sink.(EquationSink); ok {
			return es.EndEquation()
		}
		return nil
	default:
		return fmt.Errorf("unknown action kind %d", action.Kind)
	}
}

// Recorder is an EquationSink that records every action it receives.
type Recorder struct {
	Actions []Action
}

var _ EquationSink = (*Recorder)(nil)

func (r *Recorder) record(a Action) error {
	r.Actions = append(r.Actions, a)
	return nil
}

func (r *Recorder) InsertText(s string) error      { return r.record(TextAction(s)) }
func (r *Recorder) InsertCommand(name string) error { return r.record(CommandAction(name)) }
func (r *Recorder) ActivateFraction() error         { return r.record(Action{Kind: ActionEnterFraction}) }
func (r *Recorder) ExitGroup() error                { return r.record(Action{Kind: ActionExitGroup}) }
func (r *Recorder) EnterSubscript() error           { return r.record(Action{Kind: ActionEnterSubscript}) }
func (r *Recorder) EnterSuperscript() error         { return r.record(Action{Kind: ActionEnterSuperscript}) }
func (r *Recorder) BeginEquation() error            { return r.record(Action{Kind: ActionBeginEquation}) }
func (r *Recorder) EndEquation() error              { return r.record(Action{Kind: ActionEndEquation}) }
