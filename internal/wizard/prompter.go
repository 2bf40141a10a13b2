// Package wizard asks the README questions one step at a time.
//
// The questions are fixed: project name, description, audience, tone and
// detail level. How they are asked is up to a Prompter: LinePrompter reads
// numbered answers from any reader, TUIPrompter drives a Bubble Tea program.
//
//	w := &wizard.Wizard{Prompter: wizard.NewLinePrompter(os.Stdin, os.Stderr)}
//	answers, err := w.Run(signals, readme.Answers{})
//	if errors.Is(err, wizard.ErrCancelled) {
//	    return nil
//	}
package wizard

import "errors"

// ErrCancelled is returned when the user aborts a step.
var ErrCancelled = errors.New("cancelled")

// Prompter asks a single question.
type Prompter interface {
	// Text asks for free text. value pre-fills the answer; placeholder is
	// shown as a hint when value is empty.
	Text(question, placeholder, value string) (string, error)

	// Select asks for one of options and returns the chosen option.
	Select(question string, options []string, defaultIndex int) (string, error)
}
