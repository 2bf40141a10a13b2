package wizard

import (
	"github.com/luuuc/readmegen/internal/detect"
	"github.com/luuuc/readmegen/internal/readme"
)

// Questions and hints, in the order they are asked.
const (
	QuestionName        = "What is your project name?"
	QuestionDescription = "Brief description of your project:"
	QuestionAudience    = "Who will use this project?"
	QuestionTone        = "What tone should the README have?"
	QuestionDetail      = "How detailed should it be?"

	PlaceholderName        = "my-awesome-project"
	PlaceholderDescription = "A tool that helps developers..."
)

// Defaults are the pre-selected option indices of the three choice steps.
type Defaults struct {
	Audience int
	Tone     int
	Detail   int
}

// Wizard runs the five README questions through a Prompter.
type Wizard struct {
	Prompter Prompter
	Defaults Defaults

	// Notify receives progress messages. Nil discards them.
	Notify func(format string, args ...any)
}

func (w *Wizard) notify(format string, args ...any) {
	if w.Notify != nil {
		w.Notify(format, args...)
	}
}

// Run asks every question that preset does not already answer. The text
// steps are pre-filled from the detected signals and their answers are kept
// verbatim. Cancelling any step, or leaving the name or description empty,
// returns ErrCancelled and discards the partial answers.
func (w *Wizard) Run(sig *detect.Signals, preset readme.Answers) (readme.Answers, error) {
	if sig == nil {
		sig = detect.NewSignals()
	}
	a := preset

	if a.ProjectName == "" {
		name, err := w.Prompter.Text(QuestionName, PlaceholderName, sig.ProjectName)
		if err != nil {
			return readme.Answers{}, err
		}
		a.ProjectName = name
		if a.ProjectName == "" {
			return readme.Answers{}, ErrCancelled
		}
	}

	if a.Description == "" {
		desc, err := w.Prompter.Text(QuestionDescription, PlaceholderDescription, sig.Description)
		if err != nil {
			return readme.Answers{}, err
		}
		a.Description = desc
		if a.Description == "" {
			return readme.Answers{}, ErrCancelled
		}
	}

	if summary := sig.Summary(); summary != "" {
		w.notify("Detected: %s", summary)
	}

	steps := []struct {
		answer   *string
		question string
		choices  []readme.Choice
		def      int
	}{
		{&a.Audience, QuestionAudience, readme.Audiences, w.Defaults.Audience},
		{&a.Tone, QuestionTone, readme.Tones, w.Defaults.Tone},
		{&a.Detail, QuestionDetail, readme.Details, w.Defaults.Detail},
	}

	for _, step := range steps {
		if *step.answer != "" {
			continue
		}
		choice, err := w.Prompter.Select(step.question, readme.Labels(step.choices), step.def)
		if err != nil {
			return readme.Answers{}, err
		}
		if choice == "" {
			return readme.Answers{}, ErrCancelled
		}
		*step.answer = choice
	}

	return a, nil
}
