// Package tui wraps the interactive prompts the keyfmt CLI uses before
// applying renames. The PromptDriver interface keeps render and rename logic
// testable without a real terminal.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrInterrupted reports that the user aborted a prompt (ctrl-c).
var ErrInterrupted = errors.New("tui: prompt interrupted")

// ConfirmConfig configures a yes/no prompt.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// PromptDriver abstracts the terminal prompt implementation.
type PromptDriver interface {
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
}

// SurveyDriver is the survey-backed PromptDriver used in production.
type SurveyDriver struct{}

// NewSurveyDriver returns a driver prompting on the process terminal.
func NewSurveyDriver() *SurveyDriver {
	return &SurveyDriver{}
}

// Confirm asks a yes/no question and reports the answer.
func (d *SurveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	prompt := &survey.Confirm{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrInterrupted
	}
	return fmt.Errorf("tui: prompt: %w", err)
}

// ScriptedDriver replays canned answers in order; prompts past the script
// fail. It backs tests and non-interactive wiring.
type ScriptedDriver struct {
	Answers []bool
	next    int
}

// Confirm pops the next scripted answer.
func (d *ScriptedDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	if d.next >= len(d.Answers) {
		return false, fmt.Errorf("tui: unexpected prompt %q", cfg.Message)
	}
	answer := d.Answers[d.next]
	d.next++
	return answer, nil
}
