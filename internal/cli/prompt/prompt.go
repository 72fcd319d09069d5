package prompt

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"minerva/pkg/errors"
)

// ErrQuit signals that the user ended the session (Ctrl-C or EOF).
var ErrQuit = errors.New("input closed")

// Prompter collects console input using the survey library. In
// non-interactive mode (piped stdin) every prompt resolves to its default so
// the demos still run end to end.
type Prompter struct {
	interactive bool
}

// New creates a prompter, detecting whether stdin is a terminal.
func New() *Prompter {
	return &Prompter{interactive: stdinIsTerminal()}
}

// NewWithMode creates a prompter with an explicit interactivity setting.
func NewWithMode(interactive bool) *Prompter {
	return &Prompter{interactive: interactive}
}

// IsInteractive reports whether prompts will actually be displayed.
func (p *Prompter) IsInteractive() bool {
	return p.interactive
}

// AskString collects a free-form string, returning def when the answer is
// empty or the prompter is non-interactive.
func (p *Prompter) AskString(message, def string) (string, error) {
	if !p.interactive {
		return def, nil
	}

	var result string
	err := survey.AskOne(&survey.Input{Message: message}, &result)
	if err != nil {
		return "", mapSurveyErr(err)
	}

	if result == "" {
		return def, nil
	}
	return result, nil
}

// AskSelect collects a single choice from options.
func (p *Prompter) AskSelect(message string, options []string) (string, error) {
	if len(options) == 0 {
		return "", errors.Wrap(errors.ErrInvalidInput, "no options provided for selection")
	}
	if !p.interactive {
		return options[0], nil
	}

	var result string
	err := survey.AskOne(&survey.Select{
		Message: message,
		Options: options,
	}, &result)
	if err != nil {
		return "", mapSurveyErr(err)
	}

	return result, nil
}

// WaitEnter blocks until the user presses Enter. Non-interactive sessions
// and closed input return immediately.
func (p *Prompter) WaitEnter(message string) {
	if !p.interactive {
		return
	}

	var discard string
	_ = survey.AskOne(&survey.Input{Message: message}, &discard)
}

func mapSurveyErr(err error) error {
	if err == terminal.InterruptErr {
		return ErrQuit
	}
	// survey surfaces closed stdin as io.EOF.
	if err.Error() == "EOF" {
		return ErrQuit
	}
	return errors.Wrap(err, "prompt failed")
}

func stdinIsTerminal() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
