package cli

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrPromptAborted signals the user aborted an interactive prompt.
var ErrPromptAborted = errors.New("cli: prompt aborted")

// PromptDriver abstracts interactive questions so commands can be tested
// without a terminal.
type PromptDriver interface {
	// SelectTarget asks the user to pick one of the target ids.
	SelectTarget(targets []string) (string, error)
}

type surveyDriver struct{}

func newSurveyDriver() PromptDriver { return &surveyDriver{} }

func (d *surveyDriver) SelectTarget(targets []string) (string, error) {
	var out string
	prompt := &survey.Select{
		Message: "Apply template to which target?",
		Options: targets,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", ErrPromptAborted
		}
		return "", err
	}
	return out, nil
}
