package cli

import (
	"errors"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/i18n"
)

// errAborted ends an interactive session on Ctrl-C or Ctrl-D.
var errAborted = errors.New("aborted")

// Asker collects values the user did not pass as flags.
type Asker interface {
	Input(message, def string) (string, error)
	Select(message string, options []string) (string, error)
}

type surveyAsker struct{}

func (surveyAsker) Input(message, def string) (string, error) {
	var out string
	err := survey.AskOne(&survey.Input{Message: message, Default: def}, &out)
	return out, interrupted(err)
}

func (surveyAsker) Select(message string, options []string) (string, error) {
	var out string
	err := survey.AskOne(&survey.Select{Message: message, Options: options}, &out)
	return out, interrupted(err)
}

func interrupted(err error) error {
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
		return errAborted
	}
	return err
}

// askIfEmpty prompts for *v when it is blank.
func askIfEmpty(a Asker, v *string, message string) error {
	if strings.TrimSpace(*v) != "" {
		return nil
	}
	answer, err := a.Input(message, "")
	if err != nil {
		return err
	}
	*v = strings.TrimSpace(answer)
	return nil
}

// resolvePreset maps a preset key to its localized label, keeps any other
// text as typed, and offers the presets when v is blank.
func resolvePreset(a Asker, v, message string, presets []i18n.Preset) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		labels := make([]string, len(presets))
		for i, p := range presets {
			labels[i] = p.Label
		}
		return a.Select(message, labels)
	}
	for _, p := range presets {
		if strings.EqualFold(p.Key, v) {
			return p.Label, nil
		}
	}
	return v, nil
}
