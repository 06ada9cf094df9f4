// Package prompt implements the interactive suspension points of the
// scaffolding pipeline.
//
// Each prompt is a synchronous call that blocks until the user submits
// a value or cancels. Cancellation is returned as model.ErrCancelled —
// a value checked explicitly at every call site — never propagated as a
// panic or swallowed. Callers gate every prompt on IsInteractive, so in
// non-interactive runs (CI, pipes) no prompt is ever constructed.
package prompt

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/mmr-tortoise/sprout/internal/model"
)

// IsInteractive reports whether both stdin and stdout are terminals.
// All prompting is gated on this: non-interactive runs fall back to
// defaults or fail with an actionable error instead of blocking.
func IsInteractive() bool {
	return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Input asks for a single line of text, pre-filled with defaultValue.
// When validate is non-nil the prompt re-validates on each submission
// and only returns a conforming value; validation failures appear as
// inline prompt feedback and never escape this function.
func Input(title, defaultValue string, validate func(string) error) (string, error) {
	value := defaultValue

	input := huh.NewInput().Title(title).Value(&value)
	if validate != nil {
		input = input.Validate(validate)
	}

	if err := input.Run(); err != nil {
		return "", mapPromptErr(err)
	}
	return value, nil
}

// ConflictChoice presents the three reconciliation options for a
// conflicting target directory and returns the user's decision.
func ConflictChoice(title string) (model.Choice, error) {
	choice := model.ChoiceCancel

	sel := huh.NewSelect[model.Choice]().
		Title(title).
		Options(
			huh.NewOption("Cancel operation", model.ChoiceCancel),
			huh.NewOption("Remove existing files and continue", model.ChoiceClear),
			huh.NewOption("Ignore files and continue", model.ChoiceIgnore),
		).
		Value(&choice)

	if err := sel.Run(); err != nil {
		return "", mapPromptErr(err)
	}
	return choice, nil
}

// SelectString presents a list of labeled options and returns the value
// of the selected one.
func SelectString(title string, options []huh.Option[string]) (string, error) {
	var value string

	sel := huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(&value)

	if err := sel.Run(); err != nil {
		return "", mapPromptErr(err)
	}
	return value, nil
}

// mapPromptErr translates the prompt library's abort error into the
// pipeline's cancellation sentinel so call sites only ever need to
// check model.ErrCancelled.
func mapPromptErr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return model.ErrCancelled
	}
	return err
}
