// Package prompt models the user-facing dialogs as a synchronous sink the
// workflow calls into. Cancellation is a value, never an error.
package prompt

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// Sink is the dialog contract of the workflow: one free-text prompt, one
// yes/no confirmation, one folder choice. Implementations block until the
// user answers or cancels.
type Sink interface {
	Text(title, label, defaultValue string) (confirmed bool, text string, err error)
	YesNo(title, message string) (bool, error)
	Folder(title string) (confirmed bool, path string, err error)
}

// Interactive renders prompts as terminal forms.
type Interactive struct{}

func (Interactive) Text(title, label, defaultValue string) (bool, string, error) {
	value := defaultValue
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(title).
			Description(label).
			Value(&value),
	))

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, "", nil
		}
		return false, "", err
	}
	return true, value, nil
}

func (Interactive) YesNo(title, message string) (bool, error) {
	var confirmed bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Description(message).
			Value(&confirmed),
	))

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return confirmed, nil
}

func (Interactive) Folder(title string) (bool, string, error) {
	var path string
	form := huh.NewForm(huh.NewGroup(
		huh.NewFilePicker().
			Title(title).
			DirAllowed(true).
			FileAllowed(false).
			CurrentDirectory(".").
			Value(&path),
	))

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, "", nil
		}
		return false, "", err
	}
	if path == "" {
		return false, "", nil
	}
	return true, path, nil
}

// Static answers every prompt from pre-supplied values. It backs the
// non-interactive flags and the tests.
type Static struct {
	TextValue     string
	TextConfirmed bool
	Confirmed     bool
	FolderPath    string
}

func (s Static) Text(title, label, defaultValue string) (bool, string, error) {
	return s.TextConfirmed, s.TextValue, nil
}

func (s Static) YesNo(title, message string) (bool, error) {
	return s.Confirmed, nil
}

func (s Static) Folder(title string) (bool, string, error) {
	return s.FolderPath != "", s.FolderPath, nil
}
