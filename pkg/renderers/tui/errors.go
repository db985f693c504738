package tui

import "errors"

var (
	// ErrPromptAborted signals the user aborted a prompt (e.g., Ctrl+C).
	ErrPromptAborted = errors.New("tui: prompt aborted")
	// ErrNoComponents is returned when the registry offers nothing to render.
	ErrNoComponents = errors.New("tui: no components registered")
)
