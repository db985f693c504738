package tui

import (
	"io"

	"github.com/goliatone/go-uikit/pkg/kit"
)

// Option configures the playground.
type Option func(*Playground)

// WithPromptDriver overrides the prompt driver used by the playground.
func WithPromptDriver(driver PromptDriver) Option {
	return func(p *Playground) {
		if driver != nil {
			p.driver = driver
		}
	}
}

// WithKit selects the component registry to browse.
func WithKit(registry *kit.Registry) Option {
	return func(p *Playground) {
		if registry != nil {
			p.kit = registry
		}
	}
}

// WithOutput redirects panels and status messages away from stdout.
func WithOutput(w io.Writer) Option {
	return func(p *Playground) {
		if w != nil {
			p.output = w
		}
	}
}
