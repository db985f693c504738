// Package tui is an interactive playground for the component kit. It prompts
// for a component and a handful of props on the terminal, renders the HTML
// fragment, and frames it in a styled panel so spacing and markup can be
// inspected without a browser.
package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/goliatone/go-uikit/pkg/component"
	"github.com/goliatone/go-uikit/pkg/kit"
)

// Playground drives the prompt, render, inspect loop.
type Playground struct {
	driver PromptDriver
	kit    *kit.Registry
	output io.Writer
}

// New constructs a playground with the survey prompt driver, the default
// component registry, and stdout output.
func New(options ...Option) *Playground {
	p := &Playground{
		driver: newSurveyDriver(),
		kit:    kit.NewDefaultRegistry(),
		output: os.Stdout,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}

	return p
}

// Common prop prompts shown for every component. Components ignore keys they
// do not understand, so a blank answer simply leaves the prop out.
var propPrompts = []struct {
	key     string
	message string
}{
	{kit.PropLabel, "Label"},
	{kit.PropPlaceholder, "Placeholder"},
	{kit.PropValue, "Value"},
}

var spacingPrompts = []struct {
	key     string
	message string
}{
	{component.KeySpaceTop, "Top spacing"},
	{component.KeySpaceBottom, "Bottom spacing"},
}

// Run loops until the user declines another round or aborts, and returns the
// last fragment that rendered successfully.
func (p *Playground) Run(ctx context.Context) (string, error) {
	if ctx == nil {
		return "", errors.New("tui: context is required")
	}

	names := p.kit.Names()
	if len(names) == 0 {
		return "", ErrNoComponents
	}

	p.say(bannerStyle.Render("uikit playground"))

	var last string
	for {
		if err := ctx.Err(); err != nil {
			return last, err
		}

		idx, err := p.driver.Select(ctx, SelectConfig{
			Message: "Component",
			Options: names,
		})
		if err != nil {
			return last, err
		}
		if idx < 0 || idx >= len(names) {
			p.say(errorStyle.Render("pick a component from the list"))
			continue
		}
		name := names[idx]

		props, err := p.promptProps(ctx)
		if err != nil {
			return last, err
		}

		fragment, err := p.renderFragment(name, props)
		if err != nil {
			p.say(errorStyle.Render(err.Error()))
		} else {
			last = fragment
			p.say(fragmentPanel(name, fragment))
		}

		again, err := p.driver.Confirm(ctx, ConfirmConfig{
			Message: "Render another?",
			Default: false,
		})
		if err != nil {
			return last, err
		}
		if !again {
			return last, nil
		}
	}
}

func (p *Playground) promptProps(ctx context.Context) (component.Props, error) {
	props := component.Props{}

	for _, prompt := range propPrompts {
		value, err := p.driver.Input(ctx, InputConfig{
			Message: prompt.message,
			Help:    "Leave blank to skip.",
		})
		if err != nil {
			return nil, err
		}
		if value = strings.TrimSpace(value); value != "" {
			props[prompt.key] = value
		}
	}

	for _, prompt := range spacingPrompts {
		steps, ok, err := p.promptSpacing(ctx, prompt.message)
		if err != nil {
			return nil, err
		}
		if ok {
			props[prompt.key] = steps
		}
	}

	return props, nil
}

func (p *Playground) promptSpacing(ctx context.Context, message string) (int, bool, error) {
	for {
		raw, err := p.driver.Input(ctx, InputConfig{
			Message: message,
			Help:    "Steps on the spacing scale. Leave blank to skip.",
		})
		if err != nil {
			return 0, false, err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return 0, false, nil
		}
		steps, err := strconv.Atoi(raw)
		if err != nil || steps < 0 {
			p.say(errorStyle.Render(fmt.Sprintf("%s wants a non-negative integer, got %q", message, raw)))
			continue
		}
		return steps, true, nil
	}
}

func (p *Playground) renderFragment(name string, props component.Props) (string, error) {
	descriptor, ok := p.kit.Descriptor(name)
	if !ok {
		return "", fmt.Errorf("tui: component %q not registered", name)
	}
	if descriptor.Renderer == nil {
		return "", fmt.Errorf("tui: component %q has no renderer", name)
	}

	var buf bytes.Buffer
	if err := descriptor.Renderer.Render(&buf, props); err != nil {
		return "", fmt.Errorf("tui: render %q: %w", name, err)
	}
	return buf.String(), nil
}

func (p *Playground) say(line string) {
	fmt.Fprintln(p.output, line)
}
