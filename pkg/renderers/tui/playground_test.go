package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-uikit/pkg/component"
	"github.com/goliatone/go-uikit/pkg/kit"
)

type scriptDriver struct {
	inputs     []string
	selections []string
	confirms   []bool

	inputPos   int
	selectPos  int
	confirmPos int
}

func (s *scriptDriver) Input(_ context.Context, _ InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *scriptDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirms) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirms[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *scriptDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	if s.selectPos >= len(s.selections) {
		return -1, errors.New("no selection scripted")
	}
	want := s.selections[s.selectPos]
	s.selectPos++
	for i, option := range cfg.Options {
		if option == want {
			return i, nil
		}
	}
	return -1, fmt.Errorf("option %q not offered", want)
}

// abortDriver simulates Ctrl+C on the first prompt.
type abortDriver struct {
	scriptDriver
}

func (a *abortDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	return -1, ErrPromptAborted
}

func TestRun_RendersSelectedComponent(t *testing.T) {
	driver := &scriptDriver{
		selections: []string{"badge"},
		// label, placeholder, value, top spacing, bottom spacing
		inputs:   []string{"New", "", "", "", "2"},
		confirms: []bool{false},
	}
	var out bytes.Buffer
	playground := New(WithPromptDriver(driver), WithOutput(&out))

	fragment, err := playground.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := `<div class="space-2"><span class="uikit-badge">New</span></div>`
	if fragment != want {
		t.Fatalf("fragment mismatch:\n got %q\nwant %q", fragment, want)
	}
	if !strings.Contains(out.String(), want) {
		t.Fatalf("panel output missing fragment:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "badge") {
		t.Fatalf("panel output missing component name:\n%s", out.String())
	}
}

func TestRun_SpacingPromptRetries(t *testing.T) {
	driver := &scriptDriver{
		selections: []string{"text"},
		inputs:     []string{"", "", "Hello", "abc", "1", ""},
		confirms:   []bool{false},
	}
	var out bytes.Buffer
	playground := New(WithPromptDriver(driver), WithOutput(&out))

	fragment, err := playground.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := `<div class="space-top-1"><p class="uikit-text">Hello</p></div>`
	if fragment != want {
		t.Fatalf("fragment mismatch:\n got %q\nwant %q", fragment, want)
	}
	if !strings.Contains(out.String(), "non-negative integer") {
		t.Fatalf("expected retry message for %q, got:\n%s", "abc", out.String())
	}
}

func TestRun_ReturnsLastFragment(t *testing.T) {
	driver := &scriptDriver{
		selections: []string{"badge", "badge"},
		inputs: []string{
			"First", "", "", "", "",
			"Second", "", "", "", "",
		},
		confirms: []bool{true, false},
	}
	var out bytes.Buffer
	playground := New(WithPromptDriver(driver), WithOutput(&out))

	fragment, err := playground.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := `<div class=""><span class="uikit-badge">Second</span></div>`
	if fragment != want {
		t.Fatalf("fragment mismatch:\n got %q\nwant %q", fragment, want)
	}
	if !strings.Contains(out.String(), ">First<") {
		t.Fatalf("first round missing from output:\n%s", out.String())
	}
}

func TestRun_RenderErrorKeepsLooping(t *testing.T) {
	registry := kit.New()
	registry.MustRegister("boom", kit.Descriptor{
		Renderer: component.Func(func(*bytes.Buffer, component.Props) error {
			return errors.New("kaput")
		}),
	})

	driver := &scriptDriver{
		selections: []string{"boom"},
		inputs:     []string{"", "", "", "", ""},
		confirms:   []bool{false},
	}
	var out bytes.Buffer
	playground := New(WithPromptDriver(driver), WithKit(registry), WithOutput(&out))

	fragment, err := playground.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if fragment != "" {
		t.Fatalf("expected no fragment, got %q", fragment)
	}
	if !strings.Contains(out.String(), "kaput") {
		t.Fatalf("render error missing from output:\n%s", out.String())
	}
}

func TestRun_AbortSurfacesErrPromptAborted(t *testing.T) {
	var out bytes.Buffer
	playground := New(WithPromptDriver(&abortDriver{}), WithOutput(&out))

	fragment, err := playground.Run(context.Background())
	if !errors.Is(err, ErrPromptAborted) {
		t.Fatalf("expected ErrPromptAborted, got %v", err)
	}
	if fragment != "" {
		t.Fatalf("expected empty fragment on abort, got %q", fragment)
	}
}

func TestRun_EmptyRegistry(t *testing.T) {
	var out bytes.Buffer
	playground := New(WithPromptDriver(&scriptDriver{}), WithKit(kit.New()), WithOutput(&out))

	if _, err := playground.Run(context.Background()); !errors.Is(err, ErrNoComponents) {
		t.Fatalf("expected ErrNoComponents, got %v", err)
	}
}

func TestTranslateSurveyErr(t *testing.T) {
	if got := translateSurveyErr(terminal.InterruptErr); !errors.Is(got, ErrPromptAborted) {
		t.Fatalf("interrupt should map to ErrPromptAborted, got %v", got)
	}

	boom := errors.New("boom")
	if got := translateSurveyErr(boom); got != boom {
		t.Fatalf("unrelated errors should pass through, got %v", got)
	}
}
