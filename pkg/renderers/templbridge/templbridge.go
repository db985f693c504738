// Package templbridge adapts between the kit's buffer-based components and
// a-h/templ components, in both directions. templ pages can embed kit
// elements, and templ components can be registered in a kit registry like any
// other component.
package templbridge

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/goliatone/go-uikit/pkg/component"
	"github.com/goliatone/go-uikit/pkg/kit"
)

// Wrap turns a templ component into a kit component. Props are ignored; templ
// components close over their own data. The templ render runs with a
// background context, so context-driven templ features need the Element or
// Export direction instead.
func Wrap(c templ.Component) component.Component {
	return component.Func(func(buf *bytes.Buffer, _ component.Props) error {
		if c == nil {
			return nil
		}
		return c.Render(context.Background(), buf)
	})
}

// WrapFunc turns a templ component constructor into a kit component. The
// constructor runs once per render pass with that pass's props, so the templ
// side sees live document data.
func WrapFunc(build func(props component.Props) templ.Component) component.Component {
	return component.Func(func(buf *bytes.Buffer, props component.Props) error {
		if build == nil {
			return nil
		}
		c := build(props)
		if c == nil {
			return nil
		}
		return c.Render(context.Background(), buf)
	})
}

// Export turns a kit descriptor into a templ component rendering with the
// provided props. Spacing decoration applies when the descriptor's renderer
// carries it, exactly as in document rendering.
func Export(descriptor kit.Descriptor, props component.Props) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if descriptor.Renderer == nil {
			return fmt.Errorf("templbridge: descriptor %q has no renderer", descriptor.Name)
		}
		var buf bytes.Buffer
		if err := descriptor.Renderer.Render(&buf, props); err != nil {
			return fmt.Errorf("templbridge: render %q: %w", descriptor.Name, err)
		}
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// Element looks a component up in the registry and exports it as a templ
// component. Lookup happens at render time, so registrations made after the
// call are picked up.
func Element(registry *kit.Registry, name string, props component.Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if registry == nil {
			return fmt.Errorf("templbridge: registry is nil")
		}
		descriptor, ok := registry.Descriptor(name)
		if !ok {
			return fmt.Errorf("templbridge: component %q not registered", name)
		}
		return Export(descriptor, props).Render(ctx, w)
	})
}
