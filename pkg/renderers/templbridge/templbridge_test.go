package templbridge_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/goliatone/go-uikit/pkg/component"
	"github.com/goliatone/go-uikit/pkg/kit"
	"github.com/goliatone/go-uikit/pkg/renderers/templbridge"
)

func TestWrap_RendersTemplComponent(t *testing.T) {
	nav := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<nav>menu</nav>")
		return err
	})

	wrapped := component.Spacing(templbridge.Wrap(nav))

	var buf bytes.Buffer
	if err := wrapped.Render(&buf, component.Props{"spaceBottom": 2}); err != nil {
		t.Fatalf("render: %v", err)
	}

	want := `<div class="space-2"><nav>menu</nav></div>`
	if buf.String() != want {
		t.Fatalf("unexpected markup:\n want %s\n got  %s", want, buf.String())
	}
}

func TestWrapFunc_ReceivesProps(t *testing.T) {
	greeter := templbridge.WrapFunc(func(props component.Props) templ.Component {
		return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
			_, err := io.WriteString(w, "<em>"+props.String("text")+"</em>")
			return err
		})
	})

	var buf bytes.Buffer
	if err := greeter.Render(&buf, component.Props{"text": "hello"}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.String() != "<em>hello</em>" {
		t.Fatalf("unexpected markup: %s", buf.String())
	}
}

func TestElement_RendersKitComponent(t *testing.T) {
	registry := kit.NewDefaultRegistry()

	badge := templbridge.Element(registry, "badge", component.Props{
		"label":       "New",
		"spaceBottom": 2,
	})

	var buf bytes.Buffer
	if err := badge.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}

	want := `<div class="space-2"><span class="uikit-badge">New</span></div>`
	if buf.String() != want {
		t.Fatalf("unexpected markup:\n want %s\n got  %s", want, buf.String())
	}
}

func TestElement_UnknownComponent(t *testing.T) {
	registry := kit.NewDefaultRegistry()

	var buf bytes.Buffer
	err := templbridge.Element(registry, "carousel", nil).Render(context.Background(), &buf)
	if err == nil {
		t.Fatal("expected error for unknown component")
	}
	if !strings.Contains(err.Error(), `component "carousel" not registered`) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExport_RequiresRenderer(t *testing.T) {
	var buf bytes.Buffer
	err := templbridge.Export(kit.Descriptor{Name: "ghost"}, nil).Render(context.Background(), &buf)
	if err == nil {
		t.Fatal("expected error for descriptor without renderer")
	}
	if !strings.Contains(err.Error(), `"ghost"`) {
		t.Fatalf("unexpected error: %v", err)
	}
}
