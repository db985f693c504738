package component

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTruthy(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "nil", value: nil, want: false},
		{name: "true", value: true, want: true},
		{name: "false", value: false, want: false},
		{name: "empty string", value: "", want: false},
		{name: "non-empty string", value: "2", want: true},
		{name: "zero int", value: 0, want: false},
		{name: "positive int", value: 8, want: true},
		{name: "negative int", value: -1, want: true},
		{name: "zero float", value: 0.0, want: false},
		{name: "float", value: 2.5, want: true},
		{name: "zero uint", value: uint(0), want: false},
		{name: "slice", value: []string{}, want: true},
		{name: "map", value: map[string]any{}, want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Truthy(tc.value); got != tc.want {
				t.Fatalf("Truthy(%#v) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestPropsCloneIsolation(t *testing.T) {
	original := Props{"label": "Name", KeySpaceTop: 2}
	clone := original.Clone()
	clone["label"] = "Changed"
	clone["extra"] = true

	if original["label"] != "Name" {
		t.Fatalf("clone mutation leaked into original: %v", original)
	}
	if _, ok := original["extra"]; ok {
		t.Fatal("clone addition leaked into original")
	}
}

func TestPropsMergeCopyOnWrite(t *testing.T) {
	base := Props{"label": "Name", "placeholder": "Type here"}
	merged := base.Merge(Props{"placeholder": "Other", KeySpaceBottom: 4})

	want := Props{"label": "Name", "placeholder": "Other", KeySpaceBottom: 4}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("unexpected merge result (-want +got):\n%s", diff)
	}
	if base["placeholder"] != "Type here" {
		t.Fatalf("merge mutated the receiver: %v", base)
	}
}

func TestPropsString(t *testing.T) {
	props := Props{"label": "Name", "count": 3, "nothing": nil}

	if got := props.String("label"); got != "Name" {
		t.Fatalf("String(label) = %q", got)
	}
	if got := props.String("count"); got != "3" {
		t.Fatalf("String(count) = %q", got)
	}
	if got := props.String("nothing"); got != "" {
		t.Fatalf("String(nothing) = %q", got)
	}
	if got := props.String("missing"); got != "" {
		t.Fatalf("String(missing) = %q", got)
	}
}

func TestPropsInt(t *testing.T) {
	cases := []struct {
		name   string
		value  any
		want   int
		wantOK bool
	}{
		{name: "int", value: 4, want: 4, wantOK: true},
		{name: "int64", value: int64(9), want: 9, wantOK: true},
		{name: "integral float", value: float64(8), want: 8, wantOK: true},
		{name: "fractional float", value: 2.5, wantOK: false},
		{name: "numeric string", value: " 12 ", want: 12, wantOK: true},
		{name: "word string", value: "xl", wantOK: false},
		{name: "bool", value: true, wantOK: false},
		{name: "missing", value: nil, wantOK: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			props := Props{}
			if tc.value != nil {
				props["key"] = tc.value
			}
			got, ok := props.Int("key")
			if ok != tc.wantOK {
				t.Fatalf("Int ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && got != tc.want {
				t.Fatalf("Int = %d, want %d", got, tc.want)
			}
		})
	}
}
