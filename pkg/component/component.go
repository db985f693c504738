package component

import "bytes"

// Component renders one HTML fragment into buf from the props supplied for
// this pass. Implementations must not retain buf or props beyond the call.
type Component interface {
	Render(buf *bytes.Buffer, props Props) error
}

// Func adapts a plain rendering function into a Component.
type Func func(buf *bytes.Buffer, props Props) error

// Render calls the underlying function.
func (fn Func) Render(buf *bytes.Buffer, props Props) error {
	return fn(buf, props)
}
