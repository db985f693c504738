package component

// Decorator wraps a Component and returns a new Component with augmented
// rendering behaviour. The wrapped component is held by reference and stays
// untouched; applying the same decorator twice nests two wrappers rather than
// collapsing them.
type Decorator func(Component) Component

// Compose chains decorators into one. The first decorator becomes the
// outermost wrapper, so Compose(a, b)(c) renders a around b around c. Nil
// entries are skipped.
func Compose(decorators ...Decorator) Decorator {
	return func(inner Component) Component {
		for i := len(decorators) - 1; i >= 0; i-- {
			if decorators[i] == nil {
				continue
			}
			inner = decorators[i](inner)
		}
		return inner
	}
}
