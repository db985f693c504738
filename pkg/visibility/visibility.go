package visibility

// Evaluator decides whether an element should render based on its "when"
// rule and the context assembled for the render pass.
type Evaluator interface {
	Eval(elementPath, rule string, ctx Context) (bool, error)
}

// Context provides inputs to an Evaluator. Props holds the element's own
// props while Extras lets callers inject arbitrary context such as user
// roles or feature flags.
type Context struct {
	Props  map[string]any
	Extras map[string]any
}

// EvaluatorFunc adapts a function into an Evaluator.
type EvaluatorFunc func(elementPath, rule string, ctx Context) (bool, error)

// Eval delegates to the underlying function.
func (fn EvaluatorFunc) Eval(elementPath, rule string, ctx Context) (bool, error) {
	return fn(elementPath, rule, ctx)
}
