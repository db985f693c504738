// Package template defines renderer-agnostic template interfaces and
// adapters. Renderers that assemble outer chrome (page shells, wrappers)
// depend on the TemplateRenderer seam rather than a concrete engine.
package template
