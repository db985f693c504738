// Package kit hosts the registry of named presentational components plus the
// built-in set uikit ships with. Every built-in is registered pre-wrapped with
// the spacing decorator, so view authors control vertical rhythm through the
// spaceTop/spaceBottom props alone. Descriptors can carry an optional
// kin-openapi props schema; the view layer uses it to validate documents
// before rendering, the kit itself never enforces it.
package kit
