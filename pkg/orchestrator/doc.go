// Package orchestrator wires the source → decorate → widgets → validate →
// theme → render pipeline into a single Generate entry point, providing
// dependency injection friendly helpers for consumers that prefer not to
// assemble the stages themselves.
package orchestrator
