// Package view models the declarative documents uikit renders: a named tree
// of component elements with props, optional visibility rules, and theme
// hints. Documents load from JSON or YAML files, can be validated against the
// props contracts a kit registry exposes, and stay renderer-agnostic; the
// packages under pkg/renderers decide what the tree becomes.
package view
