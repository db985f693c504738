// Package component defines the rendering primitives shared by every uikit
// surface: the Props mapping handed to a component for a single render pass,
// the Component contract for buffer-based HTML rendering, and the Decorator
// shape used to layer cross-cutting presentation behaviour (spacing, i18n,
// custom chrome) around a component without touching its implementation.
// Decorators receive the full props mapping and forward it verbatim, so inner
// components stay free to read or ignore any key, including the ones a
// decorator consumed.
package component
