// Package backends groups the concrete plot.DrawingBackend implementations.
// Each subpackage registers itself with package backend on import.
package backends
