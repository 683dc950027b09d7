// Package cli constructs the textkit command-line interface, wiring the
// Cobra command hierarchy, configuration loader, and structured logging
// primitives around the wireframe and imports-fix tools.
package cli
