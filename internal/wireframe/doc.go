// Package wireframe renders fixed-width ASCII box diagrams.
//
// A Document is an ordered list of lines; Render pads every line with trailing
// fill characters to the frame width and wraps it with vertical border glyphs
// between two identical horizontal border rows. Lines wider than the frame are
// kept intact by default, so their rows come out wider than the border. The
// package also loads documents from plain text and YAML files, ships the
// built-in page and blank templates, and exposes the wireframe Cobra command.
package wireframe
