// Package analysis summarizes how an image will map onto a palette.
//
//   - [Histogram]: brightness distribution and per-glyph usage
//
// The report backs the inspect command, which plots the distribution so a
// palette can be chosen for a given logo.
package analysis
