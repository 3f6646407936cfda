// Package render turns glyph frames into styled terminal text.
//
// The package provides:
//
//   - [Renderer]: per-glyph foreground coloring bound to an output writer
//   - [Renderer.Columns]: the image block beside an informational text block
//   - [Theme]: chrome colors for the dark and light terminal themes
//
// Color output follows the writer's detected capabilities; tests pin the
// profile with [WithColorProfile].
package render
