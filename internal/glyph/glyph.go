// Package glyph maps resized image pixels onto colored palette glyphs.
package glyph

import (
	"math"

	"github.com/san-kum/asciifx/internal/imageload"
	"github.com/san-kum/asciifx/internal/palette"
)

const (
	// AlphaThreshold is the alpha below which a pixel renders as blank.
	AlphaThreshold = 10

	waveIndexScale = 0.05
)

type RGB struct {
	R, G, B uint8
}

// Cell is one character of a frame. Unstyled cells carry no color.
type Cell struct {
	Char   rune
	Color  RGB
	Styled bool
}

var blank = Cell{Char: ' '}

// Frame is a row-major grid of cells, Width cells per line.
type Frame struct {
	Width int
	Cells []Cell
}

// Rows returns the number of lines in the frame.
func (f Frame) Rows() int {
	if f.Width <= 0 {
		return 0
	}
	return (len(f.Cells) + f.Width - 1) / f.Width
}

type Options struct {
	Style    string
	Override rune
	BW       bool
	Animated bool
	T        float64
}

// Map converts every pixel of img into a cell.
func Map(img *imageload.Image, opts Options) Frame {
	pal := palette.Get(opts.Style)
	frame := Frame{Width: img.Width, Cells: make([]Cell, len(img.Pix))}
	for i, px := range img.Pix {
		frame.Cells[i] = mapPixel(i, px, pal, opts)
	}
	return frame
}

func mapPixel(i int, px imageload.Pixel, pal palette.Palette, opts Options) Cell {
	if px.A < AlphaThreshold {
		return blank
	}

	r, g, b := Blend(px)
	if opts.Animated {
		w := WaveFactor(i, opts.T)
		r, g, b = scale(r, w), scale(g, w), scale(b, w)
	}

	ch := pal.Glyph(Brightness(pal, r, g, b))
	switch {
	case opts.Override != 0:
		ch = opts.Override
	case opts.Style == palette.Dots.Name:
		ch = palette.DotGlyph
	}

	// Black & white drops the glyph along with its color.
	if opts.BW || ch == ' ' {
		return blank
	}
	return Cell{Char: ch, Color: RGB{uint8(r), uint8(g), uint8(b)}, Styled: true}
}

// Blend premultiplies a translucent pixel's color by its alpha.
func Blend(px imageload.Pixel) (r, g, b int) {
	r, g, b = int(px.R), int(px.G), int(px.B)
	if px.A < 255 {
		a := float64(px.A) / 255
		r, g, b = scale(r, a), scale(g, a), scale(b, a)
	}
	return r, g, b
}

// Brightness is luma for the retro palette and the channel mean otherwise.
func Brightness(pal palette.Palette, r, g, b int) float64 {
	if pal.Name == palette.Retro.Name {
		return Luma(r, g, b)
	}
	return Average(r, g, b)
}

func scale(c int, f float64) int {
	return int(float64(c) * f)
}

// Luma is the perceptual brightness used by the retro palette. The weights
// sum to exactly 1000 so full white stays at 255.
func Luma(r, g, b int) float64 {
	return float64(299*r+587*g+114*b) / 1000
}

// Average is the plain channel mean used by every other palette.
func Average(r, g, b int) float64 {
	return float64(r+g+b) / 3
}

// WaveFactor is the brightness multiplier for pixel index i at time t, in
// [0,1]. The wave travels along pixel index, not screen position.
func WaveFactor(i int, t float64) float64 {
	return 0.5 + 0.5*math.Sin(float64(i)*waveIndexScale+t)
}
