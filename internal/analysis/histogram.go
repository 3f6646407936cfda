package analysis

import (
	"github.com/san-kum/asciifx/internal/glyph"
	"github.com/san-kum/asciifx/internal/imageload"
	"github.com/san-kum/asciifx/internal/palette"
)

const DefaultBuckets = 32

// Report describes a static render of one image with one palette.
type Report struct {
	Palette     palette.Palette
	Pixels      int
	Transparent int
	// Buckets counts visible pixels by brightness, 0..255 split evenly.
	Buckets []float64
	// Usage counts emitted glyphs, keyed by rune. Blank cells count as ' '.
	Usage map[rune]int
}

func Histogram(img *imageload.Image, style string, buckets int) Report {
	if buckets <= 0 {
		buckets = DefaultBuckets
	}
	pal := palette.Get(style)
	rep := Report{
		Palette: pal,
		Pixels:  len(img.Pix),
		Buckets: make([]float64, buckets),
		Usage:   make(map[rune]int),
	}

	for _, px := range img.Pix {
		if px.A < glyph.AlphaThreshold {
			rep.Transparent++
			continue
		}
		r, g, b := glyph.Blend(px)
		idx := int(glyph.Brightness(pal, r, g, b) / 256 * float64(buckets))
		if idx >= buckets {
			idx = buckets - 1
		}
		rep.Buckets[idx]++
	}

	for _, c := range glyph.Map(img, glyph.Options{Style: style}).Cells {
		rep.Usage[c.Char]++
	}
	return rep
}

// Coverage is the fraction of pixels rendered as a visible glyph.
func (r Report) Coverage() float64 {
	if r.Pixels == 0 {
		return 0
	}
	return float64(r.Pixels-r.Usage[' ']) / float64(r.Pixels)
}
