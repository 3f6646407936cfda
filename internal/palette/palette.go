package palette

// Palette is an ordered glyph ramp from sparsest to densest.
type Palette struct {
	Name   string
	Glyphs []rune
}

// DotGlyph is emitted for every visible pixel in the dots style.
const DotGlyph = '·'

// Default is the palette used for unknown style names.
const Default = "blocky"

// Built-in palettes in menu order.
var (
	Blocky  = newPalette("blocky", " .░▒▓█")
	Smooth  = newPalette("smooth", " .:-=+*#%@")
	Ultra   = newPalette("ultra", "  .oO8@█▓")
	Retro   = newPalette("retro", " .,:;clodxkO0KXNWM")
	Dots    = newPalette("dots", "·")
	Bars    = newPalette("bars", "|█")
	Squares = newPalette("squares", "[]#")
	Wide    = newPalette("wide", "__--==##")
	Dense   = newPalette("dense", " .:+xX$@")

	Palettes = []Palette{
		Blocky,
		Smooth,
		Ultra,
		Retro,
		Dots,
		Bars,
		Squares,
		Wide,
		Dense,
	}
)

func newPalette(name, glyphs string) Palette {
	return Palette{Name: name, Glyphs: []rune(glyphs)}
}

// Get returns a palette by name, falling back to blocky.
func Get(name string) Palette {
	if p, ok := Lookup(name); ok {
		return p
	}
	return Blocky
}

// Lookup reports whether name is a built-in palette.
func Lookup(name string) (Palette, bool) {
	for _, p := range Palettes {
		if p.Name == name {
			return p, true
		}
	}
	return Palette{}, false
}

// Names returns the palette names in menu order.
func Names() []string {
	names := make([]string, len(Palettes))
	for i, p := range Palettes {
		names[i] = p.Name
	}
	return names
}

func (p Palette) Len() int { return len(p.Glyphs) }

// Index maps a brightness in [0,255] onto the palette, clamped to range.
func (p Palette) Index(brightness float64) int {
	n := len(p.Glyphs)
	if n == 0 {
		return 0
	}
	idx := int(brightness / 255 * float64(n-1))
	if idx > n-1 {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// Glyph returns the glyph for a brightness in [0,255].
func (p Palette) Glyph(brightness float64) rune {
	if len(p.Glyphs) == 0 {
		return ' '
	}
	return p.Glyphs[p.Index(brightness)]
}

func (p Palette) String() string { return string(p.Glyphs) }
