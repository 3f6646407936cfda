package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/san-kum/asciifx/internal/glyph"
)

// InfoPadding is the gap between the image block and the info block.
const InfoPadding = 4

type Renderer struct {
	lg    *lipgloss.Renderer
	theme Theme
	cache map[glyph.RGB]lipgloss.Style
}

type Option func(*Renderer)

// WithColorProfile forces a color profile instead of detecting one.
func WithColorProfile(p termenv.Profile) Option {
	return func(r *Renderer) { r.lg.SetColorProfile(p) }
}

func WithTheme(name string) Option {
	return func(r *Renderer) { r.theme = GetTheme(name) }
}

func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		lg:    lipgloss.NewRenderer(w),
		theme: ThemeDark,
		cache: make(map[glyph.RGB]lipgloss.Style),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) Theme() Theme { return r.theme }

// Text renders a frame, breaking the line after every Width cells.
func (r *Renderer) Text(f glyph.Frame) string {
	var b strings.Builder
	b.Grow(len(f.Cells) * 4)
	for i, c := range f.Cells {
		if i > 0 && f.Width > 0 && i%f.Width == 0 {
			b.WriteByte('\n')
		}
		if !c.Styled {
			b.WriteRune(c.Char)
			continue
		}
		b.WriteString(r.style(c.Color).Render(string(c.Char)))
	}
	return b.String()
}

func (r *Renderer) style(c glyph.RGB) lipgloss.Style {
	if s, ok := r.cache[c]; ok {
		return s
	}
	s := r.lg.NewStyle().Foreground(lipgloss.Color(Hex(c)))
	r.cache[c] = s
	return s
}

// Columns lays out left and right side by side, right padded by InfoPadding.
// Uncolored info text takes the theme's text color.
func (r *Renderer) Columns(left, right string) string {
	if right == "" {
		return left
	}
	info := r.lg.NewStyle().
		Foreground(r.theme.Text).
		PaddingLeft(InfoPadding).
		Render(strings.TrimRight(right, "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, info)
}

// Hex formats c as #rrggbb.
func Hex(c glyph.RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Plain renders a frame without any escape sequences.
func Plain(f glyph.Frame) string {
	var b strings.Builder
	for i, c := range f.Cells {
		if i > 0 && f.Width > 0 && i%f.Width == 0 {
			b.WriteByte('\n')
		}
		b.WriteRune(c.Char)
	}
	return b.String()
}

// Padded surrounds s with InfoPadding columns on both sides.
func (r *Renderer) Padded(s string) string {
	return r.lg.NewStyle().Padding(0, InfoPadding).Render(s)
}
