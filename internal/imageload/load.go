// Package imageload decodes raster images and resizes them onto a character
// grid, correcting for the aspect ratio of terminal cells.
package imageload

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"math"
	"os"

	"github.com/charmbracelet/log"
	"github.com/san-kum/asciifx/internal/config"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

var (
	ErrImageNotFound = errors.New("imageload: image path not set or doesn't exist")
	ErrDecode        = errors.New("imageload: failed to open image")
)

// Rows returns the character rows for an image of srcW x srcH scaled to
// width columns.
func Rows(srcW, srcH, width int) int {
	if srcW <= 0 || srcH <= 0 || width <= 0 {
		return 0
	}
	rows := math.Round(float64(width) * (float64(srcH) / float64(srcW)) * config.CharAspectRatio)
	if rows < 0 {
		return 0
	}
	return int(rows)
}

// Load opens the image at path (~ is expanded) and resizes it to width
// columns.
func Load(path string, width int) (*Image, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: %q", ErrImageNotFound, path)
	}
	f, err := os.Open(config.ExpandPath(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrImageNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer f.Close()

	return Decode(f, width)
}

func Decode(r io.Reader, width int) (*Image, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: %d", config.ErrInvalidWidth, width)
	}
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	log.Debug("decoded image", "format", format, "size", src.Bounds().Size(), "width", width)
	return FromImage(src, width), nil
}

// FromImage normalizes src once: alpha sources keep their alpha channel,
// everything else becomes opaque RGB.
func FromImage(src image.Image, width int) *Image {
	b := src.Bounds()
	rows := Rows(b.Dx(), b.Dy(), width)
	out := New(width, rows)
	if rows == 0 {
		return out
	}

	// Scaling onto a transparent RGBA canvas composites alpha sources over a
	// fully transparent backdrop.
	dst := image.NewRGBA(image.Rect(0, 0, width, rows))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)

	alpha := hasAlpha(src)
	for y := 0; y < rows; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(dst.RGBAAt(x, y)).(color.NRGBA)
			if alpha {
				out.Set(x, y, Translucent(c.R, c.G, c.B, c.A))
			} else {
				out.Set(x, y, Opaque(c.R, c.G, c.B))
			}
		}
	}
	return out
}

func hasAlpha(img image.Image) bool {
	switch m := img.(type) {
	case *image.Paletted:
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return true
			}
		}
		return false
	case *image.Gray, *image.Gray16, *image.YCbCr, *image.CMYK:
		return false
	}
	switch img.ColorModel() {
	case color.NRGBAModel, color.RGBAModel, color.NRGBA64Model, color.RGBA64Model,
		color.AlphaModel, color.Alpha16Model:
		return true
	}
	return false
}
