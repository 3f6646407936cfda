package imageload

// Pixel is a normalized source color. HasAlpha records whether the source
// image carried an alpha channel; opaque sources always have A == 255.
type Pixel struct {
	R, G, B, A uint8
	HasAlpha   bool
}

func Opaque(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b, A: 255}
}

func Translucent(r, g, b, a uint8) Pixel {
	return Pixel{R: r, G: g, B: b, A: a, HasAlpha: true}
}

// Image is a resized pixel grid, one pixel per character cell.
type Image struct {
	Width  int
	Height int
	Pix    []Pixel
}

func New(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]Pixel, width*height),
	}
}

func (im *Image) At(x, y int) Pixel {
	return im.Pix[y*im.Width+x]
}

func (im *Image) Set(x, y int, p Pixel) {
	im.Pix[y*im.Width+x] = p
}
