// Package raster provides the in-memory raster types the province pipeline
// operates on: RGB color rasters, grayscale planes, palette-index planes and
// bit-packed masks. All types are plain pixel buffers with no file or network
// surface; decoding map bitmaps into them is the caller's concern.
package raster

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"province-mapper/pkg/colorutil"
)

// RGB is a width x height RGB raster backed by an *image.RGBA. The alpha
// channel is kept opaque; only the color channels are meaningful.
type RGB struct {
	Width  int
	Height int
	Img    *image.RGBA
}

// NewRGB creates a black RGB raster of the given size.
func NewRGB(width, height int) *RGB {
	r := &RGB{
		Width:  width,
		Height: height,
		Img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	// Opaque alpha so the raster renders correctly if handed to image code.
	for i := 3; i < len(r.Img.Pix); i += 4 {
		r.Img.Pix[i] = 255
	}
	return r
}

// FromImage copies an arbitrary image into a new RGB raster.
func FromImage(img image.Image) *RGB {
	bounds := img.Bounds()
	out := NewRGB(bounds.Dx(), bounds.Dy())
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			out.Set(x, y, colorutil.New(uint8(r>>8), uint8(g>>8), uint8(b>>8)))
		}
	}
	return out
}

// At returns the color at (x, y). Out-of-bounds reads return black.
func (r *RGB) At(x, y int) colorutil.RGB {
	if x < 0 || x >= r.Width || y < 0 || y >= r.Height {
		return colorutil.Black
	}
	i := r.Img.PixOffset(x, y)
	return colorutil.New(r.Img.Pix[i], r.Img.Pix[i+1], r.Img.Pix[i+2])
}

// Set writes the color at (x, y). Out-of-bounds writes are ignored.
func (r *RGB) Set(x, y int, c colorutil.RGB) {
	if x < 0 || x >= r.Width || y < 0 || y >= r.Height {
		return
	}
	i := r.Img.PixOffset(x, y)
	r.Img.Pix[i] = c.R
	r.Img.Pix[i+1] = c.G
	r.Img.Pix[i+2] = c.B
	r.Img.Pix[i+3] = 255
}

// Key returns the packed color at (x, y), suitable as a map key.
func (r *RGB) Key(x, y int) uint32 {
	return r.At(x, y).Pack()
}

// Clone returns a deep copy of the raster.
func (r *RGB) Clone() *RGB {
	out := NewRGB(r.Width, r.Height)
	copy(out.Img.Pix, r.Img.Pix)
	return out
}

// Doubled returns the raster upscaled 2x with nearest-neighbor resampling.
func (r *RGB) Doubled() *RGB {
	out := NewRGB(r.Width*2, r.Height*2)
	xdraw.NearestNeighbor.Scale(out.Img, out.Img.Bounds(), r.Img, r.Img.Bounds(), xdraw.Src, nil)
	return out
}

// Gray is a single-channel byte raster. The border synthesizer uses it with
// border pixels at 0 and background at 255.
type Gray struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewGray creates a Gray raster with every pixel set to fill.
func NewGray(width, height int, fill uint8) *Gray {
	g := &Gray{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
	if fill != 0 {
		for i := range g.Pix {
			g.Pix[i] = fill
		}
	}
	return g
}

// At returns the value at (x, y). Out-of-bounds reads return 0.
func (g *Gray) At(x, y int) uint8 {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return 0
	}
	return g.Pix[y*g.Width+x]
}

// Set writes the value at (x, y). Out-of-bounds writes are ignored.
func (g *Gray) Set(x, y int, v uint8) {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return
	}
	g.Pix[y*g.Width+x] = v
}

// Clone returns a deep copy of the raster.
func (g *Gray) Clone() *Gray {
	out := NewGray(g.Width, g.Height, 0)
	copy(out.Pix, g.Pix)
	return out
}
