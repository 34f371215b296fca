package raster

import "image"

// Indexed is a palette-index raster: one byte per pixel standing in for a
// semantic meaning (terrain type, tree type, river width class). The package
// attaches no meaning to index values; sentinel conventions belong to the
// consumers.
type Indexed struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewIndexed creates an Indexed raster with every pixel set to fill.
func NewIndexed(width, height int, fill uint8) *Indexed {
	n := &Indexed{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
	if fill != 0 {
		for i := range n.Pix {
			n.Pix[i] = fill
		}
	}
	return n
}

// FromPaletted copies the index plane of a paletted image. The palette colors
// themselves are dropped; only the indices matter to the pipeline.
func FromPaletted(img *image.Paletted) *Indexed {
	bounds := img.Bounds()
	out := NewIndexed(bounds.Dx(), bounds.Dy(), 0)
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			out.Pix[y*out.Width+x] = img.ColorIndexAt(bounds.Min.X+x, bounds.Min.Y+y)
		}
	}
	return out
}

// At returns the index at (x, y). Out-of-bounds reads return 0.
func (n *Indexed) At(x, y int) uint8 {
	if x < 0 || x >= n.Width || y < 0 || y >= n.Height {
		return 0
	}
	return n.Pix[y*n.Width+x]
}

// Set writes the index at (x, y). Out-of-bounds writes are ignored.
func (n *Indexed) Set(x, y int, v uint8) {
	if x < 0 || x >= n.Width || y < 0 || y >= n.Height {
		return
	}
	n.Pix[y*n.Width+x] = v
}

// Clone returns a deep copy of the raster.
func (n *Indexed) Clone() *Indexed {
	out := NewIndexed(n.Width, n.Height, 0)
	copy(out.Pix, n.Pix)
	return out
}

// Usage counts how many pixels carry each palette index.
func (n *Indexed) Usage() [256]int {
	var counts [256]int
	for _, v := range n.Pix {
		counts[v]++
	}
	return counts
}

// Resized returns the raster resampled to the given size with nearest-neighbor
// index lookup. Indices are copied verbatim; no palette matching occurs.
func (n *Indexed) Resized(width, height int) *Indexed {
	out := NewIndexed(width, height, 0)
	for y := 0; y < height; y++ {
		srcY := y * n.Height / height
		for x := 0; x < width; x++ {
			srcX := x * n.Width / width
			out.Pix[y*width+x] = n.Pix[srcY*n.Width+srcX]
		}
	}
	return out
}

// Doubled returns the raster upscaled 2x with nearest-neighbor resampling.
func (n *Indexed) Doubled() *Indexed {
	return n.Resized(n.Width*2, n.Height*2)
}
