package raster

import "math/bits"

// Bitset is a compact 2D boolean raster: one bit per pixel, row-major, most
// significant bit first within a byte. The row stride is the logical width
// rounded up to a whole number of bytes, so rows never share a byte.
type Bitset struct {
	Width  int
	Height int
	Stride int // bytes per row
	Bits   []byte
}

// NewBitset creates a cleared Bitset of the given size.
func NewBitset(width, height int) *Bitset {
	stride := (width + 7) / 8
	return &Bitset{
		Width:  width,
		Height: height,
		Stride: stride,
		Bits:   make([]byte, stride*height),
	}
}

// At reports whether the bit at (x, y) is set. Out-of-bounds reads return false.
func (b *Bitset) At(x, y int) bool {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return false
	}
	return b.Bits[y*b.Stride+x/8]&(1<<(7-uint(x)%8)) != 0
}

// Set sets the bit at (x, y). Out-of-bounds writes are ignored.
func (b *Bitset) Set(x, y int) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	b.Bits[y*b.Stride+x/8] |= 1 << (7 - uint(x)%8)
}

// Count returns the number of set bits.
func (b *Bitset) Count() int {
	total := 0
	for _, v := range b.Bits {
		total += bits.OnesCount8(v)
	}
	return total
}

// Doubled returns the bitset upscaled 2x: every set pixel becomes a 2x2 block.
func (b *Bitset) Doubled() *Bitset {
	out := NewBitset(b.Width*2, b.Height*2)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if !b.At(x, y) {
				continue
			}
			out.Set(x*2, y*2)
			out.Set(x*2+1, y*2)
			out.Set(x*2, y*2+1)
			out.Set(x*2+1, y*2+1)
		}
	}
	return out
}
