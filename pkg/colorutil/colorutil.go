// Package colorutil provides shared color utilities for the province mapper.
package colorutil

import "image/color"

// RGB is an 8-bit RGB triple, the color format of province and display colors.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Common colors used throughout the library.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// New creates an RGB triple.
func New(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// Pack packs the triple into a single uint32, suitable as a map key.
func (c RGB) Pack() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Unpack restores a triple packed with Pack.
func Unpack(key uint32) RGB {
	return RGB{
		R: uint8(key >> 16),
		G: uint8(key >> 8),
		B: uint8(key),
	}
}

// RGBA returns the triple as an opaque color.RGBA.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
