package raster

import "province-mapper/pkg/colorutil"

// OverlayBorders composites a border raster onto a background image: wherever
// the border raster marks a border pixel (value 0), the background pixel is
// replaced with the given color. The background is not modified; a composited
// copy is returned. The two rasters must be the same size.
func OverlayBorders(background *RGB, borders *Gray, c colorutil.RGB) *RGB {
	out := background.Clone()
	if borders.Width != background.Width || borders.Height != background.Height {
		return out
	}
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			if borders.Pix[y*borders.Width+x] == 0 {
				out.Set(x, y, c)
			}
		}
	}
	return out
}
