package terrain

import (
	"math"

	"province-mapper/pkg/raster"
)

// TreeNoneIndex is the tree raster sentinel for "no tree here".
const TreeNoneIndex = 0

// ProjectTrees upsamples the tree raster onto the terrain grid using the
// game's own placement rule, reverse-engineered from in-game terrain
// assignment. The rule is a contract, not a derivation: rows are shifted down
// by half a pixel, every even source row is additionally shifted left by half
// a pixel (the tree models sit in a hexagonal pattern), and each upscaled row
// is stamped only onto every other destination row, leaving gaps for the
// plain terrain raster to show through.
//
// The result is computed once per (terrain, tree) raster pair and then
// treated as immutable; the classifier reads it concurrently without locking.
func ProjectTrees(trees *raster.Indexed, destWidth, destHeight int) *raster.Indexed {
	out := raster.NewIndexed(destWidth, destHeight, TreeNoneIndex)

	// Average size of an upscaled pixel on each axis.
	xRatio := float64(destWidth) / float64(trees.Width)
	yRatio := float64(destHeight) / float64(trees.Height)

	row := make([]uint8, destWidth)
	for srcY := 0; srcY < trees.Height; srcY++ {
		for i := range row {
			row[i] = TreeNoneIndex
		}

		// Even rows are shifted left by half a source pixel.
		shift := 0.0
		if srcY%2 == 0 {
			shift = 0.5
		}

		for srcX := 0; srcX < trees.Width; srcX++ {
			pixel := trees.Pix[srcY*trees.Width+srcX]
			if pixel == TreeNoneIndex {
				continue
			}
			xStart := int(math.Floor((float64(srcX) - shift) * xRatio))
			xEnd := int(math.Ceil((float64(srcX+1) - shift) * xRatio))
			if xEnd > destWidth-1 {
				xEnd = destWidth - 1
			}
			if xStart < 0 {
				xStart = 0
			}
			for x := xStart; x < xEnd; x++ {
				row[x] = pixel
			}
		}

		// The row lands between yEnd and yStart, shifted down half a pixel.
		yEnd := int(math.Floor((float64(srcY) + 0.5) * yRatio))
		yStart := int(math.Floor((float64(srcY) + 1.5) * yRatio))
		if yStart > destHeight-1 {
			yStart = destHeight - 1
		}

		// Stamp every other destination row, bottom up. Sentinel pixels do
		// not overwrite content placed by earlier rows.
		for y := yStart; y >= yEnd; y -= 2 {
			base := y * destWidth
			for x, pixel := range row {
				if pixel != TreeNoneIndex {
					out.Pix[base+x] = pixel
				}
			}
		}
	}
	return out
}
