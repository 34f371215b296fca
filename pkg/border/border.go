// Package border synthesizes border rasters from region-colored images by
// shifted-difference accumulation. Any raster where same-colored regions
// represent districts works as input: the plain province map or a recolored
// derivative. Output is a grayscale raster with border pixels at 0 and
// background at 255.
package border

import (
	"image"

	"gocv.io/x/gocv"

	"province-mapper/pkg/province"
	"province-mapper/pkg/raster"
)

// Render creates single borders between same-colored regions. Border pixels
// are effectively placed only on the north and west sides of a region, so the
// result must not be combined with Exclude: removing one region's pixels
// would open gaps in its neighbors' borders. Use RenderDouble for that.
func Render(src *raster.RGB) *raster.Gray {
	mat := rgbToMat(src)
	defer mat.Close()

	diffs := []gocv.Mat{
		shiftDifference(mat, 0, 1),
		shiftDifference(mat, 1, 0),
		shiftDifference(mat, 1, 1),
	}
	return differencesToBorders(diffs)
}

// RenderDouble creates double borders: difference rasters are taken for all
// four cardinal shifts, so border pixels appear symmetrically on both sides
// of every boundary. With thick, the four diagonal shifts are added as well,
// doubling the border width. Double borders tolerate Exclude, since removing
// one region's side of a boundary leaves the other side intact.
func RenderDouble(src *raster.RGB, thick bool) *raster.Gray {
	mat := rgbToMat(src)
	defer mat.Close()

	diffs := []gocv.Mat{
		shiftDifference(mat, 0, 1),
		shiftDifference(mat, 1, 0),
		shiftDifference(mat, 0, -1),
		shiftDifference(mat, -1, 0),
	}
	if thick {
		diffs = append(diffs,
			shiftDifference(mat, 1, 1),
			shiftDifference(mat, -1, 1),
			shiftDifference(mat, 1, -1),
			shiftDifference(mat, -1, -1),
		)
	}
	return differencesToBorders(diffs)
}

// Exclude repaints the given provinces' own mask areas back to background, so
// their pixels never show as borders. Meant for RenderDouble output only; see
// Render. Province IDs without raster presence are skipped.
func Exclude(borders *raster.Gray, m *province.Map, ids []int) {
	for _, id := range ids {
		p := m.Get(id)
		if p == nil {
			continue
		}
		for y := 0; y < p.Mask.Height; y++ {
			for x := 0; x < p.Mask.Width; x++ {
				if p.Mask.At(x, y) {
					borders.Set(p.Box.Left+x, p.Box.Top+y, 255)
				}
			}
		}
	}
}

// shiftDifference returns the per-channel absolute difference between the
// image and a copy of itself shifted by (dx, dy). The shifted copy is built
// by region copy into a zeroed mat; the band of pixels exposed at the shifted
// edge is then cleared in the difference, since comparing against the clear
// fill would fabricate a border along the image boundary.
func shiftDifference(src gocv.Mat, dx, dy int) gocv.Mat {
	rows, cols := src.Rows(), src.Cols()

	shifted := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV8UC3)
	defer shifted.Close()

	overlap := image.Rect(maxInt(0, -dx), maxInt(0, -dy), cols-maxInt(0, dx), rows-maxInt(0, dy))
	if !overlap.Empty() {
		srcView := src.Region(overlap)
		dstView := shifted.Region(overlap.Add(image.Pt(dx, dy)))
		srcView.CopyTo(&dstView)
		srcView.Close()
		dstView.Close()
	}

	diff := gocv.NewMat()
	gocv.AbsDiff(src, shifted, &diff)

	// Clear the exposed band (width = shift magnitude) at the raster edge.
	if dx > 0 {
		clearRect(&diff, image.Rect(0, 0, dx, rows))
	}
	if dx < 0 {
		clearRect(&diff, image.Rect(cols+dx, 0, cols, rows))
	}
	if dy > 0 {
		clearRect(&diff, image.Rect(0, 0, cols, dy))
	}
	if dy < 0 {
		clearRect(&diff, image.Rect(0, rows+dy, cols, rows))
	}
	return diff
}

func clearRect(mat *gocv.Mat, r image.Rectangle) {
	if r.Empty() {
		return
	}
	view := mat.Region(r)
	view.SetTo(gocv.NewScalar(0, 0, 0, 0))
	view.Close()
}

// differencesToBorders merges the difference mats into one border raster: all
// channels of all mats are summed (saturating) into a single plane, any
// nonzero pixel is flattened to 255, and the result is inverted so borders
// are black on white. Closes the difference mats.
func differencesToBorders(diffs []gocv.Mat) *raster.Gray {
	rows, cols := diffs[0].Rows(), diffs[0].Cols()

	acc := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV8U)
	defer acc.Close()
	for _, diff := range diffs {
		channels := gocv.Split(diff)
		for _, ch := range channels {
			gocv.Add(acc, ch, &acc)
			ch.Close()
		}
		diff.Close()
	}

	flat := gocv.NewMat()
	defer flat.Close()
	gocv.Threshold(acc, &flat, 0, 255, gocv.ThresholdBinary)

	inverted := gocv.NewMat()
	defer inverted.Close()
	gocv.BitwiseNot(flat, &inverted)

	return matToGray(inverted)
}

// rgbToMat converts an RGB raster to a BGR mat.
func rgbToMat(src *raster.RGB) gocv.Mat {
	mat := gocv.NewMatWithSize(src.Height, src.Width, gocv.MatTypeCV8UC3)
	pix := src.Img.Pix
	for y := 0; y < src.Height; y++ {
		row := src.Img.PixOffset(0, y)
		for x := 0; x < src.Width; x++ {
			i := row + x*4
			// OpenCV uses BGR order.
			mat.SetUCharAt(y, x*3+0, pix[i+2])
			mat.SetUCharAt(y, x*3+1, pix[i+1])
			mat.SetUCharAt(y, x*3+2, pix[i+0])
		}
	}
	return mat
}

// matToGray copies a single-channel mat into a Gray raster.
func matToGray(mat gocv.Mat) *raster.Gray {
	out := raster.NewGray(mat.Cols(), mat.Rows(), 0)
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			out.Pix[y*out.Width+x] = mat.GetUCharAt(y, x)
		}
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
