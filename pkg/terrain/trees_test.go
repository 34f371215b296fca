package terrain

import (
	"testing"

	"province-mapper/pkg/raster"
)

func TestProjectTreesStaggeredPlacement(t *testing.T) {
	// 2x2 source onto a 4x4 grid (ratio 2 on both axes).
	src := raster.NewIndexed(2, 2, 0)
	src.Set(0, 0, 5) // even row: shifted left half a pixel
	src.Set(1, 1, 9) // odd row: no horizontal shift

	out := ProjectTrees(src, 4, 4)

	// Row 0 (even, shift 0.5): x range [floor(-0.5*2), ceil(0.5*2)) clamped
	// to [0, 1); vertical bounds yEnd=floor(0.5*2)=1, yStart=min(floor(1.5*2), 3)=3,
	// stamped at rows 3 and 1.
	// Row 1 (odd): x range [2, min(4,3)) = [2, 3); yEnd=3, yStart=min(5,3)=3,
	// stamped at row 3 only.
	want := [][]uint8{
		{0, 0, 0, 0},
		{5, 0, 0, 0},
		{0, 0, 0, 0},
		{5, 0, 9, 0},
	}
	for y := range want {
		for x := range want[y] {
			if got := out.At(x, y); got != want[y][x] {
				t.Errorf("(%d,%d): expected %d, got %d", x, y, want[y][x], got)
			}
		}
	}
}

func TestProjectTreesSentinelDoesNotOverwrite(t *testing.T) {
	// Two source rows whose stamp ranges overlap on the destination; the
	// later row's sentinel pixels must not erase the earlier row's content.
	src := raster.NewIndexed(2, 2, 0)
	src.Set(0, 0, 5)
	src.Set(1, 1, 9)

	out := ProjectTrees(src, 4, 4)
	if out.At(0, 3) != 5 {
		t.Error("row 1's empty pixels overwrote row 0's placement at (0,3)")
	}
	if out.At(2, 3) != 9 {
		t.Error("row 1's own pixel should be placed at (2,3)")
	}
}

func TestProjectTreesEmptySource(t *testing.T) {
	src := raster.NewIndexed(3, 3, 0)
	out := ProjectTrees(src, 9, 9)
	for _, v := range out.Pix {
		if v != TreeNoneIndex {
			t.Fatal("projection of an empty tree raster must stay empty")
		}
	}
}

func TestProjectTreesDeterministic(t *testing.T) {
	src := raster.NewIndexed(4, 4, 0)
	src.Set(0, 0, 3)
	src.Set(3, 1, 4)
	src.Set(2, 2, 5)
	src.Set(1, 3, 6)

	a := ProjectTrees(src, 11, 7)
	b := ProjectTrees(src, 11, 7)
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatal("projection must be deterministic")
		}
	}
}
