package province

import (
	"testing"

	"province-mapper/pkg/colorutil"
	"province-mapper/pkg/geometry"
	"province-mapper/pkg/raster"
)

// fillRect paints a solid rectangle onto the raster.
func fillRect(img *raster.RGB, box geometry.Box, c colorutil.RGB) {
	for y := box.Top; y < box.Bottom; y++ {
		for x := box.Left; x < box.Right; x++ {
			img.Set(x, y, c)
		}
	}
}

func TestSegmentQuadrants(t *testing.T) {
	const n = 8
	img := raster.NewRGB(2*n, 2*n)
	colors := []colorutil.RGB{
		colorutil.New(255, 0, 0),
		colorutil.New(0, 255, 0),
		colorutil.New(0, 0, 255),
		colorutil.New(255, 255, 0),
	}
	boxes := []geometry.Box{
		geometry.NewBox(0, 0, n, n),
		geometry.NewBox(n, 0, 2*n, n),
		geometry.NewBox(0, n, n, 2*n),
		geometry.NewBox(n, n, 2*n, 2*n),
	}

	table := NewTable()
	for i, c := range colors {
		fillRect(img, boxes[i], c)
		table.Add(i+1, c)
	}

	m := Segment(img, table)
	if len(m.IDs) != 4 {
		t.Fatalf("expected 4 provinces, got %d", len(m.IDs))
	}

	covered := 0
	for i := range colors {
		p := m.Get(i + 1)
		if p == nil {
			t.Fatalf("province %d missing", i+1)
		}
		if p.Box != boxes[i] {
			t.Errorf("province %d: expected box %+v, got %+v", i+1, boxes[i], p.Box)
		}
		if p.Color != colors[i] {
			t.Errorf("province %d: expected color %+v, got %+v", i+1, colors[i], p.Color)
		}
		if got := p.Mask.Count(); got != n*n {
			t.Errorf("province %d: expected %d mask pixels, got %d", i+1, n*n, got)
		}
		covered += p.Mask.Count()
	}
	if covered != 4*n*n {
		t.Errorf("masks should cover the whole image: %d of %d", covered, 4*n*n)
	}
}

func TestSegmentUnrecognizedColorDropped(t *testing.T) {
	img := raster.NewRGB(4, 4)
	known := colorutil.New(10, 10, 10)
	unknown := colorutil.New(200, 0, 200)
	fillRect(img, geometry.NewBox(0, 0, 4, 2), known)
	fillRect(img, geometry.NewBox(0, 2, 4, 4), unknown)

	table := NewTable()
	table.Add(1, known)

	m := Segment(img, table)
	if len(m.IDs) != 1 || m.Get(1) == nil {
		t.Fatalf("expected exactly one province, got %v", m.IDs)
	}
	p := m.Get(1)
	if p.Box != geometry.NewBox(0, 0, 4, 2) {
		t.Errorf("unexpected box %+v", p.Box)
	}
	// The unrecognized region must not leak into any mask.
	if p.Mask.Count() != 8 {
		t.Errorf("expected 8 mask pixels, got %d", p.Mask.Count())
	}
}

func TestSegmentDisconnectedSameColor(t *testing.T) {
	// A province can be made of disconnected pixel groups; the bounding box
	// spans all of them.
	img := raster.NewRGB(6, 1)
	c := colorutil.New(9, 9, 9)
	img.Set(0, 0, c)
	img.Set(5, 0, c)

	table := NewTable()
	table.Add(42, c)

	m := Segment(img, table)
	p := m.Get(42)
	if p == nil {
		t.Fatal("province missing")
	}
	if p.Box != geometry.NewBox(0, 0, 6, 1) {
		t.Errorf("unexpected box %+v", p.Box)
	}
	if !p.Mask.At(0, 0) || !p.Mask.At(5, 0) || p.Mask.At(2, 0) {
		t.Error("mask should mark only the two recorded pixels")
	}
	if p.Mask.Count() != 2 {
		t.Errorf("expected 2 mask pixels, got %d", p.Mask.Count())
	}
}

func TestMapDouble(t *testing.T) {
	img := raster.NewRGB(2, 2)
	c := colorutil.New(50, 60, 70)
	img.Set(1, 1, c)

	table := NewTable()
	table.Add(7, c)

	m := Segment(img, table)
	m.Double()

	if m.Image.Width != 4 || m.Image.Height != 4 {
		t.Fatalf("expected 4x4 image, got %dx%d", m.Image.Width, m.Image.Height)
	}
	p := m.Get(7)
	if p.Box != geometry.NewBox(2, 2, 4, 4) {
		t.Errorf("expected box scaled by 2, got %+v", p.Box)
	}
	if p.Mask.Count() != 4 {
		t.Errorf("expected a 2x2 mask block, got %d pixels", p.Mask.Count())
	}
	if m.Image.At(3, 3) != c {
		t.Error("doubled image should keep the province color under nearest-neighbor")
	}
}

func TestTableBijection(t *testing.T) {
	table := NewTable()
	red := colorutil.New(255, 0, 0)
	blue := colorutil.New(0, 0, 255)
	table.Add(1, red)
	table.Add(1, blue) // re-adding the ID moves it to the new color

	if _, ok := table.IDByColor(red); ok {
		t.Error("old color should no longer resolve")
	}
	if id, ok := table.IDByColor(blue); !ok || id != 1 {
		t.Error("new color should resolve to the ID")
	}
	if c, ok := table.ColorByID(1); !ok || c != blue {
		t.Error("ID should resolve to the new color")
	}
	if table.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", table.Len())
	}
}
