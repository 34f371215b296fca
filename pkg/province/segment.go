package province

import (
	"sort"

	"province-mapper/pkg/colorutil"
	"province-mapper/pkg/geometry"
	"province-mapper/pkg/raster"
)

// Province is one recognized province: its ID, its raster color, and its
// shape as a bit-packed mask cropped to the minimal bounding box.
type Province struct {
	ID    int
	Color colorutil.RGB
	Box   geometry.Box
	Mask  *raster.Bitset
}

// Map is the result of segmenting a province raster: the source image plus
// one Province per recognized color. IDs lists the provinces in ascending
// order for deterministic iteration.
type Map struct {
	Image *raster.RGB
	ByID  map[int]*Province
	IDs   []int
}

// Get returns the province with the given ID, or nil if it has no raster
// presence.
func (m *Map) Get(id int) *Province {
	return m.ByID[id]
}

// coordList collects the pixel coordinates of one color during the scan.
type coordList struct {
	xs []int
	ys []int
}

// Segment scans the raster and builds a mask and bounding box for every color
// registered in the table. Colors absent from the table yield no province and
// are dropped. The union of all masks covers exactly the recognized-color
// pixels of the raster, and masks never overlap since each pixel has one color.
func Segment(img *raster.RGB, table *Table) *Map {
	coords := make(map[uint32]*coordList)

	// Single linear scan, grouping coordinates by exact color.
	pix := img.Img.Pix
	for y := 0; y < img.Height; y++ {
		row := img.Img.PixOffset(0, y)
		for x := 0; x < img.Width; x++ {
			i := row + x*4
			key := uint32(pix[i])<<16 | uint32(pix[i+1])<<8 | uint32(pix[i+2])
			list := coords[key]
			if list == nil {
				list = &coordList{}
				coords[key] = list
			}
			list.xs = append(list.xs, x)
			list.ys = append(list.ys, y)
		}
	}

	m := &Map{
		Image: img,
		ByID:  make(map[int]*Province),
	}
	for key, list := range coords {
		color := colorutil.Unpack(key)
		id, ok := table.IDByColor(color)
		if !ok {
			// Not a recognized province color; the region is dropped.
			continue
		}
		m.ByID[id] = buildProvince(id, color, list)
		m.IDs = append(m.IDs, id)
	}
	sort.Ints(m.IDs)
	return m
}

// buildProvince turns a coordinate list into a Province. The list is never
// empty: a color only reaches here with at least one observed pixel.
func buildProvince(id int, color colorutil.RGB, list *coordList) *Province {
	left, top := list.xs[0], list.ys[0]
	right, bottom := left, top
	for i := range list.xs {
		x, y := list.xs[i], list.ys[i]
		if x < left {
			left = x
		}
		if x > right {
			right = x
		}
		if y < top {
			top = y
		}
		if y > bottom {
			bottom = y
		}
	}
	box := geometry.NewBox(left, top, right+1, bottom+1)

	mask := raster.NewBitset(box.Width(), box.Height())
	for i := range list.xs {
		mask.Set(list.xs[i]-left, list.ys[i]-top)
	}
	return &Province{ID: id, Color: color, Box: box, Mask: mask}
}

// Double upscales the map 2x with nearest-neighbor resampling: the source
// raster, every mask and every bounding box. Borders generated from the
// doubled map are half as wide relative to very small provinces.
func (m *Map) Double() {
	m.Image = m.Image.Doubled()
	for _, p := range m.ByID {
		p.Box = p.Box.Scaled(2)
		p.Mask = p.Mask.Doubled()
	}
}
