// Package province segments a color-coded province raster into per-province
// masks with minimal bounding boxes.
package province

import "province-mapper/pkg/colorutil"

// Table maps province colors to province IDs and back. The mapping is a
// bijection over the colors it contains; colors on the raster that are absent
// from the table are not provinces. The table is typically filled from an
// external definition file loader.
type Table struct {
	idByColor map[uint32]int
	colorByID map[int]uint32
}

// NewTable creates an empty color table.
func NewTable() *Table {
	return &Table{
		idByColor: make(map[uint32]int),
		colorByID: make(map[int]uint32),
	}
}

// Add registers a province color. Re-adding an ID or color replaces the
// previous pairing on both sides, keeping the bijection intact.
func (t *Table) Add(id int, c colorutil.RGB) {
	key := c.Pack()
	if old, ok := t.colorByID[id]; ok {
		delete(t.idByColor, old)
	}
	if old, ok := t.idByColor[key]; ok {
		delete(t.colorByID, old)
	}
	t.idByColor[key] = id
	t.colorByID[id] = key
}

// IDByColor looks up the province ID for a color.
func (t *Table) IDByColor(c colorutil.RGB) (int, bool) {
	id, ok := t.idByColor[c.Pack()]
	return id, ok
}

// ColorByID looks up the color for a province ID.
func (t *Table) ColorByID(id int) (colorutil.RGB, bool) {
	key, ok := t.colorByID[id]
	if !ok {
		return colorutil.RGB{}, false
	}
	return colorutil.Unpack(key), true
}

// Len returns the number of registered provinces.
func (t *Table) Len() int {
	return len(t.colorByID)
}
