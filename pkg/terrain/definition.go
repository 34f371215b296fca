package terrain

import "fmt"

// Definition holds the static terrain model built from the game's terrain
// script: the category list, the palette index maps for the terrain and tree
// rasters (both partial; an unbound index is simply not a terrain), the
// per-province override table and the fallback category. Once built it is
// immutable and safe for concurrent readers; rebuild it from scratch when the
// underlying files change.
type Definition struct {
	Categories   []*Category
	TerrainIndex map[uint8]*Category
	TreeIndex    map[uint8]*Category
	Overrides    map[int]*Category
	Fallback     *Category

	byName map[string]*Category
}

// NewDefinition builds a Definition from the category list. The override
// table is assembled from every category's override list; when two categories
// claim the same province, the category declared first wins. The fallback
// category ("pti" in the base game) must be one of the given categories; it
// is returned for provinces no terrain can be computed for.
func NewDefinition(categories []*Category, fallbackName string) (*Definition, error) {
	d := &Definition{
		Categories:   categories,
		TerrainIndex: make(map[uint8]*Category),
		TreeIndex:    make(map[uint8]*Category),
		Overrides:    make(map[int]*Category),
		byName:       make(map[string]*Category, len(categories)),
	}
	for _, cat := range categories {
		d.byName[cat.Name] = cat
		for _, id := range cat.Overrides {
			if _, taken := d.Overrides[id]; taken {
				continue // first-declared category keeps the province
			}
			d.Overrides[id] = cat
		}
	}
	fallback, ok := d.byName[fallbackName]
	if !ok {
		return nil, fmt.Errorf("fallback terrain %q is not among the defined categories", fallbackName)
	}
	d.Fallback = fallback
	return d, nil
}

// Category returns the category with the given name, or nil.
func (d *Definition) Category(name string) *Category {
	return d.byName[name]
}

// BindTerrainIndex maps a terrain raster palette index to a category.
func (d *Definition) BindTerrainIndex(index uint8, name string) error {
	cat, ok := d.byName[name]
	if !ok {
		return fmt.Errorf("terrain index %d refers to undefined category %q", index, name)
	}
	d.TerrainIndex[index] = cat
	return nil
}

// BindTreeIndex maps a tree raster palette index to a category.
func (d *Definition) BindTreeIndex(index uint8, name string) error {
	cat, ok := d.byName[name]
	if !ok {
		return fmt.Errorf("tree index %d refers to undefined category %q", index, name)
	}
	d.TreeIndex[index] = cat
	return nil
}
