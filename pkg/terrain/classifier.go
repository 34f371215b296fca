package terrain

import (
	"runtime"
	"sort"
	"sync"

	"province-mapper/pkg/province"
	"province-mapper/pkg/raster"
)

const (
	// DefaultTreeWeight is the vote weight of a tree pixel relative to a
	// terrain pixel. The factor is empirically reverse-engineered (assigning
	// 2x reproduces the game's choices on the base map) rather than
	// principled, so it can be overridden on the Classifier.
	DefaultTreeWeight = 2

	// TerrainIgnoreIndex marks terrain pixels that must not vote. It doubles
	// as the mask-out value, so a map whose terrain palette genuinely uses
	// index 255 conflates the two, as the game itself does.
	TerrainIgnoreIndex = 255

	// Tree tie-break keys are offset past the terrain index range so that a
	// terrain-layer tie always beats a tree-layer tie.
	treeTiebreakOffset = 255

	// River width classes in (riverNarrowMax, riverSentinelMin) suppress
	// both terrain and tree votes under them. Indices 0-2 are source/merge/
	// split markers, 3 is the narrowest drawn river, 254 and 255 mean no
	// river at all.
	riverNarrowMax   = 3
	riverSentinelMin = 254
)

// excludedTreeIndices are tree types that never contribute terrain (pure
// decoration such as palms and savanna tufts).
var excludedTreeIndices = [256]bool{12: true, 27: true, 28: true, 29: true, 30: true}

// Classifier assigns terrain categories to provinces. All fields are
// read-only once the classifier is built; Assign can be called from any
// number of goroutines.
type Classifier struct {
	Def *Definition

	// Terrain, Trees and Rivers share the terrain raster's grid. Trees must
	// be the projected artifact from ProjectTrees, computed before the
	// classifier is used and never mutated afterwards.
	Terrain *raster.Indexed
	Trees   *raster.Indexed
	Rivers  *raster.Indexed

	// Water lists the province IDs classified as sea or lake. A category
	// whose IsWater flag disagrees with a province's presence here is never
	// assigned to it.
	Water map[int]bool

	// TreeWeight overrides DefaultTreeWeight when positive.
	TreeWeight int
}

// NewClassifier builds a classifier over the given rasters. trees is the
// projected tree raster from ProjectTrees.
func NewClassifier(def *Definition, terrain, trees, rivers *raster.Indexed, water map[int]bool) *Classifier {
	return &Classifier{
		Def:     def,
		Terrain: terrain,
		Trees:   trees,
		Rivers:  rivers,
		Water:   water,
	}
}

// tally accumulates weighted votes for one candidate category.
type tally struct {
	cat   *Category
	votes int
	// tiebreak is the lowest palette index observed for the category, with
	// tree indices offset past the terrain range.
	tiebreak int
}

// Assign computes the terrain category of a province. A manual override
// returns immediately without touching the rasters. Otherwise every mask
// pixel votes: tree pixels (weighted) where the projected tree raster has a
// non-sentinel, non-decoration index, plain terrain pixels elsewhere, with
// wide rivers suppressing both layers. Unmapped palette indices are skipped
// without error, as the game tolerates them. If no candidate survives
// the water/land guard the fallback category is returned; Assign never fails.
func (c *Classifier) Assign(p *province.Province) *Category {
	if cat, ok := c.Def.Overrides[p.ID]; ok {
		return cat
	}

	weight := c.TreeWeight
	if weight <= 0 {
		weight = DefaultTreeWeight
	}

	var candidates []*tally
	byCat := make(map[*Category]*tally)
	vote := func(cat *Category, votes, tiebreak int) {
		t := byCat[cat]
		if t == nil {
			t = &tally{cat: cat, tiebreak: tiebreak}
			byCat[cat] = t
			candidates = append(candidates, t)
		}
		t.votes += votes
		if tiebreak < t.tiebreak {
			t.tiebreak = tiebreak
		}
	}

	box := p.Box
	for y := box.Top; y < box.Bottom; y++ {
		for x := box.Left; x < box.Right; x++ {
			if !p.Mask.At(x-box.Left, y-box.Top) {
				continue
			}
			if r := c.Rivers.At(x, y); r > riverNarrowMax && r < riverSentinelMin {
				continue
			}
			if tree := c.Trees.At(x, y); tree != TreeNoneIndex {
				// The tree suppresses the terrain pixel under it even when
				// the tree itself is decoration-only or unmapped.
				if excludedTreeIndices[tree] {
					continue
				}
				if cat, ok := c.Def.TreeIndex[tree]; ok {
					vote(cat, weight, int(tree)+treeTiebreakOffset)
				}
				continue
			}
			t := c.Terrain.At(x, y)
			if t == TerrainIgnoreIndex {
				continue
			}
			if cat, ok := c.Def.TerrainIndex[t]; ok {
				vote(cat, 1, int(t))
			}
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].votes != candidates[j].votes {
			return candidates[i].votes > candidates[j].votes
		}
		return candidates[i].tiebreak < candidates[j].tiebreak
	})

	isWater := c.Water[p.ID]
	for _, t := range candidates {
		if t.cat.IsWater != isWater {
			continue
		}
		return t.cat
	}
	return c.Def.Fallback
}

// AssignAll classifies every province in the map. Provinces share only the
// read-only rasters, so the work is split across workers with no locking
// beyond result collection.
func (c *Classifier) AssignAll(m *province.Map) map[int]*Category {
	result := make(map[int]*Category, len(m.IDs))
	if len(m.IDs) == 0 {
		return result
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > len(m.IDs) {
		numWorkers = len(m.IDs)
	}
	perWorker := (len(m.IDs) + numWorkers - 1) / numWorkers

	var mu sync.Mutex
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		start := w * perWorker
		end := start + perWorker
		if end > len(m.IDs) {
			end = len(m.IDs)
		}
		if start >= end {
			break
		}

		wg.Add(1)
		go func(ids []int) {
			defer wg.Done()
			local := make(map[int]*Category, len(ids))
			for _, id := range ids {
				local[id] = c.Assign(m.ByID[id])
			}
			mu.Lock()
			for id, cat := range local {
				result[id] = cat
			}
			mu.Unlock()
		}(m.IDs[start:end])
	}
	wg.Wait()

	return result
}
