// Package geometry provides basic integer geometric types used throughout the library.
package geometry

// PointInt represents a 2D point with integer coordinates.
type PointInt struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Box is an axis-aligned integer rectangle. Right and Bottom are exclusive:
// the box covers x in [Left, Right) and y in [Top, Bottom).
type Box struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// NewBox creates a new Box.
func NewBox(left, top, right, bottom int) Box {
	return Box{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() int {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box.
func (b Box) Height() int {
	return b.Bottom - b.Top
}

// Empty returns true if the box covers no pixels.
func (b Box) Empty() bool {
	return b.Right <= b.Left || b.Bottom <= b.Top
}

// Contains returns true if the pixel (x, y) lies inside the box.
func (b Box) Contains(x, y int) bool {
	return x >= b.Left && x < b.Right && y >= b.Top && y < b.Bottom
}

// Scaled returns the box with every coordinate multiplied by factor.
func (b Box) Scaled(factor int) Box {
	return Box{
		Left:   b.Left * factor,
		Top:    b.Top * factor,
		Right:  b.Right * factor,
		Bottom: b.Bottom * factor,
	}
}

// Union returns the smallest box containing both boxes. An empty box is
// treated as the identity.
func (b Box) Union(other Box) Box {
	if b.Empty() {
		return other
	}
	if other.Empty() {
		return b
	}
	out := b
	if other.Left < out.Left {
		out.Left = other.Left
	}
	if other.Top < out.Top {
		out.Top = other.Top
	}
	if other.Right > out.Right {
		out.Right = other.Right
	}
	if other.Bottom > out.Bottom {
		out.Bottom = other.Bottom
	}
	return out
}
