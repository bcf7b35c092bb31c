package core

import "errors"

// ErrInvalidArea is returned when an Area is constructed with negative dimensions.
var ErrInvalidArea = errors.New("core: area dimensions must be non-negative")

// Point is a 2D coordinate in world space (fractional screen cells).
// Points are value types; every operation returns a copy.
type Point struct {
	X, Y float64
}

// Offset returns a copy of the point translated by (dx, dy).
func (p Point) Offset(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Dimensions is a width/height pair. Both components are non-negative.
type Dimensions struct {
	W, H float64
}

// Area is an axis-aligned rectangle anchored at its top-left corner.
// Unlike Rect it lives in fractional world coordinates and is used for
// entity hitboxes, where sub-cell positions matter.
type Area struct {
	Pos Point
	Dim Dimensions
}

// NewArea creates an area, validating that dimensions are non-negative.
func NewArea(pos Point, dim Dimensions) (Area, error) {
	if dim.W < 0 || dim.H < 0 {
		return Area{}, ErrInvalidArea
	}
	return Area{Pos: pos, Dim: dim}, nil
}

// AreaOf is a convenience constructor for areas with known-valid dimensions.
func AreaOf(x, y, w, h float64) Area {
	return Area{Pos: Point{X: x, Y: y}, Dim: Dimensions{W: w, H: h}}
}

// Left returns the x-coordinate of the left edge.
func (a Area) Left() float64 { return a.Pos.X }

// Right returns the x-coordinate of the right edge.
func (a Area) Right() float64 { return a.Pos.X + a.Dim.W }

// Top returns the y-coordinate of the top edge.
func (a Area) Top() float64 { return a.Pos.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (a Area) Bottom() float64 { return a.Pos.Y + a.Dim.H }

// Center returns the center point of the area.
func (a Area) Center() Point {
	return Point{X: a.Pos.X + a.Dim.W/2, Y: a.Pos.Y + a.Dim.H/2}
}

// Corners returns the four corners in top-left, top-right,
// bottom-left, bottom-right order.
func (a Area) Corners() [4]Point {
	return [4]Point{
		{X: a.Left(), Y: a.Top()},
		{X: a.Right(), Y: a.Top()},
		{X: a.Left(), Y: a.Bottom()},
		{X: a.Right(), Y: a.Bottom()},
	}
}

// ContainsPoint returns true if the point lies inside the area.
// Both edges are inclusive.
func (a Area) ContainsPoint(p Point) bool {
	return p.X >= a.Left() && p.X <= a.Right() &&
		p.Y >= a.Top() && p.Y <= a.Bottom()
}

// ContainsArea returns true if the other area lies fully inside this one.
func (a Area) ContainsArea(other Area) bool {
	for _, c := range other.Corners() {
		if !a.ContainsPoint(c) {
			return false
		}
	}
	return true
}

// Intersects returns true if the two areas overlap. Edge contact counts
// as overlap, matching the inclusive semantics of ContainsPoint.
func (a Area) Intersects(other Area) bool {
	if a.Left() > other.Right() || other.Left() > a.Right() {
		return false
	}
	if a.Top() > other.Bottom() || other.Top() > a.Bottom() {
		return false
	}
	return true
}

// CenterOnPoint returns an area of the same size whose center is p.
func (a Area) CenterOnPoint(p Point) Area {
	return Area{
		Pos: Point{X: p.X - a.Dim.W/2, Y: p.Y - a.Dim.H/2},
		Dim: a.Dim,
	}
}

// CenterOnArea returns an area of the same size centered on the other area.
func (a Area) CenterOnArea(other Area) Area {
	return a.CenterOnPoint(other.Center())
}

// Offset returns a copy of the area translated by (dx, dy).
func (a Area) Offset(dx, dy float64) Area {
	return Area{Pos: a.Pos.Offset(dx, dy), Dim: a.Dim}
}
