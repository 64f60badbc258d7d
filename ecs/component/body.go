package component

import "github.com/jakecoffman/cp"

// Body is a fixed-size axis aligned box anchored at the Transform position.
type Body struct {
	Width  float64
	Height float64
}

// Bounds returns the world-space box of a body placed at pos.
func (b Body) Bounds(pos cp.Vector) Bounds {
	return NewBounds(pos, b.Width, b.Height)
}

var BodyComponent = NewComponent[Body]()

// Bounds wraps a cp.BB in screen orientation: the BB's minimum y (B) is the
// top edge and its maximum y (T) is the bottom edge.
type Bounds struct {
	cp.BB
}

func NewBounds(pos cp.Vector, width, height float64) Bounds {
	return Bounds{cp.BB{L: pos.X, B: pos.Y, R: pos.X + width, T: pos.Y + height}}
}

func (b Bounds) Left() float64   { return b.L }
func (b Bounds) Right() float64  { return b.R }
func (b Bounds) Top() float64    { return b.B }
func (b Bounds) Bottom() float64 { return b.T }
func (b Bounds) Width() float64  { return b.R - b.L }
func (b Bounds) Height() float64 { return b.T - b.B }

func (b Bounds) Center() cp.Vector {
	return cp.Vector{X: (b.L + b.R) / 2, Y: (b.B + b.T) / 2}
}

// OverlapsX reports whether the horizontal spans touch or overlap.
func (b Bounds) OverlapsX(o Bounds) bool {
	return b.R >= o.L && b.L <= o.R
}
