package router

// Hole is a drill or slot opening. It is always logically bound to the pad
// or via that owns it; the parent link suppresses self-collision between an
// item and its own hole. Circular holes keep their center and radius on the
// shape; compound holes describe slots.
type Hole struct {
	ItemBase
	shape        Shape
	parentPadVia Item
}

func NewHole(shape Shape) *Hole {
	h := &Hole{shape: shape}
	h.ItemBase = newItemBase(h, KindHole)
	return h
}

// MakeCircularHole builds a parentless circular hole spanning the whole
// copper stack, for ad-hoc holes not yet bound to a pad or via.
func MakeCircularHole(pos Vector, radius int) *Hole {
	h := NewHole(NewCircle(pos, radius))
	h.SetLayers(NewLayerRange(FCu, BCu))
	return h
}

func (h *Hole) Shape() Shape {
	return h.shape
}

// Hole returns the hole itself: an item's hole-side geometry is the item
// when the item already is a hole.
func (h *Hole) Hole() *Hole {
	return h
}

func (h *Hole) ParentPadVia() Item {
	return h.parentPadVia
}

func (h *Hole) SetParentPadVia(parent Item) {
	h.parentPadVia = parent
}

func (h *Hole) IsCircular() bool {
	return h.shape.Type() == ShapeTypeCircle
}

func (h *Hole) Radius() int {
	circle, ok := h.shape.(*Circle)
	if !ok {
		panic("Radius called on non-circular hole")
	}
	return circle.Radius()
}

func (h *Hole) Center() Vector {
	circle, ok := h.shape.(*Circle)
	if !ok {
		panic("Center called on non-circular hole")
	}
	return circle.Center()
}

func (h *Hole) SetCenter(c Vector) {
	circle, ok := h.shape.(*Circle)
	if !ok {
		panic("SetCenter called on non-circular hole")
	}
	circle.SetCenter(c)
}

func (h *Hole) SetRadius(r int) {
	circle, ok := h.shape.(*Circle)
	if !ok {
		panic("SetRadius called on non-circular hole")
	}
	circle.SetRadius(r)
}

// Pos returns the origin for every hole.
// TODO: derive the position from the shape once non-circular holes carry
// a meaningful reference point; callers that need a circular hole's center
// use Center instead.
func (h *Hole) Pos() Vector {
	return Vector{}
}

func (h *Hole) Move(delta Vector) {
	h.shape.Move(delta)
}

func (h *Hole) Clone() *Hole {
	clone := NewHole(h.shape.Clone())
	clone.SetNet(h.Net())
	clone.SetLayers(h.Layers())
	clone.SetParent(h.Parent())
	clone.parentPadVia = h.parentPadVia
	return clone
}

// Hull returns the routing hull of the hole: the outline a walkaround path
// of the given thickness must stay outside of, offset by the clearance.
func (h *Hole) Hull(clearance, walkaroundThickness, layer int) *LineChain {
	if h.shape == nil {
		return NewLineChain()
	}

	switch shape := h.shape.(type) {
	case *Circle:
		cl := clearance + walkaroundThickness/2
		width := shape.Radius() * 2
		// Chamfer = width * (1 - sqrt(2)/2) for an equal-width octagon.
		chamfer := roundToInt(float64(2*cl+width) * (1 - sqrt2over2))
		origin := shape.Center().Sub(Vector{width / 2, width / 2})
		return OctagonalHull(origin, Vector{width, width}, cl, chamfer)

	case *Compound:
		if shape.Size() == 1 {
			return BuildHullForPrimitiveShape(shape.Shapes()[0], clearance, walkaroundThickness)
		}
		var hullSet PolySet
		for _, s := range shape.Shapes() {
			hullSet.AddOutline(BuildHullForPrimitiveShape(s, clearance, walkaroundThickness))
		}
		hullSet.Simplify()
		return hullSet.Outline(0)

	default:
		return BuildHullForPrimitiveShape(h.shape, clearance, walkaroundThickness)
	}
}
