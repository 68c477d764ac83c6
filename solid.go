package router

// Solid is a pad or other fixed copper region: arbitrary shape, optional
// hole. A free pad belongs to a not-yet-assigned pin and keeps colliding
// with everything until a net is picked, so the same-net filter skips it.
type Solid struct {
	ItemBase
	shape   Shape
	hole    *Hole
	freePad bool
}

func NewSolid(shape Shape, layers LayerRange, net int) *Solid {
	s := &Solid{shape: shape}
	s.ItemBase = newItemBase(s, KindSolid)
	s.SetLayers(layers)
	s.SetNet(net)
	s.freePad = net < 0
	return s
}

func (s *Solid) Shape() Shape {
	return s.shape
}

func (s *Solid) Hole() *Hole {
	return s.hole
}

func (s *Solid) SetHole(h *Hole) {
	s.hole = h
	if h != nil {
		h.SetParentPadVia(s)
	}
}

func (s *Solid) IsFreePad() bool {
	return s.freePad
}

func (s *Solid) SetFreePad(free bool) {
	s.freePad = free
}

func (s *Solid) Pos() Vector {
	return s.shape.Centre()
}

func (s *Solid) Move(delta Vector) {
	s.shape.Move(delta)
	if s.hole != nil {
		s.hole.Move(delta)
	}
}
