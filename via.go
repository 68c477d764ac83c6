package router

// Via is a plated barrel connecting a span of copper layers. A via with a
// positive drill size owns a Hole.
type Via struct {
	ItemBase
	circle *Circle
	hole   *Hole
}

func NewVia(pos Vector, layers LayerRange, diameter, drill, net int) *Via {
	v := &Via{circle: NewCircle(pos, diameter/2)}
	v.ItemBase = newItemBase(v, KindVia)
	v.SetLayers(layers)
	v.SetNet(net)

	if drill > 0 {
		h := MakeCircularHole(pos, drill/2)
		h.SetLayers(layers)
		h.SetNet(net)
		v.SetHole(h)
	}
	return v
}

func (v *Via) Shape() Shape {
	return v.circle
}

func (v *Via) Hole() *Hole {
	return v.hole
}

// SetHole binds a hole to the via and the via to the hole.
func (v *Via) SetHole(h *Hole) {
	v.hole = h
	if h != nil {
		h.SetParentPadVia(v)
	}
}

func (v *Via) Pos() Vector {
	return v.circle.Center()
}

func (v *Via) Diameter() int {
	return v.circle.Radius() * 2
}

func (v *Via) Drill() int {
	if v.hole == nil || !v.hole.IsCircular() {
		return 0
	}
	return v.hole.Radius() * 2
}

func (v *Via) Move(delta Vector) {
	v.circle.Move(delta)
	if v.hole != nil {
		v.hole.Move(delta)
	}
}
