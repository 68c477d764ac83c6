package router

// Compound groups several primitive shapes into one: slotted drills,
// complex pad stacks.
type Compound struct {
	shapes []Shape
}

func NewCompound(shapes ...Shape) *Compound {
	return &Compound{shapes: append([]Shape(nil), shapes...)}
}

func (cmp *Compound) Type() ShapeType {
	return ShapeTypeCompound
}

func (cmp *Compound) AddShape(s Shape) {
	cmp.shapes = append(cmp.shapes, s)
}

func (cmp *Compound) Shapes() []Shape {
	return cmp.shapes
}

func (cmp *Compound) Size() int {
	return len(cmp.shapes)
}

func (cmp *Compound) Centre() Vector {
	return cmp.BBox().Center()
}

func (cmp *Compound) BBox() BB {
	if len(cmp.shapes) == 0 {
		return BB{}
	}
	bb := cmp.shapes[0].BBox()
	for _, s := range cmp.shapes[1:] {
		bb = bb.Merge(s.BBox())
	}
	return bb
}

func (cmp *Compound) Move(delta Vector) {
	for _, s := range cmp.shapes {
		s.Move(delta)
	}
}

func (cmp *Compound) Clone() Shape {
	clone := &Compound{shapes: make([]Shape, len(cmp.shapes))}
	for i, s := range cmp.shapes {
		clone.shapes[i] = s.Clone()
	}
	return clone
}

func (cmp *Compound) Collide(other Shape, clearance int) bool {
	ok, _, _ := shapesCollide(cmp, other, clearance)
	return ok
}

func (cmp *Compound) CollideDetail(other Shape, clearance int) (bool, int, Vector) {
	return shapesCollide(cmp, other, clearance)
}

func (cmp *Compound) decompose(p *prims) {
	for _, s := range cmp.shapes {
		s.decompose(p)
	}
}
