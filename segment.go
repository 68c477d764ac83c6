package router

// Segment is a thick line segment (a stadium): a single trace piece.
// Width is the full copper width; the collision radius is half of it.
type Segment struct {
	a, b  Vector
	width int
}

func NewSegment(a, b Vector, width int) *Segment {
	return &Segment{a: a, b: b, width: width}
}

func (seg *Segment) Type() ShapeType {
	return ShapeTypeSegment
}

func (seg *Segment) A() Vector {
	return seg.a
}

func (seg *Segment) B() Vector {
	return seg.b
}

func (seg *Segment) Width() int {
	return seg.width
}

func (seg *Segment) SetEndpoints(a, b Vector) {
	seg.a, seg.b = a, b
}

func (seg *Segment) Centre() Vector {
	return Vector{(seg.a.X + seg.b.X) / 2, (seg.a.Y + seg.b.Y) / 2}
}

func (seg *Segment) BBox() BB {
	bb := BB{
		minInt(seg.a.X, seg.b.X),
		minInt(seg.a.Y, seg.b.Y),
		maxInt(seg.a.X, seg.b.X),
		maxInt(seg.a.Y, seg.b.Y),
	}
	return bb.Inflate(seg.width / 2)
}

func (seg *Segment) Move(delta Vector) {
	seg.a = seg.a.Add(delta)
	seg.b = seg.b.Add(delta)
}

func (seg *Segment) Clone() Shape {
	s := *seg
	return &s
}

func (seg *Segment) Collide(other Shape, clearance int) bool {
	ok, _, _ := shapesCollide(seg, other, clearance)
	return ok
}

func (seg *Segment) CollideDetail(other Shape, clearance int) (bool, int, Vector) {
	return shapesCollide(seg, other, clearance)
}

func (seg *Segment) decompose(p *prims) {
	p.segs = append(p.segs, segPrim{a: seg.a, b: seg.b, r: seg.width / 2})
}
