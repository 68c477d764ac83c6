package router

// Circle is a filled disc: via barrels, round pads and circular drills.
type Circle struct {
	c Vector
	r int
}

func NewCircle(center Vector, radius int) *Circle {
	return &Circle{c: center, r: radius}
}

func (circle *Circle) Type() ShapeType {
	return ShapeTypeCircle
}

func (circle *Circle) Center() Vector {
	return circle.c
}

func (circle *Circle) Centre() Vector {
	return circle.c
}

func (circle *Circle) Radius() int {
	return circle.r
}

func (circle *Circle) SetCenter(c Vector) {
	circle.c = c
}

func (circle *Circle) SetRadius(r int) {
	circle.r = r
}

func (circle *Circle) BBox() BB {
	return NewBBForCircle(circle.c, circle.r)
}

func (circle *Circle) Move(delta Vector) {
	circle.c = circle.c.Add(delta)
}

func (circle *Circle) Clone() Shape {
	c := *circle
	return &c
}

func (circle *Circle) Collide(other Shape, clearance int) bool {
	ok, _, _ := shapesCollide(circle, other, clearance)
	return ok
}

func (circle *Circle) CollideDetail(other Shape, clearance int) (bool, int, Vector) {
	return shapesCollide(circle, other, clearance)
}

func (circle *Circle) decompose(p *prims) {
	p.circles = append(p.circles, circlePrim{c: circle.c, r: circle.r})
}
