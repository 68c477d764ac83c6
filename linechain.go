package router

// LineChain is an open or closed polyline. Collision routines treat the
// chain as zero-width; items that need a copper width on top of a chain
// (lines) pass it through the clearance instead.
type LineChain struct {
	pts    []Vector
	closed bool
}

func NewLineChain(pts ...Vector) *LineChain {
	return &LineChain{pts: append([]Vector(nil), pts...)}
}

func NewClosedLineChain(pts ...Vector) *LineChain {
	lc := NewLineChain(pts...)
	lc.closed = true
	return lc
}

func (lc *LineChain) Type() ShapeType {
	return ShapeTypeLineChain
}

func (lc *LineChain) Size() int {
	return len(lc.pts)
}

func (lc *LineChain) Point(i int) Vector {
	return lc.pts[i]
}

func (lc *LineChain) Points() []Vector {
	return lc.pts
}

func (lc *LineChain) Append(v Vector) {
	lc.pts = append(lc.pts, v)
}

func (lc *LineChain) Closed() bool {
	return lc.closed
}

func (lc *LineChain) SetClosed(closed bool) {
	lc.closed = closed
}

// SegmentCount returns the number of edges, including the closing edge for
// closed chains.
func (lc *LineChain) SegmentCount() int {
	n := len(lc.pts)
	if n < 2 {
		return 0
	}
	if lc.closed {
		return n
	}
	return n - 1
}

func (lc *LineChain) Segment(i int) (Vector, Vector) {
	return lc.pts[i], lc.pts[(i+1)%len(lc.pts)]
}

func (lc *LineChain) Centre() Vector {
	return lc.BBox().Center()
}

func (lc *LineChain) BBox() BB {
	if len(lc.pts) == 0 {
		return BB{}
	}
	bb := BB{lc.pts[0].X, lc.pts[0].Y, lc.pts[0].X, lc.pts[0].Y}
	for _, p := range lc.pts[1:] {
		bb = bb.Expand(p)
	}
	return bb
}

func (lc *LineChain) Move(delta Vector) {
	for i := range lc.pts {
		lc.pts[i] = lc.pts[i].Add(delta)
	}
}

func (lc *LineChain) Clone() Shape {
	return &LineChain{pts: append([]Vector(nil), lc.pts...), closed: lc.closed}
}

// PointInside reports whether p lies inside a closed chain, using the
// crossing-number test. Points exactly on an edge count as inside.
func (lc *LineChain) PointInside(p Vector) bool {
	if !lc.closed || len(lc.pts) < 3 {
		return false
	}

	inside := false
	n := len(lc.pts)
	for i := 0; i < n; i++ {
		a := lc.pts[i]
		b := lc.pts[(i+1)%n]

		if b.Sub(a).Cross(p.Sub(a)) == 0 && onSegment(a, b, p) {
			return true
		}

		if (a.Y > p.Y) != (b.Y > p.Y) {
			xCross := float64(a.X) + float64(p.Y-a.Y)*float64(b.X-a.X)/float64(b.Y-a.Y)
			if float64(p.X) < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

func (lc *LineChain) Collide(other Shape, clearance int) bool {
	ok, _, _ := shapesCollide(lc, other, clearance)
	return ok
}

func (lc *LineChain) CollideDetail(other Shape, clearance int) (bool, int, Vector) {
	return shapesCollide(lc, other, clearance)
}

func (lc *LineChain) decompose(p *prims) {
	if len(lc.pts) == 1 {
		p.circles = append(p.circles, circlePrim{c: lc.pts[0]})
		return
	}
	for i := 0; i < lc.SegmentCount(); i++ {
		a, b := lc.Segment(i)
		p.segs = append(p.segs, segPrim{a: a, b: b})
	}
	if lc.closed && len(lc.pts) >= 3 {
		p.outlines = append(p.outlines, lc)
	}
}
