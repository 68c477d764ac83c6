package router

import "math"

type ShapeType int

const (
	ShapeTypeCircle ShapeType = iota
	ShapeTypeSegment
	ShapeTypeLineChain
	ShapeTypeCompound
)

// Shape is a geometric primitive carried by a board item. Collide reports
// whether the gap between two shapes is smaller than the given clearance;
// CollideDetail additionally reports the actual gap and a contact point for
// the callers that need to inspect where the violation happened.
type Shape interface {
	Type() ShapeType
	BBox() BB
	Centre() Vector
	Move(delta Vector)
	Clone() Shape
	Collide(other Shape, clearance int) bool
	CollideDetail(other Shape, clearance int) (bool, int, Vector)

	decompose(p *prims)
}

// circlePrim and segPrim are the two skeleton primitives every shape reduces
// to for distance queries: a point or a segment, each with an inflation
// radius.
type circlePrim struct {
	c Vector
	r int
}

type segPrim struct {
	a, b Vector
	r    int
}

type prims struct {
	circles  []circlePrim
	segs     []segPrim
	outlines []*LineChain // closed outlines, for containment
}

func (p *prims) refPoint() Vector {
	if len(p.circles) > 0 {
		return p.circles[0].c
	}
	if len(p.segs) > 0 {
		return p.segs[0].a
	}
	return Vector{}
}

// shapesCollide is the single geometric test behind every Shape.Collide.
// The separation between two shapes is the skeleton distance minus both
// inflation radii; a separation not exceeding the clearance is a collision.
// Containment of one shape inside a closed outline counts as zero
// separation even when no edges are near each other.
func shapesCollide(a, b Shape, clearance int) (bool, int, Vector) {
	var pa, pb prims
	a.decompose(&pa)
	b.decompose(&pb)

	sep := math.Inf(1)
	var pos Vector

	update := func(d float64, ra, rb int, qa, qb Vector) {
		s := d - float64(ra) - float64(rb)
		if s < sep {
			sep = s
			pos = contactPoint(qa, qb, ra, rb, d)
		}
	}

	for _, ca := range pa.circles {
		for _, cb := range pb.circles {
			update(ca.c.Distance(cb.c), ca.r, cb.r, ca.c, cb.c)
		}
		for _, sb := range pb.segs {
			cl := ca.c.ClosestPointOnSegment(sb.a, sb.b)
			update(ca.c.Distance(cl), ca.r, sb.r, ca.c, cl)
		}
	}
	for _, sa := range pa.segs {
		for _, cb := range pb.circles {
			cl := cb.c.ClosestPointOnSegment(sa.a, sa.b)
			update(cb.c.Distance(cl), sa.r, cb.r, cl, cb.c)
		}
		for _, sb := range pb.segs {
			d, qa, qb := segmentDistance(sa.a, sa.b, sb.a, sb.b)
			update(d, sa.r, sb.r, qa, qb)
		}
	}

	// One shape fully inside the other's closed outline.
	for _, out := range pb.outlines {
		if p := pa.refPoint(); out.PointInside(p) {
			update(0, 0, 0, p, p)
		}
	}
	for _, out := range pa.outlines {
		if p := pb.refPoint(); out.PointInside(p) {
			update(0, 0, 0, p, p)
		}
	}

	if math.IsInf(sep, 1) {
		return false, 0, Vector{}
	}

	actual := 0
	if sep > 0 {
		actual = roundToInt(sep)
	}
	return sep <= float64(clearance), actual, pos
}

// contactPoint places the reported position midway between the two shape
// boundaries along the line joining the closest skeleton points.
func contactPoint(qa, qb Vector, ra, rb int, skeletonDist float64) Vector {
	if skeletonDist <= 0 {
		return qa
	}
	d := qb.Sub(qa)
	mid := float64(ra) + (skeletonDist-float64(ra)-float64(rb))/2
	t := clamp01(mid / skeletonDist)
	return Vector{
		qa.X + roundToInt(t*float64(d.X)),
		qa.Y + roundToInt(t*float64(d.Y)),
	}
}
