package router

import "math"

const sqrt2over2 = math.Sqrt2 / 2

// OctagonalHull returns a closed octagon bounding the rectangle at origin
// with the given size, inflated by clearance, with corners cut by chamfer.
func OctagonalHull(origin, size Vector, clearance, chamfer int) *LineChain {
	p0 := origin
	p1 := origin.Add(size)
	cl := clearance
	ch := chamfer

	hull := NewClosedLineChain(
		Vector{p0.X - cl, p0.Y - cl + ch},
		Vector{p0.X - cl, p1.Y + cl - ch},
		Vector{p0.X - cl + ch, p1.Y + cl},
		Vector{p1.X + cl - ch, p1.Y + cl},
		Vector{p1.X + cl, p1.Y + cl - ch},
		Vector{p1.X + cl, p0.Y - cl + ch},
		Vector{p1.X + cl - ch, p0.Y - cl},
		Vector{p0.X - cl + ch, p0.Y - cl},
	)
	return hull
}

// SegmentHull returns an octagonal hull around a thick segment: the
// stadium outline with the round caps replaced by chamfered corners.
func SegmentHull(seg *Segment, clearance, walkaroundThickness int) *LineChain {
	cl := clearance + walkaroundThickness/2
	d := seg.Width()/2 + cl
	a, b := seg.A(), seg.B()

	if a.Equal(b) {
		size := Vector{seg.Width(), seg.Width()}
		chamfer := roundToInt(float64(2*cl+seg.Width()) * (1 - sqrt2over2))
		return OctagonalHull(a.Sub(Vector{seg.Width() / 2, seg.Width() / 2}), size, cl, chamfer)
	}

	dir := b.Sub(a)
	x := roundToInt(2 * float64(d) * (1 - sqrt2over2))

	p0 := resize(dir.Perp(), d)
	ds := resize(dir.Perp(), x/2)
	pd := resize(dir, x/2)
	dp := resize(dir, d)

	return NewClosedLineChain(
		b.Add(p0).Add(pd),
		b.Add(dp).Add(ds),
		b.Add(dp).Sub(ds),
		b.Sub(p0).Add(pd),
		a.Sub(p0).Sub(pd),
		a.Sub(dp).Sub(ds),
		a.Sub(dp).Add(ds),
		a.Add(p0).Sub(pd),
	)
}

// resize scales v to the given length.
func resize(v Vector, length int) Vector {
	l := v.Length()
	if l == 0 {
		return Vector{}
	}
	return Vector{
		roundToInt(float64(v.X) / l * float64(length)),
		roundToInt(float64(v.Y) / l * float64(length)),
	}
}

// BuildHullForPrimitiveShape returns a clearance hull for a single
// primitive shape.
func BuildHullForPrimitiveShape(shape Shape, clearance, walkaroundThickness int) *LineChain {
	cl := clearance + walkaroundThickness/2

	switch s := shape.(type) {
	case *Circle:
		width := s.Radius() * 2
		chamfer := roundToInt(float64(2*cl+width) * (1 - sqrt2over2))
		return OctagonalHull(s.Center().Sub(Vector{width / 2, width / 2}),
			Vector{width, width}, cl, chamfer)

	case *Segment:
		return SegmentHull(s, clearance, walkaroundThickness)

	case *LineChain:
		if s.Size() == 2 {
			return SegmentHull(NewSegment(s.Point(0), s.Point(1), 0),
				clearance, walkaroundThickness)
		}
		return boxHull(s.BBox(), cl)

	default:
		return boxHull(shape.BBox(), cl)
	}
}

// boxHull falls back to a chamfered octagon around the bounding box.
func boxHull(bb BB, clearance int) *LineChain {
	width := minInt(bb.Width(), bb.Height())
	chamfer := roundToInt(float64(2*clearance+width) * (1 - sqrt2over2))
	return OctagonalHull(Vector{bb.L, bb.B}, Vector{bb.Width(), bb.Height()},
		clearance, chamfer)
}
