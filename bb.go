package router

// BB is an axis-aligned bounding box in board coordinates.
type BB struct {
	L, B, R, T int
}

func NewBBForExtents(c Vector, hw, hh int) BB {
	return BB{
		L: c.X - hw,
		B: c.Y - hh,
		R: c.X + hw,
		T: c.Y + hh,
	}
}

func NewBBForCircle(p Vector, r int) BB {
	return NewBBForExtents(p, r, r)
}

func (a BB) Intersects(b BB) bool {
	return a.L <= b.R && b.L <= a.R && a.B <= b.T && b.B <= a.T
}

func (bb BB) Contains(other BB) bool {
	return bb.L <= other.L && bb.R >= other.R && bb.B <= other.B && bb.T >= other.T
}

func (bb BB) ContainsVect(v Vector) bool {
	return bb.L <= v.X && bb.R >= v.X && bb.B <= v.Y && bb.T >= v.Y
}

func (a BB) Merge(b BB) BB {
	return BB{
		minInt(a.L, b.L),
		minInt(a.B, b.B),
		maxInt(a.R, b.R),
		maxInt(a.T, b.T),
	}
}

func (bb BB) Expand(v Vector) BB {
	return BB{
		minInt(bb.L, v.X),
		minInt(bb.B, v.Y),
		maxInt(bb.R, v.X),
		maxInt(bb.T, v.Y),
	}
}

func (bb BB) Inflate(d int) BB {
	return BB{bb.L - d, bb.B - d, bb.R + d, bb.T + d}
}

func (bb BB) Center() Vector {
	return Vector{(bb.L + bb.R) / 2, (bb.B + bb.T) / 2}
}

func (bb BB) Width() int {
	return bb.R - bb.L
}

func (bb BB) Height() int {
	return bb.T - bb.B
}

func (bb BB) Area() int64 {
	return int64(bb.R-bb.L) * int64(bb.T-bb.B)
}
