package router

import (
	"fmt"
	"math"
)

// Vector is a point in board coordinate space. Coordinates are integer
// nanometers, the resolution board items are stored at.
type Vector struct {
	X, Y int
}

func (v Vector) String() string {
	return fmt.Sprintf("%d,%d", v.X, v.Y)
}

func (v Vector) Equal(other Vector) bool {
	return v.X == other.X && v.Y == other.Y
}

func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y}
}

func (v Vector) Neg() Vector {
	return Vector{-v.X, -v.Y}
}

func (v Vector) Mult(s int) Vector {
	return Vector{v.X * s, v.Y * s}
}

func (v Vector) Dot(other Vector) int64 {
	return int64(v.X)*int64(other.X) + int64(v.Y)*int64(other.Y)
}

// Cross returns the magnitude of the z component of the 3D cross product
// of the two vectors extended with z = 0.
func (v Vector) Cross(other Vector) int64 {
	return int64(v.X)*int64(other.Y) - int64(v.Y)*int64(other.X)
}

func (v Vector) Perp() Vector {
	return Vector{-v.Y, v.X}
}

func (v Vector) LengthSq() int64 {
	return v.Dot(v)
}

func (v Vector) Length() float64 {
	return math.Sqrt(float64(v.LengthSq()))
}

func (v Vector) DistanceSq(other Vector) int64 {
	return v.Sub(other).LengthSq()
}

func (v Vector) Distance(other Vector) float64 {
	return v.Sub(other).Length()
}

// ClosestPointOnSegment returns the point of segment [a b] nearest to v.
func (v Vector) ClosestPointOnSegment(a, b Vector) Vector {
	d := b.Sub(a)
	l2 := d.LengthSq()
	if l2 == 0 {
		return a
	}
	t := clamp01(float64(v.Sub(a).Dot(d)) / float64(l2))
	return Vector{
		a.X + roundToInt(t*float64(d.X)),
		a.Y + roundToInt(t*float64(d.Y)),
	}
}

func clamp01(f float64) float64 {
	return math.Max(0, math.Min(f, 1))
}

func roundToInt(f float64) int {
	return int(math.Round(f))
}

// segmentsCross reports whether [a1 a2] and [b1 b2] intersect, including
// touching at endpoints or collinear overlap.
func segmentsCross(a1, a2, b1, b2 Vector) bool {
	d1 := b2.Sub(b1).Cross(a1.Sub(b1))
	d2 := b2.Sub(b1).Cross(a2.Sub(b1))
	d3 := a2.Sub(a1).Cross(b1.Sub(a1))
	d4 := a2.Sub(a1).Cross(b2.Sub(a1))

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	return (d1 == 0 && onSegment(b1, b2, a1)) ||
		(d2 == 0 && onSegment(b1, b2, a2)) ||
		(d3 == 0 && onSegment(a1, a2, b1)) ||
		(d4 == 0 && onSegment(a1, a2, b2))
}

// onSegment assumes p is collinear with [a b].
func onSegment(a, b, p Vector) bool {
	return minInt(a.X, b.X) <= p.X && p.X <= maxInt(a.X, b.X) &&
		minInt(a.Y, b.Y) <= p.Y && p.Y <= maxInt(a.Y, b.Y)
}

// segmentDistance returns the minimum distance between two segments and the
// pair of points realizing it.
func segmentDistance(a1, a2, b1, b2 Vector) (float64, Vector, Vector) {
	if segmentsCross(a1, a2, b1, b2) {
		p := segmentIntersection(a1, a2, b1, b2)
		return 0, p, p
	}

	best := math.Inf(1)
	var pa, pb Vector
	consider := func(p, qa, qb Vector, swap bool) {
		c := p.ClosestPointOnSegment(qa, qb)
		d := p.Distance(c)
		if d < best {
			best = d
			if swap {
				pa, pb = c, p
			} else {
				pa, pb = p, c
			}
		}
	}
	consider(a1, b1, b2, false)
	consider(a2, b1, b2, false)
	consider(b1, a1, a2, true)
	consider(b2, a1, a2, true)
	return best, pa, pb
}

// segmentIntersection assumes the segments intersect.
func segmentIntersection(a1, a2, b1, b2 Vector) Vector {
	d := a2.Sub(a1)
	e := b2.Sub(b1)
	denom := d.Cross(e)
	if denom == 0 {
		// Collinear overlap: pick an endpoint lying on the other segment.
		for _, p := range []Vector{a1, a2} {
			if onSegment(b1, b2, p) {
				return p
			}
		}
		return b1
	}
	t := float64(b1.Sub(a1).Cross(e)) / float64(denom)
	return Vector{
		a1.X + roundToInt(t*float64(d.X)),
		a1.Y + roundToInt(t*float64(d.Y)),
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
