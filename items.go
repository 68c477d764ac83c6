package router

import "math"

// SegmentItem is a single straight trace piece. Its width lives on the
// shape, so collisions account for it without any extra bookkeeping.
type SegmentItem struct {
	ItemBase
	seg *Segment
}

func NewSegmentItem(a, b Vector, width, layer, net int) *SegmentItem {
	s := &SegmentItem{seg: NewSegment(a, b, width)}
	s.ItemBase = newItemBase(s, KindSegment)
	s.SetLayers(SingleLayer(layer))
	s.SetNet(net)
	return s
}

func (s *SegmentItem) Shape() Shape {
	return s.seg
}

func (s *SegmentItem) Seg() *Segment {
	return s.seg
}

func (s *SegmentItem) Width() int {
	return s.seg.Width()
}

// Arc is a polygonized arc trace. The copper width is honored by building
// the shape out of thick segments rather than a bare chain.
type Arc struct {
	ItemBase
	shape *Compound
	width int
}

// NewArc polygonizes the arc between startAngle and endAngle (radians,
// counterclockwise) into thick segments.
func NewArc(center Vector, radius int, startAngle, endAngle float64, width, layer, net int) *Arc {
	a := &Arc{shape: NewCompound(), width: width}
	a.ItemBase = newItemBase(a, KindArc)
	a.SetLayers(SingleLayer(layer))
	a.SetNet(net)

	if endAngle < startAngle {
		endAngle += 2 * math.Pi
	}
	steps := maxInt(3, int((endAngle-startAngle)/(math.Pi/18))+1)
	prev := arcPoint(center, radius, startAngle)
	for i := 1; i <= steps; i++ {
		ang := startAngle + (endAngle-startAngle)*float64(i)/float64(steps)
		next := arcPoint(center, radius, ang)
		a.shape.AddShape(NewSegment(prev, next, width))
		prev = next
	}
	return a
}

func arcPoint(center Vector, radius int, angle float64) Vector {
	return Vector{
		center.X + roundToInt(float64(radius) * math.Cos(angle)),
		center.Y + roundToInt(float64(radius) * math.Sin(angle)),
	}
}

func (a *Arc) Shape() Shape {
	return a.shape
}

func (a *Arc) Width() int {
	return a.width
}

// Joint marks a junction between traces. It has point geometry and exists
// mostly so joint-kind obstacles can be reported with a position.
type Joint struct {
	ItemBase
	circ *Circle
}

func NewJoint(pos Vector, layers LayerRange, net int) *Joint {
	j := &Joint{circ: NewCircle(pos, 0)}
	j.ItemBase = newItemBase(j, KindJoint)
	j.SetLayers(layers)
	j.SetNet(net)
	return j
}

func (j *Joint) Shape() Shape {
	return j.circ
}

func (j *Joint) IsVirtual() bool {
	return true
}

func (j *Joint) Pos() Vector {
	return j.circ.Center()
}
