package router

// Line is a contiguous trace being routed: a polyline centerline with a
// copper width. The head line may end with a via attached at its last
// point; that via takes part in collision checks alongside the line.
type Line struct {
	ItemBase
	chain *LineChain
	width int
	via   *Via
}

func NewLine(width, layer, net int, pts ...Vector) *Line {
	l := &Line{chain: NewLineChain(pts...), width: width}
	l.ItemBase = newItemBase(l, KindLine)
	l.SetLayers(SingleLayer(layer))
	l.SetNet(net)
	return l
}

func (l *Line) Shape() Shape {
	return l.chain
}

func (l *Line) CLine() *LineChain {
	return l.chain
}

func (l *Line) Width() int {
	return l.width
}

func (l *Line) SetWidth(width int) {
	l.width = width
}

func (l *Line) EndsWithVia() bool {
	return l.via != nil
}

func (l *Line) Via() *Via {
	return l.via
}

// AppendVia attaches a via at the end of the line. The via inherits the
// line's net.
func (l *Line) AppendVia(v *Via) {
	v.SetNet(l.Net())
	l.via = v
}

func (l *Line) RemoveVia() {
	l.via = nil
}
