package router

import "fmt"

// Kind tags a board item variant. It is fixed at construction.
type Kind int

const (
	KindInvalid Kind = iota
	KindArc
	KindLine
	KindSegment
	KindVia
	KindJoint
	KindSolid
	KindDiffPair
	KindHole
)

// Item is a polymorphic board object seen by the router: a piece of copper
// or a drill opening, with a layer span, a net and a back-reference to the
// board object it came from. Items are borrowed from the board document;
// the collision engine never owns them.
type Item interface {
	Kind() Kind
	KindStr() string
	Shape() Shape
	Hole() *Hole
	Layers() LayerRange
	SetLayers(LayerRange)
	Layer() int
	Net() int
	SetNet(int)
	Parent() BoardItem
	SetParent(BoardItem)
	IsFreePad() bool
	Format() string

	Collide(head Item, node Node, ctx *CollisionSearchContext) bool
}

// Marker bits record transient routing state on an item. The collision
// core only stores them; the routing algorithms above set and clear them.
const (
	MarkerHead = 1 << iota
	MarkerViolation
	MarkerLocked
)

// ItemBase carries the state shared by every item variant. Variants embed
// it and register themselves as self so that base methods can reach the
// concrete item, mirroring how shapes link back to their class.
type ItemBase struct {
	self     Item
	kind     Kind
	net      int
	layers   LayerRange
	parent   BoardItem
	marker   int
	rank     int
	routable bool
}

func newItemBase(self Item, kind Kind) ItemBase {
	return ItemBase{self: self, kind: kind, net: -1, rank: -1, routable: true}
}

func (b *ItemBase) Kind() Kind {
	return b.kind
}

func (b *ItemBase) KindStr() string {
	switch b.kind {
	case KindArc:
		return "arc"
	case KindLine:
		return "line"
	case KindSegment:
		return "segment"
	case KindVia:
		return "via"
	case KindJoint:
		return "joint"
	case KindSolid:
		return "solid"
	case KindDiffPair:
		return "diff-pair"
	case KindHole:
		return "hole"
	default:
		return "unknown"
	}
}

func (b *ItemBase) Net() int {
	return b.net
}

func (b *ItemBase) SetNet(net int) {
	b.net = net
}

func (b *ItemBase) Layers() LayerRange {
	return b.layers
}

func (b *ItemBase) SetLayers(layers LayerRange) {
	b.layers = layers
}

// Layer returns the principal layer: the start of the range.
func (b *ItemBase) Layer() int {
	return b.layers.Start()
}

func (b *ItemBase) Parent() BoardItem {
	return b.parent
}

func (b *ItemBase) SetParent(parent BoardItem) {
	b.parent = parent
}

func (b *ItemBase) Marker() int {
	return b.marker
}

func (b *ItemBase) SetMarker(marker int) {
	b.marker = marker
}

func (b *ItemBase) Rank() int {
	return b.rank
}

func (b *ItemBase) SetRank(rank int) {
	b.rank = rank
}

func (b *ItemBase) IsRoutable() bool {
	return b.routable
}

func (b *ItemBase) SetRoutable(routable bool) {
	b.routable = routable
}

// IsVirtual is overridden by items with no board geometry of their own.
func (b *ItemBase) IsVirtual() bool {
	return false
}

// Hole is overridden by the variants that carry one.
func (b *ItemBase) Hole() *Hole {
	return nil
}

// IsFreePad is overridden by Solid.
func (b *ItemBase) IsFreePad() bool {
	return false
}

func (b *ItemBase) Format() string {
	return fmt.Sprintf("%s net %d layers %d %d",
		b.KindStr(), b.net, b.layers.Start(), b.layers.End())
}
