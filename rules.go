package router

// RuleResolver supplies the clearance policy for item pairs. A negative
// clearance means checking is disabled for the pair; that is a policy
// outcome, not an error.
type RuleResolver interface {
	Clearance(a, b Item) int
	ClearanceEpsilon() int
	IsInNetTie(item Item) bool
	IsNetTieExclusion(head Item, collisionPos Vector, item Item) bool
}

// RouterIface answers board-level questions the collision engine cannot:
// whether an item actually presents copper on a given layer. Pads and vias
// can span layers they are not flashed on; there the only real geometry is
// the hole.
type RouterIface interface {
	IsFlashedOnLayer(item Item, layer int) bool
}

// CollisionQueryScope selects how thorough a collision query is.
type CollisionQueryScope int

const (
	// CQSAllRules runs every sub-check, including hole clearances for
	// flashed items. This is the exhaustive DRC-grade scope.
	CQSAllRules CollisionQueryScope = iota
	// CQSIgnoreHoleClearance skips hole checks unless an unflashed layer
	// forces them; the fast interactive scope.
	CQSIgnoreHoleClearance
)

// BoardKind tags the originating board object of an item.
type BoardKind int

const (
	BoardUnknown BoardKind = iota
	BoardTrack
	BoardArcTrack
	BoardVia
	BoardPad
	BoardZone
)

// BoardItem is the non-owning back-reference from a router item into the
// board document, used for keepout, castellation and footprint lookups.
type BoardItem interface {
	BoardKind() BoardKind
	BoardLayer() int
	ParentFootprint() BoardItem
}

// KeepoutZone is a board zone that disallows certain item kinds inside it.
type KeepoutZone interface {
	BoardItem
	DoNotAllowTracks() bool
	DoNotAllowVias() bool
	DoNotAllowPads() bool
	DoNotAllowFootprints() bool
}

// keepoutDisallows reports whether the keepout excludes the given board
// object's kind. Footprint keepouts never exclude their own footprint's
// pads.
func keepoutDisallows(keepout KeepoutZone, other BoardItem) bool {
	if keepout.DoNotAllowTracks() &&
		(other.BoardKind() == BoardTrack || other.BoardKind() == BoardArcTrack) {
		return true
	}

	if keepout.DoNotAllowVias() && other.BoardKind() == BoardVia {
		return true
	}

	if keepout.DoNotAllowPads() && other.BoardKind() == BoardPad {
		return true
	}

	// Incomplete test, but better than nothing:
	if keepout.DoNotAllowFootprints() && other.BoardKind() == BoardPad {
		return keepout.ParentFootprint() == nil ||
			keepout.ParentFootprint() != other.ParentFootprint()
	}

	return false
}

// BoardObject is a minimal concrete BoardItem.
type BoardObject struct {
	Kind      BoardKind
	Layer     int
	Footprint BoardItem
}

func (b *BoardObject) BoardKind() BoardKind {
	return b.Kind
}

func (b *BoardObject) BoardLayer() int {
	return b.Layer
}

func (b *BoardObject) ParentFootprint() BoardItem {
	return b.Footprint
}

// Keepout is a concrete keepout zone.
type Keepout struct {
	BoardObject
	NoTracks     bool
	NoVias       bool
	NoPads       bool
	NoFootprints bool
}

func NewKeepout() *Keepout {
	return &Keepout{BoardObject: BoardObject{Kind: BoardZone}}
}

func (k *Keepout) DoNotAllowTracks() bool {
	return k.NoTracks
}

func (k *Keepout) DoNotAllowVias() bool {
	return k.NoVias
}

func (k *Keepout) DoNotAllowPads() bool {
	return k.NoPads
}

func (k *Keepout) DoNotAllowFootprints() bool {
	return k.NoFootprints
}

// SimpleResolver is a RuleResolver with a uniform default clearance, an
// optional per-pair hook and set-based net-tie policy. It is the default
// resolver of a World and the workhorse of the tests.
type SimpleResolver struct {
	Default int
	Eps     int

	// ClearanceFn, when set, overrides Default for specific pairs; return
	// a negative value to fall back to Default.
	ClearanceFn func(a, b Item) int

	// NetTieNets holds the nets participating in net-tie groups.
	NetTieNets map[int]bool

	// NetTieExclusions are regions where rule-sanctioned overlap between
	// net-tie members is permitted.
	NetTieExclusions []*LineChain
}

func (r *SimpleResolver) Clearance(a, b Item) int {
	if r.ClearanceFn != nil {
		if c := r.ClearanceFn(a, b); c >= 0 {
			return c
		}
	}
	return r.Default
}

func (r *SimpleResolver) ClearanceEpsilon() int {
	return r.Eps
}

func (r *SimpleResolver) IsInNetTie(item Item) bool {
	return r.NetTieNets[item.Net()]
}

func (r *SimpleResolver) IsNetTieExclusion(head Item, collisionPos Vector, item Item) bool {
	if !r.NetTieNets[head.Net()] || !r.NetTieNets[item.Net()] {
		return false
	}
	for _, region := range r.NetTieExclusions {
		if region.PointInside(collisionPos) {
			return true
		}
	}
	return false
}

// FlashAll is a RouterIface that reports copper present everywhere.
type FlashAll struct{}

func (FlashAll) IsFlashedOnLayer(Item, int) bool {
	return true
}

// FlashFunc adapts a function to a RouterIface.
type FlashFunc func(item Item, layer int) bool

func (f FlashFunc) IsFlashedOnLayer(item Item, layer int) bool {
	return f(item, layer)
}
