package router

import (
	"github.com/dhconnelly/rtreego"
	"github.com/sirupsen/logrus"
)

// Node is the spatial/logical container collision queries are evaluated
// against. It is read-only for the duration of a query.
type Node interface {
	GetClearance(a, b Item) int
	GetRuleResolver() RuleResolver
	GetRouterIface() RouterIface
	GetCollisionQueryScope() CollisionQueryScope
	QueryEdgeExclusions(pos Vector) bool
}

// World is the concrete Node: it owns the searchable item set, keeps an
// R-tree over item bounds, and drives both query modes of the collision
// engine. Single-writer: edits and queries must not interleave.
type World struct {
	resolver       RuleResolver
	iface          RouterIface
	scope          CollisionQueryScope
	tree           *rtreego.Rtree
	entries        map[Item]*worldEntry
	edgeExclusions []*LineChain
	maxClearance   int
}

type worldEntry struct {
	item Item
	rect rtreego.Rect
}

func (e *worldEntry) Bounds() rtreego.Rect {
	return e.rect
}

func rtreegoRect(bb BB) rtreego.Rect {
	// rtreego rejects zero extents; degenerate boxes get a sliver.
	w := maxInt(bb.Width(), 1)
	h := maxInt(bb.Height(), 1)
	rect, err := rtreego.NewRect(
		rtreego.Point{float64(bb.L), float64(bb.B)},
		[]float64{float64(w), float64(h)})
	if err != nil {
		panic(err)
	}
	return rect
}

// WorldOption configures a World.
type WorldOption func(*World)

func WithRuleResolver(r RuleResolver) WorldOption {
	return func(w *World) { w.resolver = r }
}

func WithRouterIface(i RouterIface) WorldOption {
	return func(w *World) { w.iface = i }
}

func WithCollisionQueryScope(scope CollisionQueryScope) WorldOption {
	return func(w *World) { w.scope = scope }
}

// WithMaxClearance sets the search-window inflation: it must be at least
// the largest clearance the resolver can return, or distant obstacles are
// missed.
func WithMaxClearance(c int) WorldOption {
	return func(w *World) { w.maxClearance = c }
}

func NewWorld(opts ...WorldOption) *World {
	w := &World{
		resolver: &SimpleResolver{},
		iface:    FlashAll{},
		scope:    CQSAllRules,
		tree:     rtreego.NewTree(2, 25, 50),
		entries:  make(map[Item]*worldEntry),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *World) GetClearance(a, b Item) int {
	return w.resolver.Clearance(a, b)
}

func (w *World) GetRuleResolver() RuleResolver {
	return w.resolver
}

func (w *World) GetRouterIface() RouterIface {
	return w.iface
}

func (w *World) GetCollisionQueryScope() CollisionQueryScope {
	return w.scope
}

func (w *World) SetCollisionQueryScope(scope CollisionQueryScope) {
	w.scope = scope
}

func (w *World) SetMaxClearance(c int) {
	w.maxClearance = c
}

// AddEdgeExclusion registers a castellated board-edge region where
// outline-crossing geometry is permitted.
func (w *World) AddEdgeExclusion(outline *LineChain) {
	out := outline.Clone().(*LineChain)
	out.SetClosed(true)
	w.edgeExclusions = append(w.edgeExclusions, out)
}

func (w *World) QueryEdgeExclusions(pos Vector) bool {
	for _, region := range w.edgeExclusions {
		if region.PointInside(pos) {
			return true
		}
	}
	return false
}

// Add indexes an item. The world borrows the item; ownership stays with
// the board document.
func (w *World) Add(item Item) {
	if _, ok := w.entries[item]; ok {
		return
	}
	entry := &worldEntry{item: item, rect: rtreegoRect(item.Shape().BBox())}
	w.entries[item] = entry
	w.tree.Insert(entry)
}

func (w *World) Remove(item Item) {
	entry, ok := w.entries[item]
	if !ok {
		return
	}
	w.tree.Delete(entry)
	delete(w.entries, item)
}

// Reindex refreshes an item's index entry after its geometry moved.
func (w *World) Reindex(item Item) {
	if _, ok := w.entries[item]; !ok {
		return
	}
	w.Remove(item)
	w.Add(item)
}

func (w *World) Count() int {
	return len(w.entries)
}

// Each visits every indexed item.
func (w *World) Each(f func(Item)) {
	for item := range w.entries {
		f(item)
	}
}

func (w *World) searchWindow(head Item) rtreego.Rect {
	bb := head.Shape().BBox()
	if head.Kind() == KindLine {
		if line := head.(*Line); line.EndsWithVia() {
			bb = bb.Merge(line.Via().Shape().BBox())
		}
	}
	if hole := head.Hole(); hole != nil {
		bb = bb.Merge(hole.Shape().BBox())
	}
	return rtreegoRect(bb.Inflate(w.maxClearance))
}

func (w *World) candidates(head Item) []Item {
	spatials := w.tree.SearchIntersect(w.searchWindow(head))
	items := make([]Item, 0, len(spatials))
	for _, s := range spatials {
		items = append(items, s.(*worldEntry).item)
	}
	return items
}

// QueryColliding enumerates every obstacle the head item conflicts with.
func (w *World) QueryColliding(head Item, opts CollisionSearchOptions) []Obstacle {
	ctx := NewCollisionSearchContext(opts)
	for _, item := range w.candidates(head) {
		item.Collide(head, w, ctx)
	}

	traceLog.WithFields(logrus.Fields{
		"head":      head.Format(),
		"obstacles": ctx.Obstacles.Len(),
	}).Debug("collision query done")

	return ctx.Obstacles.Items()
}

// CheckColliding returns the first obstacle the head item conflicts with,
// or nil. This is the cheap per-mouse-move query: the candidate scan stops
// at the first conflicting pair.
func (w *World) CheckColliding(head Item, opts CollisionSearchOptions) *Obstacle {
	ctx := NewCollisionSearchContext(opts)
	for _, item := range w.candidates(head) {
		item.Collide(head, w, ctx)
		if ctx.Obstacles.Len() > 0 {
			obs := ctx.Obstacles.Items()[0]
			return &obs
		}
	}
	return nil
}
