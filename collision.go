package router

import "github.com/sirupsen/logrus"

// CollisionSearchOptions shape a collision query. The zero value resolves
// clearances normally and checks same-net pairs too.
type CollisionSearchOptions struct {
	// DifferentNetsOnly skips pairs sharing the same valid net, except
	// free pads, which keep colliding with everything.
	DifferentNetsOnly bool
	// OverrideClearance, when set, is used instead of asking the rule
	// resolver. A negative override disables the shape test entirely.
	OverrideClearance *int
}

// OverrideClearance wraps a clearance value for CollisionSearchOptions.
func OverrideClearance(c int) *int {
	return &c
}

// CollisionSearchContext is the per-query scratch state for exhaustive
// searches. Passing a nil context to Collide switches the engine into
// first-hit mode, which returns on the first collision instead of
// enumerating all of them; interactive callers should do that unless they
// really need every obstacle.
type CollisionSearchContext struct {
	Obstacles *ObstacleSet
	Options   CollisionSearchOptions
}

func NewCollisionSearchContext(opts CollisionSearchOptions) *CollisionSearchContext {
	return &CollisionSearchContext{
		Obstacles: NewObstacleSet(),
		Options:   opts,
	}
}

func (ctx *CollisionSearchContext) add(o Obstacle) {
	if !ctx.Obstacles.Insert(o) {
		return
	}
	traceLog.WithFields(logrus.Fields{
		"head":      o.Head.Format(),
		"item":      o.Item.Format(),
		"clearance": o.Clearance,
		"total":     ctx.Obstacles.Len(),
	}).Debug("obstacle recorded")
}

// Collide reports whether the item collides with head. When head or the
// item is a line ending with a via, the attached via is tested as well.
// Two via-terminated lines colliding with each other is not supported:
// only one trace can be actively routed at a time, so only one side of a
// pairing carries such a head.
func (b *ItemBase) Collide(head Item, node Node, ctx *CollisionSearchContext) bool {
	collided := b.collideSimple(head, node, ctx)
	if collided && ctx == nil {
		return true
	}

	if b.kind == KindLine {
		if line := b.self.(*Line); line.EndsWithVia() {
			if line.Via().collideSimple(head, node, ctx) {
				if ctx == nil {
					return true
				}
				collided = true
			}
		}
	}

	if head.Kind() == KindLine {
		if line := head.(*Line); line.EndsWithVia() {
			if line.Via().collideSimple(b.self, node, ctx) {
				if ctx == nil {
					return true
				}
				collided = true
			}
		}
	}

	return collided
}

// collideSimple is the core pairwise test between the item and head: an
// ordered chain of early-exit filters followed by the geometric test.
func (b *ItemBase) collideSimple(head Item, node Node, ctx *CollisionSearchContext) bool {
	this := b.self

	if head == this { // we cannot be self-colliding
		return false
	}

	shapeI := this.Shape()
	holeI := this.Hole()
	lineWidthI := 0

	shapeH := head.Shape()
	holeH := head.Hole()
	lineWidthH := 0

	resolver := node.GetRuleResolver()
	clearanceEpsilon := resolver.ClearanceEpsilon()
	collisionsFound := false

	// Collision routines ignore chain widths, so line widths ride along as
	// part of the clearance value.
	if b.kind == KindLine {
		lineWidthI = this.(*Line).Width() / 2
	}
	if head.Kind() == KindLine {
		lineWidthH = head.(*Line).Width() / 2
	}

	// Same nets? No collision. Free pads have no real net until one is
	// assigned, so they are never exempted.
	if ctx != nil && ctx.Options.DifferentNetsOnly &&
		this.Net() == head.Net() && this.Net() >= 0 && head.Net() >= 0 &&
		!this.IsFreePad() && !head.IsFreePad() {
		return false
	}

	// Check if we are not on completely different layers first.
	if !b.layers.Overlaps(head.Layers()) {
		return false
	}

	if zone, ok := this.Parent().(KeepoutZone); ok && head.Parent() != nil {
		if !keepoutDisallows(zone, head.Parent()) {
			return false
		}
	}
	if zone, ok := head.Parent().(KeepoutZone); ok && this.Parent() != nil {
		if !keepoutDisallows(zone, this.Parent()) {
			return false
		}
	}

	iface := node.GetRouterIface()
	thisNotFlashed := false
	otherNotFlashed := false

	if iface != nil {
		thisNotFlashed = !iface.IsFlashedOnLayer(this, head.Layer())
		otherNotFlashed = !iface.IsFlashedOnLayer(head, this.Layer())
	}

	// Hole checks run under the exhaustive scope, or whenever a side is
	// not flashed here: an unflashed item's only real geometry on this
	// layer is its hole.
	if node.GetCollisionQueryScope() == CQSAllRules || thisNotFlashed || otherNotFlashed {
		if holeI != nil && holeI.ParentPadVia() != head && Item(holeI) != head {
			holeClearance := node.GetClearance(this, holeI)

			if holeI.Shape().Collide(shapeH, holeClearance+lineWidthH-clearanceEpsilon) {
				if ctx != nil {
					ctx.add(Obstacle{Head: head, Item: holeI, Clearance: holeClearance})
					collisionsFound = true
				} else {
					return true
				}
			}
		}

		if holeH != nil && holeH.ParentPadVia() != this && Item(holeH) != this {
			holeClearance := node.GetClearance(this, holeH)

			if holeH.Shape().Collide(shapeI, holeClearance+lineWidthI-clearanceEpsilon) {
				if ctx != nil {
					ctx.add(Obstacle{Head: holeH, Item: this, Clearance: holeClearance})
					collisionsFound = true
				} else {
					return true
				}
			}
		}

		if holeI != nil && holeH != nil && holeI != holeH {
			holeClearance := node.GetClearance(holeI, holeH)

			if holeI.Shape().Collide(holeH.Shape(), holeClearance-clearanceEpsilon) {
				if ctx != nil {
					ctx.add(Obstacle{Head: holeH, Item: holeI, Clearance: holeClearance})
					collisionsFound = true
				} else {
					return true
				}
			}
		}
	}

	// Past the hole checks, an unflashed single-layer pairing has no
	// copper left to collide.
	if !head.Layers().IsMultilayer() && thisNotFlashed {
		return collisionsFound
	}
	if !b.layers.IsMultilayer() && otherNotFlashed {
		return collisionsFound
	}

	var clearance int
	if ctx != nil && ctx.Options.OverrideClearance != nil {
		clearance = *ctx.Options.OverrideClearance
	} else {
		clearance = node.GetClearance(this, head)
	}

	// An item never collides with its own hole, in either direction.
	if holeI != nil && head == holeI.ParentPadVia() {
		return collisionsFound
	}
	if holeH != nil && this == holeH.ParentPadVia() {
		return collisionsFound
	}
	if holeH != nil && this == Item(holeH) {
		return collisionsFound
	}
	if holeI != nil && head == Item(holeI) {
		return collisionsFound
	}

	if clearance >= 0 {
		checkCastellation := b.parent != nil && b.parent.BoardLayer() == EdgeCuts
		checkNetTie := resolver.IsInNetTie(this)
		limit := clearance + lineWidthH + lineWidthI - clearanceEpsilon

		if checkCastellation || checkNetTie {
			// Slow method: we need the contact point to decide whether the
			// overlap falls inside an exclusion region.
			if ok, _, pos := shapeH.CollideDetail(shapeI, limit); ok {
				if checkCastellation && node.QueryEdgeExclusions(pos) {
					return collisionsFound
				}
				if checkNetTie && resolver.IsNetTieExclusion(head, pos, this) {
					return collisionsFound
				}
				if ctx != nil {
					ctx.add(Obstacle{Head: head, Item: this, Clearance: clearance})
					collisionsFound = true
				} else {
					return true
				}
			}
		} else {
			// Fast method.
			if shapeH.Collide(shapeI, limit) {
				if ctx != nil {
					ctx.add(Obstacle{Head: head, Item: this, Clearance: clearance})
					collisionsFound = true
				} else {
					return true
				}
			}
		}
	}

	return collisionsFound
}
