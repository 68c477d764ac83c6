package router

// Obstacle records one collision found during a search: the probing item
// (head), the board item it ran into, and the clearance that was violated.
// Obstacles hold non-owning references; the board document keeps ownership
// of the items.
type Obstacle struct {
	Head      Item
	Item      Item
	Clearance int
}

type obstacleKey struct {
	head, item Item
}

// ObstacleSet accumulates obstacles and drops repeats of the same
// (head, item) pair, so a multi-path search discovering the same conflict
// twice reports it once. Iteration order is insertion order.
type ObstacleSet struct {
	seen  map[obstacleKey]struct{}
	order []Obstacle
}

func NewObstacleSet() *ObstacleSet {
	return &ObstacleSet{seen: make(map[obstacleKey]struct{})}
}

// Insert adds the obstacle unless an equal (head, item) pair is already
// present and reports whether it was added.
func (s *ObstacleSet) Insert(o Obstacle) bool {
	key := obstacleKey{head: o.Head, item: o.Item}
	if _, dup := s.seen[key]; dup {
		return false
	}
	s.seen[key] = struct{}{}
	s.order = append(s.order, o)
	return true
}

func (s *ObstacleSet) Len() int {
	return len(s.order)
}

func (s *ObstacleSet) Items() []Obstacle {
	return append([]Obstacle(nil), s.order...)
}

// Deduplicate returns the items with equal entries collapsed, preserving
// first-seen order. equal decides item equivalence.
func Deduplicate(items []Item, equal func(a, b Item) bool) []Item {
	var rv []Item
	for _, item := range items {
		isDuplicate := false
		for _, kept := range rv {
			if equal(kept, item) {
				isDuplicate = true
				break
			}
		}
		if !isDuplicate {
			rv = append(rv, item)
		}
	}
	return rv
}
