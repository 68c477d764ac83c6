package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldAddRemoveReindex(t *testing.T) {
	w := testWorld(5, 0)

	seg := NewSegmentItem(Vector{0, 0}, Vector{100, 0}, 10, 0, 1)
	via := NewVia(Vector{200, 0}, NewLayerRange(0, 3), 20, 10, 2)

	w.Add(seg)
	w.Add(via)
	w.Add(seg) // repeat is a no-op
	assert.Equal(t, 2, w.Count())

	head := NewSegmentItem(Vector{0, 8}, Vector{100, 8}, 2, 0, 3)
	require.NotNil(t, w.CheckColliding(head, CollisionSearchOptions{}))

	w.Remove(seg)
	assert.Equal(t, 1, w.Count())
	assert.Nil(t, w.CheckColliding(head, CollisionSearchOptions{}))

	// Moved geometry is invisible to queries until reindexed.
	via.Move(Vector{-150, 8})
	w.Reindex(via)
	hit := w.CheckColliding(head, CollisionSearchOptions{})
	require.NotNil(t, hit)
	assert.Same(t, via, hit.Item)

	seen := 0
	w.Each(func(Item) { seen++ })
	assert.Equal(t, 1, seen)
}

func TestQueryCollidingAccumulates(t *testing.T) {
	w := testWorld(5, 0)

	near := []Item{
		NewSegmentItem(Vector{0, 12}, Vector{100, 12}, 10, 0, 2),
		NewVia(Vector{50, -10}, NewLayerRange(0, 3), 20, 0, 3),
		NewSolid(NewCircle(Vector{100, 0}, 8), SingleLayer(0), 4),
	}
	far := NewSegmentItem(Vector{0, 500}, Vector{100, 500}, 10, 0, 5)
	sameNet := NewSegmentItem(Vector{0, -12}, Vector{100, -12}, 10, 0, 1)

	for _, item := range near {
		w.Add(item)
	}
	w.Add(far)
	w.Add(sameNet)

	head := NewSegmentItem(Vector{0, 0}, Vector{100, 0}, 10, 0, 1)

	obstacles := w.QueryColliding(head, CollisionSearchOptions{DifferentNetsOnly: true})
	require.Len(t, obstacles, 3)
	for _, obs := range obstacles {
		assert.Same(t, head, obs.Head)
		assert.NotSame(t, far, obs.Item)
		assert.NotSame(t, sameNet, obs.Item)
	}

	// Without the net filter the parallel same-net track counts too.
	obstacles = w.QueryColliding(head, CollisionSearchOptions{})
	assert.Len(t, obstacles, 4)
}

func TestCheckCollidingFirstHit(t *testing.T) {
	w := testWorld(5, 0)
	for i := 0; i < 20; i++ {
		w.Add(NewSegmentItem(Vector{0, 12 + i}, Vector{100, 12 + i}, 10, 0, 2))
	}

	head := NewSegmentItem(Vector{0, 0}, Vector{100, 0}, 10, 0, 1)
	hit := w.CheckColliding(head, CollisionSearchOptions{})
	require.NotNil(t, hit)
	assert.Same(t, head, hit.Head)
	assert.Equal(t, 5, hit.Clearance)

	clearHead := NewSegmentItem(Vector{0, -100}, Vector{100, -100}, 10, 0, 1)
	assert.Nil(t, w.CheckColliding(clearHead, CollisionSearchOptions{}))
}

func TestSearchWindowHonorsMaxClearance(t *testing.T) {
	// Gap of 30 between shape edges. A world whose window inflation is
	// smaller than the rule clearance never even visits the candidate; with
	// a proper max clearance the violation is found.
	blind := NewWorld(
		WithRuleResolver(&SimpleResolver{Default: 40}),
		WithMaxClearance(10),
	)
	sighted := NewWorld(
		WithRuleResolver(&SimpleResolver{Default: 40}),
		WithMaxClearance(40),
	)

	head := NewSegmentItem(Vector{0, 0}, Vector{100, 0}, 10, 0, 1)
	for _, w := range []*World{blind, sighted} {
		w.Add(NewSegmentItem(Vector{0, 40}, Vector{100, 40}, 10, 0, 2))
	}

	assert.Nil(t, blind.CheckColliding(head, CollisionSearchOptions{}))
	assert.NotNil(t, sighted.CheckColliding(head, CollisionSearchOptions{}))
}

func TestSearchWindowCoversAttachedVia(t *testing.T) {
	w := testWorld(5, 0)
	obstacle := NewSegmentItem(Vector{480, 0}, Vector{580, 0}, 10, 3, 2)
	w.Add(obstacle)

	// The line body ends far from the obstacle and on another layer; only
	// the attached via reaches it. The query window must include the via or
	// the candidate scan misses the pair entirely.
	line := NewLine(10, 0, 1, Vector{0, 0}, Vector{100, 0})
	assert.Nil(t, w.CheckColliding(line, CollisionSearchOptions{}))

	via := NewVia(Vector{490, 0}, NewLayerRange(0, 3), 20, 0, 1)
	line.AppendVia(via)
	hit := w.CheckColliding(line, CollisionSearchOptions{})
	require.NotNil(t, hit)
	assert.Same(t, via, hit.Item)
	assert.Same(t, obstacle, hit.Head)
}

func TestQueryCollidingReportsHoles(t *testing.T) {
	w := testWorld(5, 0)
	via := NewVia(Vector{0, 0}, NewLayerRange(0, 3), 20, 16, 2)
	w.Add(via)

	head := NewSegmentItem(Vector{-50, 14}, Vector{50, 14}, 2, 0, 1)
	obstacles := w.QueryColliding(head, CollisionSearchOptions{})
	require.Len(t, obstacles, 2)

	kinds := map[Kind]bool{}
	for _, obs := range obstacles {
		kinds[obs.Item.Kind()] = true
	}
	assert.True(t, kinds[KindVia])
	assert.True(t, kinds[KindHole], "drill violations surface without the hole being indexed")
}

func TestWorldScopeSkipsHoleChecks(t *testing.T) {
	w := NewWorld(
		WithRuleResolver(&SimpleResolver{Default: 5}),
		WithCollisionQueryScope(CQSIgnoreHoleClearance),
		WithMaxClearance(5),
	)
	via := NewVia(Vector{0, 0}, NewLayerRange(0, 3), 20, 16, 2)
	w.Add(via)

	// The interactive scope skips hole checks on flashed layers, so only
	// the barrel is reported; the exhaustive scope adds the drill obstacle.
	head := NewSegmentItem(Vector{-50, 13}, Vector{50, 13}, 0, 0, 1)
	obstacles := w.QueryColliding(head, CollisionSearchOptions{})
	require.Len(t, obstacles, 1)
	assert.Equal(t, KindVia, obstacles[0].Item.Kind())

	w.SetCollisionQueryScope(CQSAllRules)
	obstacles = w.QueryColliding(head, CollisionSearchOptions{})
	require.Len(t, obstacles, 2)

	kinds := map[Kind]bool{}
	for _, obs := range obstacles {
		kinds[obs.Item.Kind()] = true
	}
	assert.True(t, kinds[KindHole])
}
