package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObstacleSetDedup(t *testing.T) {
	head := NewSegmentItem(Vector{0, 0}, Vector{100, 0}, 10, 0, 1)
	a := NewSegmentItem(Vector{0, 10}, Vector{100, 10}, 10, 0, 2)
	b := NewSegmentItem(Vector{0, 20}, Vector{100, 20}, 10, 0, 3)

	set := NewObstacleSet()
	assert.True(t, set.Insert(Obstacle{Head: head, Item: a, Clearance: 5}))
	assert.True(t, set.Insert(Obstacle{Head: head, Item: b, Clearance: 5}))
	assert.False(t, set.Insert(Obstacle{Head: head, Item: a, Clearance: 7}),
		"same (head, item) pair is a repeat even with another clearance")
	assert.Equal(t, 2, set.Len())

	// Same items in the opposite roles are a distinct pair.
	assert.True(t, set.Insert(Obstacle{Head: a, Item: head, Clearance: 5}))
	assert.Equal(t, 3, set.Len())
}

func TestObstacleSetOrder(t *testing.T) {
	head := NewJoint(Vector{0, 0}, SingleLayer(0), 1)
	items := []Item{
		NewSegmentItem(Vector{0, 10}, Vector{100, 10}, 10, 0, 2),
		NewSegmentItem(Vector{0, 20}, Vector{100, 20}, 10, 0, 3),
		NewSegmentItem(Vector{0, 30}, Vector{100, 30}, 10, 0, 4),
	}

	set := NewObstacleSet()
	for _, item := range items {
		set.Insert(Obstacle{Head: head, Item: item})
	}
	set.Insert(Obstacle{Head: head, Item: items[0]})

	got := set.Items()
	assert.Len(t, got, 3)
	for i, obs := range got {
		assert.Same(t, items[i], obs.Item)
	}
}

func TestDeduplicate(t *testing.T) {
	mk := func(net int) Item {
		return NewSegmentItem(Vector{0, 0}, Vector{100, 0}, 10, 0, net)
	}
	sameNet := func(a, b Item) bool {
		return a.Net() == b.Net()
	}

	in := []Item{mk(1), mk(2), mk(1), mk(3), mk(2), mk(1)}
	out := Deduplicate(in, sameNet)

	assert.Len(t, out, 3)
	assert.Same(t, in[0], out[0])
	assert.Same(t, in[1], out[1])
	assert.Same(t, in[3], out[2])
}

func TestDeduplicateDegenerate(t *testing.T) {
	identity := func(a, b Item) bool { return a == b }

	assert.Nil(t, Deduplicate(nil, identity))
	assert.Nil(t, Deduplicate([]Item{}, identity))

	only := NewJoint(Vector{0, 0}, SingleLayer(0), 1)
	out := Deduplicate([]Item{only, only, only}, identity)
	assert.Len(t, out, 1)
	assert.Same(t, only, out[0])
}
