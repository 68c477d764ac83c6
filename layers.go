package router

import "fmt"

// Copper layer indices. FCu and BCu bound the copper stack; EdgeCuts is the
// board outline layer, relevant only for castellation checks.
const (
	FCu      = 0
	BCu      = 31
	EdgeCuts = 44
)

// LayerRange is an inclusive span of layer indices. The zero value is a
// single-layer range on layer 0.
type LayerRange struct {
	start, end int
}

// NewLayerRange normalizes the endpoints so Start <= End always holds.
func NewLayerRange(start, end int) LayerRange {
	if start > end {
		start, end = end, start
	}
	return LayerRange{start: start, end: end}
}

func SingleLayer(layer int) LayerRange {
	return LayerRange{start: layer, end: layer}
}

func (lr LayerRange) Start() int {
	return lr.start
}

func (lr LayerRange) End() int {
	return lr.end
}

func (lr LayerRange) Overlaps(other LayerRange) bool {
	return lr.end >= other.start && lr.start <= other.end
}

func (lr LayerRange) Contains(layer int) bool {
	return layer >= lr.start && layer <= lr.end
}

func (lr LayerRange) IsMultilayer() bool {
	return lr.start != lr.end
}

func (lr LayerRange) String() string {
	return fmt.Sprintf("[%d..%d]", lr.start, lr.end)
}
