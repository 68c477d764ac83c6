package router

import polyclip "github.com/ctessum/polyclip-go"

// PolySet collects closed outlines and merges overlapping ones into
// strictly simple polygons. Hole hulls for compound drills are built by
// unioning per-primitive hulls through a set.
type PolySet struct {
	outlines []*LineChain
}

func (ps *PolySet) AddOutline(lc *LineChain) {
	out := lc.Clone().(*LineChain)
	out.SetClosed(true)
	ps.outlines = append(ps.outlines, out)
}

func (ps *PolySet) OutlineCount() int {
	return len(ps.outlines)
}

func (ps *PolySet) Outline(i int) *LineChain {
	return ps.outlines[i]
}

// Simplify replaces the stored outlines with their boolean union.
func (ps *PolySet) Simplify() {
	if len(ps.outlines) < 2 {
		return
	}

	merged := toPolyclip(ps.outlines[0])
	for _, out := range ps.outlines[1:] {
		merged = merged.Construct(polyclip.UNION, toPolyclip(out))
	}

	ps.outlines = ps.outlines[:0]
	for _, contour := range merged {
		lc := &LineChain{closed: true}
		for _, p := range contour {
			lc.Append(Vector{roundToInt(p.X), roundToInt(p.Y)})
		}
		ps.outlines = append(ps.outlines, lc)
	}
}

func toPolyclip(lc *LineChain) polyclip.Polygon {
	contour := make(polyclip.Contour, 0, lc.Size())
	for _, p := range lc.Points() {
		contour = append(contour, polyclip.Point{X: float64(p.X), Y: float64(p.Y)})
	}
	return polyclip.Polygon{contour}
}
