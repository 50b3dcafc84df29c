package sunflower

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-pass metrics. Only populated when debug is enabled.
type debugStats struct {
	pass      int
	mode      Mode
	elements  int
	total     int // including children
	uncached  int // elements whose geometry is not the cached one
	geomAlloc int
	matAlloc  int
	took      time.Duration
}

func passStats(elements []Element, cache *ShapeCache, pass int, took time.Duration) debugStats {
	st := debugStats{
		pass:     pass,
		elements: len(elements),
		took:     took,
	}
	cached := cache.CachedGeometry()
	Walk(elements, func(e *Element, _ Vec2, _, _ float64) {
		st.total++
		if e.Shape.Geometry != cached {
			st.uncached++
		}
	})
	cs := cache.Stats()
	st.geomAlloc = cs.GeometryAllocs
	st.matAlloc = cs.MaterialAllocs
	return st
}

// debugLog prints pass stats to stderr.
func (c *Controller) debugLog(st debugStats) {
	st.mode = c.params.Mode
	_, _ = fmt.Fprintf(os.Stderr,
		"[sunflower] pass %d: mode=%s | elements: %d (%d total) | uncached: %d | took: %v\n",
		st.pass, st.mode, st.elements, st.total, st.uncached, st.took)
	_, _ = fmt.Fprintf(os.Stderr,
		"[sunflower] cache: geometry allocs %d | material allocs %d\n",
		st.geomAlloc, st.matAlloc)
}
