package view

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/sunflower"
)

// drawCommand is a single mesh draw emitted during traversal.
type drawCommand struct {
	mesh      *meshData
	transform [6]float64 // view * world
	color     sunflower.Color
	z         float64
	treeOrder int // assigned during traversal for stable sort
}

// drawStats holds per-frame metrics. Only populated when debug is enabled.
type drawStats struct {
	traverseTime time.Duration
	sortTime     time.Duration
	submitTime   time.Duration
	commandCount int
	vertexCount  int
}

func (s *Scene) drawPattern(target *ebiten.Image) {
	var stats drawStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	updateWorldTransform(s.root, identityTransform, 0, false)
	view := s.camera.computeViewMatrix()
	s.commands = s.commands[:0]
	treeOrder := 0
	s.traverse(s.root, view, &treeOrder)

	if s.debug {
		stats.traverseTime = time.Since(t0)
		t0 = time.Now()
	}

	s.mergeSort()

	if s.debug {
		stats.sortTime = time.Since(t0)
		stats.commandCount = len(s.commands)
		t0 = time.Now()
	}

	stats.vertexCount = s.submit(target)

	if s.debug {
		stats.submitTime = time.Since(t0)
		s.debugLog(stats)
	}
}

// traverse walks the tree depth-first and emits a command for every visible
// shape node. An invisible node hides its subtree.
func (s *Scene) traverse(n *Node, view [6]float64, treeOrder *int) {
	if !n.Visible {
		return
	}
	if n.HasShape() {
		*treeOrder++
		s.commands = append(s.commands, drawCommand{
			mesh:      n.mesh,
			transform: multiplyAffine(view, n.worldTransform),
			color:     n.Color,
			z:         n.worldZ,
			treeOrder: *treeOrder,
		})
	}
	for _, child := range n.children {
		s.traverse(child, view, treeOrder)
	}
}

// submit draws every command in order as one batched DrawTriangles32 call.
// Returns the number of vertices submitted.
func (s *Scene) submit(target *ebiten.Image) int {
	if len(s.commands) == 0 {
		return 0
	}
	s.batchVerts = s.batchVerts[:0]
	s.batchInds = s.batchInds[:0]
	for i := range s.commands {
		cmd := &s.commands[i]
		base := uint32(len(s.batchVerts))
		s.batchVerts = appendTransformedVertices(s.batchVerts, cmd.mesh.verts, cmd.transform, cmd.color)
		for _, idx := range cmd.mesh.inds {
			s.batchInds = append(s.batchInds, base+uint32(idx))
		}
	}

	var triOp ebiten.DrawTrianglesOptions
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	triOp.AntiAlias = true
	target.DrawTriangles32(s.batchVerts, s.batchInds, ensureWhitePixel(), &triOp)
	return len(s.batchVerts)
}

// --- Merge sort ---

// commandLessOrEqual returns true if a should sort before or at the same position as b.
// Using <= for treeOrder ensures stability.
func commandLessOrEqual(a, b drawCommand) bool {
	if a.z != b.z {
		return a.z < b.z
	}
	return a.treeOrder <= b.treeOrder
}

// mergeSort sorts s.commands in-place using s.sortBuf as scratch space.
// Bottom-up merge sort: zero allocations after the sort buffer reaches high-water mark.
func (s *Scene) mergeSort() {
	n := len(s.commands)
	if n <= 1 {
		return
	}
	if cap(s.sortBuf) < n {
		s.sortBuf = make([]drawCommand, n)
	}
	s.sortBuf = s.sortBuf[:n]

	a := s.commands
	b := s.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(s.commands, s.sortBuf)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []drawCommand, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if commandLessOrEqual(src[i], src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}

// debugLog prints frame stats to stderr.
func (s *Scene) debugLog(st drawStats) {
	total := st.traverseTime + st.sortTime + st.submitTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[sunflower] frame: %v (traverse %v, sort %v, submit %v) | commands: %d | vertices: %d | meshes: %d (%d built)\n",
		total, st.traverseTime, st.sortTime, st.submitTime,
		st.commandCount, st.vertexCount, len(s.meshes), s.meshBuilds)
}
