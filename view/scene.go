package view

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/sunflower"
)

const defaultCommandCap = 1024

// DefaultClearColor is the dark backdrop behind the pattern.
var DefaultClearColor = sunflower.Color{R: 43.0 / 255, G: 44.0 / 255, B: 47.0 / 255, A: 1}

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Scene owns the display tree, the camera and the render buffers. The
// current pattern lives under a dedicated layer that Replace rebuilds.
type Scene struct {
	root    *Node
	pattern *Node
	camera  *Camera

	// ClearColor fills the screen before drawing.
	ClearColor sunflower.Color

	// ScreenshotDir is where screenshots are written.
	ScreenshotDir string
	shots         []string

	// passes counts Replace calls.
	passes int

	// meshes maps every geometry of the current pass to its vertex buffer.
	meshes     map[*sunflower.Geometry]*meshData
	meshBuilds int

	commands   []drawCommand
	sortBuf    []drawCommand
	batchVerts []ebiten.Vertex
	batchInds  []uint32

	debug bool
}

// NewScene creates a scene whose camera covers a w×h viewport.
func NewScene(w, h int) *Scene {
	root := NewContainer("root")
	pattern := NewContainer("pattern")
	root.AddChild(pattern)
	return &Scene{
		root:          root,
		pattern:       pattern,
		camera:        NewCamera(Rect{Width: float64(w), Height: float64(h)}),
		ClearColor:    DefaultClearColor,
		ScreenshotDir: "screenshots",
		meshes:        map[*sunflower.Geometry]*meshData{},
		commands:      make([]drawCommand, 0, defaultCommandCap),
		sortBuf:       make([]drawCommand, 0, defaultCommandCap),
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Pattern returns the layer holding the nodes of the current pass.
func (s *Scene) Pattern() *Node {
	return s.pattern
}

// Camera returns the scene camera.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// SetDebugMode enables per-frame draw stats on stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Replace discards every node of the previous pass and builds one node per
// element, children nested under their parent. Nodes referencing the same
// geometry share one vertex buffer, which survives across passes while the
// geometry does.
func (s *Scene) Replace(elements []sunflower.Element) {
	s.pattern.DisposeChildren()
	next := make(map[*sunflower.Geometry]*meshData, len(s.meshes))
	for i := range elements {
		s.pattern.AddChild(s.buildNode(&elements[i], next))
	}
	s.meshes = next
	s.passes++
}

// Passes returns how many passes the scene has displayed.
func (s *Scene) Passes() int {
	return s.passes
}

func (s *Scene) buildNode(e *sunflower.Element, next map[*sunflower.Geometry]*meshData) *Node {
	fill := sunflower.ColorWhite
	if e.Shape.Material != nil {
		fill = e.Shape.Material.Color
	}
	name := "element"
	mesh := s.meshFor(e.Shape.Geometry, next)
	if mesh != nil {
		name = mesh.geometry.Kind.String()
	}
	n := newShapeNode(name, mesh, fill)
	n.Index = e.Index
	n.X = e.Position.X
	n.Y = e.Position.Y
	n.Rotation = e.RotationZ
	n.Z = e.ZOrder
	for i := range e.Children {
		n.AddChild(s.buildNode(&e.Children[i], next))
	}
	return n
}

func (s *Scene) meshFor(g *sunflower.Geometry, next map[*sunflower.Geometry]*meshData) *meshData {
	if g == nil {
		return nil
	}
	if m, ok := next[g]; ok {
		return m
	}
	m, ok := s.meshes[g]
	if !ok {
		m = buildMesh(g)
		s.meshBuilds++
	}
	next[g] = m
	return m
}

// MeshCount returns the number of distinct vertex buffers in the current pass.
func (s *Scene) MeshCount() int {
	return len(s.meshes)
}

// Update advances camera animations by dt seconds.
func (s *Scene) Update(dt float64) {
	s.camera.update(float32(dt))
}

// Draw clears the target and renders the pattern through the camera.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(s.ClearColor.RGBA())
	s.drawPattern(screen)
}
