package sunflower

import "math"

// ShapeKind identifies the primitive a Geometry describes.
type ShapeKind uint8

const (
	ShapeCircle  ShapeKind = iota // RadiusX == RadiusY
	ShapeEllipse                  // semi-axes RadiusX (width) and RadiusY (height)
)

// String returns the lowercase shape name.
func (k ShapeKind) String() string {
	if k == ShapeEllipse {
		return "ellipse"
	}
	return "circle"
}

// OutlineSegments is the number of outline points used to tessellate circles
// and ellipses.
const OutlineSegments = 48

// geometryIDCounter is a plain counter (no atomic, the engine is single-threaded).
var geometryIDCounter uint32

func nextGeometryID() uint32 {
	geometryIDCounter++
	return geometryIDCounter
}

// Geometry is a tessellated 2D primitive centered at the origin.
// Outline holds OutlineSegments points counter-clockwise starting at +X;
// Indices is a fan triangulation over Outline.
type Geometry struct {
	ID      uint32
	Kind    ShapeKind
	RadiusX float64
	RadiusY float64
	Outline []Vec2
	Indices []uint16
}

// NewCircle creates circle geometry with the given radius.
func NewCircle(radius float64) *Geometry {
	return newGeometry(ShapeCircle, radius, radius)
}

// NewEllipse creates ellipse geometry with semi-axes rx (along X) and ry (along Y).
func NewEllipse(rx, ry float64) *Geometry {
	return newGeometry(ShapeEllipse, rx, ry)
}

func newGeometry(kind ShapeKind, rx, ry float64) *Geometry {
	pts := make([]Vec2, OutlineSegments)
	for i := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / OutlineSegments)
		pts[i] = Vec2{X: cos * rx, Y: sin * ry}
	}
	return &Geometry{
		ID:      nextGeometryID(),
		Kind:    kind,
		RadiusX: rx,
		RadiusY: ry,
		Outline: pts,
		Indices: fanIndices(len(pts)),
	}
}

// fanIndices returns 3*(n-2) indices of a fan with vertex 0 as the hub.
// Valid for convex outlines only.
func fanIndices(n int) []uint16 {
	if n < 3 {
		return nil
	}
	inds := make([]uint16, (n-2)*3)
	for i := 0; i < n-2; i++ {
		inds[i*3+0] = 0
		inds[i*3+1] = uint16(i + 1)
		inds[i*3+2] = uint16(i + 2)
	}
	return inds
}

// Extent returns the larger semi-axis, a rotation-independent bound on how far
// the shape reaches from its center.
func (g *Geometry) Extent() float64 {
	return math.Max(math.Abs(g.RadiusX), math.Abs(g.RadiusY))
}

// Material is a flat fill color shared by every element that references it.
type Material struct {
	ID    uint32
	Color Color
}

var materialIDCounter uint32

func newMaterial(c Color) *Material {
	materialIDCounter++
	return &Material{ID: materialIDCounter, Color: c}
}
