package sunflower

import (
	"math"

	"github.com/jbeda/geom"
)

// Petal shape proportions, in multiples of Params.ElementRadius.
const (
	petalOuterRX = 5.1
	petalOuterRY = 10.1
	petalInnerRX = 5.0
	petalInnerRY = 10.0

	// petalInnerZ lifts the inner ellipse above its outer ellipse.
	petalInnerZ = 0.5
)

// PetalOutlineColor fills the outer ellipse of every petal regardless of
// Params.Color.
var PetalOutlineColor = ColorGreen

// ShapeRef pairs the geometry and material an element is drawn with.
type ShapeRef struct {
	Geometry *Geometry
	Material *Material
}

// Element is one placed primitive of a generation pass. Children are
// positioned relative to their parent (offset rotated by the parent).
type Element struct {
	Index     int // 1-based index along the pattern; children copy their parent's
	Position  Vec2
	RotationZ float64 // radians, counter-clockwise
	ZOrder    float64
	Shape     ShapeRef
	Children  []Element
}

// Generate maps p to the ordered element sequence of one pass. Cached
// geometry and material are taken from cache, which is filled lazily.
// Count <= 0 yields an empty slice. ElementRadius is not validated.
func Generate(p Params, cache *ShapeCache) []Element {
	switch p.Mode {
	case ModePetal:
		return generatePetals(p, cache)
	default:
		return generateSeeds(p, cache)
	}
}

// ElementAngle is the polar angle of element i: 2π · rotation · i.
func ElementAngle(rotation float64, i int) float64 {
	return 2 * math.Pi * rotation * float64(i)
}

// SeedRadius is the Vogel radius factor of seed i: 2 · sqrt(i).
func SeedRadius(i int) float64 {
	return 2 * math.Sqrt(float64(i))
}

func generateSeeds(p Params, cache *ShapeCache) []Element {
	if p.Count <= 0 {
		return []Element{}
	}
	shape := ShapeRef{
		Geometry: cache.Geometry(ModeSeed, ShapeCircle, p.ElementRadius, p.ElementRadius),
		Material: cache.Material(ModeSeed, p.Color),
	}
	out := make([]Element, 0, p.Count)
	for i := 1; i <= p.Count; i++ {
		sin, cos := math.Sincos(ElementAngle(p.Rotation, i))
		r := SeedRadius(i)
		out = append(out, Element{
			Index:    i,
			Position: Vec2{X: cos * r * p.Spacing, Y: sin * r * p.Spacing},
			Shape:    shape,
		})
	}
	return out
}

func generatePetals(p Params, cache *ShapeCache) []Element {
	if p.Count <= 0 {
		return []Element{}
	}
	inner := ShapeRef{
		Geometry: cache.Geometry(ModePetal, ShapeEllipse, petalInnerRX*p.ElementRadius, petalInnerRY*p.ElementRadius),
		Material: cache.Material(ModePetal, p.Color),
	}
	out := make([]Element, 0, p.Count)
	for i := 1; i <= p.Count; i++ {
		angle := ElementAngle(p.Rotation, i)
		sin, cos := math.Sincos(angle)
		// The outer ellipse is allocated per petal and never cached.
		outer := ShapeRef{
			Geometry: NewEllipse(petalOuterRX*p.ElementRadius, petalOuterRY*p.ElementRadius),
			Material: newMaterial(PetalOutlineColor),
		}
		out = append(out, Element{
			Index:     i,
			Position:  Vec2{X: cos * p.Spacing, Y: sin * p.Spacing},
			RotationZ: angle + math.Pi/2,
			ZOrder:    float64(i),
			Shape:     outer,
			Children: []Element{{
				Index:  i,
				ZOrder: petalInnerZ,
				Shape:  inner,
			}},
		})
	}
	return out
}

// Walk calls fn for every element depth-first, parents before children, with
// the element's world position, rotation and z.
func Walk(elements []Element, fn func(e *Element, pos Vec2, rot, z float64)) {
	for i := range elements {
		walk(&elements[i], Vec2{}, 0, 0, fn)
	}
}

func walk(e *Element, parentPos Vec2, parentRot, parentZ float64, fn func(*Element, Vec2, float64, float64)) {
	sin, cos := math.Sincos(parentRot)
	pos := Vec2{
		X: parentPos.X + cos*e.Position.X - sin*e.Position.Y,
		Y: parentPos.Y + sin*e.Position.X + cos*e.Position.Y,
	}
	rot := parentRot + e.RotationZ
	z := parentZ + e.ZOrder
	fn(e, pos, rot, z)
	for i := range e.Children {
		walk(&e.Children[i], pos, rot, z, fn)
	}
}

// Bounds returns the world-space rectangle covering every element's shape.
// Shapes are bounded by their larger semi-axis so the result does not depend
// on rotation. An empty pass yields the zero rect.
func Bounds(elements []Element) geom.Rect {
	var r geom.Rect
	first := true
	Walk(elements, func(e *Element, pos Vec2, _, _ float64) {
		ext := 0.0
		if e.Shape.Geometry != nil {
			ext = e.Shape.Geometry.Extent()
		}
		b := geom.Rect{
			Min: geom.Coord{X: pos.X - ext, Y: pos.Y - ext},
			Max: geom.Coord{X: pos.X + ext, Y: pos.Y + ext},
		}
		if first {
			r = b
			first = false
			return
		}
		r.ExpandToContainRect(b)
	})
	return r
}

// CountElements returns the number of elements including nested children.
func CountElements(elements []Element) int {
	n := 0
	Walk(elements, func(*Element, Vec2, float64, float64) { n++ })
	return n
}
