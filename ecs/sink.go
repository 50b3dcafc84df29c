package ecs

import (
	"github.com/phanxgames/sunflower"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// Placement is an element's world-space pose.
type Placement struct {
	X, Y     float64
	Rotation float64 // radians, counter-clockwise
	Z        float64
}

// Shape describes what an element draws.
type Shape struct {
	Index      int
	Kind       sunflower.ShapeKind
	RadiusX    float64
	RadiusY    float64
	Color      sunflower.Color
	GeometryID uint32
	MaterialID uint32
}

// Parent links a nested element to the entity of its parent element.
type Parent struct {
	Entity donburi.Entity
}

// Regenerated is published after every mirrored pass.
type Regenerated struct {
	Pass     int
	Elements int // top-level elements
	Entities int // including children
}

var (
	// PatternTag marks every entity spawned by a Sink.
	PatternTag         = donburi.NewTag()
	PlacementComponent = donburi.NewComponentType[Placement]()
	ShapeComponent     = donburi.NewComponentType[Shape]()
	ParentComponent    = donburi.NewComponentType[Parent]()

	// RegeneratedEvent carries one Regenerated per pass. Events queue until
	// ProcessEvents is called on the world.
	RegeneratedEvent = events.NewEventType[Regenerated]()
)

var patternQuery = donburi.NewQuery(filter.Contains(PatternTag))

// Sink is a sunflower.Renderer that keeps a Donburi world in sync with the
// latest pass.
type Sink struct {
	world  donburi.World
	passes int
	buf    []donburi.Entity
}

// NewSink creates a sink writing into world.
func NewSink(world donburi.World) *Sink {
	return &Sink{world: world}
}

// World returns the target world.
func (s *Sink) World() donburi.World {
	return s.world
}

// Replace despawns the previous pass and spawns elements.
func (s *Sink) Replace(elements []sunflower.Element) {
	s.despawn()

	parents := map[*sunflower.Element]donburi.Entity{}
	total := 0
	sunflower.Walk(elements, func(e *sunflower.Element, pos sunflower.Vec2, rot, z float64) {
		total++
		parent, nested := parents[e]
		var ent donburi.Entity
		if nested {
			ent = s.world.Create(PatternTag, PlacementComponent, ShapeComponent, ParentComponent)
		} else {
			ent = s.world.Create(PatternTag, PlacementComponent, ShapeComponent)
		}
		entry := s.world.Entry(ent)
		PlacementComponent.SetValue(entry, Placement{X: pos.X, Y: pos.Y, Rotation: rot, Z: z})
		ShapeComponent.SetValue(entry, shapeOf(e))
		if nested {
			ParentComponent.SetValue(entry, Parent{Entity: parent})
		}
		for i := range e.Children {
			parents[&e.Children[i]] = ent
		}
	})

	s.passes++
	RegeneratedEvent.Publish(s.world, Regenerated{
		Pass:     s.passes,
		Elements: len(elements),
		Entities: total,
	})
}

func (s *Sink) despawn() {
	s.buf = s.buf[:0]
	patternQuery.Each(s.world, func(entry *donburi.Entry) {
		s.buf = append(s.buf, entry.Entity())
	})
	for _, ent := range s.buf {
		s.world.Remove(ent)
	}
}

func shapeOf(e *sunflower.Element) Shape {
	sh := Shape{Index: e.Index, Color: sunflower.ColorWhite}
	if g := e.Shape.Geometry; g != nil {
		sh.Kind = g.Kind
		sh.RadiusX = g.RadiusX
		sh.RadiusY = g.RadiusY
		sh.GeometryID = g.ID
	}
	if m := e.Shape.Material; m != nil {
		sh.Color = m.Color
		sh.MaterialID = m.ID
	}
	return sh
}

// Count returns the number of pattern entities in the world.
func (s *Sink) Count() int {
	return patternQuery.Count(s.world)
}

// Passes returns how many passes the sink has mirrored.
func (s *Sink) Passes() int {
	return s.passes
}
