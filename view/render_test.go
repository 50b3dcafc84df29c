package view

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/sunflower"
)

func collect(s *Scene) {
	updateWorldTransform(s.root, identityTransform, 0, false)
	s.commands = s.commands[:0]
	order := 0
	s.traverse(s.root, s.camera.computeViewMatrix(), &order)
	s.mergeSort()
}

func TestTraverseEmitsShapesOnly(t *testing.T) {
	s := NewScene(800, 600)
	p := sunflower.DefaultParams(sunflower.ModeSeed)
	p.Count = 10
	els, _ := generate(t, p)
	s.Replace(els)
	collect(s)
	if len(s.commands) != 10 {
		t.Errorf("commands = %d, want 10", len(s.commands))
	}
}

func TestTraverseSkipsInvisibleSubtree(t *testing.T) {
	s := NewScene(800, 600)
	p := sunflower.DefaultParams(sunflower.ModePetal)
	p.Count = 3
	els, _ := generate(t, p)
	s.Replace(els)
	s.Pattern().Children()[1].Visible = false
	collect(s)
	if len(s.commands) != 4 {
		t.Errorf("commands = %d, want 4", len(s.commands))
	}
}

func TestDrawOrderByWorldZ(t *testing.T) {
	s := NewScene(800, 600)
	p := sunflower.DefaultParams(sunflower.ModePetal)
	p.Count = 5
	els, _ := generate(t, p)
	s.Replace(els)
	collect(s)
	if len(s.commands) != 10 {
		t.Fatalf("commands = %d, want 10", len(s.commands))
	}
	want := []float64{1, 1.5, 2, 2.5, 3, 3.5, 4, 4.5, 5, 5.5}
	for i, cmd := range s.commands {
		if cmd.z != want[i] {
			t.Errorf("commands[%d].z = %v, want %v", i, cmd.z, want[i])
		}
	}
}

func TestMergeSortStable(t *testing.T) {
	s := NewScene(800, 600)
	zs := []float64{2, 0, 2, 1, 0, 2, 1}
	for i, z := range zs {
		s.commands = append(s.commands, drawCommand{z: z, treeOrder: i})
	}
	s.mergeSort()
	for i := 1; i < len(s.commands); i++ {
		a, b := s.commands[i-1], s.commands[i]
		if a.z > b.z || (a.z == b.z && a.treeOrder > b.treeOrder) {
			t.Errorf("unsorted at %d: %+v then %+v", i, a, b)
		}
	}
}

func TestAppendTransformedVertices(t *testing.T) {
	src := []ebiten.Vertex{{DstX: 1, DstY: 0, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1}}
	m := [6]float64{2, 0, 0, -2, 10, 20}
	fill := sunflower.Color{R: 1, G: 0.5, B: 0, A: 0.5}
	out := appendTransformedVertices(nil, src, m, fill)
	if len(out) != 1 {
		t.Fatalf("len = %d", len(out))
	}
	v := out[0]
	if v.DstX != 12 || v.DstY != 20 {
		t.Errorf("pos = (%v,%v), want (12,20)", v.DstX, v.DstY)
	}
	if v.ColorR != 0.5 || v.ColorG != 0.25 || v.ColorB != 0 || v.ColorA != 0.5 {
		t.Errorf("premultiplied color = %v %v %v %v", v.ColorR, v.ColorG, v.ColorB, v.ColorA)
	}
}
