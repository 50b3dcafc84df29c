package view

import (
	"testing"

	"github.com/phanxgames/sunflower"
)

func generate(t *testing.T, p sunflower.Params) ([]sunflower.Element, *sunflower.ShapeCache) {
	t.Helper()
	cache := sunflower.NewShapeCache()
	return sunflower.Generate(p, cache), cache
}

func TestSceneReplaceSeeds(t *testing.T) {
	s := NewScene(800, 600)
	els, _ := generate(t, sunflower.DefaultParams(sunflower.ModeSeed))
	s.Replace(els)
	if s.Pattern().NumChildren() != 100 {
		t.Fatalf("pattern children = %d, want 100", s.Pattern().NumChildren())
	}
	if s.MeshCount() != 1 {
		t.Errorf("MeshCount = %d, want 1 shared buffer", s.MeshCount())
	}
	first := s.Pattern().Children()[0]
	if !first.HasShape() || first.Index != 1 || first.Name != "circle" {
		t.Errorf("first node = %+v", first)
	}
	if first.X != els[0].Position.X || first.Y != els[0].Position.Y {
		t.Errorf("node at (%v,%v), element at %v", first.X, first.Y, els[0].Position)
	}
	if first.Color != sunflower.ColorGreen {
		t.Errorf("Color = %v, want green", first.Color)
	}
	if s.Pattern().Children()[0].mesh != s.Pattern().Children()[99].mesh {
		t.Error("seeds should share one mesh")
	}
}

func TestSceneReplaceDisposesPrevious(t *testing.T) {
	s := NewScene(800, 600)
	els, _ := generate(t, sunflower.DefaultParams(sunflower.ModeSeed))
	s.Replace(els)
	old := s.Pattern().Children()[0]

	p := sunflower.DefaultParams(sunflower.ModePetal)
	p.Count = 3
	els2, _ := generate(t, p)
	s.Replace(els2)
	if !old.IsDisposed() {
		t.Error("previous pass nodes should be disposed")
	}
	if s.Pattern().NumChildren() != 3 {
		t.Errorf("pattern children = %d, want 3", s.Pattern().NumChildren())
	}
}

func TestSceneReplacePetals(t *testing.T) {
	s := NewScene(800, 600)
	p := sunflower.DefaultParams(sunflower.ModePetal)
	p.Count = 4
	els, _ := generate(t, p)
	s.Replace(els)

	// 4 distinct outer meshes plus one shared inner mesh
	if s.MeshCount() != 5 {
		t.Errorf("MeshCount = %d, want 5", s.MeshCount())
	}
	for i, n := range s.Pattern().Children() {
		if n.NumChildren() != 1 {
			t.Fatalf("petal %d has %d children", i, n.NumChildren())
		}
		inner := n.Children()[0]
		if inner.Z != 0.5 || n.Z != float64(i+1) {
			t.Errorf("petal %d z=%v inner z=%v", i, n.Z, inner.Z)
		}
		if inner.mesh != s.Pattern().Children()[0].Children()[0].mesh {
			t.Error("inner ellipses should share one mesh")
		}
	}
}

func TestSceneReplaceEmpty(t *testing.T) {
	s := NewScene(800, 600)
	els, _ := generate(t, sunflower.DefaultParams(sunflower.ModeSeed))
	s.Replace(els)
	s.Replace([]sunflower.Element{})
	if s.Pattern().NumChildren() != 0 || s.MeshCount() != 0 {
		t.Errorf("children = %d, meshes = %d after empty pass", s.Pattern().NumChildren(), s.MeshCount())
	}
}

func TestSceneMeshReusedAcrossPasses(t *testing.T) {
	s := NewScene(800, 600)
	c := sunflower.NewController(sunflower.DefaultParams(sunflower.ModeSeed), s)
	c.Regenerate()
	builds := s.meshBuilds
	c.Update(func(p *sunflower.Params) { p.Rotation += 0.01 })
	c.Regenerate()
	if s.meshBuilds != builds {
		t.Errorf("meshBuilds = %d, want %d (geometry unchanged)", s.meshBuilds, builds)
	}
	c.Reset()
	c.Regenerate()
	if s.meshBuilds != builds+1 {
		t.Errorf("meshBuilds = %d, want %d after reset", s.meshBuilds, builds+1)
	}
}

func TestBuildMesh(t *testing.T) {
	g := sunflower.NewEllipse(5, 10)
	m := buildMesh(g)
	if len(m.verts) != len(g.Outline) {
		t.Fatalf("verts = %d, want %d", len(m.verts), len(g.Outline))
	}
	if m.verts[0].DstX != 5 || m.verts[0].SrcX != 0.5 || m.verts[0].ColorA != 1 {
		t.Errorf("vertex 0 = %+v", m.verts[0])
	}
	if len(m.inds) != len(g.Indices) {
		t.Errorf("inds = %d, want %d", len(m.inds), len(g.Indices))
	}
}
