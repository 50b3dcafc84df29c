package sunflower

import "testing"

func TestNewCircle(t *testing.T) {
	g := NewCircle(10)
	if g.Kind != ShapeCircle {
		t.Errorf("Kind = %v, want circle", g.Kind)
	}
	if len(g.Outline) != OutlineSegments {
		t.Fatalf("len(Outline) = %d, want %d", len(g.Outline), OutlineSegments)
	}
	if !approxEqual(g.Outline[0].X, 10, epsilon) || !approxEqual(g.Outline[0].Y, 0, epsilon) {
		t.Errorf("Outline[0] = %v, want (10,0)", g.Outline[0])
	}
	quarter := g.Outline[OutlineSegments/4]
	if !approxEqual(quarter.X, 0, 1e-9) || !approxEqual(quarter.Y, 10, 1e-9) {
		t.Errorf("Outline[n/4] = %v, want (0,10)", quarter)
	}
	if len(g.Indices) != (OutlineSegments-2)*3 {
		t.Errorf("len(Indices) = %d, want %d", len(g.Indices), (OutlineSegments-2)*3)
	}
}

func TestNewEllipseAxes(t *testing.T) {
	g := NewEllipse(5, 10)
	if g.Kind != ShapeEllipse {
		t.Errorf("Kind = %v, want ellipse", g.Kind)
	}
	q := g.Outline[OutlineSegments/4]
	if !approxEqual(g.Outline[0].X, 5, epsilon) || !approxEqual(q.Y, 10, 1e-9) {
		t.Errorf("axes = (%v, %v), want (5, 10)", g.Outline[0].X, q.Y)
	}
	if g.Extent() != 10 {
		t.Errorf("Extent = %v, want 10", g.Extent())
	}
}

func TestGeometryIDsUnique(t *testing.T) {
	a := NewCircle(1)
	b := NewCircle(1)
	if a.ID == b.ID {
		t.Errorf("IDs should differ, both %d", a.ID)
	}
}

func TestFanIndices(t *testing.T) {
	if fanIndices(2) != nil {
		t.Error("fanIndices(2) should be nil")
	}
	got := fanIndices(4)
	want := []uint16{0, 1, 2, 0, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("fanIndices(4)[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

// --- ShapeCache ---

func TestCacheSharesSameKey(t *testing.T) {
	c := NewShapeCache()
	g1 := c.Geometry(ModeSeed, ShapeCircle, 10, 10)
	g2 := c.Geometry(ModeSeed, ShapeCircle, 10, 10)
	if g1 != g2 {
		t.Error("same key should return the same geometry")
	}
	m1 := c.Material(ModeSeed, ColorGreen)
	m2 := c.Material(ModeSeed, ColorGreen)
	if m1 != m2 {
		t.Error("same key should return the same material")
	}
	st := c.Stats()
	if st.GeometryAllocs != 1 || st.MaterialAllocs != 1 {
		t.Errorf("Stats = %+v, want 1/1", st)
	}
}

func TestCacheReplacesOnKeyChange(t *testing.T) {
	c := NewShapeCache()
	g1 := c.Geometry(ModeSeed, ShapeCircle, 10, 10)
	g2 := c.Geometry(ModeSeed, ShapeCircle, 12, 12)
	if g1 == g2 {
		t.Error("different radius should allocate new geometry")
	}
	if c.CachedGeometry() != g2 {
		t.Error("cache should hold the newest geometry")
	}
	m1 := c.Material(ModeSeed, ColorGreen)
	m2 := c.Material(ModeSeed, ColorWhite)
	if m1 == m2 {
		t.Error("different color should allocate new material")
	}
}

func TestCacheInvalidateGeometry(t *testing.T) {
	c := NewShapeCache()
	g1 := c.Geometry(ModeSeed, ShapeCircle, 10, 10)
	m1 := c.Material(ModeSeed, ColorGreen)
	c.InvalidateGeometry()
	if c.CachedGeometry() != nil {
		t.Error("geometry slot should be empty")
	}
	if c.CachedMaterial() != m1 {
		t.Error("material slot should survive InvalidateGeometry")
	}
	if g2 := c.Geometry(ModeSeed, ShapeCircle, 10, 10); g2 == g1 {
		t.Error("lookup after invalidation should allocate")
	}
	c.Invalidate()
	if c.CachedGeometry() != nil || c.CachedMaterial() != nil {
		t.Error("Invalidate should empty both slots")
	}
}
