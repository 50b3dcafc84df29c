package sunflower

type geometryKey struct {
	mode   Mode
	kind   ShapeKind
	rx, ry float64
}

type materialKey struct {
	mode  Mode
	color Color
}

// CacheStats counts allocations made by a ShapeCache over its lifetime.
type CacheStats struct {
	GeometryAllocs int
	MaterialAllocs int
}

// ShapeCache owns at most one geometry and one material at a time. Entries
// are created lazily on first lookup and shared by reference across every
// element of a pass. A lookup with a different key replaces the held entry.
//
// Elements hold non-owning pointers into the cache; they stay meaningful only
// until the next invalidation or replacement.
type ShapeCache struct {
	geometry    *Geometry
	geometryKey geometryKey

	material    *Material
	materialKey materialKey

	stats CacheStats
}

// NewShapeCache creates an empty cache.
func NewShapeCache() *ShapeCache {
	return &ShapeCache{}
}

// Geometry returns the cached geometry for (mode, kind, rx, ry), allocating it
// if the slot is empty or holds a different key.
func (c *ShapeCache) Geometry(mode Mode, kind ShapeKind, rx, ry float64) *Geometry {
	key := geometryKey{mode: mode, kind: kind, rx: rx, ry: ry}
	if c.geometry != nil && c.geometryKey == key {
		return c.geometry
	}
	c.geometry = newGeometry(kind, rx, ry)
	c.geometryKey = key
	c.stats.GeometryAllocs++
	return c.geometry
}

// Material returns the cached material for (mode, color), allocating it if
// the slot is empty or holds a different key.
func (c *ShapeCache) Material(mode Mode, col Color) *Material {
	key := materialKey{mode: mode, color: col}
	if c.material != nil && c.materialKey == key {
		return c.material
	}
	c.material = newMaterial(col)
	c.materialKey = key
	c.stats.MaterialAllocs++
	return c.material
}

// CachedGeometry returns the held geometry, or nil.
func (c *ShapeCache) CachedGeometry() *Geometry {
	return c.geometry
}

// CachedMaterial returns the held material, or nil.
func (c *ShapeCache) CachedMaterial() *Material {
	return c.material
}

// InvalidateGeometry drops the geometry slot. The next pass allocates afresh.
func (c *ShapeCache) InvalidateGeometry() {
	c.geometry = nil
	c.geometryKey = geometryKey{}
}

// Invalidate drops both slots.
func (c *ShapeCache) Invalidate() {
	c.InvalidateGeometry()
	c.material = nil
	c.materialKey = materialKey{}
}

// Stats returns the allocation counters.
func (c *ShapeCache) Stats() CacheStats {
	return c.stats
}
