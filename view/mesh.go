package view

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/sunflower"
)

// meshData is the local-space vertex buffer of one geometry. Every node whose
// element references the same *sunflower.Geometry shares one meshData.
type meshData struct {
	geometry *sunflower.Geometry
	verts    []ebiten.Vertex
	inds     []uint16
}

// buildMesh converts a geometry outline into untextured white vertices
// sampling the center of the white pixel.
func buildMesh(g *sunflower.Geometry) *meshData {
	verts := make([]ebiten.Vertex, len(g.Outline))
	for i, p := range g.Outline {
		verts[i] = ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}
	return &meshData{geometry: g, verts: verts, inds: g.Indices}
}

// appendTransformedVertices applies an affine transform and a straight-alpha
// fill color to src and appends the result to dst, premultiplied.
//
// Matrix layout: [0]=a, [1]=b, [2]=c, [3]=d, [4]=tx, [5]=ty
// newX = a*x + c*y + tx, newY = b*x + d*y + ty
func appendTransformedVertices(dst, src []ebiten.Vertex, transform [6]float64, fill sunflower.Color) []ebiten.Vertex {
	a, b, c, d, tx, ty := transform[0], transform[1], transform[2], transform[3], transform[4], transform[5]
	cr := float32(fill.R)
	cg := float32(fill.G)
	cb := float32(fill.B)
	ca := float32(fill.A)

	for i := range src {
		s := &src[i]
		ox := float64(s.DstX)
		oy := float64(s.DstY)
		dst = append(dst, ebiten.Vertex{
			DstX:   float32(a*ox + c*oy + tx),
			DstY:   float32(b*ox + d*oy + ty),
			SrcX:   s.SrcX,
			SrcY:   s.SrcY,
			ColorR: s.ColorR * cr * ca,
			ColorG: s.ColorG * cg * ca,
			ColorB: s.ColorB * cb * ca,
			ColorA: s.ColorA * ca,
		})
	}
	return dst
}

// --- White pixel singleton (no sync.Once, the viewer is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}
