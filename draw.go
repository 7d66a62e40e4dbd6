package grove

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Draw renders every view into screen. For each view the visible geometry
// is collected, projected through the view matrix into the view's viewport
// and submitted with DrawTriangles. Geometry dirty flags are cleared once
// drawn. Call Update first so world matrices are current.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	s.stats.collected = 0
	s.stats.drawCalls = 0

	prev := s.current
	b := screen.Bounds()
	for _, v := range s.views {
		vp := v.resolveViewport(b.Dx(), b.Dy())
		target := screen.SubImage(image.Rect(
			int(vp.X), int(vp.Y),
			int(vp.X+vp.Width), int(vp.Y+vp.Height),
		)).(*ebiten.Image)

		list := s.Collect(v.Index)
		s.stats.collected += len(list)
		for _, g := range list {
			s.drawGeometry(target, g, v, vp)
			g.MarkClean()
		}
	}
	s.current = prev
	s.flushScreenshots(screen)

	if s.debug {
		s.stats.drawTime = time.Since(t0)
		s.debugLog()
	}
}

// drawGeometry submits one geometry through view v into target.
func (s *Scene) drawGeometry(target *ebiten.Image, g *Geometry, v *View, vp Rect) {
	if len(g.worldVerts) == 0 || len(g.Indices) == 0 {
		return
	}
	s.vertBuf = buildVertices(g, v, vp, s.vertBuf[:0])

	img := g.Image
	if img == nil {
		img = ensureWhitePixel()
	}
	var op ebiten.DrawTrianglesOptions
	op.Blend = g.BlendMode.EbitenBlend()
	target.DrawTriangles(s.vertBuf, g.Indices, img, &op)
	s.stats.drawCalls++
}

// buildVertices appends g's world vertices mapped into vp through v to dst.
// Colors are premultiplied. Without UVs every vertex samples the center of
// a 1x1 image.
func buildVertices(g *Geometry, v *View, vp Rect, dst []ebiten.Vertex) []ebiten.Vertex {
	a := float32(g.Color.A)
	r := float32(g.Color.R) * a
	gr := float32(g.Color.G) * a
	bl := float32(g.Color.B) * a
	hasUV := len(g.UVs) == len(g.worldVerts)

	for i, p := range g.worldVerts {
		x, y := v.WorldToScreen(p, vp)
		vert := ebiten.Vertex{
			DstX:   float32(x),
			DstY:   float32(y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: r,
			ColorG: gr,
			ColorB: bl,
			ColorA: a,
		}
		if hasUV {
			vert.SrcX = float32(g.UVs[i][0])
			vert.SrcY = float32(g.UVs[i][1])
		}
		dst = append(dst, vert)
	}
	return dst
}
