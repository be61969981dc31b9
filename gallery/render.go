package gallery

import "github.com/lixenwraith/weave/render"

// Render draws the fabric, the fading image, then edge threads and overlays on top
func (g *Gallery) Render(s render.Surface) {
	g.fabric.RenderBase(s)
	if g.img != nil && g.opacity > 0 {
		s.DrawImage(g.img, g.rect.X, g.rect.Y, g.rect.W, g.rect.H, g.opacity)
	}
	g.fabric.RenderEdges(s)
	g.fabric.RenderOverlay(s)
}
