//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Painter uploads an RGBA buffer into a single ebiten image and draws it.
type Painter struct {
	w, h int
	img  *ebiten.Image
}

// NewPainter allocates a painter for a w*h pixel buffer.
func NewPainter(w, h int) *Painter {
	return &Painter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Blit uploads pixels and draws them at (x, y) scaled by scale.
func (p *Painter) Blit(dst *ebiten.Image, pixels []byte, x, y float64, scale float64) {
	if len(pixels) != 4*p.w*p.h {
		return
	}
	p.img.WritePixels(pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	dst.DrawImage(p.img, op)
}

// Size returns the dimensions of the underlying image.
func (p *Painter) Size() (int, int) { return p.w, p.h }
