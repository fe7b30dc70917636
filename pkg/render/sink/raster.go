package sink

import (
	"github.com/gogpu/gg"

	"github.com/matzehuels/curlviz/pkg/config"
	"github.com/matzehuels/curlviz/pkg/render"
)

// rasterCanvas adapts a gogpu/gg context to render.Canvas.
// gg always antialiases, so Paint.AntiAlias is ignored.
type rasterCanvas struct {
	dc *gg.Context
}

var _ render.Canvas = (*rasterCanvas)(nil)

func newRasterCanvas(width, height int) *rasterCanvas {
	return &rasterCanvas{dc: gg.NewContext(width, height)}
}

func (r *rasterCanvas) Size() (int, int) { return r.dc.Width(), r.dc.Height() }

func (r *rasterCanvas) Save()                  { r.dc.Push() }
func (r *rasterCanvas) Restore()               { r.dc.Pop() }
func (r *rasterCanvas) Translate(x, y float64) { r.dc.Translate(x, y) }
func (r *rasterCanvas) Scale(sx, sy float64)   { r.dc.Scale(sx, sy) }

func (r *rasterCanvas) Clear(c config.Color) {
	r.dc.ClearWithColor(toRGBA(c))
}

func (r *rasterCanvas) DrawRect(x, y, w, h float64, p render.Paint) error {
	r.dc.DrawRectangle(x, y, w, h)
	return r.paint(p)
}

func (r *rasterCanvas) DrawCircle(cx, cy, radius float64, p render.Paint) error {
	r.dc.DrawCircle(cx, cy, radius)
	return r.paint(p)
}

func (r *rasterCanvas) DrawLine(x0, y0, x1, y1 float64, p render.Paint) error {
	r.dc.DrawLine(x0, y0, x1, y1)
	p.Style = render.Stroke
	return r.paint(p)
}

// paint fills and/or strokes the current path and clears it.
func (r *rasterCanvas) paint(p render.Paint) error {
	c := toRGBA(p.Color)
	r.dc.SetRGBA(c.R, c.G, c.B, c.A)

	stroke := p.Style.HasStroke() && p.StrokeWidth > 0
	if p.Style.HasFill() {
		if !stroke {
			return r.dc.Fill()
		}
		if err := r.dc.FillPreserve(); err != nil {
			r.dc.ClearPath()
			return err
		}
	}
	if !stroke {
		r.dc.ClearPath()
		return nil
	}
	r.dc.SetLineWidth(p.StrokeWidth)
	return r.dc.Stroke()
}

// toRGBA converts without premultiplying alpha.
func toRGBA(c config.Color) gg.RGBA {
	return gg.RGBA2(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
}
