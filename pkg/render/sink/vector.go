package sink

import (
	"github.com/tdewolff/canvas"

	"github.com/matzehuels/curlviz/pkg/config"
	"github.com/matzehuels/curlviz/pkg/render"
)

const (
	mmPerPoint  = 25.4 / 72
	mmPerCSSPix = 25.4 / 96
)

// vectorCanvas adapts a tdewolff/canvas context to render.Canvas.
// Coordinates are kept in pixels and converted to millimetres on output.
type vectorCanvas struct {
	ctx           *canvas.Context
	width, height int
	unit          float64
	xf            transform
	stack         []transform
}

var _ render.Canvas = (*vectorCanvas)(nil)

// newVectorCanvas wraps ctx, a page of width x height pixels of unit
// millimetres each.
func newVectorCanvas(ctx *canvas.Context, width, height int, unit float64) *vectorCanvas {
	ctx.SetCoordSystem(canvas.CartesianIV)
	return &vectorCanvas{ctx: ctx, width: width, height: height, unit: unit, xf: identity()}
}

// pageSize returns the page size in millimetres.
func pageSize(width, height int, unit float64) (float64, float64) {
	return float64(width) * unit, float64(height) * unit
}

func (v *vectorCanvas) Size() (int, int) { return v.width, v.height }

func (v *vectorCanvas) Save() { v.stack = append(v.stack, v.xf) }

func (v *vectorCanvas) Restore() {
	if n := len(v.stack); n > 0 {
		v.xf = v.stack[n-1]
		v.stack = v.stack[:n-1]
	}
}

func (v *vectorCanvas) Translate(x, y float64) { v.xf = v.xf.translate(x, y) }
func (v *vectorCanvas) Scale(sx, sy float64)   { v.xf = v.xf.scale(sx, sy) }

// Clear paints the whole page. A fresh page is already transparent, so a
// transparent clear draws nothing.
func (v *vectorCanvas) Clear(c config.Color) {
	if c.A == 0 {
		return
	}
	w, h := pageSize(v.width, v.height, v.unit)
	v.ctx.SetFillColor(c)
	v.ctx.SetStrokeColor(canvas.Transparent)
	v.ctx.DrawPath(0, 0, canvas.Rectangle(w, h))
}

func (v *vectorCanvas) DrawRect(x, y, w, h float64, p render.Paint) error {
	x, y, w, h = v.xf.rect(x, y, w, h)
	v.draw(x, y, canvas.Rectangle(w*v.unit, h*v.unit), p)
	return nil
}

func (v *vectorCanvas) DrawCircle(cx, cy, r float64, p render.Paint) error {
	cx, cy = v.xf.apply(cx, cy)
	v.draw(cx, cy, canvas.Circle(v.xf.length(r)*v.unit), p)
	return nil
}

func (v *vectorCanvas) DrawLine(x0, y0, x1, y1 float64, p render.Paint) error {
	x0, y0 = v.xf.apply(x0, y0)
	x1, y1 = v.xf.apply(x1, y1)
	path := &canvas.Path{}
	path.MoveTo(0, 0)
	path.LineTo((x1-x0)*v.unit, (y1-y0)*v.unit)
	v.draw(x0, y0, path, render.Paint{Color: p.Color, Style: render.Stroke, StrokeWidth: p.StrokeWidth})
	return nil
}

// draw paints path at the pixel position (x, y).
func (v *vectorCanvas) draw(x, y float64, path *canvas.Path, p render.Paint) {
	fill, stroke := canvas.Transparent, canvas.Transparent
	if p.Style.HasFill() {
		v.ctx.SetFillColor(p.Color)
	} else {
		v.ctx.SetFillColor(fill)
	}
	if p.Style.HasStroke() && p.StrokeWidth > 0 {
		v.ctx.SetStrokeColor(p.Color)
		v.ctx.SetStrokeWidth(v.xf.length(p.StrokeWidth) * v.unit)
	} else {
		v.ctx.SetStrokeColor(stroke)
	}
	v.ctx.DrawPath(x*v.unit, y*v.unit, path)
}
