package sink

import "math"

// transform is an axis-aligned affine map: (x, y) -> (sx*x+tx, sy*y+ty).
// The drawer only translates and scales, so rotation is not needed.
type transform struct {
	sx, sy, tx, ty float64
}

func identity() transform { return transform{sx: 1, sy: 1} }

func (t transform) translate(x, y float64) transform {
	t.tx += t.sx * x
	t.ty += t.sy * y
	return t
}

func (t transform) scale(sx, sy float64) transform {
	t.sx *= sx
	t.sy *= sy
	return t
}

func (t transform) apply(x, y float64) (float64, float64) {
	return t.sx*x + t.tx, t.sy*y + t.ty
}

// length maps a distance. Non-uniform scales use the geometric mean.
func (t transform) length(d float64) float64 {
	return d * math.Sqrt(math.Abs(t.sx*t.sy))
}

// rect maps a rectangle and normalises it to a positive size.
func (t transform) rect(x, y, w, h float64) (float64, float64, float64, float64) {
	x0, y0 := t.apply(x, y)
	x1, y1 := t.apply(x+w, y+h)
	return math.Min(x0, x1), math.Min(y0, y1), math.Abs(x1 - x0), math.Abs(y1 - y0)
}
