package render

import "github.com/matzehuels/curlviz/pkg/config"

// OpKind identifies a recorded canvas call.
type OpKind int

const (
	OpSave OpKind = iota
	OpRestore
	OpTranslate
	OpScale
	OpClear
	OpRect
	OpCircle
	OpLine
)

// Op is one recorded canvas call. Only the fields relevant to Kind are set:
// X and Y carry translate offsets, scale factors, rectangle origins, circle
// centres and line starts; W and H carry rectangle sizes; R carries circle
// radii; X2 and Y2 carry line ends.
type Op struct {
	Kind   OpKind
	X, Y   float64
	W, H   float64
	R      float64
	X2, Y2 float64
	Color  config.Color
	Paint  Paint
}

// Recorder is a Canvas that records every call instead of drawing.
type Recorder struct {
	width, height int
	Ops           []Op
}

// NewRecorder returns an empty recorder of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

func (r *Recorder) Size() (int, int) { return r.width, r.height }

func (r *Recorder) Save()    { r.Ops = append(r.Ops, Op{Kind: OpSave}) }
func (r *Recorder) Restore() { r.Ops = append(r.Ops, Op{Kind: OpRestore}) }

func (r *Recorder) Translate(x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: OpTranslate, X: x, Y: y})
}

func (r *Recorder) Scale(sx, sy float64) {
	r.Ops = append(r.Ops, Op{Kind: OpScale, X: sx, Y: sy})
}

func (r *Recorder) Clear(c config.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, Color: c})
}

func (r *Recorder) DrawRect(x, y, w, h float64, p Paint) error {
	r.Ops = append(r.Ops, Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Paint: p})
	return nil
}

func (r *Recorder) DrawCircle(cx, cy, radius float64, p Paint) error {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X: cx, Y: cy, R: radius, Paint: p})
	return nil
}

func (r *Recorder) DrawLine(x0, y0, x1, y1 float64, p Paint) error {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X: x0, Y: y0, X2: x1, Y2: y1, Paint: p})
	return nil
}

// Filter returns the recorded ops of the given kind in call order.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Primitives returns the number of rectangles, circles and lines drawn.
func (r *Recorder) Primitives() int {
	n := 0
	for _, op := range r.Ops {
		switch op.Kind {
		case OpRect, OpCircle, OpLine:
			n++
		}
	}
	return n
}
