package render

import "github.com/matzehuels/curlviz/pkg/config"

// PaintStyle selects whether a shape is filled, stroked or both.
type PaintStyle int

const (
	// Fill paints the interior of a shape.
	Fill PaintStyle = iota
	// Stroke paints the outline of a shape.
	Stroke
	// StrokeAndFill paints both.
	StrokeAndFill
)

// String returns the style name.
func (s PaintStyle) String() string {
	switch s {
	case Fill:
		return "fill"
	case Stroke:
		return "stroke"
	case StrokeAndFill:
		return "stroke-and-fill"
	default:
		return "unknown"
	}
}

// HasFill reports whether the style paints the interior.
func (s PaintStyle) HasFill() bool { return s == Fill || s == StrokeAndFill }

// HasStroke reports whether the style paints the outline.
func (s PaintStyle) HasStroke() bool { return s == Stroke || s == StrokeAndFill }

// Paint describes how a primitive is painted.
type Paint struct {
	Color       config.Color
	Style       PaintStyle
	StrokeWidth float64
	AntiAlias   bool
}

// Canvas is a 2D drawing surface in pixel coordinates with the origin at the
// top-left corner and y growing downwards.
//
// Save and Restore push and pop the transformation state. Translate and
// Scale compose onto the current transformation. Clear replaces every pixel
// with c regardless of the current transformation.
type Canvas interface {
	Size() (width, height int)

	Save()
	Restore()
	Translate(x, y float64)
	Scale(sx, sy float64)

	Clear(c config.Color)
	DrawRect(x, y, w, h float64, p Paint) error
	DrawCircle(cx, cy, r float64, p Paint) error
	DrawLine(x0, y0, x1, y1 float64, p Paint) error
}
