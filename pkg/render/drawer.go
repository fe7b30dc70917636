package render

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/curlviz/pkg/config"
	"github.com/matzehuels/curlviz/pkg/errors"
	"github.com/matzehuels/curlviz/pkg/regulation"
	"github.com/matzehuels/curlviz/pkg/sheet"
)

// Option configures a Drawer.
type Option func(*Drawer)

// WithLogger sets the logger used for debug output while drawing.
func WithLogger(l *log.Logger) Option {
	return func(d *Drawer) {
		if l != nil {
			d.logger = l
		}
	}
}

// Drawer draws sheets with a fixed configuration.
// A Drawer keeps no state between calls and is safe for concurrent use.
type Drawer struct {
	cfg    config.Config
	logger *log.Logger
}

// NewDrawer returns a drawer for cfg. The configuration is copied.
func NewDrawer(cfg config.Config, opts ...Option) *Drawer {
	d := &Drawer{
		cfg:    cfg.Clone(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Config returns a copy of the drawer's configuration.
func (d *Drawer) Config() config.Config {
	return d.cfg.Clone()
}

// CanvasSize returns the canvas size for the drawer's configuration.
func (d *Drawer) CanvasSize() (width, height int) {
	return CanvasSize(d.cfg)
}

// CanvasSize returns the pixel size of the canvas needed to draw a sheet with
// cfg. The width covers the sheet width. The height covers the play area
// from the hog line to the back line, or the whole sheet from the hack when
// cfg.Full is set, plus two stone diameters of margin. Both are rounded up
// and clamped to [0, config.MaxCanvasSide].
func CanvasSize(cfg config.Config) (width, height int) {
	ppm := float64(cfg.PPM)
	visible := regulation.BackLine - regulation.HogLine
	if cfg.Full {
		visible = regulation.BackLine
	}
	w := ppm * cfg.SheetWidth
	h := ppm * (visible + 4*regulation.StoneRadius)
	return side(w), side(h)
}

func side(v float64) int {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= config.MaxCanvasSide:
		return config.MaxCanvasSide
	}
	return int(math.Ceil(v))
}

// point is a position in sheet metres.
type point struct{ x, y float64 }

func (p point) add(q point) point { return point{p.x + q.x, p.y + q.y} }

// shift returns the offset from sheet coordinates to the visible window.
func (d *Drawer) shift() point {
	y := -regulation.HogLine
	if d.cfg.Full {
		y = 0
	}
	return point{
		x: d.cfg.SheetWidth / 2,
		y: y + 2*regulation.StoneRadius,
	}
}

// InPlay reports whether st is drawn: it belongs to a team and its centre
// lies inside the visible window.
func (d *Drawer) InPlay(st sheet.Stone) bool {
	return st.Team.IsEntity() && st.Y+d.shift().y >= 0
}

// Draw draws s onto c. Only c is modified. The transformation state of c is
// restored before Draw returns.
func (d *Drawer) Draw(c Canvas, s *sheet.Sheet) error {
	pal, err := d.cfg.Colors.Palette()
	if err != nil {
		return err
	}

	width, height := c.Size()
	w, h := float64(width), float64(height)

	c.Save()
	defer c.Restore()
	if !d.cfg.Inversion {
		c.Translate(0, h)
		c.Scale(1, -1)
	}

	shift := d.shift()
	ppm := float64(d.cfg.PPM)

	c.Clear(config.Transparent)
	if err := c.DrawRect(0, 0, w, h, Paint{Color: pal.Background, Style: StrokeAndFill}); err != nil {
		return err
	}

	if err := d.drawHouse(c, pal, shift, ppm); err != nil {
		return err
	}
	if err := d.drawLines(c, pal, shift, ppm, w, h); err != nil {
		return err
	}
	if s == nil {
		return nil
	}
	return d.drawStones(c, pal, s, shift, ppm)
}

// drawHouse paints the rings from the outside in so that each ring covers
// the centre of the previous one.
func (d *Drawer) drawHouse(c Canvas, pal config.Palette, shift point, ppm float64) error {
	radii := regulation.HouseRadii()
	colors := []config.Color{pal.Background, pal.InnerHouse, pal.Background, pal.OuterHouse}
	center := point{0, regulation.TeeLine}.add(shift)
	for i := len(radii) - 1; i >= 0; i-- {
		p := Paint{Color: colors[i], Style: Fill, AntiAlias: true}
		if err := c.DrawCircle(center.x*ppm, center.y*ppm, radii[i]*ppm, p); err != nil {
			return err
		}
	}
	return nil
}

func (d *Drawer) drawLines(c Canvas, pal config.Palette, shift point, ppm, w, h float64) error {
	pen := Paint{Color: pal.Line, Style: Stroke, StrokeWidth: regulation.LineWidth * ppm}
	if err := c.DrawLine(shift.x*ppm, 0, shift.x*ppm, h, pen); err != nil {
		return err
	}
	for _, line := range regulation.Lines() {
		y := line + shift.y
		if y < 0 {
			continue
		}
		if err := c.DrawLine(0, y*ppm, w, y*ppm, pen); err != nil {
			return err
		}
	}
	return nil
}

func (d *Drawer) drawStones(c Canvas, pal config.Palette, s *sheet.Sheet, shift point, ppm float64) error {
	radius := regulation.StoneRadius * ppm
	border := regulation.StoneBorderRatio * radius
	for i, st := range s.Stones() {
		if !st.Team.IsEntity() {
			continue
		}
		if !d.InPlay(st) {
			d.logger.Debug("stone outside visible window", "index", i, "x", st.X, "y", st.Y)
			continue
		}
		center := point{st.X, st.Y}.add(shift)
		team := st.Team.Index()
		if team >= len(pal.Stones) {
			return errors.New(errors.ErrCodeInvalidConfig, "no stone color for %s", st.Team)
		}

		fill := Paint{Color: pal.Stones[team], Style: Fill, AntiAlias: true}
		if err := c.DrawCircle(center.x*ppm, center.y*ppm, radius, fill); err != nil {
			return err
		}
		// The ring sits inside the disc so the border does not grow the stone.
		ring := Paint{Color: pal.Line, Style: Stroke, StrokeWidth: border, AntiAlias: true}
		if err := c.DrawCircle(center.x*ppm, center.y*ppm, radius-border/2, ring); err != nil {
			return err
		}
	}
	return nil
}
