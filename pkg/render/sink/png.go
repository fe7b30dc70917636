package sink

import (
	"image"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/curlviz/pkg/config"
	"github.com/matzehuels/curlviz/pkg/render"
	"github.com/matzehuels/curlviz/pkg/sheet"
)

// PNG rasterises the sheet off-screen and writes a PNG image.
type PNG struct {
	base
}

// Export writes the image to p.Path().
func (p *PNG) Export(s *sheet.Sheet) error {
	return p.export(s, p.Encode)
}

// Encode writes the image to w.
func (p *PNG) Encode(w io.Writer, s *sheet.Sheet) error {
	c := newRasterCanvas(p.drawer.CanvasSize())
	defer c.dc.Close()

	if err := p.drawer.Draw(c, s); err != nil {
		return err
	}
	return c.dc.EncodePNG(w)
}

// Rasterize draws s with cfg and returns the bitmap without encoding it.
func Rasterize(cfg config.Config, s *sheet.Sheet, opts ...Option) (image.Image, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := options{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&o)
	}
	d := render.NewDrawer(cfg, render.WithLogger(o.logger))
	c := newRasterCanvas(d.CanvasSize())
	defer c.dc.Close()

	if err := d.Draw(c, s); err != nil {
		return nil, err
	}
	return c.dc.Image(), nil
}
