package sink

import (
	"io"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/matzehuels/curlviz/pkg/sheet"
)

// PDF writes a single-page PDF document. One canvas pixel is one point.
type PDF struct {
	base
}

// Export writes the document to p.Path().
func (p *PDF) Export(s *sheet.Sheet) error {
	return p.export(s, p.Encode)
}

// Encode writes the document to w.
func (p *PDF) Encode(w io.Writer, s *sheet.Sheet) error {
	width, height := p.drawer.CanvasSize()
	wmm, hmm := pageSize(width, height, mmPerPoint)

	doc := pdf.New(w, wmm, hmm, nil)
	c := newVectorCanvas(canvas.NewContext(doc), width, height, mmPerPoint)
	if err := p.drawer.Draw(c, s); err != nil {
		return err
	}
	return doc.Close()
}
