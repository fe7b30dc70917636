package sink

import (
	"io"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/svg"

	"github.com/matzehuels/curlviz/pkg/sheet"
)

// SVG writes a freestanding SVG document. One canvas pixel is one CSS pixel.
//
// Very thin lines may disappear in some viewers, which is why New logs a
// warning for this format.
type SVG struct {
	base
}

// Export writes the document to s.Path().
func (v *SVG) Export(s *sheet.Sheet) error {
	return v.export(s, v.Encode)
}

// Encode writes the document to w.
func (v *SVG) Encode(w io.Writer, s *sheet.Sheet) error {
	width, height := v.drawer.CanvasSize()
	wmm, hmm := pageSize(width, height, mmPerCSSPix)

	doc := svg.New(w, wmm, hmm, nil)
	c := newVectorCanvas(canvas.NewContext(doc), width, height, mmPerCSSPix)
	if err := v.drawer.Draw(c, s); err != nil {
		return err
	}
	return doc.Close()
}
