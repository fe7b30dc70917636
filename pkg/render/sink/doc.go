// Package sink exports rendered sheets to PDF, SVG and PNG.
//
// # Overview
//
// A sink (a [Stream]) owns an output path and a drawing configuration. On
// [Stream.Export] it creates a backend canvas sized by
// [render.CanvasSize], lets a [render.Drawer] draw the sheet onto it and
// writes the encoded result to disk:
//
//   - [PDF] writes a single-page PDF, one pixel per point
//   - [SVG] writes a freestanding SVG document, one pixel per CSS pixel
//   - [PNG] rasterises the sheet off-screen and writes a PNG image
//
// PDF and SVG are drawn with github.com/tdewolff/canvas; PNG uses the
// github.com/gogpu/gg software rasteriser.
//
// # Paths
//
// [New] canonicalises the output path: an empty path or a directory gets
// "output.<ext>" appended, and a path whose extension does not match the
// format gets ".<ext>" appended. Files are written through a temporary file
// in the target directory and renamed into place.
//
// # Usage
//
//	out, err := sink.New(sink.FormatPNG, "game.png", cfg)
//	if err != nil {
//	    return err
//	}
//	return out.Export(s)
//
// [Stream.Encode] writes the same bytes to any io.Writer; the HTTP server and
// the artifact cache use it instead of Export.
package sink
