// Package render draws a curling sheet onto an abstract 2D canvas.
//
// # Overview
//
// Rendering is split in two halves:
//
//   - [Drawer] turns a [config.Config] and a [sheet.Sheet] into an ordered
//     sequence of primitive draw calls (rectangles, circles and lines)
//   - a [Canvas] receives those calls; backends in the [sink] subpackage
//     turn them into PDF, SVG or PNG output
//
// The Drawer never talks to an output format directly, so the same drawing
// logic feeds every backend and the [Recorder] canvas used by tests.
//
// # Coordinates
//
// The canvas uses pixel coordinates with the origin at the top-left corner
// and y growing downwards. Sheet coordinates are metres with y growing away
// from the hack. Unless [config.Config.Inversion] is set, Draw flips the
// vertical axis so that the far house appears at the top of the image, then
// shifts the sheet so that its centre line is in the middle of the canvas and
// the visible window starts half a stone below the hog line (or below the
// hack when [config.Config.Full] is set).
//
// Anything whose shifted y-coordinate is negative lies outside the visible
// window and is skipped.
//
// # Usage
//
//	d := render.NewDrawer(cfg)
//	w, h := d.CanvasSize()
//	rec := render.NewRecorder(w, h)
//	if err := d.Draw(rec, s); err != nil {
//	    return err
//	}
//
// [sink]: github.com/matzehuels/curlviz/pkg/render/sink
package render
