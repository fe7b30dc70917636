// Package pkg provides the core libraries for curlviz, which draws still
// images of a curling sheet with its stones.
//
// # Overview
//
// The pkg directory is organized into three areas:
//
//  1. Domain: [regulation] (sheet geometry), [sheet] (stones and teams),
//     [config] (drawing configuration and colors)
//  2. Rendering: [render] (the drawer and the canvas abstraction),
//     [render/sink] (PDF, SVG and PNG output streams)
//  3. Infrastructure: [io] (stone files), [cache] (artifact caching),
//     [pipeline] (cached rendering), [errors], [buildinfo]
//
// # Architecture
//
// The typical data flow:
//
//	stones.json / HTTP request
//	         ↓
//	    [io] package (decode stones into a sheet)
//	         ↓
//	    [render] package (draw house, lines and stones onto a canvas)
//	         ↓
//	    [render/sink] package (PDF, SVG or PNG bytes)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/curlviz/pkg/config"
//	    "github.com/matzehuels/curlviz/pkg/regulation"
//	    "github.com/matzehuels/curlviz/pkg/render/sink"
//	    "github.com/matzehuels/curlviz/pkg/sheet"
//	)
//
//	s := sheet.New()
//	_ = s.Put(sheet.Stone{X: 0, Y: regulation.TeeLine, Team: sheet.Team0})
//
//	stream, err := sink.New(sink.FormatPNG, "game.png", config.Default())
//	if err != nil {
//	    return err
//	}
//	return stream.Export(s)
//
// [regulation]: https://pkg.go.dev/github.com/matzehuels/curlviz/pkg/regulation
// [sheet]: https://pkg.go.dev/github.com/matzehuels/curlviz/pkg/sheet
// [config]: https://pkg.go.dev/github.com/matzehuels/curlviz/pkg/config
// [render]: https://pkg.go.dev/github.com/matzehuels/curlviz/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/curlviz/pkg/render/sink
// [io]: https://pkg.go.dev/github.com/matzehuels/curlviz/pkg/io
// [cache]: https://pkg.go.dev/github.com/matzehuels/curlviz/pkg/cache
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/curlviz/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/curlviz/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/curlviz/pkg/buildinfo
package pkg
