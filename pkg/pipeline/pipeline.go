// Package pipeline renders sheets to encoded bytes with an artifact cache in
// front of the renderer.
//
// The HTTP server renders through a [Runner]; the export command writes files
// through sink streams without the cache. A Runner validates the
// request, derives a cache key from the canonical JSON form of the
// configuration and the stones, and only draws on a cache miss.
//
//	r := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	res, err := r.Render(ctx, pipeline.Options{
//	    Config: cfg,
//	    Sheet:  s,
//	    Format: sink.FormatPNG,
//	})
package pipeline

import (
	"time"

	"github.com/matzehuels/curlviz/pkg/config"
	"github.com/matzehuels/curlviz/pkg/errors"
	"github.com/matzehuels/curlviz/pkg/render/sink"
	"github.com/matzehuels/curlviz/pkg/sheet"
)

// Options describes one render request.
type Options struct {
	Config config.Config
	Sheet  *sheet.Sheet
	Format sink.Format

	// Refresh skips the cache lookup. The result is still stored.
	Refresh bool
}

// Validate checks the format and the configuration.
func (o Options) Validate() error {
	if !o.Format.Valid() {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format %q: must be one of pdf, svg, png", o.Format)
	}
	return o.Config.Validate()
}

// Result is a rendered artifact.
type Result struct {
	Data     []byte
	Format   sink.Format
	Key      string
	CacheHit bool
	Duration time.Duration
}
