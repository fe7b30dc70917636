package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/curlviz/pkg/buildinfo"
	"github.com/matzehuels/curlviz/pkg/cache"
	"github.com/matzehuels/curlviz/pkg/io"
	"github.com/matzehuels/curlviz/pkg/render/sink"
	"github.com/matzehuels/curlviz/pkg/sheet"
)

// Runner renders with caching. It holds no per-request state, so one Runner
// may serve concurrent requests.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration
}

// NewRunner returns a runner. A nil cache disables caching, a nil keyer uses
// cache.DefaultKeyer and a nil logger uses log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    cache.DefaultTTL,
	}
}

// Render returns the encoded sheet, from the cache when possible.
// Cache failures are logged and never fail the render.
func (r *Runner) Render(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	key, err := r.key(opts)
	if err != nil {
		return nil, err
	}

	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		switch {
		case err != nil:
			r.Logger.Warn("cache read failed", "key", key, "err", err)
		case hit:
			r.Logger.Debug("cache hit", "format", opts.Format, "bytes", len(data))
			return &Result{
				Data:     data,
				Format:   opts.Format,
				Key:      key,
				CacheHit: true,
				Duration: time.Since(start),
			}, nil
		}
	}

	stream, err := sink.New(opts.Format, "", opts.Config, sink.WithLogger(r.Logger))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := stream.Encode(&buf, opts.Sheet); err != nil {
		return nil, err
	}

	if err := r.Cache.Set(ctx, key, buf.Bytes(), r.TTL); err != nil {
		r.Logger.Warn("cache write failed", "key", key, "err", err)
	}

	res := &Result{
		Data:     buf.Bytes(),
		Format:   opts.Format,
		Key:      key,
		Duration: time.Since(start),
	}
	r.Logger.Debug("rendered", "format", opts.Format, "bytes", len(res.Data), "duration", res.Duration)
	return res, nil
}

func (r *Runner) key(opts Options) (string, error) {
	cfgJSON, err := json.Marshal(opts.Config)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	s := opts.Sheet
	if s == nil {
		s = sheet.New()
	}
	var stones bytes.Buffer
	if err := io.WriteJSON(s, &stones); err != nil {
		return "", fmt.Errorf("encode stones: %w", err)
	}
	return r.Keyer.ArtifactKey(cache.ArtifactKeyOpts{
		Format:  string(opts.Format),
		Config:  cfgJSON,
		Stones:  stones.Bytes(),
		Version: buildinfo.Version,
	}), nil
}
