package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/curlviz/pkg/buildinfo"
	"github.com/matzehuels/curlviz/pkg/cache"
	"github.com/matzehuels/curlviz/pkg/config"
	cverrors "github.com/matzehuels/curlviz/pkg/errors"
	"github.com/matzehuels/curlviz/pkg/io"
	"github.com/matzehuels/curlviz/pkg/pipeline"
	"github.com/matzehuels/curlviz/pkg/render/sink"
	"github.com/matzehuels/curlviz/pkg/sheet"
)

const (
	defaultAddr     = ":8080"
	maxRequestBytes = 1 << 20
	renderTimeout   = 30 * time.Second
	shutdownTimeout = 5 * time.Second
)

type serveOpts struct {
	addr      string
	noCache   bool
	redisAddr string
	rateLimit int // requests per minute and client; 0 disables
}

// serveCommand runs the HTTP render API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: defaultAddr, rateLimit: 120}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the render API over HTTP",
		Long: `Serve the render API over HTTP.

  GET  /healthz          liveness probe
  POST /render/{format}  body {"config": {...}, "stones": [...]}, format pdf|svg|png

Rendered artifacts are cached on disk, or in Redis with --redis. With Redis
each client is also limited to --rate-limit requests per minute.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "Redis address for the shared cache and rate limiting")
	cmd.Flags().IntVar(&opts.rateLimit, "rate-limit", opts.rateLimit, "requests per minute per client with --redis (0 disables)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	logger := loggerFromContext(ctx)

	var limiter *rateLimiter
	var runner *pipeline.Runner
	switch {
	case opts.redisAddr != "" && !opts.noCache:
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: opts.redisAddr})
		if err != nil {
			return err
		}
		defer rc.Close()
		runner = pipeline.NewRunner(rc, cache.NewScopedKeyer(nil, appName+":"), logger)
		if opts.rateLimit > 0 {
			limiter = newRateLimiter(rc.Client(), opts.rateLimit, time.Minute, logger)
		}
		logger.Info("using redis cache", "addr", opts.redisAddr)
	default:
		r, err := c.newRunner(opts.noCache)
		if err != nil {
			return err
		}
		defer r.Cache.Close()
		runner = r
	}

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           newServer(runner, logger, limiter),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	printSuccess("Listening on %s", opts.addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// newServer builds the HTTP handler. A nil limiter disables rate limiting.
func newServer(runner *pipeline.Runner, logger *log.Logger, limiter *rateLimiter) http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(serverHeader)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
	})

	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.middleware)
		}
		r.Use(middleware.Timeout(renderTimeout))
		r.Post("/render/{format}", renderHandler(runner))
	})

	return r
}

// renderRequest is the body of POST /render/{format}.
type renderRequest struct {
	Config map[string]any `json:"config"`
	Stones []sheet.Stone  `json:"stones"`
}

func renderHandler(runner *pipeline.Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		format, err := sink.ParseFormat(chi.URLParam(req, "format"))
		if err != nil {
			writeError(w, http.StatusNotFound, err)
			return
		}

		var body renderRequest
		dec := json.NewDecoder(http.MaxBytesReader(w, req.Body, maxRequestBytes))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&body); err != nil {
			if cverrors.GetCode(err) == "" {
				err = cverrors.Wrap(cverrors.ErrCodeInvalidInput, err, "decode request")
			}
			writeError(w, http.StatusBadRequest, err)
			return
		}

		cfg := config.Default()
		if body.Config != nil {
			if cfg, err = config.FromMap(body.Config); err != nil {
				writeError(w, statusFor(err), err)
				return
			}
		}
		s, err := io.FromStones(body.Stones)
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}

		res, err := runner.Render(req.Context(), pipeline.Options{Config: cfg, Sheet: s, Format: format})
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}

		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("Content-Length", strconv.Itoa(len(res.Data)))
		w.Header().Set("ETag", strconv.Quote(cache.Hash([]byte(res.Key))[:16]))
		w.Header().Set("X-Cache", cacheStatus(res.CacheHit))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(res.Data)
	}
}

func cacheStatus(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}

// statusFor maps validation errors to 400 and everything else to 500.
func statusFor(err error) int {
	if cverrors.IsValidation(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

type errorBody struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	code := string(cverrors.GetCode(err))
	if code == "" {
		code = string(cverrors.ErrCodeInternal)
	}
	writeJSON(w, status, errorBody{Code: code, Error: cverrors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// =============================================================================
// Middleware
// =============================================================================

const requestIDHeader = "X-Request-ID"

// requestID keeps a client-supplied request ID or assigns a new UUID.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(requestIDHeader, id)
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func serverHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", buildinfo.UserAgent())
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs one line per request through the charm logger.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start).Round(time.Microsecond),
				"id", r.Header.Get(requestIDHeader))
		})
	}
}
