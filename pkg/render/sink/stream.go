package sink

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/curlviz/pkg/config"
	"github.com/matzehuels/curlviz/pkg/errors"
	"github.com/matzehuels/curlviz/pkg/render"
	"github.com/matzehuels/curlviz/pkg/sheet"
)

// Format is an output encoding.
type Format string

const (
	FormatPDF Format = "pdf"
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatPDF, FormatSVG, FormatPNG}
}

// Ext returns the file extension including the leading dot.
func (f Format) Ext() string { return "." + string(f) }

// ContentType returns the media type of the encoded output.
func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	default:
		return "application/octet-stream"
	}
}

// Valid reports whether f is a supported format.
func (f Format) Valid() bool {
	switch f {
	case FormatPDF, FormatSVG, FormatPNG:
		return true
	}
	return false
}

// ParseFormat parses a format name such as "pdf" or ".PNG".
func ParseFormat(name string) (Format, error) {
	if err := errors.ValidateFormatName(strings.TrimPrefix(name, ".")); err != nil {
		return "", err
	}
	f := Format(strings.ToLower(strings.TrimPrefix(name, ".")))
	if !f.Valid() {
		return "", errors.New(errors.ErrCodeInvalidFormat, "invalid format %q: must be one of pdf, svg, png", name)
	}
	return f, nil
}

// FormatFromPath returns the format named by the extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer format from %q: no extension", path)
	}
	return ParseFormat(ext)
}

// Stream is an export channel bound to one output path and configuration.
type Stream interface {
	// Export draws s and writes the encoded result to Path.
	Export(s *sheet.Sheet) error
	// Encode draws s and writes the encoded result to w.
	Encode(w io.Writer, s *sheet.Sheet) error
	// Path returns the canonical output path.
	Path() string
	// Format returns the output encoding.
	Format() Format
}

// Option configures a Stream.
type Option func(*options)

type options struct {
	logger *log.Logger
}

// WithLogger sets the logger for warnings and debug output. Without it,
// warnings go to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New returns the export channel for format. The configuration is copied
// and validated, and path is canonicalised for the format.
func New(format Format, path string, cfg config.Config, opts ...Option) (Stream, error) {
	if !format.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format %q: must be one of pdf, svg, png", format)
	}
	if err := errors.ValidateOutputPath(path); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{logger: log.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	b := base{
		path:   canonize(path, format),
		format: format,
		drawer: render.NewDrawer(cfg, render.WithLogger(o.logger)),
		logger: o.logger,
	}
	switch format {
	case FormatPDF:
		return &PDF{base: b}, nil
	case FormatSVG:
		b.logger.Warn("lines may not render in SVG format")
		return &SVG{base: b}, nil
	default:
		return &PNG{base: b}, nil
	}
}

// base holds what every stream shares.
type base struct {
	path   string
	format Format
	drawer *render.Drawer
	logger *log.Logger
}

func (b *base) Path() string   { return b.path }
func (b *base) Format() Format { return b.format }

func (b *base) export(s *sheet.Sheet, encode func(io.Writer, *sheet.Sheet) error) error {
	b.logger.Debug("exporting", "format", b.format, "path", b.path)
	return writeAtomic(b.path, func(w io.Writer) error {
		return encode(w, s)
	})
}
