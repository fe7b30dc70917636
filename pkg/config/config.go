package config

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/matzehuels/curlviz/pkg/errors"
	"github.com/matzehuels/curlviz/pkg/regulation"
)

const (
	// DefaultPPM is the default number of pixels per metre.
	DefaultPPM = 20

	// DefaultSheetWidth is the regulation maximum sheet width (15 ft 7 in).
	DefaultSheetWidth = 4.750

	// MaxCanvasSide is the largest canvas width or height, in pixels, that a
	// valid configuration may produce.
	MaxCanvasSide = 1 << 15
)

// Config is the drawing configuration of a sheet.
type Config struct {
	// Inversion draws the sheet upside down: the far house at the top of the
	// image is replaced by the hog line at the top.
	Inversion bool `json:"inversion" toml:"inversion"`

	// Full draws the sheet from the hack instead of from the hog line.
	// It only changes the canvas height and the vertical offset.
	Full bool `json:"full" toml:"full"`

	// PPM is the number of output pixels per metre.
	PPM int `json:"ppm" toml:"ppm"`

	// SheetWidth is the width of the sheet in metres.
	SheetWidth float64 `json:"sheet_width" toml:"sheet_width"`

	// Colors is the drawing palette.
	Colors Colors `json:"colors" toml:"colors"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		PPM:        DefaultPPM,
		SheetWidth: DefaultSheetWidth,
		Colors:     DefaultColors(),
	}
}

// Clone returns a copy that shares no memory with c.
func (c Config) Clone() Config {
	c.Colors = c.Colors.Clone()
	return c
}

// Validate checks the numeric settings and the palette.
func (c Config) Validate() error {
	if c.PPM <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "PPM must be a positive integer, but got %d", c.PPM)
	}
	if !(c.SheetWidth > 0) || math.IsInf(c.SheetWidth, 0) {
		return errors.New(errors.ErrCodeInvalidConfig, "sheet width must be a positive number, but got %v", c.SheetWidth)
	}
	ppm := float64(c.PPM)
	// Bounded for the full sheet so toggling Full never invalidates a config.
	longest := regulation.BackLine + 4*regulation.StoneRadius
	if ppm*c.SheetWidth > MaxCanvasSide || ppm*longest > MaxCanvasSide {
		return errors.New(errors.ErrCodeInvalidConfig,
			"canvas would exceed %d pixels per side (ppm %d, sheet width %v)", MaxCanvasSide, c.PPM, c.SheetWidth)
	}
	return c.Colors.Validate()
}

// Option configures a Config built by New.
type Option func(*Config)

// WithInversion draws the sheet upside down.
func WithInversion(v bool) Option { return func(c *Config) { c.Inversion = v } }

// WithFull draws the whole sheet from the hack line.
func WithFull(v bool) Option { return func(c *Config) { c.Full = v } }

// WithPPM sets the number of pixels per metre.
func WithPPM(ppm int) Option { return func(c *Config) { c.PPM = ppm } }

// WithSheetWidth sets the sheet width in metres.
func WithSheetWidth(w float64) Option { return func(c *Config) { c.SheetWidth = w } }

// WithColors replaces the palette. The palette is copied.
func WithColors(colors Colors) Option {
	return func(c *Config) { c.Colors = colors.Clone() }
}

// New builds a configuration from the defaults and opts and validates it.
func New(opts ...Option) (Config, error) {
	c := Default()
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// FromMap builds a configuration from a loose key-value structure such as a
// decoded JSON object. Missing keys keep their defaults and unknown keys are
// rejected. The result is validated.
func FromMap(m map[string]any) (Config, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "encode settings")
	}
	return decodeJSON(bytes.NewReader(data))
}
