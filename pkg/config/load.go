package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/curlviz/pkg/errors"
)

// Format is a configuration file encoding.
type Format string

// Supported configuration file encodings.
const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// ParseFormat converts a name such as "json" or "toml" to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatJSON, FormatTOML:
		return f, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unknown config format: %q (must be json or toml)", name)
	}
}

// FormatFromPath picks the encoding from a file extension.
// Anything other than .toml is treated as JSON.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatJSON
}

// Load reads and validates the configuration file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return Config{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	c, err := Read(f, FormatFromPath(path))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Read decodes a configuration from r and validates it.
// Keys that are absent keep their default values.
func Read(r io.Reader, format Format) (Config, error) {
	switch format {
	case FormatTOML:
		return decodeTOML(r)
	case FormatJSON, "":
		return decodeJSON(r)
	default:
		return Config{}, errors.New(errors.ErrCodeInvalidFormat, "unknown config format: %q", format)
	}
}

func decodeJSON(r io.Reader) (Config, error) {
	c := Default()
	// Defaults are overlaid; a stones array in the input replaces them.
	c.Colors.Stones = nil
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode json config")
	}
	return finish(c)
}

func decodeTOML(r io.Reader) (Config, error) {
	c := Default()
	c.Colors.Stones = nil
	md, err := toml.NewDecoder(r).Decode(&c)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode toml config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	return finish(c)
}

// finish restores default stone colours when none were given and validates.
func finish(c Config) (Config, error) {
	if c.Colors.Stones == nil {
		c.Colors.Stones = DefaultStoneColors()
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Write encodes c to w in the given format.
func Write(w io.Writer, c Config, format Format) error {
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(c); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown config format: %q", format)
	}
}
