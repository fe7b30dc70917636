package config

import (
	"fmt"
	"image/color"
	"regexp"
	"strconv"

	"github.com/matzehuels/curlviz/pkg/errors"
)

// codePattern matches a colour code: '#' followed by 8 hex digits.
var codePattern = regexp.MustCompile(`^#[0-9a-fA-F]{8}$`)

// Color is a non-premultiplied RGBA colour.
// It implements [color.Color].
type Color struct {
	R, G, B, A uint8
}

var _ color.Color = Color{}

// ValidColorCode reports whether code is '#' followed by exactly 8 hex digits.
func ValidColorCode(code string) bool {
	return codePattern.MatchString(code)
}

// ParseColor parses a '#RRGGBBAA' colour code.
func ParseColor(code string) (Color, error) {
	if !ValidColorCode(code) {
		return Color{}, errors.New(errors.ErrCodeInvalidColor,
			"color code must start with '#' followed by 8 hex digits, but got '%s'", code)
	}
	v, err := strconv.ParseUint(code[1:], 16, 32)
	if err != nil {
		return Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "parse color code '%s'", code)
	}
	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// MustParseColor is like ParseColor but panics on malformed input.
// Use it only for compile-time constants.
func MustParseColor(code string) Color {
	c, err := ParseColor(code)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the colour as an upper-case '#RRGGBBAA' code.
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA(c).RGBA()
}

// Transparent is fully transparent black.
var Transparent = Color{}
