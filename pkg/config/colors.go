package config

import (
	"slices"

	"github.com/matzehuels/curlviz/pkg/errors"
)

// Default colours.
const (
	// DefaultBackgroundColor is non-transparent white.
	DefaultBackgroundColor = "#FFFFFFFF"

	// DefaultLineColor is non-transparent black.
	DefaultLineColor = "#000000FF"

	// DefaultInnerHouseColor is 50%-transparent red.
	DefaultInnerHouseColor = "#FF000080"

	// DefaultOuterHouseColor is 50%-transparent blue.
	DefaultOuterHouseColor = "#0000FF80"
)

// DefaultStoneColors returns the default stone colours: red for team 0 and
// yellow for team 1. The slice is freshly allocated on every call.
func DefaultStoneColors() []string {
	return []string{
		"#FF0000FF", // team0
		"#FFFF00FF", // team1
	}
}

// numTeams is the number of teams that own stones.
const numTeams = 2

// Colors is the drawing palette in its external '#RRGGBBAA' form.
type Colors struct {
	Background       string   `json:"background" toml:"background"`
	Line             string   `json:"line" toml:"line"`
	InnerHouseCircle string   `json:"inner_house_circle" toml:"inner_house_circle"`
	OuterHouseCircle string   `json:"outer_house_circle" toml:"outer_house_circle"`
	Stones           []string `json:"stones" toml:"stones"`
}

// DefaultColors returns the default palette.
func DefaultColors() Colors {
	return Colors{
		Background:       DefaultBackgroundColor,
		Line:             DefaultLineColor,
		InnerHouseCircle: DefaultInnerHouseColor,
		OuterHouseCircle: DefaultOuterHouseColor,
		Stones:           DefaultStoneColors(),
	}
}

// Clone returns a copy that shares no memory with c.
func (c Colors) Clone() Colors {
	c.Stones = slices.Clone(c.Stones)
	return c
}

// Validate checks every colour code and the number of stone colours.
// The error names the offending field, or the team for stone colours.
func (c Colors) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"background", c.Background},
		{"line", c.Line},
		{"inner_house_circle", c.InnerHouseCircle},
		{"outer_house_circle", c.OuterHouseCircle},
	}
	for _, f := range fields {
		if !ValidColorCode(f.value) {
			return errors.New(errors.ErrCodeInvalidColor,
				"color code must start with '#' followed by 8 hex digits, but got '%s' for %s", f.value, f.name)
		}
	}
	for team, code := range c.Stones {
		if !ValidColorCode(code) {
			return errors.New(errors.ErrCodeInvalidColor,
				"color code must start with '#' followed by 8 hex digits, but got '%s' for team%d's stone color", code, team)
		}
	}
	if len(c.Stones) < numTeams {
		return errors.New(errors.ErrCodeInvalidConfig,
			"need at least %d stone colors, but got %d", numTeams, len(c.Stones))
	}
	return nil
}

// Palette is a resolved set of drawing colours.
type Palette struct {
	Background Color
	Line       Color
	InnerHouse Color
	OuterHouse Color
	Stones     []Color
}

// Palette parses every colour code.
func (c Colors) Palette() (Palette, error) {
	var p Palette
	var err error
	if p.Background, err = ParseColor(c.Background); err != nil {
		return Palette{}, err
	}
	if p.Line, err = ParseColor(c.Line); err != nil {
		return Palette{}, err
	}
	if p.InnerHouse, err = ParseColor(c.InnerHouseCircle); err != nil {
		return Palette{}, err
	}
	if p.OuterHouse, err = ParseColor(c.OuterHouseCircle); err != nil {
		return Palette{}, err
	}
	p.Stones = make([]Color, len(c.Stones))
	for i, code := range c.Stones {
		if p.Stones[i], err = ParseColor(code); err != nil {
			return Palette{}, err
		}
	}
	return p, nil
}
