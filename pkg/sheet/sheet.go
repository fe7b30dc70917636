// Package sheet holds the state of a curling sheet: the stones placed on it
// and the team that owns each of them.
//
// Coordinates are in metres. The x-axis runs across the sheet with 0 on the
// centre line; the y-axis runs along the sheet with 0 on the hack line (see
// package regulation). Stones are not range checked: a stone outside the
// sheet is legal and is simply clipped or drawn off-canvas.
package sheet

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/matzehuels/curlviz/pkg/errors"
	"github.com/matzehuels/curlviz/pkg/regulation"
)

// Team labels the owner of a stone. The zero value is Dummy, so a stone
// literal without a team is never drawn.
type Team int

const (
	// Dummy marks a stone slot that holds no stone. Dummy stones are never drawn.
	Dummy Team = iota
	// Team0 is the first team.
	Team0
	// Team1 is the second team.
	Team1
)

// IsEntity reports whether t is a real team, i.e. Team0 or Team1.
func (t Team) IsEntity() bool {
	return t == Team0 || t == Team1
}

// Index returns the position of t in the stone color list, or -1 for
// anything that is not a real team.
func (t Team) Index() int {
	switch t {
	case Team0:
		return 0
	case Team1:
		return 1
	default:
		return -1
	}
}

// Label returns the external integer label: 0 and 1 for the teams, 2 for
// Dummy.
func (t Team) Label() int {
	if t.IsEntity() {
		return t.Index()
	}
	return 2
}

// String returns "team0", "team1" or "dummy".
func (t Team) String() string {
	switch t {
	case Team0:
		return "team0"
	case Team1:
		return "team1"
	case Dummy:
		return "dummy"
	default:
		return fmt.Sprintf("Team(%d)", int(t))
	}
}

// ParseTeam converts an external label (0, 1 or 2) to a Team.
func ParseTeam(label int) (Team, error) {
	switch label {
	case 0:
		return Team0, nil
	case 1:
		return Team1, nil
	case 2:
		return Dummy, nil
	}
	return Dummy, errors.New(errors.ErrCodeInvalidStone, "%d is not a valid team (must be 0, 1 or 2)", label)
}

// MarshalJSON encodes the team as its integer label.
func (t Team) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Label())
}

// UnmarshalJSON decodes an integer label and rejects unknown teams.
func (t *Team) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidStone, err, "decode team")
	}
	parsed, err := ParseTeam(v)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Stone is a stone on the sheet.
type Stone struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Team Team    `json:"team"`
}

// NewStone returns a stone at (x, y) without an owner.
func NewStone(x, y float64) Stone {
	return Stone{X: x, Y: y, Team: Dummy}
}

// UnmarshalJSON decodes a stone. A missing team decodes as Dummy.
func (s *Stone) UnmarshalJSON(data []byte) error {
	type plain Stone
	v := plain{Team: Dummy}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = Stone(v)
	return nil
}

// Sheet is an ordered, append-only collection of stones.
// The zero value is an empty sheet ready to use.
type Sheet struct {
	stones []Stone
}

// New returns an empty sheet.
func New() *Sheet {
	return &Sheet{}
}

// Put appends a stone. It fails once the sheet holds regulation.MaxStones.
func (s *Sheet) Put(stone Stone) error {
	if len(s.stones) >= regulation.MaxStones {
		return errors.New(errors.ErrCodeTooManyStones,
			"too many stones on a sheet (max %d)", regulation.MaxStones)
	}
	s.stones = append(s.stones, stone)
	return nil
}

// Count returns the number of stones on the sheet.
func (s *Sheet) Count() int {
	return len(s.stones)
}

// Stones returns a copy of the stones in insertion order.
func (s *Sheet) Stones() []Stone {
	return slices.Clone(s.stones)
}
