package sheet

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/curlviz/pkg/errors"
)

func TestTeamIsEntity(t *testing.T) {
	tests := []struct {
		team Team
		want bool
	}{
		{Team0, true},
		{Team1, true},
		{Dummy, false},
	}
	for _, tt := range tests {
		if got := tt.team.IsEntity(); got != tt.want {
			t.Errorf("%v.IsEntity() = %v, want %v", tt.team, got, tt.want)
		}
	}
}

func TestTeamZeroValueIsDummy(t *testing.T) {
	var st Stone
	if st.Team != Dummy {
		t.Errorf("zero Stone team = %v, want dummy", st.Team)
	}
	if (Stone{X: 0, Y: 38}).Team.IsEntity() {
		t.Error("a stone literal without a team should not belong to a team")
	}
}

func TestTeamLabels(t *testing.T) {
	tests := []struct {
		team  Team
		label int
		index int
	}{
		{Team0, 0, 0},
		{Team1, 1, 1},
		{Dummy, 2, -1},
	}
	for _, tt := range tests {
		if got := tt.team.Label(); got != tt.label {
			t.Errorf("%v.Label() = %d, want %d", tt.team, got, tt.label)
		}
		if got := tt.team.Index(); got != tt.index {
			t.Errorf("%v.Index() = %d, want %d", tt.team, got, tt.index)
		}
		parsed, err := ParseTeam(tt.label)
		if err != nil || parsed != tt.team {
			t.Errorf("ParseTeam(%d) = %v, %v; want %v", tt.label, parsed, err, tt.team)
		}
	}
	if _, err := ParseTeam(3); !errors.Is(err, errors.ErrCodeInvalidStone) {
		t.Errorf("ParseTeam(3) error = %v, want INVALID_STONE", err)
	}
}

func TestTeamString(t *testing.T) {
	if Team0.String() != "team0" || Team1.String() != "team1" || Dummy.String() != "dummy" {
		t.Error("unexpected team names")
	}
	if Team(7).String() != "Team(7)" {
		t.Errorf("Team(7).String() = %q", Team(7).String())
	}
}

func TestPutCapacity(t *testing.T) {
	s := New()
	for i := 0; i < 16; i++ {
		if err := s.Put(Stone{X: 0, Y: float64(i), Team: []Team{Team0, Team1}[i%2]}); err != nil {
			t.Fatalf("Put #%d error = %v", i+1, err)
		}
	}
	if s.Count() != 16 {
		t.Fatalf("Count() = %d, want 16", s.Count())
	}

	err := s.Put(Stone{Team: Team0})
	if !errors.Is(err, errors.ErrCodeTooManyStones) {
		t.Fatalf("17th Put error = %v, want TOO_MANY_STONES", err)
	}
	if s.Count() != 16 {
		t.Errorf("Count() after rejected Put = %d, want 16", s.Count())
	}
}

func TestZeroValueSheet(t *testing.T) {
	var s Sheet
	if s.Count() != 0 {
		t.Errorf("Count() = %d, want 0", s.Count())
	}
	if err := s.Put(NewStone(1, 2)); err != nil {
		t.Fatal(err)
	}
	if s.Count() != 1 {
		t.Errorf("Count() = %d, want 1", s.Count())
	}
}

func TestStonesOrderAndCopy(t *testing.T) {
	s := New()
	_ = s.Put(Stone{X: 1, Y: 1, Team: Team0})
	_ = s.Put(Stone{X: 2, Y: 2, Team: Team1})

	stones := s.Stones()
	if len(stones) != 2 || stones[0].X != 1 || stones[1].X != 2 {
		t.Fatalf("Stones() = %+v", stones)
	}
	stones[0].X = 99
	if s.Stones()[0].X != 1 {
		t.Error("Stones() should return a copy")
	}
}

func TestNewStoneIsDummy(t *testing.T) {
	if s := NewStone(0.5, 35); s.Team != Dummy {
		t.Errorf("NewStone team = %v, want dummy", s.Team)
	}
}

func TestStoneJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Stone
		wantErr bool
	}{
		{"team0", `{"x": 0.08, "y": 35.3, "team": 0}`, Stone{0.08, 35.3, Team0}, false},
		{"team1", `{"x": 1.57, "y": 37.2, "team": 1}`, Stone{1.57, 37.2, Team1}, false},
		{"missing team", `{"x": 1, "y": 2}`, Stone{1, 2, Dummy}, false},
		{"explicit dummy", `{"x": 1, "y": 2, "team": 2}`, Stone{1, 2, Dummy}, false},
		{"bad team", `{"x": 1, "y": 2, "team": 5}`, Stone{}, true},
		{"string team", `{"x": 1, "y": 2, "team": "red"}`, Stone{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Stone
			err := json.Unmarshal([]byte(tt.in), &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Unmarshal = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTeamMarshal(t *testing.T) {
	data, err := json.Marshal(Stone{X: 1, Y: 2, Team: Team1})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"x":1,"y":2,"team":1}` {
		t.Errorf("Marshal = %s", data)
	}

	data, err = json.Marshal(Stone{X: 1, Y: 2})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"x":1,"y":2,"team":2}` {
		t.Errorf("Marshal(no team) = %s", data)
	}
}
