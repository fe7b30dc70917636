package render

import (
	"math"
	"testing"

	"github.com/matzehuels/curlviz/pkg/config"
	"github.com/matzehuels/curlviz/pkg/errors"
	"github.com/matzehuels/curlviz/pkg/regulation"
	"github.com/matzehuels/curlviz/pkg/sheet"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < eps }

func draw(t *testing.T, cfg config.Config, s *sheet.Sheet) *Recorder {
	t.Helper()
	d := NewDrawer(cfg)
	rec := NewRecorder(d.CanvasSize())
	if err := d.Draw(rec, s); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	return rec
}

func sheetWith(t *testing.T, stones ...sheet.Stone) *sheet.Sheet {
	t.Helper()
	s := sheet.New()
	for _, st := range stones {
		if err := s.Put(st); err != nil {
			t.Fatalf("Put: %v", err)
		}
	}
	return s
}

func TestCanvasSize(t *testing.T) {
	tests := []struct {
		name  string
		cfg   config.Config
		wantW int
		wantH float64
	}{
		{
			name:  "default",
			cfg:   config.Default(),
			wantW: 95,
			wantH: 20 * (regulation.BackLine - regulation.HogLine + 4*regulation.StoneRadius),
		},
		{
			name:  "full",
			cfg:   config.Config{PPM: 20, SheetWidth: 4.75, Full: true},
			wantW: 95,
			wantH: 20 * (regulation.BackLine + 4*regulation.StoneRadius),
		},
		{
			name:  "fractional width rounds up",
			cfg:   config.Config{PPM: 3, SheetWidth: 4.75},
			wantW: 15,
			wantH: 3 * (regulation.BackLine - regulation.HogLine + 4*regulation.StoneRadius),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := CanvasSize(tt.cfg)
			if w != tt.wantW {
				t.Errorf("width = %d, want %d", w, tt.wantW)
			}
			if want := int(math.Ceil(tt.wantH)); h != want {
				t.Errorf("height = %d, want %d", h, want)
			}
		})
	}
}

func TestCanvasSizeClamped(t *testing.T) {
	tests := []struct {
		name  string
		width float64
		wantW int
	}{
		{"infinite width", math.Inf(1), config.MaxCanvasSide},
		{"huge width", 1e300, config.MaxCanvasSide},
		{"NaN width", math.NaN(), 0},
		{"negative width", -4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := CanvasSize(config.Config{PPM: 20, SheetWidth: tt.width})
			if w != tt.wantW {
				t.Errorf("width = %d, want %d", w, tt.wantW)
			}
			if h != 177 {
				t.Errorf("height = %d, want 177", h)
			}
		})
	}
}

func TestCanvasSizeDefaultHeight(t *testing.T) {
	_, h := CanvasSize(config.Default())
	if h != 177 {
		t.Errorf("height = %d, want 177", h)
	}
}

func TestCanvasSizeMonotonic(t *testing.T) {
	prevW, prevH := 0, 0
	for ppm := 1; ppm <= 200; ppm++ {
		w, h := CanvasSize(config.Config{PPM: ppm, SheetWidth: 4.75})
		if w < prevW || h < prevH {
			t.Fatalf("ppm %d: size (%d, %d) shrank from (%d, %d)", ppm, w, h, prevW, prevH)
		}
		prevW, prevH = w, h
	}

	_, partial := CanvasSize(config.Config{PPM: 20, SheetWidth: 4.75})
	_, full := CanvasSize(config.Config{PPM: 20, SheetWidth: 4.75, Full: true})
	if full <= partial {
		t.Errorf("full height %d should exceed partial height %d", full, partial)
	}
}

func TestDrawEmptySheet(t *testing.T) {
	rec := draw(t, config.Default(), sheet.New())

	if got := rec.Ops[0].Kind; got != OpSave {
		t.Errorf("first op = %v, want save", got)
	}
	if got := rec.Ops[len(rec.Ops)-1].Kind; got != OpRestore {
		t.Errorf("last op = %v, want restore", got)
	}

	rects := rec.Filter(OpRect)
	if len(rects) != 1 {
		t.Fatalf("rects = %d, want 1", len(rects))
	}
	w, h := rec.Size()
	r := rects[0]
	if r.W != float64(w) || r.H != float64(h) {
		t.Errorf("background = %vx%v, want %dx%d", r.W, r.H, w, h)
	}
	if r.Paint.Color != config.MustParseColor(config.DefaultBackgroundColor) {
		t.Errorf("background color = %v", r.Paint.Color)
	}

	if got := len(rec.Filter(OpCircle)); got != 4 {
		t.Errorf("circles = %d, want 4 house rings", got)
	}
	// Centre line plus hog, tee and back lines.
	if got := len(rec.Filter(OpLine)); got != 4 {
		t.Errorf("lines = %d, want 4", got)
	}
}

func TestDrawNilSheet(t *testing.T) {
	rec := draw(t, config.Default(), nil)
	if got := len(rec.Filter(OpCircle)); got != 4 {
		t.Errorf("circles = %d, want 4", got)
	}
}

func TestDrawFullShowsEveryLine(t *testing.T) {
	cfg := config.Default()
	cfg.Full = true
	rec := draw(t, cfg, sheet.New())
	if got := len(rec.Filter(OpLine)); got != 1+len(regulation.Lines()) {
		t.Errorf("lines = %d, want %d", got, 1+len(regulation.Lines()))
	}
}

func TestDrawHouseOrder(t *testing.T) {
	rec := draw(t, config.Default(), sheet.New())
	rings := rec.Filter(OpCircle)

	radii := regulation.HouseRadii()
	bg := config.MustParseColor(config.DefaultBackgroundColor)
	want := []struct {
		r     float64
		color config.Color
	}{
		{radii[3], config.MustParseColor(config.DefaultOuterHouseColor)},
		{radii[2], bg},
		{radii[1], config.MustParseColor(config.DefaultInnerHouseColor)},
		{radii[0], bg},
	}

	teeY := (regulation.TeeLine - regulation.HogLine + 2*regulation.StoneRadius) * 20
	for i, ring := range rings {
		if !approx(ring.R, want[i].r*20) {
			t.Errorf("ring %d radius = %v, want %v", i, ring.R, want[i].r*20)
		}
		if ring.Paint.Color != want[i].color {
			t.Errorf("ring %d color = %v, want %v", i, ring.Paint.Color, want[i].color)
		}
		if ring.Paint.Style != Fill {
			t.Errorf("ring %d style = %v, want fill", i, ring.Paint.Style)
		}
		if !approx(ring.X, 4.75/2*20) || !approx(ring.Y, teeY) {
			t.Errorf("ring %d centre = (%v, %v)", i, ring.X, ring.Y)
		}
	}
}

func TestDrawStoneOnTee(t *testing.T) {
	s := sheetWith(t, sheet.Stone{X: 0, Y: regulation.TeeLine, Team: sheet.Team0})
	rec := draw(t, config.Default(), s)

	circles := rec.Filter(OpCircle)
	if len(circles) != 6 {
		t.Fatalf("circles = %d, want 6", len(circles))
	}
	disc, ring := circles[4], circles[5]

	r := regulation.StoneRadius * 20
	if disc.Paint.Style != Fill || !approx(disc.R, r) {
		t.Errorf("disc = %+v", disc)
	}
	if disc.Paint.Color != config.MustParseColor("#FF0000FF") {
		t.Errorf("disc color = %v", disc.Paint.Color)
	}
	if ring.Paint.Style != Stroke || !approx(ring.R, 0.8*r) || !approx(ring.Paint.StrokeWidth, 0.4*r) {
		t.Errorf("ring = %+v", ring)
	}
	if ring.Paint.Color != config.MustParseColor(config.DefaultLineColor) {
		t.Errorf("ring color = %v", ring.Paint.Color)
	}
	if !approx(disc.X, ring.X) || !approx(disc.Y, ring.Y) {
		t.Errorf("disc and ring are not concentric")
	}
}

func TestDrawSkipsStones(t *testing.T) {
	tests := []struct {
		name  string
		stone sheet.Stone
	}{
		{"dummy", sheet.Stone{X: 0, Y: regulation.TeeLine, Team: sheet.Dummy}},
		{"no team", sheet.Stone{X: 0, Y: regulation.TeeLine}},
		{"below window", sheet.Stone{X: 0, Y: 10, Team: sheet.Team1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := draw(t, config.Default(), sheetWith(t, tt.stone))
			if got := len(rec.Filter(OpCircle)); got != 4 {
				t.Errorf("circles = %d, want 4", got)
			}
		})
	}
}

func TestDrawInversion(t *testing.T) {
	cfg := config.Default()
	rec := draw(t, cfg, sheet.New())
	if len(rec.Filter(OpScale)) != 1 || len(rec.Filter(OpTranslate)) != 1 {
		t.Errorf("expected a vertical flip without inversion")
	}

	cfg.Inversion = true
	rec = draw(t, cfg, sheet.New())
	if len(rec.Filter(OpScale)) != 0 || len(rec.Filter(OpTranslate)) != 0 {
		t.Errorf("expected no flip with inversion")
	}
}

func TestDrawInvalidColor(t *testing.T) {
	cfg := config.Default()
	cfg.Colors.Line = "#12345"
	d := NewDrawer(cfg)
	rec := NewRecorder(d.CanvasSize())

	err := d.Draw(rec, sheet.New())
	if !errors.Is(err, errors.ErrCodeInvalidColor) {
		t.Fatalf("err = %v, want INVALID_COLOR", err)
	}
	if rec.Primitives() != 0 {
		t.Errorf("drew %d primitives before failing", rec.Primitives())
	}
}

func TestDrawMissingTeamColor(t *testing.T) {
	cfg := config.Default()
	cfg.Colors.Stones = []string{"#FF0000FF"}
	s := sheetWith(t, sheet.Stone{X: 0, Y: regulation.TeeLine, Team: sheet.Team1})

	err := NewDrawer(cfg).Draw(NewRecorder(CanvasSize(cfg)), s)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("err = %v, want INVALID_CONFIG", err)
	}
}

func TestDrawerCopiesConfig(t *testing.T) {
	cfg := config.Default()
	d := NewDrawer(cfg)
	cfg.Colors.Stones[0] = "#00000000"
	if got := d.Config().Colors.Stones[0]; got != "#FF0000FF" {
		t.Errorf("drawer config changed to %s", got)
	}
}

func TestInPlay(t *testing.T) {
	tests := []struct {
		name  string
		full  bool
		stone sheet.Stone
		want  bool
	}{
		{"tee", false, sheet.Stone{Y: regulation.TeeLine, Team: sheet.Team0}, true},
		{"dummy", false, sheet.Stone{Y: regulation.TeeLine, Team: sheet.Dummy}, false},
		{"before hog", false, sheet.Stone{Y: 10, Team: sheet.Team1}, false},
		{"before hog full", true, sheet.Stone{Y: 10, Team: sheet.Team1}, true},
		{"bottom margin", false, sheet.Stone{Y: regulation.HogLine - regulation.StoneRadius, Team: sheet.Team0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Full = tt.full
			if got := NewDrawer(cfg).InPlay(tt.stone); got != tt.want {
				t.Errorf("InPlay() = %v, want %v", got, tt.want)
			}
		})
	}
}
