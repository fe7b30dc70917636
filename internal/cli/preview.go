package cli

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/curlviz/pkg/config"
	"github.com/matzehuels/curlviz/pkg/io"
	"github.com/matzehuels/curlviz/pkg/regulation"
	"github.com/matzehuels/curlviz/pkg/render/sink"
	"github.com/matzehuels/curlviz/pkg/sheet"
)

const (
	// previewChrome is the number of terminal rows used by the title and help.
	previewChrome = 3
	// halfBlock draws the upper pixel in the foreground colour and the lower
	// pixel in the background colour.
	halfBlock = "▀"
)

type previewOpts struct {
	config string
}

// previewCommand shows a sheet in the terminal.
func (c *CLI) previewCommand() *cobra.Command {
	var opts previewOpts

	cmd := &cobra.Command{
		Use:   "preview [STONES.json]",
		Short: "Show a sheet in the terminal",
		Long: `Show a sheet in the terminal, scaled to fit the window.

Keys: i toggles inversion, f toggles the full sheet, q quits.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeStoneFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "configuration file (json or toml)")

	return cmd
}

func runPreview(ctx context.Context, args []string, opts previewOpts) error {
	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}
	s := sheet.New()
	title := "empty sheet"
	if len(args) == 1 {
		if s, err = io.ImportJSON(args[0]); err != nil {
			return err
		}
		title = args[0]
	}

	m := newPreviewModel(cfg, s, title, loggerFromContext(ctx))
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// previewModel is the bubbletea model of the preview.
type previewModel struct {
	cfg    config.Config
	sheet  *sheet.Sheet
	title  string
	logger *log.Logger

	width, height int
	frame         string
	err           error
}

func newPreviewModel(cfg config.Config, s *sheet.Sheet, title string, logger *log.Logger) previewModel {
	return previewModel{cfg: cfg, sheet: s, title: title, logger: logger}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "i":
			m.cfg.Inversion = !m.cfg.Inversion
		case "f":
			m.cfg.Full = !m.cfg.Full
		default:
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	default:
		return m, nil
	}
	m.frame, m.err = m.render()
	return m, nil
}

// render rasterises the sheet at the largest ppm that fits the window.
func (m previewModel) render() (string, error) {
	if m.width <= 0 || m.height <= previewChrome {
		return "", nil
	}
	cfg := m.cfg.Clone()
	cfg.PPM = fitPPM(cfg, m.width, m.height-previewChrome)

	img, err := sink.Rasterize(cfg, m.sheet, sink.WithLogger(m.logger))
	if err != nil {
		return "", err
	}
	m.logger.Debug("preview frame", "ppm", cfg.PPM, "size", img.Bounds().Size())
	return halfBlocks(img), nil
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("curlviz") + " " + StyleDim.Render(m.title))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(styleIconError.Render(iconError) + " " + m.err.Error())
	} else {
		b.WriteString(m.frame)
	}
	b.WriteString("\n")

	mode := "hog to back"
	if m.cfg.Full {
		mode = "full sheet"
	}
	if m.cfg.Inversion {
		mode += ", inverted"
	}
	b.WriteString(StyleDim.Render(fmt.Sprintf("%d stones · %s · i invert  f full  q quit", m.sheet.Count(), mode)))
	return b.String()
}

// fitPPM returns the largest ppm at which the canvas fits cols x rows
// terminal cells, with two pixels per cell vertically. It is at least 1.
func fitPPM(cfg config.Config, cols, rows int) int {
	visible := regulation.BackLine - regulation.HogLine
	if cfg.Full {
		visible = regulation.BackLine
	}
	byWidth := float64(cols) / cfg.SheetWidth
	byHeight := float64(2*rows) / (visible + 4*regulation.StoneRadius)
	return max(1, int(math.Floor(math.Min(byWidth, byHeight))))
}

// halfBlocks renders img with one terminal cell per two vertical pixels.
// Transparent pixels show as black.
func halfBlocks(img image.Image) string {
	b := img.Bounds()
	styles := map[[2]string]lipgloss.Style{}

	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			top := hexColor(img.At(x, y))
			bottom := "#000000"
			if y+1 < b.Max.Y {
				bottom = hexColor(img.At(x, y+1))
			}
			key := [2]string{top, bottom}
			st, ok := styles[key]
			if !ok {
				st = lipgloss.NewStyle().Foreground(lipgloss.Color(top)).Background(lipgloss.Color(bottom))
				styles[key] = st
			}
			sb.WriteString(st.Render(halfBlock))
		}
	}
	return sb.String()
}

// hexColor returns c composited over black as #RRGGBB.
func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", r>>8, g>>8, b>>8)
}
