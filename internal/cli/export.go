package cli

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/curlviz/pkg/config"
	"github.com/matzehuels/curlviz/pkg/io"
	"github.com/matzehuels/curlviz/pkg/render"
	"github.com/matzehuels/curlviz/pkg/render/sink"
	"github.com/matzehuels/curlviz/pkg/sheet"
)

// exportOpts holds the flags of the export command.
type exportOpts struct {
	output string // output path; its extension selects the format
	config string // configuration file (JSON or TOML)
	format string // pdf, svg or png when no output path is given
}

// exportCommand renders a stone file to an image.
func (c *CLI) exportCommand() *cobra.Command {
	opts := exportOpts{format: string(sink.FormatPDF)}

	cmd := &cobra.Command{
		Use:   "export STONES.json",
		Short: "Export a sheet image with the given stones",
		Long: `Export a sheet image with the given stones.

Without -o the image is written next to the stone file with the extension
replaced. With -o the format follows the output extension.`,
		Example: `  curlviz export end3.json
  curlviz export end3.json --format png
  curlviz export end3.json -o out/end3.svg -c club.toml`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeStoneFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (format from extension)")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "configuration file (json or toml)")
	cmd.Flags().StringVar(&opts.format, "format", opts.format, "output format: pdf, svg, png")
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)

	return cmd
}

func runExport(ctx context.Context, input string, opts exportOpts) error {
	logger := loggerFromContext(ctx)

	format, output, err := exportTarget(input, opts)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}
	s, err := io.ImportJSON(input)
	if err != nil {
		return err
	}
	logger.Debug("loaded stones", "file", input, "count", s.Count())

	stream, err := sink.New(format, output, cfg, sink.WithLogger(logger))
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	if err := newExportSpinner(stream).run(ctx, func() error { return stream.Export(s) }); err != nil {
		return err
	}
	prog.done("Exported " + stream.Path())

	printSuccess("Exported %s", strings.ToUpper(string(format)))
	printFile(stream.Path())
	visible := inPlay(cfg, s)
	printStats(s.Count(), visible)
	if visible == 0 && s.Count() > 0 {
		printWarning("No stone is inside the drawn area; try --config with \"full\": true")
	}
	return nil
}

// exportTarget picks the output format and path. An output path with an
// extension decides the format; otherwise the format flag does and the
// default path is the input path with its extension replaced.
func exportTarget(input string, opts exportOpts) (sink.Format, string, error) {
	if opts.output != "" && filepath.Ext(opts.output) != "" {
		f, err := sink.FormatFromPath(opts.output)
		return f, opts.output, err
	}

	f, err := sink.ParseFormat(opts.format)
	if err != nil {
		return "", "", err
	}
	if opts.output != "" {
		return f, opts.output, nil
	}
	return f, basePath(input) + f.Ext(), nil
}

// basePath strips the extension from path.
func basePath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// inPlay counts the stones that are drawn with cfg.
func inPlay(cfg config.Config, s *sheet.Sheet) int {
	d := render.NewDrawer(cfg)
	n := 0
	for _, st := range s.Stones() {
		if d.InPlay(st) {
			n++
		}
	}
	return n
}
