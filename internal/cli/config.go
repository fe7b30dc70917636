package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/curlviz/pkg/config"
)

const (
	targetStdout = "stdout"
	targetStderr = "stderr"
)

type configOpts struct {
	output string // stdout, stderr or a file path
	format string // json or toml; empty picks from the file extension
}

// configCommand prints the default drawing configuration.
func (c *CLI) configCommand() *cobra.Command {
	opts := configOpts{output: targetStdout}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the default configuration",
		Long: `Print the default drawing configuration.

The output can be edited and passed to "curlviz export -c".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "stdout, stderr or a file path")
	cmd.Flags().StringVar(&opts.format, "format", "", "json or toml (default: from the output extension, else json)")

	return cmd
}

func runConfig(stdout, stderr io.Writer, opts configOpts) error {
	format, err := configFormat(opts)
	if err != nil {
		return err
	}
	cfg := config.Default()

	switch strings.ToLower(opts.output) {
	case targetStdout, "":
		return config.Write(stdout, cfg, format)
	case targetStderr:
		return config.Write(stderr, cfg, format)
	}

	f, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("create %s: %w", opts.output, err)
	}
	if err := config.Write(f, cfg, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", opts.output, err)
	}

	printSuccess("Wrote default configuration")
	printFile(opts.output)
	return nil
}

func configFormat(opts configOpts) (config.Format, error) {
	if opts.format != "" {
		return config.ParseFormat(opts.format)
	}
	switch strings.ToLower(opts.output) {
	case targetStdout, targetStderr, "":
		return config.FormatJSON, nil
	}
	return config.FormatFromPath(opts.output), nil
}
