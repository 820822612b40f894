package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/spf13/cobra"

	"omibyte.io/ctucanfd/config"
	"omibyte.io/ctucanfd/generator"
	"omibyte.io/ctucanfd/internal/log"
)

type generateOptions struct {
	Config  string
	Targets []string
	All     bool

	In      string
	Block   string
	Package string
	Out     string
}

// GenerateResult reports one written file.
type GenerateResult struct {
	Target string `json:"target"`
	Output string `json:"output"`
	Words  int    `json:"words"`
	Enums  int    `json:"enums"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Go register maps from IP-XACT descriptions",
		Long: `Generate Go register maps from IP-XACT descriptions.

Targets come from the built-in target table or from --config. A single
description can be generated without a target with --in; the result goes to
--out, or to stdout when --out is empty or "-".`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Config, "config", "", "target file (default: built-in targets)")
	cmd.Flags().StringSliceVarP(&opts.Targets, "target", "t", nil, "targets to generate")
	cmd.Flags().BoolVar(&opts.All, "all", false, "generate every target in dependency order")
	cmd.Flags().StringVar(&opts.In, "in", "", "IP-XACT description to generate without a target")
	cmd.Flags().StringVar(&opts.Block, "block", "", "address block of --in (default: the first one)")
	cmd.Flags().StringVar(&opts.Package, "package", "regs", "package name for --in")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "output file for --in")
	cmd.MarkFlagsMutuallyExclusive("in", "target")
	cmd.MarkFlagsMutuallyExclusive("in", "all")
	cmd.MarkFlagsMutuallyExclusive("target", "all")

	return cmd
}

func runGenerate(rootOpts *RootOptions, opts *generateOptions, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd)

	targets, err := selectTargets(opts)
	if err != nil {
		return reportError(formatter, err)
	}

	var results []GenerateResult
	for _, target := range targets {
		formatter.VerboseLog("Generating %s from %s", target.Name, target.Input)

		result, err := generateTarget(target, cmd.OutOrStdout())
		if err != nil {
			return reportError(formatter, err)
		}
		results = append(results, result)
	}

	// Generated source already went to stdout
	if opts.In != "" && isStdout(opts.Out) {
		return nil
	}

	return formatter.Success(results, func(w io.Writer) {
		for _, r := range results {
			fmt.Fprintf(w, "%s: wrote %s (%d words, %d enums)\n", r.Target, r.Output, r.Words, r.Enums)
		}
	})
}

func selectTargets(opts *generateOptions) (config.Targets, error) {
	if opts.In != "" {
		return config.Targets{{
			Name:    filepath.Base(opts.In),
			Input:   opts.In,
			Block:   opts.Block,
			Package: opts.Package,
			Output:  opts.Out,
		}}, nil
	}

	all := config.Default()
	if opts.Config != "" {
		var err error
		if all, err = config.Load(opts.Config); err != nil {
			return nil, WrapExitError(ExitCommandError, "cannot load targets", err)
		}
	}

	if opts.All {
		ordered, err := all.Ordered()
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "cannot order targets", err)
		}
		return ordered, nil
	}

	if len(opts.Targets) == 0 {
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("no target given, use --target, --all or --in (targets: %v)", all.Names()))
	}

	var selected config.Targets
	for _, name := range opts.Targets {
		target, err := all.Find(name)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "cannot select target", err)
		}
		selected = append(selected, target)
	}
	return selected, nil
}

func generateTarget(target config.TargetInfo, stdout io.Writer) (GenerateResult, error) {
	logger := log.WithComponent("generate").With().Str("target", target.Name).Logger()

	m, err := buildFile(target.Input, target.Block)
	if err != nil {
		return GenerateResult{}, err
	}
	logger.Debug().Int("registers", len(m.Registers)).Int("words", len(m.Words)).Msg("built register map")

	var buf bytes.Buffer
	gen := generator.NewGoGenerator(m, generator.Options{
		Package: target.Package,
		Source:  filepath.Base(target.Input),
	})
	if err := gen.Generate(&buf); err != nil {
		return GenerateResult{}, WrapExitError(ExitFailure, "cannot generate "+target.Name, err)
	}

	result := GenerateResult{
		Target: target.Name,
		Output: target.Output,
		Words:  len(m.Words),
		Enums:  len(m.Enums),
	}

	if isStdout(target.Output) {
		result.Output = "-"
		_, err = stdout.Write(buf.Bytes())
		return result, err
	}

	if err := os.MkdirAll(filepath.Dir(target.Output), 0o755); err != nil {
		return GenerateResult{}, WrapExitError(ExitCommandError, "cannot create output directory", err)
	}
	if err := writeAtomic(target.Output, buf.Bytes()); err != nil {
		return GenerateResult{}, WrapExitError(ExitCommandError, "cannot write output", err)
	}
	logger.Info().Str("output", target.Output).Msg("generated")
	return result, nil
}

// writeAtomic replaces path so a failed run never leaves a truncated source
// file behind.
func writeAtomic(path string, data []byte) error {
	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer func() {
		if err := pending.Cleanup(); err != nil {
			logger := log.WithComponent("generate")
			logger.Debug().Err(err).Str("output", path).Msg("cleanup pending file")
		}
	}()

	if _, err := pending.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return pending.CloseAtomicallyReplace()
}

func isStdout(path string) bool {
	return path == "" || path == "-"
}
