package cmd

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/seqprove/formatter"
	"github.com/gnolang/seqprove/prove"
)

var (
	outputFormat string
	parallel     bool
	showStats    bool
	outPath      string
)

var proveCmd = &cobra.Command{
	Use:   "prove [paths...]",
	Short: "Search derivations for claim files or directories of .seq files",
	Run:   proveRun,
}

func init() {
	addRenderFlags(proveCmd)
}

// proveRun is shared by the prove subcommand and the root command, so the
// flags are read from whichever command was invoked.
func proveRun(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		logger.Error("Please provide a claim file or directory")
		exit(1)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	opts, engine, err := setupProver(cmd, false)
	if err != nil {
		logger.Error("Failed to initialize prover", zap.Error(err))
		exit(1)
		return
	}

	w, closeOut, err := openOutput(cmd.OutOrStdout(), outPath)
	if err != nil {
		logger.Error("Error creating output file", zap.String("path", outPath), zap.Error(err))
		exit(1)
		return
	}
	defer closeOut()

	allClosed, err := runProve(ctx, logger, engine, args, opts, w)
	if err != nil {
		logger.Error("Error proving claims", zap.Error(err))
		exit(1)
		return
	}
	if !allClosed {
		exit(1)
	}
}

func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "Output format: latex, text or json (default from config)")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "Search the branches of branching rules concurrently")
	cmd.Flags().BoolVar(&showStats, "stats", false, "Print derivation statistics after each tree")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write output to this file instead of stdout")
}

// setupProver merges the configuration file with command line flags.
func setupProver(cmd *cobra.Command, classical bool) (renderOptions, *prove.Prover, error) {
	config, err := prove.LoadConfig(cfgFile)
	if err != nil {
		return renderOptions{}, nil, err
	}
	if cmd.Flags().Changed("format") {
		config.Format = outputFormat
	}
	if cmd.Flags().Changed("parallel") {
		config.Parallel = parallel
	}
	config.Classical = config.Classical || classical

	kind, err := formatter.ParseKind(config.Format)
	if err != nil {
		return renderOptions{}, nil, err
	}
	engine, err := prove.NewProver(config, logger)
	if err != nil {
		return renderOptions{}, nil, err
	}
	return renderOptions{kind: kind, stats: showStats}, engine, nil
}

func runProve(ctx context.Context, logger *zap.Logger, engine prove.Engine, paths []string, opts renderOptions, w io.Writer) (bool, error) {
	results, err := prove.ProcessFiles(ctx, logger, engine, paths, prove.ProcessFile)
	if err != nil {
		return false, err
	}

	if err := printResults(w, results, opts); err != nil {
		return false, err
	}

	for _, res := range results {
		if !res.Closed {
			return false, nil
		}
	}
	return true, nil
}

// openOutput returns def when path is empty.
func openOutput(def io.Writer, path string) (io.Writer, func(), error) {
	if path == "" {
		return def, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
