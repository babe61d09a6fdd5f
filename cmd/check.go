package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/seqprove/internal/oracle"
	"github.com/gnolang/seqprove/internal/search"
	"github.com/gnolang/seqprove/prove"
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Prove claims, replay each derivation and compare with classical validity",
	Long: `Runs the prover, re-applies every recorded rule to make sure the derivation
replays, and decides each claim with a SAT solver. Open claims are reported
with a falsifying valuation.
Example) seqprove check examples/`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			logger.Error("Please provide a claim file or directory")
			exit(1)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		opts, engine, err := setupProver(cmd, true)
		if err != nil {
			logger.Error("Failed to initialize prover", zap.Error(err))
			exit(1)
			return
		}

		ok, err := runCheck(ctx, logger, engine, args, opts, cmd.OutOrStdout())
		if err != nil {
			logger.Error("Error checking claims", zap.Error(err))
			exit(1)
			return
		}
		if !ok {
			exit(1)
		}
	},
}

func init() {
	checkCmd.Flags().BoolVar(&parallel, "parallel", false, "Search the branches of branching rules concurrently")
	checkCmd.Flags().BoolVar(&showStats, "stats", false, "Print derivation statistics")
}

// runCheck reports one line per claim. It returns false when a claim is
// open, a derivation fails to replay, or the derivation and the classical
// verdict disagree.
func runCheck(ctx context.Context, logger *zap.Logger, engine prove.Engine, paths []string, opts renderOptions, w io.Writer) (bool, error) {
	results, err := prove.ProcessFiles(ctx, logger, engine, paths, prove.ProcessFile)
	if err != nil {
		return false, err
	}

	ok := true
	for _, res := range results {
		status := closedStyle.Sprint("closed")
		if !res.Closed {
			status = openStyle.Sprint("open")
			ok = false
		}
		if _, err := fmt.Fprintf(w, "%s: %s  %s\n", fileStyle.Sprint(res.Filename), res.Claim, status); err != nil {
			return false, err
		}

		if err := search.Verify(res.Tree); err != nil {
			logger.Error("derivation does not replay", zap.String("file", res.Filename), zap.Error(err))
			ok = false
		}

		if res.Classical == nil {
			continue
		}
		if (res.Classical.Verdict == oracle.VerdictValid) != res.Closed {
			logger.Error("derivation disagrees with classical semantics",
				zap.String("file", res.Filename),
				zap.Bool("closed", res.Closed),
				zap.Stringer("verdict", res.Classical.Verdict),
			)
			ok = false
		}
		if _, err := fmt.Fprintln(w, "  "+classicalLine(res)); err != nil {
			return false, err
		}
		if opts.stats {
			if _, err := fmt.Fprintln(w, "  "+statsLine(res.Stats)); err != nil {
				return false, err
			}
		}
	}
	return ok, nil
}
