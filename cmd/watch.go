package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/seqprove/formatter"
	"github.com/gnolang/seqprove/prove"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dirs...]",
	Short: "Re-prove .seq files whenever they change",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			args = []string{"."}
		}

		opts, engine, err := setupProver(cmd, false)
		if err != nil {
			logger.Error("Failed to initialize prover", zap.Error(err))
			exit(1)
			return
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		w := cmd.OutOrStdout()
		watcher := prove.NewWatcher(prove.NewCache(engine, 0), logger,
			func(res prove.Result) {
				if opts.kind != formatter.KindJSON {
					_ = printHeader(w, res, opts.kind)
				}
				if err := printResults(w, []prove.Result{res}, opts); err != nil {
					logger.Error("Error printing result", zap.Error(err))
				}
			},
			func(path string, err error) {
				fmt.Fprintf(w, "%s: %s\n", fileStyle.Sprint(path), openStyle.Sprint(err.Error()))
			},
		)
		if err := watcher.Watch(ctx, args); err != nil {
			logger.Error("Error watching directories", zap.Error(err))
			exit(1)
		}
	},
}

func init() {
	watchCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "Output format: latex, text or json (default from config)")
	watchCmd.Flags().BoolVar(&parallel, "parallel", false, "Search the branches of branching rules concurrently")
}
