package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/seqprove/prove"
)

// initCmd: seqprove init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with the default rule order",
	Run: func(cmd *cobra.Command, args []string) {
		path := cfgFile
		if path == "" {
			path = prove.DefaultConfigPath
		}
		if err := prove.WriteConfig(path, prove.DefaultConfig()); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			exit(1)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created/updated: %s\n", path)
	},
}
