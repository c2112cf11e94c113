package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/cq/config"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

var (
	configPath string
	verbosity  int
	cfg        *config.Config
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "cq",
		Short:         "Parse and lint CSS container queries",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "configuration file (default: nearest "+config.FileName+")")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "log more; repeat for debug output")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newLintCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		if _, ok := err.(exitError); !ok {
			fmt.Fprintln(os.Stderr, "cq:", err)
		}
		os.Exit(1)
	}
}

func setup() error {
	var err error
	cfg, err = config.Resolve(configPath, ".")
	if err != nil {
		return err
	}

	level := max(verbosity, cfg.Logging.Verbosity)
	if cfg.Logging.File != "" {
		commonlog.Configure(level, &cfg.Logging.File)
	} else {
		commonlog.Configure(level, nil)
	}
	if cfg.Path != "" {
		commonlog.GetLogger("cq").Infof("using configuration %s", cfg.Path)
	}
	return nil
}

// exitError makes the process exit non-zero after the command has already
// printed everything the user needs to see.
type exitError struct {
	reason string
}

func (e exitError) Error() string {
	return e.reason
}
