// Command siginfo inspects filter chains described in YAML: it prints
// their frequency response, renders their impulse response to WAV and
// exposes the interpolation engine.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	logLevel string
	verbose  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "siginfo:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var g globalFlags

	root := &cobra.Command{
		Use:           "siginfo",
		Short:         "Inspect filter chains and interpolate data",
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return configureLogging(g, cmd.Flags().Changed("log-level"))
		},
	}
	root.SetHelpCommand(&cobra.Command{Hidden: true})

	root.PersistentFlags().StringVar(&g.logLevel, "log-level", defaultLogLevel,
		"Log level (trace, debug, info, warn, error)")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false,
		"Shorthand for --log-level debug")

	root.AddCommand(newResponseCmd(), newIRCmd(), newInterpCmd())
	return root
}

func configureLogging(g globalFlags, explicit bool) error {
	level := g.logLevel
	if g.verbose && !explicit {
		level = "debug"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(os.Stderr)
	return nil
}

// loadChain reads a config file and applies its log level unless the
// command line already raised it.
func loadChain(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil && lvl > logrus.GetLevel() {
		logrus.SetLevel(lvl)
	}
	logrus.WithFields(logrus.Fields{
		"config":      path,
		"sample_rate": cfg.SampleRate,
		"filters":     len(cfg.Filters),
	}).Debug("loaded chain")
	return cfg, nil
}
