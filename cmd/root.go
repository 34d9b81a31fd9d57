package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"illustrated_research_writer/config"
	"illustrated_research_writer/logger"
)

type rootOptions struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
}

var (
	opts rootOptions
	// cfg is populated by the root pre-run hook before any subcommand runs.
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:           "research-writer",
	Short:         "Generate illustrated research papers and find images for them",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return err
		}
		if opts.LogLevel != "" {
			loaded.LogLevel = opts.LogLevel
		}
		if opts.LogFormat != "" {
			loaded.LogFormat = opts.LogFormat
		}
		// stdout is reserved for command output.
		logger.InitWithWriter(loaded.LogLevel, loaded.LogFormat, os.Stderr)
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "config/config.json", "path to config.json (optional)")
	rootCmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level, overrides LOG_LEVEL")
	rootCmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "", "json or console, overrides LOG_FORMAT")

	rootCmd.AddCommand(serveCmd, generateCmd, imagesCmd, translateCmd)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
