// Command oecdrt compares the effective reproduction number of Israel
// with the distribution of the OECD countries.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/ilcovid/oecdrt/internal/config"
	"github.com/ilcovid/oecdrt/internal/logx"
	"github.com/ilcovid/oecdrt/internal/model"
	"github.com/ilcovid/oecdrt/internal/runtimex"
	"github.com/ilcovid/oecdrt/internal/version"
	"github.com/spf13/cobra"
)

// Options contains the command line options.
type Options struct {
	Config     string
	Database   string
	Emoji      bool
	Limit      int
	OutputDir  string
	RunID      string
	SourceFile string
	Verbose    bool
}

func main() {
	defer func() {
		if s := recover(); s != nil {
			fmt.Fprintf(os.Stderr, "FATAL: %s\n", s)
			os.Exit(1)
		}
	}()
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand creates the root command writing its output to stdout.
func newRootCommand(stdout io.Writer) *cobra.Command {
	var globalOptions Options
	rootCmd := &cobra.Command{
		Use:     "oecdrt",
		Short:   "oecdrt compares Israel's Rt with the OECD countries",
		Args:    cobra.NoArgs,
		Version: version.Version,
	}
	rootCmd.SetVersionTemplate("{{ .Version }}\n")
	rootCmd.SetOut(stdout)
	flags := rootCmd.PersistentFlags()

	flags.StringVarP(
		&globalOptions.Config,
		"config",
		"c",
		"",
		"read the configuration from the given HuJSON file",
	)

	flags.BoolVar(
		&globalOptions.Emoji,
		"emoji",
		false,
		"whether to use emojis when logging",
	)

	flags.BoolVarP(
		&globalOptions.Verbose,
		"verbose",
		"v",
		false,
		"increase verbosity level",
	)

	registerRun(rootCmd, &globalOptions)
	registerCountries(rootCmd, &globalOptions)
	registerHistory(rootCmd, &globalOptions)
	registerShow(rootCmd, &globalOptions)
	registerDiff(rootCmd, &globalOptions)
	return rootCmd
}

// newLogger configures apex/log and returns the logger to use.
func newLogger(options *Options) model.Logger {
	logHandler := logx.NewHandlerWithDefaultSettings()
	logHandler.Emoji = options.Emoji
	logger := &log.Logger{Level: log.InfoLevel, Handler: logHandler}
	if options.Verbose {
		logger.Level = log.DebugLevel
	}
	log.Log = logger
	return logger
}

// mustLoadConfig returns the configuration with the command line
// overrides applied. It panics if the configuration is invalid.
func mustLoadConfig(options *Options) config.Config {
	cfg := config.Default()
	if options.Config != "" {
		log.Debugf("reading config from %s", options.Config)
		cfg = runtimex.Try1(config.Read(options.Config))
	}
	if options.OutputDir != "" {
		cfg.Outputs.Dir = options.OutputDir
	}
	if options.SourceFile != "" {
		cfg.SourceFile = options.SourceFile
	}
	if options.Database != "" {
		cfg.Database = options.Database
	}
	runtimex.PanicOnError(cfg.Validate(), "invalid configuration")
	return cfg
}
