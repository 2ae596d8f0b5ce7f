package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"

	"github.com/apex/log"
	"github.com/ilcovid/oecdrt/internal/manifest"
	"github.com/ilcovid/oecdrt/internal/pipeline"
	"github.com/ilcovid/oecdrt/internal/runtimex"
	"github.com/spf13/cobra"
)

func registerRun(rootCmd *cobra.Command, globalOptions *Options) {
	subCmd := &cobra.Command{
		Use:   "run",
		Short: "Downloads the data, estimates Rt and writes the outputs",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			runMain(ctx, globalOptions, cmd.OutOrStdout())
		},
	}
	rootCmd.AddCommand(subCmd)
	flags := subCmd.Flags()

	flags.StringVarP(
		&globalOptions.OutputDir,
		"output-dir",
		"o",
		"",
		"directory where to write the outputs (default: current directory)",
	)

	flags.StringVar(
		&globalOptions.SourceFile,
		"source-file",
		"",
		"read the wide CSV from the given file rather than downloading it",
	)

	flags.StringVar(
		&globalOptions.Database,
		"database",
		"",
		"also save the run into the given SQLite history database",
	)
}

// runMain runs the pipeline. It panics on failure.
func runMain(ctx context.Context, options *Options, stdout io.Writer) {
	logger := newLogger(options)
	cfg := mustLoadConfig(options)
	runner := &pipeline.Runner{
		Config:         cfg,
		Logger:         logger,
		ProgressWriter: os.Stderr,
		HTTPClient:     http.DefaultClient,
	}
	result := runtimex.Try1(runner.Main(ctx))

	m := result.Manifest
	log.Infof("run %s: %s Rt is %.2f, %d comparison countries, %d excluded",
		m.RunID, m.Reference.Code, m.Reference.LastMean, m.Estimated(), m.Failed())
	for _, r := range m.Countries {
		if r.Status == manifest.StatusFailed {
			fmt.Fprintf(stdout, "excluded %s (%s): %s\n", r.Code, r.Country, r.Reason)
		}
	}
	for _, path := range m.Outputs {
		fmt.Fprintf(stdout, "wrote %s\n", path)
	}
}
