package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ilcovid/oecdrt/internal/fsx"
	"github.com/ilcovid/oecdrt/internal/manifest"
	"github.com/ilcovid/oecdrt/internal/model"
	"github.com/ilcovid/oecdrt/internal/runtimex"
	"github.com/spf13/cobra"
)

func registerHistory(rootCmd *cobra.Command, globalOptions *Options) {
	subCmd := &cobra.Command{
		Use:   "history",
		Short: "Lists the previous runs saved into the history database",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			historyMain(globalOptions, cmd.OutOrStdout())
		},
	}
	rootCmd.AddCommand(subCmd)
	flags := subCmd.Flags()

	flags.StringVar(
		&globalOptions.Database,
		"database",
		"",
		"path of the SQLite history database",
	)

	flags.IntVarP(
		&globalOptions.Limit,
		"limit",
		"n",
		10,
		"maximum number of runs to list",
	)

	flags.StringVar(
		&globalOptions.RunID,
		"run",
		"",
		"print the per-country results of the given run",
	)
}

func historyMain(options *Options, stdout io.Writer) {
	logger := newLogger(options)
	cfg := mustLoadConfig(options)
	runtimex.Assert(cfg.Database != "", "no history database configured")
	runtimex.Assert(fsx.RegularFileExists(cfg.Database), "cannot open the history database")
	store := runtimex.Try1(manifest.OpenStore(cfg.Database, logger))
	defer store.Close()

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	if options.RunID != "" {
		results := runtimex.Try1(store.CountryResults(options.RunID))
		fmt.Fprintln(tw, "CODE\tCOUNTRY\tSTATUS\tREASON\tWINDOWS\tLAST_RT")
		for _, r := range results {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%.3f\n",
				r.Code, r.Country, r.Status, r.Reason, r.Windows, r.LastMean)
		}
		return
	}

	runs := runtimex.Try1(store.ListRuns(options.Limit))
	fmt.Fprintln(tw, "RUN_ID\tSTART\tREFERENCE\tWINDOWS\tESTIMATED\tFAILED")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\n", r.RunID,
			r.StartTime.Format(model.DateLayout+" 15:04:05"), r.Reference, r.Windows, r.Estimated, r.Failed)
	}
}
