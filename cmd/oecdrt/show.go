package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ilcovid/oecdrt/internal/report"
	"github.com/ilcovid/oecdrt/internal/runtimex"
	"github.com/spf13/cobra"
)

func registerShow(rootCmd *cobra.Command, globalOptions *Options) {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "show FILE",
		Short: "Pretty-prints a CSV file written by the run subcommand",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			showMain(args[0], cmd.OutOrStdout())
		},
	})
}

func showMain(path string, stdout io.Writer) {
	table := runtimex.Try1(report.ReadTable(path))
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, strings.Join(table.Header, "\t")+"\t")
	for _, record := range table.Records {
		for idx, cell := range record {
			if cell == "" {
				record[idx] = "-"
			}
		}
		fmt.Fprintln(tw, strings.Join(record, "\t")+"\t")
	}
	tw.Flush()
}
