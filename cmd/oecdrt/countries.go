package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ilcovid/oecdrt/internal/countries"
	"github.com/spf13/cobra"
)

func registerCountries(rootCmd *cobra.Command, globalOptions *Options) {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "countries",
		Short: "Prints the reference and comparison countries with their ISO3 codes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			countriesMain(globalOptions, cmd.OutOrStdout())
		},
	})
}

func countriesMain(options *Options, stdout io.Writer) {
	newLogger(options)
	cfg := mustLoadConfig(options)
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ROLE\tCODE\tNAME")
	row := func(role, name string) {
		code, found := countries.Lookup(name)
		if !found {
			code = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", role, code, name)
	}
	row("reference", cfg.Reference)
	for _, name := range cfg.Comparisons {
		row("comparison", name)
	}
	tw.Flush()
}
