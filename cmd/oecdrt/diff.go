package main

import (
	"fmt"
	"io"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/ilcovid/oecdrt/internal/fsx"
	"github.com/ilcovid/oecdrt/internal/runtimex"
	"github.com/spf13/cobra"
)

func registerDiff(rootCmd *cobra.Command, globalOptions *Options) {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "diff OLD NEW",
		Short: "Shows a unified diff between two output files of different runs",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			diffMain(args[0], args[1], cmd.OutOrStdout())
		},
	})
}

// diffMain prints nothing when the two files are identical.
func diffMain(oldPath, newPath string, stdout io.Writer) {
	oldData := string(runtimex.Try1(fsx.ReadFile(oldPath)))
	newData := string(runtimex.Try1(fsx.ReadFile(newPath)))
	edits := myers.ComputeEdits(span.URIFromPath(oldPath), oldData, newData)
	fmt.Fprint(stdout, gotextdiff.ToUnified(oldPath, newPath, oldData, edits))
}
