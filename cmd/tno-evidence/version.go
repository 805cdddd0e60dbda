package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/tno-evidence/internal/catalog"
	"github.com/pdiddy/tno-evidence/pkg/types"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version, catalog schema, and default thresholds",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		th := types.DefaultThresholds()

		fmt.Fprintf(out, "tno-evidence %s (%s)\n", version, runtime.Version())
		fmt.Fprintf(out, "catalog columns: %d, required: %s\n", len(catalog.Header), strings.Join(catalog.RequiredColumns(), ", "))
		fmt.Fprintf(out, "extreme: a > %g AU, q > %g AU\n", th.ExtremeMinA, th.ExtremeMinQ)
		fmt.Fprintf(out, "kozai:   e > %g, i > %g°, a > %g AU\n", th.KozaiMinE, th.KozaiMinI, th.KozaiMinA)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
