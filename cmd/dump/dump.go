/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package dump

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xiaomi388/result-management/pkg/app"
	"github.com/xiaomi388/result-management/pkg/persistence"
	"github.com/xiaomi388/result-management/pkg/report"
)

var out *string

// DumpCmd represents the dump command
var DumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "write the student report to a file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := app.Open(false)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := report.Dump(*out, a.Store.Roster()); err != nil {
			return fmt.Errorf("failed to dump report: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Successfully generated report file: %q.\n", *out)
		return nil
	},
}

func init() {
	out = DumpCmd.Flags().String("out", persistence.DefaultReportPath, "report file")
}
