/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package spreadsheet

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/xiaomi388/result-management/pkg/app"
	"github.com/xiaomi388/result-management/pkg/spreadsheet"
	"github.com/xiaomi388/result-management/pkg/types"
)

var (
	exportPath *string
	importPath *string
	class      *string
)

// ExportCmd writes the roster to an xlsx workbook.
var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "export the roster to an xlsx workbook, one sheet per class",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := app.Open(false)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := spreadsheet.Export(*exportPath, a.Store.Roster()); err != nil {
			return fmt.Errorf("failed to export roster: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d student(s) to %q.\n", a.Store.Roster().Students(), *exportPath)
		return nil
	},
}

// ImportCmd upserts the students of one class from an xlsx workbook.
var ImportCmd = &cobra.Command{
	Use:   "import",
	Short: "import students of a class from an xlsx workbook",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := app.Open(false)
		if err != nil {
			return err
		}
		defer a.Close()

		if !a.Config.HasClass(types.ClassID(*class)) {
			return fmt.Errorf("unknown class %q, expected one of %v", *class, a.Config.Classes)
		}

		file, err := os.Open(*importPath)
		if err != nil {
			return fmt.Errorf("failed to open workbook: %w", err)
		}
		defer file.Close()

		rows, err := spreadsheet.ReadRows(file, types.ClassID(*class))
		if err != nil {
			return err
		}

		imported := 0
		var rejected error
		for i, row := range rows {
			if _, _, err := a.Controller.Apply(row); err != nil {
				logrus.WithFields(logrus.Fields{"row": i + 2, "id": row.StudentID}).WithError(err).Warn("skipping row")
				rejected = errors.Join(rejected, fmt.Errorf("row %d: %w", i+2, err))
				continue
			}
			imported++
		}

		if imported > 0 {
			if err := a.Store.Save(); err != nil {
				return err
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d student(s) into class %s.\n", imported, len(rows), *class)
		return rejected
	},
}

func init() {
	exportPath = ExportCmd.Flags().String("out", "roster.xlsx", "workbook to write")

	importPath = ImportCmd.Flags().String("file", "", "workbook to read")
	_ = ImportCmd.MarkFlagRequired("file")
	class = ImportCmd.Flags().String("class", "", "class the students belong to")
	_ = ImportCmd.MarkFlagRequired("class")
}
