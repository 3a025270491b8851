/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package list

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xiaomi388/result-management/pkg/app"
)

// ListCmd represents the list command
var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "print every student grouped by class",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := app.Open(false)
		if err != nil {
			return err
		}
		defer a.Close()

		for block := range a.Controller.ListAll() {
			fmt.Fprint(cmd.OutOrStdout(), block)
		}
		return nil
	},
}
