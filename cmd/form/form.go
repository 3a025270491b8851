/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package form

import (
	"github.com/spf13/cobra"
	"github.com/xiaomi388/result-management/pkg/app"
	"github.com/xiaomi388/result-management/pkg/tui"
)

// FormCmd represents the form command
var FormCmd = &cobra.Command{
	Use:   "form",
	Short: "open the interactive student form",
	RunE: func(_ *cobra.Command, _ []string) error {
		a, err := app.Open(true)
		if err != nil {
			return err
		}
		defer a.Close()

		return tui.Run(a.Controller)
	},
}
