/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/xiaomi388/result-management/cmd/add"
	"github.com/xiaomi388/result-management/cmd/delete"
	"github.com/xiaomi388/result-management/cmd/dump"
	"github.com/xiaomi388/result-management/cmd/form"
	"github.com/xiaomi388/result-management/cmd/list"
	"github.com/xiaomi388/result-management/cmd/migrate"
	"github.com/xiaomi388/result-management/cmd/spreadsheet"
	"github.com/xiaomi388/result-management/pkg/app"
	"github.com/xiaomi388/result-management/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "resultmanagement",
	Short: "Manage a small roster of students and their grades",
	Long: `resultmanagement keeps students (ID, name, class, roll number, section
and subject grades) in a local JSON file.

Run without a subcommand to open the interactive form.`,
	SilenceUsage: true,
	RunE:         form.FormCmd.RunE,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&config.ConfigPath, "config", config.DefaultConfigPath, "config file")
	rootCmd.PersistentFlags().StringVar(&app.DataPath, "data", "", "roster file, overrides storage.path from the config")

	rootCmd.AddCommand(form.FormCmd)
	rootCmd.AddCommand(add.AddCmd)
	rootCmd.AddCommand(delete.DeleteCmd)
	rootCmd.AddCommand(list.ListCmd)
	rootCmd.AddCommand(dump.DumpCmd)
	rootCmd.AddCommand(migrate.MigrateCmd)
	rootCmd.AddCommand(spreadsheet.ExportCmd)
	rootCmd.AddCommand(spreadsheet.ImportCmd)
}
