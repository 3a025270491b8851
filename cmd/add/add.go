/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package add

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xiaomi388/result-management/pkg/app"
	"github.com/xiaomi388/result-management/pkg/form"
	"github.com/xiaomi388/result-management/pkg/types"
)

var (
	studentID *string
	name      *string
	class     *string
	rollNo    *string
	section   *string
	grades    *string
)

// AddCmd represents the add command
var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "add or update a student",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := app.Open(false)
		if err != nil {
			return err
		}
		defer a.Close()

		fields := form.Fields{
			StudentID: *studentID,
			Name:      *name,
			RollNo:    *rollNo,
			Section:   *section,
			Grades:    *grades,
		}
		fields.SelectClass(types.ClassID(*class))

		notice, err := a.Controller.SubmitAddOrUpdate(&fields)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", notice.Title, notice.Message)
		return nil
	},
}

func init() {
	studentID = AddCmd.Flags().String("id", "", "student ID")
	_ = AddCmd.MarkFlagRequired("id")

	name = AddCmd.Flags().String("name", "", "student name")
	class = AddCmd.Flags().String("class", "", "class the student belongs to")
	rollNo = AddCmd.Flags().String("roll", "", "roll number")
	section = AddCmd.Flags().String("section", "", "section")
	grades = AddCmd.Flags().String("grades", "", "grades as \"Subject:Grade, ...\"")
}
