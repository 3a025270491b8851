/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package delete

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xiaomi388/result-management/pkg/app"
	"github.com/xiaomi388/result-management/pkg/form"
	"github.com/xiaomi388/result-management/pkg/types"
)

var (
	studentID *string
	class     *string
	yes       *bool
)

// DeleteCmd represents the delete command
var DeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "delete a student from a class",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := app.Open(false)
		if err != nil {
			return err
		}
		defer a.Close()

		fields := form.Fields{StudentID: *studentID}
		fields.SelectClass(types.ClassID(*class))

		in := bufio.NewReader(cmd.InOrStdin())
		confirm := form.ConfirmFunc(func(title, prompt string) bool {
			if *yes {
				return true
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s [y/N] ", title, prompt)
			answer, _ := in.ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			return answer == "y" || answer == "yes"
		})

		notice, err := a.Controller.SubmitDelete(&fields, confirm)
		if err != nil {
			return err
		}
		if !notice.Empty() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", notice.Title, notice.Message)
		}
		return nil
	},
}

func init() {
	studentID = DeleteCmd.PersistentFlags().String("id", "", "student ID")
	_ = DeleteCmd.MarkPersistentFlagRequired("id")

	class = DeleteCmd.PersistentFlags().String("class", "", "class of the student")
	_ = DeleteCmd.MarkPersistentFlagRequired("class")

	yes = DeleteCmd.PersistentFlags().BoolP("yes", "y", false, "do not ask for confirmation")
}
