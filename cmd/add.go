package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/todofile/todo/models"
)

var addDate string

// addCmd represents the add command.
var addCmd = &cobra.Command{
	Use:   "add <title>...",
	Short: "Add tasks to the focused list",
	Long: `Append one task per title to the focused list. All added tasks share the
optional due date.

Examples:
  todo add "finish project report"
  todo add "math homework" "physics homework" --date 03/10
  todo add "file taxes" -d 04/15/2026`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var date *models.Date
		if addDate != "" {
			d, err := models.ParseDate(addDate)
			if err != nil {
				return err
			}
			date = d
		}

		s, err := GetStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		if err := s.AddTasks(args, date); err != nil {
			return err
		}
		if len(args) == 1 {
			fmt.Println("Added 1 task")
		} else {
			fmt.Printf("Added %d tasks\n", len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "due date for the added tasks (MM/DD, MM/DD/YY or MM/DD/YYYY)")
}
