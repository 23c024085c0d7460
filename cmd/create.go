package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/todofile/todo/models"
)

// createCmd represents the create command.
var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new task list",
	Long: `Create a new, empty task list. If no list is currently focused, the new
list becomes the focused one.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := models.ValidateListName(name); err != nil {
			return err
		}

		s, err := GetStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		if err := s.CreateList(name); err != nil {
			return err
		}
		fmt.Printf("Created list %q\n", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
}
