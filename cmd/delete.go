package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteYes bool

// deleteCmd represents the delete command.
var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a task list",
	Long: `Delete a list by name. Deletion must be confirmed by re-typing the list
name; pass --yes to confirm non-interactively. If the deleted list was
focused, focus shifts to the alphabetically first remaining list.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		s, err := GetStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		confirm := name
		if !deleteYes {
			confirm = promptConfirmation(name)
		}

		if err := s.DeleteList(name, confirm); err != nil {
			return err
		}
		fmt.Printf("Deleted list %q\n", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
}
