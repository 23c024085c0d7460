package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// dropCmd represents the drop command.
var dropCmd = &cobra.Command{
	Use:   "drop <index>...",
	Short: "Remove tasks from the focused list",
	Long: `Remove tasks by the numbers printed by 'todo tasks'. Numbers that do not
match a task are ignored.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		indices, err := parseIndices(args)
		if err != nil {
			return err
		}

		s, err := GetStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		if err := s.DropTasks(indices); err != nil {
			return err
		}
		fmt.Println("Dropped tasks", formatIndices(indices))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dropCmd)
}
