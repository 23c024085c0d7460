package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// undoCmd represents the undo command.
var undoCmd = &cobra.Command{
	Use:   "undo <index>...",
	Short: "Mark tasks in the focused list as incomplete",
	Long: `Mark previously completed tasks as incomplete again, by the numbers printed
by 'todo tasks'. Numbers that do not match a task are ignored.`,
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

		if err := s.SetCompletion(indices, false); err != nil {
			return err
		}
		fmt.Println("Reopened tasks", formatIndices(indices))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(undoCmd)
}
