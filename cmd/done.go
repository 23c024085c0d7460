package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// doneCmd represents the done command.
var doneCmd = &cobra.Command{
	Use:   "done <index>...",
	Short: "Mark tasks in the focused list as complete",
	Long: `Mark tasks complete by the numbers printed by 'todo tasks'. Numbers that do
not match a task are ignored.`,
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

		if err := s.SetCompletion(indices, true); err != nil {
			return err
		}
		fmt.Println("Completed tasks", formatIndices(indices))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)
}
