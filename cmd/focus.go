package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// focusCmd represents the focus command.
var focusCmd = &cobra.Command{
	Use:   "focus <name>",
	Short: "Focus a task list",
	Long:  `Make the named list the target of task-level commands (add, drop, done, undo, tasks).`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		s, err := GetStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		if err := s.ShiftFocus(name); err != nil {
			return err
		}
		fmt.Printf("Focused list %q\n", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(focusCmd)
}
