package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show all task lists",
	Long:    `Print every list name in alphabetical order, with the focused list marked by an asterisk.`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := GetStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		snap, err := s.Snapshot()
		if err != nil {
			return err
		}

		names := snap.ListNames()
		if len(names) == 0 {
			fmt.Println("No lists yet. Create one with 'todo create <name>'.")
			return nil
		}
		sort.Strings(names)

		for _, name := range names {
			marker := " "
			if snap.Focused != nil && *snap.Focused == name {
				marker = "*"
			}
			fmt.Printf("%s %s\n", marker, name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
