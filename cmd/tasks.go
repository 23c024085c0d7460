package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/todofile/todo/models"
)

var tasksAll bool

// tasksCmd represents the tasks command.
var tasksCmd = &cobra.Command{
	Use:     "tasks",
	Aliases: []string{"ts"},
	Short:   "Show the tasks of the focused list",
	Long: `Print the tasks of the focused list in due-date order, numbered from 1.
The printed numbers are the indices that drop, done and undo accept.
With --all, every list is printed.`,
	Args: cobra.NoArgs,
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

		if !tasksAll {
			list, err := snap.FocusedList()
			if err != nil {
				return err
			}
			printList(list, false)
			return nil
		}

		names := snap.ListNames()
		if len(names) == 0 {
			fmt.Println("No lists yet. Create one with 'todo create <name>'.")
			return nil
		}
		sort.Strings(names)
		for _, name := range names {
			focused := snap.Focused != nil && *snap.Focused == name
			printList(snap.Lists[name], focused)
		}
		return nil
	},
}

func printList(list *models.TodoList, markFocused bool) {
	header := fmt.Sprintf("-- %s --", list.Name)
	if markFocused {
		header = fmt.Sprintf("-- %s (focused) --", list.Name)
	}
	fmt.Println(header)
	for _, line := range list.RenderLines() {
		fmt.Println(line)
	}
}

func init() {
	rootCmd.AddCommand(tasksCmd)

	tasksCmd.Flags().BoolVar(&tasksAll, "all", false, "show tasks of every list, not just the focused one")
}
