package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crooy/mdtasks/internal/ui"
)

var checklistCmd = &cobra.Command{
	Use:   "checklist <id> <item>",
	Short: "Add an item to a task's checklist",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		id, item := args[0], args[1]
		if _, err := openStore().AddChecklistItem(id, item); err != nil {
			FatalError("%v", err)
		}
		fmt.Printf("%s added checklist item to task %s: %s\n", ui.RenderOK("✓"), id, item)
	},
}

var subtasksCmd = &cobra.Command{
	Use:   "subtasks <id>",
	Short: "List subtasks (checklist items) for a task",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		st := openStore()
		tf, err := st.Find(args[0])
		if err != nil {
			FatalError("%v", err)
		}

		items, err := st.ChecklistItems(args[0])
		if err != nil {
			FatalError("%v", err)
		}

		fmt.Printf("Subtasks for task %s: %s\n\n", tf.Task.ID, ui.Bold(tf.Task.Title))
		if len(items) == 0 {
			fmt.Println("  No subtasks found.")
			return
		}
		for _, item := range items {
			fmt.Printf("  %s %s\n", ui.Checkbox(item.Done), item.Text)
		}
	},
}

func init() {
	rootCmd.AddCommand(checklistCmd)
	rootCmd.AddCommand(subtasksCmd)
}
