package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crooy/mdtasks/internal/task"
	"github.com/crooy/mdtasks/internal/ui"
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Long: `Add a new task with the next sequential id.

Defaults: status=pending, priority=medium, created=today. The file is
written to the tasks directory as <id>-<slug>.md with an empty checklist.

Examples:
  mdtasks add "Fix login bug"
  mdtasks add "Ship v2" --priority high --tags release,api --due 2025-07-01
  mdtasks add "Refactor parser" --notes "see discussion in #42"
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		priority, _ := cmd.Flags().GetString("priority")
		status, _ := cmd.Flags().GetString("status")
		tags, _ := cmd.Flags().GetStringSlice("tags")
		project, _ := cmd.Flags().GetString("project")
		due, _ := cmd.Flags().GetString("due")
		notes, _ := cmd.Flags().GetString("notes")

		t := task.Task{
			Title:    args[0],
			Status:   status,
			Priority: priority,
			Project:  project,
			Due:      due,
		}
		if len(tags) > 0 {
			t.Tags = tags
		}

		tf, err := openStore().Create(t, notes)
		if err != nil {
			FatalError("%v", err)
		}

		fmt.Printf("%s created task %s: %s\n", ui.RenderOK("✓"), tf.Task.ID, tf.Task.Title)
		fmt.Printf("%s\n", ui.Dim(tf.Path))
	},
}

func init() {
	addCmd.Flags().StringP("priority", "r", "", "task priority (low, medium, high)")
	addCmd.Flags().StringP("status", "s", "", "task status (pending, active, done)")
	addCmd.Flags().StringSliceP("tags", "g", nil, "tags for the task")
	addCmd.Flags().StringP("project", "j", "", "project name")
	addCmd.Flags().StringP("due", "d", "", "due date (YYYY-MM-DD)")
	addCmd.Flags().StringP("notes", "n", "", "additional notes/content")
	rootCmd.AddCommand(addCmd)
}
