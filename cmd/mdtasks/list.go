package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crooy/mdtasks/internal/task"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks, optionally filtered by status, tag, or priority.

Filters are case-insensitive substring matches. Tasks missing the filtered
field are excluded when that filter is set.

Examples:
  mdtasks list
  mdtasks list --status pending
  mdtasks list --tag backend --priority high
`,
	Run: func(cmd *cobra.Command, args []string) {
		status, _ := cmd.Flags().GetString("status")
		tag, _ := cmd.Flags().GetString("tag")
		priority, _ := cmd.Flags().GetString("priority")

		files, err := openStore().LoadAll()
		if err != nil {
			FatalError("%v", err)
		}

		var filtered []*task.File
		for _, tf := range files {
			if matchesFilters(&tf.Task, status, tag, priority) {
				filtered = append(filtered, tf)
			}
		}

		if len(filtered) == 0 {
			fmt.Println("No tasks found matching the criteria.")
			return
		}

		fmt.Printf("%-4s %-12s %-8s %-50s\n", "ID", "STATUS", "PRIORITY", "TITLE")
		fmt.Println(strings.Repeat("-", 80))
		for _, tf := range filtered {
			fmt.Printf("%-4s %-12s %-8s %-50s\n",
				tf.Task.ID, statusOrUnknown(&tf.Task), priorityOrDefault(&tf.Task), tf.Task.Title)
		}
	},
}

func matchesFilters(t *task.Task, status, tag, priority string) bool {
	contains := func(haystack, needle string) bool {
		return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
	}

	if status != "" {
		if t.Status == "" || !contains(t.Status, status) {
			return false
		}
	}
	if tag != "" {
		found := false
		for _, tg := range t.Tags {
			if contains(tg, tag) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if priority != "" {
		if t.Priority == "" || !contains(t.Priority, priority) {
			return false
		}
	}
	return true
}

func statusOrUnknown(t *task.Task) string {
	if t.Status == "" {
		return "unknown"
	}
	return t.Status
}

func priorityOrDefault(t *task.Task) string {
	if t.Priority == "" {
		return task.PriorityMedium
	}
	return t.Priority
}

func init() {
	listCmd.Flags().StringP("status", "s", "", "filter by status (pending, active, done)")
	listCmd.Flags().StringP("tag", "t", "", "filter by tag")
	listCmd.Flags().StringP("priority", "p", "", "filter by priority (low, medium, high)")
	rootCmd.AddCommand(listCmd)
}
