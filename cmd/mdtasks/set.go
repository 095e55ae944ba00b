package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crooy/mdtasks/internal/ui"
)

// setField wires a set-* command to the store's single-field mutation path.
func setField(field string) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		id, value := args[0], args[1]
		if _, err := openStore().SetField(id, field, value); err != nil {
			FatalError("%v", err)
		}
		fmt.Printf("%s updated %s for task %s: %s\n", ui.RenderOK("✓"), field, id, value)
	}
}

var setTitleCmd = &cobra.Command{
	Use:   "set-title <id> <title>",
	Short: "Set task title",
	Args:  cobra.ExactArgs(2),
	Run:   setField("title"),
}

var setPriorityCmd = &cobra.Command{
	Use:   "set-priority <id> <priority>",
	Short: "Set task priority",
	Args:  cobra.ExactArgs(2),
	Run:   setField("priority"),
}

var setTagsCmd = &cobra.Command{
	Use:   "set-tags <id> <tags>",
	Short: "Set task tags (comma-separated)",
	Args:  cobra.ExactArgs(2),
	Run:   setField("tags"),
}

var setDueCmd = &cobra.Command{
	Use:   "set-due <id> <due>",
	Short: "Set task due date (YYYY-MM-DD)",
	Args:  cobra.ExactArgs(2),
	Run:   setField("due"),
}

func init() {
	rootCmd.AddCommand(setTitleCmd)
	rootCmd.AddCommand(setPriorityCmd)
	rootCmd.AddCommand(setTagsCmd)
	rootCmd.AddCommand(setDueCmd)
}
