package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crooy/mdtasks/internal/ui"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task as done",
	Long: `Mark a task as done.

Sets the status to done, stamps the completed date, and marks every
checklist item complete.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tf, err := openStore().MarkDone(args[0])
		if err != nil {
			FatalError("%v", err)
		}
		fmt.Printf("%s marked task %s as done: %s\n", ui.RenderOK("✓"), tf.Task.ID, tf.Task.Title)
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)
}
