package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crooy/mdtasks/internal/ui"
)

var startCmd = &cobra.Command{
	Use:   "start <id>",
	Short: "Mark a task as started/active",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tf, err := openStore().MarkStarted(args[0])
		if err != nil {
			FatalError("%v", err)
		}
		fmt.Printf("%s started task %s: %s\n", ui.RenderOK("✓"), tf.Task.ID, tf.Task.Title)
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
