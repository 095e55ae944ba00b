package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crooy/mdtasks/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show task details",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tf, err := openStore().Find(args[0])
		if err != nil {
			FatalError("%v", err)
		}

		t := &tf.Task
		fmt.Printf("Task: %s\n", ui.Bold(t.Title))
		fmt.Printf("ID: %s\n", t.ID)
		fmt.Printf("Status: %s\n", statusOrUnknown(t))
		fmt.Printf("Priority: %s\n", priorityOrDefault(t))
		if len(t.Tags) > 0 {
			fmt.Printf("Tags: %s\n", strings.Join(t.Tags, ", "))
		}
		if t.Project != "" {
			fmt.Printf("Project: %s\n", t.Project)
		}
		if t.Created != "" {
			fmt.Printf("Created: %s\n", t.Created)
		}
		if t.Due != "" {
			fmt.Printf("Due: %s\n", t.Due)
		}
		if t.Started != "" {
			fmt.Printf("Started: %s\n", t.Started)
		}
		if t.Completed != "" {
			fmt.Printf("Completed: %s\n", t.Completed)
		}
		fmt.Printf("%s\n", ui.Dim(tf.Path))

		fmt.Println("\nContent:")
		fmt.Println(tf.Body)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
