package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crooy/mdtasks/internal/task"
	"github.com/crooy/mdtasks/internal/ui"
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Clean up done tasks (delete task files)",
	Long: `Delete the files of all tasks whose status is done.

Prompts for confirmation unless --yes is given. Deleted files remain
recoverable from source-control history.`,
	Run: func(cmd *cobra.Command, args []string) {
		yes, _ := cmd.Flags().GetBool("yes")

		st := openStore()
		files, err := st.LoadAll()
		if err != nil {
			FatalError("%v", err)
		}

		var done []*task.File
		for _, tf := range files {
			if tf.Task.Status == task.StatusDone {
				done = append(done, tf)
			}
		}

		if len(done) == 0 {
			fmt.Println("No done tasks to clean up.")
			return
		}

		fmt.Printf("Found %d done task(s) to clean up:\n", len(done))
		for _, tf := range done {
			fmt.Printf("  - %s: %s\n", tf.Task.ID, tf.Task.Title)
		}

		if !yes && !confirm("Are you sure you want to delete these task files? (y/N): ") {
			fmt.Println("Cleanup cancelled.")
			return
		}

		deleted := 0
		for _, tf := range done {
			if err := st.Remove(tf); err != nil {
				fmt.Fprintf(os.Stderr, "%s %v\n", ui.RenderWarn("!"), err)
				continue
			}
			fmt.Printf("deleted %s\n", ui.Dim(tf.Path))
			deleted++
		}
		fmt.Printf("%s cleaned up %d done task(s)\n", ui.RenderOK("✓"), deleted)
	},
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(input)), "y")
}

func init() {
	cleanupCmd.Flags().BoolP("yes", "y", false, "confirm cleanup without prompting")
	rootCmd.AddCommand(cleanupCmd)
}
