package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crooy/mdtasks/internal/ui"
)

var addNoteCmd = &cobra.Command{
	Use:   "add-note <id> <note>",
	Short: "Add note to task",
	Long: `Add a note line to the task's Notes section.

The note is inserted inside "## Notes", creating the section at the end of
the file when it does not exist yet.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		id, note := args[0], args[1]
		if _, err := openStore().AddNote(id, note); err != nil {
			FatalError("%v", err)
		}
		fmt.Printf("%s added note to task %s: %s\n", ui.RenderOK("✓"), id, note)
	},
}

func init() {
	rootCmd.AddCommand(addNoteCmd)
}
