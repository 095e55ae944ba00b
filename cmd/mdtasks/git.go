package main

import (
	"context"

	"github.com/spf13/cobra"
)

var gitCmd = &cobra.Command{
	Use:   "git",
	Short: "Git branch workflow for tasks",
	Long: `Bind a task's status to a git branch workflow.

"start" forks a task branch off the trunk, "finish" merges it back with an
explicit merge commit and pushes, "status" reports the current binding.

Examples:
  mdtasks git start 007
  mdtasks git finish
  mdtasks git finish "fix: handle nil session"
  mdtasks git status
`,
}

var gitStartCmd = &cobra.Command{
	Use:   "start <id>",
	Short: "Start a git branch for a task",
	Long: `Start work on a task in a dedicated branch.

Requires a clean precondition set: inside a git repository, on the trunk
branch, the task exists, and the derived branch name is free. The trunk is
synced from its remote with a rebase-plus-autostash pull before the branch
is created. A pending task transitions to active.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := newWorkflow().Start(context.Background(), args[0]); err != nil {
			FatalError("%v", err)
		}
	},
}

var gitFinishCmd = &cobra.Command{
	Use:   "finish [message]",
	Short: "Finish the current task branch and merge to trunk",
	Long: `Finish the task bound to the current branch.

Marks the task done (checklist included), commits all changes with the
given message (default: "feat: <title> (task #<id>)"), merges the branch
into the trunk with --no-ff, deletes it, and pushes the trunk. A failing
step halts the sequence; git state is left for manual recovery.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		message := ""
		if len(args) > 0 {
			message = args[0]
		}
		if err := newWorkflow().Finish(context.Background(), message); err != nil {
			FatalError("%v", err)
		}
	},
}

var gitStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show git status and current task",
	Run: func(cmd *cobra.Command, args []string) {
		if err := newWorkflow().Status(context.Background()); err != nil {
			FatalError("%v", err)
		}
	},
}

func init() {
	gitCmd.AddCommand(gitStartCmd)
	gitCmd.AddCommand(gitFinishCmd)
	gitCmd.AddCommand(gitStatusCmd)
	rootCmd.AddCommand(gitCmd)
}
