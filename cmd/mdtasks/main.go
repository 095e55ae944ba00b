// Command mdtasks is a personal task tracker that stores each task as a
// markdown file with a front matter metadata block, and binds task status
// to a git branch workflow.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crooy/mdtasks/internal/config"
	"github.com/crooy/mdtasks/internal/debug"
	"github.com/crooy/mdtasks/internal/gitflow"
	"github.com/crooy/mdtasks/internal/store"
	"github.com/crooy/mdtasks/internal/ui"
)

var version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "mdtasks",
	Short:   "Markdown task manager",
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.SetVerbose(verbose)
		if err := config.Initialize(); err != nil {
			FatalError("%v", err)
		}
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
}

// FatalError prints a styled error message and exits non-zero. Used by
// command Run functions for any propagated error.
func FatalError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ui.RenderErr("Error:"), fmt.Sprintf(format, args...))
	os.Exit(1)
}

// openStore returns the task store over the configured storage root.
func openStore() *store.Store {
	return store.New(config.TasksDir(), config.TaskExtension())
}

// newWorkflow returns the git workflow controller wired to the configured
// trunk, branch prefix, and remote.
func newWorkflow() *gitflow.Controller {
	return gitflow.New(openStore(), gitflow.ExecRunner{}, gitflow.Options{
		Trunk:  config.TrunkBranch(),
		Prefix: config.BranchPrefix(),
		Remote: config.Remote(),
	}, os.Stdout)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		FatalError("%v", err)
	}
}
