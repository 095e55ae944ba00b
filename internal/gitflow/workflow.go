package gitflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/crooy/mdtasks/internal/store"
	"github.com/crooy/mdtasks/internal/task"
	"github.com/crooy/mdtasks/internal/ui"
)

// ErrNotARepository reports that the working directory is not inside a git
// work tree.
var ErrNotARepository = errors.New("not in a git repository")

// WrongBranchError reports a start attempt from a branch other than the
// trunk.
type WrongBranchError struct {
	Expected string
	Actual   string
}

func (e *WrongBranchError) Error() string {
	return fmt.Sprintf("must be on %s branch to start a task branch (current branch: %s)",
		e.Expected, e.Actual)
}

// NotOnTaskBranchError reports a finish attempt from a branch that does not
// carry the task branch prefix.
type NotOnTaskBranchError struct {
	Branch string
}

func (e *NotOnTaskBranchError) Error() string {
	return fmt.Sprintf("not on a task branch (current branch: %s)", e.Branch)
}

// BranchExistsError reports that the derived task branch name is already
// taken.
type BranchExistsError struct {
	Name string
}

func (e *BranchExistsError) Error() string {
	return fmt.Sprintf("branch %q already exists", e.Name)
}

// Options configures the workflow: the trunk branch task branches fork from
// and merge into, the task branch name prefix, and the remote the trunk
// syncs with.
type Options struct {
	Trunk  string
	Prefix string
	Remote string
}

// Controller sequences the git operations and task status transitions of
// the branch workflow. It is synchronous and performs no rollback: a failed
// step halts the sequence and the operator resumes from git's state.
type Controller struct {
	store *store.Store
	git   Runner
	opt   Options
	out   io.Writer
}

// New returns a controller over the given store and git runner. Progress
// messages are written to out.
func New(st *store.Store, git Runner, opt Options, out io.Writer) *Controller {
	return &Controller{store: st, git: git, opt: opt, out: out}
}

// BranchName derives the task branch name: <prefix><id>-<slug of title>.
func (c *Controller) BranchName(t *task.Task) string {
	return c.opt.Prefix + t.ID + "-" + task.Slugify(t.Title)
}

// taskIDFromBranch recovers the task id from a branch name by stripping the
// prefix and taking the substring up to the first hyphen.
func (c *Controller) taskIDFromBranch(branch string) (string, bool) {
	rest, ok := strings.CutPrefix(branch, c.opt.Prefix)
	if !ok {
		return "", false
	}
	id, _, _ := strings.Cut(rest, "-")
	return id, id != ""
}

func (c *Controller) ensureRepo(ctx context.Context) error {
	if _, err := c.git.Run(ctx, "rev-parse", "--is-inside-work-tree"); err != nil {
		return ErrNotARepository
	}
	return nil
}

func (c *Controller) currentBranch(ctx context.Context) (string, error) {
	out, err := c.git.Run(ctx, "branch", "--show-current")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Start begins work on a task: it verifies the preconditions (inside a
// repository, on the trunk, task exists, derived branch name free), syncs
// the trunk from its remote with a rebase-plus-autostash pull, creates and
// switches to the task branch, and transitions a pending task to active.
// Any git failure aborts the sequence with no rollback of completed steps.
func (c *Controller) Start(ctx context.Context, id string) error {
	if err := c.ensureRepo(ctx); err != nil {
		return err
	}

	tf, err := c.store.Find(id)
	if err != nil {
		return err
	}

	branch, err := c.currentBranch(ctx)
	if err != nil {
		return err
	}
	if branch != c.opt.Trunk {
		return &WrongBranchError{Expected: c.opt.Trunk, Actual: branch}
	}

	name := c.BranchName(&tf.Task)
	listed, err := c.git.Run(ctx, "branch", "--list", name)
	if err != nil {
		return err
	}
	if strings.TrimSpace(listed) != "" {
		return &BranchExistsError{Name: name}
	}

	dirty, err := c.git.Run(ctx, "status", "--porcelain")
	if err != nil {
		return err
	}
	if strings.TrimSpace(dirty) != "" {
		fmt.Fprintf(c.out, "%s uncommitted changes will be auto-stashed and restored\n", ui.RenderWarn("!"))
	}

	fmt.Fprintf(c.out, "syncing %s from %s...\n", c.opt.Trunk, c.opt.Remote)
	if _, err := c.git.Run(ctx, "pull", "--rebase", "--autostash", c.opt.Remote, c.opt.Trunk); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "creating branch %s\n", ui.Bold(name))
	if _, err := c.git.Run(ctx, "checkout", "-b", name); err != nil {
		return err
	}

	if tf.Task.Status == task.StatusPending {
		if _, err := c.store.MarkStarted(id); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "marked task %s as active\n", id)
	}

	fmt.Fprintf(c.out, "%s started work on task %s: %s\n", ui.RenderOK("✓"), id, tf.Task.Title)
	return nil
}

// Finish completes the task bound to the current branch: it marks the task
// done (so the status change and checklist completion are included in the
// commit), stages and commits everything, merges the branch back into the
// trunk with an explicit merge commit, deletes the branch, and pushes the
// trunk. A failing step (e.g. a merge conflict) halts the sequence; git
// preserves enough state to resume manually.
func (c *Controller) Finish(ctx context.Context, message string) error {
	if err := c.ensureRepo(ctx); err != nil {
		return err
	}

	branch, err := c.currentBranch(ctx)
	if err != nil {
		return err
	}
	id, ok := c.taskIDFromBranch(branch)
	if !ok {
		return &NotOnTaskBranchError{Branch: branch}
	}

	// Resolve the record before any mutating git command runs, so a stale
	// branch name aborts the whole sequence cleanly.
	tf, err := c.store.Find(id)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "marking task %s as done\n", id)
	if _, err := c.store.MarkDone(id); err != nil {
		return err
	}

	if message == "" {
		message = fmt.Sprintf("feat: %s (task #%s)", tf.Task.Title, id)
	}

	fmt.Fprintf(c.out, "committing changes...\n")
	if _, err := c.git.Run(ctx, "add", "."); err != nil {
		return err
	}
	if _, err := c.git.Run(ctx, "commit", "-m", message); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "merging %s into %s...\n", ui.Bold(branch), c.opt.Trunk)
	if _, err := c.git.Run(ctx, "checkout", c.opt.Trunk); err != nil {
		return err
	}
	if _, err := c.git.Run(ctx, "merge", "--no-ff", branch); err != nil {
		return err
	}
	if _, err := c.git.Run(ctx, "branch", "-d", branch); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "pushing %s to %s...\n", c.opt.Trunk, c.opt.Remote)
	if _, err := c.git.Run(ctx, "push", c.opt.Remote, c.opt.Trunk); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "%s finished task %s: %s\n", ui.RenderOK("✓"), id, tf.Task.Title)
	return nil
}

// Status reports the current branch and, when it matches the task branch
// pattern, the bound task's summary. Read-only: it never mutates the store
// or the repository.
func (c *Controller) Status(ctx context.Context) error {
	if err := c.ensureRepo(ctx); err != nil {
		return err
	}

	branch, err := c.currentBranch(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "current branch: %s\n", ui.Bold(branch))

	if id, ok := c.taskIDFromBranch(branch); ok {
		tf, err := c.store.Find(id)
		if err != nil {
			var nf *store.NotFoundError
			if errors.As(err, &nf) {
				fmt.Fprintf(c.out, "%s task %s not found in %s\n", ui.RenderWarn("!"), id, c.store.Root())
			} else {
				return err
			}
		} else {
			status := tf.Task.Status
			if status == "" {
				status = "unknown"
			}
			priority := tf.Task.Priority
			if priority == "" {
				priority = "none"
			}
			fmt.Fprintf(c.out, "current task: %s - %s\n", id, tf.Task.Title)
			fmt.Fprintf(c.out, "status: %s\n", status)
			fmt.Fprintf(c.out, "priority: %s\n", priority)
		}
	} else {
		fmt.Fprintf(c.out, "no active task branch\n")
	}

	short, err := c.git.Run(ctx, "status", "--short")
	if err != nil {
		return err
	}
	if strings.TrimSpace(short) != "" {
		fmt.Fprintf(c.out, "\n%s", short)
	}
	return nil
}
