// Package git probes a working tree by walking up to the nearest .git
// directory and shelling out to the git binary for anything the metadata
// files alone cannot answer.
package git

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/xvierd/glint/internal/domain"
	"github.com/xvierd/glint/internal/ports"
)

// Repository is a point-in-time handle on one working tree. Branch, hash,
// status and stash count are computed lazily, each at most once; concurrent
// first accesses converge on a single computation. A handle lives for one
// prompt render and is never persisted.
type Repository struct {
	// ControlDir is the .git metadata directory.
	ControlDir string
	// RootDir is the working-tree root, an ancestor-or-self of the probed
	// directory.
	RootDir string

	runner ports.CommandRunner

	branchOnce sync.Once
	branch     string

	hashOnce sync.Once
	hash     string
	hashOK   bool

	statusOnce sync.Once
	status     domain.StatusSummary

	stashOnce sync.Once
	stash     int
}

// Discover walks upward from start, inclusive, and returns a handle for the
// first directory that has a .git child. A .git file whose content is a
// `gitdir: ` pointer (linked worktree) counts too. Returns nil when the
// filesystem root is reached without a match.
func Discover(start string, runner ports.CommandRunner) *Repository {
	dir := filepath.Clean(start)
	for {
		if repo := scan(dir, runner); repo != nil {
			return repo
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil
		}
		dir = parent
	}
}

func scan(dir string, runner ports.CommandRunner) *Repository {
	gitPath := filepath.Join(dir, ".git")
	info, err := os.Stat(gitPath)
	if err != nil {
		return nil
	}
	if info.IsDir() {
		return &Repository{ControlDir: gitPath, RootDir: dir, runner: runner}
	}
	if control := readWorktreeLink(gitPath, dir); control != "" {
		return &Repository{ControlDir: control, RootDir: dir, runner: runner}
	}
	return nil
}

// readWorktreeLink resolves a `.git` file of the form `gitdir: <path>`.
func readWorktreeLink(gitPath, dir string) string {
	content, err := os.ReadFile(gitPath)
	if err != nil {
		return ""
	}
	target, ok := strings.CutPrefix(strings.TrimSpace(string(content)), "gitdir: ")
	if !ok {
		return ""
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(dir, target)
	}
	return target
}

// Branch returns the checked-out branch name, reading <ControlDir>/HEAD on
// first call. The name is everything after the last `/` in the file,
// trimmed of trailing whitespace. An unreadable or `/`-less HEAD (detached
// head, unborn repo) yields the literal "HEAD".
func (r *Repository) Branch() string {
	r.branchOnce.Do(func() {
		r.branch = "HEAD"
		content, err := os.ReadFile(filepath.Join(r.ControlDir, "HEAD"))
		if err != nil {
			return
		}
		head := string(content)
		slash := strings.LastIndex(head, "/")
		if slash < 0 {
			return
		}
		r.branch = strings.TrimSpace(head[slash+1:])
	})
	return r.branch
}

// Hash returns the commit hash HEAD resolves to. The second result is false
// when git is unavailable or the resolution fails.
func (r *Repository) Hash() (string, bool) {
	r.hashOnce.Do(func() {
		res, err := r.runner.Run("git", "--git-dir", r.ControlDir, "rev-parse", "HEAD")
		if err != nil || res.ExitCode != 0 {
			return
		}
		r.hash = strings.TrimSpace(res.Stdout)
		r.hashOK = r.hash != ""
	})
	return r.hash, r.hashOK
}

// Status returns the categorized porcelain status summary. The command is
// scoped to this handle's control directory, not the process's working
// directory. Command failure yields the all-zero summary.
func (r *Repository) Status() domain.StatusSummary {
	r.statusOnce.Do(func() {
		res, err := r.runner.Run("git",
			"--git-dir", r.ControlDir,
			"--work-tree", r.RootDir,
			"status", "--porcelain", "--branch")
		if err != nil || res.ExitCode != 0 {
			return
		}
		r.status = ParsePorcelain(res.Stdout)
	})
	return r.status
}

// StashCount returns the number of stash entries, zero when the command
// fails. Stashes never show up in the porcelain listing, so they get their
// own lazily computed field.
func (r *Repository) StashCount() int {
	r.stashOnce.Do(func() {
		res, err := r.runner.Run("git", "--git-dir", r.ControlDir, "stash", "list")
		if err != nil || res.ExitCode != 0 {
			return
		}
		for _, line := range strings.Split(res.Stdout, "\n") {
			if line != "" {
				r.stash++
			}
		}
	})
	return r.stash
}
