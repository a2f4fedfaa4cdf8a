package git

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/xvierd/glint/internal/domain"
	"github.com/xvierd/glint/internal/ports"
)

// stubRunner serves canned results keyed by git subcommand and counts every
// invocation, so tests can verify the memoize-once discipline.
type stubRunner struct {
	mu        sync.Mutex
	calls     int
	results   map[string]ports.ExecResult
	failSpawn bool
}

func (s *stubRunner) Run(program string, args ...string) (ports.ExecResult, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	if s.failSpawn {
		return ports.ExecResult{}, errors.New("spawn failed")
	}
	for _, arg := range args {
		if res, ok := s.results[arg]; ok {
			return res, nil
		}
	}
	return ports.ExecResult{ExitCode: 1}, nil
}

func (s *stubRunner) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func newTestRepo(t *testing.T, runner ports.CommandRunner) *Repository {
	t.Helper()

	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatalf("failed to create .git: %v", err)
	}
	repo := Discover(dir, runner)
	if repo == nil {
		t.Fatal("Discover returned nil for a directory with .git")
	}
	return repo
}

func TestDiscover_NoRepository(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("failed to create dirs: %v", err)
	}

	if repo := Discover(nested, &stubRunner{}); repo != nil {
		t.Errorf("expected nil, got repository rooted at %q", repo.RootDir)
	}
}

func TestDiscover_FindsAncestor(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, ".git"), 0o755); err != nil {
		t.Fatalf("failed to create .git: %v", err)
	}

	// The result must not depend on how deep the probe starts.
	start := root
	for k := 0; k < 4; k++ {
		repo := Discover(start, &stubRunner{})
		if repo == nil {
			t.Fatalf("Discover from depth %d returned nil", k)
		}
		if repo.RootDir != root {
			t.Errorf("depth %d: RootDir = %q, want %q", k, repo.RootDir, root)
		}
		if repo.ControlDir != filepath.Join(root, ".git") {
			t.Errorf("depth %d: ControlDir = %q", k, repo.ControlDir)
		}

		start = filepath.Join(start, "sub")
		if err := os.MkdirAll(start, 0o755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
	}
}

func TestDiscover_WorktreeLink(t *testing.T) {
	base := t.TempDir()
	control := filepath.Join(base, "main", ".git", "worktrees", "wt")
	if err := os.MkdirAll(control, 0o755); err != nil {
		t.Fatalf("failed to create control dir: %v", err)
	}
	worktree := filepath.Join(base, "wt")
	if err := os.Mkdir(worktree, 0o755); err != nil {
		t.Fatalf("failed to create worktree: %v", err)
	}
	link := []byte("gitdir: " + control + "\n")
	if err := os.WriteFile(filepath.Join(worktree, ".git"), link, 0o644); err != nil {
		t.Fatalf("failed to write .git link: %v", err)
	}

	repo := Discover(worktree, &stubRunner{})
	if repo == nil {
		t.Fatal("Discover returned nil for a linked worktree")
	}
	if repo.ControlDir != control {
		t.Errorf("ControlDir = %q, want %q", repo.ControlDir, control)
	}
	if repo.RootDir != worktree {
		t.Errorf("RootDir = %q, want %q", repo.RootDir, worktree)
	}
}

func TestBranch_FromInitializedRepository(t *testing.T) {
	dir := t.TempDir()
	if _, err := gogit.PlainInit(dir, false); err != nil {
		t.Fatalf("failed to init repository: %v", err)
	}

	repo := Discover(dir, &stubRunner{})
	if repo == nil {
		t.Fatal("Discover returned nil")
	}
	if got := repo.Branch(); got != "master" {
		t.Errorf("Branch() = %q, want %q", got, "master")
	}
}

func TestBranch_HeadReferenceShapes(t *testing.T) {
	tests := []struct {
		name string
		head string
		want string
	}{
		{"branch ref", "ref: refs/heads/main\n", "main"},
		{"nested branch ref", "ref: refs/heads/feature/login\n", "login"},
		{"detached head", "0123456789abcdef0123456789abcdef01234567\n", "HEAD"},
		{"empty file", "", "HEAD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepo(t, &stubRunner{})
			head := filepath.Join(repo.ControlDir, "HEAD")
			if err := os.WriteFile(head, []byte(tt.head), 0o644); err != nil {
				t.Fatalf("failed to write HEAD: %v", err)
			}

			if got := repo.Branch(); got != tt.want {
				t.Errorf("Branch() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBranch_UnreadableHeadFallsBack(t *testing.T) {
	repo := newTestRepo(t, &stubRunner{})
	// No HEAD file at all.
	if got := repo.Branch(); got != "HEAD" {
		t.Errorf("Branch() = %q, want %q", got, "HEAD")
	}
}

func TestStatus_ParsesListing(t *testing.T) {
	runner := &stubRunner{results: map[string]ports.ExecResult{
		"status": {Stdout: " M a\n?? b\n"},
	}}
	repo := newTestRepo(t, runner)

	want := domain.StatusSummary{Modified: 1, Untracked: 1}
	if got := repo.Status(); got != want {
		t.Errorf("Status() = %+v, want %+v", got, want)
	}
}

func TestStatus_ComputedAtMostOnce(t *testing.T) {
	runner := &stubRunner{results: map[string]ports.ExecResult{
		"status": {Stdout: " M a\n"},
	}}
	repo := newTestRepo(t, runner)

	first := repo.Status()
	second := repo.Status()

	if first != second {
		t.Errorf("results differ: %+v vs %+v", first, second)
	}
	if got := runner.callCount(); got != 1 {
		t.Errorf("external command ran %d times, want 1", got)
	}
}

func TestStatus_ConcurrentFirstAccess(t *testing.T) {
	runner := &stubRunner{results: map[string]ports.ExecResult{
		"status": {Stdout: "?? a\n"},
	}}
	repo := newTestRepo(t, runner)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := repo.Status().Untracked; got != 1 {
				t.Errorf("Untracked = %d, want 1", got)
			}
		}()
	}
	wg.Wait()

	if got := runner.callCount(); got != 1 {
		t.Errorf("external command ran %d times, want 1", got)
	}
}

func TestStatus_CommandFailureYieldsDefault(t *testing.T) {
	repo := newTestRepo(t, &stubRunner{failSpawn: true})

	if got := repo.Status(); !got.IsClean() {
		t.Errorf("Status() = %+v, want all-zero default", got)
	}
}

func TestStatus_NonzeroExitYieldsDefault(t *testing.T) {
	// The stub returns exit code 1 for anything it has no result for.
	repo := newTestRepo(t, &stubRunner{})

	if got := repo.Status(); !got.IsClean() {
		t.Errorf("Status() = %+v, want all-zero default", got)
	}
}

func TestHash_ResolvesAndTrims(t *testing.T) {
	runner := &stubRunner{results: map[string]ports.ExecResult{
		"rev-parse": {Stdout: "0123456789abcdef0123456789abcdef01234567\n"},
	}}
	repo := newTestRepo(t, runner)

	hash, ok := repo.Hash()
	if !ok {
		t.Fatal("Hash() reported failure")
	}
	if hash != "0123456789abcdef0123456789abcdef01234567" {
		t.Errorf("Hash() = %q", hash)
	}

	// Memoized: a second call must not rerun the command.
	repo.Hash()
	if got := runner.callCount(); got != 1 {
		t.Errorf("external command ran %d times, want 1", got)
	}
}

func TestHash_FailureReportsNone(t *testing.T) {
	repo := newTestRepo(t, &stubRunner{})

	if _, ok := repo.Hash(); ok {
		t.Error("Hash() reported success for a failing command")
	}
}

func TestStashCount(t *testing.T) {
	runner := &stubRunner{results: map[string]ports.ExecResult{
		"stash": {Stdout: "stash@{0}: WIP on main\nstash@{1}: WIP on main\n"},
	}}
	repo := newTestRepo(t, runner)

	if got := repo.StashCount(); got != 2 {
		t.Errorf("StashCount() = %d, want 2", got)
	}
	repo.StashCount()
	if got := runner.callCount(); got != 1 {
		t.Errorf("external command ran %d times, want 1", got)
	}
}
