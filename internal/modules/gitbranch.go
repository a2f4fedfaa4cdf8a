package modules

import (
	"github.com/xvierd/glint/internal/adapters/git"
	"github.com/xvierd/glint/internal/config"
	"github.com/xvierd/glint/internal/domain"
	"github.com/xvierd/glint/internal/formatter"
	"github.com/xvierd/glint/internal/ports"
	"go.uber.org/zap"
)

var branchVariables = []string{"symbol", "branch", "hash"}

// GitBranch renders the branch module: symbol plus branch name, optionally
// the short commit hash. The branch name is never absent (detached heads
// show as "HEAD"), so the module only vanishes when disabled or outside a
// repository.
func GitBranch(repo *git.Repository, cfg config.GitBranchConfig, log *zap.SugaredLogger) (*Module, error) {
	if repo == nil || cfg.Disabled {
		return nil, nil
	}

	f, err := formatter.New(cfg.Format)
	if err != nil {
		return nil, err
	}

	segments, err := f.Render(&branchResolver{cfg: cfg, repo: repo})
	if err != nil {
		return nil, withSuggestion(err, branchVariables)
	}
	if len(segments) == 0 {
		return nil, nil
	}
	return &Module{Name: "git_branch", Segments: segments}, nil
}

type branchResolver struct {
	cfg  config.GitBranchConfig
	repo *git.Repository
}

var _ ports.Resolver = (*branchResolver)(nil)

func (r *branchResolver) ResolveVariable(name string) ([]domain.Segment, bool) {
	switch name {
	case "symbol":
		if r.cfg.Symbol == "" {
			return nil, true
		}
		return []domain.Segment{{Text: r.cfg.Symbol}}, true
	case "branch":
		return []domain.Segment{{Text: truncate(r.repo.Branch(), r.cfg.TruncationLength)}}, true
	case "hash":
		hash, ok := r.repo.Hash()
		if !ok {
			// Absent, not an error: the rest of the format still renders.
			return nil, true
		}
		if len(hash) > 7 {
			hash = hash[:7]
		}
		return []domain.Segment{{Text: hash}}, true
	}
	return nil, false
}

func (r *branchResolver) ResolveStyle(key string) (domain.Style, bool) {
	if key == "$style" {
		return domain.Style(r.cfg.Style), true
	}
	return domain.Style(key), true
}

// truncate shortens a branch name to length runes, marking the cut. A
// non-positive length disables truncation.
func truncate(branch string, length int) string {
	if length <= 0 {
		return branch
	}
	runes := []rune(branch)
	if len(runes) <= length {
		return branch
	}
	return string(runes[:length]) + "…"
}
