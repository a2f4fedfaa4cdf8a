package modules

import (
	"strconv"

	"github.com/xvierd/glint/internal/adapters/git"
	"github.com/xvierd/glint/internal/config"
	"github.com/xvierd/glint/internal/domain"
	"github.com/xvierd/glint/internal/formatter"
	"github.com/xvierd/glint/internal/ports"
	"go.uber.org/zap"
)

// allStatusFormat is the ordered category list the `$all_status`
// meta-variable expands to.
const allStatusFormat = "$conflicted$stashed$deleted$renamed$modified$staged$added$untracked"

// aheadBehindFormat is the `$ahead_behind` expansion: diverged wins over a
// plain ahead or behind marker because its template already covers both.
const aheadBehindFormat = "$diverged$ahead$behind"

// statusVariables is everything a git_status format may reference, used for
// typo suggestions.
var statusVariables = []string{
	"all_status", "ahead_behind",
	"conflicted", "stashed", "deleted", "renamed", "modified", "staged",
	"added", "untracked", "ahead", "behind", "diverged",
}

// GitStatus renders the status module for a repository. Categories with a
// zero count vanish rather than rendering as "0"; when every category is
// zero the whole module vanishes and nil is returned. Format errors are
// returned for the caller to log, never partial output.
func GitStatus(repo *git.Repository, cfg config.GitStatusConfig, log *zap.SugaredLogger) (*Module, error) {
	if repo == nil || cfg.Disabled {
		return nil, nil
	}

	f, err := formatter.New(cfg.Format)
	if err != nil {
		return nil, err
	}
	f.WithMeta(func(name string) (string, bool) {
		switch name {
		case "all_status":
			return allStatusFormat, true
		case "ahead_behind":
			return aheadBehindFormat, true
		}
		return "", false
	})

	resolver := &statusResolver{
		cfg:     cfg,
		status:  repo.Status(),
		stashed: repo.StashCount(),
	}
	segments, err := f.Render(resolver)
	if resolver.err != nil {
		return nil, resolver.err
	}
	if err != nil {
		return nil, withSuggestion(err, statusVariables)
	}
	if len(segments) == 0 {
		log.Debugw("git_status has nothing to display")
		return nil, nil
	}
	return &Module{Name: "git_status", Segments: segments}, nil
}

// statusResolver binds the status categories to their configured
// mini-formats. A failing mini-format is remembered in err; the master
// render is then discarded in favor of the typed error.
type statusResolver struct {
	cfg     config.GitStatusConfig
	status  domain.StatusSummary
	stashed int
	err     error
}

var _ ports.Resolver = (*statusResolver)(nil)

func (r *statusResolver) ResolveVariable(name string) ([]domain.Segment, bool) {
	var segments []domain.Segment
	var err error

	switch name {
	case "conflicted":
		segments, err = formatCount(r.cfg.Conflicted, r.status.Conflicted)
	case "stashed":
		segments, err = formatCount(r.cfg.Stashed, r.stashed)
	case "deleted":
		segments, err = formatCount(r.cfg.Deleted, r.status.Deleted)
	case "renamed":
		segments, err = formatCount(r.cfg.Renamed, r.status.Renamed)
	case "modified":
		segments, err = formatCount(r.cfg.Modified, r.status.Modified)
	case "staged":
		segments, err = formatCount(r.cfg.Staged, r.status.Staged)
	case "added":
		segments, err = formatCount(r.cfg.Added, r.status.Added)
	case "untracked":
		segments, err = formatCount(r.cfg.Untracked, r.status.Untracked)
	case "ahead":
		// The diverged template already covers both directions.
		if r.status.Diverged == 0 {
			segments, err = formatCount(r.cfg.Ahead, r.status.Ahead)
		}
	case "behind":
		if r.status.Diverged == 0 {
			segments, err = formatCount(r.cfg.Behind, r.status.Behind)
		}
	case "diverged":
		segments, err = formatDiverged(r.cfg.Diverged, r.status)
	default:
		return nil, false
	}

	if err != nil && r.err == nil {
		r.err = err
	}
	return segments, true
}

func (r *statusResolver) ResolveStyle(key string) (domain.Style, bool) {
	if key == "$style" {
		return domain.Style(r.cfg.Style), true
	}
	// Any other key is an inline style token, e.g. `[$count](green)`.
	return domain.Style(key), true
}

// formatCount evaluates one category mini-format. A zero count produces no
// segments at all: the category vanishes from the output.
func formatCount(format string, count int) ([]domain.Segment, error) {
	if count == 0 {
		return nil, nil
	}
	return formatText(format, map[string]string{
		"count": strconv.Itoa(count),
	})
}

// formatDiverged renders the diverged marker, which may spell out both
// directions via $ahead_count and $behind_count.
func formatDiverged(format string, status domain.StatusSummary) ([]domain.Segment, error) {
	if status.Diverged == 0 {
		return nil, nil
	}
	return formatText(format, map[string]string{
		"count":        strconv.Itoa(status.Diverged),
		"ahead_count":  strconv.Itoa(status.Ahead),
		"behind_count": strconv.Itoa(status.Behind),
	})
}

func formatText(format string, vars map[string]string) ([]domain.Segment, error) {
	f, err := formatter.New(format)
	if err != nil {
		return nil, err
	}
	segments, err := f.Render(&textResolver{vars: vars})
	if err != nil {
		names := make([]string, 0, len(vars))
		for name := range vars {
			names = append(names, name)
		}
		return nil, withSuggestion(err, names)
	}
	return segments, nil
}

// textResolver serves plain string bindings, as mini-formats need.
type textResolver struct {
	vars map[string]string
}

func (r *textResolver) ResolveVariable(name string) ([]domain.Segment, bool) {
	value, ok := r.vars[name]
	if !ok {
		return nil, false
	}
	return []domain.Segment{{Text: value}}, true
}

func (r *textResolver) ResolveStyle(key string) (domain.Style, bool) {
	return domain.Style(key), true
}
