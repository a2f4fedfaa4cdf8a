package git

import (
	"strconv"
	"strings"

	"github.com/xvierd/glint/internal/domain"
)

// conflictCodes are the two-character unmerged states git documents for the
// short status format. Other equal-letter pairs (notably `??` and `MM`) are
// not conflicts and must not be counted as such.
var conflictCodes = map[string]bool{
	"DD": true,
	"AU": true,
	"UD": true,
	"UA": true,
	"DU": true,
	"AA": true,
	"UU": true,
}

// ParsePorcelain converts the output of `git status --porcelain --branch`
// into categorized counts. Every line lands in at most one category; lines
// with codes outside the mapping are ignored, since unrecognized codes show
// up across git versions and are not an error.
func ParsePorcelain(listing string) domain.StatusSummary {
	var status domain.StatusSummary

	for _, line := range strings.Split(listing, "\n") {
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "## ") {
			parseBranchHeader(line, &status)
			continue
		}

		runes := []rune(line)
		index, worktree := ' ', ' '
		if len(runes) > 0 {
			index = runes[0]
		}
		if len(runes) > 1 {
			worktree = runes[1]
		}

		switch {
		case index == '?' && worktree == '?':
			// The untracked marker is a literal equal pair but not a
			// conflict.
			status.Untracked++
		case conflictCodes[string([]rune{index, worktree})]:
			status.Conflicted++
		case worktree != ' ':
			incrementStatus(&status, worktree)
		default:
			incrementStatus(&status, index)
		}
	}

	return status
}

// incrementStatus bumps the category for one short-format status letter.
// https://git-scm.com/docs/git-status#_short_format
func incrementStatus(status *domain.StatusSummary, letter rune) {
	switch letter {
	case 'A':
		status.Added++
	case 'M':
		status.Modified++
	case 'D':
		status.Deleted++
	case 'R':
		status.Renamed++
	case 'C':
		// A copy is a new file as far as the prompt is concerned.
		status.Added++
	case 'U':
		status.Modified++
	case '?':
		status.Untracked++
	}
}

// parseBranchHeader reads the `## branch...upstream [ahead N, behind M]`
// header emitted by --branch. Only the ahead/behind suffix matters here.
func parseBranchHeader(line string, status *domain.StatusSummary) {
	open := strings.LastIndex(line, "[")
	if open < 0 || !strings.HasSuffix(line, "]") {
		return
	}
	inner := line[open+1 : len(line)-1]

	for _, part := range strings.Split(inner, ",") {
		fields := strings.Fields(part)
		if len(fields) != 2 {
			continue
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}
		switch fields[0] {
		case "ahead":
			status.Ahead = n
		case "behind":
			status.Behind = n
		}
	}

	if status.Ahead > 0 && status.Behind > 0 {
		status.Diverged = 1
	}
}
