package domain

// StatusSummary holds categorized counts derived from one porcelain status
// listing. The zero value is the documented default for "no repository" and
// for probe failure. A summary is immutable once produced.
type StatusSummary struct {
	Untracked  int
	Added      int
	Modified   int
	Renamed    int
	Deleted    int
	Stashed    int
	Unmerged   int
	Ahead      int
	Behind     int
	Diverged   int
	Conflicted int
	Staged     int
}

// IsClean reports whether every category is zero.
func (s StatusSummary) IsClean() bool {
	return s == StatusSummary{}
}
