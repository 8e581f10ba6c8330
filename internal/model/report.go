package model

// FileResult describes what processing did to a single file.
type FileResult struct {
	Path         Path
	Changed      bool
	ChangedLines int
	Unresolved   []Specifier
}

// FileResults is an ordered collection of per-file results.
type FileResults []FileResult

// Changed returns only the results whose file content changed.
func (rs FileResults) Changed() FileResults {
	out := make(FileResults, 0, len(rs))

	for _, r := range rs {
		if r.Changed {
			out = append(out, r)
		}
	}

	return out
}

// UnresolvedCount sums unresolved specifiers across all files.
func (rs FileResults) UnresolvedCount() int {
	total := 0
	for _, r := range rs {
		total += len(r.Unresolved)
	}

	return total
}
