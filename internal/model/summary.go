package model

// Summary aggregates compliance verdicts for one aircraft across a set of
// directives.
type Summary struct {
	Total         int `json:"total"`
	Applicable    int `json:"applicable"`
	NotAffected   int `json:"not_affected"`
	NotApplicable int `json:"not_applicable"`
	Errors        int `json:"errors"`
}

// Count records one verdict in the summary.
func (s *Summary) Count(status Status) {
	s.Total++
	switch status {
	case StatusApplicable:
		s.Applicable++
	case StatusNotAffected:
		s.NotAffected++
	case StatusNotApplicable:
		s.NotApplicable++
	}
}

// CountError records one per-directive evaluation failure.
func (s *Summary) CountError() {
	s.Total++
	s.Errors++
}

// AnyApplicable reports whether at least one directive applies.
func (s Summary) AnyApplicable() bool {
	return s.Applicable > 0
}

// ExitCode maps the summary onto the CLI exit convention: 0 when nothing
// applies, 1 when at least one directive applies, 2 when any directive
// failed to evaluate.
func (s Summary) ExitCode() int {
	if s.Errors > 0 {
		return 2
	}
	if s.Applicable > 0 {
		return 1
	}
	return 0
}
