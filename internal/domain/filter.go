package domain

import "strings"

// Sort keys accepted by HackathonFilter. Anything else falls back to SortByStartDate.
const (
	SortByStartDate  = "start_date"
	SortByEndDate    = "end_date"
	SortByDeadline   = "registration_deadline"
	SortByTitle      = "title"
	SortByCreatedAt  = "created_at"
	SortByDifficulty = "difficulty"
)

// Sort directions.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

var sortKeys = []string{SortByStartDate, SortByEndDate, SortByDeadline, SortByTitle, SortByCreatedAt, SortByDifficulty}

// ValidSortKey reports whether k is an accepted sort key.
func ValidSortKey(k string) bool { return contains(sortKeys, k) }

// HackathonFilter is the compiled form of a listing request: every criterion
// is optional and absent criteria impose no constraint. Present criteria are
// combined with logical AND. Status, Mode, and Difficulty are case-sensitive
// exact matches against the enumerations; Theme and Location are
// case-insensitive substring matches.
type HackathonFilter struct {
	Status     string
	Mode       string
	Difficulty string
	Theme      string
	Location   string

	SortBy    string
	SortOrder string
	Page      PaginationParams
}

// NewHackathonFilter returns a filter with the default sort (start date
// ascending) and the given page window.
func NewHackathonFilter(page PaginationParams) HackathonFilter {
	return HackathonFilter{
		SortBy:    SortByStartDate,
		SortOrder: SortAsc,
		Page:      page,
	}
}

// Matches is the predicate compiled from the filter criteria: it reports
// whether h satisfies every present criterion.
func (f HackathonFilter) Matches(h *Hackathon) bool {
	if f.Status != "" && h.Status != f.Status {
		return false
	}
	if f.Mode != "" && h.Mode != f.Mode {
		return false
	}
	if f.Difficulty != "" && h.Difficulty != f.Difficulty {
		return false
	}
	if f.Theme != "" && !anyContainsFold(h.Themes, f.Theme) {
		return false
	}
	if f.Location != "" && !containsFold(h.Location, f.Location) {
		return false
	}
	return true
}

// Normalize replaces an unknown sort key or direction with the defaults so
// that identical inputs always compile to the same deterministic result set.
func (f *HackathonFilter) Normalize() {
	if !ValidSortKey(f.SortBy) {
		f.SortBy = SortByStartDate
	}
	if f.SortOrder != SortAsc && f.SortOrder != SortDesc {
		f.SortOrder = SortAsc
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func anyContainsFold(list []string, substr string) bool {
	for _, s := range list {
		if containsFold(s, substr) {
			return true
		}
	}
	return false
}
