package helpers

import (
	"net/http"

	"hackfinder/internal/domain"
)

// ParseHackathonFilter compiles the listing query parameters into a
// HackathonFilter. Absent parameters impose no constraint; an unknown sort
// key or direction falls back to the default (start date ascending).
func ParseHackathonFilter(r *http.Request) domain.HackathonFilter {
	q := r.URL.Query()
	filter := domain.NewHackathonFilter(ParsePagination(r))

	filter.Status = q.Get("status")
	filter.Mode = q.Get("mode")
	filter.Difficulty = q.Get("difficulty")
	filter.Theme = q.Get("theme")
	filter.Location = q.Get("location")

	if s := q.Get("sortBy"); s != "" {
		filter.SortBy = s
	}
	if s := q.Get("sortOrder"); s != "" {
		filter.SortOrder = s
	}
	filter.Normalize()
	return filter
}
