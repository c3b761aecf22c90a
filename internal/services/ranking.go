package services

import (
	"sort"
	"strings"
	"time"

	"hackfinder/internal/domain"
)

// Relevance score weights. Scores are sorting keys only and never leave this file.
const (
	scoreBase             = 1
	scoreUpcoming         = 5
	scoreOngoing          = 8
	scoreOpenRegistration = 3
	scorePerThemeMatch    = 20
	scorePerTechMatch     = 15
)

// RankHackathons orders hackathons by relevance for a viewer with the given
// domain preferences: score descending, ties broken by ascending start date,
// then by the input order. The input slice is not modified. now is injected so
// the computation stays deterministic.
//
// Every candidate scores at least the base point, so personalization reorders
// the page but never drops anything. An empty preference set still yields a
// fully ordered list from the status and deadline factors alone.
func RankHackathons(hackathons []*domain.Hackathon, preferredDomains []string, now time.Time) []*domain.Hackathon {
	scored := make([]scoredHackathon, len(hackathons))
	for i, h := range hackathons {
		scored[i] = scoredHackathon{hackathon: h, score: relevanceScore(h, preferredDomains, now)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].hackathon.StartDate.Before(scored[j].hackathon.StartDate)
	})
	ranked := make([]*domain.Hackathon, len(scored))
	for i, s := range scored {
		ranked[i] = s.hackathon
	}
	return ranked
}

type scoredHackathon struct {
	hackathon *domain.Hackathon
	score     int
}

// relevanceScore computes the additive relevance score for one hackathon.
// Preference matches are counted with multiplicity: three matching themes
// contribute three times the theme weight.
func relevanceScore(h *domain.Hackathon, preferredDomains []string, now time.Time) int {
	score := scoreBase

	switch h.Status {
	case domain.StatusUpcoming:
		score += scoreUpcoming
	case domain.StatusOngoing:
		score += scoreOngoing
	}

	if now.Before(h.RegistrationDeadline) {
		score += scoreOpenRegistration
	}

	for _, theme := range h.Themes {
		if matchesAnyDomain(theme, preferredDomains) {
			score += scorePerThemeMatch
		}
	}
	for _, tech := range h.Technologies {
		if matchesAnyDomain(tech, preferredDomains) {
			score += scorePerTechMatch
		}
	}

	return score
}

// matchesAnyDomain reports whether tag matches any preferred domain by
// case-insensitive substring containment in either direction, so
// "machine-learning" matches a "learning" tag and vice versa.
func matchesAnyDomain(tag string, domains []string) bool {
	t := strings.ToLower(tag)
	if t == "" {
		return false
	}
	for _, d := range domains {
		d = strings.ToLower(d)
		if d == "" {
			continue
		}
		if strings.Contains(t, d) || strings.Contains(d, t) {
			return true
		}
	}
	return false
}
