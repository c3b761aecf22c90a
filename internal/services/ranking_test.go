package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackfinder/internal/domain"
)

var rankNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func hack(id, status string, deadline time.Time, themes, techs []string) *domain.Hackathon {
	return &domain.Hackathon{
		ID:                   id,
		Title:                id,
		Status:               status,
		RegistrationDeadline: deadline,
		StartDate:            rankNow.Add(240 * time.Hour),
		Themes:               themes,
		Technologies:         techs,
	}
}

func TestRelevanceScore(t *testing.T) {
	open := rankNow.Add(48 * time.Hour)
	closed := rankNow.Add(-48 * time.Hour)

	tests := []struct {
		name    string
		h       *domain.Hackathon
		domains []string
		want    int
	}{
		{
			name: "base only",
			h:    hack("a", domain.StatusCompleted, closed, nil, nil),
			want: 1,
		},
		{
			name: "upcoming with open registration",
			h:    hack("a", domain.StatusUpcoming, open, nil, nil),
			want: 1 + 5 + 3,
		},
		{
			name: "ongoing beats upcoming",
			h:    hack("a", domain.StatusOngoing, closed, nil, nil),
			want: 1 + 8,
		},
		{
			name:    "only matching themes count",
			h:       hack("a", domain.StatusCompleted, closed, []string{"AI", "machine-learning models"}, nil),
			domains: []string{"machine-learning"},
			want:    1 + 20,
		},
		{
			name:    "technology match weighted lower than theme match",
			h:       hack("a", domain.StatusCompleted, closed, nil, []string{"TensorFlow", "blockchain"}),
			domains: []string{"blockchain"},
			want:    1 + 15,
		},
		{
			name:    "substring containment works in both directions",
			h:       hack("a", domain.StatusCompleted, closed, []string{"learning"}, nil),
			domains: []string{"machine-learning"},
			want:    1 + 20,
		},
		{
			name:    "multiplicity adds up",
			h:       hack("a", domain.StatusUpcoming, open, []string{"fintech", "fintech apps"}, []string{"fintech"}),
			domains: []string{"fintech"},
			want:    1 + 5 + 3 + 20 + 20 + 15,
		},
		{
			name:    "empty preference set leaves only status factors",
			h:       hack("a", domain.StatusUpcoming, open, []string{"fintech"}, []string{"go"}),
			domains: nil,
			want:    1 + 5 + 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relevanceScore(tt.h, tt.domains, rankNow))
		})
	}
}

func TestRankHackathons_Ordering(t *testing.T) {
	open := rankNow.Add(48 * time.Hour)
	closed := rankNow.Add(-48 * time.Hour)

	x := hack("x", domain.StatusUpcoming, open, nil, nil)                     // 1+5+3 = 9
	y := hack("y", domain.StatusCompleted, closed, nil, []string{"web-dev"})  // 1+15 = 16 with match
	z := hack("z", domain.StatusCompleted, closed, nil, nil)                  // 1
	w := hack("w", domain.StatusOngoing, open, []string{"web-development"}, nil) // 1+8+3+20 = 32

	ranked := RankHackathons([]*domain.Hackathon{z, x, y, w}, []string{"web-development"}, rankNow)

	require.Len(t, ranked, 4)
	assert.Equal(t, "w", ranked[0].ID)
	assert.Equal(t, "y", ranked[1].ID)
	assert.Equal(t, "x", ranked[2].ID)
	assert.Equal(t, "z", ranked[3].ID)
}

func TestRankHackathons_TieBreaks(t *testing.T) {
	closed := rankNow.Add(-48 * time.Hour)

	early := hack("early", domain.StatusCompleted, closed, nil, nil)
	early.StartDate = rankNow.Add(24 * time.Hour)
	late := hack("late", domain.StatusCompleted, closed, nil, nil)
	late.StartDate = rankNow.Add(96 * time.Hour)
	sameA := hack("same-a", domain.StatusCompleted, closed, nil, nil)
	sameA.StartDate = late.StartDate
	sameB := hack("same-b", domain.StatusCompleted, closed, nil, nil)
	sameB.StartDate = late.StartDate

	// All four score identically; start date breaks the tie, then input order.
	ranked := RankHackathons([]*domain.Hackathon{late, sameA, sameB, early}, nil, rankNow)

	require.Len(t, ranked, 4)
	assert.Equal(t, "early", ranked[0].ID)
	assert.Equal(t, "late", ranked[1].ID)
	assert.Equal(t, "same-a", ranked[2].ID)
	assert.Equal(t, "same-b", ranked[3].ID)
}

func TestRankHackathons_NeverDropsEntries(t *testing.T) {
	open := rankNow.Add(48 * time.Hour)
	input := []*domain.Hackathon{
		hack("a", domain.StatusCancelled, open, nil, nil),
		hack("b", domain.StatusUpcoming, open, []string{"robotics"}, nil),
		hack("c", domain.StatusCompleted, rankNow.Add(-time.Hour), nil, nil),
	}

	ranked := RankHackathons(input, []string{"robotics"}, rankNow)

	assert.Len(t, ranked, len(input))
	seen := map[string]bool{}
	for _, h := range ranked {
		seen[h.ID] = true
	}
	for _, h := range input {
		assert.True(t, seen[h.ID], "missing %s", h.ID)
	}
}

func TestMatchesAnyDomain(t *testing.T) {
	assert.False(t, matchesAnyDomain("Machine Learning", []string{"machine-learning"}))
	assert.True(t, matchesAnyDomain("machine-learning pipelines", []string{"machine-learning"}))
	assert.True(t, matchesAnyDomain("learning", []string{"machine-learning"}))
	assert.True(t, matchesAnyDomain("AI", []string{"ai"}))
	assert.False(t, matchesAnyDomain("", []string{"ai"}))
	assert.False(t, matchesAnyDomain("go", nil))
}
