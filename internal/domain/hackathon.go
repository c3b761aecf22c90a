package domain

import (
	"context"
	"time"
)

// Hackathon status values.
const (
	StatusUpcoming  = "upcoming"
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Hackathon mode values.
const (
	ModeOnline  = "online"
	ModeOffline = "offline"
	ModeHybrid  = "hybrid"
)

// Hackathon difficulty values.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
	DifficultyAllLevels    = "all-levels"
)

// Statuses, Modes, and Difficulties enumerate the valid values for the
// corresponding Hackathon fields.
var (
	Statuses     = []string{StatusUpcoming, StatusOngoing, StatusCompleted, StatusCancelled}
	Modes        = []string{ModeOnline, ModeOffline, ModeHybrid}
	Difficulties = []string{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyAllLevels}
)

// ValidStatus reports whether s is a known hackathon status.
func ValidStatus(s string) bool { return contains(Statuses, s) }

// ValidMode reports whether m is a known hackathon mode.
func ValidMode(m string) bool { return contains(Modes, m) }

// ValidDifficulty reports whether d is a known hackathon difficulty.
func ValidDifficulty(d string) bool { return contains(Difficulties, d) }

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// TeamSize is the allowed team size range for a hackathon.
type TeamSize struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Hackathon represents a catalog entry for one hackathon.
// swagger:model Hackathon
type Hackathon struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	Organizer            string    `json:"organizer"`
	Location             string    `json:"location"`
	Mode                 string    `json:"mode"`
	StartDate            time.Time `json:"start_date"`
	EndDate              time.Time `json:"end_date"`
	RegistrationDeadline time.Time `json:"registration_deadline"`
	PrizePool            string    `json:"prize_pool"`
	Themes               []string  `json:"themes"`
	Technologies         []string  `json:"technologies"`
	Tags                 []string  `json:"tags"`
	Eligibility          string    `json:"eligibility"`
	TeamSize             TeamSize  `json:"team_size"`
	RegistrationLink     string    `json:"registration_link"`
	WebsiteURL           string    `json:"website_url"`
	Status               string    `json:"status"`
	Difficulty           string    `json:"difficulty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// HackathonRepository defines the interface for hackathon storage.
type HackathonRepository interface {
	Create(ctx context.Context, h *Hackathon) error
	GetByID(ctx context.Context, id string) (*Hackathon, error)
	Update(ctx context.Context, h *Hackathon) error
	Delete(ctx context.Context, id string) error
	// List returns the page of hackathons matching the filter plus the total
	// number of matches across all pages.
	List(ctx context.Context, filter HackathonFilter) ([]*Hackathon, int, error)
	// Search returns hackathons whose title, description, organizer, or tag
	// lists contain the query substring, ordered by start date.
	Search(ctx context.Context, query string) ([]*Hackathon, error)
}

// HackathonService defines catalog operations: public listing and lookup plus
// admin-only mutations.
type HackathonService interface {
	// List returns a filtered page of hackathons. When viewerID is non-empty
	// and that user has domain preferences, the page is reordered by relevance.
	List(ctx context.Context, filter HackathonFilter, viewerID string) ([]*Hackathon, int, error)
	GetByID(ctx context.Context, id string) (*Hackathon, error)
	Search(ctx context.Context, query string) ([]*Hackathon, error)
	Create(ctx context.Context, h *Hackathon) error
	Update(ctx context.Context, h *Hackathon) (*Hackathon, error)
	Delete(ctx context.Context, id string) error
}
