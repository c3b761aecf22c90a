package domain

import (
	"context"
	"time"
)

// Participation status values.
const (
	ParticipationRegistered    = "registered"
	ParticipationParticipating = "participating"
	ParticipationCompleted     = "completed"
)

// Participation is one user's registration record for one hackathon. At most
// one record exists per (user, hackathon) pair.
// swagger:model Participation
type Participation struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	HackathonID  string     `json:"hackathon_id"`
	Status       string     `json:"status"`
	RegisteredAt time.Time  `json:"registered_at"`
	Hackathon    *Hackathon `json:"hackathon,omitempty"`
}

// BookmarkRepository defines storage for the per-user bookmark set.
type BookmarkRepository interface {
	// Add inserts the bookmark; adding an existing bookmark is a no-op.
	Add(ctx context.Context, userID, hackathonID string) error
	// Remove deletes the bookmark and reports whether it existed.
	Remove(ctx context.Context, userID, hackathonID string) (bool, error)
	ListIDsByUserID(ctx context.Context, userID string) ([]string, error)
}

// ParticipationRepository defines storage for participation records. The
// backing store enforces uniqueness on (user, hackathon), so a duplicate
// Create fails even when two requests race past the existence check.
type ParticipationRepository interface {
	Create(ctx context.Context, p *Participation) error
	GetByUserAndHackathon(ctx context.Context, userID, hackathonID string) (*Participation, error)
	ListByUserID(ctx context.Context, userID string) ([]*Participation, error)
	// ListWithHackathonsByUserID resolves each record's hackathon as well.
	ListWithHackathonsByUserID(ctx context.Context, userID string) ([]*Participation, error)
}

// RelationshipService owns the user-to-hackathon relationship state:
// the bookmark set and the participation lifecycle.
type RelationshipService interface {
	// ToggleBookmark flips the bookmark and returns the resulting state:
	// true if the hackathon is now bookmarked, false if it was removed.
	ToggleBookmark(ctx context.Context, userID, hackathonID string) (bool, error)
	// RegisterParticipation appends a registered-status record. It fails with
	// ErrDeadlinePassed after the registration deadline and with
	// ErrAlreadyRegistered when a record for the pair already exists.
	RegisterParticipation(ctx context.Context, userID, hackathonID string) (*Participation, error)
	ListBookmarks(ctx context.Context, userID string) ([]string, error)
	ListParticipations(ctx context.Context, userID string) ([]*Participation, error)
}
