package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"hackfinder/internal/domain"
)

type participationRepository struct {
	DB *sql.DB
}

func NewParticipationRepository(db *sql.DB) domain.ParticipationRepository {
	return &participationRepository{DB: db}
}

func (r *participationRepository) Create(ctx context.Context, p *domain.Participation) error {
	query := `
		INSERT INTO participations (user_id, hackathon_id, status, registered_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, p.UserID, p.HackathonID, p.Status, p.RegisteredAt).Scan(&p.ID)
	if err != nil {
		// The unique (user_id, hackathon_id) constraint turns a racing
		// duplicate insert into a conflict instead of a second record.
		if isUniqueViolation(err) {
			return domain.ErrAlreadyRegistered
		}
		return err
	}
	return nil
}

func (r *participationRepository) GetByUserAndHackathon(ctx context.Context, userID, hackathonID string) (*domain.Participation, error) {
	query := `
		SELECT id, user_id, hackathon_id, status, registered_at
		FROM participations
		WHERE user_id = $1 AND hackathon_id = $2
	`
	p := &domain.Participation{}
	err := r.DB.QueryRowContext(ctx, query, userID, hackathonID).
		Scan(&p.ID, &p.UserID, &p.HackathonID, &p.Status, &p.RegisteredAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *participationRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Participation, error) {
	query := `
		SELECT id, user_id, hackathon_id, status, registered_at
		FROM participations
		WHERE user_id = $1
		ORDER BY registered_at ASC, id ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ps := make([]*domain.Participation, 0)
	for rows.Next() {
		p := &domain.Participation{}
		if err := rows.Scan(&p.ID, &p.UserID, &p.HackathonID, &p.Status, &p.RegisteredAt); err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ps, nil
}

func (r *participationRepository) ListWithHackathonsByUserID(ctx context.Context, userID string) ([]*domain.Participation, error) {
	query := `
		SELECT p.id, p.user_id, p.hackathon_id, p.status, p.registered_at,
			h.id, h.title, h.description, h.organizer, h.location, h.mode,
			h.start_date, h.end_date, h.registration_deadline, h.prize_pool,
			h.themes, h.technologies, h.tags, h.eligibility, h.team_size_min, h.team_size_max,
			h.registration_link, h.website_url, h.status, h.difficulty, h.created_at, h.updated_at
		FROM participations p
		JOIN hackathons h ON h.id = p.hackathon_id
		WHERE p.user_id = $1
		ORDER BY p.registered_at ASC, p.id ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ps := make([]*domain.Participation, 0)
	for rows.Next() {
		p := &domain.Participation{}
		h := &domain.Hackathon{}
		err := rows.Scan(
			&p.ID, &p.UserID, &p.HackathonID, &p.Status, &p.RegisteredAt,
			&h.ID, &h.Title, &h.Description, &h.Organizer, &h.Location, &h.Mode,
			&h.StartDate, &h.EndDate, &h.RegistrationDeadline, &h.PrizePool,
			pq.Array(&h.Themes), pq.Array(&h.Technologies), pq.Array(&h.Tags),
			&h.Eligibility, &h.TeamSize.Min, &h.TeamSize.Max,
			&h.RegistrationLink, &h.WebsiteURL, &h.Status, &h.Difficulty,
			&h.CreatedAt, &h.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		p.Hackathon = h
		ps = append(ps, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ps, nil
}
