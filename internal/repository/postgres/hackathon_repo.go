package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"hackfinder/internal/domain"
)

type hackathonRepository struct {
	DB *sql.DB
}

func NewHackathonRepository(db *sql.DB) domain.HackathonRepository {
	return &hackathonRepository{DB: db}
}

const hackathonColumns = `id, title, description, organizer, location, mode,
		start_date, end_date, registration_deadline, prize_pool,
		themes, technologies, tags, eligibility, team_size_min, team_size_max,
		registration_link, website_url, status, difficulty, created_at, updated_at`

func scanHackathon(row interface{ Scan(...any) error }) (*domain.Hackathon, error) {
	h := &domain.Hackathon{}
	err := row.Scan(
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
	return h, nil
}

func (r *hackathonRepository) Create(ctx context.Context, h *domain.Hackathon) error {
	query := `
		INSERT INTO hackathons (title, description, organizer, location, mode,
			start_date, end_date, registration_deadline, prize_pool,
			themes, technologies, tags, eligibility, team_size_min, team_size_max,
			registration_link, website_url, status, difficulty, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		h.Title, h.Description, h.Organizer, h.Location, h.Mode,
		h.StartDate, h.EndDate, h.RegistrationDeadline, h.PrizePool,
		pq.Array(h.Themes), pq.Array(h.Technologies), pq.Array(h.Tags),
		h.Eligibility, h.TeamSize.Min, h.TeamSize.Max,
		h.RegistrationLink, h.WebsiteURL, h.Status, h.Difficulty,
		h.CreatedAt, h.UpdatedAt,
	).Scan(&h.ID)
}

func (r *hackathonRepository) GetByID(ctx context.Context, id string) (*domain.Hackathon, error) {
	query := `SELECT ` + hackathonColumns + ` FROM hackathons WHERE id = $1`
	h, err := scanHackathon(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return h, nil
}

func (r *hackathonRepository) Update(ctx context.Context, h *domain.Hackathon) error {
	query := `
		UPDATE hackathons
		SET title = $1, description = $2, organizer = $3, location = $4, mode = $5,
			start_date = $6, end_date = $7, registration_deadline = $8, prize_pool = $9,
			themes = $10, technologies = $11, tags = $12, eligibility = $13,
			team_size_min = $14, team_size_max = $15, registration_link = $16,
			website_url = $17, status = $18, difficulty = $19, updated_at = $20
		WHERE id = $21
	`
	res, err := r.DB.ExecContext(ctx, query,
		h.Title, h.Description, h.Organizer, h.Location, h.Mode,
		h.StartDate, h.EndDate, h.RegistrationDeadline, h.PrizePool,
		pq.Array(h.Themes), pq.Array(h.Technologies), pq.Array(h.Tags),
		h.Eligibility, h.TeamSize.Min, h.TeamSize.Max, h.RegistrationLink,
		h.WebsiteURL, h.Status, h.Difficulty, h.UpdatedAt, h.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *hackathonRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM hackathons WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// sortColumns whitelists the ORDER BY targets; the filter's Normalize already
// rejects unknown keys, this map is the last line of defense against SQL
// injection through the sort parameter.
var sortColumns = map[string]string{
	domain.SortByStartDate:  "start_date",
	domain.SortByEndDate:    "end_date",
	domain.SortByDeadline:   "registration_deadline",
	domain.SortByTitle:      "title",
	domain.SortByCreatedAt:  "created_at",
	domain.SortByDifficulty: "difficulty",
}

func (r *hackathonRepository) List(ctx context.Context, filter domain.HackathonFilter) ([]*domain.Hackathon, int, error) {
	var conds []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Status != "" {
		conds = append(conds, "status = "+arg(filter.Status))
	}
	if filter.Mode != "" {
		conds = append(conds, "mode = "+arg(filter.Mode))
	}
	if filter.Difficulty != "" {
		conds = append(conds, "difficulty = "+arg(filter.Difficulty))
	}
	if filter.Theme != "" {
		conds = append(conds, "EXISTS (SELECT 1 FROM unnest(themes) AS t WHERE t ILIKE '%' || "+arg(filter.Theme)+" || '%')")
	}
	if filter.Location != "" {
		conds = append(conds, "location ILIKE '%' || "+arg(filter.Location)+" || '%'")
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM hackathons"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sortCol, ok := sortColumns[filter.SortBy]
	if !ok {
		sortCol = "start_date"
	}
	dir := "ASC"
	if filter.SortOrder == domain.SortDesc {
		dir = "DESC"
	}

	// created_at, id break ties so equal sort keys always come back in
	// insertion order.
	query := "SELECT " + hackathonColumns + " FROM hackathons" + where +
		" ORDER BY " + sortCol + " " + dir + ", created_at ASC, id ASC" +
		" OFFSET " + arg(filter.Page.Offset()) + " LIMIT " + arg(filter.Page.PageSize)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	hackathons := make([]*domain.Hackathon, 0)
	for rows.Next() {
		h, err := scanHackathon(rows)
		if err != nil {
			return nil, 0, err
		}
		hackathons = append(hackathons, h)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return hackathons, total, nil
}

func (r *hackathonRepository) Search(ctx context.Context, query string) ([]*domain.Hackathon, error) {
	sqlQuery := `
		SELECT ` + hackathonColumns + `
		FROM hackathons
		WHERE title ILIKE '%' || $1 || '%'
		   OR description ILIKE '%' || $1 || '%'
		   OR organizer ILIKE '%' || $1 || '%'
		   OR EXISTS (SELECT 1 FROM unnest(themes) AS t WHERE t ILIKE '%' || $1 || '%')
		   OR EXISTS (SELECT 1 FROM unnest(technologies) AS t WHERE t ILIKE '%' || $1 || '%')
		   OR EXISTS (SELECT 1 FROM unnest(tags) AS t WHERE t ILIKE '%' || $1 || '%')
		ORDER BY start_date ASC, created_at ASC, id ASC
	`
	rows, err := r.DB.QueryContext(ctx, sqlQuery, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hackathons := make([]*domain.Hackathon, 0)
	for rows.Next() {
		h, err := scanHackathon(rows)
		if err != nil {
			return nil, err
		}
		hackathons = append(hackathons, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return hackathons, nil
}
