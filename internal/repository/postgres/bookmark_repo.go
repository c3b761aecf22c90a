package postgres

import (
	"context"
	"database/sql"

	"hackfinder/internal/domain"
)

type bookmarkRepository struct {
	DB *sql.DB
}

func NewBookmarkRepository(db *sql.DB) domain.BookmarkRepository {
	return &bookmarkRepository{DB: db}
}

func (r *bookmarkRepository) Add(ctx context.Context, userID, hackathonID string) error {
	query := `
		INSERT INTO bookmarks (user_id, hackathon_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, hackathon_id) DO NOTHING
	`
	_, err := r.DB.ExecContext(ctx, query, userID, hackathonID)
	return err
}

func (r *bookmarkRepository) Remove(ctx context.Context, userID, hackathonID string) (bool, error) {
	res, err := r.DB.ExecContext(ctx,
		`DELETE FROM bookmarks WHERE user_id = $1 AND hackathon_id = $2`,
		userID, hackathonID,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *bookmarkRepository) ListIDsByUserID(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT hackathon_id FROM bookmarks WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
