package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"hackfinder/internal/domain"
)

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{DB: db}
}

const userColumns = `id, name, email, password_hash, salt, role, age, gender, phone_number,
		bio, skills, experience, interests, city, country, timezone,
		pref_domains, pref_types, pref_difficulties, pref_team, pref_travel, pref_duration,
		pref_weekends, pref_weekdays, pref_prize_min, pref_prize_max, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Salt, &u.Role,
		&u.Age, &u.Gender, &u.PhoneNumber,
		&u.Bio, pq.Array(&u.Skills), &u.Experience, pq.Array(&u.Interests),
		&u.City, &u.Country, &u.Timezone,
		pq.Array(&u.Preferences.Domains), pq.Array(&u.Preferences.HackathonTypes),
		pq.Array(&u.Preferences.DifficultyLevels), &u.Preferences.TeamPreference,
		&u.Preferences.TravelWillingness, &u.Preferences.PreferredDuration,
		&u.Preferences.AvailableWeekends, &u.Preferences.AvailableWeekdays,
		&u.Preferences.PrizeRange.Min, &u.Preferences.PrizeRange.Max,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `
		INSERT INTO users (name, email, password_hash, salt, role, age, gender, phone_number,
			bio, skills, experience, interests, city, country, timezone,
			pref_domains, pref_types, pref_difficulties, pref_team, pref_travel, pref_duration,
			pref_weekends, pref_weekdays, pref_prize_min, pref_prize_max, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		u.Name, u.Email, u.PasswordHash, u.Salt, u.Role, u.Age, u.Gender, u.PhoneNumber,
		u.Bio, pq.Array(u.Skills), u.Experience, pq.Array(u.Interests),
		u.City, u.Country, u.Timezone,
		pq.Array(u.Preferences.Domains), pq.Array(u.Preferences.HackathonTypes),
		pq.Array(u.Preferences.DifficultyLevels), u.Preferences.TeamPreference,
		u.Preferences.TravelWillingness, u.Preferences.PreferredDuration,
		u.Preferences.AvailableWeekends, u.Preferences.AvailableWeekdays,
		u.Preferences.PrizeRange.Min, u.Preferences.PrizeRange.Max,
		u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = LOWER($1)`
	u, err := scanUser(r.DB.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `
		UPDATE users
		SET name = $1, email = $2, role = $3, age = $4, gender = $5, phone_number = $6,
			bio = $7, skills = $8, experience = $9, interests = $10,
			city = $11, country = $12, timezone = $13,
			pref_domains = $14, pref_types = $15, pref_difficulties = $16,
			pref_team = $17, pref_travel = $18, pref_duration = $19,
			pref_weekends = $20, pref_weekdays = $21, pref_prize_min = $22, pref_prize_max = $23,
			updated_at = $24
		WHERE id = $25
	`
	res, err := r.DB.ExecContext(ctx, query,
		u.Name, u.Email, u.Role, u.Age, u.Gender, u.PhoneNumber,
		u.Bio, pq.Array(u.Skills), u.Experience, pq.Array(u.Interests),
		u.City, u.Country, u.Timezone,
		pq.Array(u.Preferences.Domains), pq.Array(u.Preferences.HackathonTypes),
		pq.Array(u.Preferences.DifficultyLevels), u.Preferences.TeamPreference,
		u.Preferences.TravelWillingness, u.Preferences.PreferredDuration,
		u.Preferences.AvailableWeekends, u.Preferences.AvailableWeekdays,
		u.Preferences.PrizeRange.Min, u.Preferences.PrizeRange.Max,
		u.UpdatedAt, u.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id, passwordHash, salt string) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE users SET password_hash = $1, salt = $2, updated_at = now() WHERE id = $3`,
		passwordHash, salt, id,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at ASC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) CountByRole(ctx context.Context, role string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, role).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
