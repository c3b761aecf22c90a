package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hackfinder/internal/domain"
)

type userService struct {
	userRepo          domain.UserRepository
	bookmarkRepo      domain.BookmarkRepository
	participationRepo domain.ParticipationRepository
	now               func() time.Time
}

// NewUserService creates the user profile and admin user-management service.
func NewUserService(
	userRepo domain.UserRepository,
	bookmarkRepo domain.BookmarkRepository,
	participationRepo domain.ParticipationRepository,
) domain.UserService {
	return &userService{
		userRepo:          userRepo,
		bookmarkRepo:      bookmarkRepo,
		participationRepo: participationRepo,
		now:               time.Now,
	}
}

func (s *userService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *userService) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	bookmarks, err := s.bookmarkRepo.ListIDsByUserID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	if bookmarks == nil {
		bookmarks = []string{}
	}
	participations, err := s.participationRepo.ListWithHackathonsByUserID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list participations: %w", err)
	}
	if participations == nil {
		participations = []*domain.Participation{}
	}
	return &domain.Profile{
		User:           user,
		Bookmarks:      bookmarks,
		Participations: participations,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, u *domain.User) (*domain.User, error) {
	current, err := s.GetByID(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	u.Email = strings.TrimSpace(strings.ToLower(u.Email))
	if u.Email != "" && u.Email != current.Email {
		if existing, err := s.userRepo.GetByEmail(ctx, u.Email); err == nil && existing.ID != u.ID {
			return nil, domain.ErrDuplicateEmail
		}
	} else {
		u.Email = current.Email
	}

	if err := validatePreferences(&u.Preferences); err != nil {
		return nil, err
	}

	// The credential and role never change through the self-service path.
	u.PasswordHash = current.PasswordHash
	u.Salt = current.Salt
	u.Role = current.Role
	u.CreatedAt = current.CreatedAt
	u.UpdatedAt = s.now()

	if err := s.userRepo.Update(ctx, u); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return s.GetByID(ctx, u.ID)
}

func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = []*domain.User{}
	}
	return users, nil
}

func (s *userService) AdminUpdate(ctx context.Context, u *domain.User) (*domain.User, error) {
	current, err := s.GetByID(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	if u.Role != domain.RoleUser && u.Role != domain.RoleAdmin {
		return nil, domain.ErrInvalidInput
	}
	u.Email = strings.TrimSpace(strings.ToLower(u.Email))
	if u.Email == "" {
		u.Email = current.Email
	}
	if err := validatePreferences(&u.Preferences); err != nil {
		return nil, err
	}
	u.PasswordHash = current.PasswordHash
	u.Salt = current.Salt
	u.CreatedAt = current.CreatedAt
	u.UpdatedAt = s.now()
	if err := s.userRepo.Update(ctx, u); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return s.GetByID(ctx, u.ID)
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func validatePreferences(p *domain.Preferences) error {
	for _, d := range p.Domains {
		if !domain.ValidPreferenceDomain(d) {
			return domain.ErrInvalidInput
		}
	}
	for _, m := range p.HackathonTypes {
		if !domain.ValidMode(m) {
			return domain.ErrInvalidInput
		}
	}
	for _, d := range p.DifficultyLevels {
		if !domain.ValidDifficulty(d) {
			return domain.ErrInvalidInput
		}
	}
	if p.TeamPreference != "" && !domain.ValidTeamPreference(p.TeamPreference) {
		return domain.ErrInvalidInput
	}
	if p.TravelWillingness != "" && !domain.ValidTravelWillingness(p.TravelWillingness) {
		return domain.ErrInvalidInput
	}
	if p.PreferredDuration != "" && !domain.ValidPreferredDuration(p.PreferredDuration) {
		return domain.ErrInvalidInput
	}
	return nil
}
