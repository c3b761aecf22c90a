package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hackfinder/internal/domain"
)

type hackathonService struct {
	hackathonRepo domain.HackathonRepository
	userRepo      domain.UserRepository
	now           func() time.Time
}

// NewHackathonService creates the catalog service. userRepo is used only to
// resolve a viewer's preferences for personalized listings.
func NewHackathonService(hackathonRepo domain.HackathonRepository, userRepo domain.UserRepository) domain.HackathonService {
	return &hackathonService{
		hackathonRepo: hackathonRepo,
		userRepo:      userRepo,
		now:           time.Now,
	}
}

func (s *hackathonService) List(ctx context.Context, filter domain.HackathonFilter, viewerID string) ([]*domain.Hackathon, int, error) {
	filter.Normalize()
	hackathons, total, err := s.hackathonRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list hackathons: %w", err)
	}
	if hackathons == nil {
		hackathons = []*domain.Hackathon{}
	}

	if viewerID != "" {
		if viewer, err := s.userRepo.GetByID(ctx, viewerID); err == nil {
			hackathons = RankHackathons(hackathons, viewer.Preferences.Domains, s.now())
		}
		// A viewer that cannot be resolved just gets the unpersonalized page.
	}

	return hackathons, total, nil
}

func (s *hackathonService) GetByID(ctx context.Context, id string) (*domain.Hackathon, error) {
	h, err := s.hackathonRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get hackathon: %w", err)
	}
	return h, nil
}

func (s *hackathonService) Search(ctx context.Context, query string) ([]*domain.Hackathon, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrInvalidInput
	}
	hackathons, err := s.hackathonRepo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search hackathons: %w", err)
	}
	if hackathons == nil {
		hackathons = []*domain.Hackathon{}
	}
	return hackathons, nil
}

func (s *hackathonService) Create(ctx context.Context, h *domain.Hackathon) error {
	if err := validateHackathon(h); err != nil {
		return err
	}
	applyHackathonDefaults(h)
	now := s.now()
	h.CreatedAt = now
	h.UpdatedAt = now
	if err := s.hackathonRepo.Create(ctx, h); err != nil {
		return fmt.Errorf("create hackathon: %w", err)
	}
	return nil
}

func (s *hackathonService) Update(ctx context.Context, h *domain.Hackathon) (*domain.Hackathon, error) {
	if _, err := s.hackathonRepo.GetByID(ctx, h.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get hackathon: %w", err)
	}
	if err := validateHackathon(h); err != nil {
		return nil, err
	}
	applyHackathonDefaults(h)
	h.UpdatedAt = s.now()
	if err := s.hackathonRepo.Update(ctx, h); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update hackathon: %w", err)
	}
	return s.hackathonRepo.GetByID(ctx, h.ID)
}

func (s *hackathonService) Delete(ctx context.Context, id string) error {
	if err := s.hackathonRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete hackathon: %w", err)
	}
	return nil
}

func validateHackathon(h *domain.Hackathon) error {
	if h.EndDate.Before(h.StartDate) {
		return domain.ErrInvalidInput
	}
	if !domain.ValidMode(h.Mode) {
		return domain.ErrInvalidInput
	}
	if h.Status != "" && !domain.ValidStatus(h.Status) {
		return domain.ErrInvalidInput
	}
	if h.Difficulty != "" && !domain.ValidDifficulty(h.Difficulty) {
		return domain.ErrInvalidInput
	}
	return nil
}

func applyHackathonDefaults(h *domain.Hackathon) {
	if h.Status == "" {
		h.Status = domain.StatusUpcoming
	}
	if h.Difficulty == "" {
		h.Difficulty = domain.DifficultyAllLevels
	}
	if h.PrizePool == "" {
		h.PrizePool = "TBD"
	}
	if h.Eligibility == "" {
		h.Eligibility = "Open to all"
	}
	if h.TeamSize.Min == 0 {
		h.TeamSize.Min = 1
	}
	if h.TeamSize.Max == 0 {
		h.TeamSize.Max = 4
	}
}
