package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"hackfinder/internal/domain"
)

type relationshipService struct {
	hackathonRepo     domain.HackathonRepository
	bookmarkRepo      domain.BookmarkRepository
	participationRepo domain.ParticipationRepository
	userRepo          domain.UserRepository
	emailSvc          domain.EmailService
	logger            *slog.Logger
	now               func() time.Time
}

// NewRelationshipService creates the service owning bookmarks and
// participation records.
func NewRelationshipService(
	hackathonRepo domain.HackathonRepository,
	bookmarkRepo domain.BookmarkRepository,
	participationRepo domain.ParticipationRepository,
	userRepo domain.UserRepository,
	emailSvc domain.EmailService,
	logger *slog.Logger,
) domain.RelationshipService {
	return &relationshipService{
		hackathonRepo:     hackathonRepo,
		bookmarkRepo:      bookmarkRepo,
		participationRepo: participationRepo,
		userRepo:          userRepo,
		emailSvc:          emailSvc,
		logger:            logger,
		now:               time.Now,
	}
}

func (s *relationshipService) ToggleBookmark(ctx context.Context, userID, hackathonID string) (bool, error) {
	// The toggle does not require the hackathon to exist; a dangling reference
	// is resolved (and skipped) at read time.
	removed, err := s.bookmarkRepo.Remove(ctx, userID, hackathonID)
	if err != nil {
		return false, fmt.Errorf("remove bookmark: %w", err)
	}
	if removed {
		return false, nil
	}
	if err := s.bookmarkRepo.Add(ctx, userID, hackathonID); err != nil {
		return false, fmt.Errorf("add bookmark: %w", err)
	}
	return true, nil
}

func (s *relationshipService) RegisterParticipation(ctx context.Context, userID, hackathonID string) (*domain.Participation, error) {
	hackathon, err := s.hackathonRepo.GetByID(ctx, hackathonID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get hackathon: %w", err)
	}

	now := s.now()
	if now.After(hackathon.RegistrationDeadline) {
		return nil, domain.ErrDeadlinePassed
	}

	if _, err := s.participationRepo.GetByUserAndHackathon(ctx, userID, hackathonID); err == nil {
		return nil, domain.ErrAlreadyRegistered
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get participation: %w", err)
	}

	p := &domain.Participation{
		UserID:       userID,
		HackathonID:  hackathonID,
		Status:       domain.ParticipationRegistered,
		RegisteredAt: now,
	}
	// The store's unique constraint on (user, hackathon) closes the window
	// between the existence check above and this insert.
	if err := s.participationRepo.Create(ctx, p); err != nil {
		if errors.Is(err, domain.ErrAlreadyRegistered) {
			return nil, domain.ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("create participation: %w", err)
	}

	s.sendConfirmation(ctx, userID, hackathon)
	return p, nil
}

func (s *relationshipService) ListBookmarks(ctx context.Context, userID string) ([]string, error) {
	ids, err := s.bookmarkRepo.ListIDsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func (s *relationshipService) ListParticipations(ctx context.Context, userID string) ([]*domain.Participation, error) {
	ps, err := s.participationRepo.ListWithHackathonsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list participations: %w", err)
	}
	if ps == nil {
		ps = []*domain.Participation{}
	}
	return ps, nil
}

func (s *relationshipService) sendConfirmation(ctx context.Context, userID string, hackathon *domain.Hackathon) {
	if s.emailSvc == nil {
		return
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.WarnContext(ctx, "registration email skipped", "user_id", userID, "err", err)
		return
	}
	data := &domain.RegistrationEmailData{
		Email:          user.Email,
		Name:           user.Name,
		HackathonTitle: hackathon.Title,
		StartDate:      hackathon.StartDate.Format("Jan 2, 2006"),
		Location:       hackathon.Location,
	}
	if err := s.emailSvc.SendRegistrationConfirmation(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "registration email failed", "email", user.Email, "err", err)
	}
}
