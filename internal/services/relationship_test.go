package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackfinder/internal/domain"
)

func newTestRelationshipService(
	hackRepo *fakeHackathonRepo,
	bookmarks *fakeBookmarkRepo,
	parts *fakeParticipationRepo,
	users *fakeUserRepo,
	emails *fakeEmailService,
	now time.Time,
) domain.RelationshipService {
	var svc domain.EmailService
	if emails != nil {
		svc = emails
	}
	rs := NewRelationshipService(hackRepo, bookmarks, parts, users, svc, slog.Default()).(*relationshipService)
	rs.now = func() time.Time { return now }
	return rs
}

func TestRelationshipService_ToggleBookmark(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("toggle adds then removes", func(t *testing.T) {
		bookmarks := newFakeBookmarkRepo()
		svc := newTestRelationshipService(newFakeHackathonRepo(), bookmarks, &fakeParticipationRepo{}, newFakeUserRepo(), nil, now)

		on, err := svc.ToggleBookmark(ctx, "u1", "h1")
		require.NoError(t, err)
		assert.True(t, on)

		ids, err := svc.ListBookmarks(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, []string{"h1"}, ids)

		off, err := svc.ToggleBookmark(ctx, "u1", "h1")
		require.NoError(t, err)
		assert.False(t, off)

		ids, err = svc.ListBookmarks(ctx, "u1")
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("bookmark does not require the hackathon to exist", func(t *testing.T) {
		bookmarks := newFakeBookmarkRepo()
		svc := newTestRelationshipService(newFakeHackathonRepo(), bookmarks, &fakeParticipationRepo{}, newFakeUserRepo(), nil, now)

		on, err := svc.ToggleBookmark(ctx, "u1", "ghost")
		require.NoError(t, err)
		assert.True(t, on)
	})

	t.Run("bookmarks are per user", func(t *testing.T) {
		bookmarks := newFakeBookmarkRepo()
		svc := newTestRelationshipService(newFakeHackathonRepo(), bookmarks, &fakeParticipationRepo{}, newFakeUserRepo(), nil, now)

		_, err := svc.ToggleBookmark(ctx, "u1", "h1")
		require.NoError(t, err)

		ids, err := svc.ListBookmarks(ctx, "u2")
		require.NoError(t, err)
		assert.Empty(t, ids)
	})
}

func TestRelationshipService_RegisterParticipation(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	newHackRepo := func(deadline time.Time) *fakeHackathonRepo {
		repo := newFakeHackathonRepo()
		repo.byID["h1"] = &domain.Hackathon{
			ID:                   "h1",
			Title:                "Spring Jam",
			Location:             "Berlin",
			StartDate:            deadline.Add(24 * time.Hour),
			RegistrationDeadline: deadline,
		}
		return repo
	}

	t.Run("registers before the deadline", func(t *testing.T) {
		users := newFakeUserRepo()
		users.add(&domain.User{ID: "u1", Name: "Ada", Email: "ada@b.com"})
		emails := &fakeEmailService{}
		parts := &fakeParticipationRepo{}
		svc := newTestRelationshipService(newHackRepo(now.Add(time.Hour)), newFakeBookmarkRepo(), parts, users, emails, now)

		p, err := svc.RegisterParticipation(ctx, "u1", "h1")
		require.NoError(t, err)
		assert.Equal(t, domain.ParticipationRegistered, p.Status)
		assert.Equal(t, now, p.RegisteredAt)
		require.Len(t, emails.registrations, 1)
		assert.Equal(t, "Spring Jam", emails.registrations[0].HackathonTitle)
	})

	t.Run("deadline passed", func(t *testing.T) {
		svc := newTestRelationshipService(newHackRepo(now.Add(-time.Hour)), newFakeBookmarkRepo(), &fakeParticipationRepo{}, newFakeUserRepo(), nil, now)

		_, err := svc.RegisterParticipation(ctx, "u1", "h1")
		assert.ErrorIs(t, err, domain.ErrDeadlinePassed)
	})

	t.Run("unknown hackathon", func(t *testing.T) {
		svc := newTestRelationshipService(newFakeHackathonRepo(), newFakeBookmarkRepo(), &fakeParticipationRepo{}, newFakeUserRepo(), nil, now)

		_, err := svc.RegisterParticipation(ctx, "u1", "ghost")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("duplicate registration", func(t *testing.T) {
		parts := &fakeParticipationRepo{}
		svc := newTestRelationshipService(newHackRepo(now.Add(time.Hour)), newFakeBookmarkRepo(), parts, newFakeUserRepo(), nil, now)

		_, err := svc.RegisterParticipation(ctx, "u1", "h1")
		require.NoError(t, err)

		_, err = svc.RegisterParticipation(ctx, "u1", "h1")
		assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
		assert.Len(t, parts.records, 1)
	})

	t.Run("store conflict surfaces as already registered", func(t *testing.T) {
		// Two requests racing past the existence check: the second insert hits
		// the store's unique constraint.
		parts := &fakeParticipationRepo{createErr: domain.ErrAlreadyRegistered}
		svc := newTestRelationshipService(newHackRepo(now.Add(time.Hour)), newFakeBookmarkRepo(), parts, newFakeUserRepo(), nil, now)

		_, err := svc.RegisterParticipation(ctx, "u1", "h1")
		assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
	})

	t.Run("confirmation email failure does not fail registration", func(t *testing.T) {
		users := newFakeUserRepo()
		users.add(&domain.User{ID: "u1", Name: "Ada", Email: "ada@b.com"})
		emails := &fakeEmailService{sendErr: assert.AnError}
		svc := newTestRelationshipService(newHackRepo(now.Add(time.Hour)), newFakeBookmarkRepo(), &fakeParticipationRepo{}, users, emails, now)

		_, err := svc.RegisterParticipation(ctx, "u1", "h1")
		assert.NoError(t, err)
	})
}

func TestRelationshipService_ListParticipations(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	parts := &fakeParticipationRepo{records: []*domain.Participation{
		{ID: "p1", UserID: "u1", HackathonID: "h1"},
		{ID: "p2", UserID: "u2", HackathonID: "h1"},
	}}
	svc := newTestRelationshipService(newFakeHackathonRepo(), newFakeBookmarkRepo(), parts, newFakeUserRepo(), nil, now)

	got, err := svc.ListParticipations(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)

	empty, err := svc.ListParticipations(ctx, "u3")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
