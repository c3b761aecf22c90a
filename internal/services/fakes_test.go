package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"hackfinder/internal/domain"
)

// fakeUserRepo implements domain.UserRepository for tests.
type fakeUserRepo struct {
	byID      map[string]*domain.User
	byEmail   map[string]*domain.User
	nextID    int
	getErr    error
	createErr error
	updateErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
		nextID:  1,
	}
}

func (f *fakeUserRepo) add(u *domain.User) {
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	u.ID = "user-" + strconv.Itoa(f.nextID)
	f.nextID++
	f.add(u)
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := f.byEmail[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) Update(ctx context.Context, u *domain.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	old, ok := f.byID[u.ID]
	if !ok {
		return domain.ErrUserNotFound
	}
	delete(f.byEmail, old.Email)
	cp := *u
	f.add(&cp)
	return nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id, passwordHash, salt string) error {
	u, ok := f.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	u.Salt = salt
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	u, ok := f.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	delete(f.byEmail, u.Email)
	delete(f.byID, id)
	return nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	var users []*domain.User
	for _, u := range f.byID {
		cp := *u
		users = append(users, &cp)
	}
	return users, nil
}

func (f *fakeUserRepo) CountByRole(ctx context.Context, role string) (int, error) {
	n := 0
	for _, u := range f.byID {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

// fakeHackathonRepo implements domain.HackathonRepository for tests.
type fakeHackathonRepo struct {
	byID    map[string]*domain.Hackathon
	listOut []*domain.Hackathon
	total   int
	listErr error
	getErr  error
}

func newFakeHackathonRepo() *fakeHackathonRepo {
	return &fakeHackathonRepo{byID: make(map[string]*domain.Hackathon)}
}

func (f *fakeHackathonRepo) Create(ctx context.Context, h *domain.Hackathon) error {
	if h.ID == "" {
		h.ID = "hack-created"
	}
	f.byID[h.ID] = h
	return nil
}

func (f *fakeHackathonRepo) GetByID(ctx context.Context, id string) (*domain.Hackathon, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if h, ok := f.byID[id]; ok {
		cp := *h
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeHackathonRepo) Update(ctx context.Context, h *domain.Hackathon) error {
	if _, ok := f.byID[h.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[h.ID] = h
	return nil
}

func (f *fakeHackathonRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeHackathonRepo) List(ctx context.Context, filter domain.HackathonFilter) ([]*domain.Hackathon, int, error) {
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.listOut, f.total, nil
}

func (f *fakeHackathonRepo) Search(ctx context.Context, query string) ([]*domain.Hackathon, error) {
	return f.listOut, nil
}

// fakeBookmarkRepo implements domain.BookmarkRepository for tests.
type fakeBookmarkRepo struct {
	byUser map[string][]string
	addErr error
}

func newFakeBookmarkRepo() *fakeBookmarkRepo {
	return &fakeBookmarkRepo{byUser: make(map[string][]string)}
}

func (f *fakeBookmarkRepo) Add(ctx context.Context, userID, hackathonID string) error {
	if f.addErr != nil {
		return f.addErr
	}
	for _, id := range f.byUser[userID] {
		if id == hackathonID {
			return nil
		}
	}
	f.byUser[userID] = append(f.byUser[userID], hackathonID)
	return nil
}

func (f *fakeBookmarkRepo) Remove(ctx context.Context, userID, hackathonID string) (bool, error) {
	ids := f.byUser[userID]
	for i, id := range ids {
		if id == hackathonID {
			f.byUser[userID] = append(ids[:i], ids[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookmarkRepo) ListIDsByUserID(ctx context.Context, userID string) ([]string, error) {
	return f.byUser[userID], nil
}

// fakeParticipationRepo implements domain.ParticipationRepository for tests.
type fakeParticipationRepo struct {
	records   []*domain.Participation
	createErr error
}

func (f *fakeParticipationRepo) Create(ctx context.Context, p *domain.Participation) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, r := range f.records {
		if r.UserID == p.UserID && r.HackathonID == p.HackathonID {
			return domain.ErrAlreadyRegistered
		}
	}
	p.ID = "part-created"
	f.records = append(f.records, p)
	return nil
}

func (f *fakeParticipationRepo) GetByUserAndHackathon(ctx context.Context, userID, hackathonID string) (*domain.Participation, error) {
	for _, r := range f.records {
		if r.UserID == userID && r.HackathonID == hackathonID {
			return r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeParticipationRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.Participation, error) {
	var out []*domain.Participation
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeParticipationRepo) ListWithHackathonsByUserID(ctx context.Context, userID string) ([]*domain.Participation, error) {
	return f.ListByUserID(ctx, userID)
}

// fakePasswordHasher implements domain.PasswordHasher for tests.
type fakePasswordHasher struct{}

func (fakePasswordHasher) GenerateSalt() (string, error) { return "salt", nil }
func (fakePasswordHasher) Hash(salt, password string) (string, error) {
	return "hash-" + salt + "-" + password, nil
}
func (fakePasswordHasher) Compare(hash, salt, password string) error {
	if hash != "hash-"+salt+"-"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeTokenCodec implements domain.TokenIssuer and domain.TokenVerifier.
type fakeTokenCodec struct {
	issueErr  error
	verifyErr error
}

func (f *fakeTokenCodec) Issue(userID string, expiry time.Duration) (string, error) {
	if f.issueErr != nil {
		return "", f.issueErr
	}
	return "token-" + userID, nil
}

func (f *fakeTokenCodec) Verify(token string) (string, error) {
	if f.verifyErr != nil {
		return "", f.verifyErr
	}
	if len(token) > 6 && token[:6] == "token-" {
		return token[6:], nil
	}
	return "", errors.New("bad token")
}

// fakeEmailService records sends instead of delivering anything.
type fakeEmailService struct {
	welcomes      []*domain.WelcomeEmailData
	registrations []*domain.RegistrationEmailData
	sendErr       error
}

func (f *fakeEmailService) SendWelcome(ctx context.Context, data *domain.WelcomeEmailData) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.welcomes = append(f.welcomes, data)
	return nil
}

func (f *fakeEmailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationEmailData) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.registrations = append(f.registrations, data)
	return nil
}
