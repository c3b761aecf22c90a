package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"hackfinder/internal/domain"
)

type authService struct {
	userRepo    domain.UserRepository
	hasher      domain.PasswordHasher
	tokenIssuer domain.TokenIssuer
	verifier    domain.TokenVerifier
	tokenExpiry time.Duration
	adminSecret string
	emailSvc    domain.EmailService
	logger      *slog.Logger
}

// NewAuthService creates the credential gate with the given user store, crypto
// ports, and token config. adminSecret guards the one-time bootstrap-admin
// path; an empty secret disables it entirely.
func NewAuthService(
	userRepo domain.UserRepository,
	hasher domain.PasswordHasher,
	tokenIssuer domain.TokenIssuer,
	verifier domain.TokenVerifier,
	tokenExpiry time.Duration,
	adminSecret string,
	emailSvc domain.EmailService,
	logger *slog.Logger,
) domain.AuthService {
	return &authService{
		userRepo:    userRepo,
		hasher:      hasher,
		tokenIssuer: tokenIssuer,
		verifier:    verifier,
		tokenExpiry: tokenExpiry,
		adminSecret: adminSecret,
		emailSvc:    emailSvc,
		logger:      logger,
	}
}

func (s *authService) SignUp(ctx context.Context, input domain.SignUpInput) (*domain.User, string, error) {
	user, err := s.createUser(ctx, input, domain.RoleUser)
	if err != nil {
		return nil, "", err
	}
	token, err := s.tokenIssuer.Issue(user.ID, s.tokenExpiry)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	s.sendWelcome(ctx, user)
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Unknown email and wrong password return the same error so the
		// response carries no account-enumeration signal.
		return nil, "", domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(user.PasswordHash, user.Salt, password); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}
	token, err := s.tokenIssuer.Issue(user.ID, s.tokenExpiry)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

func (s *authService) Authorize(ctx context.Context, token, requiredRole string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}
	userID, err := s.verifier.Verify(token)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}
	// The token carries only the user ID. The role is read back from the
	// store here so a role change takes effect on the very next request.
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if requiredRole == domain.RoleAdmin && !user.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return user, nil
}

func (s *authService) BootstrapAdmin(ctx context.Context, secret string, input domain.SignUpInput) (*domain.User, string, error) {
	// Once any admin exists this path is closed for good, regardless of the
	// secret supplied, so the exists check must come first.
	count, err := s.userRepo.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return nil, "", fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		return nil, "", domain.ErrAdminExists
	}
	if s.adminSecret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(s.adminSecret)) != 1 {
		return nil, "", domain.ErrForbidden
	}
	user, err := s.createUser(ctx, input, domain.RoleAdmin)
	if err != nil {
		return nil, "", err
	}
	token, err := s.tokenIssuer.Issue(user.ID, s.tokenExpiry)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

func (s *authService) createUser(ctx context.Context, input domain.SignUpInput, role string) (*domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	prefs := domain.DefaultPreferences()
	if input.Preferences != nil {
		prefs = *input.Preferences
	}

	now := time.Now()
	user := &domain.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hash,
		Salt:         salt,
		Role:         role,
		Age:          input.Age,
		Gender:       input.Gender,
		PhoneNumber:  input.PhoneNumber,
		Preferences:  prefs,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *authService) sendWelcome(ctx context.Context, user *domain.User) {
	if s.emailSvc == nil {
		return
	}
	data := &domain.WelcomeEmailData{Email: user.Email, Name: user.Name}
	if err := s.emailSvc.SendWelcome(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "welcome email failed", "email", user.Email, "err", err)
	}
}
