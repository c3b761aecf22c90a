package domain

import (
	"context"
	"time"
)

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account. PasswordHash and Salt never appear in
// JSON output; the transport layer returns users as-is and relies on these
// tags to strip the credential.
type User struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Salt         string      `json:"-"`
	Role         string      `json:"role"`
	Age          int         `json:"age,omitempty"`
	Gender       string      `json:"gender,omitempty"`
	PhoneNumber  string      `json:"phone_number,omitempty"`
	Bio          string      `json:"bio,omitempty"`
	Skills       []string    `json:"skills,omitempty"`
	Experience   string      `json:"experience,omitempty"`
	Interests    []string    `json:"interests,omitempty"`
	City         string      `json:"city,omitempty"`
	Country      string      `json:"country,omitempty"`
	Timezone     string      `json:"timezone,omitempty"`
	Preferences  Preferences `json:"preferences"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// IsAdmin reports whether the user currently holds the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user. The token
// carries only the user ID; role and permissions are re-resolved from the
// store on every authorized call.
type TokenIssuer interface {
	Issue(userID string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// UserRepository defines the interface for user storage.
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, u *User) error
	UpdatePassword(ctx context.Context, id, passwordHash, salt string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*User, error)
	CountByRole(ctx context.Context, role string) (int, error)
}

// SignUpInput carries the fields accepted at account creation.
type SignUpInput struct {
	Name        string
	Email       string
	Password    string
	Age         int
	Gender      string
	PhoneNumber string
	Preferences *Preferences
}

// AuthService is the credential gate: it authenticates principals, issues and
// verifies tokens, and authorizes operations against a required role.
type AuthService interface {
	SignUp(ctx context.Context, input SignUpInput) (*User, string, error)
	Login(ctx context.Context, email, password string) (*User, string, error)
	// Authorize resolves the token to a user and checks the required role.
	// requiredRole is either RoleAdmin or empty for "any authenticated user".
	Authorize(ctx context.Context, token, requiredRole string) (*User, error)
	// BootstrapAdmin creates the first admin account. It succeeds only while
	// zero admins exist and the shared setup secret matches.
	BootstrapAdmin(ctx context.Context, secret string, input SignUpInput) (*User, string, error)
}

// UserService defines profile and admin-side user management.
type UserService interface {
	GetByID(ctx context.Context, id string) (*User, error)
	// GetProfile returns the user together with bookmarked hackathon IDs and
	// participation records.
	GetProfile(ctx context.Context, id string) (*Profile, error)
	// UpdateProfile applies profile changes for the user's own account. Email
	// changes are checked for uniqueness; the password is never updated here.
	UpdateProfile(ctx context.Context, u *User) (*User, error)
	List(ctx context.Context) ([]*User, error)
	// AdminUpdate applies an admin-side update, including role changes.
	AdminUpdate(ctx context.Context, u *User) (*User, error)
	Delete(ctx context.Context, id string) error
}

// Profile bundles a user with their hackathon relationships for /auth/me.
type Profile struct {
	User           *User            `json:"user"`
	Bookmarks      []string         `json:"bookmarked_hackathons"`
	Participations []*Participation `json:"participated_hackathons"`
}
