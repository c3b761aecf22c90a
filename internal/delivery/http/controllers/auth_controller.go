package controllers

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	h "hackfinder/internal/delivery/http/helpers"
	"hackfinder/internal/delivery/http/middleware"
	"hackfinder/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var genders = []string{"male", "female", "non-binary", "prefer-not-to-say"}

func validGender(g string) bool {
	for _, v := range genders {
		if v == g {
			return true
		}
	}
	return false
}

// SignUpRequest is the request body for POST /auth/signup
type SignUpRequest struct {
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Password    string              `json:"password"`
	Age         int                 `json:"age"`
	Gender      string              `json:"gender"`
	PhoneNumber string              `json:"phone_number"`
	Preferences *domain.Preferences `json:"preferences"`
}

// Validate implements Validator.
func (s SignUpRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, "name is required")
	}
	email := strings.TrimSpace(strings.ToLower(s.Email))
	if email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegexp.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	if s.Password == "" {
		errs = append(errs, "password is required")
	} else if len(s.Password) < 6 {
		errs = append(errs, "password must be at least 6 characters")
	}
	if s.Age != 0 && (s.Age < 13 || s.Age > 100) {
		errs = append(errs, "age must be between 13 and 100")
	}
	if s.Gender != "" && !validGender(s.Gender) {
		errs = append(errs, "invalid gender")
	}
	if s.Preferences != nil {
		for _, d := range s.Preferences.Domains {
			if !domain.ValidPreferenceDomain(d) {
				errs = append(errs, "unknown preference domain: "+d)
			}
		}
	}
	return errs
}

// LoginRequest is the request body for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(l.Email) == "" {
		errs = append(errs, "email is required")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// BootstrapAdminRequest is the request body for POST /auth/bootstrap-admin
type BootstrapAdminRequest struct {
	Secret   string `json:"secret"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (b BootstrapAdminRequest) Validate() []string {
	var errs []string
	if b.Secret == "" {
		errs = append(errs, "secret is required")
	}
	if strings.TrimSpace(b.Name) == "" {
		errs = append(errs, "name is required")
	}
	if !emailRegexp.MatchString(strings.TrimSpace(strings.ToLower(b.Email))) {
		errs = append(errs, "valid email is required")
	}
	if len(b.Password) < 6 {
		errs = append(errs, "password must be at least 6 characters")
	}
	return errs
}

// AuthResponse is the response body for signup, login, and bootstrap-admin.
type AuthResponse struct {
	User      *domain.User `json:"user"`
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
}

// UpdateProfileRequest is the request body for PUT /auth/profile. Absent
// fields keep their current values; the password is never updatable here.
type UpdateProfileRequest struct {
	Name        *string             `json:"name"`
	Email       *string             `json:"email"`
	Age         *int                `json:"age"`
	Gender      *string             `json:"gender"`
	PhoneNumber *string             `json:"phone_number"`
	Bio         *string             `json:"bio"`
	Skills      []string            `json:"skills"`
	Experience  *string             `json:"experience"`
	Interests   []string            `json:"interests"`
	City        *string             `json:"city"`
	Country     *string             `json:"country"`
	Timezone    *string             `json:"timezone"`
	Preferences *domain.Preferences `json:"preferences"`
}

// Validate implements Validator.
func (u UpdateProfileRequest) Validate() []string {
	var errs []string
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		errs = append(errs, "name cannot be empty")
	}
	if u.Email != nil && !emailRegexp.MatchString(strings.TrimSpace(strings.ToLower(*u.Email))) {
		errs = append(errs, "invalid email format")
	}
	if u.Age != nil && *u.Age != 0 && (*u.Age < 13 || *u.Age > 100) {
		errs = append(errs, "age must be between 13 and 100")
	}
	if u.Gender != nil && *u.Gender != "" && !validGender(*u.Gender) {
		errs = append(errs, "invalid gender")
	}
	return errs
}

// BookmarkResponse is the response body for the bookmark toggle.
type BookmarkResponse struct {
	Bookmarked bool `json:"bookmarked"`
}

type AuthController struct {
	Logger        *slog.Logger
	Auth          domain.AuthService
	Users         domain.UserService
	Relationships domain.RelationshipService
}

func NewAuthController(logger *slog.Logger, auth domain.AuthService, users domain.UserService, relationships domain.RelationshipService) *AuthController {
	return &AuthController{
		Logger:        logger,
		Auth:          auth,
		Users:         users,
		Relationships: relationships,
	}
}

func (c *AuthController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, msg := h.MapError(err)
	if status == http.StatusInternalServerError {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	}
	h.WriteJSONError(w, status, code, msg)
}

// SignUp godoc
// @Summary Sign up a new user
// @Description Create a new account with email, password, and optional profile preferences. Returns the user and a signed token.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body SignUpRequest true "Sign-up data"
// @Success 201 {object} helpers.APIResponse "data contains user, token, and token_type"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /auth/signup [post]
func (c *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	user, token, err := c.Auth.SignUp(r.Context(), domain.SignUpInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Age:         req.Age,
		Gender:      req.Gender,
		PhoneNumber: req.PhoneNumber,
		Preferences: req.Preferences,
	})
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, AuthResponse{User: user, Token: token, TokenType: "Bearer"})
}

// Login godoc
// @Summary Log in
// @Description Authenticate with email and password. Returns the user and a signed token carrying only the user id.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} helpers.APIResponse "data contains user, token, and token_type"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	user, token, err := c.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, AuthResponse{User: user, Token: token, TokenType: "Bearer"})
}

// BootstrapAdmin godoc
// @Summary Create the first admin account
// @Description One-time setup path guarded by a shared secret. Permanently conflicts once any admin exists.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body BootstrapAdminRequest true "Bootstrap data"
// @Success 201 {object} helpers.APIResponse "data contains user, token, and token_type"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /auth/bootstrap-admin [post]
func (c *AuthController) BootstrapAdmin(w http.ResponseWriter, r *http.Request) {
	var req BootstrapAdminRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	user, token, err := c.Auth.BootstrapAdmin(r.Context(), req.Secret, domain.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, AuthResponse{User: user, Token: token, TokenType: "Bearer"})
}

// Me godoc
// @Summary Get the current user's profile
// @Description Returns the authenticated user together with bookmarked hackathon ids and participation records.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the profile"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /auth/me [get]
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "authentication required")
		return
	}
	profile, err := c.Users.GetProfile(r.Context(), user.ID)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Update the current user's profile
// @Description Applies profile changes for the authenticated user. Email changes are checked for uniqueness; the password cannot be changed here.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateProfileRequest true "Profile changes"
// @Success 200 {object} helpers.APIResponse "data contains the updated user"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /auth/profile [put]
func (c *AuthController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "authentication required")
		return
	}
	var req UpdateProfileRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}

	updated := *user
	if req.Name != nil {
		updated.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		updated.Email = *req.Email
	}
	if req.Age != nil {
		updated.Age = *req.Age
	}
	if req.Gender != nil {
		updated.Gender = *req.Gender
	}
	if req.PhoneNumber != nil {
		updated.PhoneNumber = *req.PhoneNumber
	}
	if req.Bio != nil {
		updated.Bio = *req.Bio
	}
	if req.Skills != nil {
		updated.Skills = req.Skills
	}
	if req.Experience != nil {
		updated.Experience = *req.Experience
	}
	if req.Interests != nil {
		updated.Interests = req.Interests
	}
	if req.City != nil {
		updated.City = *req.City
	}
	if req.Country != nil {
		updated.Country = *req.Country
	}
	if req.Timezone != nil {
		updated.Timezone = *req.Timezone
	}
	if req.Preferences != nil {
		updated.Preferences = *req.Preferences
	}

	result, err := c.Users.UpdateProfile(r.Context(), &updated)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, result)
}

// ToggleBookmark godoc
// @Summary Bookmark or unbookmark a hackathon
// @Description Idempotent toggle: bookmarks the hackathon if absent, removes the bookmark if present.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Param hackathonID path string true "Hackathon ID"
// @Success 200 {object} helpers.APIResponse "data contains the resulting bookmark state"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /auth/bookmark/{hackathonID} [post]
func (c *AuthController) ToggleBookmark(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "authentication required")
		return
	}
	hackathonID := r.PathValue("hackathonID")
	bookmarked, err := c.Relationships.ToggleBookmark(r.Context(), user.ID, hackathonID)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, BookmarkResponse{Bookmarked: bookmarked})
}

// Participate godoc
// @Summary Register participation in a hackathon
// @Description Appends a registered-status participation record. Fails once the registration deadline has passed or when already registered.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Param hackathonID path string true "Hackathon ID"
// @Success 201 {object} helpers.APIResponse "data contains the participation record"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (deadline passed)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already registered)"
// @Router /auth/participate/{hackathonID} [post]
func (c *AuthController) Participate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "authentication required")
		return
	}
	hackathonID := r.PathValue("hackathonID")
	participation, err := c.Relationships.RegisterParticipation(r.Context(), user.ID, hackathonID)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, participation)
}
