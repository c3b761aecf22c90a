package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	h "hackfinder/internal/delivery/http/helpers"
	"hackfinder/internal/domain"
)

// AdminUpdateUserRequest is the request body for the admin-side user update.
type AdminUpdateUserRequest struct {
	Name        *string             `json:"name"`
	Email       *string             `json:"email"`
	Role        *string             `json:"role"`
	Age         *int                `json:"age"`
	Gender      *string             `json:"gender"`
	PhoneNumber *string             `json:"phone_number"`
	Preferences *domain.Preferences `json:"preferences"`
}

// Validate implements Validator.
func (u AdminUpdateUserRequest) Validate() []string {
	var errs []string
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		errs = append(errs, "name cannot be empty")
	}
	if u.Email != nil && !emailRegexp.MatchString(strings.TrimSpace(strings.ToLower(*u.Email))) {
		errs = append(errs, "invalid email format")
	}
	if u.Role != nil && *u.Role != domain.RoleUser && *u.Role != domain.RoleAdmin {
		errs = append(errs, "role must be user or admin")
	}
	if u.Gender != nil && *u.Gender != "" && !validGender(*u.Gender) {
		errs = append(errs, "invalid gender")
	}
	return errs
}

type UserController struct {
	Logger *slog.Logger
	Users  domain.UserService
}

func NewUserController(logger *slog.Logger, users domain.UserService) *UserController {
	return &UserController{Logger: logger, Users: users}
}

func (c *UserController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, msg := h.MapError(err)
	if status == http.StatusInternalServerError {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	}
	h.WriteJSONError(w, status, code, msg)
}

// List godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the users"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /users [get]
func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	users, err := c.Users.List(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, users)
}

// Get godoc
// @Summary Get a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} helpers.APIResponse "data contains the user"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /users/{id} [get]
func (c *UserController) Get(w http.ResponseWriter, r *http.Request) {
	user, err := c.Users.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, user)
}

// Update godoc
// @Summary Update a user
// @Description Admin-side update. Role changes take effect on the target's next authorized request.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param body body AdminUpdateUserRequest true "User changes"
// @Success 200 {object} helpers.APIResponse "data contains the updated user"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /users/{id} [put]
func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	var req AdminUpdateUserRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Users.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		c.writeError(w, r, err)
		return
	}

	updated := *user
	if req.Name != nil {
		updated.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		updated.Email = *req.Email
	}
	if req.Role != nil {
		updated.Role = *req.Role
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
	if req.Preferences != nil {
		updated.Preferences = *req.Preferences
	}

	result, err := c.Users.AdminUpdate(r.Context(), &updated)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, result)
}

// Delete godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /users/{id} [delete]
func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Users.Delete(r.Context(), r.PathValue("id")); err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "user deleted"})
}
