package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	h "hackfinder/internal/delivery/http/helpers"
	"hackfinder/internal/delivery/http/middleware"
	"hackfinder/internal/domain"
)

// HackathonRequest is the request body for creating or updating a hackathon.
type HackathonRequest struct {
	Title                string           `json:"title"`
	Description          string           `json:"description"`
	Organizer            string           `json:"organizer"`
	Location             string           `json:"location"`
	Mode                 string           `json:"mode"`
	StartDate            time.Time        `json:"start_date"`
	EndDate              time.Time        `json:"end_date"`
	RegistrationDeadline time.Time        `json:"registration_deadline"`
	PrizePool            string           `json:"prize_pool"`
	Themes               []string         `json:"themes"`
	Technologies         []string         `json:"technologies"`
	Tags                 []string         `json:"tags"`
	Eligibility          string           `json:"eligibility"`
	TeamSize             *domain.TeamSize `json:"team_size"`
	RegistrationLink     string           `json:"registration_link"`
	WebsiteURL           string           `json:"website_url"`
	Status               string           `json:"status"`
	Difficulty           string           `json:"difficulty"`
}

// Validate implements Validator.
func (q HackathonRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(q.Title) == "" {
		errs = append(errs, "title is required")
	}
	if strings.TrimSpace(q.Organizer) == "" {
		errs = append(errs, "organizer is required")
	}
	if strings.TrimSpace(q.Location) == "" {
		errs = append(errs, "location is required")
	}
	if !domain.ValidMode(q.Mode) {
		errs = append(errs, "mode must be one of: "+strings.Join(domain.Modes, ", "))
	}
	if q.StartDate.IsZero() {
		errs = append(errs, "start_date is required")
	}
	if q.EndDate.IsZero() {
		errs = append(errs, "end_date is required")
	}
	if q.RegistrationDeadline.IsZero() {
		errs = append(errs, "registration_deadline is required")
	}
	if strings.TrimSpace(q.RegistrationLink) == "" {
		errs = append(errs, "registration_link is required")
	}
	if q.Status != "" && !domain.ValidStatus(q.Status) {
		errs = append(errs, "status must be one of: "+strings.Join(domain.Statuses, ", "))
	}
	if q.Difficulty != "" && !domain.ValidDifficulty(q.Difficulty) {
		errs = append(errs, "difficulty must be one of: "+strings.Join(domain.Difficulties, ", "))
	}
	if q.TeamSize != nil && q.TeamSize.Min > q.TeamSize.Max {
		errs = append(errs, "team_size.min cannot exceed team_size.max")
	}
	return errs
}

func (q HackathonRequest) toDomain() *domain.Hackathon {
	hk := &domain.Hackathon{
		Title:                q.Title,
		Description:          q.Description,
		Organizer:            q.Organizer,
		Location:             q.Location,
		Mode:                 q.Mode,
		StartDate:            q.StartDate,
		EndDate:              q.EndDate,
		RegistrationDeadline: q.RegistrationDeadline,
		PrizePool:            q.PrizePool,
		Themes:               q.Themes,
		Technologies:         q.Technologies,
		Tags:                 q.Tags,
		Eligibility:          q.Eligibility,
		RegistrationLink:     q.RegistrationLink,
		WebsiteURL:           q.WebsiteURL,
		Status:               q.Status,
		Difficulty:           q.Difficulty,
	}
	if q.TeamSize != nil {
		hk.TeamSize = *q.TeamSize
	}
	return hk
}

// HackathonListResponse is the response body for the hackathon listing.
type HackathonListResponse struct {
	Hackathons []*domain.Hackathon `json:"hackathons"`
	Pagination h.PaginationMeta    `json:"pagination"`
}

type HackathonController struct {
	Logger     *slog.Logger
	Hackathons domain.HackathonService
}

func NewHackathonController(logger *slog.Logger, hackathons domain.HackathonService) *HackathonController {
	return &HackathonController{Logger: logger, Hackathons: hackathons}
}

func (c *HackathonController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, msg := h.MapError(err)
	if status == http.StatusInternalServerError {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	}
	h.WriteJSONError(w, status, code, msg)
}

// List godoc
// @Summary List hackathons
// @Description Returns a filtered, paginated page of hackathons. With a valid bearer token, the page is reordered by relevance to the caller's domain preferences.
// @Tags hackathons
// @Produce json
// @Param status query string false "Filter by status"
// @Param mode query string false "Filter by mode"
// @Param difficulty query string false "Filter by difficulty"
// @Param theme query string false "Case-insensitive substring match against theme tags"
// @Param location query string false "Substring match against location"
// @Param sortBy query string false "Sort column: start_date, end_date, registration_deadline, title, created_at, difficulty"
// @Param sortOrder query string false "asc or desc"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains hackathons and pagination"
// @Router /hackathons [get]
func (c *HackathonController) List(w http.ResponseWriter, r *http.Request) {
	filter := h.ParseHackathonFilter(r)

	var viewerID string
	if user, ok := middleware.UserFromContext(r.Context()); ok {
		viewerID = user.ID
	}

	hackathons, total, err := c.Hackathons.List(r.Context(), filter, viewerID)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, HackathonListResponse{
		Hackathons: hackathons,
		Pagination: h.NewPaginationMeta(filter.Page.Page, filter.Page.PageSize, total),
	})
}

// Get godoc
// @Summary Get a hackathon
// @Tags hackathons
// @Produce json
// @Param id path string true "Hackathon ID"
// @Success 200 {object} helpers.APIResponse "data contains the hackathon"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /hackathons/{id} [get]
func (c *HackathonController) Get(w http.ResponseWriter, r *http.Request) {
	hackathon, err := c.Hackathons.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, hackathon)
}

// Search godoc
// @Summary Search hackathons
// @Description Case-insensitive substring search across title, description, organizer, themes, technologies, and tags.
// @Tags hackathons
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} helpers.APIResponse "data contains the matching hackathons"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /hackathons/search [get]
func (c *HackathonController) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "query parameter q is required")
		return
	}
	hackathons, err := c.Hackathons.Search(r.Context(), query)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, hackathons)
}

// Create godoc
// @Summary Create a hackathon
// @Tags hackathons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body HackathonRequest true "Hackathon data"
// @Success 201 {object} helpers.APIResponse "data contains the created hackathon"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /hackathons [post]
func (c *HackathonController) Create(w http.ResponseWriter, r *http.Request) {
	var req HackathonRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	hackathon := req.toDomain()
	if err := c.Hackathons.Create(r.Context(), hackathon); err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, hackathon)
}

// Update godoc
// @Summary Update a hackathon
// @Tags hackathons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hackathon ID"
// @Param body body HackathonRequest true "Hackathon data"
// @Success 200 {object} helpers.APIResponse "data contains the updated hackathon"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /hackathons/{id} [put]
func (c *HackathonController) Update(w http.ResponseWriter, r *http.Request) {
	var req HackathonRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	hackathon := req.toDomain()
	hackathon.ID = r.PathValue("id")
	updated, err := c.Hackathons.Update(r.Context(), hackathon)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a hackathon
// @Tags hackathons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hackathon ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /hackathons/{id} [delete]
func (c *HackathonController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Hackathons.Delete(r.Context(), r.PathValue("id")); err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "hackathon deleted"})
}
