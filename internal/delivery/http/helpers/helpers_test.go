package helpers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"hackfinder/internal/domain"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantPage int
		wantSize int
	}{
		{"defaults", "", 1, 10},
		{"explicit", "page=3&limit=25", 3, 25},
		{"limit clamped to max", "limit=5000", 1, 100},
		{"garbage falls back", "page=abc&limit=-2", 1, 10},
		{"zero page falls back", "page=0", 1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/hackathons?"+tt.query, nil)
			p := ParsePagination(r)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantSize, p.PageSize)
		})
	}
}

func TestNewPaginationMeta(t *testing.T) {
	meta := NewPaginationMeta(2, 10, 31)
	assert.Equal(t, 4, meta.TotalPages)
	assert.Equal(t, 31, meta.Total)

	empty := NewPaginationMeta(1, 10, 0)
	assert.Equal(t, 0, empty.TotalPages)
}

func TestParseHackathonFilter(t *testing.T) {
	t.Run("full query", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet,
			"/hackathons?status=upcoming&mode=online&difficulty=beginner&theme=fintech&location=berlin&sortBy=title&sortOrder=desc&page=2&limit=20", nil)
		f := ParseHackathonFilter(r)
		assert.Equal(t, "upcoming", f.Status)
		assert.Equal(t, "online", f.Mode)
		assert.Equal(t, "beginner", f.Difficulty)
		assert.Equal(t, "fintech", f.Theme)
		assert.Equal(t, "berlin", f.Location)
		assert.Equal(t, domain.SortByTitle, f.SortBy)
		assert.Equal(t, domain.SortDesc, f.SortOrder)
		assert.Equal(t, 2, f.Page.Page)
		assert.Equal(t, 20, f.Page.PageSize)
	})

	t.Run("unknown sort falls back to the default", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/hackathons?sortBy=password_hash&sortOrder=sideways", nil)
		f := ParseHackathonFilter(r)
		assert.Equal(t, domain.SortByStartDate, f.SortBy)
		assert.Equal(t, domain.SortAsc, f.SortOrder)
	})

	t.Run("empty query imposes no constraints", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/hackathons", nil)
		f := ParseHackathonFilter(r)
		assert.Empty(t, f.Status)
		assert.Empty(t, f.Theme)
		assert.Equal(t, domain.SortByStartDate, f.SortBy)
	})
}

func TestMapError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{domain.ErrNotFound, http.StatusNotFound, ErrCodeNotFound},
		{domain.ErrUserNotFound, http.StatusNotFound, ErrCodeNotFound},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, ErrCodeUnauthorized},
		{domain.ErrUnauthenticated, http.StatusUnauthorized, ErrCodeUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden, ErrCodeForbidden},
		{domain.ErrDuplicateEmail, http.StatusConflict, ErrCodeConflict},
		{domain.ErrAlreadyRegistered, http.StatusConflict, ErrCodeConflict},
		{domain.ErrAdminExists, http.StatusConflict, ErrCodeConflict},
		{domain.ErrDeadlinePassed, http.StatusBadRequest, ErrCodeBadRequest},
		{domain.ErrInvalidInput, http.StatusBadRequest, ErrCodeBadRequest},
		{assert.AnError, http.StatusInternalServerError, ErrCodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			status, code, _ := MapError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

type testSignupBody struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (b *testSignupBody) Validate() []string {
	var errs []string
	if b.Name == "" {
		errs = append(errs, "name is required")
	}
	if b.Email == "" {
		errs = append(errs, "email is required")
	}
	return errs
}

func TestDecodeAndValidate(t *testing.T) {
	post := func(body string, dest any) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		w := httptest.NewRecorder()
		DecodeAndValidate(w, r, dest)
		return w
	}

	t.Run("valid body passes", func(t *testing.T) {
		var b testSignupBody
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ada","email":"ada@b.com"}`))
		w := httptest.NewRecorder()
		assert.True(t, DecodeAndValidate(w, r, &b))
		assert.Equal(t, "Ada", b.Name)
	})

	t.Run("unknown field is a bad request", func(t *testing.T) {
		var b testSignupBody
		w := post(`{"name":"Ada","email":"ada@b.com","nmae":"typo"}`, &b)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed json is a bad request", func(t *testing.T) {
		var b testSignupBody
		w := post(`{"name":`, &b)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("failures name every offending field", func(t *testing.T) {
		var b testSignupBody
		w := post(`{}`, &b)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "name is required; email is required")
	})
}
