package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackfinder/internal/domain"
)

// fakeGate implements domain.AuthService for middleware tests. Only Authorize
// is exercised here.
type fakeGate struct {
	user *domain.User
	err  error
}

func (f *fakeGate) SignUp(ctx context.Context, input domain.SignUpInput) (*domain.User, string, error) {
	return nil, "", nil
}

func (f *fakeGate) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	return nil, "", nil
}

func (f *fakeGate) Authorize(ctx context.Context, token, requiredRole string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeGate) BootstrapAdmin(ctx context.Context, secret string, input domain.SignUpInput) (*domain.User, string, error) {
	return nil, "", nil
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"missing", "", ""},
		{"wrong scheme", "Basic abc", ""},
		{"bare token", "abc.def.ghi", ""},
		{"trailing space", "Bearer abc ", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.want, BearerToken(r))
		})
	}
}

func TestRequireAuth(t *testing.T) {
	user := &domain.User{ID: "u1", Role: domain.RoleUser}

	next := func(w http.ResponseWriter, r *http.Request) {
		got, ok := UserFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "u1", got.ID)
		w.WriteHeader(http.StatusNoContent)
	}

	t.Run("valid token reaches the handler with the user set", func(t *testing.T) {
		handler := RequireAuth(&fakeGate{user: user}, "")(next)
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer good")
		w := httptest.NewRecorder()
		handler(w, r)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		handler := RequireAuth(&fakeGate{user: user}, "")(next)
		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var body struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "unauthorized", body.Error.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		handler := RequireAuth(&fakeGate{err: domain.ErrUnauthenticated}, "")(next)
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer bad")
		w := httptest.NewRecorder()
		handler(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("insufficient role", func(t *testing.T) {
		handler := RequireAuth(&fakeGate{err: domain.ErrForbidden}, domain.RoleAdmin)(next)
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer good")
		w := httptest.NewRecorder()
		handler(w, r)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestOptionalAuth(t *testing.T) {
	user := &domain.User{ID: "u1", Role: domain.RoleUser}

	t.Run("valid token sets the user", func(t *testing.T) {
		handler := OptionalAuth(&fakeGate{user: user})(func(w http.ResponseWriter, r *http.Request) {
			got, ok := UserFromContext(r.Context())
			require.True(t, ok)
			assert.Equal(t, "u1", got.ID)
		})
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer good")
		handler(httptest.NewRecorder(), r)
	})

	t.Run("no token passes through anonymously", func(t *testing.T) {
		handler := OptionalAuth(&fakeGate{user: user})(func(w http.ResponseWriter, r *http.Request) {
			_, ok := UserFromContext(r.Context())
			assert.False(t, ok)
			w.WriteHeader(http.StatusOK)
		})
		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid token also passes through anonymously", func(t *testing.T) {
		handler := OptionalAuth(&fakeGate{err: domain.ErrUnauthenticated})(func(w http.ResponseWriter, r *http.Request) {
			_, ok := UserFromContext(r.Context())
			assert.False(t, ok)
			w.WriteHeader(http.StatusOK)
		})
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer expired")
		w := httptest.NewRecorder()
		handler(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
