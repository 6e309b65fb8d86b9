package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Parish-BookingService/internal/domain"
)

func TestAuth(t *testing.T) {
	tests := []struct {
		name          string
		headers       map[string]string
		wantStatus    int
		wantPrincipal domain.Principal
	}{
		{
			name: "member identity",
			headers: map[string]string{
				"X-User-ID":    "7",
				"X-User-Name":  "Anna Ivanova",
				"X-User-Email": "anna@example.com",
			},
			wantStatus: http.StatusOK,
			wantPrincipal: domain.Principal{
				ID:    7,
				Name:  "Anna Ivanova",
				Email: "anna@example.com",
				Role:  domain.RoleMember,
			},
		},
		{
			name: "admin role",
			headers: map[string]string{
				"X-User-ID":   "1",
				"X-User-Role": "admin",
			},
			wantStatus:    http.StatusOK,
			wantPrincipal: domain.Principal{ID: 1, Role: domain.RoleAdmin},
		},
		{
			name: "unknown role falls back to member",
			headers: map[string]string{
				"X-User-ID":   "7",
				"X-User-Role": "superuser",
			},
			wantStatus:    http.StatusOK,
			wantPrincipal: domain.Principal{ID: 7, Role: domain.RoleMember},
		},
		{
			name:       "missing user id",
			headers:    map[string]string{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "non-numeric user id",
			headers:    map[string]string{"X-User-ID": "anna"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "non-positive user id",
			headers:    map[string]string{"X-User-ID": "0"},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got domain.Principal
			var reached bool

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				principal, ok := PrincipalFromContext(r.Context())
				require.True(t, ok)
				got = principal
				reached = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/requests", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()

			Auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				require.True(t, reached)
				assert.Equal(t, tt.wantPrincipal, got)
			} else {
				assert.False(t, reached, "handler must not run without identity")
			}
		})
	}
}

func TestPrincipalFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := PrincipalFromContext(req.Context())
	assert.False(t, ok)
}
