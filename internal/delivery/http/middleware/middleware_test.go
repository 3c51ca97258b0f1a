package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-vet-clinic/config"
	"go-vet-clinic/internal/domain/entity"
	"go-vet-clinic/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChecker struct {
	active bool
	err    error
	gotID  string
}

func (f *fakeChecker) IsAccessTokenActive(_ context.Context, _ uuid.UUID, tokenID string) (bool, error) {
	f.gotID = tokenID
	return f.active, f.err
}

func newJWT() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})
}

func TestAuthenticate(t *testing.T) {
	svc := newJWT()
	userID := uuid.New()
	access, accessID, err := svc.GenerateAccessToken(userID, "vet@clinic.ph", entity.RoleIDDoctor)
	require.NoError(t, err)
	refresh, _, err := svc.GenerateRefreshToken(userID, "vet@clinic.ph", entity.RoleIDDoctor)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		checker    *fakeChecker
		wantStatus int
	}{
		{"missing header", "", &fakeChecker{active: true}, http.StatusUnauthorized},
		{"bad scheme", "Token " + access, &fakeChecker{active: true}, http.StatusUnauthorized},
		{"garbage token", "Bearer nope", &fakeChecker{active: true}, http.StatusUnauthorized},
		{"refresh token", "Bearer " + refresh, &fakeChecker{active: true}, http.StatusUnauthorized},
		{"revoked", "Bearer " + access, &fakeChecker{active: false}, http.StatusUnauthorized},
		{"store down", "Bearer " + access, &fakeChecker{err: errors.New("redis down")}, http.StatusInternalServerError},
		{"ok", "Bearer " + access, &fakeChecker{active: true}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser uuid.UUID
			var gotRole int
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser, _ = GetUserIDFromContext(r.Context())
				gotRole, _ = GetRoleIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			NewAuthMiddleware(svc, tt.checker).Authenticate(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, userID, gotUser)
				assert.Equal(t, entity.RoleIDDoctor, gotRole)
				assert.Equal(t, accessID, tt.checker.gotID)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		mw         func(http.Handler) http.Handler
		roleID     int
		noRole     bool
		wantStatus int
	}{
		{"admin on admin route", RequireAdmin, entity.RoleIDAdmin, false, http.StatusOK},
		{"doctor on admin route", RequireAdmin, entity.RoleIDDoctor, false, http.StatusForbidden},
		{"receptionist on front desk", RequireReceptionist, entity.RoleIDReceptionist, false, http.StatusOK},
		{"admin on front desk", RequireReceptionist, entity.RoleIDAdmin, false, http.StatusOK},
		{"doctor on front desk", RequireReceptionist, entity.RoleIDDoctor, false, http.StatusForbidden},
		{"doctor only", RequireDoctor, entity.RoleIDDoctor, false, http.StatusOK},
		{"receptionist on clinical", RequireAdminOrDoctor, entity.RoleIDReceptionist, false, http.StatusForbidden},
		{"staff", RequireStaff, entity.RoleIDReceptionist, false, http.StatusOK},
		{"no role in context", RequireStaff, 0, true, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if !tt.noRole {
				req = req.WithContext(WithUser(req.Context(), uuid.New(), tt.roleID))
			}
			rec := httptest.NewRecorder()

			tt.mw(ok).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := httptest.NewRecorder()
	NewCORSMiddleware().Handle(next).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/v1/patients", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, called)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}
