package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lunch_manager/internal/models"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, userID uuid.UUID, expiresAt time.Time) string {
	t.Helper()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newAuthRouter() (*gin.Engine, *uuid.UUID) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	var seen uuid.UUID
	router.GET("/protected", AuthRequired(testSecret), func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user id"})
			return
		}
		seen = userID
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router, &seen
}

func TestAuthRequiredAcceptsValidToken(t *testing.T) {
	router, seen := newAuthRouter()
	userID := uuid.New()
	token := signToken(t, testSecret, userID, time.Now().Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, *seen)
}

func TestAuthRequiredRejectsBadTokens(t *testing.T) {
	router, _ := newAuthRouter()
	userID := uuid.New()

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Token abc"},
		{"garbage token", "Bearer not-a-jwt"},
		{"wrong secret", "Bearer " + signToken(t, "other-secret", userID, time.Now().Add(time.Hour))},
		{"expired", "Bearer " + signToken(t, testSecret, userID, time.Now().Add(-time.Hour))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

type stubProfileRepo struct {
	profiles map[uuid.UUID]*models.Profile
}

func (r *stubProfileRepo) Create(profile *models.Profile) error { return nil }

func (r *stubProfileRepo) GetByID(id uuid.UUID) (*models.Profile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return nil, errors.New("profile not found")
	}
	return profile, nil
}

func (r *stubProfileRepo) GetAll() ([]models.Profile, error) { return nil, nil }

func (r *stubProfileRepo) Update(profile *models.Profile) error { return nil }

func TestAdminRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)

	adminID := uuid.New()
	memberID := uuid.New()
	repo := &stubProfileRepo{profiles: map[uuid.UUID]*models.Profile{
		adminID:  {ID: adminID, IsAdmin: true},
		memberID: {ID: memberID},
	}}

	router := gin.New()
	router.GET("/admin", AuthRequired(testSecret), AdminRequired(repo), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	cases := []struct {
		name   string
		userID uuid.UUID
		want   int
	}{
		{"admin allowed", adminID, http.StatusOK},
		{"member forbidden", memberID, http.StatusForbidden},
		{"unknown user forbidden", uuid.New(), http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token := signToken(t, testSecret, tc.userID, time.Now().Add(time.Hour))
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}
