package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace/internal/app/config"
	"marketplace/internal/app/ds"
	"marketplace/internal/app/middleware"
	"marketplace/internal/app/mocks"
	"marketplace/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "test-secret"

func jwtConfig() config.JWTConfig {
	return config.JWTConfig{Token: testSecret, ExpiresIn: time.Hour, SigningMethod: jwt.SigningMethodHS256}
}

func signToken(t *testing.T, secret string, userID uuid.UUID, r role.Role, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(ttl).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    "marketplace",
		},
		UserUUID: userID,
		Role:     r,
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newRouter(am *middleware.AuthMiddleware, roles ...role.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", am.WithAuthCheck(roles...), func(c *gin.Context) {
		id := c.MustGet(middleware.ContextUserUUID).(uuid.UUID)
		userRole := c.MustGet(middleware.ContextUserRole).(role.Role)
		c.JSON(http.StatusOK, gin.H{"id": id.String(), "role": userRole.String()})
	})
	return r
}

func doGet(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWithAuthCheck_ValidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	blacklist := mocks.NewMockTokenBlacklist(ctrl)

	userID := uuid.New()
	token := signToken(t, testSecret, userID, role.Specialist, time.Hour)
	blacklist.EXPECT().CheckJWTInBlacklist(gomock.Any(), token).Return(false, nil)

	w := doGet(newRouter(middleware.NewAuthMiddleware(blacklist, jwtConfig()), role.Specialist, role.Admin), token)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, userID.String(), body["id"])
	assert.Equal(t, "specialist", body["role"])
}

func TestWithAuthCheck_Rejections(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		token      string
		roles      []role.Role
		setup      func(m *mocks.MockTokenBlacklist, token string)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing header",
			token:      "",
			setup:      func(*mocks.MockTokenBlacklist, string) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:  "revoked token",
			token: signToken(t, testSecret, userID, role.Client, time.Hour),
			setup: func(m *mocks.MockTokenBlacklist, token string) {
				m.EXPECT().CheckJWTInBlacklist(gomock.Any(), token).Return(true, nil)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:  "blacklist unavailable",
			token: signToken(t, testSecret, userID, role.Client, time.Hour),
			setup: func(m *mocks.MockTokenBlacklist, token string) {
				m.EXPECT().CheckJWTInBlacklist(gomock.Any(), token).Return(false, errors.New("connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
		{
			name:  "expired token",
			token: signToken(t, testSecret, userID, role.Client, -time.Minute),
			setup: func(m *mocks.MockTokenBlacklist, token string) {
				m.EXPECT().CheckJWTInBlacklist(gomock.Any(), token).Return(false, nil)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:  "foreign signature",
			token: signToken(t, "other-secret", userID, role.Admin, time.Hour),
			setup: func(m *mocks.MockTokenBlacklist, token string) {
				m.EXPECT().CheckJWTInBlacklist(gomock.Any(), token).Return(false, nil)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:  "role not allowed",
			token: signToken(t, testSecret, userID, role.Client, time.Hour),
			roles: []role.Role{role.Admin},
			setup: func(m *mocks.MockTokenBlacklist, token string) {
				m.EXPECT().CheckJWTInBlacklist(gomock.Any(), token).Return(false, nil)
			},
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			blacklist := mocks.NewMockTokenBlacklist(ctrl)
			tt.setup(blacklist, tt.token)

			w := doGet(newRouter(middleware.NewAuthMiddleware(blacklist, jwtConfig()), tt.roles...), tt.token)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "error", body["status"])
			assert.Equal(t, tt.wantCode, body["code"])
		})
	}
}

func TestWithAuthCheck_NoBlacklistConfigured(t *testing.T) {
	token := signToken(t, testSecret, uuid.New(), role.Admin, time.Hour)

	w := doGet(newRouter(middleware.NewAuthMiddleware(nil, jwtConfig())), token)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", middleware.BearerToken("Bearer abc"))
	assert.Equal(t, "abc", middleware.BearerToken("abc"))
	assert.Equal(t, "", middleware.BearerToken(""))
}

func TestParseToken_RejectsOtherAlgorithm(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix()},
		UserUUID:       uuid.New(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = middleware.ParseToken(signed, jwtConfig())
	assert.Error(t, err)
}
