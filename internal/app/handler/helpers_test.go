package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace/internal/app/apperr"
	"marketplace/internal/app/config"
	"marketplace/internal/app/ds"
	"marketplace/internal/app/dto"
	"marketplace/internal/app/handler"
	"marketplace/internal/app/middleware"
	"marketplace/internal/app/mocks"
	"marketplace/internal/app/repository"
	"marketplace/internal/app/role"
	"marketplace/internal/app/service"
	"marketplace/internal/app/testdb"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "handler-test-secret"

type fakeImages struct {
	uploaded []string
	deleted  []string
}

func (f *fakeImages) UploadFile(_ context.Context, _ []byte, filename string) (string, error) {
	key := "service_" + filename
	f.uploaded = append(f.uploaded, key)
	return key, nil
}

func (f *fakeImages) DeleteFile(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeImages) BucketName() string { return "service-images" }

func (f *fakeImages) GetFileURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "http://minio.local/service-images/" + key, nil
}

type apiEnv struct {
	router    *gin.Engine
	repo      *repository.Repository
	tiers     *service.FeeTierService
	blacklist *mocks.MockTokenBlacklist
	images    *fakeImages
	jwt       config.JWTConfig
}

type envOptions struct {
	withImages bool
}

func newAPI(t *testing.T, opts envOptions) *apiEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, dto.RegisterValidators())

	repo := testdb.New(t)
	fees := service.NewFeeCalculator(repo)
	slugs := service.NewSlugAllocator(repo)
	assignments := service.NewAssignmentCoordinator(repo)
	tiers := service.NewFeeTierService(repo, repo)

	env := &apiEnv{
		repo:  repo,
		tiers: tiers,
		jwt:   config.JWTConfig{Token: testSecret, ExpiresIn: time.Hour, SigningMethod: jwt.SigningMethodHS256},
	}

	var storage service.ImageStorage
	h := &handler.Handler{
		Specialists: service.NewSpecialistService(repo, repo, slugs, fees, assignments),
		FeeTiers:    tiers,
		Fees:        fees,
		Users:       service.NewUserService(repo, repo, bcrypt.MinCost),
		JWT:         env.jwt,
	}
	if opts.withImages {
		env.images = &fakeImages{}
		storage = env.images
		h.Images = env.images
	}
	h.Catalog = service.NewCatalogService(repo, repo, storage)

	ctrl := gomock.NewController(t)
	env.blacklist = mocks.NewMockTokenBlacklist(ctrl)
	env.blacklist.EXPECT().CheckJWTInBlacklist(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
	h.Tokens = env.blacklist

	env.router = gin.New()
	h.RegisterRoutes(env.router, middleware.NewAuthMiddleware(env.blacklist, env.jwt))
	return env
}

// tokenFor создаёт пользователя с ролью в базе и подписывает для него JWT
func (e *apiEnv) tokenFor(t *testing.T, r role.Role) (uuid.UUID, string) {
	t.Helper()
	user := &ds.User{
		Email:    uuid.NewString() + "@example.com",
		Password: "not-a-hash",
		FullName: r.String(),
		Role:     int(r),
	}
	require.NoError(t, e.repo.CreateUser(context.Background(), user))

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{ExpiresAt: now.Add(time.Hour).Unix(), IssuedAt: now.Unix()},
		UserUUID:       user.ID,
		Role:           r,
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return user.ID, signed
}

// seedTiers: [0,1000]@5% и [1001,5000]@3%
func (e *apiEnv) seedTiers(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	_, err := e.tiers.CreateTier(ctx, service.CreateTierInput{Name: ds.TierBasic, MinValue: 0, MaxValue: 1000, FeePercentage: 5})
	require.NoError(t, err)
	_, err = e.tiers.CreateTier(ctx, service.CreateTierInput{Name: ds.TierStandard, MinValue: 1001, MaxValue: 5000, FeePercentage: 3})
	require.NoError(t, err)
}

func (e *apiEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Status  string              `json:"status"`
	Message string              `json:"message"`
	Code    string              `json:"code"`
	Errors  []apperr.FieldError `json:"errors"`
	Data    json.RawMessage     `json:"data"`
	Meta    *dto.PageMeta       `json:"meta"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &out), w.Body.String())
	return out
}
