package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/middleware"
	"travel-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeUserRepo struct {
	user *entity.User
}

func (f *fakeUserRepo) Create(context.Context, *entity.User) error { return nil }
func (f *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entity.User, error) {
	if f.user != nil && f.user.ID == id {
		return f.user, nil
	}
	return nil, nil
}
func (f *fakeUserRepo) FindByEmail(context.Context, string) (*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) FindAll(context.Context) ([]*entity.User, error)           { return nil, nil }
func (f *fakeUserRepo) Update(context.Context, primitive.ObjectID, bson.M) (*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Delete(context.Context, primitive.ObjectID) error { return nil }
func (f *fakeUserRepo) IncrementRewardPoints(context.Context, primitive.ObjectID, int) error {
	return nil
}

func authConfig() *utils.Config {
	return &utils.Config{JWT: utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1}}
}

func protectedEcho(t *testing.T, repo *fakeUserRepo) http.Handler {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		require.True(t, ok)
		role, _ := utils.GetRoleFromContext(r.Context())
		w.Header().Set("X-User", userID)
		w.Header().Set("X-Role", role)
		w.WriteHeader(http.StatusOK)
	})
	return middleware.Protect(repo, authConfig(), zap.NewNop())(next)
}

func TestProtectValidToken(t *testing.T) {
	user := &entity.User{
		Base:   entity.Base{ID: primitive.NewObjectID()},
		Role:   entity.RoleAdmin,
		Status: entity.UserStatusActive,
	}
	repo := &fakeUserRepo{user: user}

	token, err := utils.GenerateToken(user.ID.Hex(), "test-secret", 1)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	protectedEcho(t, repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.ID.Hex(), rec.Header().Get("X-User"))
	assert.Equal(t, "admin", rec.Header().Get("X-Role"))
}

func TestProtectMissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	protectedEcho(t, &fakeUserRepo{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectMalformedHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()

	protectedEcho(t, &fakeUserRepo{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectUnknownUser(t *testing.T) {
	token, err := utils.GenerateToken(primitive.NewObjectID().Hex(), "test-secret", 1)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	protectedEcho(t, &fakeUserRepo{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectBlockedUser(t *testing.T) {
	user := &entity.User{
		Base:   entity.Base{ID: primitive.NewObjectID()},
		Status: entity.UserStatusBlocked,
	}
	repo := &fakeUserRepo{user: user}

	token, err := utils.GenerateToken(user.ID.Hex(), "test-secret", 1)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	protectedEcho(t, repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminRejectsNonAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.Admin(zap.NewNop())(next)

	ctx := utils.SetUserContext(context.Background(), "abc", "user")
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminAllowsAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.Admin(zap.NewNop())(next)

	ctx := utils.SetUserContext(context.Background(), "abc", "admin")
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
