package usecase

import (
	"context"
	"testing"

	"travel-booking/internal/dto/request"
	"travel-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		JWT:    utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1},
		Upload: utils.UploadConfig{Dir: "testdata", MaxSizeMB: 5},
	}
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, testConfig(), zap.NewNop())

	reg, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, "user", reg.Role)

	login, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "asha@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, reg.ID, login.ID)
	assert.NotEmpty(t, login.Token)
}

func TestRegisterNormalizesEmailCase(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, testConfig(), zap.NewNop())

	reg, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Asha",
		Email:    "Asha@Example.COM",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", reg.Email)

	for _, u := range repo.users {
		assert.Equal(t, "asha@example.com", u.Email)
	}

	login, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "ASHA@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, reg.ID, login.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, testConfig(), zap.NewNop())

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name: "Asha", Email: "asha@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &request.RegisterRequest{
		Name: "Other", Email: "asha@example.com", Password: "different",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already")
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, testConfig(), zap.NewNop())

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name: "Asha", Email: "asha@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email: "asha@example.com", Password: "wrong-password",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLoginBlockedAccount(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, testConfig(), zap.NewNop())

	reg, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name: "Asha", Email: "asha@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	blocked := "blocked"
	_, err = svc.UpdateUser(context.Background(), reg.ID, &request.UpdateUserRequest{Status: &blocked})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email: "asha@example.com", Password: "secret123",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blocked")
}

func TestGetUserInvalidID(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), testConfig(), zap.NewNop())

	_, err := svc.GetUserByID(context.Background(), "not-a-hex-id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid user ID format")
}

func TestDeleteUserTwice(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, testConfig(), zap.NewNop())

	reg, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name: "Asha", Email: "asha@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(context.Background(), reg.ID))

	err = svc.DeleteUser(context.Background(), reg.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
