package service

import (
	"context"
	"testing"
	"time"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/entity"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/pkg/apperror"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T, users ...*entity.User) (*AuthService, *fakeUserRepo) {
	t.Helper()
	repo := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		repo.users[u.Username] = u
	}
	s := NewAuthService(repo, utils.NewJWTManager("test-secret", 24*time.Hour))
	s.now = fixedClock
	return s, repo
}

func testUser(t *testing.T, username, password string, active bool) *entity.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &entity.User{ID: uuid.New(), Username: username, Password: hash, Role: entity.RoleManager, IsActive: active}
}

func TestAuthService_Login(t *testing.T) {
	user := testUser(t, "jane", "s3cret!", true)
	s, repo := newTestAuthService(t, user)

	out, err := s.Login(context.Background(), &LoginInput{Username: " jane ", Password: "s3cret!"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, int64(86400), out.ExpiresIn)
	assert.Equal(t, fixedNow, repo.touched[user.ID])

	claims, err := utils.NewJWTManager("test-secret", time.Hour).ValidateAccessToken(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "jane", claims.Username)
	assert.Equal(t, entity.RoleManager, claims.Role)
}

func TestAuthService_Login_Failures(t *testing.T) {
	s, _ := newTestAuthService(t,
		testUser(t, "jane", "s3cret!", true),
		testUser(t, "bob", "hunter2", false),
	)

	tests := []struct {
		name     string
		username string
		password string
		want     *apperror.AppError
	}{
		{"unknown user", "nobody", "x", apperror.ErrInvalidCredentials},
		{"wrong password", "jane", "wrong", apperror.ErrInvalidCredentials},
		{"disabled account", "bob", "hunter2", apperror.ErrAccountDisabled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Login(context.Background(), &LoginInput{Username: tt.username, Password: tt.password})
			assert.Equal(t, tt.want, apperror.GetAppError(err))
		})
	}
}

func TestAuthService_GetProfile(t *testing.T) {
	user := testUser(t, "jane", "pw", true)
	s, _ := newTestAuthService(t, user)

	got, err := s.GetProfile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane", got.Username)

	_, err = s.GetProfile(context.Background(), uuid.New())
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
