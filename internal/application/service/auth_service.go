package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/entity"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/repository"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/pkg/apperror"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/pkg/utils"
	"github.com/google/uuid"
)

// AuthService handles authentication-related operations
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
	now        func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		now:        time.Now,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	User        *entity.User
	AccessToken string
	ExpiresIn   int64
}

// Login authenticates a user by username and password and issues an access token
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperror.ErrAccountDisabled
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	now := s.now()
	if err := s.userRepo.TouchLastLogin(ctx, user.ID, now); err != nil {
		log.Printf("Warning: failed to record last login for %s: %v", user.Username, err)
	} else {
		user.LastLoginAt = &now
	}

	return &LoginOutput{
		User:        user,
		AccessToken: accessToken,
		ExpiresIn:   int64(s.jwtManager.AccessExpiry().Seconds()),
	}, nil
}

// GetProfile returns the signed in user
func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}
