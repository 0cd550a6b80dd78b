package repository

import (
	"context"
	"time"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/entity"
	"github.com/google/uuid"
)

// UserRepository defines user lookups for authentication
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}
