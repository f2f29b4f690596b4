// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
// Lookups return domainerror.ErrUserNotFound when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// AddPoints atomically adds gamification points to a user.
	AddPoints(ctx context.Context, id uuid.UUID, points int) error

	// AddBadges appends badge names the user has not earned yet.
	AddBadges(ctx context.Context, id uuid.UUID, badges []string) error
}
