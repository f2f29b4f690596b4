// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

// userRepository implements the adapter.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(db *gorm.DB) adapter.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create creates a new user in the database.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.FromEntity(user)
	result := r.db.WithContext(ctx).Create(userModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a user by their ID.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userModel model.UserModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUserNotFound
		}
		return nil, result.Error
	}
	return userModel.ToEntity(), nil
}

// FindByEmail retrieves a user by their email address.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.UserModel
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUserNotFound
		}
		return nil, result.Error
	}
	return userModel.ToEntity(), nil
}

// Update updates an existing user in the database.
func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	userModel := model.FromEntity(user)
	result := r.db.WithContext(ctx).Save(userModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a user from the database.
func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.UserModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ExistsByEmail checks if a user with the given email exists.
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.UserModel{}).Where("email = ?", email).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// AddPoints atomically adds gamification points to a user.
func (r *userRepository) AddPoints(ctx context.Context, id uuid.UUID, points int) error {
	result := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		UpdateColumn("points", gorm.Expr("points + ?", points))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrUserNotFound
	}
	return nil
}

// badgeGrantAttempts bounds the AddBadges compare-and-swap loop.
const badgeGrantAttempts = 3

// AddBadges appends badge names the user has not earned yet. The write is a
// compare-and-swap against the array read, so concurrent grants retry and
// merge instead of overwriting each other.
func (r *userRepository) AddBadges(ctx context.Context, id uuid.UUID, badges []string) error {
	if len(badges) == 0 {
		return nil
	}

	for attempt := 0; attempt < badgeGrantAttempts; attempt++ {
		var userModel model.UserModel
		if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerror.ErrUserNotFound
			}
			return err
		}

		existing := map[string]struct{}{}
		for _, b := range userModel.EarnedBadges {
			existing[b] = struct{}{}
		}

		merged := userModel.EarnedBadges
		for _, b := range badges {
			if _, ok := existing[b]; !ok {
				merged = append(merged, b)
			}
		}
		if len(merged) == len(userModel.EarnedBadges) {
			return nil
		}

		query := r.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id)
		if userModel.EarnedBadges == nil {
			// NULL never compares equal, so it gets its own predicate.
			query = query.Where("earned_badges IS NULL")
		} else {
			query = query.Where("earned_badges = ?", userModel.EarnedBadges)
		}

		result := query.UpdateColumn("earned_badges", pq.StringArray(merged))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			return nil
		}
		// Another writer got in between the read and the write; reread and
		// merge again.
	}

	return fmt.Errorf("badge grant for user %s kept conflicting", id)
}
