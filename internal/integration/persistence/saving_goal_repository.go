// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

// savingGoalRepository implements the adapter.SavingGoalRepository interface.
type savingGoalRepository struct {
	db *gorm.DB
}

// NewSavingGoalRepository creates a new saving goal repository instance.
func NewSavingGoalRepository(db *gorm.DB) adapter.SavingGoalRepository {
	return &savingGoalRepository{
		db: db,
	}
}

// Create creates a new saving goal in the database.
func (r *savingGoalRepository) Create(ctx context.Context, goal *entity.SavingGoal) error {
	goalModel := model.SavingGoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a saving goal by its ID.
func (r *savingGoalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SavingGoal, error) {
	var goalModel model.SavingGoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSavingGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByUser retrieves all saving goals for a given user.
func (r *savingGoalRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SavingGoal, error) {
	var goalModels []model.SavingGoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.SavingGoal, len(goalModels))
	for i, m := range goalModels {
		goals[i] = m.ToEntity()
	}
	return goals, nil
}

// Update updates an existing saving goal in the database.
func (r *savingGoalRepository) Update(ctx context.Context, goal *entity.SavingGoal) error {
	goalModel := model.SavingGoalFromEntity(goal)
	result := r.db.WithContext(ctx).Save(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a saving goal and unlinks its savings in one transaction.
// The savings themselves survive with a cleared goal reference.
func (r *savingGoalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.SavingModel{}).
			Where("goal_id = ?", id).
			UpdateColumn("goal_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.SavingGoalModel{}, "id = ?", id).Error
	})
}

// CountLinkedSavings returns how many savings reference the goal.
func (r *savingGoalRepository) CountLinkedSavings(ctx context.Context, goalID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.SavingModel{}).
		Where("goal_id = ?", goalID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
