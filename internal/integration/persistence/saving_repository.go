// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

// savingRepository implements the adapter.SavingRepository interface.
// Goal balance deltas are applied inside the same transaction as the saving
// mutation so CurrentAmount never drifts from the sum of linked savings.
type savingRepository struct {
	db *gorm.DB
}

// NewSavingRepository creates a new saving repository instance.
func NewSavingRepository(db *gorm.DB) adapter.SavingRepository {
	return &savingRepository{
		db: db,
	}
}

// Create creates a saving and, when goal-linked, credits the goal.
func (r *savingRepository) Create(ctx context.Context, saving *entity.Saving) error {
	savingModel := model.SavingFromEntity(saving)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(savingModel).Error; err != nil {
			return err
		}
		if saving.GoalID != nil {
			return adjustGoalAmount(tx, *saving.GoalID, saving.Amount)
		}
		return nil
	})
}

// FindByID retrieves a saving by its ID.
func (r *savingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Saving, error) {
	var savingModel model.SavingModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&savingModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSavingNotFound
		}
		return nil, result.Error
	}
	return savingModel.ToEntity(), nil
}

// FindByUser retrieves all savings for a given user, newest first.
func (r *savingRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Saving, error) {
	var savingModels []model.SavingModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&savingModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toSavingEntities(savingModels), nil
}

// FindByGoal retrieves all savings linked to a goal.
func (r *savingRepository) FindByGoal(ctx context.Context, goalID uuid.UUID) ([]*entity.Saving, error) {
	var savingModels []model.SavingModel
	result := r.db.WithContext(ctx).
		Where("goal_id = ?", goalID).
		Order("date DESC, created_at DESC").
		Find(&savingModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toSavingEntities(savingModels), nil
}

// FindByDateRange retrieves all savings for a user within [start, end].
func (r *savingRepository) FindByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Saving, error) {
	var savingModels []model.SavingModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date ASC").
		Find(&savingModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toSavingEntities(savingModels), nil
}

// Update replaces a saving and settles the goal deltas, including moves
// between goals (debit the old goal, credit the new one).
func (r *savingRepository) Update(ctx context.Context, saving *entity.Saving) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var previous model.SavingModel
		if err := tx.Where("id = ?", saving.ID).First(&previous).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerror.ErrSavingNotFound
			}
			return err
		}

		savingModel := model.SavingFromEntity(saving)
		if err := tx.Save(savingModel).Error; err != nil {
			return err
		}

		prevGoalID := previous.GoalID
		newGoalID := saving.GoalID

		switch {
		case prevGoalID == nil && newGoalID == nil:
			return nil
		case prevGoalID != nil && newGoalID != nil && *prevGoalID == *newGoalID:
			// Same goal: apply the amount delta only.
			delta := saving.Amount.Sub(previous.Amount)
			if delta.IsZero() {
				return nil
			}
			return adjustGoalAmount(tx, *newGoalID, delta)
		default:
			if prevGoalID != nil {
				if err := adjustGoalAmount(tx, *prevGoalID, previous.Amount.Neg()); err != nil {
					return err
				}
			}
			if newGoalID != nil {
				return adjustGoalAmount(tx, *newGoalID, saving.Amount)
			}
			return nil
		}
	})
}

// Delete removes a saving and, when goal-linked, debits the goal.
func (r *savingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var savingModel model.SavingModel
		if err := tx.Where("id = ?", id).First(&savingModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerror.ErrSavingNotFound
			}
			return err
		}

		if err := tx.Delete(&model.SavingModel{}, "id = ?", id).Error; err != nil {
			return err
		}

		if savingModel.GoalID != nil {
			return adjustGoalAmount(tx, *savingModel.GoalID, savingModel.Amount.Neg())
		}
		return nil
	})
}

// adjustGoalAmount applies a delta to a goal's CurrentAmount, clamping at
// zero. The delta and the clamp ride a single UPDATE so concurrent saving
// writes against the same goal serialize on the row instead of overwriting
// each other's reads.
func adjustGoalAmount(tx *gorm.DB, goalID uuid.UUID, delta decimal.Decimal) error {
	result := tx.Model(&model.SavingGoalModel{}).
		Where("id = ?", goalID).
		UpdateColumn("current_amount", gorm.Expr(
			"CASE WHEN current_amount + ? < 0 THEN 0 ELSE current_amount + ? END",
			delta, delta,
		))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSavingGoalNotFound
	}
	return nil
}

func toSavingEntities(models []model.SavingModel) []*entity.Saving {
	savings := make([]*entity.Saving, len(models))
	for i, m := range models {
		savings[i] = m.ToEntity()
	}
	return savings
}
