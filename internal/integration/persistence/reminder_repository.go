// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

// reminderRepository implements the adapter.ReminderRepository interface.
type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository creates a new reminder repository instance.
func NewReminderRepository(db *gorm.DB) adapter.ReminderRepository {
	return &reminderRepository{
		db: db,
	}
}

// Create creates a new reminder in the database.
func (r *reminderRepository) Create(ctx context.Context, reminder *entity.Reminder) error {
	reminderModel := model.ReminderFromEntity(reminder)
	result := r.db.WithContext(ctx).Create(reminderModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CreateWithSuccessor persists the completion of a reminder together with its
// recurrence successor in a single transaction.
func (r *reminderRepository) CreateWithSuccessor(ctx context.Context, completed, successor *entity.Reminder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(model.ReminderFromEntity(completed)).Error; err != nil {
			return err
		}
		return tx.Create(model.ReminderFromEntity(successor)).Error
	})
}

// FindByID retrieves a reminder by its ID.
func (r *reminderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reminder, error) {
	var reminderModel model.ReminderModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&reminderModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrReminderNotFound
		}
		return nil, result.Error
	}
	return reminderModel.ToEntity(), nil
}

// FindByFilter retrieves reminders matching the filter, soonest due first.
func (r *reminderRepository) FindByFilter(ctx context.Context, filter adapter.ReminderFilter) ([]*entity.Reminder, error) {
	query := r.db.WithContext(ctx).Model(&model.ReminderModel{}).
		Where("user_id = ?", filter.UserID)

	if filter.Completed != nil {
		query = query.Where("is_completed = ?", *filter.Completed)
	}
	if filter.StartDate != nil {
		query = query.Where("due_date >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("due_date <= ?", filter.EndDate)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var reminderModels []model.ReminderModel
	result := query.
		Order("due_date ASC, due_time ASC, created_at ASC").
		Find(&reminderModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toReminderEntities(reminderModels), nil
}

// FindDueForNotification retrieves incomplete reminders due on or before the
// deadline that have not been notified yet.
func (r *reminderRepository) FindDueForNotification(ctx context.Context, deadline time.Time) ([]*entity.Reminder, error) {
	var reminderModels []model.ReminderModel
	result := r.db.WithContext(ctx).
		Where("is_completed = ? AND notified_at IS NULL AND due_date <= ?", false, deadline).
		Order("due_date ASC").
		Find(&reminderModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toReminderEntities(reminderModels), nil
}

// Update updates an existing reminder in the database.
func (r *reminderRepository) Update(ctx context.Context, reminder *entity.Reminder) error {
	reminderModel := model.ReminderFromEntity(reminder)
	result := r.db.WithContext(ctx).Save(reminderModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a reminder from the database.
func (r *reminderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ReminderModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func toReminderEntities(models []model.ReminderModel) []*entity.Reminder {
	reminders := make([]*entity.Reminder, len(models))
	for i, m := range models {
		reminders[i] = m.ToEntity()
	}
	return reminders
}
