// Package reminder contains bill reminder-related use cases.
package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// fakeReminderRepo is an in-memory ReminderRepository.
type fakeReminderRepo struct {
	reminders map[uuid.UUID]*entity.Reminder
}

func newFakeReminderRepo() *fakeReminderRepo {
	return &fakeReminderRepo{reminders: map[uuid.UUID]*entity.Reminder{}}
}

func (r *fakeReminderRepo) Create(_ context.Context, rem *entity.Reminder) error {
	r.reminders[rem.ID] = rem
	return nil
}

func (r *fakeReminderRepo) CreateWithSuccessor(_ context.Context, completed, successor *entity.Reminder) error {
	r.reminders[completed.ID] = completed
	r.reminders[successor.ID] = successor
	return nil
}

func (r *fakeReminderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Reminder, error) {
	rem, ok := r.reminders[id]
	if !ok {
		return nil, domainerror.ErrReminderNotFound
	}
	return rem, nil
}

func (r *fakeReminderRepo) FindByFilter(_ context.Context, filter adapter.ReminderFilter) ([]*entity.Reminder, error) {
	var out []*entity.Reminder
	for _, rem := range r.reminders {
		if rem.UserID == filter.UserID {
			out = append(out, rem)
		}
	}
	return out, nil
}

func (r *fakeReminderRepo) FindDueForNotification(_ context.Context, deadline time.Time) ([]*entity.Reminder, error) {
	var out []*entity.Reminder
	for _, rem := range r.reminders {
		if !rem.IsCompleted && rem.NotifiedAt == nil && !rem.DueDate.After(deadline) {
			out = append(out, rem)
		}
	}
	return out, nil
}

func (r *fakeReminderRepo) Update(_ context.Context, rem *entity.Reminder) error {
	if _, ok := r.reminders[rem.ID]; !ok {
		return domainerror.ErrReminderNotFound
	}
	r.reminders[rem.ID] = rem
	return nil
}

func (r *fakeReminderRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.reminders, id)
	return nil
}

// fakeUserRepo records point awards.
type fakeUserRepo struct {
	points map[uuid.UUID]int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{points: map[uuid.UUID]int{}}
}

func (r *fakeUserRepo) Create(context.Context, *entity.User) error { return nil }
func (r *fakeUserRepo) FindByID(context.Context, uuid.UUID) (*entity.User, error) {
	return nil, domainerror.ErrUserNotFound
}
func (r *fakeUserRepo) FindByEmail(context.Context, string) (*entity.User, error) {
	return nil, domainerror.ErrUserNotFound
}
func (r *fakeUserRepo) Update(context.Context, *entity.User) error          { return nil }
func (r *fakeUserRepo) Delete(context.Context, uuid.UUID) error             { return nil }
func (r *fakeUserRepo) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }

func (r *fakeUserRepo) AddPoints(_ context.Context, id uuid.UUID, points int) error {
	r.points[id] += points
	return nil
}

func (r *fakeUserRepo) AddBadges(context.Context, uuid.UUID, []string) error { return nil }

func TestCompleteReminder(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("completes non-recurring reminder without successor", func(t *testing.T) {
		repo := newFakeReminderRepo()
		userRepo := newFakeUserRepo()
		rem := entity.NewReminder(userID, "Electricity", decimal.NewFromInt(80),
			time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), "09:00", "Utilities", false, "")
		repo.reminders[rem.ID] = rem

		uc := NewCompleteReminderUseCase(repo, userRepo)

		out, err := uc.Execute(ctx, CompleteReminderInput{ReminderID: rem.ID, UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Reminder.IsCompleted || out.Reminder.CompletedAt == nil {
			t.Error("expected reminder marked completed")
		}
		if out.Successor != nil {
			t.Error("expected no successor for non-recurring reminder")
		}
		if len(repo.reminders) != 1 {
			t.Errorf("expected 1 stored reminder, got %d", len(repo.reminders))
		}
		if got := userRepo.points[userID]; got != entity.PointsReminderCompleted {
			t.Errorf("expected %d points awarded, got %d", entity.PointsReminderCompleted, got)
		}
	})

	t.Run("recurring monthly reminder spawns successor one month later", func(t *testing.T) {
		repo := newFakeReminderRepo()
		rem := entity.NewReminder(userID, "Rent", decimal.NewFromInt(1200),
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "08:00", "Housing", true, entity.FrequencyMonthly)
		repo.reminders[rem.ID] = rem

		uc := NewCompleteReminderUseCase(repo, newFakeUserRepo())

		out, err := uc.Execute(ctx, CompleteReminderInput{ReminderID: rem.ID, UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Successor == nil {
			t.Fatal("expected a successor reminder")
		}
		want := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
		if !out.Successor.DueDate.Equal(want) {
			t.Errorf("expected successor due %s, got %s", want, out.Successor.DueDate)
		}
		if out.Successor.IsCompleted {
			t.Error("successor must start incomplete")
		}
		if out.Successor.Title != rem.Title || !out.Successor.Amount.Equal(rem.Amount) {
			t.Error("successor must keep title and amount")
		}
		if len(repo.reminders) != 2 {
			t.Errorf("expected completed original plus successor, got %d reminders", len(repo.reminders))
		}
	})

	t.Run("month-end due dates roll with calendar arithmetic", func(t *testing.T) {
		repo := newFakeReminderRepo()
		rem := entity.NewReminder(userID, "Card bill", decimal.NewFromInt(300),
			time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), "", "", true, entity.FrequencyMonthly)
		repo.reminders[rem.ID] = rem

		uc := NewCompleteReminderUseCase(repo, newFakeUserRepo())

		out, err := uc.Execute(ctx, CompleteReminderInput{ReminderID: rem.ID, UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Jan 31 + 1 month normalizes past Feb 29 to Mar 2
		want := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
		if !out.Successor.DueDate.Equal(want) {
			t.Errorf("expected successor due %s, got %s", want, out.Successor.DueDate)
		}
	})

	t.Run("rejects double completion", func(t *testing.T) {
		repo := newFakeReminderRepo()
		userRepo := newFakeUserRepo()
		rem := entity.NewReminder(userID, "Water", decimal.NewFromInt(40),
			time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "", "Utilities", false, "")
		repo.reminders[rem.ID] = rem

		uc := NewCompleteReminderUseCase(repo, userRepo)

		if _, err := uc.Execute(ctx, CompleteReminderInput{ReminderID: rem.ID, UserID: userID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := uc.Execute(ctx, CompleteReminderInput{ReminderID: rem.ID, UserID: userID})
		if !errors.Is(err, domainerror.ErrReminderAlreadyCompleted) {
			t.Errorf("expected ErrReminderAlreadyCompleted, got %v", err)
		}
		if got := userRepo.points[userID]; got != entity.PointsReminderCompleted {
			t.Errorf("expected points awarded once, got %d", got)
		}
	})

	t.Run("rejects another user's reminder", func(t *testing.T) {
		repo := newFakeReminderRepo()
		rem := entity.NewReminder(uuid.New(), "Gym", decimal.NewFromInt(30),
			time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "", "", false, "")
		repo.reminders[rem.ID] = rem

		uc := NewCompleteReminderUseCase(repo, newFakeUserRepo())

		_, err := uc.Execute(ctx, CompleteReminderInput{ReminderID: rem.ID, UserID: userID})
		if !errors.Is(err, domainerror.ErrUnauthorizedReminderAccess) {
			t.Errorf("expected ErrUnauthorizedReminderAccess, got %v", err)
		}
	})
}
