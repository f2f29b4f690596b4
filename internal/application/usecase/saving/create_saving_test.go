// Package saving contains saving-related use cases.
package saving

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// fakeSavingRepo is an in-memory SavingRepository that settles goal deltas
// the way the persistence layer does.
type fakeSavingRepo struct {
	savings map[uuid.UUID]*entity.Saving
	goals   *fakeGoalRepo
}

func newFakeSavingRepo(goals *fakeGoalRepo) *fakeSavingRepo {
	return &fakeSavingRepo{savings: map[uuid.UUID]*entity.Saving{}, goals: goals}
}

func (r *fakeSavingRepo) Create(_ context.Context, s *entity.Saving) error {
	r.savings[s.ID] = s
	if s.GoalID != nil {
		r.goals.credit(*s.GoalID, s.Amount)
	}
	return nil
}

func (r *fakeSavingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Saving, error) {
	s, ok := r.savings[id]
	if !ok {
		return nil, domainerror.ErrSavingNotFound
	}
	return s, nil
}

func (r *fakeSavingRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Saving, error) {
	var out []*entity.Saving
	for _, s := range r.savings {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSavingRepo) FindByGoal(_ context.Context, goalID uuid.UUID) ([]*entity.Saving, error) {
	var out []*entity.Saving
	for _, s := range r.savings {
		if s.GoalID != nil && *s.GoalID == goalID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSavingRepo) FindByDateRange(ctx context.Context, userID uuid.UUID, _, _ time.Time) ([]*entity.Saving, error) {
	return r.FindByUser(ctx, userID)
}

func (r *fakeSavingRepo) Update(_ context.Context, s *entity.Saving) error {
	old, ok := r.savings[s.ID]
	if !ok {
		return domainerror.ErrSavingNotFound
	}
	if old.GoalID != nil {
		r.goals.debit(*old.GoalID, old.Amount)
	}
	if s.GoalID != nil {
		r.goals.credit(*s.GoalID, s.Amount)
	}
	r.savings[s.ID] = s
	return nil
}

func (r *fakeSavingRepo) Delete(_ context.Context, id uuid.UUID) error {
	s, ok := r.savings[id]
	if !ok {
		return domainerror.ErrSavingNotFound
	}
	if s.GoalID != nil {
		r.goals.debit(*s.GoalID, s.Amount)
	}
	delete(r.savings, id)
	return nil
}

// fakeGoalRepo is an in-memory SavingGoalRepository.
type fakeGoalRepo struct {
	goals map[uuid.UUID]*entity.SavingGoal
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: map[uuid.UUID]*entity.SavingGoal{}}
}

func (r *fakeGoalRepo) credit(id uuid.UUID, amount decimal.Decimal) {
	if g, ok := r.goals[id]; ok {
		g.CurrentAmount = g.CurrentAmount.Add(amount)
	}
}

func (r *fakeGoalRepo) debit(id uuid.UUID, amount decimal.Decimal) {
	if g, ok := r.goals[id]; ok {
		g.CurrentAmount = g.CurrentAmount.Sub(amount)
		if g.CurrentAmount.IsNegative() {
			g.CurrentAmount = decimal.Zero
		}
	}
}

func (r *fakeGoalRepo) Create(_ context.Context, g *entity.SavingGoal) error {
	r.goals[g.ID] = g
	return nil
}

func (r *fakeGoalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.SavingGoal, error) {
	g, ok := r.goals[id]
	if !ok {
		return nil, domainerror.ErrSavingGoalNotFound
	}
	return g, nil
}

func (r *fakeGoalRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.SavingGoal, error) {
	var out []*entity.SavingGoal
	for _, g := range r.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) Update(_ context.Context, g *entity.SavingGoal) error {
	r.goals[g.ID] = g
	return nil
}

func (r *fakeGoalRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.goals, id)
	return nil
}

func (r *fakeGoalRepo) CountLinkedSavings(context.Context, uuid.UUID) (int64, error) {
	return 0, nil
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

func TestCreateSaving(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates saving, credits goal and awards points", func(t *testing.T) {
		goalRepo := newFakeGoalRepo()
		savingRepo := newFakeSavingRepo(goalRepo)
		userRepo := newFakeUserRepo()

		goal := entity.NewSavingGoal(userID, "Vacation", decimal.NewFromInt(1000), "#00aa55")
		goalRepo.goals[goal.ID] = goal

		uc := NewCreateSavingUseCase(savingRepo, goalRepo, userRepo)

		out, err := uc.Execute(ctx, CreateSavingInput{
			UserID: userID,
			Amount: decimal.NewFromInt(200),
			Date:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			GoalID: &goal.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Saving.GoalID == nil || *out.Saving.GoalID != goal.ID {
			t.Error("expected saving linked to goal")
		}
		if !goal.CurrentAmount.Equal(decimal.NewFromInt(200)) {
			t.Errorf("expected goal current amount 200, got %s", goal.CurrentAmount)
		}
		if got := userRepo.points[userID]; got != entity.PointsSavingLogged {
			t.Errorf("expected %d points awarded, got %d", entity.PointsSavingLogged, got)
		}
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		goalRepo := newFakeGoalRepo()
		uc := NewCreateSavingUseCase(newFakeSavingRepo(goalRepo), goalRepo, newFakeUserRepo())

		_, err := uc.Execute(ctx, CreateSavingInput{
			UserID: userID,
			Amount: decimal.NewFromInt(-5),
			Date:   time.Now(),
		})

		if !errors.Is(err, domainerror.ErrInvalidSavingAmount) {
			t.Errorf("expected ErrInvalidSavingAmount, got %v", err)
		}
	})

	t.Run("rejects another user's goal", func(t *testing.T) {
		goalRepo := newFakeGoalRepo()
		goal := entity.NewSavingGoal(uuid.New(), "Not yours", decimal.NewFromInt(500), "")
		goalRepo.goals[goal.ID] = goal

		uc := NewCreateSavingUseCase(newFakeSavingRepo(goalRepo), goalRepo, newFakeUserRepo())

		_, err := uc.Execute(ctx, CreateSavingInput{
			UserID: userID,
			Amount: decimal.NewFromInt(50),
			Date:   time.Now(),
			GoalID: &goal.ID,
		})

		if !errors.Is(err, domainerror.ErrUnauthorizedGoalAccess) {
			t.Errorf("expected ErrUnauthorizedGoalAccess, got %v", err)
		}
	})
}

func TestDeleteSavingSettlesGoal(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	goalRepo := newFakeGoalRepo()
	savingRepo := newFakeSavingRepo(goalRepo)
	userRepo := newFakeUserRepo()

	goal := entity.NewSavingGoal(userID, "Emergency fund", decimal.NewFromInt(1000), "")
	goalRepo.goals[goal.ID] = goal

	create := NewCreateSavingUseCase(savingRepo, goalRepo, userRepo)
	out, err := create.Execute(ctx, CreateSavingInput{
		UserID: userID,
		Amount: decimal.NewFromInt(200),
		Date:   time.Now().UTC(),
		GoalID: &goal.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !goal.CurrentAmount.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("expected goal current amount 200, got %s", goal.CurrentAmount)
	}

	del := NewDeleteSavingUseCase(savingRepo)
	if _, err := del.Execute(ctx, DeleteSavingInput{SavingID: out.Saving.ID, UserID: userID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !goal.CurrentAmount.IsZero() {
		t.Errorf("expected goal current amount 0 after delete, got %s", goal.CurrentAmount)
	}
}
