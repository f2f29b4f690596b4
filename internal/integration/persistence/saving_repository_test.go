package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbSQL, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	dbSQL.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open gorm: %v", err)
	}

	err = db.AutoMigrate(
		&model.SavingGoalModel{},
		&model.SavingModel{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func mustGoalAmount(t *testing.T, db *gorm.DB, goalID uuid.UUID) decimal.Decimal {
	t.Helper()

	var goalModel model.SavingGoalModel
	if err := db.Where("id = ?", goalID).First(&goalModel).Error; err != nil {
		t.Fatalf("load goal: %v", err)
	}
	return goalModel.CurrentAmount
}

func TestSavingMutationsSettleGoalBalance(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	savingRepo := NewSavingRepository(db)
	goalRepo := NewSavingGoalRepository(db)

	userID := uuid.New()
	goal := entity.NewSavingGoal(userID, "Vacation", decimal.NewFromInt(1000), "#00FF00")
	if err := goalRepo.Create(ctx, goal); err != nil {
		t.Fatalf("create goal: %v", err)
	}

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	saving := entity.NewSaving(userID, decimal.NewFromInt(200), "bonus", date, &goal.ID)
	if err := savingRepo.Create(ctx, saving); err != nil {
		t.Fatalf("create saving: %v", err)
	}

	if got := mustGoalAmount(t, db, goal.ID); !got.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("expected goal balance 200 after create, got %s", got)
	}

	saving.Amount = decimal.NewFromInt(150)
	if err := savingRepo.Update(ctx, saving); err != nil {
		t.Fatalf("update saving: %v", err)
	}
	if got := mustGoalAmount(t, db, goal.ID); !got.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("expected goal balance 150 after amount change, got %s", got)
	}

	if err := savingRepo.Delete(ctx, saving.ID); err != nil {
		t.Fatalf("delete saving: %v", err)
	}
	if got := mustGoalAmount(t, db, goal.ID); !got.Equal(decimal.Zero) {
		t.Fatalf("expected goal balance 0 after delete, got %s", got)
	}
}

func TestSavingUpdateMovesBetweenGoals(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	savingRepo := NewSavingRepository(db)
	goalRepo := NewSavingGoalRepository(db)

	userID := uuid.New()
	firstGoal := entity.NewSavingGoal(userID, "Car", decimal.NewFromInt(5000), "#FF0000")
	secondGoal := entity.NewSavingGoal(userID, "House", decimal.NewFromInt(20000), "#0000FF")
	if err := goalRepo.Create(ctx, firstGoal); err != nil {
		t.Fatalf("create first goal: %v", err)
	}
	if err := goalRepo.Create(ctx, secondGoal); err != nil {
		t.Fatalf("create second goal: %v", err)
	}

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	saving := entity.NewSaving(userID, decimal.NewFromInt(300), "", date, &firstGoal.ID)
	if err := savingRepo.Create(ctx, saving); err != nil {
		t.Fatalf("create saving: %v", err)
	}

	saving.GoalID = &secondGoal.ID
	if err := savingRepo.Update(ctx, saving); err != nil {
		t.Fatalf("move saving: %v", err)
	}

	if got := mustGoalAmount(t, db, firstGoal.ID); !got.Equal(decimal.Zero) {
		t.Fatalf("expected first goal debited to 0, got %s", got)
	}
	if got := mustGoalAmount(t, db, secondGoal.ID); !got.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("expected second goal credited to 300, got %s", got)
	}
}

func TestGoalBalanceClampsAtZero(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	savingRepo := NewSavingRepository(db)
	goalRepo := NewSavingGoalRepository(db)

	userID := uuid.New()
	goal := entity.NewSavingGoal(userID, "Emergency", decimal.NewFromInt(1000), "")
	if err := goalRepo.Create(ctx, goal); err != nil {
		t.Fatalf("create goal: %v", err)
	}

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	saving := entity.NewSaving(userID, decimal.NewFromInt(200), "", date, &goal.ID)
	if err := savingRepo.Create(ctx, saving); err != nil {
		t.Fatalf("create saving: %v", err)
	}

	// Simulate drift below the saving's amount, as after a partial restore.
	err := db.Model(&model.SavingGoalModel{}).
		Where("id = ?", goal.ID).
		UpdateColumn("current_amount", decimal.NewFromInt(50)).Error
	if err != nil {
		t.Fatalf("force balance: %v", err)
	}

	if err := savingRepo.Delete(ctx, saving.ID); err != nil {
		t.Fatalf("delete saving: %v", err)
	}

	if got := mustGoalAmount(t, db, goal.ID); !got.Equal(decimal.Zero) {
		t.Fatalf("expected clamped balance 0, got %s", got)
	}
}

func TestGoalCreditsApplyOnStoredBalance(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	savingRepo := NewSavingRepository(db)
	goalRepo := NewSavingGoalRepository(db)

	userID := uuid.New()
	goal := entity.NewSavingGoal(userID, "Trip", decimal.NewFromInt(1000), "")
	if err := goalRepo.Create(ctx, goal); err != nil {
		t.Fatalf("create goal: %v", err)
	}

	// Each credit is a relative delta against the stored balance, not a
	// write of a value computed from an earlier read. Two 200 credits must
	// land at 400, whatever the balance was when the saving was built.
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	first := entity.NewSaving(userID, decimal.NewFromInt(200), "", date, &goal.ID)
	second := entity.NewSaving(userID, decimal.NewFromInt(200), "", date.AddDate(0, 0, 1), &goal.ID)
	if err := savingRepo.Create(ctx, first); err != nil {
		t.Fatalf("create first saving: %v", err)
	}
	if err := savingRepo.Create(ctx, second); err != nil {
		t.Fatalf("create second saving: %v", err)
	}

	if got := mustGoalAmount(t, db, goal.ID); !got.Equal(decimal.NewFromInt(400)) {
		t.Fatalf("expected goal balance 400 after two credits, got %s", got)
	}

	// A saving linked to a goal that does not exist rolls back entirely.
	missing := uuid.New()
	orphan := entity.NewSaving(userID, decimal.NewFromInt(10), "", date, &missing)
	if err := savingRepo.Create(ctx, orphan); err != domainerror.ErrSavingGoalNotFound {
		t.Fatalf("expected goal not found, got %v", err)
	}
	if _, err := savingRepo.FindByID(ctx, orphan.ID); err != domainerror.ErrSavingNotFound {
		t.Fatalf("expected saving rolled back, got %v", err)
	}
}

func TestDeleteGoalUnlinksSavings(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	savingRepo := NewSavingRepository(db)
	goalRepo := NewSavingGoalRepository(db)

	userID := uuid.New()
	goal := entity.NewSavingGoal(userID, "Laptop", decimal.NewFromInt(1500), "")
	if err := goalRepo.Create(ctx, goal); err != nil {
		t.Fatalf("create goal: %v", err)
	}

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	first := entity.NewSaving(userID, decimal.NewFromInt(100), "", date, &goal.ID)
	second := entity.NewSaving(userID, decimal.NewFromInt(250), "", date.AddDate(0, 0, 3), &goal.ID)
	if err := savingRepo.Create(ctx, first); err != nil {
		t.Fatalf("create first saving: %v", err)
	}
	if err := savingRepo.Create(ctx, second); err != nil {
		t.Fatalf("create second saving: %v", err)
	}

	count, err := goalRepo.CountLinkedSavings(ctx, goal.ID)
	if err != nil {
		t.Fatalf("count linked: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 linked savings, got %d", count)
	}

	if err := goalRepo.Delete(ctx, goal.ID); err != nil {
		t.Fatalf("delete goal: %v", err)
	}

	if _, err := goalRepo.FindByID(ctx, goal.ID); err != domainerror.ErrSavingGoalNotFound {
		t.Fatalf("expected goal not found, got %v", err)
	}

	savings, err := savingRepo.FindByUser(ctx, userID)
	if err != nil {
		t.Fatalf("list savings: %v", err)
	}
	if len(savings) != 2 {
		t.Fatalf("expected savings to survive goal deletion, got %d", len(savings))
	}
	for _, s := range savings {
		if s.GoalID != nil {
			t.Fatalf("expected saving %s to be unlinked", s.ID)
		}
	}
}
