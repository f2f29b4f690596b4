package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/budgetwise/backend/internal/domain/entity"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

func newUserTestDB(t *testing.T) *gorm.DB {
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

	if err := db.AutoMigrate(&model.UserModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func TestAddBadgesMergesGrants(t *testing.T) {
	db := newUserTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	user := entity.NewUser("pat@example.com", "Pat", "hash", time.Now().UTC())
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	// First grant lands on a user with no badges at all.
	if err := repo.AddBadges(ctx, user.ID, []string{"challenge-2024-03", "gold"}); err != nil {
		t.Fatalf("first grant: %v", err)
	}

	loaded, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if len(loaded.EarnedBadges) != 2 {
		t.Fatalf("expected 2 badges, got %v", loaded.EarnedBadges)
	}

	// A later grant merges new names and skips what is already earned.
	if err := repo.AddBadges(ctx, user.ID, []string{"gold", "silver"}); err != nil {
		t.Fatalf("second grant: %v", err)
	}

	loaded, err = repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	want := map[string]bool{"challenge-2024-03": true, "gold": true, "silver": true}
	if len(loaded.EarnedBadges) != len(want) {
		t.Fatalf("expected badges %v, got %v", want, loaded.EarnedBadges)
	}
	for _, b := range loaded.EarnedBadges {
		if !want[b] {
			t.Fatalf("unexpected badge %q in %v", b, loaded.EarnedBadges)
		}
	}

	// Regranting everything already earned writes nothing.
	if err := repo.AddBadges(ctx, user.ID, []string{"gold", "silver"}); err != nil {
		t.Fatalf("idempotent grant: %v", err)
	}
	loaded, err = repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if len(loaded.EarnedBadges) != 3 {
		t.Fatalf("expected badge set unchanged, got %v", loaded.EarnedBadges)
	}
}
