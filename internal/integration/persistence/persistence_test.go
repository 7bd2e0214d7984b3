// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vault-finance/backend/internal/domain/entity"
	domainerror "github.com/vault-finance/backend/internal/domain/error"
	"github.com/vault-finance/backend/internal/integration/persistence/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.TransactionModel{},
		&model.GoalModel{},
		&model.SavingsAccountModel{},
		&model.DebtModel{},
		&model.SubscriptionModel{},
		&model.InsurancePolicyModel{},
		&model.TaxRecordModel{},
		&model.DeductionEntryModel{},
		&model.BudgetPlanModel{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := NewTransactionRepository(db)
	userID := uuid.New()

	t.Run("lists newest date first", func(t *testing.T) {
		older := entity.NewTransaction(userID, date(2026, time.May, 1), entity.TransactionTypeExpense, decimal.NewFromInt(100), "Groceries", "")
		newer := entity.NewTransaction(userID, date(2026, time.May, 20), entity.TransactionTypeIncome, decimal.NewFromInt(25000), "Salary", "")

		for _, tx := range []*entity.Transaction{older, newer} {
			if err := repo.Create(ctx, tx); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		got, err := repo.ListByUser(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(got))
		}
		if got[0].ID != newer.ID {
			t.Error("expected the newer transaction first")
		}
	})

	t.Run("filters by type", func(t *testing.T) {
		expenseType := entity.TransactionTypeExpense
		got, err := repo.ListByUserAndType(ctx, userID, &expenseType)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, tx := range got {
			if tx.Type != entity.TransactionTypeExpense {
				t.Errorf("expected only expenses, got %s", tx.Type)
			}
		}
	})

	t.Run("never returns another user's records", func(t *testing.T) {
		got, err := repo.ListByUser(ctx, uuid.New())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no transactions, got %d", len(got))
		}
	})

	t.Run("update round-trips changed fields", func(t *testing.T) {
		tx := entity.NewTransaction(userID, date(2026, time.June, 2), entity.TransactionTypeExpense, decimal.NewFromInt(75), "Coffee", "")
		if err := repo.Create(ctx, tx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		tx.Amount = decimal.NewFromInt(85)
		tx.Note = "forgot the tip"
		if err := repo.Update(ctx, tx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByID(ctx, tx.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found.Amount.Equal(decimal.NewFromInt(85)) {
			t.Errorf("expected amount 85, got %s", found.Amount)
		}
		if found.Note != "forgot the tip" {
			t.Errorf("expected updated note, got %q", found.Note)
		}
	})

	t.Run("delete makes the record unfindable", func(t *testing.T) {
		tx := entity.NewTransaction(userID, date(2026, time.June, 3), entity.TransactionTypeExpense, decimal.NewFromInt(10), "", "")
		if err := repo.Create(ctx, tx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.Delete(ctx, tx.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := repo.FindByID(ctx, tx.ID)
		if !errors.Is(err, domainerror.ErrRecordNotFound) {
			t.Errorf("expected ErrRecordNotFound, got %v", err)
		}
	})
}

func TestTaxRecordRepository_Ordering(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := NewTaxRecordRepository(db)
	userID := uuid.New()

	for _, year := range []int{2024, 2026, 2025} {
		record := entity.NewTaxRecord(userID, year,
			decimal.NewFromInt(450000), decimal.NewFromInt(98000), decimal.NewFromInt(30000),
			decimal.Zero, decimal.Zero, entity.SARSStatusPending, nil)
		if err := repo.Create(ctx, record); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	got, err := repo.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	years := make([]int, len(got))
	for i, r := range got {
		years[i] = r.TaxYear
	}
	want := []int{2026, 2025, 2024}
	for i := range want {
		if years[i] != want[i] {
			t.Fatalf("expected years %v, got %v", want, years)
		}
	}
}

func TestDeductionRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := NewDeductionRepository(db)
	userID := uuid.New()

	t.Run("first write creates the entry", func(t *testing.T) {
		entry := entity.NewDeductionEntry(userID, 2026, "retirement_annuity", decimal.NewFromInt(12000), nil)

		saved, err := repo.Upsert(ctx, entry)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !saved.YTDAmount.Equal(decimal.NewFromInt(12000)) {
			t.Errorf("expected ytd 12000, got %s", saved.YTDAmount)
		}
	})

	t.Run("same key replaces instead of duplicating", func(t *testing.T) {
		entry := entity.NewDeductionEntry(userID, 2026, "retirement_annuity", decimal.NewFromInt(24000), nil)

		if _, err := repo.Upsert(ctx, entry); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		entries, err := repo.ListByUserAndYear(ctx, userID, 2026)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		if !entries[0].YTDAmount.Equal(decimal.NewFromInt(24000)) {
			t.Errorf("expected ytd 24000, got %s", entries[0].YTDAmount)
		}
	})

	t.Run("different type is a separate entry, listed alphabetically", func(t *testing.T) {
		entry := entity.NewDeductionEntry(userID, 2026, "medical_aid", decimal.NewFromInt(8000), nil)

		if _, err := repo.Upsert(ctx, entry); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		entries, err := repo.ListByUserAndYear(ctx, userID, 2026)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}
		if entries[0].DeductionType != "medical_aid" || entries[1].DeductionType != "retirement_annuity" {
			t.Errorf("expected alphabetical order, got %q then %q", entries[0].DeductionType, entries[1].DeductionType)
		}
	})

	t.Run("another year does not collide", func(t *testing.T) {
		entry := entity.NewDeductionEntry(userID, 2025, "retirement_annuity", decimal.NewFromInt(30000), nil)

		if _, err := repo.Upsert(ctx, entry); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		entries, err := repo.ListByUserAndYear(ctx, userID, 2025)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry for 2025, got %d", len(entries))
		}
	})
}

func TestBudgetPlanRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := NewBudgetPlanRepository(db)
	userID := uuid.New()
	march := date(2026, time.March, 1)

	t.Run("first write creates the plan", func(t *testing.T) {
		plan := entity.NewBudgetPlan(userID, march, decimal.NewFromInt(25000), decimal.NewFromInt(18000), nil, nil, "")

		if _, err := repo.Upsert(ctx, plan); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByUserAndMonth(ctx, userID, march)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found == nil {
			t.Fatal("expected a plan for March")
		}
	})

	t.Run("rewriting the month replaces the plan", func(t *testing.T) {
		actual := decimal.NewFromInt(19500)
		plan := entity.NewBudgetPlan(userID, march, decimal.NewFromInt(26000), decimal.NewFromInt(18000), nil, &actual, "updated")

		if _, err := repo.Upsert(ctx, plan); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		plans, err := repo.ListByUser(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(plans) != 1 {
			t.Fatalf("expected 1 plan, got %d", len(plans))
		}
		if !plans[0].ProjectedIncome.Equal(decimal.NewFromInt(26000)) {
			t.Errorf("expected projected income 26000, got %s", plans[0].ProjectedIncome)
		}
		if plans[0].Notes != "updated" {
			t.Errorf("expected updated notes, got %q", plans[0].Notes)
		}
	})

	t.Run("mid-month dates land on the same key", func(t *testing.T) {
		plan := entity.NewBudgetPlan(userID, date(2026, time.March, 19), decimal.NewFromInt(27000), decimal.NewFromInt(18000), nil, nil, "")

		if _, err := repo.Upsert(ctx, plan); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		plans, err := repo.ListByUser(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(plans) != 1 {
			t.Fatalf("expected 1 plan, got %d", len(plans))
		}
	})

	t.Run("lists newest month first", func(t *testing.T) {
		plan := entity.NewBudgetPlan(userID, date(2026, time.May, 1), decimal.NewFromInt(25000), decimal.NewFromInt(18000), nil, nil, "")
		if _, err := repo.Upsert(ctx, plan); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		plans, err := repo.ListByUser(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(plans) != 2 {
			t.Fatalf("expected 2 plans, got %d", len(plans))
		}
		if !plans[0].MonthYear.Equal(date(2026, time.May, 1)) {
			t.Errorf("expected May first, got %s", plans[0].MonthYear)
		}
	})

	t.Run("missing month yields nil without error", func(t *testing.T) {
		found, err := repo.FindByUserAndMonth(ctx, userID, date(2030, time.January, 1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found != nil {
			t.Errorf("expected nil plan, got %+v", found)
		}
	})
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := NewUserRepository(db)

	user := entity.NewUser("thandi@example.com", "9001015009087", "hash")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("finds by email", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "thandi@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.ID != user.ID {
			t.Error("expected the created user")
		}
	})

	t.Run("missing email maps to the domain error", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@example.com")
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("reports email existence", func(t *testing.T) {
		exists, err := repo.ExistsByEmail(ctx, "thandi@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exists {
			t.Error("expected the email to exist")
		}

		exists, err = repo.ExistsByEmail(ctx, "nobody@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exists {
			t.Error("expected the email to not exist")
		}
	})
}
