// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vault-finance/backend/internal/domain/entity"
	domainerror "github.com/vault-finance/backend/internal/domain/error"
)

// fakeTransactionRepo is an in-memory adapter.TransactionRepository with a
// failure switch for mutation paths.
type fakeTransactionRepo struct {
	transactions []*entity.Transaction
	failWrites   bool
	listCalls    int
}

func (r *fakeTransactionRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	if r.failWrites {
		return errors.New("store unavailable")
	}
	r.transactions = append(r.transactions, transaction)
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	for _, tx := range r.transactions {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, domainerror.ErrRecordNotFound
}

func (r *fakeTransactionRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	r.listCalls++
	var out []*entity.Transaction
	for _, tx := range r.transactions {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) ListByUserAndType(ctx context.Context, userID uuid.UUID, transactionType *entity.TransactionType) ([]*entity.Transaction, error) {
	all, err := r.ListByUser(ctx, userID)
	if err != nil || transactionType == nil {
		return all, err
	}
	var out []*entity.Transaction
	for _, tx := range all {
		if tx.Type == *transactionType {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, transaction *entity.Transaction) error {
	if r.failWrites {
		return errors.New("store unavailable")
	}
	for i, tx := range r.transactions {
		if tx.ID == transaction.ID {
			r.transactions[i] = transaction
			return nil
		}
	}
	return domainerror.ErrRecordNotFound
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.failWrites {
		return errors.New("store unavailable")
	}
	for i, tx := range r.transactions {
		if tx.ID == id {
			r.transactions = append(r.transactions[:i], r.transactions[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrRecordNotFound
}

// fakeCache is an in-memory adapter.CollectionCache that counts mutations.
type fakeCache struct {
	snapshots map[uuid.UUID][]*entity.Transaction
	tokens    map[uuid.UUID]int64
	prepends  int
	replaces  int
	purges    int
	fills     int
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		snapshots: make(map[uuid.UUID][]*entity.Transaction),
		tokens:    make(map[uuid.UUID]int64),
	}
}

func (c *fakeCache) Get(_ context.Context, userID uuid.UUID) ([]*entity.Transaction, bool, error) {
	snapshot, ok := c.snapshots[userID]
	return snapshot, ok, nil
}

func (c *fakeCache) Token(_ context.Context, userID uuid.UUID) (int64, error) {
	return c.tokens[userID], nil
}

func (c *fakeCache) Fill(_ context.Context, userID uuid.UUID, items []*entity.Transaction, token int64) (bool, error) {
	c.fills++
	if token != c.tokens[userID] {
		return false, nil
	}
	c.snapshots[userID] = items
	return true, nil
}

func (c *fakeCache) Prepend(_ context.Context, userID uuid.UUID, item *entity.Transaction) error {
	c.prepends++
	c.tokens[userID]++
	if snapshot, ok := c.snapshots[userID]; ok {
		c.snapshots[userID] = append([]*entity.Transaction{item}, snapshot...)
	}
	return nil
}

func (c *fakeCache) ReplaceByID(_ context.Context, userID uuid.UUID, item *entity.Transaction) error {
	c.replaces++
	c.tokens[userID]++
	snapshot, ok := c.snapshots[userID]
	if !ok {
		return nil
	}
	for i, existing := range snapshot {
		if existing.ID == item.ID {
			snapshot[i] = item
			return nil
		}
	}
	delete(c.snapshots, userID)
	return nil
}

func (c *fakeCache) Purge(_ context.Context, userID uuid.UUID) error {
	c.purges++
	c.tokens[userID]++
	delete(c.snapshots, userID)
	return nil
}

func (c *fakeCache) mutations() int {
	return c.prepends + c.replaces + c.purges + c.fills
}

func recordCode(t *testing.T, err error) domainerror.RecordErrorCode {
	t.Helper()
	var recErr *domainerror.RecordError
	if !errors.As(err, &recErr) {
		t.Fatalf("expected a record error, got %v", err)
	}
	return recErr.Code
}

func txDate() time.Time {
	return time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
}

func TestListTransactionsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("unfiltered listing fills the snapshot on a miss", func(t *testing.T) {
		repo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			entity.NewTransaction(userID, txDate(), entity.TransactionTypeExpense, decimal.NewFromInt(450), "Groceries", ""),
		}}
		cache := newFakeCache()
		uc := NewListTransactionsUseCase(repo, cache)

		output, err := uc.Execute(ctx, ListTransactionsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Transactions) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(output.Transactions))
		}
		if _, ok := cache.snapshots[userID]; !ok {
			t.Error("expected the snapshot to be filled")
		}
	})

	t.Run("unfiltered listing serves a cache hit without the store", func(t *testing.T) {
		repo := &fakeTransactionRepo{}
		cache := newFakeCache()
		cache.snapshots[userID] = []*entity.Transaction{
			entity.NewTransaction(userID, txDate(), entity.TransactionTypeIncome, decimal.NewFromInt(25000), "Salary", ""),
		}
		uc := NewListTransactionsUseCase(repo, cache)

		output, err := uc.Execute(ctx, ListTransactionsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Transactions) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(output.Transactions))
		}
		if repo.listCalls != 0 {
			t.Errorf("expected the store to be skipped, got %d calls", repo.listCalls)
		}
	})

	t.Run("type filter bypasses the cache", func(t *testing.T) {
		repo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			entity.NewTransaction(userID, txDate(), entity.TransactionTypeIncome, decimal.NewFromInt(25000), "Salary", ""),
			entity.NewTransaction(userID, txDate(), entity.TransactionTypeExpense, decimal.NewFromInt(450), "Groceries", ""),
		}}
		cache := newFakeCache()
		uc := NewListTransactionsUseCase(repo, cache)

		filter := entity.TransactionTypeExpense
		output, err := uc.Execute(ctx, ListTransactionsInput{UserID: userID, Type: &filter})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Transactions) != 1 || output.Transactions[0].Type != entity.TransactionTypeExpense {
			t.Errorf("unexpected filtered result: %+v", output.Transactions)
		}
		if cache.mutations() != 0 {
			t.Errorf("expected the cache to be untouched, got %d mutations", cache.mutations())
		}
	})

	t.Run("rejects an unknown type filter", func(t *testing.T) {
		uc := NewListTransactionsUseCase(&fakeTransactionRepo{}, newFakeCache())

		filter := entity.TransactionType("transfer")
		_, err := uc.Execute(ctx, ListTransactionsInput{UserID: userID, Type: &filter})
		if code := recordCode(t, err); code != domainerror.ErrCodeRecordInvalidEnum {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeRecordInvalidEnum, code)
		}
	})
}

func TestCreateTransactionUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("persists and prepends to the snapshot", func(t *testing.T) {
		repo := &fakeTransactionRepo{}
		cache := newFakeCache()
		cache.snapshots[userID] = []*entity.Transaction{
			entity.NewTransaction(userID, txDate(), entity.TransactionTypeExpense, decimal.NewFromInt(450), "Groceries", ""),
		}
		uc := NewCreateTransactionUseCase(repo, cache)

		output, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:   userID,
			Date:     txDate(),
			Type:     entity.TransactionTypeIncome,
			Amount:   decimal.NewFromInt(25000),
			Category: "Salary",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.transactions) != 1 {
			t.Fatalf("expected the transaction to be persisted")
		}
		snapshot := cache.snapshots[userID]
		if len(snapshot) != 2 || snapshot[0].ID != output.Transaction.ID {
			t.Errorf("expected the new transaction first in the snapshot, got %+v", snapshot)
		}
	})

	t.Run("rejects a zero date", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(&fakeTransactionRepo{}, newFakeCache())

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID: userID,
			Type:   entity.TransactionTypeExpense,
			Amount: decimal.NewFromInt(100),
		})
		if code := recordCode(t, err); code != domainerror.ErrCodeRecordInvalidDate {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeRecordInvalidDate, code)
		}
	})

	t.Run("rejects an unknown type", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(&fakeTransactionRepo{}, newFakeCache())

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID: userID,
			Date:   txDate(),
			Type:   entity.TransactionType("transfer"),
			Amount: decimal.NewFromInt(100),
		})
		if code := recordCode(t, err); code != domainerror.ErrCodeRecordInvalidEnum {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeRecordInvalidEnum, code)
		}
	})

	t.Run("rejects a negative amount", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(&fakeTransactionRepo{}, newFakeCache())

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID: userID,
			Date:   txDate(),
			Type:   entity.TransactionTypeExpense,
			Amount: decimal.NewFromInt(-100),
		})
		if code := recordCode(t, err); code != domainerror.ErrCodeRecordInvalidAmount {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeRecordInvalidAmount, code)
		}
	})

	t.Run("store failure leaves the snapshot untouched", func(t *testing.T) {
		repo := &fakeTransactionRepo{failWrites: true}
		cache := newFakeCache()
		uc := NewCreateTransactionUseCase(repo, cache)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID: userID,
			Date:   txDate(),
			Type:   entity.TransactionTypeExpense,
			Amount: decimal.NewFromInt(100),
		})
		if code := recordCode(t, err); code != domainerror.ErrCodeRecordMutationFailed {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeRecordMutationFailed, code)
		}
		if cache.mutations() != 0 {
			t.Errorf("expected no cache mutations, got %d", cache.mutations())
		}
	})
}

func TestUpdateTransactionUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	seed := func() (*UpdateTransactionUseCase, *fakeTransactionRepo, *fakeCache, *entity.Transaction) {
		existing := entity.NewTransaction(userID, txDate(), entity.TransactionTypeExpense, decimal.NewFromInt(450), "Groceries", "")
		repo := &fakeTransactionRepo{transactions: []*entity.Transaction{existing}}
		cache := newFakeCache()
		cache.snapshots[userID] = []*entity.Transaction{existing}
		return NewUpdateTransactionUseCase(repo, cache), repo, cache, existing
	}

	t.Run("updates the record and swaps it in the snapshot", func(t *testing.T) {
		uc, repo, cache, existing := seed()

		output, err := uc.Execute(ctx, UpdateTransactionInput{
			ID:       existing.ID,
			UserID:   userID,
			Date:     txDate(),
			Type:     entity.TransactionTypeExpense,
			Amount:   decimal.NewFromInt(520),
			Category: "Groceries",
			Note:     "monthly shop",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Transaction.Amount.Equal(decimal.NewFromInt(520)) {
			t.Errorf("expected amount 520, got %s", output.Transaction.Amount)
		}
		if !repo.transactions[0].Amount.Equal(decimal.NewFromInt(520)) {
			t.Error("expected the stored record to be updated")
		}
		if cache.replaces != 1 {
			t.Errorf("expected one snapshot replace, got %d", cache.replaces)
		}
	})

	t.Run("missing record is not found", func(t *testing.T) {
		uc, _, _, _ := seed()

		_, err := uc.Execute(ctx, UpdateTransactionInput{
			ID:     uuid.New(),
			UserID: userID,
			Date:   txDate(),
			Type:   entity.TransactionTypeExpense,
			Amount: decimal.NewFromInt(100),
		})
		if code := recordCode(t, err); code != domainerror.ErrCodeRecordNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeRecordNotFound, code)
		}
	})

	t.Run("another user's record is unauthorized", func(t *testing.T) {
		uc, _, cache, existing := seed()

		_, err := uc.Execute(ctx, UpdateTransactionInput{
			ID:     existing.ID,
			UserID: uuid.New(),
			Date:   txDate(),
			Type:   entity.TransactionTypeExpense,
			Amount: decimal.NewFromInt(100),
		})
		if code := recordCode(t, err); code != domainerror.ErrCodeRecordUnauthorized {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeRecordUnauthorized, code)
		}
		if cache.mutations() != 0 {
			t.Errorf("expected no cache mutations, got %d", cache.mutations())
		}
	})
}

func TestDeleteTransactionUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("deletes the record and purges the snapshot", func(t *testing.T) {
		existing := entity.NewTransaction(userID, txDate(), entity.TransactionTypeExpense, decimal.NewFromInt(450), "Groceries", "")
		repo := &fakeTransactionRepo{transactions: []*entity.Transaction{existing}}
		cache := newFakeCache()
		cache.snapshots[userID] = []*entity.Transaction{existing}
		uc := NewDeleteTransactionUseCase(repo, cache)

		if _, err := uc.Execute(ctx, DeleteTransactionInput{ID: existing.ID, UserID: userID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.transactions) != 0 {
			t.Error("expected the record to be removed")
		}
		if _, ok := cache.snapshots[userID]; ok {
			t.Error("expected the snapshot to be purged")
		}
	})

	t.Run("another user's record is unauthorized", func(t *testing.T) {
		existing := entity.NewTransaction(userID, txDate(), entity.TransactionTypeExpense, decimal.NewFromInt(450), "Groceries", "")
		repo := &fakeTransactionRepo{transactions: []*entity.Transaction{existing}}
		uc := NewDeleteTransactionUseCase(repo, newFakeCache())

		_, err := uc.Execute(ctx, DeleteTransactionInput{ID: existing.ID, UserID: uuid.New()})
		if code := recordCode(t, err); code != domainerror.ErrCodeRecordUnauthorized {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeRecordUnauthorized, code)
		}
		if len(repo.transactions) != 1 {
			t.Error("expected the record to survive")
		}
	})
}
