// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domainerror "github.com/vault-finance/backend/internal/domain/error"
)

// collection is the generic store behind every user-owned entity repository.
// Each instantiation binds a database model to its domain entity and a
// documented listing order; the per-entity repositories are thin wrappers
// around it.
type collection[M any, E any] struct {
	db         *gorm.DB
	orderBy    string
	toEntity   func(*M) *E
	fromEntity func(*E) *M
}

// Create inserts a new record into the collection.
func (c *collection[M, E]) Create(ctx context.Context, record *E) error {
	result := c.db.WithContext(ctx).Create(c.fromEntity(record))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a record by its ID.
func (c *collection[M, E]) FindByID(ctx context.Context, id uuid.UUID) (*E, error) {
	var m M
	result := c.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecordNotFound
		}
		return nil, result.Error
	}
	return c.toEntity(&m), nil
}

// ListByUser retrieves every record owned by the given user, in the
// collection's documented order.
func (c *collection[M, E]) ListByUser(ctx context.Context, userID uuid.UUID) ([]*E, error) {
	var ms []M
	result := c.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(c.orderBy).
		Find(&ms)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*E, len(ms))
	for i := range ms {
		records[i] = c.toEntity(&ms[i])
	}
	return records, nil
}

// Update saves an existing record.
func (c *collection[M, E]) Update(ctx context.Context, record *E) error {
	result := c.db.WithContext(ctx).Save(c.fromEntity(record))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a record from the collection (soft delete where the model
// supports it).
func (c *collection[M, E]) Delete(ctx context.Context, id uuid.UUID) error {
	result := c.db.WithContext(ctx).Delete(new(M), "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
