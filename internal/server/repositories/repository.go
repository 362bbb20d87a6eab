// Package repositories declares the storage contract shared by every record
// type. Entity packages (users, printers, permissions) implement it over a
// dbx.DBTX and translate driver errors through dbx.TranslateError.
package repositories

import "context"

// Repository is the uniform CRUD contract for a record T with partial
// update payload P.
type Repository[T any, P any] interface {
	// List returns all records ordered by id.
	List(ctx context.Context) ([]*T, error)

	// GetByID returns common.ErrorNotFound when the id does not exist.
	GetByID(ctx context.Context, id int64) (*T, error)

	// Create inserts item and returns it with the generated id set.
	Create(ctx context.Context, item *T) (*T, error)

	// Update writes the supplied fields of patch. An empty patch is a no-op.
	Update(ctx context.Context, id int64, patch *P) error

	// Delete removes the record and reports how many rows were affected.
	Delete(ctx context.Context, id int64) (int64, error)
}
