// Package services contains server-side business logic: generic record
// management for users, printers and permissions, and password
// authentication.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/printdesk/internal/common"
	"github.com/dmitrijs2005/printdesk/internal/dbx"
	"github.com/dmitrijs2005/printdesk/internal/server/repositories"
)

// RecordService implements list / get / create / update / remove for one
// record type T with partial update payload P.
type RecordService[T any, P any] struct {
	db     *sql.DB
	repo   func(db dbx.DBTX) repositories.Repository[T, P]
	entity string
}

// NewRecordService constructs a RecordService. entity is the display name
// used in messages, e.g. "Printer"; repo binds the repository to either the
// pool or a transaction.
func NewRecordService[T any, P any](db *sql.DB, entity string, repo func(db dbx.DBTX) repositories.Repository[T, P]) *RecordService[T, P] {
	return &RecordService[T, P]{db: db, repo: repo, entity: entity}
}

func (s *RecordService[T, P]) List(ctx context.Context) ([]*T, error) {
	items, err := s.repo(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing %s records: %w", s.name(), err)
	}
	return items, nil
}

// GetByID returns a NotFound error carrying "<Entity> with ID n not found"
// when the record does not exist.
func (s *RecordService[T, P]) GetByID(ctx context.Context, id int64) (*T, error) {
	item, err := s.repo(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, s.lookupError(id, err)
	}
	return item, nil
}

func (s *RecordService[T, P]) Create(ctx context.Context, item *T) (*T, error) {
	created, err := s.repo(s.db).Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("error creating %s: %w", s.name(), err)
	}
	return created, nil
}

// Update checks existence, writes the supplied fields and re-reads the row,
// all inside one transaction.
func (s *RecordService[T, P]) Update(ctx context.Context, id int64, patch *P) (*T, error) {
	var updated *T
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)

		if _, err := repo.GetByID(ctx, id); err != nil {
			return s.lookupError(id, err)
		}
		if err := repo.Update(ctx, id, patch); err != nil {
			return fmt.Errorf("error updating %s %d: %w", s.name(), id, err)
		}

		item, err := repo.GetByID(ctx, id)
		if err != nil {
			return s.lookupError(id, err)
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Remove deletes the record and returns a confirmation message.
func (s *RecordService[T, P]) Remove(ctx context.Context, id int64) (string, error) {
	n, err := s.repo(s.db).Delete(ctx, id)
	if err != nil {
		return "", fmt.Errorf("error deleting %s %d: %w", s.name(), id, err)
	}
	if n == 0 {
		return "", s.notFound(id)
	}
	return fmt.Sprintf("%s with ID %d deleted successfully", s.entity, id), nil
}

func (s *RecordService[T, P]) lookupError(id int64, err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return s.notFound(id)
	}
	return fmt.Errorf("error fetching %s %d: %w", s.name(), id, err)
}

func (s *RecordService[T, P]) notFound(id int64) error {
	return common.Errorf(common.ErrorNotFound, "%s with ID %d not found", s.entity, id)
}

func (s *RecordService[T, P]) name() string { return strings.ToLower(s.entity) }
