// Package printers provides PostgreSQL persistence for printer records.
package printers

import (
	"context"

	"github.com/dmitrijs2005/printdesk/internal/server/models"
	"github.com/dmitrijs2005/printdesk/internal/server/repositories"
)

// Repository is the printer record store.
type Repository interface {
	repositories.Repository[models.Printer, models.PrinterPatch]

	// Search returns printers whose textual fields contain term,
	// case-insensitively. An empty result is not an error at this level.
	Search(ctx context.Context, term string) ([]*models.Printer, error)
}
