package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/printdesk/internal/common"
	"github.com/dmitrijs2005/printdesk/internal/dbx"
	"github.com/dmitrijs2005/printdesk/internal/server/models"
	"github.com/dmitrijs2005/printdesk/internal/server/repositories"
	"github.com/dmitrijs2005/printdesk/internal/server/repositories/repomanager"
)

// PrinterService manages printer records and free-text printer search.
type PrinterService struct {
	*RecordService[models.Printer, models.PrinterPatch]
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPrinterService(db *sql.DB, m repomanager.RepositoryManager) *PrinterService {
	repo := func(tx dbx.DBTX) repositories.Repository[models.Printer, models.PrinterPatch] {
		return m.Printers(tx)
	}
	return &PrinterService{
		RecordService: NewRecordService(db, "Printer", repo),
		db:            db,
		repomanager:   m,
	}
}

// Search matches term case-insensitively against every textual printer
// column. An empty result is reported as NotFound.
func (s *PrinterService) Search(ctx context.Context, term string) ([]*models.Printer, error) {
	items, err := s.repomanager.Printers(s.db).Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("error searching printers: %w", err)
	}
	if len(items) == 0 {
		return nil, common.Errorf(common.ErrorNotFound, "No printers found matching the search term %q", term)
	}
	return items, nil
}
