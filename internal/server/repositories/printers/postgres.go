package printers

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/printdesk/internal/dbx"
	"github.com/dmitrijs2005/printdesk/internal/server/models"
)

const selectPrinters = `SELECT printer_id, printer_name, model, location, status, ip_address, serial_number FROM printers`

// PostgresRepository implements printer storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPrinter(s scanner) (*models.Printer, error) {
	p := &models.Printer{}
	err := s.Scan(&p.ID, &p.Name, &p.Model, &p.Location, &p.Status, &p.IPAddress, &p.SerialNumber)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostgresRepository) query(ctx context.Context, query string, args ...any) ([]*models.Printer, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbx.TranslateError(err)
	}
	defer rows.Close()

	result := make([]*models.Printer, 0)
	for rows.Next() {
		p, err := scanPrinter(rows)
		if err != nil {
			return nil, dbx.TranslateError(err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.TranslateError(err)
	}
	return result, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Printer, error) {
	return r.query(ctx, selectPrinters+` ORDER BY printer_id`)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Printer, error) {
	p, err := scanPrinter(r.db.QueryRowContext(ctx, selectPrinters+` WHERE printer_id = $1`, id))
	if err != nil {
		return nil, dbx.TranslateError(err)
	}
	return p, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *PostgresRepository) Search(ctx context.Context, term string) ([]*models.Printer, error) {
	query := selectPrinters + `
		WHERE printer_name ILIKE $1
		   OR model ILIKE $1
		   OR location ILIKE $1
		   OR status ILIKE $1
		   OR ip_address ILIKE $1
		   OR serial_number ILIKE $1
		ORDER BY printer_id`

	return r.query(ctx, query, "%"+likeEscaper.Replace(term)+"%")
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Printer) (*models.Printer, error) {
	query :=
		`INSERT INTO printers (printer_name, model, location, status, ip_address, serial_number)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING printer_id
		 `

	err := r.db.QueryRowContext(ctx, query,
		dbx.NullString(p.Name), dbx.NullString(p.Model), dbx.NullString(p.Location),
		dbx.NullString(p.Status), dbx.NullString(p.IPAddress), dbx.NullString(p.SerialNumber)).Scan(&p.ID)
	if err != nil {
		return nil, dbx.TranslateError(err)
	}
	return p, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, patch *models.PrinterPatch) error {
	var set []dbx.Assignment
	set = dbx.Set(set, "printer_name", patch.Name)
	set = dbx.Set(set, "model", patch.Model)
	set = dbx.Set(set, "location", patch.Location)
	set = dbx.Set(set, "status", patch.Status)
	set = dbx.Set(set, "ip_address", patch.IPAddress)
	set = dbx.Set(set, "serial_number", patch.SerialNumber)
	if len(set) == 0 {
		return nil
	}

	query, args := dbx.BuildUpdate("printers", "printer_id", id, set)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return dbx.TranslateError(err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM printers WHERE printer_id = $1`, id)
	if err != nil {
		return 0, dbx.TranslateError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}
