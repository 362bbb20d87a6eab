package permissions

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/printdesk/internal/dbx"
	"github.com/dmitrijs2005/printdesk/internal/server/models"
)

// PostgresRepository implements permission storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Permission, error) {
	query :=
		`SELECT permission_id, user_id, printer_id, access_level FROM user_printer_permissions
		 ORDER BY permission_id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, dbx.TranslateError(err)
	}
	defer rows.Close()

	result := make([]*models.Permission, 0)
	for rows.Next() {
		var p models.Permission
		if err := rows.Scan(&p.ID, &p.UserID, &p.PrinterID, &p.AccessLevel); err != nil {
			return nil, dbx.TranslateError(err)
		}
		result = append(result, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.TranslateError(err)
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Permission, error) {
	query :=
		`SELECT permission_id, user_id, printer_id, access_level FROM user_printer_permissions
		 WHERE permission_id = $1
		 `

	p := &models.Permission{}
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.UserID, &p.PrinterID, &p.AccessLevel); err != nil {
		return nil, dbx.TranslateError(err)
	}
	return p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Permission) (*models.Permission, error) {
	query :=
		`INSERT INTO user_printer_permissions (user_id, printer_id, access_level)
		 VALUES ($1, $2, $3)
		 RETURNING permission_id
		 `

	err := r.db.QueryRowContext(ctx, query,
		dbx.NullID(p.UserID), dbx.NullID(p.PrinterID), dbx.NullString(p.AccessLevel)).Scan(&p.ID)
	if err != nil {
		return nil, dbx.TranslateError(err)
	}
	return p, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, patch *models.PermissionPatch) error {
	var set []dbx.Assignment
	set = dbx.Set(set, "user_id", patch.UserID)
	set = dbx.Set(set, "printer_id", patch.PrinterID)
	set = dbx.Set(set, "access_level", patch.AccessLevel)
	if len(set) == 0 {
		return nil
	}

	query, args := dbx.BuildUpdate("user_printer_permissions", "permission_id", id, set)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return dbx.TranslateError(err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM user_printer_permissions WHERE permission_id = $1`, id)
	if err != nil {
		return 0, dbx.TranslateError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}
