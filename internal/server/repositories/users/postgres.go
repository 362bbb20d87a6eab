package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/printdesk/internal/dbx"
	"github.com/dmitrijs2005/printdesk/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.User, error) {
	query :=
		`SELECT user_id, username, userlastname, email, role FROM users
		 ORDER BY user_id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, dbx.TranslateError(err)
	}
	defer rows.Close()

	result := make([]*models.User, 0)
	for rows.Next() {
		u := &models.User{}
		if err := rows.Scan(&u.ID, &u.UserName, &u.UserLastName, &u.Email, &u.Role); err != nil {
			return nil, dbx.TranslateError(err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.TranslateError(err)
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query :=
		`SELECT user_id, username, userlastname, email, role FROM users
		 WHERE user_id = $1
		 `

	u := &models.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.UserName, &u.UserLastName, &u.Email, &u.Role)
	if err != nil {
		return nil, dbx.TranslateError(err)
	}
	return u, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT user_id, username, userlastname, email, password_hash, role FROM users
		 WHERE email = $1
		 `

	u := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&u.ID, &u.UserName, &u.UserLastName, &u.Email, &u.PasswordHash, &u.Role)
	if err != nil {
		return nil, dbx.TranslateError(err)
	}
	return u, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (username, userlastname, email, password_hash, role)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING user_id
		 `

	err := r.db.QueryRowContext(ctx, query,
		dbx.NullString(user.UserName), dbx.NullString(user.UserLastName), dbx.NullString(user.Email),
		dbx.NullString(user.PasswordHash), user.Role).Scan(&user.ID)
	if err != nil {
		return nil, dbx.TranslateError(err)
	}
	return user, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, c *Changes) error {
	var set []dbx.Assignment
	set = dbx.Set(set, "username", c.UserName)
	set = dbx.Set(set, "userlastname", c.UserLastName)
	set = dbx.Set(set, "email", c.Email)
	set = dbx.Set(set, "password_hash", c.PasswordHash)
	set = dbx.Set(set, "role", c.Role)
	if len(set) == 0 {
		return nil
	}

	query, args := dbx.BuildUpdate("users", "user_id", id, set)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return dbx.TranslateError(err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE user_id = $1`, id)
	if err != nil {
		return 0, dbx.TranslateError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}
