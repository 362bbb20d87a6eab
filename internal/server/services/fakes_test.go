package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/printdesk/internal/dbx"
	"github.com/dmitrijs2005/printdesk/internal/server/auth"
	"github.com/dmitrijs2005/printdesk/internal/server/models"
	"github.com/dmitrijs2005/printdesk/internal/server/repositories/permissions"
	"github.com/dmitrijs2005/printdesk/internal/server/repositories/printers"
	"github.com/dmitrijs2005/printdesk/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

// fakeRepo is a scriptable repositories.Repository. getFn, when set, wins
// over getOut/getErr so tests can vary consecutive GetByID results.
type fakeRepo[T any, P any] struct {
	listOut []*T
	listErr error

	getOut   *T
	getErr   error
	getFn    func(call int, id int64) (*T, error)
	getCalls int

	createOut *T
	createErr error
	created   *T

	updateErr error
	updated   *P

	deleteN   int64
	deleteErr error
}

func (f *fakeRepo[T, P]) List(context.Context) ([]*T, error) {
	return f.listOut, f.listErr
}

func (f *fakeRepo[T, P]) GetByID(_ context.Context, id int64) (*T, error) {
	f.getCalls++
	if f.getFn != nil {
		return f.getFn(f.getCalls, id)
	}
	return f.getOut, f.getErr
}

func (f *fakeRepo[T, P]) Create(_ context.Context, item *T) (*T, error) {
	f.created = item
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return item, nil
}

func (f *fakeRepo[T, P]) Update(_ context.Context, _ int64, patch *P) error {
	f.updated = patch
	return f.updateErr
}

func (f *fakeRepo[T, P]) Delete(context.Context, int64) (int64, error) {
	return f.deleteN, f.deleteErr
}

type fakeUsersRepo struct {
	fakeRepo[models.User, users.Changes]

	byEmailOut *models.User
	byEmailErr error
}

func (f *fakeUsersRepo) GetByEmail(context.Context, string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmailOut, nil
}

type fakePrintersRepo struct {
	fakeRepo[models.Printer, models.PrinterPatch]

	searchOut  []*models.Printer
	searchErr  error
	searchTerm string
}

func (f *fakePrintersRepo) Search(_ context.Context, term string) ([]*models.Printer, error) {
	f.searchTerm = term
	return f.searchOut, f.searchErr
}

type fakePermissionsRepo struct {
	fakeRepo[models.Permission, models.PermissionPatch]
}

type fakeRepoManager struct {
	u  *fakeUsersRepo
	p  *fakePrintersRepo
	pm *fakePermissionsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository             { return m.u }
func (m *fakeRepoManager) Printers(dbx.DBTX) printers.Repository       { return m.p }
func (m *fakeRepoManager) Permissions(dbx.DBTX) permissions.Repository { return m.pm }

// fakeHasher "hashes" by prefixing, so tests can assert on stored values.
type fakeHasher struct {
	hashErr     error
	verifyCalls []string
}

func (h *fakeHasher) Hash(plain string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed:" + plain, nil
}

func (h *fakeHasher) Verify(plain, hash string) bool {
	h.verifyCalls = append(h.verifyCalls, hash)
	return hash == "hashed:"+plain
}

type fakeIssuer struct {
	got auth.Claims
	err error
}

func (i *fakeIssuer) Issue(c auth.Claims) (string, error) {
	i.got = c
	if i.err != nil {
		return "", i.err
	}
	return "token-for-" + c.Email, nil
}

var errDB = errors.New("db error: connection refused")
