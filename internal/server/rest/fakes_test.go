package rest

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/printdesk/internal/common"
	"github.com/dmitrijs2005/printdesk/internal/server/auth"
	"github.com/dmitrijs2005/printdesk/internal/server/models"
	"github.com/dmitrijs2005/printdesk/internal/server/services"
)

const goodToken = "good-token"

type fakeVerifier struct{}

func (fakeVerifier) Verify(token string) (*auth.Claims, error) {
	switch token {
	case goodToken:
		return &auth.Claims{UserID: 7, Email: "ada@example.com"}, nil
	case "expired":
		return nil, common.ErrTokenExpired
	default:
		return nil, common.ErrInvalidToken
	}
}

type fakeRecords[T any, C any, P any] struct {
	listOut []*T
	getOut  *T
	err     error

	createIn *C
	createFn func(*C) *T

	updateID int64
	updateIn *P

	removeMsg string
}

func (f *fakeRecords[T, C, P]) List(context.Context) ([]*T, error) {
	return f.listOut, f.err
}

func (f *fakeRecords[T, C, P]) GetByID(context.Context, int64) (*T, error) {
	return f.getOut, f.err
}

func (f *fakeRecords[T, C, P]) Create(_ context.Context, in *C) (*T, error) {
	f.createIn = in
	if f.err != nil {
		return nil, f.err
	}
	return f.createFn(in), nil
}

func (f *fakeRecords[T, C, P]) Update(_ context.Context, id int64, patch *P) (*T, error) {
	f.updateID, f.updateIn = id, patch
	return f.getOut, f.err
}

func (f *fakeRecords[T, C, P]) Remove(context.Context, int64) (string, error) {
	return f.removeMsg, f.err
}

type fakePrinters struct {
	fakeRecords[models.Printer, models.Printer, models.PrinterPatch]

	searchTerm string
	searchOut  []*models.Printer
	searchErr  error
}

func (f *fakePrinters) Search(_ context.Context, term string) ([]*models.Printer, error) {
	f.searchTerm = term
	return f.searchOut, f.searchErr
}

type fakeAuth struct {
	user        *models.User
	validateErr error
	loginErr    error
	registerOut *models.User
	registerErr error
}

func (f *fakeAuth) ValidateCredentials(context.Context, string, string) (*models.User, error) {
	return f.user, f.validateErr
}

func (f *fakeAuth) Login(u *models.User) (*services.LoginResult, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &services.LoginResult{AccessToken: "tok", UserID: u.ID}, nil
}

func (f *fakeAuth) Register(context.Context, *models.NewUser) (*models.User, error) {
	return f.registerOut, f.registerErr
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

var errStore = errors.New("db error: connection refused")
