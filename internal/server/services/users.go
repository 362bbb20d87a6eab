package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/printdesk/internal/common"
	"github.com/dmitrijs2005/printdesk/internal/dbx"
	"github.com/dmitrijs2005/printdesk/internal/server/models"
	"github.com/dmitrijs2005/printdesk/internal/server/repositories"
	"github.com/dmitrijs2005/printdesk/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/printdesk/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes plaintext passwords and checks them against a hash.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// UserService manages user records. Plaintext passwords are hashed before
// they reach the store and hashes never leave it through List or GetByID.
type UserService struct {
	records     *RecordService[models.User, users.Changes]
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      PasswordHasher
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, h PasswordHasher) *UserService {
	repo := func(tx dbx.DBTX) repositories.Repository[models.User, users.Changes] {
		return m.Users(tx)
	}
	return &UserService{
		records:     NewRecordService(db, "User", repo),
		db:          db,
		repomanager: m,
		hasher:      h,
	}
}

func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.records.List(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.records.GetByID(ctx, id)
}

// GetByEmail is the credential lookup: the returned user includes the
// password hash. Unknown emails yield common.ErrorNotFound.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error fetching user by email: %w", err)
	}
	return u, nil
}

// Create hashes the password and stores the user. Missing fields and
// duplicate emails are reported as Conflict.
func (s *UserService) Create(ctx context.Context, nu *models.NewUser) (*models.User, error) {
	if nu.Role == nil {
		return nil, common.Errorf(common.ErrorConflict, "Missing required field role")
	}

	var hash string
	if nu.Password != "" {
		h, err := s.hashPassword(nu.Password)
		if err != nil {
			return nil, err
		}
		hash = h
	}

	created, err := s.records.Create(ctx, &models.User{
		UserName:     nu.UserName,
		UserLastName: nu.UserLastName,
		Email:        nu.Email,
		PasswordHash: hash,
		Role:         *nu.Role,
	})
	if err != nil {
		return nil, err
	}
	return created.Sanitized(), nil
}

// Update writes the supplied fields. A new password is re-hashed; an absent
// one leaves the stored hash untouched.
func (s *UserService) Update(ctx context.Context, id int64, p *models.UserPatch) (*models.User, error) {
	changes := &users.Changes{
		UserName:     p.UserName,
		UserLastName: p.UserLastName,
		Email:        p.Email,
		Role:         p.Role,
	}

	if p.Password != nil {
		if *p.Password == "" {
			return nil, common.Errorf(common.ErrorConflict, "Missing required field password")
		}
		h, err := s.hashPassword(*p.Password)
		if err != nil {
			return nil, err
		}
		changes.PasswordHash = &h
	}

	updated, err := s.records.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	return updated.Sanitized(), nil
}

func (s *UserService) Remove(ctx context.Context, id int64) (string, error) {
	return s.records.Remove(ctx, id)
}

func (s *UserService) hashPassword(plain string) (string, error) {
	h, err := s.hasher.Hash(plain)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", common.Errorf(common.ErrorBadRequest, "Password is too long")
		}
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return h, nil
}
