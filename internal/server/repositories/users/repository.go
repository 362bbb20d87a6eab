// Package users implements the credential store: PostgreSQL persistence of
// user identity, password hash and role.
package users

import (
	"context"

	"github.com/dmitrijs2005/printdesk/internal/server/models"
	"github.com/dmitrijs2005/printdesk/internal/server/repositories"
)

// Repository is the user record store. List and GetByID never select the
// password hash; GetByEmail does, for credential checks.
type Repository interface {
	repositories.Repository[models.User, Changes]
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// Changes is the storage-level partial update. PasswordHash, when set, is
// already hashed.
type Changes struct {
	UserName     *string
	UserLastName *string
	Email        *string
	PasswordHash *string
	Role         *int
}
