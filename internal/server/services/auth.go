package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/printdesk/internal/common"
	"github.com/dmitrijs2005/printdesk/internal/server/auth"
	"github.com/dmitrijs2005/printdesk/internal/server/models"
)

// TokenIssuer mints access tokens.
type TokenIssuer interface {
	Issue(c auth.Claims) (string, error)
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	AccessToken string `json:"accessToken"`
	UserID      int64  `json:"userId"`
}

// AuthService handles credential checks, login and registration.
type AuthService struct {
	users  *UserService
	hasher PasswordHasher
	tokens TokenIssuer

	dummyOnce sync.Once
	dummyHash string
}

func NewAuthService(u *UserService, h PasswordHasher, t TokenIssuer) *AuthService {
	return &AuthService{users: u, hasher: h, tokens: t}
}

// ValidateCredentials returns the sanitized user when email and password
// match. A nil user with a nil error means no match. Unknown emails still
// pay for one password comparison.
func (s *AuthService) ValidateCredentials(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.hasher.Verify(password, s.dummy())
			return nil, nil
		}
		return nil, fmt.Errorf("error validating credentials: %w", err)
	}

	if !s.hasher.Verify(password, u.PasswordHash) {
		return nil, nil
	}
	return u.Sanitized(), nil
}

// Login issues an access token for an already validated user.
func (s *AuthService) Login(u *models.User) (*LoginResult, error) {
	token, err := s.tokens.Issue(auth.Claims{UserID: u.ID, Email: u.Email})
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}
	return &LoginResult{AccessToken: token, UserID: u.ID}, nil
}

// Register creates a user account. Duplicate emails and missing fields are
// reported as Conflict.
func (s *AuthService) Register(ctx context.Context, nu *models.NewUser) (*models.User, error) {
	return s.users.Create(ctx, nu)
}

// fallbackDummyHash is a well-formed cost-10 bcrypt hash used when the
// hasher cannot produce one.
const fallbackDummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func (s *AuthService) dummy() string {
	s.dummyOnce.Do(func() {
		h, err := s.hasher.Hash("printdesk-timing-equalizer")
		if err != nil {
			h = fallbackDummyHash
		}
		s.dummyHash = h
	})
	return s.dummyHash
}
