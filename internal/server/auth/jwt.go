// Package auth issues and verifies access tokens and hashes passwords.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/printdesk/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the identity carried by an access token.
type Claims struct {
	UserID int64
	Email  string
}

// tokenClaims is the wire form: sub holds the user id, jti makes every token unique.
type tokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// TokenIssuer signs and verifies HS256 tokens with a process-wide secret.
type TokenIssuer struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

func NewTokenIssuer(secret []byte, validity time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, validity: validity, now: time.Now}
}

// Issue returns a signed token for c that expires after the configured validity.
func (i *TokenIssuer) Issue(c Claims) (string, error) {
	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(c.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.validity)),
			ID:        uuid.NewString(),
		},
		Email: c.Email,
	})

	s, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return s, nil
}

// Verify checks signature and expiry. Expired tokens return
// common.ErrTokenExpired, every other failure common.ErrInvalidToken.
func (i *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &tokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	return &Claims{UserID: id, Email: claims.Email}, nil
}
