// Package models defines server-side data models persisted in the database.
package models

// User is a person able to log in. PasswordHash never leaves the server:
// it is skipped by JSON encoding and left empty by list/get projections.
type User struct {
	ID           int64  `json:"user_id"`
	UserName     string `json:"username"`
	UserLastName string `json:"userlastname"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         int    `json:"role"`
}

// Sanitized returns a copy of u without the password hash.
func (u *User) Sanitized() *User {
	c := *u
	c.PasswordHash = ""
	return &c
}

// NewUser is the registration / creation payload. Password is plaintext and
// is hashed before it reaches the store.
type NewUser struct {
	UserName     string `json:"username"`
	UserLastName string `json:"userlastname"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         *int   `json:"role"`
}

// UserPatch is a partial update. Nil fields are left untouched; a non-nil
// Password is re-hashed before it is stored.
type UserPatch struct {
	UserName     *string `json:"username,omitempty"`
	UserLastName *string `json:"userlastname,omitempty"`
	Email        *string `json:"email,omitempty"`
	Password     *string `json:"password,omitempty"`
	Role         *int    `json:"role,omitempty"`
}
