package models

import (
	"time"

	"dashkit/internal/domain"
)

// User is the public view of an account, as returned after login.
type User struct {
	ID    domain.ID   `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
	OrgID string      `json:"orgId,omitempty"`
}

// Account is a stored user including its password hash.
type Account struct {
	ID           domain.ID   `json:"id" db:"id"`
	Name         string      `json:"name" db:"name"`
	Email        string      `json:"email" db:"email"`
	Username     string      `json:"username" db:"username"`
	PasswordHash string      `json:"passwordHash" db:"password_hash"`
	Role         domain.Role `json:"role" db:"role"`
	OrgID        string      `json:"orgId,omitempty" db:"org_id"`
	CreatedAt    time.Time   `json:"createdAt" db:"created_at"`
}

// Public strips the credential fields.
func (a Account) Public() User {
	return User{ID: a.ID, Name: a.Name, Email: a.Email, Role: a.Role, OrgID: a.OrgID}
}

// SignupInput is the body of a signup request.
type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginInput is the body of a login request. Identifier is a username or
// an email address.
type LoginInput struct {
	Identifier string `json:"username"`
	Password   string `json:"password"`
}

// AuthResult is a signed-in user plus its bearer token.
type AuthResult struct {
	User      User      `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
