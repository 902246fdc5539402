package domain

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidCredentials is returned when login email or password is wrong.
// Lookup misses and password mismatches are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Account is a client-admin login account. Each account belongs to a tenant
// and may organize matchmaking events for it.
type Account struct {
	ID           string    `json:"id"`
	TenantID     string    `json:"tenant_id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// AccountRepository defines the interface for account storage.
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, id string) (*Account, error)
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated account.
type TokenIssuer interface {
	Issue(accountID, email, tenantID string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated account ID.
type TokenVerifier interface {
	Verify(token string) (accountID string, err error)
}

// AuthService authenticates client admins.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, account *Account, err error)
}
