package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"vendormatch/internal/domain"
)

type accountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) domain.AccountRepository {
	return &accountRepository{
		DB: db,
	}
}

func (r *accountRepository) Create(ctx context.Context, a *domain.Account) error {
	query := `
		INSERT INTO accounts (tenant_id, email, name, password_hash, salt, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		a.TenantID, a.Email, a.Name, a.PasswordHash, a.Salt, a.CreatedAt,
	).Scan(&a.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `
		SELECT id, tenant_id, email, name, password_hash, salt, created_at
		FROM accounts
		WHERE email = $1
	`
	a := &domain.Account{}
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&a.ID, &a.TenantID, &a.Email, &a.Name, &a.PasswordHash, &a.Salt, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `
		SELECT id, tenant_id, email, name, password_hash, salt, created_at
		FROM accounts
		WHERE id = $1
	`
	a := &domain.Account{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.TenantID, &a.Email, &a.Name, &a.PasswordHash, &a.Salt, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}
