package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"vendormatch/internal/domain"
)

type vendorRepository struct {
	DB *sql.DB
}

func NewVendorRepository(db *sql.DB) domain.VendorRepository {
	return &vendorRepository{
		DB: db,
	}
}

func (r *vendorRepository) Create(ctx context.Context, v *domain.Vendor) error {
	query := `
		INSERT INTO vendors (vendor_code, company_name, first_name, last_name, email, city, state, classification, about, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		v.VendorCode, v.CompanyName, v.FirstName, v.LastName, v.Email,
		v.City, v.State, v.Classification, v.About, v.CreatedAt, v.UpdatedAt,
	).Scan(&v.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *vendorRepository) GetByID(ctx context.Context, id string) (*domain.Vendor, error) {
	query := `
		SELECT id, vendor_code, company_name, first_name, last_name, email, city, state, classification, about, created_at, updated_at
		FROM vendors
		WHERE id = $1
	`
	v := &domain.Vendor{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&v.ID, &v.VendorCode, &v.CompanyName, &v.FirstName, &v.LastName, &v.Email,
		&v.City, &v.State, &v.Classification, &v.About, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

// List returns one page of vendors plus the total count. search, when
// non-empty, filters on company name or email (case-insensitive substring).
func (r *vendorRepository) List(ctx context.Context, search string, params domain.PaginationParams) ([]*domain.Vendor, int, error) {
	countQuery := `
		SELECT COUNT(*) FROM vendors
		WHERE ($1 = '' OR company_name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%')
	`
	var total int
	if err := r.DB.QueryRowContext(ctx, countQuery, search).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, vendor_code, company_name, first_name, last_name, email, city, state, classification, about, created_at, updated_at
		FROM vendors
		WHERE ($1 = '' OR company_name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%')
		ORDER BY company_name, id
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, search, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	vendors := make([]*domain.Vendor, 0)
	for rows.Next() {
		v := &domain.Vendor{}
		if err := rows.Scan(&v.ID, &v.VendorCode, &v.CompanyName, &v.FirstName, &v.LastName, &v.Email,
			&v.City, &v.State, &v.Classification, &v.About, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, 0, err
		}
		vendors = append(vendors, v)
	}
	return vendors, total, rows.Err()
}

func (r *vendorRepository) Update(ctx context.Context, v *domain.Vendor) error {
	query := `
		UPDATE vendors
		SET vendor_code = $1, company_name = $2, first_name = $3, last_name = $4, email = $5,
		    city = $6, state = $7, classification = $8, about = $9, updated_at = $10
		WHERE id = $11
	`
	result, err := r.DB.ExecContext(ctx, query,
		v.VendorCode, v.CompanyName, v.FirstName, v.LastName, v.Email,
		v.City, v.State, v.Classification, v.About, v.UpdatedAt, v.ID,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *vendorRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM vendors WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
