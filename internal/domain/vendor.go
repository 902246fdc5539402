package domain

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateEmail is returned when a vendor email is already registered.
var ErrDuplicateEmail = errors.New("email already in use")

// Vendor represents a vendor company in the directory.
// swagger:model Vendor
type Vendor struct {
	ID             string    `json:"id"`
	VendorCode     string    `json:"vendor_code"`
	CompanyName    string    `json:"company_name"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	City           string    `json:"city"`
	State          string    `json:"state"`
	Classification string    `json:"classification"`
	About          string    `json:"about"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PaginationParams selects a page of a list result.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the row offset for the page.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// VendorRepository defines the interface for vendor storage.
type VendorRepository interface {
	Create(ctx context.Context, vendor *Vendor) error
	GetByID(ctx context.Context, id string) (*Vendor, error)
	List(ctx context.Context, search string, params PaginationParams) ([]*Vendor, int, error)
	Update(ctx context.Context, vendor *Vendor) error
	Delete(ctx context.Context, id string) error
}

// DirectoryService defines the vendor directory business logic.
type DirectoryService interface {
	CreateVendor(ctx context.Context, vendor *Vendor) error
	GetVendorByID(ctx context.Context, id string) (*Vendor, error)
	ListVendors(ctx context.Context, search string, params PaginationParams) ([]*Vendor, int, error)
	UpdateVendor(ctx context.Context, vendor *Vendor) (*Vendor, error)
	DeleteVendor(ctx context.Context, id string) error
}
