package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vendormatch/internal/domain"
)

type directoryService struct {
	vendorRepo     domain.VendorRepository
	contextTimeout time.Duration
}

func NewDirectoryService(vendorRepo domain.VendorRepository, timeout time.Duration) domain.DirectoryService {
	return &directoryService{
		vendorRepo:     vendorRepo,
		contextTimeout: timeout,
	}
}

func (s *directoryService) CreateVendor(ctx context.Context, vendor *domain.Vendor) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	vendor.Email = strings.TrimSpace(strings.ToLower(vendor.Email))
	if vendor.CompanyName == "" {
		return fmt.Errorf("%w: company name is required", domain.ErrInvalidInput)
	}
	if vendor.Email == "" {
		return fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}

	vendor.CreatedAt = time.Now()
	vendor.UpdatedAt = time.Now()
	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("create vendor: %w", err)
	}
	return nil
}

func (s *directoryService) GetVendorByID(ctx context.Context, id string) (*domain.Vendor, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return vendor, nil
}

func (s *directoryService) ListVendors(ctx context.Context, search string, params domain.PaginationParams) ([]*domain.Vendor, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	vendors, total, err := s.vendorRepo.List(ctx, strings.TrimSpace(search), params)
	if err != nil {
		return nil, 0, fmt.Errorf("list vendors: %w", err)
	}
	if vendors == nil {
		vendors = []*domain.Vendor{}
	}
	return vendors, total, nil
}

func (s *directoryService) UpdateVendor(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	vendor.Email = strings.TrimSpace(strings.ToLower(vendor.Email))
	if vendor.CompanyName == "" {
		return nil, fmt.Errorf("%w: company name is required", domain.ErrInvalidInput)
	}
	vendor.UpdatedAt = time.Now()
	if err := s.vendorRepo.Update(ctx, vendor); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, domain.ErrNotFound
		case errors.Is(err, domain.ErrDuplicateEmail):
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("update vendor: %w", err)
	}
	return s.vendorRepo.GetByID(ctx, vendor.ID)
}

func (s *directoryService) DeleteVendor(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.vendorRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete vendor: %w", err)
	}
	return nil
}
