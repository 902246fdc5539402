package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/mail"
	"time"

	"vendormatch/internal/delivery/http/helpers"
	"vendormatch/internal/domain"
)

type VendorController struct {
	Logger  *slog.Logger
	Service domain.DirectoryService
}

func NewVendorController(logger *slog.Logger, svc domain.DirectoryService) *VendorController {
	return &VendorController{
		Logger:  logger,
		Service: svc,
	}
}

// VendorRequest is the request body for POST /vendors and PUT /vendors/{vendorID}.
type VendorRequest struct {
	VendorCode     string `json:"vendor_code"`
	CompanyName    string `json:"company_name"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	City           string `json:"city"`
	State          string `json:"state"`
	Classification string `json:"classification"`
	About          string `json:"about"`
}

// Validate implements helpers.Validator.
func (v VendorRequest) Validate() []string {
	var errs []string
	if v.CompanyName == "" {
		errs = append(errs, "company_name is required")
	}
	if v.Email == "" {
		errs = append(errs, "email is required")
	} else if _, err := mail.ParseAddress(v.Email); err != nil {
		errs = append(errs, "email must be a valid email address")
	}
	return errs
}

func (v VendorRequest) toDomain() *domain.Vendor {
	return &domain.Vendor{
		VendorCode:     v.VendorCode,
		CompanyName:    v.CompanyName,
		FirstName:      v.FirstName,
		LastName:       v.LastName,
		Email:          v.Email,
		City:           v.City,
		State:          v.State,
		Classification: v.Classification,
		About:          v.About,
		CreatedAt:      time.Time{},
		UpdatedAt:      time.Time{},
	}
}

// VendorSuccessResponse is the success response envelope for single-vendor endpoints.
type VendorSuccessResponse struct {
	Data  *domain.Vendor    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// VendorListResponse is the data payload for GET /vendors (200).
type VendorListResponse struct {
	Vendors    []*domain.Vendor       `json:"vendors"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// VendorListSuccessResponse is the success response envelope for GET /vendors (200).
type VendorListSuccessResponse struct {
	Data  VendorListResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// CreateVendor godoc
// @Summary Register a vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Param vendor body VendorRequest true "Vendor data"
// @Security BearerAuth
// @Success 201 {object} controllers.VendorSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict, email already registered"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /vendors [post]
func (c *VendorController) CreateVendor(w http.ResponseWriter, r *http.Request) {
	var req VendorRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	vendor := req.toDomain()
	if err := c.Service.CreateVendor(r.Context(), vendor); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "email already registered")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, vendor)
}

// ListVendors godoc
// @Summary List vendors
// @Description Paginated directory listing. The optional search term matches company name, contact name and email.
// @Tags vendors
// @Produce json
// @Param search query string false "Search term"
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} controllers.VendorListSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /vendors [get]
func (c *VendorController) ListVendors(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	search := r.URL.Query().Get("search")
	vendors, total, err := c.Service.ListVendors(r.Context(), search, params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, VendorListResponse{
		Vendors:    vendors,
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// GetVendor godoc
// @Summary Get a vendor by ID
// @Tags vendors
// @Produce json
// @Param vendorID path string true "Vendor ID"
// @Success 200 {object} controllers.VendorSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /vendors/{vendorID} [get]
func (c *VendorController) GetVendor(w http.ResponseWriter, r *http.Request) {
	vendorID := r.PathValue("vendorID")
	if vendorID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing vendorID")
		return
	}
	vendor, err := c.Service.GetVendorByID(r.Context(), vendorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "vendor not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, vendor)
}

// UpdateVendor godoc
// @Summary Replace a vendor record
// @Tags vendors
// @Accept json
// @Produce json
// @Param vendorID path string true "Vendor ID"
// @Param vendor body VendorRequest true "Complete vendor record"
// @Security BearerAuth
// @Success 200 {object} controllers.VendorSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict, email already registered"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /vendors/{vendorID} [put]
func (c *VendorController) UpdateVendor(w http.ResponseWriter, r *http.Request) {
	vendorID := r.PathValue("vendorID")
	if vendorID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing vendorID")
		return
	}
	var req VendorRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	vendor := req.toDomain()
	vendor.ID = vendorID
	updated, err := c.Service.UpdateVendor(r.Context(), vendor)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "vendor not found")
		case errors.Is(err, domain.ErrDuplicateEmail):
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "email already registered")
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}

// DeleteVendor godoc
// @Summary Delete a vendor
// @Tags vendors
// @Produce json
// @Param vendorID path string true "Vendor ID"
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /vendors/{vendorID} [delete]
func (c *VendorController) DeleteVendor(w http.ResponseWriter, r *http.Request) {
	vendorID := r.PathValue("vendorID")
	if vendorID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing vendorID")
		return
	}
	if err := c.Service.DeleteVendor(r.Context(), vendorID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "vendor not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}
