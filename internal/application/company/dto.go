package company

import (
	"github.com/biztime/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ============================================================================
// Company DTOs
// ============================================================================

// CreateCompanyRequest represents a request to create a company
type CreateCompanyRequest struct {
	Name        string
	Description *string
}

// UpdateCompanyRequest replaces the mutable columns of a company
type UpdateCompanyRequest struct {
	Name        string
	Description *string
}

// CompanyResponse represents a company row in API responses
type CompanyResponse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CompanyInvoiceResponse is an invoice as listed on a company
type CompanyInvoiceResponse struct {
	ID       int64           `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Paid     bool            `json:"paid"`
	AddDate  shared.Date     `json:"add_date"`
	PaidDate *shared.Date    `json:"paid_date"`
}

// CompanyDetailResponse is a company with its industries and invoices.
// Both collections are always non-nil.
type CompanyDetailResponse struct {
	Code        string                   `json:"code"`
	Name        string                   `json:"name"`
	Description *string                  `json:"description"`
	Industries  []string                 `json:"industries"`
	Invoices    []CompanyInvoiceResponse `json:"invoices"`
}

// ============================================================================
// Industry DTOs
// ============================================================================

// CreateIndustryRequest represents a request to create an industry
type CreateIndustryRequest struct {
	Code     string
	Industry string
}

// LinkCompanyRequest associates a company with an industry
type LinkCompanyRequest struct {
	IndustryCode string
	CompanyCode  string
}

// IndustryResponse represents an industry row
type IndustryResponse struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

// IndustryListingResponse is one industry/company pairing
type IndustryListingResponse struct {
	Code        string `json:"code"`
	Industry    string `json:"industry"`
	CompanyCode string `json:"company_code"`
}

// CompanyIndustryResponse represents a row of the industry/company join table
type CompanyIndustryResponse struct {
	IndustryCode string `json:"industry_code"`
	CompanyCode  string `json:"company_code"`
}
