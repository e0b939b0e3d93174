package handler

import (
	companyapp "github.com/biztime/backend/internal/application/company"
	invoiceapp "github.com/biztime/backend/internal/application/invoice"
)

// Response envelopes. Each route wraps its payload under a fixed key.

// CompanyListResponse is the body of GET /companies
type CompanyListResponse struct {
	Companies []companyapp.CompanyResponse `json:"companies"`
}

// CompanyEnvelope wraps a single company
type CompanyEnvelope struct {
	Company companyapp.CompanyResponse `json:"company"`
}

// CompanyDetailEnvelope is the body of GET /companies/:code
type CompanyDetailEnvelope struct {
	Company companyapp.CompanyDetailResponse `json:"company"`
}

// InvoiceListResponse is the body of GET /invoices
type InvoiceListResponse struct {
	Invoices []invoiceapp.InvoiceResponse `json:"invoices"`
}

// InvoiceEnvelope wraps a single invoice row
type InvoiceEnvelope struct {
	Invoice invoiceapp.InvoiceResponse `json:"invoice"`
}

// IndustryListResponse is the body of GET /industries. The key is singular.
type IndustryListResponse struct {
	Industry []companyapp.IndustryListingResponse `json:"industry"`
}

// IndustryEnvelope wraps a single industry
type IndustryEnvelope struct {
	Industry companyapp.IndustryResponse `json:"industry"`
}

// CompanyIndustryEnvelope is the body of POST /industries/joining
type CompanyIndustryEnvelope struct {
	IndustriesCompanies companyapp.CompanyIndustryResponse `json:"industries_companies"`
}
