package invoice

import (
	"github.com/biztime/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest represents a request to create an invoice
type CreateInvoiceRequest struct {
	CompCode string
	Amt      decimal.Decimal
}

// UpdateInvoiceRequest replaces every mutable column of an invoice.
// A nil PaidDate clears the stored date.
type UpdateInvoiceRequest struct {
	Amt      decimal.Decimal
	Paid     bool
	PaidDate *shared.Date
}

// InvoiceResponse mirrors the invoices table columns
type InvoiceResponse struct {
	ID       int64           `json:"id"`
	CompCode string          `json:"comp_code"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  shared.Date     `json:"add_date"`
	PaidDate *shared.Date    `json:"paid_date"`
}

// InvoiceSummary is the invoice half of an invoice detail
type InvoiceSummary struct {
	ID       int64           `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Paid     bool            `json:"paid"`
	AddDate  shared.Date     `json:"addDate"`
	PaidDate *shared.Date    `json:"paidDate"`
}

// InvoiceCompany is the company half of an invoice detail
type InvoiceCompany struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// InvoiceDetailResponse is an invoice together with the company it bills
type InvoiceDetailResponse struct {
	Invoice InvoiceSummary `json:"invoice"`
	Company InvoiceCompany `json:"company"`
}
