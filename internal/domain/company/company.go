// Package company holds the company and industry model: the row types read
// from the store and the repository contracts the application layer uses.
package company

import (
	"strings"

	"github.com/biztime/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Company is a row of the companies table. Code is the stable identity
// referenced by invoices and industry links and never changes after insert.
type Company struct {
	Code        string  `gorm:"column:code;primaryKey"`
	Name        string  `gorm:"column:name"`
	Description *string `gorm:"column:description"`
}

// NewCompany builds a company whose code is derived from its name.
func NewCompany(name string, description *string) (*Company, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Company name cannot be empty")
	}
	code := Slugify(name)
	if code == "" {
		return nil, shared.BadRequestf("Company name '%s' does not produce a usable code", name)
	}
	return &Company{
		Code:        code,
		Name:        name,
		Description: description,
	}, nil
}

// Rename replaces the mutable columns of c. The code stays untouched.
func (c *Company) Rename(name string, description *string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError(shared.CodeInvalidInput, "Company name cannot be empty")
	}
	c.Name = name
	c.Description = description
	return nil
}

// DetailRow is one row of the company detail query: the company columns
// followed by the columns of at most one invoice and at most one industry.
// A company with m invoices and n industries yields m*n rows; the outer
// joins leave the invoice or industry columns NULL when there is none.
type DetailRow struct {
	Code        string  `gorm:"column:code"`
	Name        string  `gorm:"column:name"`
	Description *string `gorm:"column:description"`

	InvoiceID *int64              `gorm:"column:invoice_id"`
	Amt       decimal.NullDecimal `gorm:"column:amt"`
	Paid      *bool               `gorm:"column:paid"`
	AddDate   *shared.Date        `gorm:"column:add_date"`
	PaidDate  *shared.Date        `gorm:"column:paid_date"`

	IndustryCode *string `gorm:"column:industry_code"`
	Industry     *string `gorm:"column:industry"`
}
