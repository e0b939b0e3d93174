// Package invoice holds the invoice model and its repository contract.
package invoice

import (
	"strings"

	"github.com/biztime/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Invoice is a row of the invoices table.
type Invoice struct {
	ID       int64           `gorm:"column:id;primaryKey"`
	CompCode string          `gorm:"column:comp_code"`
	Amt      decimal.Decimal `gorm:"column:amt"`
	Paid     bool            `gorm:"column:paid"`
	AddDate  shared.Date     `gorm:"column:add_date"`
	PaidDate *shared.Date    `gorm:"column:paid_date"`
}

// WithCompany is an invoice joined with the company it bills.
type WithCompany struct {
	Invoice
	Name        string  `gorm:"column:name"`
	Description *string `gorm:"column:description"`
}

// Draft carries the columns supplied when an invoice is created. The store
// fills in id, paid, add_date and paid_date.
type Draft struct {
	CompCode string
	Amt      decimal.Decimal
}

// NewDraft validates the creation input.
func NewDraft(compCode string, amt decimal.Decimal) (*Draft, error) {
	compCode = strings.TrimSpace(compCode)
	if compCode == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "comp_code is required")
	}
	if err := validateAmount(amt); err != nil {
		return nil, err
	}
	return &Draft{CompCode: compCode, Amt: amt}, nil
}

// Replacement is the full set of mutable invoice columns. Applying it
// overwrites every one of them, so a nil PaidDate clears the stored date.
type Replacement struct {
	Amt      decimal.Decimal
	Paid     bool
	PaidDate *shared.Date
}

// NewReplacement validates an update.
func NewReplacement(amt decimal.Decimal, paid bool, paidDate *shared.Date) (*Replacement, error) {
	if err := validateAmount(amt); err != nil {
		return nil, err
	}
	return &Replacement{Amt: amt, Paid: paid, PaidDate: paidDate}, nil
}

func validateAmount(amt decimal.Decimal) error {
	if !amt.IsPositive() {
		return shared.NewDomainError(shared.CodeInvalidInput, "amt must be greater than 0")
	}
	return nil
}
