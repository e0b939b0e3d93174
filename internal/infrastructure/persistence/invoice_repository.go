package persistence

import (
	"context"

	"github.com/biztime/backend/internal/domain/invoice"
	"github.com/biztime/backend/internal/domain/shared"
	"gorm.io/gorm"
)

const (
	invoiceColumns = `id, comp_code, amt, paid, add_date, paid_date`

	invoiceListSQL = `SELECT ` + invoiceColumns + ` FROM invoices ORDER BY id`

	invoiceWithCompanySQL = `
SELECT i.id, i.comp_code, i.amt, i.paid, i.add_date, i.paid_date,
       c.name, c.description
FROM invoices AS i
JOIN companies AS c ON c.code = i.comp_code
WHERE i.id = ?`

	invoiceInsertSQL = `
INSERT INTO invoices (comp_code, amt)
VALUES (?, ?)
RETURNING ` + invoiceColumns

	invoiceUpdateSQL = `
UPDATE invoices SET amt = ?, paid = ?, paid_date = ?
WHERE id = ?
RETURNING ` + invoiceColumns

	invoiceDeleteSQL = `DELETE FROM invoices WHERE id = ?`
)

// GormInvoiceRepository implements invoice.Repository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindAll returns every invoice ordered by id
func (r *GormInvoiceRepository) FindAll(ctx context.Context) ([]invoice.Invoice, error) {
	var invoices []invoice.Invoice
	if err := r.db.WithContext(ctx).Raw(invoiceListSQL).Scan(&invoices).Error; err != nil {
		return nil, translateError(err, "invoice")
	}
	return invoices, nil
}

// FindWithCompany returns the invoice joined with the company it bills
func (r *GormInvoiceRepository) FindWithCompany(ctx context.Context, id int64) (*invoice.WithCompany, error) {
	var row invoice.WithCompany
	result := r.db.WithContext(ctx).Raw(invoiceWithCompanySQL, id).Scan(&row)
	if result.Error != nil {
		return nil, translateError(result.Error, "invoice")
	}
	if result.RowsAffected == 0 {
		return nil, shared.ErrNotFound
	}
	return &row, nil
}

// Create inserts an invoice; paid, add_date and paid_date take column defaults
func (r *GormInvoiceRepository) Create(ctx context.Context, draft *invoice.Draft) (*invoice.Invoice, error) {
	var created invoice.Invoice
	if err := r.db.WithContext(ctx).Raw(invoiceInsertSQL, draft.CompCode, draft.Amt).Scan(&created).Error; err != nil {
		return nil, translateError(err, "invoice")
	}
	return &created, nil
}

// Update overwrites amt, paid and paid_date
func (r *GormInvoiceRepository) Update(ctx context.Context, id int64, rep *invoice.Replacement) (*invoice.Invoice, error) {
	var updated invoice.Invoice
	result := r.db.WithContext(ctx).Raw(invoiceUpdateSQL, rep.Amt, rep.Paid, rep.PaidDate, id).Scan(&updated)
	if result.Error != nil {
		return nil, translateError(result.Error, "invoice")
	}
	if result.RowsAffected == 0 {
		return nil, shared.ErrNotFound
	}
	return &updated, nil
}

// Delete removes the invoice with the given id
func (r *GormInvoiceRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Exec(invoiceDeleteSQL, id)
	if result.Error != nil {
		return translateError(result.Error, "invoice")
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
