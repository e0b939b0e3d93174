package persistence

import (
	"context"

	"github.com/biztime/backend/internal/domain/company"
	"github.com/biztime/backend/internal/domain/shared"
	"gorm.io/gorm"
)

const (
	companyListSQL = `SELECT code, name, description FROM companies ORDER BY code`

	companyDetailSQL = `
SELECT c.code, c.name, c.description,
       i.id AS invoice_id, i.amt, i.paid, i.add_date, i.paid_date,
       ind.code AS industry_code, ind.industry
FROM companies AS c
LEFT JOIN invoices AS i ON i.comp_code = c.code
LEFT JOIN industries_companies AS ic ON ic.company_code = c.code
LEFT JOIN industries AS ind ON ind.code = ic.industry_code
WHERE c.code = ?
ORDER BY i.id, ind.code`

	companyInsertSQL = `
INSERT INTO companies (code, name, description)
VALUES (?, ?, ?)
RETURNING code, name, description`

	companyUpdateSQL = `
UPDATE companies SET name = ?, description = ?
WHERE code = ?
RETURNING code, name, description`

	companyDeleteSQL = `DELETE FROM companies WHERE code = ?`
)

// GormCompanyRepository implements company.CompanyRepository using GORM
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a new GormCompanyRepository
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// FindAll returns every company ordered by code
func (r *GormCompanyRepository) FindAll(ctx context.Context) ([]company.Company, error) {
	var companies []company.Company
	if err := r.db.WithContext(ctx).Raw(companyListSQL).Scan(&companies).Error; err != nil {
		return nil, translateError(err, "company")
	}
	return companies, nil
}

// FindDetailRows returns the company joined with its invoices and industries
func (r *GormCompanyRepository) FindDetailRows(ctx context.Context, code string) ([]company.DetailRow, error) {
	var rows []company.DetailRow
	if err := r.db.WithContext(ctx).Raw(companyDetailSQL, code).Scan(&rows).Error; err != nil {
		return nil, translateError(err, "company")
	}
	return rows, nil
}

// Create inserts a company and returns the stored row
func (r *GormCompanyRepository) Create(ctx context.Context, c *company.Company) (*company.Company, error) {
	var created company.Company
	result := r.db.WithContext(ctx).Raw(companyInsertSQL, c.Code, c.Name, c.Description).Scan(&created)
	if result.Error != nil {
		return nil, translateError(result.Error, "company")
	}
	return &created, nil
}

// Update overwrites name and description of the company with c.Code
func (r *GormCompanyRepository) Update(ctx context.Context, c *company.Company) (*company.Company, error) {
	var updated company.Company
	result := r.db.WithContext(ctx).Raw(companyUpdateSQL, c.Name, c.Description, c.Code).Scan(&updated)
	if result.Error != nil {
		return nil, translateError(result.Error, "company")
	}
	if result.RowsAffected == 0 {
		return nil, shared.ErrNotFound
	}
	return &updated, nil
}

// Delete removes the company with the given code
func (r *GormCompanyRepository) Delete(ctx context.Context, code string) error {
	result := r.db.WithContext(ctx).Exec(companyDeleteSQL, code)
	if result.Error != nil {
		return translateError(result.Error, "company")
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
