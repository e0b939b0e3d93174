package persistence

import (
	"context"

	"github.com/biztime/backend/internal/domain/company"
	"gorm.io/gorm"
)

const (
	industryListingSQL = `
SELECT ind.code, ind.industry, ic.company_code
FROM industries AS ind
JOIN industries_companies AS ic ON ic.industry_code = ind.code
ORDER BY ind.code, ic.company_code`

	industryInsertSQL = `
INSERT INTO industries (code, industry)
VALUES (?, ?)
RETURNING code, industry`

	industryLinkSQL = `
INSERT INTO industries_companies (industry_code, company_code)
VALUES (?, ?)
RETURNING industry_code, company_code`
)

// GormIndustryRepository implements company.IndustryRepository using GORM
type GormIndustryRepository struct {
	db *gorm.DB
}

// NewGormIndustryRepository creates a new GormIndustryRepository
func NewGormIndustryRepository(db *gorm.DB) *GormIndustryRepository {
	return &GormIndustryRepository{db: db}
}

// FindAllListings returns one row per industry/company pairing
func (r *GormIndustryRepository) FindAllListings(ctx context.Context) ([]company.IndustryListing, error) {
	var listings []company.IndustryListing
	if err := r.db.WithContext(ctx).Raw(industryListingSQL).Scan(&listings).Error; err != nil {
		return nil, translateError(err, "industry")
	}
	return listings, nil
}

// Create inserts an industry
func (r *GormIndustryRepository) Create(ctx context.Context, ind *company.Industry) (*company.Industry, error) {
	var created company.Industry
	if err := r.db.WithContext(ctx).Raw(industryInsertSQL, ind.Code, ind.Industry).Scan(&created).Error; err != nil {
		return nil, translateError(err, "industry")
	}
	return &created, nil
}

// LinkCompany inserts a row into industries_companies
func (r *GormIndustryRepository) LinkCompany(ctx context.Context, link *company.CompanyIndustry) (*company.CompanyIndustry, error) {
	var created company.CompanyIndustry
	err := r.db.WithContext(ctx).Raw(industryLinkSQL, link.IndustryCode, link.CompanyCode).Scan(&created).Error
	if err != nil {
		return nil, translateError(err, "industry link")
	}
	return &created, nil
}
