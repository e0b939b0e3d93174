package company

import "context"

// CompanyRepository defines persistence operations for companies.
// Lookups that match no row return shared.ErrNotFound.
type CompanyRepository interface {
	FindAll(ctx context.Context) ([]Company, error)
	// FindDetailRows returns the fanned-out company/invoice/industry rows for
	// one company, ordered by invoice id then industry code. An unknown code
	// yields an empty slice.
	FindDetailRows(ctx context.Context, code string) ([]DetailRow, error)
	Create(ctx context.Context, company *Company) (*Company, error)
	Update(ctx context.Context, company *Company) (*Company, error)
	Delete(ctx context.Context, code string) error
}

// IndustryRepository defines persistence operations for industries and
// their links to companies.
type IndustryRepository interface {
	FindAllListings(ctx context.Context) ([]IndustryListing, error)
	Create(ctx context.Context, industry *Industry) (*Industry, error)
	LinkCompany(ctx context.Context, link *CompanyIndustry) (*CompanyIndustry, error)
}
