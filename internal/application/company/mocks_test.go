package company

import (
	"context"

	"github.com/biztime/backend/internal/domain/company"
	"github.com/stretchr/testify/mock"
)

// MockCompanyRepository is a mock implementation of company.CompanyRepository
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindAll(ctx context.Context) ([]company.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]company.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindDetailRows(ctx context.Context, code string) ([]company.DetailRow, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]company.DetailRow), args.Error(1)
}

func (m *MockCompanyRepository) Create(ctx context.Context, c *company.Company) (*company.Company, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.Company), args.Error(1)
}

func (m *MockCompanyRepository) Update(ctx context.Context, c *company.Company) (*company.Company, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.Company), args.Error(1)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

// MockIndustryRepository is a mock implementation of company.IndustryRepository
type MockIndustryRepository struct {
	mock.Mock
}

func (m *MockIndustryRepository) FindAllListings(ctx context.Context) ([]company.IndustryListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]company.IndustryListing), args.Error(1)
}

func (m *MockIndustryRepository) Create(ctx context.Context, ind *company.Industry) (*company.Industry, error) {
	args := m.Called(ctx, ind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.Industry), args.Error(1)
}

func (m *MockIndustryRepository) LinkCompany(ctx context.Context, link *company.CompanyIndustry) (*company.CompanyIndustry, error) {
	args := m.Called(ctx, link)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.CompanyIndustry), args.Error(1)
}
