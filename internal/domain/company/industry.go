package company

import (
	"strings"

	"github.com/biztime/backend/internal/domain/shared"
)

// Industry is a row of the industries table.
type Industry struct {
	Code     string `gorm:"column:code;primaryKey"`
	Industry string `gorm:"column:industry"`
}

// NewIndustry validates and builds an industry.
func NewIndustry(code, industry string) (*Industry, error) {
	code = strings.TrimSpace(code)
	industry = strings.TrimSpace(industry)
	if code == "" || industry == "" {
		return nil, shared.NewDomainError(shared.CodeBadRequest, "Both code and industry are required")
	}
	return &Industry{Code: code, Industry: industry}, nil
}

// IndustryListing pairs an industry with one company that belongs to it.
type IndustryListing struct {
	Code        string `gorm:"column:code"`
	Industry    string `gorm:"column:industry"`
	CompanyCode string `gorm:"column:company_code"`
}

// CompanyIndustry is a row of the industries_companies join table.
type CompanyIndustry struct {
	IndustryCode string `gorm:"column:industry_code;primaryKey"`
	CompanyCode  string `gorm:"column:company_code;primaryKey"`
}

// NewCompanyIndustry validates and builds a link between an industry and a company.
func NewCompanyIndustry(industryCode, companyCode string) (*CompanyIndustry, error) {
	industryCode = strings.TrimSpace(industryCode)
	companyCode = strings.TrimSpace(companyCode)
	if industryCode == "" || companyCode == "" {
		return nil, shared.NewDomainError(shared.CodeBadRequest, "Both industry_code and company_code are required")
	}
	return &CompanyIndustry{IndustryCode: industryCode, CompanyCode: companyCode}, nil
}
