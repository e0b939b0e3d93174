package company

import (
	"context"
	"errors"
	"fmt"

	"github.com/biztime/backend/internal/domain/company"
	"github.com/biztime/backend/internal/domain/shared"
	"github.com/biztime/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// IndustryService handles industries and their company links
type IndustryService struct {
	industryRepo company.IndustryRepository
}

// NewIndustryService creates a new IndustryService
func NewIndustryService(industryRepo company.IndustryRepository) *IndustryService {
	return &IndustryService{
		industryRepo: industryRepo,
	}
}

// List returns one entry per industry/company pairing. Industries without
// any company are not listed.
func (s *IndustryService) List(ctx context.Context) ([]IndustryListingResponse, error) {
	listings, err := s.industryRepo.FindAllListings(ctx)
	if err != nil {
		return nil, err
	}
	return ToIndustryListingResponses(listings), nil
}

// Create inserts an industry
func (s *IndustryService) Create(ctx context.Context, req CreateIndustryRequest) (*IndustryResponse, error) {
	ind, err := company.NewIndustry(req.Code, req.Industry)
	if err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartServiceSpan(ctx, "industry", "create",
		attribute.String(telemetry.AttrIndustryCode, ind.Code))
	defer span.End()

	created, err := s.industryRepo.Create(ctx, ind)
	if err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError(shared.CodeAlreadyExists,
				fmt.Sprintf("An industry with code '%s' or name '%s' already exists", ind.Code, ind.Industry))
		}
		telemetry.RecordError(span, err)
		return nil, err
	}

	response := ToIndustryResponse(created)
	return &response, nil
}

// LinkCompany associates a company with an industry
func (s *IndustryService) LinkCompany(ctx context.Context, req LinkCompanyRequest) (*CompanyIndustryResponse, error) {
	link, err := company.NewCompanyIndustry(req.IndustryCode, req.CompanyCode)
	if err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartServiceSpan(ctx, "industry", "link_company",
		attribute.String(telemetry.AttrIndustryCode, link.IndustryCode),
		attribute.String(telemetry.AttrCompanyCode, link.CompanyCode))
	defer span.End()

	created, err := s.industryRepo.LinkCompany(ctx, link)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrAlreadyExists):
			return nil, shared.NewDomainError(shared.CodeAlreadyExists,
				fmt.Sprintf("Company '%s' is already in industry '%s'", link.CompanyCode, link.IndustryCode))
		case errors.Is(err, shared.ErrInvalidReference):
			return nil, shared.NewDomainError(shared.CodeInvalidReference,
				fmt.Sprintf("Unknown industry '%s' or company '%s'", link.IndustryCode, link.CompanyCode))
		}
		telemetry.RecordError(span, err)
		return nil, err
	}

	response := ToCompanyIndustryResponse(created)
	return &response, nil
}
