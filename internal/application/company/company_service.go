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

// CompanyService handles company-related operations
type CompanyService struct {
	companyRepo company.CompanyRepository
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyRepo company.CompanyRepository) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
	}
}

// List returns every company
func (s *CompanyService) List(ctx context.Context) ([]CompanyResponse, error) {
	companies, err := s.companyRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToCompanyResponses(companies), nil
}

// Get returns a company together with its industries and invoices
func (s *CompanyService) Get(ctx context.Context, code string) (*CompanyDetailResponse, error) {
	rows, err := s.companyRepo.FindDetailRows(ctx, code)
	if err != nil {
		return nil, err
	}
	detail := FoldCompanyDetail(rows)
	if detail == nil {
		return nil, companyNotFound(code)
	}
	return detail, nil
}

// Create inserts a company whose code is the slug of its name
func (s *CompanyService) Create(ctx context.Context, req CreateCompanyRequest) (*CompanyResponse, error) {
	c, err := company.NewCompany(req.Name, req.Description)
	if err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartServiceSpan(ctx, "company", "create",
		attribute.String(telemetry.AttrCompanyCode, c.Code))
	defer span.End()

	created, err := s.companyRepo.Create(ctx, c)
	if err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError(shared.CodeAlreadyExists,
				fmt.Sprintf("There is already a company with code of '%s'", c.Code))
		}
		telemetry.RecordError(span, err)
		return nil, err
	}

	response := ToCompanyResponse(created)
	return &response, nil
}

// Update replaces the name and description of a company
func (s *CompanyService) Update(ctx context.Context, code string, req UpdateCompanyRequest) (*CompanyResponse, error) {
	c := &company.Company{Code: code}
	if err := c.Rename(req.Name, req.Description); err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartServiceSpan(ctx, "company", "update",
		attribute.String(telemetry.AttrCompanyCode, code))
	defer span.End()

	updated, err := s.companyRepo.Update(ctx, c)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, companyNotFound(code)
		}
		telemetry.RecordError(span, err)
		return nil, err
	}

	response := ToCompanyResponse(updated)
	return &response, nil
}

// Delete removes a company; its invoices and industry links go with it
func (s *CompanyService) Delete(ctx context.Context, code string) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "company", "delete",
		attribute.String(telemetry.AttrCompanyCode, code))
	defer span.End()

	if err := s.companyRepo.Delete(ctx, code); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return companyNotFound(code)
		}
		telemetry.RecordError(span, err)
		return err
	}
	return nil
}

func companyNotFound(code string) error {
	return shared.NotFoundf("There is no company with code of '%s'", code)
}
