package invoice

import (
	"context"
	"errors"
	"fmt"

	"github.com/biztime/backend/internal/domain/invoice"
	"github.com/biztime/backend/internal/domain/shared"
	"github.com/biztime/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// InvoiceService handles invoice-related operations
type InvoiceService struct {
	invoiceRepo invoice.Repository
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoiceRepo invoice.Repository) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
	}
}

// List returns every invoice
func (s *InvoiceService) List(ctx context.Context) ([]InvoiceResponse, error) {
	invoices, err := s.invoiceRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToInvoiceResponses(invoices), nil
}

// Get returns an invoice and the company it bills
func (s *InvoiceService) Get(ctx context.Context, id int64) (*InvoiceDetailResponse, error) {
	row, err := s.invoiceRepo.FindWithCompany(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, invoiceNotFound(id)
		}
		return nil, err
	}
	response := ToInvoiceDetailResponse(row)
	return &response, nil
}

// Create inserts an unpaid invoice dated today
func (s *InvoiceService) Create(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	draft, err := invoice.NewDraft(req.CompCode, req.Amt)
	if err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartServiceSpan(ctx, "invoice", "create",
		attribute.String(telemetry.AttrCompanyCode, draft.CompCode))
	defer span.End()

	created, err := s.invoiceRepo.Create(ctx, draft)
	if err != nil {
		if errors.Is(err, shared.ErrInvalidReference) {
			return nil, shared.NewDomainError(shared.CodeInvalidReference,
				fmt.Sprintf("There is no company with code of '%s'", draft.CompCode))
		}
		telemetry.RecordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int64(telemetry.AttrInvoiceID, created.ID))

	response := ToInvoiceResponse(created)
	return &response, nil
}

// Update overwrites amt, paid and paid_date of an invoice
func (s *InvoiceService) Update(ctx context.Context, id int64, req UpdateInvoiceRequest) (*InvoiceResponse, error) {
	replacement, err := invoice.NewReplacement(req.Amt, req.Paid, req.PaidDate)
	if err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartServiceSpan(ctx, "invoice", "update",
		attribute.Int64(telemetry.AttrInvoiceID, id))
	defer span.End()

	updated, err := s.invoiceRepo.Update(ctx, id, replacement)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, invoiceNotFound(id)
		}
		telemetry.RecordError(span, err)
		return nil, err
	}

	response := ToInvoiceResponse(updated)
	return &response, nil
}

// Delete removes an invoice
func (s *InvoiceService) Delete(ctx context.Context, id int64) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "invoice", "delete",
		attribute.Int64(telemetry.AttrInvoiceID, id))
	defer span.End()

	if err := s.invoiceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return invoiceNotFound(id)
		}
		telemetry.RecordError(span, err)
		return err
	}
	return nil
}

func invoiceNotFound(id int64) error {
	return shared.NotFoundf("There is no invoice with id of '%d'", id)
}
