package invoice

import (
	"github.com/biztime/backend/internal/domain/invoice"
)

// ToInvoiceResponse converts a domain invoice to a response
func ToInvoiceResponse(inv *invoice.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
	}
}

// ToInvoiceResponses converts a slice of invoices; the result is never nil
func ToInvoiceResponses(invoices []invoice.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = ToInvoiceResponse(&invoices[i])
	}
	return responses
}

// ToInvoiceDetailResponse splits the joined row into its invoice and company
// parts, renaming the invoice columns on the way out.
func ToInvoiceDetailResponse(row *invoice.WithCompany) InvoiceDetailResponse {
	return InvoiceDetailResponse{
		Invoice: InvoiceSummary{
			ID:       row.ID,
			Amount:   row.Amt,
			Paid:     row.Paid,
			AddDate:  row.AddDate,
			PaidDate: row.PaidDate,
		},
		Company: InvoiceCompany{
			Code:        row.CompCode,
			Name:        row.Name,
			Description: row.Description,
		},
	}
}
