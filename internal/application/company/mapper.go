package company

import (
	"github.com/biztime/backend/internal/domain/company"
)

// ToCompanyResponse converts a domain company to a response
func ToCompanyResponse(c *company.Company) CompanyResponse {
	return CompanyResponse{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
	}
}

// ToCompanyResponses converts a slice of companies; the result is never nil
func ToCompanyResponses(companies []company.Company) []CompanyResponse {
	responses := make([]CompanyResponse, len(companies))
	for i := range companies {
		responses[i] = ToCompanyResponse(&companies[i])
	}
	return responses
}

// FoldCompanyDetail collapses the fanned-out detail rows of a single company
// into one response. Invoices are keyed by id and industries by code, so the
// m*n rows of m invoices and n industries produce m invoices and n industries
// in first-seen order. Rows whose invoice or industry columns are NULL
// contribute nothing to that collection. Returns nil when rows is empty.
func FoldCompanyDetail(rows []company.DetailRow) *CompanyDetailResponse {
	if len(rows) == 0 {
		return nil
	}

	first := rows[0]
	detail := &CompanyDetailResponse{
		Code:        first.Code,
		Name:        first.Name,
		Description: first.Description,
		Industries:  []string{},
		Invoices:    []CompanyInvoiceResponse{},
	}

	seenInvoices := make(map[int64]struct{})
	seenIndustries := make(map[string]struct{})

	for _, row := range rows {
		if row.InvoiceID != nil {
			if _, ok := seenInvoices[*row.InvoiceID]; !ok {
				seenInvoices[*row.InvoiceID] = struct{}{}
				detail.Invoices = append(detail.Invoices, toCompanyInvoice(row))
			}
		}
		if row.IndustryCode != nil && row.Industry != nil {
			if _, ok := seenIndustries[*row.IndustryCode]; !ok {
				seenIndustries[*row.IndustryCode] = struct{}{}
				detail.Industries = append(detail.Industries, *row.Industry)
			}
		}
	}

	return detail
}

func toCompanyInvoice(row company.DetailRow) CompanyInvoiceResponse {
	inv := CompanyInvoiceResponse{
		ID:       *row.InvoiceID,
		Amount:   row.Amt.Decimal,
		PaidDate: row.PaidDate,
	}
	if row.Paid != nil {
		inv.Paid = *row.Paid
	}
	if row.AddDate != nil {
		inv.AddDate = *row.AddDate
	}
	return inv
}

// ToIndustryResponse converts a domain industry to a response
func ToIndustryResponse(ind *company.Industry) IndustryResponse {
	return IndustryResponse{
		Code:     ind.Code,
		Industry: ind.Industry,
	}
}

// ToIndustryListingResponses converts industry listings; never nil
func ToIndustryListingResponses(listings []company.IndustryListing) []IndustryListingResponse {
	responses := make([]IndustryListingResponse, len(listings))
	for i, l := range listings {
		responses[i] = IndustryListingResponse{
			Code:        l.Code,
			Industry:    l.Industry,
			CompanyCode: l.CompanyCode,
		}
	}
	return responses
}

// ToCompanyIndustryResponse converts a join-table row to a response
func ToCompanyIndustryResponse(link *company.CompanyIndustry) CompanyIndustryResponse {
	return CompanyIndustryResponse{
		IndustryCode: link.IndustryCode,
		CompanyCode:  link.CompanyCode,
	}
}
