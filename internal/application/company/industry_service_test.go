package company

import (
	"context"
	"testing"

	"github.com/biztime/backend/internal/domain/company"
	"github.com/biztime/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIndustryService_List(t *testing.T) {
	ctx := context.Background()
	repo := new(MockIndustryRepository)
	svc := NewIndustryService(repo)
	repo.On("FindAllListings", ctx).Return([]company.IndustryListing{
		{Code: "acct", Industry: "Accounting", CompanyCode: "ibm"},
		{Code: "acct", Industry: "Accounting", CompanyCode: "apple"},
	}, nil)

	result, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "apple", result[1].CompanyCode)
}

func TestIndustryService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates", func(t *testing.T) {
		repo := new(MockIndustryRepository)
		svc := NewIndustryService(repo)
		repo.On("Create", mock.Anything, &company.Industry{Code: "acct", Industry: "Accounting"}).
			Return(&company.Industry{Code: "acct", Industry: "Accounting"}, nil)

		result, err := svc.Create(ctx, CreateIndustryRequest{Code: "acct", Industry: "Accounting"})
		require.NoError(t, err)
		assert.Equal(t, IndustryResponse{Code: "acct", Industry: "Accounting"}, *result)
	})

	t.Run("requires both fields", func(t *testing.T) {
		repo := new(MockIndustryRepository)
		svc := NewIndustryService(repo)

		_, err := svc.Create(ctx, CreateIndustryRequest{Code: "acct"})
		require.Error(t, err)
		assert.Equal(t, "Both code and industry are required", err.Error())
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate", func(t *testing.T) {
		repo := new(MockIndustryRepository)
		svc := NewIndustryService(repo)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil, shared.ErrAlreadyExists)

		_, err := svc.Create(ctx, CreateIndustryRequest{Code: "acct", Industry: "Accounting"})
		de, ok := shared.AsDomainError(err)
		require.True(t, ok)
		assert.Equal(t, shared.CodeAlreadyExists, de.Code)
	})
}

func TestIndustryService_LinkCompany(t *testing.T) {
	ctx := context.Background()

	t.Run("links", func(t *testing.T) {
		repo := new(MockIndustryRepository)
		svc := NewIndustryService(repo)
		link := &company.CompanyIndustry{IndustryCode: "acct", CompanyCode: "ibm"}
		repo.On("LinkCompany", mock.Anything, link).Return(link, nil)

		result, err := svc.LinkCompany(ctx, LinkCompanyRequest{IndustryCode: "acct", CompanyCode: "ibm"})
		require.NoError(t, err)
		assert.Equal(t, "acct", result.IndustryCode)
		assert.Equal(t, "ibm", result.CompanyCode)
	})

	t.Run("duplicate pair", func(t *testing.T) {
		repo := new(MockIndustryRepository)
		svc := NewIndustryService(repo)
		repo.On("LinkCompany", mock.Anything, mock.Anything).Return(nil, shared.ErrAlreadyExists)

		_, err := svc.LinkCompany(ctx, LinkCompanyRequest{IndustryCode: "acct", CompanyCode: "ibm"})
		de, ok := shared.AsDomainError(err)
		require.True(t, ok)
		assert.Equal(t, shared.CodeAlreadyExists, de.Code)
	})

	t.Run("unknown company", func(t *testing.T) {
		repo := new(MockIndustryRepository)
		svc := NewIndustryService(repo)
		repo.On("LinkCompany", mock.Anything, mock.Anything).Return(nil, shared.ErrInvalidReference)

		_, err := svc.LinkCompany(ctx, LinkCompanyRequest{IndustryCode: "acct", CompanyCode: "nope"})
		de, ok := shared.AsDomainError(err)
		require.True(t, ok)
		assert.Equal(t, shared.CodeInvalidReference, de.Code)
		assert.Contains(t, de.Message, "nope")
	})

	t.Run("missing fields", func(t *testing.T) {
		repo := new(MockIndustryRepository)
		svc := NewIndustryService(repo)

		_, err := svc.LinkCompany(ctx, LinkCompanyRequest{IndustryCode: "acct"})
		assert.Error(t, err)
	})
}
