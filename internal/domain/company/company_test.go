package company

import (
	"errors"
	"testing"

	"github.com/biztime/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewCompany(t *testing.T) {
	t.Run("derives code from name", func(t *testing.T) {
		c, err := NewCompany("  Apple Computer ", strPtr("Maker of OSX."))
		require.NoError(t, err)
		assert.Equal(t, "apple-computer", c.Code)
		assert.Equal(t, "  Apple Computer ", c.Name, "name is stored as submitted")
		assert.Equal(t, "Maker of OSX.", *c.Description)
	})

	t.Run("description is optional", func(t *testing.T) {
		c, err := NewCompany("IBM", nil)
		require.NoError(t, err)
		assert.Nil(t, c.Description)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := NewCompany("   ", nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})

	t.Run("name without usable characters", func(t *testing.T) {
		_, err := NewCompany("!!!", nil)
		require.Error(t, err)
		de, ok := shared.AsDomainError(err)
		require.True(t, ok)
		assert.Equal(t, shared.CodeBadRequest, de.Code)
	})
}

func TestCompany_Rename(t *testing.T) {
	c, err := NewCompany("IBM", nil)
	require.NoError(t, err)

	require.NoError(t, c.Rename("Big Blue", strPtr("")))
	assert.Equal(t, "ibm", c.Code)
	assert.Equal(t, "Big Blue", c.Name)
	assert.Equal(t, "", *c.Description)

	require.NoError(t, c.Rename(" Big Blue ", nil))
	assert.Equal(t, " Big Blue ", c.Name)

	assert.Error(t, c.Rename("", nil))
	assert.Error(t, c.Rename(" \t", nil))
}

func TestNewIndustry(t *testing.T) {
	ind, err := NewIndustry("acct", "Accounting")
	require.NoError(t, err)
	assert.Equal(t, "acct", ind.Code)

	_, err = NewIndustry("acct", "")
	require.Error(t, err)
	assert.Equal(t, "Both code and industry are required", err.Error())
}

func TestNewCompanyIndustry(t *testing.T) {
	link, err := NewCompanyIndustry("acct", "ibm")
	require.NoError(t, err)
	assert.Equal(t, "acct", link.IndustryCode)
	assert.Equal(t, "ibm", link.CompanyCode)

	_, err = NewCompanyIndustry("", "ibm")
	assert.Error(t, err)
}
