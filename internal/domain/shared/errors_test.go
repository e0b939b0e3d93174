package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Is(t *testing.T) {
	err := NotFoundf("There is no company with code of '%s'", "acme")

	assert.Equal(t, "There is no company with code of 'acme'", err.Error())
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrAlreadyExists))

	wrapped := fmt.Errorf("lookup: %w", err)
	assert.True(t, errors.Is(wrapped, ErrNotFound))
}

func TestAsDomainError(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", BadRequestf("bad %s", "thing"))

	de, ok := AsDomainError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, CodeBadRequest, de.Code)
	assert.Equal(t, "bad thing", de.Message)

	_, ok = AsDomainError(errors.New("boom"))
	assert.False(t, ok)
}
