package handler

import (
	"errors"
	"net/http"
	"testing"

	invoiceapp "github.com/biztime/backend/internal/application/invoice"
	"github.com/biztime/backend/internal/domain/invoice"
	"github.com/biztime/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupInvoiceHandler() (*gin.Engine, *MockInvoiceRepository) {
	repo := new(MockInvoiceRepository)
	h := NewInvoiceHandler(invoiceapp.NewInvoiceService(repo))
	return newTestEngine(h.Routes()), repo
}

func sampleInvoice() *invoice.Invoice {
	return &invoice.Invoice{
		ID:       1,
		CompCode: "apple",
		Amt:      decimal.RequireFromString("100.50"),
		AddDate:  shared.MustParseDate("2024-01-15"),
	}
}

func TestInvoiceHandler_List(t *testing.T) {
	engine, repo := setupInvoiceHandler()
	repo.On("FindAll", mock.Anything).Return([]invoice.Invoice{*sampleInvoice()}, nil)

	w := performRequest(engine, http.MethodGet, "/invoices", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"invoices":[{"id":1,"comp_code":"apple","amt":"100.5","paid":false,"add_date":"2024-01-15","paid_date":null}]}`,
		w.Body.String())
}

func TestInvoiceHandler_Get(t *testing.T) {
	t.Run("returns invoice with its company", func(t *testing.T) {
		engine, repo := setupInvoiceHandler()
		repo.On("FindWithCompany", mock.Anything, int64(1)).Return(&invoice.WithCompany{
			Invoice:     *sampleInvoice(),
			Name:        "Apple",
			Description: ptr("Maker of OSX."),
		}, nil)

		w := performRequest(engine, http.MethodGet, "/invoices/1", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"invoice": {"id":1,"amount":"100.5","paid":false,"addDate":"2024-01-15","paidDate":null},
			"company": {"code":"apple","name":"Apple","description":"Maker of OSX."}
		}`, w.Body.String())
	})

	t.Run("unknown id", func(t *testing.T) {
		engine, repo := setupInvoiceHandler()
		repo.On("FindWithCompany", mock.Anything, int64(7)).Return(nil, shared.ErrNotFound)

		w := performRequest(engine, http.MethodGet, "/invoices/7", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "There is no invoice with id of '7'", decodeError(t, w).Message)
	})

	for _, raw := range []string{"abc", "0", "-3", "1.5"} {
		t.Run("rejects id "+raw, func(t *testing.T) {
			engine, repo := setupInvoiceHandler()

			w := performRequest(engine, http.MethodGet, "/invoices/"+raw, "")

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "id must be a positive integer, got '"+raw+"'", decodeError(t, w).Message)
			repo.AssertNotCalled(t, "FindWithCompany", mock.Anything, mock.Anything)
		})
	}
}

func TestInvoiceHandler_Create(t *testing.T) {
	t.Run("accepts a numeric amount", func(t *testing.T) {
		engine, repo := setupInvoiceHandler()
		repo.On("Create", mock.Anything, mock.MatchedBy(func(d *invoice.Draft) bool {
			return d.CompCode == "apple" && d.Amt.Equal(decimal.RequireFromString("100.50"))
		})).Return(sampleInvoice(), nil)

		w := performRequest(engine, http.MethodPost, "/invoices", `{"comp_code":"apple","amt":100.50}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp InvoiceEnvelope
		decodeBody(t, w, &resp)
		assert.Equal(t, int64(1), resp.Invoice.ID)
		assert.False(t, resp.Invoice.Paid)
		repo.AssertExpectations(t)
	})

	t.Run("accepts a string amount", func(t *testing.T) {
		engine, repo := setupInvoiceHandler()
		repo.On("Create", mock.Anything, mock.Anything).Return(sampleInvoice(), nil)

		w := performRequest(engine, http.MethodPost, "/invoices", `{"comp_code":"apple","amt":"100.50"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing amount", func(t *testing.T) {
		engine, repo := setupInvoiceHandler()

		w := performRequest(engine, http.MethodPost, "/invoices", `{"comp_code":"apple"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "amt is required", decodeError(t, w).Message)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		engine, _ := setupInvoiceHandler()

		w := performRequest(engine, http.MethodPost, "/invoices", `{"comp_code":"apple","amt":0}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "amt must be greater than 0", decodeError(t, w).Message)
	})

	t.Run("unknown company", func(t *testing.T) {
		engine, repo := setupInvoiceHandler()
		repo.On("Create", mock.Anything, mock.Anything).Return(nil, shared.ErrInvalidReference)

		w := performRequest(engine, http.MethodPost, "/invoices", `{"comp_code":"nope","amt":10}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		info := decodeError(t, w)
		assert.Equal(t, "There is no company with code of 'nope'", info.Message)
		assert.Equal(t, http.StatusBadRequest, info.Status)
	})
}

func TestInvoiceHandler_Update(t *testing.T) {
	t.Run("replaces every mutable column", func(t *testing.T) {
		engine, repo := setupInvoiceHandler()
		paid := sampleInvoice()
		paid.Paid = true
		paid.PaidDate = ptr(shared.MustParseDate("2024-02-01"))
		repo.On("Update", mock.Anything, int64(1), mock.MatchedBy(func(r *invoice.Replacement) bool {
			return r.Paid && r.PaidDate != nil && r.PaidDate.String() == "2024-02-01"
		})).Return(paid, nil)

		w := performRequest(engine, http.MethodPut, "/invoices/1", `{"amt":100.50,"paid":true,"paid_date":"2024-02-01"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp InvoiceEnvelope
		decodeBody(t, w, &resp)
		assert.True(t, resp.Invoice.Paid)
		assert.Equal(t, "2024-02-01", resp.Invoice.PaidDate.String())
		repo.AssertExpectations(t)
	})

	t.Run("omitted paid_date clears it", func(t *testing.T) {
		engine, repo := setupInvoiceHandler()
		repo.On("Update", mock.Anything, int64(1), mock.MatchedBy(func(r *invoice.Replacement) bool {
			return !r.Paid && r.PaidDate == nil
		})).Return(sampleInvoice(), nil)

		w := performRequest(engine, http.MethodPut, "/invoices/1", `{"amt":"100.50","paid":false}`)

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("id in body is not allowed", func(t *testing.T) {
		engine, repo := setupInvoiceHandler()

		w := performRequest(engine, http.MethodPut, "/invoices/1", `{"id":2,"amt":10,"paid":false}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Not Allowed", decodeError(t, w).Message)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("paid is required", func(t *testing.T) {
		engine, _ := setupInvoiceHandler()

		w := performRequest(engine, http.MethodPut, "/invoices/1", `{"amt":10}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "paid is required", decodeError(t, w).Message)
	})

	t.Run("paid must be a boolean", func(t *testing.T) {
		engine, _ := setupInvoiceHandler()

		w := performRequest(engine, http.MethodPut, "/invoices/1", `{"amt":10,"paid":"yes"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "paid has an invalid type", decodeError(t, w).Message)
	})

	t.Run("unknown id", func(t *testing.T) {
		engine, repo := setupInvoiceHandler()
		repo.On("Update", mock.Anything, int64(9), mock.Anything).Return(nil, shared.ErrNotFound)

		w := performRequest(engine, http.MethodPut, "/invoices/9", `{"amt":10,"paid":false}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "There is no invoice with id of '9'", decodeError(t, w).Message)
	})
}

func TestInvoiceHandler_Delete(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		engine, repo := setupInvoiceHandler()
		repo.On("Delete", mock.Anything, int64(1)).Return(nil)

		w := performRequest(engine, http.MethodDelete, "/invoices/1", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"deleted"}`, w.Body.String())
	})

	t.Run("unknown id", func(t *testing.T) {
		engine, repo := setupInvoiceHandler()
		repo.On("Delete", mock.Anything, int64(4)).Return(shared.ErrNotFound)

		w := performRequest(engine, http.MethodDelete, "/invoices/4", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		engine, repo := setupInvoiceHandler()
		repo.On("Delete", mock.Anything, int64(4)).Return(errors.New("deadlock detected"))

		w := performRequest(engine, http.MethodDelete, "/invoices/4", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "An unexpected error occurred", decodeError(t, w).Message)
	})
}
