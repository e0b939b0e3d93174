package handler

import (
	invoiceapp "github.com/biztime/backend/internal/application/invoice"
	"github.com/biztime/backend/internal/domain/shared"
	"github.com/biztime/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// InvoiceHandler handles invoice-related API endpoints
type InvoiceHandler struct {
	BaseHandler
	invoiceService *invoiceapp.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceService *invoiceapp.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
	}
}

// CreateInvoiceRequest is the body of POST /invoices. amt may be a JSON
// number or a numeric string.
type CreateInvoiceRequest struct {
	CompCode string           `json:"comp_code" binding:"required"`
	Amt      *decimal.Decimal `json:"amt" binding:"required"`
}

// UpdateInvoiceRequest is the body of PUT /invoices/:id. It replaces every
// mutable column, so an omitted paid_date clears the stored one.
type UpdateInvoiceRequest struct {
	Amt      *decimal.Decimal `json:"amt" binding:"required"`
	Paid     *bool            `json:"paid" binding:"required"`
	PaidDate *shared.Date     `json:"paid_date"`
}

// List returns every invoice
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.invoiceService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, InvoiceListResponse{Invoices: invoices})
}

// Get returns an invoice together with its company
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := parsePositiveID(c, "id")
	if err != nil {
		h.HandleError(c, err)
		return
	}

	detail, err := h.invoiceService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, detail)
}

// Create adds an unpaid invoice dated today
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := h.BindJSON(c, &req); err != nil {
		h.HandleError(c, err)
		return
	}

	created, err := h.invoiceService.Create(c.Request.Context(), invoiceapp.CreateInvoiceRequest{
		CompCode: req.CompCode,
		Amt:      *req.Amt,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, InvoiceEnvelope{Invoice: *created})
}

// Update overwrites amt, paid and paid_date. The id is immutable.
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := parsePositiveID(c, "id")
	if err != nil {
		h.HandleError(c, err)
		return
	}

	var req UpdateInvoiceRequest
	if err := h.BindJSON(c, &req, "id"); err != nil {
		h.HandleError(c, err)
		return
	}

	updated, err := h.invoiceService.Update(c.Request.Context(), id, invoiceapp.UpdateInvoiceRequest{
		Amt:      *req.Amt,
		Paid:     *req.Paid,
		PaidDate: req.PaidDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, InvoiceEnvelope{Invoice: *updated})
}

// Delete removes an invoice
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := parsePositiveID(c, "id")
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if err := h.invoiceService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Deleted(c)
}

// Routes returns the /invoices route group
func (h *InvoiceHandler) Routes() *router.DomainGroup {
	return router.NewDomainGroup("/invoices").
		GET("", h.List).
		POST("", h.Create).
		GET("/:id", h.Get).
		PUT("/:id", h.Update).
		DELETE("/:id", h.Delete)
}
