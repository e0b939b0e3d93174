package handler

import (
	companyapp "github.com/biztime/backend/internal/application/company"
	"github.com/biztime/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
)

// CompanyHandler handles company-related API endpoints
type CompanyHandler struct {
	BaseHandler
	companyService *companyapp.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(companyService *companyapp.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
	}
}

// CreateCompanyRequest is the body of POST /companies
type CreateCompanyRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// UpdateCompanyRequest is the body of PUT /companies/:code. An empty
// description is allowed; a missing one is not.
type UpdateCompanyRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description" binding:"required"`
}

// List returns every company
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.companyService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, CompanyListResponse{Companies: companies})
}

// Get returns a company with its industries and invoices
func (h *CompanyHandler) Get(c *gin.Context) {
	detail, err := h.companyService.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, CompanyDetailEnvelope{Company: *detail})
}

// Create adds a company; its code is derived from the name
func (h *CompanyHandler) Create(c *gin.Context) {
	var req CreateCompanyRequest
	if err := h.BindJSON(c, &req); err != nil {
		h.HandleError(c, err)
		return
	}

	created, err := h.companyService.Create(c.Request.Context(), companyapp.CreateCompanyRequest{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, CompanyEnvelope{Company: *created})
}

// Update replaces a company's name and description. The code is immutable.
func (h *CompanyHandler) Update(c *gin.Context) {
	var req UpdateCompanyRequest
	if err := h.BindJSON(c, &req, "code"); err != nil {
		h.HandleError(c, err)
		return
	}

	updated, err := h.companyService.Update(c.Request.Context(), c.Param("code"), companyapp.UpdateCompanyRequest{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, CompanyEnvelope{Company: *updated})
}

// Delete removes a company
func (h *CompanyHandler) Delete(c *gin.Context) {
	if err := h.companyService.Delete(c.Request.Context(), c.Param("code")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Deleted(c)
}

// Routes returns the /companies route group
func (h *CompanyHandler) Routes() *router.DomainGroup {
	return router.NewDomainGroup("/companies").
		GET("", h.List).
		POST("", h.Create).
		GET("/:code", h.Get).
		PUT("/:code", h.Update).
		DELETE("/:code", h.Delete)
}
