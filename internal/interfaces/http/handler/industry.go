package handler

import (
	companyapp "github.com/biztime/backend/internal/application/company"
	"github.com/biztime/backend/internal/domain/shared"
	"github.com/biztime/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
)

// Messages for industry bodies missing a required field
const (
	msgIndustryFieldsRequired = "Both code and industry are required"
	msgJoinFieldsRequired     = "Both industry_code and company_code are required"
)

// IndustryHandler handles industries and their company links
type IndustryHandler struct {
	BaseHandler
	industryService *companyapp.IndustryService
}

// NewIndustryHandler creates a new IndustryHandler
func NewIndustryHandler(industryService *companyapp.IndustryService) *IndustryHandler {
	return &IndustryHandler{
		industryService: industryService,
	}
}

// CreateIndustryRequest is the body of POST /industries
type CreateIndustryRequest struct {
	Code     string `json:"code" binding:"required"`
	Industry string `json:"industry" binding:"required"`
}

// JoinCompanyRequest is the body of POST /industries/joining
type JoinCompanyRequest struct {
	IndustryCode string `json:"industry_code" binding:"required"`
	CompanyCode  string `json:"company_code" binding:"required"`
}

// List returns one entry per industry/company pairing
func (h *IndustryHandler) List(c *gin.Context) {
	listings, err := h.industryService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, IndustryListResponse{Industry: listings})
}

// Create adds an industry
func (h *IndustryHandler) Create(c *gin.Context) {
	var req CreateIndustryRequest
	if err := h.BindJSON(c, &req); err != nil {
		h.HandleError(c, requiredFieldsError(err, msgIndustryFieldsRequired))
		return
	}

	created, err := h.industryService.Create(c.Request.Context(), companyapp.CreateIndustryRequest{
		Code:     req.Code,
		Industry: req.Industry,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, IndustryEnvelope{Industry: *created})
}

// JoinCompany associates a company with an industry
func (h *IndustryHandler) JoinCompany(c *gin.Context) {
	var req JoinCompanyRequest
	if err := h.BindJSON(c, &req); err != nil {
		h.HandleError(c, requiredFieldsError(err, msgJoinFieldsRequired))
		return
	}

	link, err := h.industryService.LinkCompany(c.Request.Context(), companyapp.LinkCompanyRequest{
		IndustryCode: req.IndustryCode,
		CompanyCode:  req.CompanyCode,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, CompanyIndustryEnvelope{IndustriesCompanies: *link})
}

// Routes returns the /industries route group
func (h *IndustryHandler) Routes() *router.DomainGroup {
	return router.NewDomainGroup("/industries").
		GET("", h.List).
		POST("", h.Create).
		POST("/joining", h.JoinCompany)
}

// requiredFieldsError replaces a validation failure with the route's
// combined message; decoding errors pass through.
func requiredFieldsError(err error, message string) error {
	if de, ok := shared.AsDomainError(err); ok && de.Code == shared.CodeValidation {
		return shared.BadRequestf("%s", message)
	}
	return err
}
